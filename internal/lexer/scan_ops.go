package lexer

import (
	"mermparse/internal/diag"
	"mermparse/internal/token"
)

// scanOperatorOrPunct scans punctuation and relationship arrows.
// Greedy: longest arrow forms first, so --|> never splits into -- and |>.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	switch {
	case lx.try4('<', '|', '-', '-'):
		if lx.try2('|', '>') {
			return emit(token.TwoWayArrow)
		}
		return emit(token.InheritanceL)
	case lx.try4('<', '|', '.', '.'):
		if lx.try2('|', '>') {
			return emit(token.TwoWayArrow)
		}
		return emit(token.RealizationL)
	case lx.try4('<', '-', '-', '>'):
		return emit(token.TwoWayArrow)
	case lx.try4('<', '.', '.', '>'):
		return emit(token.TwoWayArrow)
	case lx.try4('-', '-', '|', '>'):
		return emit(token.InheritanceR)
	case lx.try4('.', '.', '|', '>'):
		return emit(token.RealizationR)
	case lx.try4('-', '-', '(', ')'):
		return emit(token.Lollipop)
	case lx.try4('(', ')', '-', '-'):
		return emit(token.Lollipop)
	case lx.try3('<', '-', '-'):
		return emit(token.AssociationL)
	case lx.try3('<', '.', '.'):
		return emit(token.DependencyL)
	case lx.try3('*', '-', '-'):
		return emit(token.CompositionL)
	case lx.try3('*', '.', '.'):
		return emit(token.CompositionDotL)
	case lx.try3('-', '-', '*'):
		return emit(token.CompositionR)
	case lx.try3('.', '.', '*'):
		return emit(token.CompositionDotR)
	case lx.try3('-', '-', '>'):
		return emit(token.AssociationR)
	case lx.try3('.', '.', '>'):
		return emit(token.DependencyR)
	case lx.tryAggregationR('-'):
		return emit(token.AggregationR)
	case lx.tryAggregationR('.'):
		return emit(token.AggregationDotR)
	case lx.try2('-', '-'):
		return emit(token.Link)
	case lx.try2('.', '.'):
		return emit(token.DashedLink)
	case lx.try2('<', '<'):
		return emit(token.AnnotationOpen)
	case lx.try2('>', '>'):
		return emit(token.AnnotationClose)
	case lx.try2(':', ':'):
		return emit(token.ColonColon)
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '#':
		return emit(token.Hash)
	case '~':
		return emit(token.Tilde)
	case '$':
		return emit(token.Dollar)
	case '*':
		return emit(token.Star)
	case ':':
		return emit(token.Colon)
	case ',':
		return emit(token.Comma)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	default:
		// consume the rest of a multi-byte rune so one bad character
		// produces one diagnostic
		for !lx.cursor.EOF() && lx.cursor.Peek()&0xC0 == 0x80 {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "unknown character")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
}

// tryAggregationR matches --o / ..o, but only when the 'o' is not the start
// of an identifier (so --owner stays a link followed by a name).
func (lx *Lexer) tryAggregationR(line byte) bool {
	b0, b1, b2, ok := lx.cursor.Peek3()
	if !ok || b0 != line || b1 != line || b2 != 'o' {
		return false
	}
	if isIdentContinueByte(lx.cursor.PeekAt(3)) {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}
