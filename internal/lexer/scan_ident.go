package lexer

import (
	"mermparse/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdentOrKeyword scans an identifier and checks it via LookupKeyword.
// Keywords are case-sensitive. Token.Text is exactly the source slice.
//
// Two surface quirks live here:
//   - a hyphen continues an identifier only when the byte after it could
//     continue one, so My-Class is one identifier while A--B splits at the
//     relationship arrow;
//   - a lone "o" directly followed by "--" or ".." is the left half of an
//     aggregation arrow, not a class name.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp, Text: ""}
	}
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) && !isDec(byte(r)) {
			return lx.scanOperatorOrPunct()
		}
		lx.cursor.Bump()
	} else {
		if !isIdentStartRune(r) {
			return lx.scanOperatorOrPunct()
		}
		lx.bumpRune()
	}

	for {
		b := lx.cursor.Peek()
		switch {
		case isIdentContinueByte(b):
			lx.cursor.Bump()
		case b == '-' && isIdentContinueByte(lx.cursor.PeekAt(1)):
			lx.cursor.Bump()
		case b >= utf8RuneSelf:
			r2, sz2 := lx.peekRune()
			if sz2 == 0 || !isIdentContinueRune(r2) {
				return lx.finishIdent(start)
			}
			lx.bumpRune()
		default:
			return lx.finishIdent(start)
		}
	}
}

func (lx *Lexer) finishIdent(start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if text == "o" {
		if lx.try2('-', '-') {
			sp = lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.AggregationL, Span: sp, Text: "o--"}
		}
		if lx.try2('.', '.') {
			sp = lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.AggregationDotL, Span: sp, Text: "o.."}
		}
	}

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
