package lexer

import (
	"mermparse/internal/source"
	"mermparse/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // one-token lookahead buffer
	hold   []token.Trivia // accumulated leading trivia
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
		hold:   nil,
	}
}

// Next returns the next significant token with its Leading trivia attached.
// Newlines are significant (they separate statements) and are returned as
// tokens, one per run of consecutive '\n'. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	// The frontmatter fence is only recognized at the very start of the
	// file, before any trivia.
	if lx.cursor.Off == 0 {
		if tok, ok := lx.scanFrontmatter(); ok {
			return tok
		}
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Text: "",
		}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == '\n':
		tok = lx.scanNewlines()

	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()

	case ch >= utf8RuneSelf:
		// Possible Unicode identifier; scanIdentOrKeyword sorts it out.
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		// Cardinality-style bare numbers and names like 1..n appear only
		// inside quotes, but a digit can still start an identifier tail
		// context; treat it as an ident scan.
		tok = lx.scanIdentOrKeyword()

	case ch == '"':
		tok = lx.scanString()

	case ch == '`':
		tok = lx.scanBacktickIdent()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// RestOfLine consumes everything up to (not including) the next newline and
// returns it as a single Text token with surrounding spaces trimmed. A
// pending lookahead token is rewound first so the text starts at that token.
func (lx *Lexer) RestOfLine() token.Token {
	if lx.look != nil {
		lx.cursor.Reset(Mark(lx.look.Span.Start))
		lx.look = nil
	}
	for lx.cursor.Peek() == ' ' || lx.cursor.Peek() == '\t' {
		lx.cursor.Bump()
	}
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	for sp.End > sp.Start {
		b := lx.file.Content[sp.End-1]
		if b != ' ' && b != '\t' {
			break
		}
		sp.End--
	}
	return token.Token{
		Kind: token.Text,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

func (lx *Lexer) scanNewlines() token.Token {
	start := lx.cursor.Mark()
	for lx.cursor.Peek() == '\n' {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.Newline,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
