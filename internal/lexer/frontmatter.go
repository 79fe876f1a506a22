package lexer

import (
	"mermparse/internal/diag"
	"mermparse/internal/token"
)

// scanFrontmatter recognizes a YAML frontmatter block when the file starts
// with a '---' fence line. The returned token's Text is the verbatim inner
// content (trailing newline included); the block itself is never parsed as
// YAML. Returns ok=false when the file does not start with a fence.
func (lx *Lexer) scanFrontmatter() (token.Token, bool) {
	start := lx.cursor.Mark()
	if !lx.fenceLine() {
		lx.cursor.Reset(start)
		return token.Token{}, false
	}

	innerStart := lx.cursor.Off
	for !lx.cursor.EOF() {
		lineStart := lx.cursor.Mark()
		if lx.fenceLine() {
			sp := lx.cursor.SpanFrom(start)
			return token.Token{
				Kind: token.Frontmatter,
				Span: sp,
				Text: string(lx.file.Content[innerStart:uint32(lineStart)]),
			}, true
		}
		lx.cursor.Reset(lineStart)
		lx.skipLine()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedFence, sp, "unterminated frontmatter block")
	return token.Token{
		Kind: token.Invalid,
		Span: sp,
		Text: string(lx.file.Content[innerStart:lx.cursor.Off]),
	}, true
}

// fenceLine consumes a line that is exactly '---' plus optional trailing
// spaces. The terminating newline is consumed too. Does not rewind on
// failure; callers reset.
func (lx *Lexer) fenceLine() bool {
	if !lx.try3('-', '-', '-') {
		return false
	}
	for lx.cursor.Peek() == ' ' || lx.cursor.Peek() == '\t' {
		lx.cursor.Bump()
	}
	if lx.cursor.EOF() {
		return true
	}
	return lx.cursor.Eat('\n')
}

func (lx *Lexer) skipLine() {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	lx.cursor.Eat('\n')
}
