package parser

import (
	"slices"

	"mermparse/internal/diag"
	"mermparse/internal/source"
	"mermparse/internal/token"
)

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// getDiagnosticSpan returns the best span for a diagnostic: the next token,
// or the position right after the last consumed token when the next one is
// EOF with an empty span.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if (peek.Kind == token.EOF || peek.Kind == token.Invalid) && peek.Span.Empty() {
		if p.lastSpan.End > 0 {
			return source.Span{
				File:  p.lastSpan.File,
				Start: p.lastSpan.End,
				End:   p.lastSpan.End,
			}
		}
	}
	return peek.Span
}

func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	diagSpan := p.getDiagnosticSpan()
	p.report(code, diag.SevError, diagSpan, msg)
	return token.Token{Kind: token.Invalid, Span: diagSpan, Text: p.lx.Peek().Text}, false
}

// err reports an error at the current position.
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	// errors are counted whether or not anyone listens, and the error that
	// reaches the limit is still delivered
	if sev == diag.SevError {
		if p.opts.Enough() {
			return false
		}
		p.opts.CurrentErrors++
	}
	if p.opts.Reporter == nil {
		return false
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil)
	return true
}

// unsupported routes a recognized-but-unmodeled construct through the
// configured policy. The construct is skipped either way; the mode only
// changes the severity.
func (p *Parser) unsupported(code diag.Code, sp source.Span, msg string) {
	sev := diag.SevError
	if p.opts.Unsupported == UnsupportedSkipWarn {
		sev = diag.SevWarning
	}
	p.report(code, sev, sp, msg)
}

// skipNewlines consumes any run of Newline tokens.
func (p *Parser) skipNewlines() {
	for p.at(token.Newline) {
		p.advance()
	}
}

// resyncLine drops tokens up to and including the next newline. A closing
// brace or EOF stops the resync without being consumed, so block parsers can
// still see their terminator.
func (p *Parser) resyncLine() {
	for {
		switch p.lx.Peek().Kind {
		case token.Newline:
			p.advance()
			return
		case token.RBrace, token.EOF:
			return
		default:
			p.advance()
		}
	}
}

// expectEOL checks that the statement ends here: a newline (consumed), EOF,
// or a closing brace (left for the caller).
func (p *Parser) expectEOL() bool {
	switch p.lx.Peek().Kind {
	case token.Newline:
		p.advance()
		return true
	case token.EOF, token.RBrace:
		return true
	default:
		p.err(diag.SynExpectNewline, "expected end of statement, got \""+p.lx.Peek().Text+"\"")
		p.resyncLine()
		return false
	}
}
