package parser

import (
	"mermparse/internal/ast"
	"mermparse/internal/diag"
	"mermparse/internal/token"
)

func (p *Parser) parseNamespace(ns ast.NamespaceID, depth uint) bool {
	kw := p.advance() // 'namespace'

	if depth >= p.opts.maxDepth() {
		p.report(diag.SynNestingTooDeep, diag.SevError, kw.Span,
			"namespace nesting exceeds the configured maximum")
		p.skipBalancedBlock()
		return true
	}

	name, ok := p.parseIdent(diag.SynExpectIdent, "namespace name")
	if !ok {
		return false
	}
	id := p.diagram.EnsureNamespace(ns, name)

	if _, ok := p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' after namespace name"); !ok {
		return false
	}

	p.skipNewlines()
	for {
		switch p.lx.Peek().Kind {
		case token.RBrace:
			p.advance()
			return p.expectEOL()
		case token.EOF:
			p.err(diag.SynUnclosedBrace, "missing '}' to close namespace block")
			return false
		default:
			if !p.parseStatement(id, depth+1) {
				if !p.opts.SkipInvalid {
					return false
				}
				p.resyncLine()
			}
		}
		p.skipNewlines()
	}
}

// skipBalancedBlock drops an over-deep namespace without recursing: the
// name, the opening brace and everything up to the matching close.
func (p *Parser) skipBalancedBlock() {
	for !p.atOr(token.LBrace, token.Newline, token.EOF) {
		p.advance()
	}
	if !p.at(token.LBrace) {
		return
	}
	depth := 0
	for !p.at(token.EOF) {
		switch p.advance().Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			depth--
			if depth == 0 {
				return
			}
		}
	}
}
