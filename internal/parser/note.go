package parser

import (
	"mermparse/internal/ast"
	"mermparse/internal/diag"
	"mermparse/internal/token"
)

// parseNote handles the free-standing 'note "text"' form and the attached
// 'note for Class "text"' form. Note text is kept verbatim.
func (p *Parser) parseNote(ns ast.NamespaceID) bool {
	p.advance() // 'note'

	if p.at(token.KwFor) {
		p.advance()
		id, ok := p.parseClassPath(ns)
		if !ok {
			return false
		}
		tok, ok := p.expect(token.String, diag.SynExpectString, "expected quoted note text")
		if !ok {
			return false
		}
		c := p.diagram.Class(id)
		c.Notes = append(c.Notes, tok.Text)
		return p.expectEOL()
	}

	tok, ok := p.expect(token.String, diag.SynExpectString, "expected quoted note text")
	if !ok {
		return false
	}
	p.diagram.Notes = append(p.diagram.Notes, tok.Text)
	return p.expectEOL()
}
