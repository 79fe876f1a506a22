package parser

import (
	"mermparse/internal/ast"
	"mermparse/internal/diag"
	"mermparse/internal/token"
)

// parseClassDecl handles 'class Name', 'class Name { ... }' and the
// recognized-but-unsupported label/generic/styling suffixes.
func (p *Parser) parseClassDecl(ns ast.NamespaceID) bool {
	p.advance() // 'class'
	name, ok := p.parseIdent(diag.SynExpectIdent, "class name")
	if !ok {
		return false
	}

	if p.at(token.Tilde) {
		sp := p.lx.Peek().Span
		p.skipGenericSuffix()
		p.unsupported(diag.UnsupGenericType, sp, "generic type parameters are not supported")
	}

	id := p.diagram.EnsureClass(ns, name)

	switch p.lx.Peek().Kind {
	case token.LBracket:
		sp := p.lx.Peek().Span
		p.advance()
		for !p.atOr(token.RBracket, token.Newline, token.EOF) {
			p.advance()
		}
		if p.at(token.RBracket) {
			sp = sp.Cover(p.lx.Peek().Span)
			p.advance()
		}
		p.unsupported(diag.UnsupClassLabel, sp, "class labels are not supported")
		return p.expectEOL()
	case token.ColonColon:
		// ':::' styling shorthand lexes as '::' followed by ':'
		sp := p.lx.Peek().Span
		p.resyncLine()
		p.unsupported(diag.UnsupStyling, sp, "styling directives are not supported")
		return true
	case token.LBrace:
		p.advance()
		return p.parseClassBody(id)
	default:
		return p.expectEOL()
	}
}

func (p *Parser) parseClassBody(id ast.ClassID) bool {
	p.skipNewlines()
	for {
		switch p.lx.Peek().Kind {
		case token.RBrace:
			p.advance()
			return p.expectEOL()
		case token.EOF:
			p.err(diag.SynUnclosedBrace, "missing '}' to close class body")
			return false
		case token.AnnotationOpen:
			sp := p.lx.Peek().Span
			p.resyncLine()
			p.unsupported(diag.UnsupAnnotation, sp, "class annotations are not supported")
		default:
			if m, ok := p.parseMember(); ok {
				p.addMember(id, m)
			} else {
				if !p.opts.SkipInvalid {
					return false
				}
				p.resyncLine()
			}
		}
		p.skipNewlines()
	}
}

// addMember appends a member, reporting a conflict when a member with the
// same name and kind was already declared with a different visibility.
// Absence of a mark is its own state, so '+age' followed by 'age' conflicts
// too. The conflicting redeclaration is dropped; exact duplicates are kept
// in order.
func (p *Parser) addMember(id ast.ClassID, m ast.Member) {
	c := p.diagram.Class(id)
	for i := range c.Members {
		prev := &c.Members[i]
		if prev.Name == m.Name && prev.Kind == m.Kind &&
			prev.Visibility != m.Visibility {
			p.report(diag.SemMemberConflict, diag.SevError, p.lastSpan,
				"member \""+m.Name.Text+"\" redeclared with conflicting visibility")
			return
		}
	}
	c.Members = append(c.Members, m)
}

// skipGenericSuffix consumes a '~...~' generic parameter list.
func (p *Parser) skipGenericSuffix() {
	p.advance() // '~'
	for !p.atOr(token.Tilde, token.Newline, token.EOF) {
		p.advance()
	}
	if p.at(token.Tilde) {
		p.advance()
	}
}
