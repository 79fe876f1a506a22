package parser

import (
	"mermparse/internal/ast"
	"mermparse/internal/diag"
	"mermparse/internal/token"
)

// parseMember parses one member line, either inside a class body or after
// the 'Class : member' colon form. The shape is decided by lookahead:
//
//	name(...)        method, optional trailing return type
//	Type name(...)   method with a prefix return type
//	Type name        field in prefix notation
//	name : Type      field in postfix notation
//	name             untyped field
//
// A '$' classifier marks the member static. The '*' abstract classifier is
// recognized but unsupported.
func (p *Parser) parseMember() (ast.Member, bool) {
	var m ast.Member

	if tok := p.lx.Peek(); tok.IsVisibility() {
		p.advance()
		switch tok.Kind {
		case token.Plus:
			m.Visibility = ast.VisPublic
		case token.Minus:
			m.Visibility = ast.VisPrivate
		case token.Hash:
			m.Visibility = ast.VisProtected
		case token.Tilde:
			m.Visibility = ast.VisPackage
		}
	}

	t1, ok := p.parseIdent(diag.SynBadMember, "member name or type")
	if !ok {
		return m, false
	}
	p.checkGenericSuffix()

	switch p.lx.Peek().Kind {
	case token.LParen:
		m.Kind = ast.MemberMethod
		m.Name = t1
		if !p.parseParams(&m) {
			return m, false
		}
		return p.finishMethod(&m)

	case token.Ident, token.EscapedIdent:
		t2, _ := p.parseIdent(diag.SynBadMember, "member name")
		p.checkGenericSuffix()
		if p.at(token.LParen) {
			m.Kind = ast.MemberMethod
			m.Return = t1
			m.ReturnNotation = ast.NotationPrefix
			m.Name = t2
			if !p.parseParams(&m) {
				return m, false
			}
			return p.finishMethod(&m)
		}
		m.Kind = ast.MemberField
		m.Type = t1
		m.Notation = ast.NotationPrefix
		m.Name = t2
		return p.finishField(&m)

	case token.Colon:
		p.advance()
		typ, ok := p.parseIdent(diag.SynBadMember, "field type")
		if !ok {
			return m, false
		}
		p.checkGenericSuffix()
		m.Kind = ast.MemberField
		m.Name = t1
		m.Type = typ
		m.Notation = ast.NotationPostfix
		return p.finishField(&m)

	default:
		m.Kind = ast.MemberField
		m.Name = t1
		return p.finishField(&m)
	}
}

func (p *Parser) finishField(m *ast.Member) (ast.Member, bool) {
	for {
		switch p.lx.Peek().Kind {
		case token.Dollar:
			p.advance()
			m.Static = true
		case token.Star:
			sp := p.lx.Peek().Span
			p.advance()
			p.unsupported(diag.UnsupAbstractMember, sp, "abstract member markers are not supported")
		default:
			return p.finishMemberLine(m)
		}
	}
}

// finishMethod handles everything after the closing ')': classifiers and an
// optional return type, written either bare ('getAge() int') or with a colon
// ('getAge(): int'). Both record postfix return notation.
func (p *Parser) finishMethod(m *ast.Member) (ast.Member, bool) {
	for {
		switch p.lx.Peek().Kind {
		case token.Dollar:
			p.advance()
			m.Static = true
		case token.Star:
			sp := p.lx.Peek().Span
			p.advance()
			p.unsupported(diag.UnsupAbstractMember, sp, "abstract member markers are not supported")
		case token.Ident, token.EscapedIdent:
			if m.ReturnNotation != ast.NotationNone {
				p.err(diag.SynBadMember, "method already has a return type")
				return *m, false
			}
			ret, _ := p.parseIdent(diag.SynBadMember, "return type")
			p.checkGenericSuffix()
			m.Return = ret
			m.ReturnNotation = ast.NotationPostfix
		case token.Colon:
			p.advance()
			if m.ReturnNotation != ast.NotationNone {
				p.err(diag.SynBadMember, "method already has a return type")
				return *m, false
			}
			ret, ok := p.parseIdent(diag.SynBadMember, "return type")
			if !ok {
				return *m, false
			}
			p.checkGenericSuffix()
			m.Return = ret
			m.ReturnNotation = ast.NotationPostfix
		default:
			return p.finishMemberLine(m)
		}
	}
}

func (p *Parser) finishMemberLine(m *ast.Member) (ast.Member, bool) {
	switch p.lx.Peek().Kind {
	case token.Newline, token.RBrace, token.EOF:
		return *m, true
	default:
		p.err(diag.SynBadMember, "unexpected \""+p.lx.Peek().Text+"\" in member declaration")
		return *m, false
	}
}

// parseParams consumes '(' params ')'. Parameters come untyped ('amount'),
// in prefix notation ('int amount') or in postfix notation ('amount: int').
func (p *Parser) parseParams(m *ast.Member) bool {
	p.advance() // '('
	if p.at(token.RParen) {
		p.advance()
		return true
	}
	for {
		t1, ok := p.parseIdent(diag.SynBadMember, "parameter")
		if !ok {
			return false
		}
		p.checkGenericSuffix()
		var param ast.Param
		switch p.lx.Peek().Kind {
		case token.Ident, token.EscapedIdent:
			name, _ := p.parseIdent(diag.SynBadMember, "parameter name")
			param = ast.Param{Name: name, Type: t1, Notation: ast.NotationPrefix}
		case token.Colon:
			p.advance()
			typ, ok := p.parseIdent(diag.SynBadMember, "parameter type")
			if !ok {
				return false
			}
			p.checkGenericSuffix()
			param = ast.Param{Name: t1, Type: typ, Notation: ast.NotationPostfix}
		default:
			param = ast.Param{Name: t1}
		}
		m.Params = append(m.Params, param)

		switch p.lx.Peek().Kind {
		case token.Comma:
			p.advance()
		case token.RParen:
			p.advance()
			return true
		default:
			p.err(diag.SynBadMember, "expected ',' or ')' in parameter list")
			return false
		}
	}
}

// checkGenericSuffix reports and consumes a '~...~' generic suffix when one
// directly follows the identifier just parsed.
func (p *Parser) checkGenericSuffix() {
	if !p.at(token.Tilde) {
		return
	}
	sp := p.lx.Peek().Span
	p.skipGenericSuffix()
	p.unsupported(diag.UnsupGenericType, sp, "generic type parameters are not supported")
}
