package parser

import (
	"mermparse/internal/ast"
	"mermparse/internal/diag"
	"mermparse/internal/lexer"
	"mermparse/internal/source"
	"mermparse/internal/token"
)

// Parser holds the per-file parse state.
type Parser struct {
	lx       *lexer.Lexer
	fs       *source.FileSet
	diagram  *ast.Diagram
	opts     Options
	lastSpan source.Span
}

type Result struct {
	Diagram *ast.Diagram
	Bag     *diag.Bag
}

// ParseFile parses one class diagram file. It requires an already created
// lexer over the source file; lexer diagnostics should go to the same
// reporter.
func ParseFile(fs *source.FileSet, lx *lexer.Lexer, opts Options) Result {
	p := Parser{
		lx:      lx,
		fs:      fs,
		diagram: ast.NewDiagram(),
		opts:    opts,
	}

	p.parseDiagram()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		Diagram: p.diagram,
		Bag:     bag,
	}
}

func (p *Parser) parseDiagram() {
	if p.at(token.Frontmatter) {
		tok := p.advance()
		p.diagram.Frontmatter = &ast.Frontmatter{Raw: tok.Text}
	}
	p.skipNewlines()

	if !p.at(token.KwClassDiagram) {
		p.err(diag.SynExpectHeader, "expected 'classDiagram' header")
		// keep going; later statements still produce useful diagnostics
	} else {
		p.advance()
		p.expectEOL()
	}

	for {
		p.skipNewlines()
		if p.at(token.EOF) {
			return
		}
		if !p.parseStatement(p.diagram.Root(), 0) {
			if !p.opts.SkipInvalid {
				return
			}
			p.resyncLine()
		}
	}
}

// parseStatement dispatches one line (or block) at the given namespace.
// Returns false when the statement failed and the caller should resync.
func (p *Parser) parseStatement(ns ast.NamespaceID, depth uint) bool {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.KwDirection:
		return p.parseDirection()
	case token.KwNamespace:
		return p.parseNamespace(ns, depth)
	case token.KwClass:
		return p.parseClassDecl(ns)
	case token.KwNote:
		return p.parseNote(ns)
	case token.AnnotationOpen:
		return p.parseAnnotationStatement()
	case token.Ident, token.EscapedIdent:
		return p.parseMemberOrRelation(ns)
	case token.RBrace:
		// stray brace at this level; let the caller's resync handle it
		p.err(diag.SynUnexpectedToken, "unexpected '}'")
		p.advance()
		return true
	case token.Invalid:
		// the lexer already reported it
		p.advance()
		return false
	default:
		p.err(diag.SynUnexpectedToken, "unexpected token \""+tok.Text+"\"")
		return false
	}
}

func (p *Parser) parseDirection() bool {
	p.advance() // 'direction'
	tok := p.lx.Peek()
	if tok.Kind != token.Ident {
		p.err(diag.SynBadDirection, "expected direction value (TB, BT, LR, RL)")
		return false
	}
	dir, ok := ast.ParseDirection(tok.Text)
	if !ok {
		p.report(diag.SynBadDirection, diag.SevError, tok.Span,
			"invalid direction \""+tok.Text+"\" (expected TB, BT, LR, RL)")
		return false
	}
	p.advance()
	p.diagram.Direction = dir
	return p.expectEOL()
}

// parseIdent expects a bare or escaped identifier.
func (p *Parser) parseIdent(code diag.Code, what string) (ast.Ident, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident:
		p.advance()
		return ast.Ident{Text: tok.Text}, true
	case token.EscapedIdent:
		p.advance()
		return ast.Ident{Text: tok.Text, Escaped: true}, true
	default:
		p.err(code, "expected "+what+", got \""+tok.Text+"\"")
		return ast.Ident{}, false
	}
}

// parseClassPath parses a possibly '::'-qualified class reference and
// resolves (creating as needed) the namespace chain. All qualified paths are
// root-relative.
func (p *Parser) parseClassPath(ns ast.NamespaceID) (ast.ClassID, bool) {
	name, ok := p.parseIdent(diag.SynExpectIdent, "class name")
	if !ok {
		return ast.NoClassID, false
	}
	if !p.at(token.ColonColon) {
		return p.diagram.EnsureClass(ns, name), true
	}
	cur := p.diagram.Root()
	for p.at(token.ColonColon) {
		p.advance()
		cur = p.diagram.EnsureNamespace(cur, name)
		name, ok = p.parseIdent(diag.SynExpectIdent, "class name")
		if !ok {
			return ast.NoClassID, false
		}
	}
	return p.diagram.EnsureClass(cur, name), true
}

func (p *Parser) parseAnnotationStatement() bool {
	start := p.lx.Peek().Span
	p.advance() // '<<'
	for !p.atOr(token.AnnotationClose, token.Newline, token.EOF) {
		p.advance()
	}
	end := p.lx.Peek().Span
	if p.at(token.AnnotationClose) {
		p.advance()
		// trailing class name, if present
		if p.lx.Peek().IsIdent() {
			end = p.lx.Peek().Span
			p.advance()
		}
	}
	p.unsupported(diag.UnsupAnnotation, start.Cover(end), "class annotations are not supported")
	return p.expectEOL()
}
