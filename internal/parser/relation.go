package parser

import (
	"mermparse/internal/ast"
	"mermparse/internal/diag"
	"mermparse/internal/token"
)

// parseMemberOrRelation handles lines that start with a class reference:
// the one-line member form 'Class : member' and relationship statements.
func (p *Parser) parseMemberOrRelation(ns ast.NamespaceID) bool {
	from, ok := p.parseClassPath(ns)
	if !ok {
		return false
	}

	switch p.lx.Peek().Kind {
	case token.Colon:
		p.advance()
		m, ok := p.parseMember()
		if !ok {
			return false
		}
		p.addMember(from, m)
		return p.expectEOL()
	case token.String, token.TwoWayArrow, token.Lollipop:
		return p.parseRelationRest(ns, from)
	default:
		if p.lx.Peek().IsArrow() {
			return p.parseRelationRest(ns, from)
		}
		p.err(diag.SynBadRelation, "expected ':' or a relationship arrow after class name")
		return false
	}
}

func (p *Parser) parseRelationRest(ns ast.NamespaceID, from ast.ClassID) bool {
	var fromCard, toCard string
	if p.at(token.String) {
		fromCard = p.advance().Text
	}

	arrow := p.lx.Peek()
	switch {
	case arrow.Kind == token.TwoWayArrow:
		p.unsupported(diag.UnsupTwoWayRelation, arrow.Span, "two-way relationships are not supported")
		p.resyncLine()
		return true
	case arrow.Kind == token.Lollipop:
		p.unsupported(diag.UnsupLollipop, arrow.Span, "lollipop interfaces are not supported")
		p.resyncLine()
		return true
	case !arrow.IsArrow():
		p.err(diag.SynBadRelation, "expected relationship arrow, got \""+arrow.Text+"\"")
		return false
	}
	p.advance()

	if p.at(token.String) {
		toCard = p.advance().Text
	}

	to, ok := p.parseClassPath(ns)
	if !ok {
		return false
	}

	var label string
	if p.at(token.Colon) {
		p.advance()
		label = p.lx.RestOfLine().Text
	}

	kind, line, leftward := arrowInfo(arrow.Kind)
	rel := ast.Relationship{
		Kind:  kind,
		Line:  line,
		Label: label,
	}
	// Left-pointing arrows normalize to the right-pointing form: endpoints
	// and their adjacent cardinalities swap together.
	if leftward {
		rel.From, rel.To = to, from
		rel.FromCard, rel.ToCard = toCard, fromCard
	} else {
		rel.From, rel.To = from, to
		rel.FromCard, rel.ToCard = fromCard, toCard
	}
	p.diagram.Relationships = append(p.diagram.Relationships, rel)
	return p.expectEOL()
}

func arrowInfo(k token.Kind) (kind ast.RelKind, line ast.LineStyle, leftward bool) {
	switch k {
	case token.InheritanceL:
		return ast.RelInheritance, ast.LineSolid, true
	case token.InheritanceR:
		return ast.RelInheritance, ast.LineSolid, false
	case token.RealizationL:
		return ast.RelInheritance, ast.LineDotted, true
	case token.RealizationR:
		return ast.RelInheritance, ast.LineDotted, false
	case token.CompositionL:
		return ast.RelComposition, ast.LineSolid, true
	case token.CompositionR:
		return ast.RelComposition, ast.LineSolid, false
	case token.CompositionDotL:
		return ast.RelComposition, ast.LineDotted, true
	case token.CompositionDotR:
		return ast.RelComposition, ast.LineDotted, false
	case token.AggregationL:
		return ast.RelAggregation, ast.LineSolid, true
	case token.AggregationR:
		return ast.RelAggregation, ast.LineSolid, false
	case token.AggregationDotL:
		return ast.RelAggregation, ast.LineDotted, true
	case token.AggregationDotR:
		return ast.RelAggregation, ast.LineDotted, false
	case token.AssociationL:
		return ast.RelAssociation, ast.LineSolid, true
	case token.AssociationR:
		return ast.RelAssociation, ast.LineSolid, false
	case token.DependencyL:
		return ast.RelAssociation, ast.LineDotted, true
	case token.DependencyR:
		return ast.RelAssociation, ast.LineDotted, false
	case token.DashedLink:
		return ast.RelLink, ast.LineDotted, false
	default: // token.Link
		return ast.RelLink, ast.LineSolid, false
	}
}
