package token

import (
	"mermparse/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsIdent reports whether the token can act as an identifier (bare or
// backtick-escaped).
func (t Token) IsIdent() bool {
	return t.Kind == Ident || t.Kind == EscapedIdent
}

// IsKeyword reports whether the token is a dialect keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwClassDiagram, KwClass, KwNamespace, KwNote, KwFor, KwDirection:
		return true
	default:
		return false
	}
}

// IsArrow reports whether the token is a supported relationship operator.
func (t Token) IsArrow() bool {
	switch t.Kind {
	case InheritanceL, InheritanceR, RealizationL, RealizationR,
		CompositionL, CompositionR, CompositionDotL, CompositionDotR,
		AggregationL, AggregationR, AggregationDotL, AggregationDotR,
		AssociationL, AssociationR, DependencyL, DependencyR,
		Link, DashedLink:
		return true
	default:
		return false
	}
}

// IsVisibility reports whether the token is one of the member visibility
// marks.
func (t Token) IsVisibility() bool {
	switch t.Kind {
	case Plus, Minus, Hash, Tilde:
		return true
	default:
		return false
	}
}
