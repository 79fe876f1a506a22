package ast

// Visibility is the member access mark. Absence of a mark is its own state,
// distinct from public.
type Visibility uint8

const (
	VisNone Visibility = iota
	VisPublic
	VisPrivate
	VisProtected
	VisPackage
)

// Symbol returns the Mermaid surface form of the visibility mark.
func (v Visibility) Symbol() string {
	switch v {
	case VisPublic:
		return "+"
	case VisPrivate:
		return "-"
	case VisProtected:
		return "#"
	case VisPackage:
		return "~"
	default:
		return ""
	}
}

func (v Visibility) String() string {
	switch v {
	case VisPublic:
		return "public"
	case VisPrivate:
		return "private"
	case VisProtected:
		return "protected"
	case VisPackage:
		return "package"
	default:
		return "none"
	}
}
