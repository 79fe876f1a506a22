package ast

// RelKind is the semantic kind of a relationship between two classes.
type RelKind uint8

const (
	RelInheritance RelKind = iota
	RelComposition
	RelAggregation
	RelAssociation
	// RelLink is a bare link with no arrowhead.
	RelLink
)

func (k RelKind) String() string {
	switch k {
	case RelInheritance:
		return "inheritance"
	case RelComposition:
		return "composition"
	case RelAggregation:
		return "aggregation"
	case RelAssociation:
		return "association"
	default:
		return "link"
	}
}

// LineStyle is the stroke of the relationship line. Inheritance drawn dotted
// is a realization; the model keeps kind and stroke orthogonal.
type LineStyle uint8

const (
	LineSolid LineStyle = iota
	LineDotted
)

func (s LineStyle) String() string {
	if s == LineDotted {
		return "dotted"
	}
	return "solid"
}

// Relationship connects two declared classes. Left-pointing source arrows are
// normalized at parse time: From is always the tail and To the head, with
// cardinalities swapped to match, so serialization always emits the
// right-pointing form.
type Relationship struct {
	From ClassID
	To   ClassID
	Kind RelKind
	Line LineStyle

	// Cardinalities without their surrounding quotes; empty means absent.
	FromCard string
	ToCard   string

	// Label text after ':', trimmed. Empty means no label.
	Label string
}

// Arrow returns the canonical right-pointing arrow text for the
// kind/line pair.
func (r Relationship) Arrow() string {
	switch r.Kind {
	case RelInheritance:
		if r.Line == LineDotted {
			return "..|>"
		}
		return "--|>"
	case RelComposition:
		if r.Line == LineDotted {
			return "..*"
		}
		return "--*"
	case RelAggregation:
		if r.Line == LineDotted {
			return "..o"
		}
		return "--o"
	case RelAssociation:
		if r.Line == LineDotted {
			return "..>"
		}
		return "-->"
	default:
		if r.Line == LineDotted {
			return ".."
		}
		return "--"
	}
}
