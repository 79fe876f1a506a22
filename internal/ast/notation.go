package ast

// Notation records how a typed element was written in the source. The flag
// is load-bearing: the serializer reproduces the same style instead of
// guessing from the type name.
type Notation uint8

const (
	// NotationNone means no type was written at all.
	NotationNone Notation = iota
	// NotationPrefix is the 'Type name' form.
	NotationPrefix
	// NotationPostfix is the 'name: Type' form.
	NotationPostfix
)

func (n Notation) String() string {
	switch n {
	case NotationPrefix:
		return "prefix"
	case NotationPostfix:
		return "postfix"
	default:
		return "none"
	}
}
