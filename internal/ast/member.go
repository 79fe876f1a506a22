package ast

// MemberKind distinguishes fields from methods.
type MemberKind uint8

const (
	MemberField MemberKind = iota
	MemberMethod
)

func (k MemberKind) String() string {
	if k == MemberMethod {
		return "method"
	}
	return "field"
}

// Param is one method parameter. Type may be zero for an untyped parameter.
type Param struct {
	Name     Ident
	Type     Ident
	Notation Notation
}

// Member is a single class member in declaration order. Fields use Type and
// Notation; methods use Params, Return and ReturnNotation. Static is the '$'
// classifier.
type Member struct {
	Kind       MemberKind
	Visibility Visibility
	Static     bool
	Name       Ident

	// Field type. NotationNone means the field has no type.
	Type     Ident
	Notation Notation

	// Method signature. ReturnNotation is NotationNone when the method
	// declares no return type.
	Params         []Param
	Return         Ident
	ReturnNotation Notation
}

// Typed reports whether the member carries any type information.
func (m Member) Typed() bool {
	if m.Kind == MemberMethod {
		return m.ReturnNotation != NotationNone
	}
	return m.Notation != NotationNone
}
