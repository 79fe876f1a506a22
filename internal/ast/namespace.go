package ast

// Namespace is one level of the namespace tree. The root namespace has an
// empty Name and no parent; it is never serialized.
type Namespace struct {
	Name   Ident
	Parent NamespaceID

	// Children and Classes keep declaration order.
	Children []NamespaceID
	Classes  []ClassID
}

// IsRoot reports whether this is the implicit top-level namespace.
func (n Namespace) IsRoot() bool {
	return !n.Parent.IsValid() && n.Name.Zero()
}
