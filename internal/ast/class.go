package ast

// Class is a declared (or implicitly created) class. Members keep
// declaration order across merged declaration blocks.
type Class struct {
	Name      Ident
	Namespace NamespaceID
	Members   []Member

	// Notes attached via 'note for', in declaration order.
	Notes []string
}
