package ast

type (
	// NamespaceID identifies a Namespace within a Diagram's arena.
	NamespaceID uint32
	// ClassID identifies a Class within a Diagram's arena.
	ClassID uint32
)

const (
	NoNamespaceID NamespaceID = 0
	NoClassID     ClassID     = 0
)

func (id NamespaceID) IsValid() bool { return id != NoNamespaceID }
func (id ClassID) IsValid() bool     { return id != NoClassID }
