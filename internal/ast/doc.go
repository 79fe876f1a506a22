// Package ast holds the class diagram data model: arena-allocated namespaces
// and classes addressed by compact IDs, plus the ordered member,
// relationship and note lists that hang off them.
//
// The model is deliberately surface-faithful. It records how the source
// spelled things (escaping, type notation, visibility marks) rather than a
// normalized ideal, so a parse/serialize round trip reproduces the author's
// style choices.
package ast
