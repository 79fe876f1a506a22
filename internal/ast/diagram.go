package ast

import "strings"

// Frontmatter is the verbatim YAML block between '---' fences at the top of
// the file. Raw keeps the inner text exactly as written, trailing newline
// included; it is never interpreted.
type Frontmatter struct {
	Raw string
}

// Diagram is the complete class diagram model. Namespaces and classes live
// in arenas and are referenced by ID everywhere else; lookup maps are keyed
// by the '::'-joined unescaped qualified path.
type Diagram struct {
	namespaces *Arena[Namespace]
	classes    *Arena[Class]
	root       NamespaceID

	classIndex map[string]ClassID
	nsIndex    map[string]NamespaceID

	Frontmatter *Frontmatter
	Direction   Direction

	// Relationships and free-standing notes, in declaration order.
	Relationships []Relationship
	Notes         []string
}

// NewDiagram creates an empty diagram with its root namespace allocated.
func NewDiagram() *Diagram {
	d := &Diagram{
		namespaces: NewArena[Namespace](8),
		classes:    NewArena[Class](16),
		classIndex: make(map[string]ClassID),
		nsIndex:    make(map[string]NamespaceID),
	}
	d.root = NamespaceID(d.namespaces.Allocate(Namespace{}))
	return d
}

// Root returns the implicit top-level namespace.
func (d *Diagram) Root() NamespaceID { return d.root }

// Namespace resolves a NamespaceID. Returns nil for the zero ID.
func (d *Diagram) Namespace(id NamespaceID) *Namespace {
	return d.namespaces.Get(uint32(id))
}

// Class resolves a ClassID. Returns nil for the zero ID.
func (d *Diagram) Class(id ClassID) *Class {
	return d.classes.Get(uint32(id))
}

// Namespaces returns all namespaces in allocation order, root first. READONLY.
func (d *Diagram) Namespaces() []Namespace { return d.namespaces.Slice() }

// Classes returns all classes in allocation order. READONLY.
func (d *Diagram) Classes() []Class { return d.classes.Slice() }

// EnsureNamespace returns the child namespace of parent with the given name,
// creating it when it does not exist yet. An existing namespace keeps its
// original escaping.
func (d *Diagram) EnsureNamespace(parent NamespaceID, name Ident) NamespaceID {
	key := d.childKey(parent, name.Text)
	if id, ok := d.nsIndex[key]; ok {
		return id
	}
	id := NamespaceID(d.namespaces.Allocate(Namespace{
		Name:   name,
		Parent: parent,
	}))
	p := d.Namespace(parent)
	p.Children = append(p.Children, id)
	d.nsIndex[key] = id
	return id
}

// EnsureClass returns the class with the given name in ns, creating an empty
// one when it does not exist yet. Relationship endpoints and repeated
// declaration blocks funnel through here, so a class mentioned before (or
// without) its declaration still exists in the model.
func (d *Diagram) EnsureClass(ns NamespaceID, name Ident) ClassID {
	key := d.childKey(ns, name.Text)
	if id, ok := d.classIndex[key]; ok {
		return id
	}
	id := ClassID(d.classes.Allocate(Class{
		Name:      name,
		Namespace: ns,
	}))
	n := d.Namespace(ns)
	n.Classes = append(n.Classes, id)
	d.classIndex[key] = id
	return id
}

// LookupClass finds a class by its unescaped qualified path relative to the
// root, e.g. "models::User" or "User".
func (d *Diagram) LookupClass(qualified string) (ClassID, bool) {
	id, ok := d.classIndex[qualified]
	return id, ok
}

// LookupNamespace finds a namespace by its unescaped qualified path.
func (d *Diagram) LookupNamespace(qualified string) (NamespaceID, bool) {
	id, ok := d.nsIndex[qualified]
	return id, ok
}

// QualifiedName returns the '::'-joined unescaped path of a class from the
// root namespace.
func (d *Diagram) QualifiedName(id ClassID) string {
	c := d.Class(id)
	if c == nil {
		return ""
	}
	return d.childKey(c.Namespace, c.Name.Text)
}

// NamespacePath returns the '::'-joined unescaped path of a namespace; empty
// for the root.
func (d *Diagram) NamespacePath(id NamespaceID) string {
	var parts []string
	for id.IsValid() {
		ns := d.Namespace(id)
		if ns.IsRoot() {
			break
		}
		parts = append(parts, ns.Name.Text)
		id = ns.Parent
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "::")
}

func (d *Diagram) childKey(parent NamespaceID, name string) string {
	prefix := d.NamespacePath(parent)
	if prefix == "" {
		return name
	}
	return prefix + "::" + name
}
