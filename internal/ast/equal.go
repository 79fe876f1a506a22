package ast

// Equal reports structural equality of two diagrams. IDs are arena-local, so
// relationships compare via qualified endpoint names and namespaces compare
// tree-shape by path. Order matters everywhere it matters in the model:
// member lists, relationship lists, note lists.
func (d *Diagram) Equal(o *Diagram) bool {
	if d == nil || o == nil {
		return d == o
	}
	if (d.Frontmatter == nil) != (o.Frontmatter == nil) {
		return false
	}
	if d.Frontmatter != nil && d.Frontmatter.Raw != o.Frontmatter.Raw {
		return false
	}
	if d.Direction != o.Direction {
		return false
	}
	if !equalStrings(d.Notes, o.Notes) {
		return false
	}
	if !d.equalNamespaces(d.root, o, o.root) {
		return false
	}
	if len(d.Relationships) != len(o.Relationships) {
		return false
	}
	for i, r := range d.Relationships {
		s := o.Relationships[i]
		if r.Kind != s.Kind || r.Line != s.Line ||
			r.FromCard != s.FromCard || r.ToCard != s.ToCard ||
			r.Label != s.Label {
			return false
		}
		if d.QualifiedName(r.From) != o.QualifiedName(s.From) ||
			d.QualifiedName(r.To) != o.QualifiedName(s.To) {
			return false
		}
	}
	return true
}

func (d *Diagram) equalNamespaces(id NamespaceID, o *Diagram, oid NamespaceID) bool {
	a, b := d.Namespace(id), o.Namespace(oid)
	if a.Name != b.Name {
		return false
	}
	if len(a.Classes) != len(b.Classes) || len(a.Children) != len(b.Children) {
		return false
	}
	for i, cid := range a.Classes {
		if !equalClasses(d.Class(cid), o.Class(b.Classes[i])) {
			return false
		}
	}
	for i, child := range a.Children {
		if !d.equalNamespaces(child, o, b.Children[i]) {
			return false
		}
	}
	return true
}

func equalClasses(a, b *Class) bool {
	if a.Name != b.Name {
		return false
	}
	if !equalStrings(a.Notes, b.Notes) {
		return false
	}
	if len(a.Members) != len(b.Members) {
		return false
	}
	for i, m := range a.Members {
		if !equalMembers(m, b.Members[i]) {
			return false
		}
	}
	return true
}

func equalMembers(a, b Member) bool {
	if a.Kind != b.Kind || a.Visibility != b.Visibility || a.Static != b.Static {
		return false
	}
	if a.Name != b.Name || a.Type != b.Type || a.Notation != b.Notation {
		return false
	}
	if a.Return != b.Return || a.ReturnNotation != b.ReturnNotation {
		return false
	}
	if len(a.Params) != len(b.Params) {
		return false
	}
	for i, p := range a.Params {
		if p != b.Params[i] {
			return false
		}
	}
	return true
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
