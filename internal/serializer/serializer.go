package serializer

import (
	"strings"

	"mermparse/internal/ast"
)

type Options struct {
	IndentWidth int
	UseTabs     bool
}

func (o Options) withDefaults() Options {
	if o.IndentWidth == 0 {
		o.IndentWidth = 4
	}
	return o
}

// Serialize renders a diagram in canonical form: frontmatter, header,
// direction, root classes, namespace blocks, relationships, notes. Arrows
// always point right; member type notation, identifier escaping and
// declaration order come out exactly as stored.
func Serialize(d *ast.Diagram, opt Options) []byte {
	w := NewWriter(opt)
	s := printer{d: d, w: w}
	s.printDiagram()
	return w.Bytes()
}

type printer struct {
	d *ast.Diagram
	w *Writer
}

func (s *printer) printDiagram() {
	if fm := s.d.Frontmatter; fm != nil {
		s.w.WriteString("---\n")
		s.w.WriteString(fm.Raw)
		s.w.Newline()
		s.w.WriteString("---\n")
	}
	s.w.WriteString("classDiagram\n")

	if s.d.Direction != ast.DirUnset {
		s.w.WriteString("direction ")
		s.w.WriteString(s.d.Direction.String())
		s.w.Newline()
	}

	root := s.d.Namespace(s.d.Root())
	for _, cid := range root.Classes {
		s.printClass(cid)
	}
	for _, nsid := range root.Children {
		s.printNamespace(nsid)
	}

	for _, rel := range s.d.Relationships {
		s.printRelationship(rel)
	}

	for _, c := range s.d.Classes() {
		for _, note := range c.Notes {
			s.w.WriteString("note for ")
			s.w.WriteString(s.qualifiedRef(&c))
			s.w.WriteString(" \"")
			s.w.WriteString(note)
			s.w.WriteString("\"\n")
		}
	}
	for _, note := range s.d.Notes {
		s.w.WriteString("note \"")
		s.w.WriteString(note)
		s.w.WriteString("\"\n")
	}
}

func (s *printer) printNamespace(id ast.NamespaceID) {
	ns := s.d.Namespace(id)
	s.w.WriteString("namespace ")
	s.w.WriteString(identSurface(ns.Name))
	s.w.WriteString(" {\n")
	s.w.IndentPush()
	for _, cid := range ns.Classes {
		s.printClass(cid)
	}
	for _, child := range ns.Children {
		s.printNamespace(child)
	}
	s.w.IndentPop()
	s.w.WriteString("}\n")
}

// printClass emits the declaration line followed by one 'Name : member' line
// per member. Inside a namespace block the bare name is enough; the block
// provides the qualification.
func (s *printer) printClass(id ast.ClassID) {
	c := s.d.Class(id)
	name := identSurface(c.Name)
	s.w.WriteString("class ")
	s.w.WriteString(name)
	s.w.Newline()
	for i := range c.Members {
		s.w.WriteString(name)
		s.w.WriteString(" : ")
		s.printMember(&c.Members[i])
		s.w.Newline()
	}
}

func (s *printer) printMember(m *ast.Member) {
	s.w.WriteString(m.Visibility.Symbol())

	if m.Kind == ast.MemberField {
		switch m.Notation {
		case ast.NotationPrefix:
			s.w.WriteString(identSurface(m.Type))
			s.w.WriteString(" ")
			s.w.WriteString(identSurface(m.Name))
		case ast.NotationPostfix:
			s.w.WriteString(identSurface(m.Name))
			s.w.WriteString(": ")
			s.w.WriteString(identSurface(m.Type))
		default:
			s.w.WriteString(identSurface(m.Name))
		}
		if m.Static {
			s.w.WriteString("$")
		}
		return
	}

	if m.ReturnNotation == ast.NotationPrefix {
		s.w.WriteString(identSurface(m.Return))
		s.w.WriteString(" ")
	}
	s.w.WriteString(identSurface(m.Name))
	s.w.WriteString("(")
	for i, p := range m.Params {
		if i > 0 {
			s.w.WriteString(", ")
		}
		switch p.Notation {
		case ast.NotationPrefix:
			s.w.WriteString(identSurface(p.Type))
			s.w.WriteString(" ")
			s.w.WriteString(identSurface(p.Name))
		case ast.NotationPostfix:
			s.w.WriteString(identSurface(p.Name))
			s.w.WriteString(": ")
			s.w.WriteString(identSurface(p.Type))
		default:
			s.w.WriteString(identSurface(p.Name))
		}
	}
	s.w.WriteString(")")
	if m.Static {
		s.w.WriteString("$")
	}
	if m.ReturnNotation == ast.NotationPostfix {
		s.w.WriteString(" ")
		s.w.WriteString(identSurface(m.Return))
	}
}

func (s *printer) printRelationship(r ast.Relationship) {
	s.w.WriteString(s.qualifiedRef(s.d.Class(r.From)))
	if r.FromCard != "" {
		s.w.WriteString(" \"")
		s.w.WriteString(r.FromCard)
		s.w.WriteString("\"")
	}
	s.w.WriteString(" ")
	s.w.WriteString(r.Arrow())
	if r.ToCard != "" {
		s.w.WriteString(" \"")
		s.w.WriteString(r.ToCard)
		s.w.WriteString("\"")
	}
	s.w.WriteString(" ")
	s.w.WriteString(s.qualifiedRef(s.d.Class(r.To)))
	if r.Label != "" {
		s.w.WriteString(" : ")
		s.w.WriteString(r.Label)
	}
	s.w.Newline()
}

// qualifiedRef renders a class reference for relationship and note
// statements: the '::' path with each segment in its surface form.
func (s *printer) qualifiedRef(c *ast.Class) string {
	var parts []string
	parts = append(parts, identSurface(c.Name))
	for id := c.Namespace; id.IsValid(); {
		ns := s.d.Namespace(id)
		if ns.IsRoot() {
			break
		}
		parts = append(parts, identSurface(ns.Name))
		id = ns.Parent
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "::")
}

// identSurface renders an identifier, adding backticks for names that were
// escaped in the source or that could not survive a round trip bare.
func identSurface(id ast.Ident) string {
	if id.Escaped || needsEscape(id.Text) {
		return "`" + id.Text + "`"
	}
	return id.Text
}

func needsEscape(name string) bool {
	return strings.ContainsFunc(name, func(r rune) bool {
		switch r {
		case ' ', '\t', '!', '@', '#', '$', '%', '^', '&', '*', '(', ')':
			return true
		}
		return false
	})
}
