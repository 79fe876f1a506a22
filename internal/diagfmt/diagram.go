package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"mermparse/internal/ast"
)

// MemberJSON mirrors ast.Member for JSON output.
type MemberJSON struct {
	Kind       string      `json:"kind"`
	Visibility string      `json:"visibility"`
	Static     bool        `json:"static,omitempty"`
	Name       string      `json:"name"`
	Type       string      `json:"type,omitempty"`
	Notation   string      `json:"notation,omitempty"`
	Params     []ParamJSON `json:"params,omitempty"`
	Return     string      `json:"return,omitempty"`
}

type ParamJSON struct {
	Name     string `json:"name"`
	Type     string `json:"type,omitempty"`
	Notation string `json:"notation,omitempty"`
}

type ClassJSON struct {
	Name    string       `json:"name"`
	Escaped bool         `json:"escaped,omitempty"`
	Members []MemberJSON `json:"members,omitempty"`
	Notes   []string     `json:"notes,omitempty"`
}

type NamespaceJSON struct {
	Name     string          `json:"name"`
	Classes  []ClassJSON     `json:"classes,omitempty"`
	Children []NamespaceJSON `json:"namespaces,omitempty"`
}

type RelationshipJSON struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Kind     string `json:"kind"`
	Line     string `json:"line"`
	FromCard string `json:"from_cardinality,omitempty"`
	ToCard   string `json:"to_cardinality,omitempty"`
	Label    string `json:"label,omitempty"`
}

type DiagramJSON struct {
	Frontmatter   string             `json:"frontmatter,omitempty"`
	Direction     string             `json:"direction,omitempty"`
	Classes       []ClassJSON        `json:"classes,omitempty"`
	Namespaces    []NamespaceJSON    `json:"namespaces,omitempty"`
	Relationships []RelationshipJSON `json:"relationships,omitempty"`
	Notes         []string           `json:"notes,omitempty"`
}

// BuildDiagramOutput assembles the JSON view of a parsed diagram.
func BuildDiagramOutput(d *ast.Diagram) DiagramJSON {
	out := DiagramJSON{
		Direction: d.Direction.String(),
	}
	if d.Frontmatter != nil {
		out.Frontmatter = d.Frontmatter.Raw
	}

	root := d.Namespace(d.Root())
	for _, cid := range root.Classes {
		out.Classes = append(out.Classes, buildClass(d.Class(cid)))
	}
	for _, nsid := range root.Children {
		out.Namespaces = append(out.Namespaces, buildNamespace(d, nsid))
	}
	for _, r := range d.Relationships {
		out.Relationships = append(out.Relationships, RelationshipJSON{
			From:     d.QualifiedName(r.From),
			To:       d.QualifiedName(r.To),
			Kind:     r.Kind.String(),
			Line:     r.Line.String(),
			FromCard: r.FromCard,
			ToCard:   r.ToCard,
			Label:    r.Label,
		})
	}
	out.Notes = d.Notes
	return out
}

func buildNamespace(d *ast.Diagram, id ast.NamespaceID) NamespaceJSON {
	ns := d.Namespace(id)
	out := NamespaceJSON{Name: ns.Name.Text}
	for _, cid := range ns.Classes {
		out.Classes = append(out.Classes, buildClass(d.Class(cid)))
	}
	for _, child := range ns.Children {
		out.Children = append(out.Children, buildNamespace(d, child))
	}
	return out
}

func buildClass(c *ast.Class) ClassJSON {
	out := ClassJSON{
		Name:    c.Name.Text,
		Escaped: c.Name.Escaped,
		Notes:   c.Notes,
	}
	for i := range c.Members {
		out.Members = append(out.Members, buildMember(&c.Members[i]))
	}
	return out
}

func buildMember(m *ast.Member) MemberJSON {
	out := MemberJSON{
		Kind:       m.Kind.String(),
		Visibility: m.Visibility.String(),
		Static:     m.Static,
		Name:       m.Name.Text,
	}
	if m.Kind == ast.MemberField {
		if m.Notation != ast.NotationNone {
			out.Type = m.Type.Text
			out.Notation = m.Notation.String()
		}
		return out
	}
	for _, p := range m.Params {
		pj := ParamJSON{Name: p.Name.Text}
		if p.Notation != ast.NotationNone {
			pj.Type = p.Type.Text
			pj.Notation = p.Notation.String()
		}
		out.Params = append(out.Params, pj)
	}
	if m.ReturnNotation != ast.NotationNone {
		out.Return = m.Return.Text
		out.Notation = m.ReturnNotation.String()
	}
	return out
}

// FormatDiagramJSON writes the parsed diagram as indented JSON.
func FormatDiagramJSON(w io.Writer, d *ast.Diagram) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagramOutput(d))
}

// FormatDiagramPretty writes a compact human-readable summary of the model.
func FormatDiagramPretty(w io.Writer, d *ast.Diagram) error {
	if d.Frontmatter != nil {
		fmt.Fprintln(w, "frontmatter: present")
	}
	if d.Direction != ast.DirUnset {
		fmt.Fprintf(w, "direction: %s\n", d.Direction)
	}
	root := d.Namespace(d.Root())
	for _, cid := range root.Classes {
		printClassSummary(w, d, cid, 0)
	}
	for _, nsid := range root.Children {
		printNamespaceSummary(w, d, nsid, 0)
	}
	for _, r := range d.Relationships {
		fmt.Fprintf(w, "relation: %s %s %s", d.QualifiedName(r.From), r.Arrow(), d.QualifiedName(r.To))
		if r.Label != "" {
			fmt.Fprintf(w, " : %s", r.Label)
		}
		fmt.Fprintln(w)
	}
	for _, note := range d.Notes {
		fmt.Fprintf(w, "note: %q\n", note)
	}
	return nil
}

func printNamespaceSummary(w io.Writer, d *ast.Diagram, id ast.NamespaceID, depth int) {
	ns := d.Namespace(id)
	fmt.Fprintf(w, "%*snamespace %s\n", depth*2, "", ns.Name.Text)
	for _, cid := range ns.Classes {
		printClassSummary(w, d, cid, depth+1)
	}
	for _, child := range ns.Children {
		printNamespaceSummary(w, d, child, depth+1)
	}
}

func printClassSummary(w io.Writer, d *ast.Diagram, id ast.ClassID, depth int) {
	c := d.Class(id)
	fmt.Fprintf(w, "%*sclass %s (%d members)\n", depth*2, "", c.Name.Text, len(c.Members))
	for _, note := range c.Notes {
		fmt.Fprintf(w, "%*s  note: %q\n", depth*2, "", note)
	}
}
