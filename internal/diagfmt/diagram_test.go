package diagfmt

import (
	"strings"
	"testing"

	"mermparse/internal/ast"
)

func zooDiagram() *ast.Diagram {
	d := ast.NewDiagram()
	d.Direction = ast.DirLeftRight

	zoo := d.EnsureNamespace(d.Root(), ast.Ident{Text: "Zoo"})
	animal := d.EnsureClass(zoo, ast.Ident{Text: "Animal"})
	d.Class(animal).Members = append(d.Class(animal).Members, ast.Member{
		Kind:       ast.MemberField,
		Visibility: ast.VisPublic,
		Name:       ast.Ident{Text: "name"},
		Type:       ast.Ident{Text: "String"},
		Notation:   ast.NotationPrefix,
	})

	duck := d.EnsureClass(d.Root(), ast.Ident{Text: "Duck"})
	d.Relationships = append(d.Relationships, ast.Relationship{
		From: duck,
		To:   animal,
		Kind: ast.RelInheritance,
	})
	d.Notes = append(d.Notes, "zoo model")
	return d
}

func TestBuildDiagramOutput(t *testing.T) {
	out := BuildDiagramOutput(zooDiagram())

	if out.Direction != "LR" {
		t.Errorf("direction = %q", out.Direction)
	}
	if len(out.Classes) != 1 || out.Classes[0].Name != "Duck" {
		t.Errorf("root classes = %+v", out.Classes)
	}
	if len(out.Namespaces) != 1 || out.Namespaces[0].Name != "Zoo" {
		t.Fatalf("namespaces = %+v", out.Namespaces)
	}
	cls := out.Namespaces[0].Classes
	if len(cls) != 1 || cls[0].Name != "Animal" {
		t.Fatalf("namespace classes = %+v", cls)
	}
	m := cls[0].Members[0]
	if m.Kind != "field" || m.Visibility != "public" || m.Type != "String" || m.Notation != "prefix" {
		t.Errorf("member = %+v", m)
	}

	if len(out.Relationships) != 1 {
		t.Fatalf("relationships = %+v", out.Relationships)
	}
	rel := out.Relationships[0]
	if rel.From != "Duck" || rel.To != "Zoo::Animal" || rel.Kind != "inheritance" {
		t.Errorf("relationship = %+v", rel)
	}
	if len(out.Notes) != 1 || out.Notes[0] != "zoo model" {
		t.Errorf("notes = %+v", out.Notes)
	}
}

func TestFormatDiagramPretty(t *testing.T) {
	var sb strings.Builder
	if err := FormatDiagramPretty(&sb, zooDiagram()); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	for _, want := range []string{
		"direction: LR",
		"namespace Zoo",
		"class Animal (1 members)",
		"relation: Duck --|> Zoo::Animal",
		`note: "zoo model"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestFormatDiagramJSONIsValid(t *testing.T) {
	var sb strings.Builder
	if err := FormatDiagramJSON(&sb, zooDiagram()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), `"from": "Duck"`) {
		t.Errorf("got:\n%s", sb.String())
	}
}
