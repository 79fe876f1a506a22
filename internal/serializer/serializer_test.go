package serializer

import (
	"strings"
	"testing"

	"mermparse/internal/ast"
	"mermparse/internal/diag"
	"mermparse/internal/lexer"
	"mermparse/internal/parser"
	"mermparse/internal/source"
)

func parse(t *testing.T, src string) *ast.Diagram {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.mmd", []byte(src))
	bag := diag.NewBag(64)
	rep := diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: rep})
	res := parser.ParseFile(fs, lx, parser.Options{SkipInvalid: true, Reporter: rep})
	if bag.HasErrors() {
		first, _ := bag.FirstError()
		t.Fatalf("parse errors in %q, first: %s %s", src, first.Code.ID(), first.Message)
	}
	return res.Diagram
}

func roundTrip(t *testing.T, src string) string {
	t.Helper()
	d := parse(t, src)
	out := string(Serialize(d, Options{}))
	d2 := parse(t, out)
	if !d.Equal(d2) {
		t.Fatalf("round trip changed the model:\n-- input --\n%s\n-- output --\n%s", src, out)
	}
	// canonical form must be a fixed point
	out2 := string(Serialize(d2, Options{}))
	if out != out2 {
		t.Fatalf("canonical form is not stable:\n-- first --\n%s\n-- second --\n%s", out, out2)
	}
	return out
}

func TestSerializeSimpleClass(t *testing.T) {
	out := roundTrip(t, "classDiagram\nclass Animal\n")
	if !strings.Contains(out, "class Animal\n") {
		t.Fatalf("output %q", out)
	}
}

func TestSerializeMembersOnePerLine(t *testing.T) {
	src := `classDiagram
class BankAccount {
    +string owner
    -balance: int
    +deposit(amount) bool
}
`
	out := roundTrip(t, src)
	for _, want := range []string{
		"BankAccount : +string owner\n",
		"BankAccount : -balance: int\n",
		"BankAccount : +deposit(amount) bool\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestNotationPreserved(t *testing.T) {
	out := roundTrip(t, "classDiagram\nA : +int age\nA : +name: string\nA : +flag\n")
	if !strings.Contains(out, "A : +int age\n") {
		t.Errorf("prefix notation lost:\n%s", out)
	}
	if !strings.Contains(out, "A : +name: string\n") {
		t.Errorf("postfix notation lost:\n%s", out)
	}
	if !strings.Contains(out, "A : +flag\n") {
		t.Errorf("untyped field grew a type:\n%s", out)
	}
}

func TestArrowsCanonicalizeRight(t *testing.T) {
	out := roundTrip(t, "classDiagram\nAnimal <|-- Dog\n")
	if !strings.Contains(out, "Dog --|> Animal\n") {
		t.Fatalf("left arrow not normalized:\n%s", out)
	}
}

func TestCardinalitiesAndLabel(t *testing.T) {
	out := roundTrip(t, "classDiagram\nCustomer \"1\" --> \"*\" Order : places\n")
	if !strings.Contains(out, "Customer \"1\" --> \"*\" Order : places\n") {
		t.Fatalf("got:\n%s", out)
	}
}

func TestSwappedCardinalitiesSerialize(t *testing.T) {
	out := roundTrip(t, "classDiagram\nA \"1\" <|-- \"many\" B\n")
	if !strings.Contains(out, "B \"many\" --|> \"1\" A\n") {
		t.Fatalf("got:\n%s", out)
	}
}

func TestEscapedNamePreserved(t *testing.T) {
	out := roundTrip(t, "classDiagram\nclass `My Class`\n")
	if !strings.Contains(out, "class `My Class`\n") {
		t.Fatalf("got:\n%s", out)
	}
}

func TestNeedlesslyEscapedNameStaysEscaped(t *testing.T) {
	out := roundTrip(t, "classDiagram\nclass `Simple`\n")
	if !strings.Contains(out, "class `Simple`\n") {
		t.Fatalf("escaping flag must survive even for safe names:\n%s", out)
	}
}

func TestProgrammaticUnsafeNameGetsEscaped(t *testing.T) {
	d := ast.NewDiagram()
	d.EnsureClass(d.Root(), ast.Ident{Text: "Has Space"})
	out := string(Serialize(d, Options{}))
	if !strings.Contains(out, "class `Has Space`\n") {
		t.Fatalf("got:\n%s", out)
	}
}

func TestNamespaceBlocks(t *testing.T) {
	src := `classDiagram
namespace models {
    class User {
        +string name
    }
    namespace auth {
        class Session
    }
}
`
	out := roundTrip(t, src)
	if !strings.Contains(out, "namespace models {\n") {
		t.Fatalf("got:\n%s", out)
	}
	if !strings.Contains(out, "namespace auth {\n") {
		t.Fatalf("nested namespace lost:\n%s", out)
	}
	if !strings.Contains(out, "User : +string name\n") {
		t.Fatalf("member inside namespace lost:\n%s", out)
	}
}

func TestQualifiedRelationshipRef(t *testing.T) {
	src := `classDiagram
namespace models {
    class User
}
models::User --> Session
`
	out := roundTrip(t, src)
	if !strings.Contains(out, "models::User --> Session\n") {
		t.Fatalf("got:\n%s", out)
	}
}

func TestDirectionAndFrontmatter(t *testing.T) {
	src := "---\ntitle: Zoo\n---\nclassDiagram\ndirection TD\nclass A\n"
	out := roundTrip(t, src)
	if !strings.HasPrefix(out, "---\ntitle: Zoo\n---\nclassDiagram\n") {
		t.Fatalf("got:\n%s", out)
	}
	if !strings.Contains(out, "direction TB\n") {
		t.Fatalf("TD must canonicalize to TB:\n%s", out)
	}
}

func TestNotesSerialized(t *testing.T) {
	src := "classDiagram\nclass A\nnote for A \"attached\"\nnote \"free\"\n"
	out := roundTrip(t, src)
	if !strings.Contains(out, "note for A \"attached\"\n") {
		t.Fatalf("got:\n%s", out)
	}
	if !strings.Contains(out, "note \"free\"\n") {
		t.Fatalf("got:\n%s", out)
	}
}

func TestStaticClassifierSerialized(t *testing.T) {
	out := roundTrip(t, "classDiagram\nA : +create()$\nA : +counter$\n")
	if !strings.Contains(out, "A : +create()$\n") {
		t.Fatalf("got:\n%s", out)
	}
	if !strings.Contains(out, "A : +counter$\n") {
		t.Fatalf("got:\n%s", out)
	}
}

func TestPrefixReturnSerialized(t *testing.T) {
	out := roundTrip(t, "classDiagram\nA : +int getAge()\n")
	if !strings.Contains(out, "A : +int getAge()\n") {
		t.Fatalf("got:\n%s", out)
	}
}

func TestImplicitClassesAppear(t *testing.T) {
	out := roundTrip(t, "classDiagram\nDog --|> Animal\n")
	if !strings.Contains(out, "class Dog\n") || !strings.Contains(out, "class Animal\n") {
		t.Fatalf("implicitly created classes must serialize:\n%s", out)
	}
}

func TestTabsOption(t *testing.T) {
	d := parse(t, "classDiagram\nnamespace n {\n    class A\n}\n")
	out := string(Serialize(d, Options{UseTabs: true}))
	if !strings.Contains(out, "\tclass A\n") {
		t.Fatalf("got:\n%q", out)
	}
}
