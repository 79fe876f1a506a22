package driver

import (
	"testing"

	"mermparse/internal/serializer"
	"mermparse/internal/source"
)

func virtualFile(t *testing.T, name, content string) *source.File {
	t.Helper()
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual(name, []byte(content)))
}

func TestRoundTripCheckOK(t *testing.T) {
	sf := virtualFile(t, "zoo.mmd", `classDiagram
direction TD
namespace Zoo {
    class Animal
}
Zoo::Animal : +String name
Zoo::Animal : +eat(Food food) bool
Animal2 --|> Zoo::Animal
note "zoo model"
`)
	ok, msg := RunRoundTripCheck(sf, Options{}, serializer.Options{})
	if !ok {
		t.Fatalf("round-trip failed: %s", msg)
	}
}

func TestRoundTripCheckRejectsBrokenInput(t *testing.T) {
	sf := virtualFile(t, "bad.mmd", "classDiagram\nclass {\n")
	ok, msg := RunRoundTripCheck(sf, Options{}, serializer.Options{})
	if ok {
		t.Fatalf("expected failure, got %s", msg)
	}
}

func TestRoundTripCheckWithTabs(t *testing.T) {
	sf := virtualFile(t, "ns.mmd", "classDiagram\nnamespace A { class B }\n")
	ok, msg := RunRoundTripCheck(sf, Options{}, serializer.Options{UseTabs: true})
	if !ok {
		t.Fatalf("round-trip failed: %s", msg)
	}
}
