package driver

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleDiagram = `classDiagram
direction LR
class Animal
Animal : +name String
Animal <|-- Duck : inherits
`

func TestParseBytes(t *testing.T) {
	result := ParseBytes("sample.mmd", []byte(sampleDiagram), Options{})
	if result.Bag.HasErrors() {
		d, _ := result.Bag.FirstError()
		t.Fatalf("unexpected error: %s", d.Message)
	}
	if result.Diagram == nil {
		t.Fatal("nil diagram")
	}
	if _, ok := result.Diagram.LookupClass("Duck"); !ok {
		t.Error("implicit class Duck missing")
	}
	if len(result.Diagram.Relationships) != 1 {
		t.Errorf("relationships = %d", len(result.Diagram.Relationships))
	}
}

func TestParseFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zoo.mmd")
	if err := os.WriteFile(path, []byte(sampleDiagram), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := Parse(path, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if result.Bag.HasErrors() {
		t.Fatal("unexpected errors")
	}
	if result.File.Path == "" {
		t.Error("file metadata missing")
	}
}

func TestParseMissingFile(t *testing.T) {
	if _, err := Parse(filepath.Join(t.TempDir(), "absent.mmd"), Options{}); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLenientUnsupportedDowngradesToWarning(t *testing.T) {
	src := "classDiagram\n<<interface>> Shape\nclass Shape\n"

	strict := ParseBytes("a.mmd", []byte(src), Options{})
	if !strict.Bag.HasErrors() {
		t.Error("default mode should reject annotations")
	}

	lenient := ParseBytes("a.mmd", []byte(src), Options{LenientUnsupported: true, SkipInvalid: true})
	if lenient.Bag.HasErrors() {
		t.Error("lenient mode should not produce errors")
	}
	if !lenient.Bag.HasWarnings() {
		t.Error("lenient mode should still warn")
	}
}

func TestTokenizeBytes(t *testing.T) {
	result := TokenizeBytes("a.mmd", []byte("classDiagram\n"), 0)
	if len(result.Tokens) == 0 {
		t.Fatal("no tokens")
	}
	if result.Bag.HasErrors() {
		t.Error("unexpected lex errors")
	}
}

func TestOptionsFingerprintSeparatesModes(t *testing.T) {
	a := Options{}.fingerprint()
	b := Options{SkipInvalid: true}.fingerprint()
	if a == b {
		t.Error("fingerprint must depend on SkipInvalid")
	}
}

func TestParseDiagnosticsAreBounded(t *testing.T) {
	src := "classDiagram\n??\n??\n??\n??\n"
	result := ParseBytes("a.mmd", []byte(src), Options{MaxDiagnostics: 2, SkipInvalid: true})
	if result.Bag.Len() > 2 {
		t.Errorf("bag holds %d diagnostics, cap 2", result.Bag.Len())
	}
	if !result.Bag.HasErrors() {
		t.Error("expected at least one error")
	}
	if got := result.Bag.Cap(); got != 2 {
		t.Errorf("cap = %d", got)
	}
}
