package diagfmt

import (
	"strings"
	"testing"

	"mermparse/internal/diag"
	"mermparse/internal/source"
)

func testBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("zoo.mmd", []byte("classDiagram\ndirection UP\n"))
	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynBadDirection,
		Message:  "invalid direction \"UP\"",
		Primary:  source.Span{File: id, Start: 23, End: 25},
	})
	return bag, fs
}

func TestPrettyHeaderFormat(t *testing.T) {
	bag, fs := testBag(t)
	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})
	out := sb.String()
	if !strings.Contains(out, "zoo.mmd:2:11: ERROR SYN2007: invalid direction \"UP\"") {
		t.Fatalf("got:\n%s", out)
	}
	if !strings.Contains(out, "direction UP") {
		t.Fatalf("context line missing:\n%s", out)
	}
	if !strings.Contains(out, "^~") {
		t.Fatalf("caret underline missing:\n%s", out)
	}
}

func TestPrettyCaretColumn(t *testing.T) {
	bag, fs := testBag(t)
	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})
	lines := strings.Split(sb.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("got:\n%s", sb.String())
	}
	caret := lines[2]
	// "UP" starts at column 11; the caret line has 4 leading frame spaces
	if want := "    " + strings.Repeat(" ", 10) + "^~"; caret != want {
		t.Fatalf("caret line %q, want %q", caret, want)
	}
}

func TestJSONOutput(t *testing.T) {
	bag, fs := testBag(t)
	var sb strings.Builder
	if err := JSON(&sb, bag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	for _, want := range []string{
		`"severity": "ERROR"`,
		`"code": "SYN2007"`,
		`"file": "zoo.mmd"`,
		`"start_line": 2`,
		`"count": 1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in:\n%s", want, out)
		}
	}
}

func TestJSONMaxTruncates(t *testing.T) {
	bag, fs := testBag(t)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.UnsupAnnotation,
		Message:  "second",
		Primary:  source.Span{File: 0, Start: 0, End: 1},
	})
	var sb strings.Builder
	if err := JSON(&sb, bag, fs, JSONOpts{Max: 1}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), `"count": 1`) {
		t.Fatalf("got:\n%s", sb.String())
	}
}
