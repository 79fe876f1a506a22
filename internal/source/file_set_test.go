package source

import "testing"

func TestAddVirtualNormalizesCRLF(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.mmd", []byte("classDiagram\r\nclass A\r\n"))
	f := fs.Get(id)

	if string(f.Content) != "classDiagram\nclass A\n" {
		t.Errorf("content not normalized: %q", f.Content)
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("FileNormalizedCRLF flag not set")
	}
	if f.Flags&FileVirtual == 0 {
		t.Errorf("FileVirtual flag not set")
	}
}

func TestAddVirtualRemovesBOM(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("bom.mmd", []byte("\xEF\xBB\xBFclassDiagram\n"))
	f := fs.Get(id)

	if string(f.Content) != "classDiagram\n" {
		t.Errorf("BOM not removed: %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 {
		t.Errorf("FileHadBOM flag not set")
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.mmd", []byte("classDiagram\nclass Animal\n"))

	start, end := fs.Resolve(Span{File: id, Start: 13, End: 18})
	if start.Line != 2 || start.Col != 1 {
		t.Errorf("start = %d:%d, want 2:1", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 6 {
		t.Errorf("end = %d:%d, want 2:6", end.Line, end.Col)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.mmd", []byte("classDiagram\nclass Animal\nclass Dog"))
	f := fs.Get(id)

	if got := f.GetLine(1); got != "classDiagram" {
		t.Errorf("line 1 = %q", got)
	}
	if got := f.GetLine(2); got != "class Animal" {
		t.Errorf("line 2 = %q", got)
	}
	if got := f.GetLine(3); got != "class Dog" {
		t.Errorf("line 3 = %q", got)
	}
	if got := f.GetLine(4); got != "" {
		t.Errorf("line 4 = %q, want empty", got)
	}
}

func TestGetByPath(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("dir/t.mmd", []byte("classDiagram\n"))
	if _, ok := fs.GetByPath("dir/t.mmd"); !ok {
		t.Fatalf("GetByPath failed for known path")
	}
	if _, ok := fs.GetByPath("missing.mmd"); ok {
		t.Fatalf("GetByPath succeeded for unknown path")
	}
}
