package source

import "testing"

func TestSpanEmptyAndLen(t *testing.T) {
	s := Span{File: 0, Start: 3, End: 3}
	if !s.Empty() {
		t.Errorf("expected empty span")
	}
	s.End = 8
	if s.Empty() {
		t.Errorf("expected non-empty span")
	}
	if s.Len() != 5 {
		t.Errorf("Len() = %d, want 5", s.Len())
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 0, Start: 4, End: 8}
	b := Span{File: 0, Start: 2, End: 6}
	c := a.Cover(b)
	if c.Start != 2 || c.End != 8 {
		t.Errorf("Cover = %v, want 0:2-8", c)
	}

	other := Span{File: 1, Start: 0, End: 100}
	c = a.Cover(other)
	if c != a {
		t.Errorf("Cover across files must be a no-op, got %v", c)
	}
}

func TestToLineCol(t *testing.T) {
	content := []byte("classDiagram\nclass Animal\n")
	idx := buildLineIndex(content)

	cases := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{5, 1, 6},
		{12, 1, 13}, // the newline itself still belongs to line 1
		{13, 2, 1},
		{19, 2, 7}, // 'A' of Animal
	}
	for _, tc := range cases {
		lc := toLineCol(idx, tc.off)
		if lc.Line != tc.line || lc.Col != tc.col {
			t.Errorf("toLineCol(%d) = %d:%d, want %d:%d", tc.off, lc.Line, lc.Col, tc.line, tc.col)
		}
	}
}

func TestToLineColSingleLine(t *testing.T) {
	lc := toLineCol(nil, 7)
	if lc.Line != 1 || lc.Col != 8 {
		t.Errorf("toLineCol on single line = %d:%d, want 1:8", lc.Line, lc.Col)
	}
}
