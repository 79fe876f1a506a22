package lexer

import (
	"testing"

	"mermparse/internal/diag"
	"mermparse/internal/source"
	"mermparse/internal/token"
)

func lexAll(t *testing.T, src string) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.mmd", []byte(src))
	bag := diag.NewBag(64)
	lx := New(fs.Get(id), Options{Reporter: diag.BagReporter{Bag: bag}})
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, bag
		}
		if len(toks) > 10000 {
			t.Fatal("lexer does not terminate")
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func expectKinds(t *testing.T, src string, want ...token.Kind) {
	t.Helper()
	toks, _ := lexAll(t, src)
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("%q: got %d tokens %v, want %d", src, len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%q: token %d = %v (%q), want %v", src, i, got[i], toks[i].Text, want[i])
		}
	}
}

func TestHeaderAndClass(t *testing.T) {
	expectKinds(t, "classDiagram\nclass Animal",
		token.KwClassDiagram, token.Newline, token.KwClass, token.Ident, token.EOF)
}

func TestArrows(t *testing.T) {
	cases := []struct {
		src  string
		kind token.Kind
	}{
		{"<|--", token.InheritanceL},
		{"--|>", token.InheritanceR},
		{"<|..", token.RealizationL},
		{"..|>", token.RealizationR},
		{"*--", token.CompositionL},
		{"--*", token.CompositionR},
		{"*..", token.CompositionDotL},
		{"..*", token.CompositionDotR},
		{"o--", token.AggregationL},
		{"--o", token.AggregationR},
		{"o..", token.AggregationDotL},
		{"..o", token.AggregationDotR},
		{"<--", token.AssociationL},
		{"-->", token.AssociationR},
		{"<..", token.DependencyL},
		{"..>", token.DependencyR},
		{"--", token.Link},
		{"..", token.DashedLink},
	}
	for _, tc := range cases {
		toks, bag := lexAll(t, "A "+tc.src+" B")
		if bag.Len() != 0 {
			t.Errorf("%q: unexpected diagnostics", tc.src)
		}
		if toks[1].Kind != tc.kind {
			t.Errorf("%q: got %v, want %v", tc.src, toks[1].Kind, tc.kind)
		}
	}
}

func TestArrowsWithoutSpaces(t *testing.T) {
	expectKinds(t, "A--|>B", token.Ident, token.InheritanceR, token.Ident, token.EOF)
	expectKinds(t, "A<|--B", token.Ident, token.InheritanceL, token.Ident, token.EOF)
	expectKinds(t, "A--B", token.Ident, token.Link, token.Ident, token.EOF)
}

func TestHyphenatedIdent(t *testing.T) {
	toks, _ := lexAll(t, "My-Class")
	if toks[0].Kind != token.Ident || toks[0].Text != "My-Class" {
		t.Fatalf("got %v %q", toks[0].Kind, toks[0].Text)
	}
	// the hyphen run before B is an arrow, not part of the name
	expectKinds(t, "A-B--C", token.Ident, token.Link, token.Ident, token.EOF)
}

func TestAggregationLeftVsIdent(t *testing.T) {
	// a lone 'o' glued to the line is the arrow half
	expectKinds(t, "A o-- B", token.Ident, token.AggregationL, token.Ident, token.EOF)
	// but --o glued to a name is a link followed by the name
	expectKinds(t, "A --owner", token.Ident, token.Link, token.Ident, token.EOF)
}

func TestTwoWayAndLollipop(t *testing.T) {
	expectKinds(t, "A <|--|> B", token.Ident, token.TwoWayArrow, token.Ident, token.EOF)
	expectKinds(t, "A <--> B", token.Ident, token.TwoWayArrow, token.Ident, token.EOF)
	expectKinds(t, "A --() B", token.Ident, token.Lollipop, token.Ident, token.EOF)
	expectKinds(t, "A ()-- B", token.Ident, token.Lollipop, token.Ident, token.EOF)
}

func TestEscapedIdent(t *testing.T) {
	toks, bag := lexAll(t, "`My Class`")
	if bag.Len() != 0 {
		t.Fatal("unexpected diagnostics")
	}
	if toks[0].Kind != token.EscapedIdent || toks[0].Text != "My Class" {
		t.Fatalf("got %v %q", toks[0].Kind, toks[0].Text)
	}
}

func TestUnterminatedBacktick(t *testing.T) {
	_, bag := lexAll(t, "`My Class")
	if d, ok := bag.FirstError(); !ok || d.Code != diag.LexUnterminatedBacktick {
		t.Fatal("expected LexUnterminatedBacktick")
	}
}

func TestString(t *testing.T) {
	toks, _ := lexAll(t, `"1..*"`)
	if toks[0].Kind != token.String || toks[0].Text != "1..*" {
		t.Fatalf("got %v %q", toks[0].Kind, toks[0].Text)
	}
}

func TestUnterminatedString(t *testing.T) {
	_, bag := lexAll(t, `note "oops`)
	if d, ok := bag.FirstError(); !ok || d.Code != diag.LexUnterminatedString {
		t.Fatal("expected LexUnterminatedString")
	}
}

func TestCommentTrivia(t *testing.T) {
	toks, bag := lexAll(t, "%% header comment\nclass A")
	if bag.Len() != 0 {
		t.Fatal("unexpected diagnostics")
	}
	// the comment ends up as leading trivia on the newline token
	if toks[0].Kind != token.Newline {
		t.Fatalf("got %v", toks[0].Kind)
	}
	if len(toks[0].Leading) != 1 || toks[0].Leading[0].Kind != token.TriviaComment {
		t.Fatalf("comment trivia not attached: %v", toks[0].Leading)
	}
}

func TestNewlineCoalescing(t *testing.T) {
	expectKinds(t, "A\n\n\nB", token.Ident, token.Newline, token.Ident, token.EOF)
}

func TestMemberLine(t *testing.T) {
	expectKinds(t, "+deposit(amount) bool",
		token.Plus, token.Ident, token.LParen, token.Ident, token.RParen, token.Ident, token.EOF)
	expectKinds(t, "-owner: string",
		token.Minus, token.Ident, token.Colon, token.Ident, token.EOF)
	expectKinds(t, "+run()$",
		token.Plus, token.Ident, token.LParen, token.RParen, token.Dollar, token.EOF)
}

func TestQualifiedName(t *testing.T) {
	expectKinds(t, "models::User",
		token.Ident, token.ColonColon, token.Ident, token.EOF)
}

func TestAnnotationFences(t *testing.T) {
	expectKinds(t, "<<interface>>",
		token.AnnotationOpen, token.Ident, token.AnnotationClose, token.EOF)
}

func TestFrontmatter(t *testing.T) {
	src := "---\ntitle: Animals\nconfig:\n  theme: dark\n---\nclassDiagram\n"
	toks, bag := lexAll(t, src)
	if bag.Len() != 0 {
		t.Fatal("unexpected diagnostics")
	}
	if toks[0].Kind != token.Frontmatter {
		t.Fatalf("got %v", toks[0].Kind)
	}
	if toks[0].Text != "title: Animals\nconfig:\n  theme: dark\n" {
		t.Fatalf("frontmatter text %q", toks[0].Text)
	}
	if toks[1].Kind != token.KwClassDiagram {
		t.Fatalf("after frontmatter got %v", toks[1].Kind)
	}
}

func TestFrontmatterOnlyAtStart(t *testing.T) {
	// a fence later in the file is not frontmatter
	toks, _ := lexAll(t, "classDiagram\n---\n")
	for _, tok := range toks {
		if tok.Kind == token.Frontmatter {
			t.Fatal("mid-file fence must not lex as frontmatter")
		}
	}
}

func TestUnterminatedFrontmatter(t *testing.T) {
	_, bag := lexAll(t, "---\ntitle: x\n")
	if d, ok := bag.FirstError(); !ok || d.Code != diag.LexUnterminatedFence {
		t.Fatal("expected LexUnterminatedFence")
	}
}

func TestRestOfLine(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.mmd", []byte("A --> B : has many\nC"))
	lx := New(fs.Get(id), Options{})
	lx.Next() // A
	lx.Next() // -->
	lx.Next() // B
	lx.Next() // :
	rest := lx.RestOfLine()
	if rest.Kind != token.Text || rest.Text != "has many" {
		t.Fatalf("got %v %q", rest.Kind, rest.Text)
	}
	if next := lx.Next(); next.Kind != token.Newline {
		t.Fatalf("after RestOfLine got %v", next.Kind)
	}
}

func TestRestOfLineRewindsLookahead(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.mmd", []byte("label text here\n"))
	lx := New(fs.Get(id), Options{})
	lx.Peek()
	rest := lx.RestOfLine()
	if rest.Text != "label text here" {
		t.Fatalf("got %q", rest.Text)
	}
}

func TestUnknownChar(t *testing.T) {
	_, bag := lexAll(t, "class A ;")
	if d, ok := bag.FirstError(); !ok || d.Code != diag.LexUnknownChar {
		t.Fatal("expected LexUnknownChar")
	}
}

func TestUnicodeIdent(t *testing.T) {
	toks, bag := lexAll(t, "class Животное")
	if bag.Len() != 0 {
		t.Fatal("unexpected diagnostics")
	}
	if toks[1].Kind != token.Ident || toks[1].Text != "Животное" {
		t.Fatalf("got %v %q", toks[1].Kind, toks[1].Text)
	}
}

func TestGenericTypeTokens(t *testing.T) {
	expectKinds(t, "List~int~ items",
		token.Ident, token.Tilde, token.Ident, token.Tilde, token.Ident, token.EOF)
}
