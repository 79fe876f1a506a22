package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"mermparse/internal/serializer"
)

func writeDiagrams(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"good.mmd":     "classDiagram\nclass Animal\nAnimal <|-- Duck\n",
		"broken.mmd":   "classDiagram\nclass {\n",
		"nested/b.mmd": "classDiagram\nnamespace A { class B }\n",
		"ignored.txt":  "not a diagram",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestListDiagramFiles(t *testing.T) {
	dir := writeDiagrams(t)
	files, err := ListDiagramFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 3 {
		t.Fatalf("files = %v", files)
	}
	// sorted order
	if filepath.Base(files[0]) != "broken.mmd" {
		t.Errorf("order: %v", files)
	}
}

func TestCheckDir(t *testing.T) {
	dir := writeDiagrams(t)
	_, results, err := CheckDir(context.Background(), dir, Options{}, serializer.Options{}, 2, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d", len(results))
	}

	byName := map[string]CheckResult{}
	for _, r := range results {
		byName[filepath.Base(r.Path)] = r
	}

	if r := byName["good.mmd"]; r.Bag.HasErrors() || !r.RoundTripOK {
		t.Errorf("good.mmd: errors=%v roundtrip=%v", r.Bag.HasErrors(), r.RoundTripOK)
	}
	if r := byName["broken.mmd"]; !r.Bag.HasErrors() || r.RoundTripOK {
		t.Errorf("broken.mmd should fail")
	}
	if r := byName["b.mmd"]; !r.RoundTripOK {
		t.Errorf("nested b.mmd should pass")
	}
}

func TestCheckDirEmpty(t *testing.T) {
	_, results, err := CheckDir(context.Background(), t.TempDir(), Options{}, serializer.Options{}, 0, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("results = %d", len(results))
	}
}

func TestCheckDirUsesCache(t *testing.T) {
	dir := writeDiagrams(t)
	cache := testCache(t)

	_, first, err := CheckDir(context.Background(), dir, Options{}, serializer.Options{}, 1, cache, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range first {
		if r.Cached {
			t.Errorf("%s cached on cold run", r.Path)
		}
	}

	_, second, err := CheckDir(context.Background(), dir, Options{}, serializer.Options{}, 1, cache, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range second {
		if !r.Cached {
			t.Errorf("%s not cached on warm run", r.Path)
		}
		if filepath.Base(r.Path) == "good.mmd" && !r.RoundTripOK {
			t.Error("cached round-trip flag lost")
		}
	}
}

func TestCheckDirEmitsEvents(t *testing.T) {
	dir := writeDiagrams(t)
	events := make(chan Event, 64)
	_, _, err := CheckDir(context.Background(), dir, Options{}, serializer.Options{}, 1, nil, events)
	if err != nil {
		t.Fatal(err)
	}
	close(events)

	sawError, sawDone := false, false
	for ev := range events {
		switch ev.Status {
		case StatusError:
			sawError = true
		case StatusDone:
			sawDone = true
		}
	}
	if !sawError || !sawDone {
		t.Errorf("events: error=%v done=%v", sawError, sawDone)
	}
}
