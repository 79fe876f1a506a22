package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "mermparse.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[package]
name = "zoo"

[format]
indent = 2
tabs = false

[check]
skip_invalid = true
max_depth = 16
`)

	m, ok, err := LoadManifest(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("manifest not found")
	}
	if m.Config.Package.Name != "zoo" {
		t.Errorf("name = %q", m.Config.Package.Name)
	}
	if m.Config.Format.Indent != 2 {
		t.Errorf("indent = %d", m.Config.Format.Indent)
	}
	if !m.Config.Check.SkipInvalid {
		t.Error("skip_invalid not set")
	}
	if m.Config.Check.MaxDepth != 16 {
		t.Errorf("max_depth = %d", m.Config.Check.MaxDepth)
	}
	if m.Root != dir {
		t.Errorf("root = %q, want %q", m.Root, dir)
	}
}

func TestLoadManifestWalksUp(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[package]\nname = \"zoo\"\n")
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	m, ok, err := LoadManifest(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("manifest not found from nested dir")
	}
	if m.Root != dir {
		t.Errorf("root = %q, want %q", m.Root, dir)
	}
}

func TestLoadManifestMissingIsNotError(t *testing.T) {
	_, ok, err := LoadManifest(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected no manifest")
	}
}

func TestLoadManifestRejectsMissingName(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[package]\n")
	if _, _, err := LoadManifest(dir); err == nil {
		t.Error("expected error for missing [package].name")
	}
}

func TestCombineDependsOnOrder(t *testing.T) {
	a := DigestOf([]byte("a"))
	b := DigestOf([]byte("b"))
	if Combine(a, b) == Combine(b, a) {
		t.Error("combine must be order-sensitive")
	}
	if Combine(a) == a {
		t.Error("combine must rehash even with no extras")
	}
}
