package driver

import (
	"bytes"

	"mermparse/internal/serializer"
	"mermparse/internal/source"
)

// RunRoundTripCheck parses the file, serializes it, re-parses the output, and
// verifies two properties: the reparsed model is structurally equal to the
// original, and serializing again reproduces the same bytes (the canonical
// form is a fixed point). It returns (ok, report string); ok is false as soon
// as the initial parse has errors.
func RunRoundTripCheck(sf *source.File, opts Options, sopts serializer.Options) (success bool, msg string) {
	first := parseFileAgain(sf.Path, sf.Content, opts)
	if first.Bag.HasErrors() {
		return false, "round-trip: initial parse has errors"
	}

	out := serializer.Serialize(first.Diagram, sopts)

	second := parseFileAgain(sf.Path, out, opts)
	if second.Bag.HasErrors() {
		return false, "round-trip: canonical output does not reparse"
	}

	if !first.Diagram.Equal(second.Diagram) {
		return false, "round-trip: model differs after reparse"
	}

	if again := serializer.Serialize(second.Diagram, sopts); !bytes.Equal(out, again) {
		return false, "round-trip: canonical form is not a fixed point"
	}

	return true, "round-trip: OK"
}

func parseFileAgain(path string, content []byte, opts Options) *ParseResult {
	fs := source.NewFileSet()
	return parseLoaded(fs, fs.AddVirtual(path, content), opts)
}
