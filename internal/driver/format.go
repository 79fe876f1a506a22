package driver

import (
	"mermparse/internal/serializer"
)

// Format parses a file and renders its canonical form.
func Format(filePath string, opts Options, sopts serializer.Options) ([]byte, *ParseResult, error) {
	result, err := Parse(filePath, opts)
	if err != nil {
		return nil, nil, err
	}
	if result.Bag.HasErrors() {
		return nil, result, nil
	}
	return serializer.Serialize(result.Diagram, sopts), result, nil
}

// FormatBytes is Format over in-memory content.
func FormatBytes(name string, content []byte, opts Options, sopts serializer.Options) ([]byte, *ParseResult) {
	result := ParseBytes(name, content, opts)
	if result.Bag.HasErrors() {
		return nil, result
	}
	return serializer.Serialize(result.Diagram, sopts), result
}
