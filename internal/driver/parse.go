package driver

import (
	"mermparse/internal/ast"
	"mermparse/internal/diag"
	"mermparse/internal/lexer"
	"mermparse/internal/parser"
	"mermparse/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Diagram *ast.Diagram
	Bag     *diag.Bag
}

// Parse loads a file from disk and parses it into a diagram.
func Parse(filePath string, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	return parseLoaded(fs, fileID, opts), nil
}

// ParseBytes parses in-memory content (stdin, tests).
func ParseBytes(name string, content []byte, opts Options) *ParseResult {
	fs := source.NewFileSet()
	return parseLoaded(fs, fs.AddVirtual(name, content), opts)
}

func parseLoaded(fs *source.FileSet, fileID source.FileID, opts Options) *ParseResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(opts.maxDiagnostics())
	popts := opts.parserOptions(bag)

	// lexer diagnostics land in the same bag
	lx := lexer.New(file, lexer.Options{Reporter: popts.Reporter})
	result := parser.ParseFile(fs, lx, popts)

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Diagram: result.Diagram,
		Bag:     bag,
	}
}
