// Package parser turns a token stream into an ast.Diagram.
//
// The parser is line-oriented: newlines separate statements, and error
// recovery resyncs to the next line so one malformed statement does not
// poison the rest of the file. Classes referenced before (or without) a
// declaration are created implicitly, matching how Mermaid itself treats
// relationship endpoints.
package parser
