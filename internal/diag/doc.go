// Package diag defines the diagnostic model shared by the lexer and parser.
//
// Diagnostic is the central record: severity, a stable numeric Code, a
// message, the primary source.Span, and optional notes. Phases emit through
// a Reporter so storage stays decoupled; BagReporter aggregates into a Bag,
// which supports sorting, deduplication, and merge across files.
//
// Rendering lives in internal/diagfmt; this package performs no formatting
// or IO.
package diag
