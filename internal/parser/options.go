package parser

import (
	"mermparse/internal/diag"
)

// UnsupportedMode decides what happens when the parser meets a construct it
// recognizes but does not model (annotations, two-way relationships,
// lollipop interfaces, styling directives, class labels, generics, abstract
// markers).
type UnsupportedMode uint8

const (
	// UnsupportedError reports the construct as an error. Default.
	UnsupportedError UnsupportedMode = iota
	// UnsupportedSkipWarn reports a warning and skips the construct.
	UnsupportedSkipWarn
)

// DefaultMaxDepth bounds namespace nesting.
const DefaultMaxDepth = 32

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter

	// SkipInvalid keeps parsing after a malformed statement by resyncing
	// to the next line. When false the parser stops at the first syntax
	// error.
	SkipInvalid bool

	// Unsupported selects the policy for recognized-but-unmodeled
	// constructs.
	Unsupported UnsupportedMode

	// MaxDepth bounds namespace nesting; 0 means DefaultMaxDepth.
	MaxDepth uint
}

// Enough reports whether the error limit was reached.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

func (o *Options) maxDepth() uint {
	if o.MaxDepth == 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}
