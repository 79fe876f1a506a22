package lexer

import (
	"mermparse/internal/diag"
	"mermparse/internal/source"
)

type Options struct {
	// Reporter may be nil; lexing continues either way, errors are just
	// not recorded.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
