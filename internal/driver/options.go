package driver

import (
	"fmt"

	"fortio.org/safecast"

	"mermparse/internal/diag"
	"mermparse/internal/parser"
	"mermparse/internal/project"
)

// DefaultMaxDiagnostics caps diagnostic output when the caller passes zero.
const DefaultMaxDiagnostics = 100

// Options configures a single parse run.
type Options struct {
	// MaxDiagnostics bounds the diagnostics bag; 0 means
	// DefaultMaxDiagnostics.
	MaxDiagnostics int

	// SkipInvalid keeps parsing after malformed statements instead of
	// stopping at the first syntax error.
	SkipInvalid bool

	// LenientUnsupported downgrades recognized-but-unmodeled constructs
	// (annotations, two-way relationships, lollipops, styling, labels,
	// generics, abstract markers) from errors to warnings. The construct
	// is skipped either way.
	LenientUnsupported bool

	// MaxDepth bounds namespace nesting; 0 keeps the parser default.
	MaxDepth uint
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return DefaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

// OptionsFromManifest maps the [check] section of mermparse.toml onto
// driver options.
func OptionsFromManifest(cfg project.CheckConfig) Options {
	return Options{
		MaxDiagnostics:     cfg.MaxDiagnostics,
		SkipInvalid:        cfg.SkipInvalid,
		LenientUnsupported: cfg.LenientUnsupported,
		MaxDepth:           cfg.MaxDepth,
	}
}

func (o Options) parserOptions(bag *diag.Bag) parser.Options {
	maxErrors, err := safecast.Conv[uint](o.maxDiagnostics())
	if err != nil {
		panic(fmt.Errorf("max diagnostics overflow: %w", err))
	}
	mode := parser.UnsupportedError
	if o.LenientUnsupported {
		mode = parser.UnsupportedSkipWarn
	}
	return parser.Options{
		Reporter:    diag.BagReporter{Bag: bag},
		MaxErrors:   maxErrors,
		SkipInvalid: o.SkipInvalid,
		Unsupported: mode,
		MaxDepth:    o.MaxDepth,
	}
}

// fingerprint feeds the parse-relevant options into cache keys.
func (o Options) fingerprint() project.Digest {
	return project.DigestOf(fmt.Appendf(nil, "v1|%t|%t|%d",
		o.SkipInvalid, o.LenientUnsupported, o.MaxDepth))
}
