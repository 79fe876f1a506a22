package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mermparse/internal/diagfmt"
	"mermparse/internal/driver"
	"mermparse/internal/project"
	"mermparse/internal/serializer"
)

// parseFlags registers the flags shared by every command that runs the parser.
func registerParseFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("skip-invalid", false, "keep parsing after malformed statements")
	cmd.Flags().Bool("lenient-unsupported", false, "downgrade unsupported constructs to warnings")
	cmd.Flags().Uint("max-depth", 0, "maximum namespace nesting depth (0=default)")
}

// driverOptions assembles driver options from the manifest (if any) and
// command flags; flags that were set explicitly win over the manifest.
func driverOptions(cmd *cobra.Command, startDir string) (driver.Options, error) {
	opts := driver.Options{}
	if manifest, ok, err := project.LoadManifest(startDir); err != nil {
		return opts, err
	} else if ok {
		opts = driver.OptionsFromManifest(manifest.Config.Check)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return opts, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if cmd.Root().PersistentFlags().Changed("max-diagnostics") || opts.MaxDiagnostics == 0 {
		opts.MaxDiagnostics = maxDiagnostics
	}

	if cmd.Flags().Changed("skip-invalid") {
		skip, err := cmd.Flags().GetBool("skip-invalid")
		if err != nil {
			return opts, err
		}
		opts.SkipInvalid = skip
	}
	if cmd.Flags().Changed("lenient-unsupported") {
		lenient, err := cmd.Flags().GetBool("lenient-unsupported")
		if err != nil {
			return opts, err
		}
		opts.LenientUnsupported = lenient
	}
	if cmd.Flags().Changed("max-depth") {
		depth, err := cmd.Flags().GetUint("max-depth")
		if err != nil {
			return opts, err
		}
		opts.MaxDepth = depth
	}
	return opts, nil
}

// serializerOptions reads canonical-output settings, manifest first.
func serializerOptions(cmd *cobra.Command, startDir string) (serializer.Options, error) {
	sopts := serializer.Options{}
	if manifest, ok, err := project.LoadManifest(startDir); err != nil {
		return sopts, err
	} else if ok {
		sopts.IndentWidth = manifest.Config.Format.Indent
		sopts.UseTabs = manifest.Config.Format.Tabs
	}

	if cmd.Flags().Changed("indent") {
		indent, err := cmd.Flags().GetInt("indent")
		if err != nil {
			return sopts, err
		}
		sopts.IndentWidth = indent
	}
	if cmd.Flags().Changed("tabs") {
		tabs, err := cmd.Flags().GetBool("tabs")
		if err != nil {
			return sopts, err
		}
		sopts.UseTabs = tabs
	}
	return sopts, nil
}

// prettyOpts builds diagnostic rendering options from the global color flag.
func prettyOpts(cmd *cobra.Command) diagfmt.PrettyOpts {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
	return diagfmt.PrettyOpts{
		Color:     useColor,
		ShowNotes: true,
	}
}
