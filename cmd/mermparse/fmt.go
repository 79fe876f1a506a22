package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"mermparse/internal/diagfmt"
	"mermparse/internal/driver"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] file.mmd",
	Short: "Rewrite a class diagram in canonical form",
	Long:  `Fmt parses a class diagram and emits the canonical serialization: normalized arrows, grouped members, and consistent indentation`,
	Args:  cobra.ExactArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().Bool("write", false, "rewrite the file in place instead of printing to stdout")
	fmtCmd.Flags().Int("indent", 0, "spaces per indent level (0=default)")
	fmtCmd.Flags().Bool("tabs", false, "indent with tabs")
	registerParseFlags(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	opts, err := driverOptions(cmd, filepath.Dir(filePath))
	if err != nil {
		return err
	}
	sopts, err := serializerOptions(cmd, filepath.Dir(filePath))
	if err != nil {
		return err
	}

	out, result, err := driver.Format(filePath, opts, sopts)
	if err != nil {
		return fmt.Errorf("formatting failed: %w", err)
	}

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, prettyOpts(cmd))
	}
	if result.Bag.HasErrors() {
		return fmt.Errorf("cannot format a file with parse errors")
	}

	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return err
	}
	if write {
		return os.WriteFile(filePath, out, 0o644)
	}

	_, err = os.Stdout.Write(out)
	return err
}
