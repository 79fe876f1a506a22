package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"mermparse/internal/diagfmt"
	"mermparse/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.mmd",
	Short: "Parse a class diagram file and output its model",
	Long:  `Parse analyzes a Mermaid class diagram and outputs the resulting model of namespaces, classes, members, and relationships`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	registerParseFlags(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	opts, err := driverOptions(cmd, filepath.Dir(filePath))
	if err != nil {
		return err
	}

	result, err := driver.Parse(filePath, opts)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, prettyOpts(cmd))
	}
	if result.Bag.HasErrors() {
		return fmt.Errorf("parsing produced errors")
	}

	switch format {
	case "pretty":
		return diagfmt.FormatDiagramPretty(os.Stdout, result.Diagram)
	case "json":
		return diagfmt.FormatDiagramJSON(os.Stdout, result.Diagram)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
