package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"mermparse/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "mermparse",
	Short: "Mermaid class diagram parser and formatter",
	Long:  `mermparse parses Mermaid class diagrams into a structured model, reports precise diagnostics, and re-emits a canonical form`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
