package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"mermparse/internal/diagfmt"
	"mermparse/internal/driver"
	"mermparse/internal/serializer"
	"mermparse/internal/source"
	"mermparse/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.mmd|directory>",
	Short: "Parse and round-trip-check every diagram in a directory",
	Long:  `Check parses all *.mmd and *.mermaid files under a directory in parallel, verifies that each one survives a serialize/reparse round trip, and caches results for unchanged files`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().Bool("no-cache", false, "ignore and skip the on-disk result cache")
	checkCmd.Flags().Bool("ui", false, "show interactive progress")
	checkCmd.Flags().Int("indent", 0, "spaces per indent level for the canonical form (0=default)")
	checkCmd.Flags().Bool("tabs", false, "indent the canonical form with tabs")
	registerParseFlags(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	dir := args[0]

	// a single file is allowed; the walk visits just that file
	startDir := dir
	if st, err := os.Stat(dir); err == nil && !st.IsDir() {
		startDir = filepath.Dir(dir)
	}

	opts, err := driverOptions(cmd, startDir)
	if err != nil {
		return err
	}
	sopts, err := serializerOptions(cmd, startDir)
	if err != nil {
		return err
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}

	var cache *driver.DiskCache
	if noCache, _ := cmd.Flags().GetBool("no-cache"); !noCache {
		cache, err = driver.OpenDiskCache("mermparse")
		if err != nil {
			// a broken cache directory should not block checking
			fmt.Fprintf(os.Stderr, "warning: disk cache unavailable: %v\n", err)
			cache = nil
		}
	}

	useUI, _ := cmd.Flags().GetBool("ui")
	useUI = useUI && isTerminal(os.Stdout)

	var fileSet *source.FileSet
	var results []driver.CheckResult
	if useUI {
		fileSet, results, err = runCheckWithUI(cmd.Context(), dir, opts, sopts, jobs, cache)
	} else {
		fileSet, results, err = driver.CheckDir(cmd.Context(), dir, opts, sopts, jobs, cache, nil)
	}
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	popts := prettyOpts(cmd)

	failed := 0
	for _, r := range results {
		if r.Bag.HasErrors() || r.Bag.HasWarnings() {
			r.Bag.Sort()
			diagfmt.Pretty(os.Stderr, r.Bag, fileSet, popts)
		}
		if r.Bag.HasErrors() || !r.RoundTripOK {
			failed++
			if !quiet {
				fmt.Fprintf(os.Stderr, "FAIL %s\n", r.Path)
			}
		}
	}

	if !quiet {
		fmt.Fprintf(os.Stdout, "checked %d files, %d failed\n", len(results), failed)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

type checkOutcome struct {
	fileSet *source.FileSet
	results []driver.CheckResult
	err     error
}

func runCheckWithUI(ctx context.Context, dir string, opts driver.Options, sopts serializer.Options, jobs int, cache *driver.DiskCache) (*source.FileSet, []driver.CheckResult, error) {
	files, err := driver.ListDiagramFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		fs, results, err := driver.CheckDir(ctx, dir, opts, sopts, jobs, cache, events)
		outcomeCh <- checkOutcome{fileSet: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("checking diagrams", files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
