package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"mermparse/internal/diag"
	"mermparse/internal/project"
	"mermparse/internal/serializer"
	"mermparse/internal/source"
)

// CheckResult is the outcome of checking a single diagram file.
type CheckResult struct {
	Path        string
	FileID      source.FileID
	Bag         *diag.Bag
	RoundTripOK bool
	Cached      bool
}

// ListDiagramFiles returns a sorted list of all *.mmd and *.mermaid files
// under dir.
func ListDiagramFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && (strings.HasSuffix(path, ".mmd") || strings.HasSuffix(path, ".mermaid")) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// CheckDir parses and round-trip-checks every diagram file under dir in
// parallel. cache and events may be nil. Result indexes follow the sorted
// file order.
func CheckDir(ctx context.Context, dir string, opts Options, sopts serializer.Options, jobs int, cache *DiskCache, events chan<- Event) (*source.FileSet, []CheckResult, error) {
	files, err := ListDiagramFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Preload files up front; FileSet is not safe for concurrent Add.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Index per goroutine is unique, no mutex needed.
	results := make([]CheckResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, hadError := loadErrors[path]; hadError {
				bag := diag.NewBag(opts.maxDiagnostics())
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
					Primary:  source.Span{},
				})
				results[i] = CheckResult{Path: path, Bag: bag}
				emit(events, Event{File: path, Stage: StageParse, Status: StatusError})
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			if payload, hit := lookupCheckCache(cache, file, opts, sopts); hit {
				results[i] = CheckResult{
					Path:        path,
					FileID:      fileID,
					Bag:         diag.NewBag(opts.maxDiagnostics()),
					RoundTripOK: payload.RoundTripOK,
					Cached:      true,
				}
				status := StatusDone
				if !payload.RoundTripOK || payload.ErrorCount > 0 {
					status = StatusError
				}
				emit(events, Event{File: path, Stage: StageRoundTrip, Status: status})
				return nil
			}

			emit(events, Event{File: path, Stage: StageParse, Status: StatusWorking})

			result := parseLoaded(fileSet, fileID, opts)
			bag := result.Bag

			roundTripOK := false
			if !bag.HasErrors() {
				emit(events, Event{File: path, Stage: StageRoundTrip, Status: StatusWorking})
				roundTripOK, _ = RunRoundTripCheck(file, opts, sopts)
			}

			results[i] = CheckResult{
				Path:        path,
				FileID:      fileID,
				Bag:         bag,
				RoundTripOK: roundTripOK,
			}

			storeCheckCache(cache, file, opts, sopts, bag, roundTripOK)

			status := StatusDone
			if bag.HasErrors() || !roundTripOK {
				status = StatusError
			}
			emit(events, Event{File: path, Stage: StageRoundTrip, Status: status})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}

	return fileSet, results, nil
}

func checkCacheKey(file *source.File, opts Options, sopts serializer.Options) project.Digest {
	sfp := project.DigestOf(fmtSerializerOptions(sopts))
	return project.Combine(project.Digest(file.Hash), opts.fingerprint(), sfp)
}

func fmtSerializerOptions(sopts serializer.Options) []byte {
	b := []byte{byte(sopts.IndentWidth)}
	if sopts.UseTabs {
		b = append(b, 1)
	} else {
		b = append(b, 0)
	}
	return b
}

func lookupCheckCache(cache *DiskCache, file *source.File, opts Options, sopts serializer.Options) (*CheckPayload, bool) {
	if cache == nil {
		return nil, false
	}
	var payload CheckPayload
	ok, err := cache.Get(checkCacheKey(file, opts, sopts), &payload)
	if err != nil || !ok || payload.Schema != checkCacheSchemaVersion {
		return nil, false
	}
	return &payload, true
}

func storeCheckCache(cache *DiskCache, file *source.File, opts Options, sopts serializer.Options, bag *diag.Bag, roundTripOK bool) {
	if cache == nil {
		return
	}
	errorCount, warningCount := 0, 0
	for _, d := range bag.Items() {
		switch {
		case d.Severity >= diag.SevError:
			errorCount++
		case d.Severity == diag.SevWarning:
			warningCount++
		}
	}
	// best effort; a failed write just means a cold cache next run
	_ = cache.Put(checkCacheKey(file, opts, sopts), &CheckPayload{
		Schema:       checkCacheSchemaVersion,
		Path:         file.Path,
		RoundTripOK:  roundTripOK,
		ErrorCount:   errorCount,
		WarningCount: warningCount,
	})
}
