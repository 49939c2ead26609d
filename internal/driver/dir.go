package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ListJavaFiles returns every *.java file under dir, sorted for a
// deterministic run order. Non-empty include patterns narrow the set:
// a file is kept when any pattern matches its slash-relative path or
// its base name.
func ListJavaFiles(dir string, include []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".java") {
			return nil
		}
		ok, err := included(dir, path, include)
		if err != nil {
			return err
		}
		if ok {
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

func included(dir, path string, include []string) (bool, error) {
	if len(include) == 0 {
		return true, nil
	}
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range include {
		if ok, err := filepath.Match(pattern, rel); err != nil {
			return false, fmt.Errorf("include pattern %q: %w", pattern, err)
		} else if ok {
			return true, nil
		}
		if ok, _ := filepath.Match(pattern, filepath.Base(path)); ok {
			return true, nil
		}
	}
	return false, nil
}

// NormalizeDir normalizes every *.java file under dir. Files are
// independent, so they run in parallel with errgroup-bounded workers;
// each single file still goes through its passes strictly sequentially.
// Results come back in the sorted file order regardless of completion
// order. Per-file failures land in the result slice; only walk and
// cancellation errors abort the run.
func NormalizeDir(ctx context.Context, dir string, opts *Options) ([]*FileResult, error) {
	o := opts.withDefaults()

	files, err := ListJavaFiles(dir, o.Include)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	for _, path := range files {
		emit(o.Progress, Event{File: path, Stage: StageParse, Status: StatusQueued})
	}

	jobs := o.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]*FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			emit(o.Progress, Event{File: path, Stage: StageParse, Status: StatusWorking})

			// Every worker gets its own FileSet; the tree and store
			// of one file are never touched by another goroutine.
			// The cache handle is shared (temp+rename writes).
			fileOpts := o
			fileOpts.Progress = nil
			res, err := NormalizeFile(gctx, path, &fileOpts)
			if err != nil {
				if res == nil {
					res = &FileResult{Path: path}
				}
				results[i] = res
				// Rule failures are per-file; keep the other files going.
				res.Err = err
				emit(o.Progress, Event{File: path, Stage: StageNormalize, Status: StatusError})
				return nil
			}
			results[i] = res

			status := Event{File: path, Stage: StageNormalize, Status: StatusDone}
			if res.Bag != nil && res.Bag.HasErrors() {
				status.Status = StatusError
			} else if res.Changed && o.Write {
				status.Stage = StageWrite
			}
			emit(o.Progress, status)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
