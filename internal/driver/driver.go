package driver

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"

	"modnorm/internal/apply"
	"modnorm/internal/cache"
	"modnorm/internal/diag"
	"modnorm/internal/parser"
	"modnorm/internal/rules"
	"modnorm/internal/source"
)

// DefaultMaxPasses bounds the per-file fixpoint loop. Implied-modifier
// removal and reordering each converge in one or two passes; the bound
// only guards against a pathological rule.
const DefaultMaxPasses = 8

// Options configures a normalization run.
type Options struct {
	// MaxDiagnostics caps the per-file diagnostic bag.
	MaxDiagnostics int
	// MaxPasses bounds the walk-commit-reparse loop per file.
	MaxPasses int
	// Jobs is the directory-run parallelism; 0 means GOMAXPROCS.
	Jobs int
	// Include narrows directory runs to files matching any of the glob
	// patterns (relative path or base name); empty means every file.
	Include []string
	// Write rewrites changed files in place; false is a dry run.
	Write bool
	// Backup keeps the previous content as .bak next to rewritten files.
	Backup bool
	// Cache, when set, skips files whose content is already known clean.
	Cache *cache.DiskCache
	// Progress receives per-file events during directory runs.
	Progress chan<- Event
}

func (o *Options) withDefaults() Options {
	var out Options
	if o != nil {
		out = *o
	}
	if out.MaxDiagnostics <= 0 {
		out.MaxDiagnostics = 100
	}
	if out.MaxPasses <= 0 {
		out.MaxPasses = DefaultMaxPasses
	}
	return out
}

// FileResult is the outcome of normalizing one file.
type FileResult struct {
	Path         string
	FS           *source.FileSet
	FileID       source.FileID
	UnitName     string
	Changed      bool
	Passes       int
	Descriptions []string
	Bag          *diag.Bag
	Output       []byte
	CacheHit     bool

	// Err records a per-file fatal failure during a directory run.
	Err error
}

// NormalizeFile runs the modifier rule over one file to a fixpoint:
// parse, walk, commit, re-parse, until a pass stages nothing. Each pass
// commits atomically against the tree shape it was computed from; a
// fatal rule error discards the pass's staged edits and surfaces as a
// hard failure without touching the file.
func NormalizeFile(ctx context.Context, path string, opts *Options) (*FileResult, error) {
	o := opts.withDefaults()
	fs := source.NewFileSet()

	id, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return normalizeLoaded(ctx, fs, id, path, &o)
}

func normalizeLoaded(ctx context.Context, fs *source.FileSet, id source.FileID, path string, o *Options) (*FileResult, error) {
	file := fs.Get(id)
	res := &FileResult{
		Path:   path,
		FS:     fs,
		FileID: id,
		Bag:    diag.NewBag(o.MaxDiagnostics),
	}

	if o.Cache != nil {
		var payload cache.Payload
		if hit, err := o.Cache.Get(file.Hash, &payload); err == nil && hit {
			res.CacheHit = true
			res.Passes = payload.Passes
			res.Output = file.Content
			return res, nil
		}
	}

	original := file.Content
	content := original
	current := id

	for pass := 1; pass <= o.MaxPasses; pass++ {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}
		res.Passes = pass

		passBag := diag.NewBag(o.MaxDiagnostics)
		tree := parser.ParseFile(fs, current, passBag)
		if pass == 1 {
			res.UnitName = tree.UnitName
		}
		if passBag.HasErrors() {
			// A file that does not parse is skipped whole; changes
			// from earlier passes of this run are discarded too.
			res.Bag.Merge(passBag)
			content = original
			break
		}

		rctx := rules.NewContext(tree)
		if err := rules.Walk(rctx, &rules.ModifierOrder{}); err != nil {
			return res, fmt.Errorf("%s: %w", path, err)
		}
		if rctx.Edits.Len() == 0 {
			break
		}

		commit, err := apply.Commit(fs, tree, rctx.Edits)
		if err != nil {
			return res, fmt.Errorf("%s: %w", path, err)
		}
		if bytes.Equal(commit.Content, content) {
			// Staged edits that cancel out textually (annotation
			// re-threading) would loop forever; the text is the
			// fixpoint, not the edit count.
			break
		}
		content = commit.Content
		for _, ch := range commit.Changes {
			res.Descriptions = append(res.Descriptions, ch.Description)
		}
		current = fs.Add(path, content, file.Flags)
	}

	res.Changed = !bytes.Equal(content, original)
	res.Output = content

	if res.Changed && o.Write {
		if err := apply.WriteFile(path, content, o.Backup); err != nil {
			return res, fmt.Errorf("write %s: %w", path, err)
		}
	}

	if o.Cache != nil && !res.Bag.HasErrors() {
		// The final content is clean by construction; remember that so
		// the next run skips the passes entirely.
		key := file.Hash
		if res.Changed {
			key = sha256.Sum256(content)
		}
		_ = o.Cache.Put(key, &cache.Payload{
			Path:   path,
			Passes: res.Passes,
		})
	}
	return res, nil
}
