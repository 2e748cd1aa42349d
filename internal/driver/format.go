package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"vhdlfmt/internal/ctxlog"
	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/format"
	"vhdlfmt/internal/observ"
	"vhdlfmt/internal/project"
	"vhdlfmt/internal/source"
)

var (
	// ErrParseErrors marks a file that was skipped because it has syntax errors.
	ErrParseErrors = errors.New("parse errors present")
	// ErrVerifyFailed marks a file whose output failed the round-trip check.
	ErrVerifyFailed = errors.New("round-trip verification failed")
)

// FormatOptions configures code formatting.
type FormatOptions struct {
	// Check leaves files untouched; Changed reports whether they would change.
	Check bool
	// Stdout returns formatted content in the results without writing files.
	Stdout bool
	// Verify runs the fmt-check round trip on every file before accepting it.
	Verify         bool
	MaxDiagnostics int
	Options        format.Options
	// Jobs bounds parallelism; non-positive means GOMAXPROCS.
	Jobs     int
	Filter   FileFilter
	Cache    *DiskCache
	Progress ProgressSink
	Timer    *observ.Timer
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path    string
	Changed bool
	Cached  bool
	Err     error
	// Original is the content read from disk, kept for diffs.
	Original  []byte
	Formatted []byte
	// FileSet and Bag are set when diagnostics were produced.
	FileSet *source.FileSet
	Bag     *diag.Bag
}

// FormatPaths formats provided files or directories (recursively collecting
// VHDL files). Per-file failures are recorded in the results; the returned
// error covers collection problems and cancellation only.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	done := opts.Timer.Begin("collect")
	files, err := CollectSourceFiles(ctx, paths, opts.Filter)
	done()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoSourceFiles
	}
	return FormatFiles(ctx, files, opts)
}

// FormatFiles formats an explicit list of files in parallel. Results keep the
// order of files.
func FormatFiles(ctx context.Context, files []string, opts FormatOptions) ([]FormatResult, error) {
	log := ctxlog.FromContext(ctx)
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	emitQueued(opts.Progress, files)

	// each goroutine owns its index, no mutex needed
	results := make([]FormatResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(files))))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = formatOne(gctx, path, opts)
			if r := results[i]; r.Err != nil {
				log.Debug("format failed", "file", path, "err", r.Err)
			} else {
				log.Debug("formatted", "file", path, "changed", r.Changed, "cached", r.Cached)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func formatOne(ctx context.Context, path string, opts FormatOptions) FormatResult {
	result := FormatResult{Path: path}
	fail := func(stage Stage, started time.Time, err error) FormatResult {
		result.Err = err
		emit(opts.Progress, Event{File: path, Stage: stage, Status: StatusError, Err: err, Elapsed: time.Since(started)})
		return result
	}

	started := time.Now()
	emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusWorking})
	// #nosec G304 -- path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return fail(StageParse, started, err)
	}
	result.Original = data

	key := CacheKey(data, opts.Options)
	if formatted, clean, ok := lookupCache(ctx, opts.Cache, key); ok {
		result.Cached = true
		result.Changed = !clean
		if !clean {
			result.Formatted = formatted
		} else if opts.Stdout {
			result.Formatted = data
		}
		if err := finish(&result, opts); err != nil {
			return fail(StageWrite, started, err)
		}
		emit(opts.Progress, Event{File: path, Stage: StageWrite, Status: StatusCached, Elapsed: time.Since(started)})
		return result
	}

	done := opts.Timer.Begin("parse")
	parsed := ParseSource(path, data, opts.MaxDiagnostics, opts.Options.MaxDepth)
	done()
	if parsed.Bag.Len() > 0 {
		result.FileSet, result.Bag = parsed.FileSet, parsed.Bag
	}
	if parsed.Bag.HasErrors() {
		return fail(StageParse, started, ErrParseErrors)
	}

	emit(opts.Progress, Event{File: path, Stage: StageFormat, Status: StatusWorking, Elapsed: time.Since(started)})
	done = opts.Timer.Begin("format")
	formatted, err := format.FormatFile(parsed.Stream, parsed.Design, opts.Options)
	done()
	if err != nil {
		return fail(StageFormat, started, err)
	}
	if opts.Verify {
		done = opts.Timer.Begin("verify")
		ok, msg := format.CheckRoundTrip(parsed.File, opts.Options, opts.MaxDiagnostics)
		done()
		if !ok {
			return fail(StageFormat, started, fmt.Errorf("%w: %s", ErrVerifyFailed, msg))
		}
	}

	result.Formatted = formatted
	result.Changed = !bytes.Equal(data, formatted)
	storeCache(ctx, opts.Cache, key, path, result.Changed, formatted)

	emit(opts.Progress, Event{File: path, Stage: StageWrite, Status: StatusWorking, Elapsed: time.Since(started)})
	done = opts.Timer.Begin("write")
	err = finish(&result, opts)
	done()
	if err != nil {
		return fail(StageWrite, started, err)
	}
	emit(opts.Progress, Event{File: path, Stage: StageWrite, Status: StatusDone, Elapsed: time.Since(started)})
	return result
}

// finish writes changed content back unless Check or Stdout is set. Outside
// Stdout mode Formatted is dropped once handled.
func finish(result *FormatResult, opts FormatOptions) error {
	if opts.Stdout {
		return nil
	}
	formatted := result.Formatted
	if !opts.Check {
		result.Formatted = nil
	}
	if opts.Check || !result.Changed {
		return nil
	}
	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(result.Path); statErr == nil {
		mode = info.Mode()
	}
	return os.WriteFile(result.Path, formatted, mode.Perm())
}

func lookupCache(ctx context.Context, cache *DiskCache, key project.Digest) (formatted []byte, clean, ok bool) {
	if cache == nil {
		return nil, false, false
	}
	var payload DiskPayload
	hit, err := cache.Get(key, &payload)
	if err != nil {
		ctxlog.FromContext(ctx).Warn("cache read failed", "err", err)
		return nil, false, false
	}
	if !hit || payload.Key != key {
		return nil, false, false
	}
	return payload.Formatted, payload.Clean, true
}

func storeCache(ctx context.Context, cache *DiskCache, key project.Digest, path string, changed bool, formatted []byte) {
	if cache == nil {
		return
	}
	payload := &DiskPayload{Path: path, Clean: !changed, Key: key, StoredAt: time.Now().UTC()}
	if changed {
		payload.Formatted = formatted
	}
	if err := cache.Put(key, payload); err != nil {
		ctxlog.FromContext(ctx).Warn("cache write failed", "file", path, "err", err)
	}
}

// FormatSource formats in-memory content (stdin). Files are never touched and
// the cache is bypassed.
func FormatSource(name string, content []byte, opts FormatOptions) FormatResult {
	result := FormatResult{Path: name, Original: content}
	parsed := ParseSource(name, content, opts.MaxDiagnostics, opts.Options.MaxDepth)
	if parsed.Bag.Len() > 0 {
		result.FileSet, result.Bag = parsed.FileSet, parsed.Bag
	}
	if parsed.Bag.HasErrors() {
		result.Err = ErrParseErrors
		return result
	}
	formatted, err := format.FormatFile(parsed.Stream, parsed.Design, opts.Options)
	if err != nil {
		result.Err = err
		return result
	}
	if opts.Verify {
		if ok, msg := format.CheckRoundTrip(parsed.File, opts.Options, opts.MaxDiagnostics); !ok {
			result.Err = fmt.Errorf("%w: %s", ErrVerifyFailed, msg)
			return result
		}
	}
	result.Formatted = formatted
	result.Changed = !bytes.Equal(content, formatted)
	return result
}
