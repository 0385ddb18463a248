package scheduler

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/standardbeagle/astengine/internal/asterrors"
	"github.com/standardbeagle/astengine/internal/astparse"
	"github.com/standardbeagle/astengine/internal/hostapi"
	"github.com/standardbeagle/astengine/internal/langadapter"
	"github.com/standardbeagle/astengine/internal/obslog"
)

// Options configures one parsing run (spec.md §4.6, §6 "Named parameters of
// read_ast").
type Options struct {
	Language     string // "" or "auto" selects per-file detection
	IgnoreErrors bool
	Config       astparse.ExtractionConfig
}

// Run is the shared mutable state one parsing run threads through its
// worker tasks (spec.md §4.6, "a per-run parsing state"): atomic counters,
// a lock-protected error list, and one result buffer per worker — the hot
// path never touches a shared results vector.
type Run struct {
	filesProcessed    atomic.Uint64
	totalNodes        atomic.Uint64
	errorsEncountered atomic.Uint64

	errMu    sync.Mutex
	errMsgs  []string

	buffers []workerBuffer
}

type workerBuffer struct {
	mu      sync.Mutex
	results []*astparse.ASTResult
}

// Result is the merged outcome of a run: the concatenation of per-worker
// buffers in worker order (spec.md §4.6: "not the same as the input file
// order... within-file node order IS stable DFS").
type Result struct {
	Results           []*astparse.ASTResult
	FilesProcessed    uint64
	TotalNodes        uint64
	ErrorsEncountered uint64
	ErrorMessages      []string
}

// RunPatterns executes the full spec.md §4.6 pipeline: expand patterns into
// a file set, resolve each file's language, partition into contiguous
// ranges, submit one task per range to sched, and merge the per-worker
// buffers on completion.
func RunPatterns(fs hostapi.Filesystem, sched hostapi.Scheduler, registry *langadapter.Registry, patterns []string, opts Options, workers int) (*Result, error) {
	files, setErrs := buildFileSet(fs, patterns)
	if len(setErrs) > 0 && !opts.IgnoreErrors {
		return nil, setErrs[0]
	}

	resolved, langErrs := resolveLanguages(files, opts.Language)
	if len(langErrs) > 0 && len(resolved) == 0 {
		return nil, langErrs[0]
	}

	allErrs := append(append([]error{}, setErrs...), langErrs...)

	if workers <= 0 {
		workers = 1
	}
	if workers > len(resolved) && len(resolved) > 0 {
		workers = len(resolved)
	}
	if len(resolved) == 0 {
		workers = 0
	}

	run := &Run{buffers: make([]workerBuffer, workers)}
	for _, e := range allErrs {
		run.errorsEncountered.Add(1)
		run.recordError(e)
	}

	ranges := partition(len(resolved), workers)
	tasks := make([]hostapi.Task, 0, len(ranges))
	for w, r := range ranges {
		w, r := w, r
		tasks = append(tasks, func() error {
			return runRange(fs, registry, resolved[r.start:r.end], opts, run, w)
		})
	}

	if len(tasks) > 0 {
		if err := sched.Run(tasks); err != nil && !opts.IgnoreErrors {
			return nil, err
		}
	}

	return run.merge(), nil
}

type fileRange struct{ start, end int }

// partition splits n files into at most workers contiguous ranges, each
// roughly ceil(n/workers) long (spec.md §4.6, "Work distribution").
func partition(n, workers int) []fileRange {
	if workers <= 0 || n == 0 {
		return nil
	}
	size := (n + workers - 1) / workers
	var ranges []fileRange
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		ranges = append(ranges, fileRange{start, end})
	}
	return ranges
}

// runRange is the per-task body of spec.md §4.6's "Work distribution": for
// each assigned file, open it, read it, parse it with a freshly constructed
// adapter, and push the result into this worker's thread-local buffer.
func runRange(fs hostapi.Filesystem, registry *langadapter.Registry, files []resolvedFile, opts Options, run *Run, worker int) error {
	for _, rf := range files {
		result, err := parseOne(fs, registry, rf, opts.Config)
		if err != nil {
			obslog.LogSchedule("parse failed for %s: %v", rf.path, err)
			if opts.IgnoreErrors {
				run.filesProcessed.Add(1)
				run.errorsEncountered.Add(1)
				run.recordError(err)
				continue
			}
			return err
		}
		run.buffers[worker].mu.Lock()
		run.buffers[worker].results = append(run.buffers[worker].results, result)
		run.buffers[worker].mu.Unlock()
		run.filesProcessed.Add(1)
		run.totalNodes.Add(uint64(result.NodeCount))
	}
	return nil
}

func parseOne(fs hostapi.Filesystem, registry *langadapter.Registry, rf resolvedFile, cfg astparse.ExtractionConfig) (*astparse.ASTResult, error) {
	f, err := fs.Open(rf.path)
	if err != nil {
		return nil, asterrors.NewIOError("open", rf.path, err)
	}
	defer f.Close()

	source, err := io.ReadAll(f)
	if err != nil {
		return nil, asterrors.NewIOError("read", rf.path, err)
	}

	adapter, err := registry.New(rf.language)
	if err != nil {
		return nil, asterrors.NewBinderError(rf.language, err)
	}

	return astparse.Parse(adapter, source, rf.path, rf.language, cfg)
}

func (r *Run) recordError(err error) {
	r.errMu.Lock()
	r.errMsgs = append(r.errMsgs, err.Error())
	r.errMu.Unlock()
}

func (r *Run) merge() *Result {
	var merged []*astparse.ASTResult
	for i := range r.buffers {
		merged = append(merged, r.buffers[i].results...)
	}
	r.errMu.Lock()
	errMsgs := append([]string(nil), r.errMsgs...)
	r.errMu.Unlock()
	return &Result{
		Results:           merged,
		FilesProcessed:    r.filesProcessed.Load(),
		TotalNodes:        r.totalNodes.Load(),
		ErrorsEncountered: r.errorsEncountered.Load(),
		ErrorMessages:     errMsgs,
	}
}
