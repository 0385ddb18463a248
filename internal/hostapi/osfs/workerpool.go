package osfs

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/standardbeagle/astengine/internal/hostapi"
)

// WorkerPool implements hostapi.Scheduler over golang.org/x/sync/errgroup
// with bounded parallelism, the same structured-concurrency pattern the
// teacher's MCP integration tests exercise (errgroup.WithContext + a
// SetLimit-style bound) generalized into a standalone Scheduler capability
// for cmd/astquery's non-embedded mode.
type WorkerPool struct {
	limit int
}

var _ hostapi.Scheduler = WorkerPool{}

// NewWorkerPool constructs a WorkerPool bounded to limit concurrent tasks.
// limit <= 0 defaults to runtime.NumCPU() (spec.md §4.6: "Ranges are sized
// so each worker sees roughly ceil(files / threads) files").
func NewWorkerPool(limit int) WorkerPool {
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	return WorkerPool{limit: limit}
}

func (w WorkerPool) Run(tasks []hostapi.Task) error {
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(w.limit)
	for _, task := range tasks {
		task := task
		g.Go(func() error {
			return task()
		})
	}
	return g.Wait()
}
