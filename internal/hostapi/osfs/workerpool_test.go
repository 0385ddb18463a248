package osfs

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/standardbeagle/astengine/internal/hostapi"
)

func TestWorkerPool_RunsAllTasks(t *testing.T) {
	var count int64
	tasks := make([]hostapi.Task, 20)
	for i := range tasks {
		tasks[i] = func() error {
			atomic.AddInt64(&count, 1)
			return nil
		}
	}

	pool := NewWorkerPool(4)
	if err := pool.Run(tasks); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if count != int64(len(tasks)) {
		t.Errorf("ran %d tasks, want %d", count, len(tasks))
	}
}

func TestWorkerPool_ReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")
	tasks := []hostapi.Task{
		func() error { return nil },
		func() error { return boom },
		func() error { return nil },
	}

	pool := NewWorkerPool(2)
	err := pool.Run(tasks)
	if !errors.Is(err, boom) {
		t.Errorf("Run error = %v, want %v", err, boom)
	}
}

func TestNewWorkerPool_NonPositiveLimitDefaultsToNumCPU(t *testing.T) {
	pool := NewWorkerPool(0)
	if pool.limit <= 0 {
		t.Errorf("limit = %d, want > 0", pool.limit)
	}
}
