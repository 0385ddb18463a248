package scheduler

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain verifies no goroutines leak across the scheduler package's
// tests, grounded on the teacher's internal/core/goleak_test.go. This
// package hands its worker tasks to a hostapi.Scheduler; any worker
// goroutines are started by the scheduler implementation (osfs.WorkerPool
// starts them; the sequentialScheduler used in these tests runs tasks
// in-process).
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
		goleak.IgnoreTopFunction("sync.runtime_Semacquire"),
	)
}
