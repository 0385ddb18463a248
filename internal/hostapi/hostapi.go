// Package hostapi declares the abstract host capabilities spec.md §6
// requires the core to consume rather than implement directly: Filesystem,
// Scheduler, VectorBatch, and Registration. Spec.md §1 treats the host
// database engine as an external collaborator ("its catalog, expression
// evaluator, type system, file-system abstraction, and task scheduler...
// The core consumes these as capability interfaces"); this package is the
// seam. Concrete implementations live in sibling packages: internal/hostapi
// /osfs (Filesystem + a local Scheduler over goroutines) and
// internal/hostapi/mcpregistry (Registration over the MCP protocol).
package hostapi

import "io"

// Filesystem is the host's file-access capability (spec.md §6).
type Filesystem interface {
	Exists(path string) bool
	IsDir(path string) bool
	Glob(pattern string) ([]string, error)
	Open(path string) (io.ReadCloser, error)
	Join(elem ...string) string
}

// Task is one unit of work submitted to a Scheduler.
type Task func() error

// Scheduler is the host's task-execution capability (spec.md §6): construct
// task objects, submit them, wait for all to drain, and report per-task
// exceptions. The core never starts raw goroutines itself — it always goes
// through this seam (spec.md §5: "The host scheduler provides the worker
// pool; the core submits task objects and waits for all to drain").
type Scheduler interface {
	// Run executes tasks with bounded parallelism and returns the first
	// error encountered, if any. Implementations decide how much
	// parallelism bounded means.
	Run(tasks []Task) error
}

// Validity marks which rows of a VectorBatch column are non-NULL.
type Validity []bool

// VectorBatch is the host's columnar output capability (spec.md §6):
// allocate per-column fixed-size buffers and mark per-row validity. The
// core's table producer (internal/astquery) writes through this interface
// rather than assuming any particular vector engine's memory layout.
type VectorBatch interface {
	// SetColumn assigns the values and validity mask for one named column
	// of the current batch. len(values) must equal len(valid).
	SetColumn(name string, values []any, valid Validity) error
	// Size reports the batch's configured row capacity (the host's
	// standard vector size, spec.md §4.7).
	Size() int
}

// ScalarFunc is a registered scalar SQL function.
type ScalarFunc func(args []any) (any, error)

// TableFunc is a registered table SQL function: Bind validates arguments and
// returns nil on success; Emit fills batch with up to batch.Size() rows and
// returns the row count produced (0 signals end of results).
type TableFunc struct {
	Bind func(args []any) error
	Emit func(batch VectorBatch) (int, error)
}

// Registration is the host's function-registration capability (spec.md
// §6): register a scalar or table function under a declared name/signature.
type Registration interface {
	RegisterScalar(name string, fn ScalarFunc) error
	RegisterTable(name string, fn TableFunc) error
}
