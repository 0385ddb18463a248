// Package asterrors implements the error taxonomy of spec.md §7: four kinds
// (binder, I/O, parse, internal) each carrying enough context for a
// human-readable message naming the offending path and the inner cause, plus
// a MultiError for the ignore_errors accumulation path (§4.6, §8 Scenario D).
//
// Grounded on the teacher's internal/errors/errors.go (ErrorType constants,
// per-kind struct + constructor + WithX builder + Error/Unwrap pattern),
// generalized from its six LCI-specific kinds (indexing/parse/search/file/
// config/internal) down to the four kinds spec.md §7 actually names, and
// with the types.FileID dependency dropped in favor of a plain file path
// (this system has no FileID concept — see SPEC_FULL.md).
package asterrors

import (
	"fmt"
	"time"
)

// Kind identifies one of the four error kinds spec.md §7 names.
type Kind string

const (
	KindBinder   Kind = "binder"
	KindIO       Kind = "io"
	KindParse    Kind = "parse"
	KindInternal Kind = "internal"
)

// BinderError covers wrong argument count/type, duplicate named parameter,
// unsupported language name, and empty/NULL-containing pattern lists
// (spec.md §7.1). Binder errors are never subject to ignore_errors.
type BinderError struct {
	Argument   string
	Underlying error
	Timestamp  time.Time
}

func NewBinderError(argument string, err error) *BinderError {
	return &BinderError{Argument: argument, Underlying: err, Timestamp: time.Now()}
}

func (e *BinderError) Error() string {
	if e.Argument == "" {
		return fmt.Sprintf("binder error: %v", e.Underlying)
	}
	return fmt.Sprintf("binder error for argument %q: %v", e.Argument, e.Underlying)
}

func (e *BinderError) Unwrap() error { return e.Underlying }

// IOError covers a missing file/directory, a glob matching nothing, or a
// read failure (spec.md §7.2).
type IOError struct {
	Path       string
	Operation  string
	Underlying error
	Timestamp  time.Time
}

func NewIOError(op, path string, err error) *IOError {
	return &IOError{Operation: op, Path: path, Underlying: err, Timestamp: time.Now()}
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io error during %s of %s: %v", e.Operation, e.Path, e.Underlying)
}

func (e *IOError) Unwrap() error { return e.Underlying }

// ParseError covers the underlying parser returning no tree, or a
// requested language that produced no parser (spec.md §7.3).
type ParseError struct {
	Path       string
	Language   string
	Underlying error
	Timestamp  time.Time
}

func NewParseError(path, language string, err error) *ParseError {
	return &ParseError{Path: path, Language: language, Underlying: err, Timestamp: time.Now()}
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse error (%s): %v", e.Language, e.Underlying)
	}
	return fmt.Sprintf("parse error for %s (%s): %v", e.Path, e.Language, e.Underlying)
}

func (e *ParseError) Unwrap() error { return e.Underlying }

// InternalError covers a taxonomy/config invariant violation or a null where
// the contract forbids one (spec.md §7.4). Internal errors are fatal
// regardless of ignore_errors.
type InternalError struct {
	Invariant  string
	Underlying error
	Timestamp  time.Time
}

func NewInternalError(invariant string, err error) *InternalError {
	return &InternalError{Invariant: invariant, Underlying: err, Timestamp: time.Now()}
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error (%s invariant): %v", e.Invariant, e.Underlying)
}

func (e *InternalError) Unwrap() error { return e.Underlying }

// MultiError accumulates per-file errors recorded under ignore_errors=true
// (spec.md §4.6, §7 propagation policy, §8 Scenario D). The core contract
// only requires the counter and log-side exposure; MultiError is the
// optional diagnostic table spec.md §7 allows implementations to expose.
type MultiError struct {
	Errors []error
}

func NewMultiError(errs []error) *MultiError {
	filtered := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	return &MultiError{Errors: filtered}
}

func (e *MultiError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "no errors"
	case 1:
		return e.Errors[0].Error()
	default:
		return fmt.Sprintf("%d errors: %v", len(e.Errors), e.Errors)
	}
}

func (e *MultiError) Unwrap() []error { return e.Errors }
