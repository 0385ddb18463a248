// Package scheduler implements the parallel file-to-AST pipeline of
// spec.md §4.6: file-set construction from patterns, per-file language
// resolution, work partitioning into contiguous file-index ranges, and
// merge of per-worker result buffers.
//
// Grounded on the teacher's internal/indexing pipeline (file-set
// construction via doublestar globbing, dedup, exclusion matching) and
// internal/core/file_content_store.go (xxhash-based fast dedup key),
// generalized from LCI's file-content indexing to this system's
// parse-and-materialize pipeline.
package scheduler

import (
	"path/filepath"
	"sort"

	"github.com/cespare/xxhash/v2"

	"github.com/standardbeagle/astengine/internal/asterrors"
	"github.com/standardbeagle/astengine/internal/hostapi"
	"github.com/standardbeagle/astengine/internal/langadapter"
)

// resolvedFile is one entry of the deduplicated, sorted file set: a path
// as buildFileSet returned it, paired with the language that will parse it.
type resolvedFile struct {
	path     string
	language string
}

// buildFileSet expands patterns into a deduplicated, lexicographically
// sorted list of paths, per spec.md §4.6 "File-set construction":
// literal files are included directly, directories are enumerated, globs
// are expanded, and dedup happens by absolute path before language
// resolution. Each returned path keeps the form the pattern or fs.Glob
// gave it; only the dedup key is made absolute. Every pattern that fails to resolve contributes an error to
// the returned list; it is the caller's job (per ignore_errors) to decide
// whether any such error aborts the run.
func buildFileSet(fs hostapi.Filesystem, patterns []string) ([]string, []error) {
	var errs []error
	seen := make(map[uint64][]string) // xxhash(absolute path) -> absolute paths with that hash (collision list)
	var out []string

	add := func(path string) {
		key := path
		if abs, err := filepath.Abs(path); err == nil {
			key = abs
		}
		h := xxhash.Sum64String(key)
		for _, p := range seen[h] {
			if p == key {
				return
			}
		}
		seen[h] = append(seen[h], key)
		out = append(out, path)
	}

	for _, pattern := range patterns {
		switch {
		case fs.IsDir(pattern):
			matches, err := fs.Glob(fs.Join(pattern, "**", "*"))
			if err != nil {
				errs = append(errs, asterrors.NewIOError("walk", pattern, err))
				continue
			}
			for _, m := range matches {
				if !fs.IsDir(m) {
					add(m)
				}
			}
		case fs.Exists(pattern):
			add(pattern)
		default:
			matches, err := fs.Glob(pattern)
			if err != nil {
				errs = append(errs, asterrors.NewIOError("glob", pattern, err))
				continue
			}
			if len(matches) == 0 {
				errs = append(errs, asterrors.NewIOError("glob", pattern, errGlobNoMatch))
				continue
			}
			for _, m := range matches {
				if !fs.IsDir(m) {
					add(m)
				}
			}
		}
	}

	sort.Strings(out)
	return out, errs
}

var errGlobNoMatch = errNoMatch{}

type errNoMatch struct{}

func (errNoMatch) Error() string { return "pattern matched nothing" }

// resolveLanguages pairs each file with the language that will parse it:
// either the caller's fixed selection, or a per-file extension lookup
// (spec.md §4.6, "Work distribution" / §9's open question on preserving
// per-file detection even under a LIST-of-patterns call).
func resolveLanguages(files []string, fixedLanguage string) ([]resolvedFile, []error) {
	var errs []error
	out := make([]resolvedFile, 0, len(files))
	for _, f := range files {
		lang := fixedLanguage
		if lang == "" || lang == "auto" {
			detected, ok := langadapter.DetectLanguage(f)
			if !ok {
				errs = append(errs, asterrors.NewBinderError(f, errCouldNotDetect))
				continue
			}
			lang = detected
		}
		out = append(out, resolvedFile{path: f, language: lang})
	}
	return out, errs
}

var errCouldNotDetect = errCouldNotDetectType{}

type errCouldNotDetectType struct{}

func (errCouldNotDetectType) Error() string { return "could not detect language" }
