// Package osfs is the concrete, OS-backed implementation of
// hostapi.Filesystem, used by cmd/astquery when the core runs standalone
// rather than embedded in a host database engine. Grounded on the teacher's
// internal/indexing file-walking helpers (pipeline_types.go's doublestar
// usage for exclusion/inclusion glob matching), generalized into a
// standalone capability implementation.
package osfs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/standardbeagle/astengine/internal/hostapi"
)

// FS implements hostapi.Filesystem over the local operating system.
type FS struct{}

var _ hostapi.Filesystem = FS{}

func NewFS() FS { return FS{} }

func (FS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (FS) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Glob expands pattern using doublestar, which (unlike filepath.Glob)
// supports "**" recursive matching — the form spec.md §4.6 expects for
// directory-tree patterns.
func (FS) Glob(pattern string) ([]string, error) {
	return doublestar.FilepathGlob(pattern)
}

func (FS) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

func (FS) Join(elem ...string) string {
	return filepath.Join(elem...)
}
