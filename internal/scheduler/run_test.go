package scheduler

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/standardbeagle/astengine/internal/astparse"
	"github.com/standardbeagle/astengine/internal/hostapi"
	"github.com/standardbeagle/astengine/internal/langadapter"
)

// fakeFS is an in-memory hostapi.Filesystem over a fixed path->content map,
// used to drive scheduler tests without touching the real filesystem.
type fakeFS struct {
	files map[string]string
	dirs  map[string]bool
}

func newFakeFS() *fakeFS {
	return &fakeFS{files: map[string]string{}, dirs: map[string]bool{}}
}

func (f *fakeFS) Exists(path string) bool {
	_, ok := f.files[path]
	return ok || f.dirs[path]
}

func (f *fakeFS) IsDir(path string) bool { return f.dirs[path] }

func (f *fakeFS) Glob(pattern string) ([]string, error) {
	var out []string
	prefix := strings.TrimSuffix(strings.TrimSuffix(pattern, "**/*"), "*")
	for p := range f.files {
		if strings.HasPrefix(p, prefix) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeFS) Open(path string) (io.ReadCloser, error) {
	content, ok := f.files[path]
	if !ok {
		return nil, errNotFound{path}
	}
	return io.NopCloser(bytes.NewBufferString(content)), nil
}

func (f *fakeFS) Join(elem ...string) string { return strings.Join(elem, "/") }

type errNotFound struct{ path string }

func (e errNotFound) Error() string { return "not found: " + e.path }

// sequentialScheduler runs tasks one at a time in-process, for deterministic
// tests.
type sequentialScheduler struct{}

func (sequentialScheduler) Run(tasks []hostapi.Task) error {
	for _, t := range tasks {
		if err := t(); err != nil {
			return err
		}
	}
	return nil
}

func TestRunPatterns_ResolvesLanguageAndParses(t *testing.T) {
	fs := newFakeFS()
	fs.files["real.go"] = "package main\n\nfunc f() {}\n"

	registry := langadapter.NewRegistry()
	result, err := RunPatterns(fs, sequentialScheduler{}, registry, []string{"real.go"}, Options{
		Config: astparse.DefaultExtractionConfig(),
	}, 1)
	if err != nil {
		t.Fatalf("RunPatterns error: %v", err)
	}
	if result.FilesProcessed != 1 {
		t.Errorf("FilesProcessed = %d, want 1", result.FilesProcessed)
	}
	if len(result.Results) != 1 {
		t.Fatalf("len(Results) = %d, want 1", len(result.Results))
	}
	if result.Results[0].Source.Language != "go" {
		t.Errorf("Language = %q, want %q", result.Results[0].Source.Language, "go")
	}
}

// TestRunPatterns_IgnoreErrors mirrors spec.md §8 Scenario D: a missing file
// alongside a real one, with ignore_errors=true, produces rows only from the
// real file and an error counter of 1.
func TestRunPatterns_IgnoreErrors(t *testing.T) {
	fs := newFakeFS()
	fs.files["real.py"] = "x = 1\n"

	registry := langadapter.NewRegistry()
	result, err := RunPatterns(fs, sequentialScheduler{}, registry, []string{"missing.py", "real.py"}, Options{
		IgnoreErrors: true,
		Config:       astparse.DefaultExtractionConfig(),
	}, 2)
	if err != nil {
		t.Fatalf("RunPatterns error: %v", err)
	}
	if len(result.Results) != 1 {
		t.Fatalf("len(Results) = %d, want 1", len(result.Results))
	}
	if result.Results[0].Source.FilePath != "real.py" {
		t.Errorf("FilePath = %q, want real.py", result.Results[0].Source.FilePath)
	}
	if result.ErrorsEncountered != 1 {
		t.Errorf("ErrorsEncountered = %d, want 1", result.ErrorsEncountered)
	}
}

func TestRunPatterns_AbortsWithoutIgnoreErrors(t *testing.T) {
	fs := newFakeFS()
	fs.files["real.py"] = "x = 1\n"

	registry := langadapter.NewRegistry()
	_, err := RunPatterns(fs, sequentialScheduler{}, registry, []string{"missing.py", "real.py"}, Options{
		IgnoreErrors: false,
		Config:       astparse.DefaultExtractionConfig(),
	}, 2)
	if err == nil {
		t.Fatal("expected an error when ignore_errors is false and a pattern resolves to nothing")
	}
}

func TestPartitionCoversEveryFileExactlyOnce(t *testing.T) {
	ranges := partition(10, 3)
	var total int
	for _, r := range ranges {
		total += r.end - r.start
	}
	if total != 10 {
		t.Errorf("partition covers %d files, want 10", total)
	}
}
