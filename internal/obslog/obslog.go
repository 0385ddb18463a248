// Package obslog is this system's debug/diagnostic logger, adapted from the
// teacher's internal/debug package: build-time and environment-variable
// gated output, a swappable writer, and component-scoped helpers. MCPMode
// becomes HostMode (suppressing output whenever the core is embedded in a
// host that speaks a structured protocol on stdio — MCP being one such
// host, per SPEC_FULL.md's hostapi.Registration), and the LogIndexing/
// LogSearch/LogMCP helpers become LogParse/LogSchedule/LogRegistry to match
// this system's three hot components (parse engine, scheduler, host
// registration).
package obslog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnableDebug is a build flag, settable via:
//
//	go build -ldflags "-X github.com/standardbeagle/astengine/internal/obslog.EnableDebug=true"
var EnableDebug = "false"

// HostMode tracks whether the core is embedded in a host that owns stdio
// for a structured protocol (e.g. MCP); when true, all output is
// suppressed regardless of EnableDebug or $DEBUG.
var HostMode = false

var (
	output  io.Writer
	logFile *os.File
	mu      sync.Mutex
)

// SetHostMode enables or disables host mode (spec.md §6, Registration
// capability: a host speaking MCP over stdio must never see stray log
// lines interleaved with protocol frames).
func SetHostMode(enabled bool) {
	HostMode = enabled
}

// SetOutput sets a custom writer for log output. Pass nil to disable.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// InitLogFile opens a timestamped log file under the OS temp directory and
// directs output there. Returns the path, or an error.
func InitLogFile() (string, error) {
	mu.Lock()
	defer mu.Unlock()

	dir := filepath.Join(os.TempDir(), "astengine-logs")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02T150405")
	path := filepath.Join(dir, fmt.Sprintf("astengine-%s.log", timestamp))

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	logFile = f
	output = f
	return path, nil
}

// Close closes the log file if one is open.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		output = nil
		return err
	}
	return nil
}

// Enabled reports whether logging is active: never in host mode, otherwise
// gated by the build flag or the $DEBUG environment variable.
func Enabled() bool {
	if HostMode {
		return false
	}
	if EnableDebug == "true" {
		return true
	}
	v := os.Getenv("DEBUG")
	return v == "1" || v == "true"
}

func writer() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return output
}

// Printf logs on the component-less channel when Enabled reports true.
func Printf(format string, args ...any) {
	if !Enabled() {
		return
	}
	w := writer()
	if w == nil {
		return
	}
	fmt.Fprintf(w, "[DEBUG] "+format, args...)
}

// Log writes a component-scoped line.
func Log(component, format string, args ...any) {
	if !Enabled() {
		return
	}
	w := writer()
	if w == nil {
		return
	}
	fmt.Fprintf(w, "[DEBUG:%s] "+format, append([]any{component}, args...)...)
}

// LogParse logs parse-engine activity (internal/astparse).
func LogParse(format string, args ...any) { Log("PARSE", format, args...) }

// LogSchedule logs scheduler activity (internal/scheduler).
func LogSchedule(format string, args ...any) { Log("SCHEDULE", format, args...) }

// LogRegistry logs host-registration activity (internal/hostapi/mcpregistry).
func LogRegistry(format string, args ...any) { Log("REGISTRY", format, args...) }

// Fatal formats a fatal-error message, logs it (unless in host mode), and
// returns it as an error for the caller to propagate. It never exits.
func Fatal(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if !HostMode {
		if w := writer(); w != nil {
			fmt.Fprintf(w, "[FATAL] %s", msg)
		}
	}
	return fmt.Errorf("fatal error: %s", msg)
}
