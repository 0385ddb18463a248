package astparse

import (
	"github.com/standardbeagle/astengine/internal/langadapter"
)

// computePeek implements the peek rules of spec.md §4.5. raw is the source
// slice covered by a node, not yet sanitized; every non-empty result is
// passed through langadapter.Sanitize. peekSize is only consulted for
// PeekCustom.
func computePeek(mode PeekMode, raw []byte, peekSize int) string {
	switch mode {
	case PeekNone:
		return ""
	case PeekFull:
		return langadapter.Sanitize(raw)
	case PeekCustom:
		if peekSize < 0 {
			peekSize = 0
		}
		if len(raw) > peekSize {
			raw = raw[:peekSize]
		}
		return langadapter.Sanitize(raw)
	case PeekSmart:
		return smartPeek(raw)
	default:
		return ""
	}
}

// smartPeek implements spec.md §4.5's SMART rule:
//   - |T| <= 50 -> T
//   - |T| > 50, no newline -> first 80 bytes, "..." if truncated
//   - multi-line -> the first line, truncated the same way
func smartPeek(raw []byte) string {
	if len(raw) <= 50 {
		return langadapter.Sanitize(raw)
	}
	multiLine := indexNewline(raw) >= 0
	line := raw
	if idx := indexNewline(raw); idx >= 0 {
		line = raw[:idx]
	}
	const limit = 80
	truncated := multiLine
	if len(line) > limit {
		line = line[:limit]
		truncated = true
	}
	if truncated {
		return langadapter.Sanitize(line) + "..."
	}
	return langadapter.Sanitize(line)
}

func indexNewline(b []byte) int {
	for i, c := range b {
		if c == '\n' {
			return i
		}
	}
	return -1
}
