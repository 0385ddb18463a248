package obslog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func saveAndRestoreState() func() {
	originalDebug := EnableDebug
	originalMode := HostMode
	originalOutput := output
	originalFile := logFile
	return func() {
		EnableDebug = originalDebug
		HostMode = originalMode
		output = originalOutput
		logFile = originalFile
	}
}

func TestSetHostMode(t *testing.T) {
	defer saveAndRestoreState()()

	SetHostMode(true)
	assert.True(t, HostMode)

	SetHostMode(false)
	assert.False(t, HostMode)
}

func TestEnabled(t *testing.T) {
	defer saveAndRestoreState()()

	EnableDebug = "false"
	HostMode = false
	assert.False(t, Enabled())

	EnableDebug = "true"
	HostMode = false
	assert.True(t, Enabled())

	HostMode = true
	assert.False(t, Enabled(), "host mode must suppress output even when EnableDebug is true")
}

func TestLogComponentScoped(t *testing.T) {
	defer saveAndRestoreState()()

	var buf bytes.Buffer
	SetOutput(&buf)
	EnableDebug = "true"
	HostMode = false

	LogSchedule("processed %d files", 3)

	out := buf.String()
	assert.Contains(t, out, "[DEBUG:SCHEDULE]")
	assert.Contains(t, out, "processed 3 files")
}

func TestLogSuppressedInHostMode(t *testing.T) {
	defer saveAndRestoreState()()

	var buf bytes.Buffer
	SetOutput(&buf)
	EnableDebug = "true"
	HostMode = true

	LogRegistry("registering read_ast")

	assert.Empty(t, buf.String())
}
