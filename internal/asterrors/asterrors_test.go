package asterrors

import (
	"errors"
	"testing"
)

func TestParseErrorUnwrap(t *testing.T) {
	underlying := errors.New("no tree returned")
	err := NewParseError("main.go", "go", underlying)

	if !errors.Is(err, underlying) {
		t.Errorf("expected ParseError to unwrap to underlying")
	}
	want := `parse error for main.go (go): no tree returned`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIOErrorMessage(t *testing.T) {
	underlying := errors.New("no such file")
	err := NewIOError("open", "missing.py", underlying)
	want := `io error during open of missing.py: no such file`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestBinderErrorWithoutArgument(t *testing.T) {
	err := NewBinderError("", errors.New("pattern list is empty"))
	want := "binder error: pattern list is empty"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestMultiErrorFiltersNil(t *testing.T) {
	e1 := errors.New("first")
	m := NewMultiError([]error{nil, e1, nil})
	if len(m.Errors) != 1 {
		t.Fatalf("expected 1 surviving error, got %d", len(m.Errors))
	}
	if m.Error() != "first" {
		t.Errorf("single-error MultiError should pass through the message, got %q", m.Error())
	}
}

func TestMultiErrorEmpty(t *testing.T) {
	m := NewMultiError(nil)
	if m.Error() != "no errors" {
		t.Errorf("Error() = %q, want %q", m.Error(), "no errors")
	}
}
