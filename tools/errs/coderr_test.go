package errs

import (
	"testing"

	pkgerrors "github.com/pkg/errors"
)

func TestCodeErrorIsMatchesByCode(t *testing.T) {
	wrapped := pkgerrors.Wrap(ErrCharacterMissing, "load first character")
	if !pkgerrors.Is(wrapped, ErrCharacterMissing) {
		t.Error("wrapped error should match by code")
	}
	if pkgerrors.Is(wrapped, ErrLoginTaken) {
		t.Error("different code should not match")
	}
}

func TestCodeErrorWithDetail(t *testing.T) {
	e := ErrBadRequest.WithDetail("missing field: name")
	if e.Code != ErrBadRequest.Code {
		t.Errorf("code changed: %d", e.Code)
	}
	if ErrBadRequest.Detail != "" {
		t.Error("WithDetail mutated the shared value")
	}
	e2 := e.WithDetail("second")
	if e2.Detail != "missing field: name, second" {
		t.Errorf("detail = %q", e2.Detail)
	}
}

func TestCodeErrorString(t *testing.T) {
	if got := NewCodeError(42, "boom").Error(); got != "42 boom" {
		t.Errorf("Error() = %q", got)
	}
}
