package corridor

import (
	"errors"
	"strings"
	"testing"
)

func TestInputErrorWrapping(t *testing.T) {
	err := NewInputError(ErrTooFewPoints)

	if !errors.Is(err, ErrTooFewPoints) {
		t.Error("InputError should match its cause with errors.Is")
	}
	var inErr *InputError
	if !errors.As(err, &inErr) {
		t.Error("errors.As should classify the InputError")
	}
	if !strings.Contains(err.Error(), "at least 2 points") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestInputErrorf(t *testing.T) {
	err := inputErrorf("radius %d: %w", -3, ErrBadRadius)
	if !errors.Is(err, ErrBadRadius) {
		t.Error("formatted InputError should keep the wrapped cause")
	}
	if !strings.Contains(err.Error(), "radius -3") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestRenderError(t *testing.T) {
	cause := errors.New("rasterizer exploded")
	err := renderErrorf("ring mask: %w", cause)

	if !errors.Is(err, cause) {
		t.Error("RenderError should keep the wrapped cause")
	}
	var rErr *RenderError
	if !errors.As(err, &rErr) {
		t.Error("errors.As should classify the RenderError")
	}
	if !strings.HasPrefix(err.Error(), "corridor: compositing failed: ") {
		t.Errorf("message = %q", err.Error())
	}

	var inErr *InputError
	if errors.As(err, &inErr) {
		t.Error("a RenderError must not classify as an InputError")
	}
}
