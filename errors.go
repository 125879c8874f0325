package corridor

import (
	"errors"
	"fmt"
)

// Sentinel causes for input rejection. Wrap them in an InputError so
// callers can classify with errors.As and still match the specific cause
// with errors.Is.
var (
	// ErrTooFewPoints reports a path with fewer than two points.
	ErrTooFewPoints = errors.New("corridor: at least 2 points required")

	// ErrBadRadius reports a non-positive corridor radius.
	ErrBadRadius = errors.New("corridor: corridor radius must be positive")

	// ErrDecodeImage reports a base image that cannot be decoded.
	ErrDecodeImage = errors.New("corridor: image cannot be decoded")

	// ErrEmptyImage reports a base image with zero width or height.
	ErrEmptyImage = errors.New("corridor: image has no pixels")
)

// InputError reports invalid caller input: a bad path, bad parameters or an
// undecodable base image. Input errors are never retried and carry the
// specific cause.
type InputError struct {
	err error
}

// NewInputError wraps a cause as an InputError.
func NewInputError(err error) *InputError {
	return &InputError{err: err}
}

// inputErrorf formats a new InputError.
func inputErrorf(format string, args ...any) *InputError {
	return &InputError{err: fmt.Errorf(format, args...)}
}

func (e *InputError) Error() string {
	return e.err.Error()
}

func (e *InputError) Unwrap() error {
	return e.err
}

// RenderError reports a rasterization or compositing failure not
// attributable to bad input. It is surfaced with a generic message and
// should be treated as a bug signal; no partial output accompanies it.
type RenderError struct {
	err error
}

func renderErrorf(format string, args ...any) *RenderError {
	return &RenderError{err: fmt.Errorf(format, args...)}
}

func (e *RenderError) Error() string {
	return "corridor: compositing failed: " + e.err.Error()
}

func (e *RenderError) Unwrap() error {
	return e.err
}
