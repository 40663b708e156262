package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent error conditions in the gifloop domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidFrameFormat is returned when a frame is not a well-formed
	// single-image GIF.
	ErrInvalidFrameFormat = errors.New("gifloop: invalid frame format")

	// ErrAlreadyAnimatedSource is returned when a frame already carries a
	// NETSCAPE looping extension.
	ErrAlreadyAnimatedSource = errors.New("gifloop: source is already animated")

	// ErrArityMismatch is returned when the delay count differs from the
	// frame count.
	ErrArityMismatch = errors.New("gifloop: delay count does not match frame count")

	// ErrEmptyInput is returned when no frames are supplied.
	ErrEmptyInput = errors.New("gifloop: no frames")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("gifloop: invalid configuration")
)

// FrameError reports a failure attributable to a single input frame.
type FrameError struct {
	// Index is the position of the frame in the input list.
	Index int

	// Offset is the byte offset within the frame where the problem was
	// found, or -1 when not applicable.
	Offset int

	// Reason is a short human readable description.
	Reason string

	// Err is the domain sentinel the failure maps to.
	Err error
}

// NewFrameError returns a FrameError for frame index at byte offset.
func NewFrameError(index, offset int, err error, reason string) *FrameError {
	return &FrameError{Index: index, Offset: offset, Reason: reason, Err: err}
}

func (e *FrameError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%v: frame %d: %s", e.Err, e.Index, e.Reason)
	}
	return fmt.Sprintf("%v: frame %d at offset %d: %s", e.Err, e.Index, e.Offset, e.Reason)
}

// Unwrap returns the underlying domain sentinel.
func (e *FrameError) Unwrap() error {
	return e.Err
}
