package animate

import "github.com/bft-labs/gifloop/internal/domain"

// Re-export domain types so callers outside the module can use them.
type (
	// RGB is a color table entry.
	RGB = domain.RGB

	// ColorTable is a palette laid out as RGB triplets.
	ColorTable = domain.ColorTable

	// Packed is a descriptor packed fields byte.
	Packed = domain.Packed

	// Disposal is a Graphic Control Extension disposal method.
	Disposal = domain.Disposal

	// FrameError reports a failure in a single input frame.
	FrameError = domain.FrameError
)

const (
	DisposalUnspecified = domain.DisposalUnspecified
	DisposalNone        = domain.DisposalNone
	DisposalBackground  = domain.DisposalBackground
	DisposalPrevious    = domain.DisposalPrevious
)

var (
	ErrInvalidFrameFormat    = domain.ErrInvalidFrameFormat
	ErrAlreadyAnimatedSource = domain.ErrAlreadyAnimatedSource
	ErrArityMismatch         = domain.ErrArityMismatch
	ErrEmptyInput            = domain.ErrEmptyInput
)
