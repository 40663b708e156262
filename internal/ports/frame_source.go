package ports

import (
	"context"

	"github.com/bft-labs/gifloop/internal/domain"
)

// FrameSource supplies the frames of an animation.
// Implementations may render, read or convert frames; the assembler only
// sees the resulting single-image GIF buffers.
type FrameSource interface {
	// Load returns every frame in display order together with its delay.
	// The returned set must satisfy len(Frames) == len(Delays).
	Load(ctx context.Context) (domain.FrameSet, error)
}
