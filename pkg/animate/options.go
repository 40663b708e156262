package animate

import (
	"github.com/bft-labs/gifloop/internal/domain"
	"github.com/bft-labs/gifloop/pkg/log"
)

// Option configures optional behavior of an Assembler.
type Option func(*options)

// options holds the optional configuration for an Assembler.
type options struct {
	disposal    domain.Disposal
	transparent *domain.RGB
	logger      log.Logger
}

// defaultOptions returns the options used when none are given: restore to
// background between frames, no transparency, no logging.
func defaultOptions() options {
	return options{
		disposal: domain.DisposalBackground,
		logger:   log.NewNoopLogger(),
	}
}

// WithDisposal sets the disposal method written into every Graphic Control
// Extension. Only the low three bits are used.
func WithDisposal(d Disposal) Option {
	return func(o *options) {
		o.disposal = d
	}
}

// WithTransparentColor marks c as transparent. Each frame's palette is
// searched for c; when found, its index is written as the transparent
// color index of that frame.
func WithTransparentColor(c RGB) Option {
	return func(o *options) {
		o.transparent = &c
	}
}

// WithLogger sets a logger for per-frame debug output.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
