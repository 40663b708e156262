package animate

import (
	"fmt"

	"github.com/bft-labs/gifloop/internal/domain"
	"github.com/bft-labs/gifloop/pkg/log"
)

// Assembler builds animated GIF streams from single-image GIF frames.
// An Assembler is safe for concurrent use.
type Assembler struct {
	opts options
}

// New returns an Assembler configured by opts.
func New(opts ...Option) *Assembler {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Assembler{opts: o}
}

// Assemble is a convenience for New(opts...).Assemble(frames, delays, loopCount).
func Assemble(frames [][]byte, delays []int, loopCount int, opts ...Option) ([]byte, error) {
	return New(opts...).Assemble(frames, delays, loopCount)
}

// Assemble returns an animated GIF89a stream showing frames in order, each
// for its delay in centiseconds. A loopCount of zero or less loops
// forever; delays and loop counts beyond 65535 are clamped.
//
// Every frame is validated before any output is produced. On error the
// returned slice is nil.
func (a *Assembler) Assemble(frames [][]byte, delays []int, loopCount int) ([]byte, error) {
	if len(frames) == 0 {
		return nil, domain.ErrEmptyInput
	}
	if len(delays) != len(frames) {
		return nil, fmt.Errorf("%w: %d delays for %d frames", domain.ErrArityMismatch, len(delays), len(frames))
	}

	parsed := make([]*Frame, len(frames))
	size := 0
	for i, raw := range frames {
		f, err := ParseFrame(i, raw)
		if err != nil {
			return nil, err
		}
		parsed[i] = f
		size += len(raw)
	}

	first := parsed[0]
	c := &composer{
		global:      first.Global,
		disposal:    a.opts.disposal,
		transparent: a.opts.transparent,
		logger:      a.opts.logger,
	}
	loop := domain.ClampLoopCount(loopCount)

	out := make([]byte, 0, size+domain.LoopExtensionLen+len(frames)*domain.GraphicControlLen)
	out = appendHeader(out, first, loop)
	for _, f := range parsed {
		out = c.appendFrame(out, f, domain.ClampDelay(delays[f.Index]))
	}
	out = append(out, domain.Trailer)

	a.opts.logger.Debug("animation assembled",
		log.Int("frames", len(frames)),
		log.Int("loop", int(loop)),
		log.Bool("loop_extension", first.ScreenPacked().HasColorTable()),
		log.Int("input_bytes", size),
		log.Int("output_bytes", len(out)),
	)
	return out, nil
}
