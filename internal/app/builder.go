package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bft-labs/gifloop/internal/domain"
	"github.com/bft-labs/gifloop/internal/ports"
	"github.com/bft-labs/gifloop/pkg/animate"
	"github.com/bft-labs/gifloop/pkg/log"
)

// BuilderConfig contains the settings of a build.
type BuilderConfig struct {
	// LoopCount is written to the loop extension. Zero loops forever.
	LoopCount int

	// Options configure the assembler.
	Options []animate.Option
}

// Result describes a completed build.
type Result struct {
	Frames      int
	InputBytes  int
	OutputBytes int
	Location    string
	Duration    time.Duration
}

// Builder loads frames, assembles them and writes the animation.
type Builder struct {
	config    BuilderConfig
	source    ports.FrameSource
	sink      ports.AnimationSink
	assembler *animate.Assembler
	logger    log.Logger
}

// NewBuilder creates a new builder with the given dependencies.
func NewBuilder(
	config BuilderConfig,
	source ports.FrameSource,
	sink ports.AnimationSink,
	logger log.Logger,
) *Builder {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	opts := append([]animate.Option{animate.WithLogger(logger)}, config.Options...)
	return &Builder{
		config:    config,
		source:    source,
		sink:      sink,
		assembler: animate.New(opts...),
		logger:    logger,
	}
}

// Build runs one load, assemble and write cycle. Nothing is written when
// any frame is rejected.
func (b *Builder) Build(ctx context.Context) (Result, error) {
	start := time.Now()

	set, err := b.source.Load(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load frames: %w", err)
	}

	out, err := b.assembler.Assemble(set.Frames, set.Delays, b.config.LoopCount)
	if err != nil {
		b.logRejected(set, err)
		return Result{}, fmt.Errorf("assemble: %w", err)
	}

	if err := b.sink.Write(ctx, out); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", b.sink.Location(), err)
	}

	res := Result{
		Frames:      set.Len(),
		InputBytes:  set.TotalBytes(),
		OutputBytes: len(out),
		Location:    b.sink.Location(),
		Duration:    time.Since(start),
	}
	b.logger.Info("animation written",
		log.String("output", res.Location),
		log.Int("frames", res.Frames),
		log.Int("input_bytes", res.InputBytes),
		log.Int("output_bytes", res.OutputBytes),
		log.Duration("duration", res.Duration),
	)
	return res, nil
}

func (b *Builder) logRejected(set domain.FrameSet, err error) {
	var fe *domain.FrameError
	if !errors.As(err, &fe) {
		return
	}
	name := ""
	if fe.Index >= 0 && fe.Index < len(set.Names) {
		name = set.Names[fe.Index]
	}
	b.logger.Error("frame rejected",
		log.Int("index", fe.Index),
		log.String("file", name),
		log.Int("offset", fe.Offset),
		log.String("reason", fe.Reason),
	)
}
