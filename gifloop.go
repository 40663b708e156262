// Package gifloop stitches single-image GIF files into one looping GIF89a
// animation.
//
// Example usage:
//
//	out, err := gifloop.Assemble(frames, []int{50, 50, 50}, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// To build from a directory of frames, as the gifloop CLI does:
//
//	cfg := gifloop.DefaultConfig()
//	cfg.FramesDir = "/path/to/frames"
//	cfg.Output = "/path/to/animation.gif"
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	if err := gifloop.Run(context.Background(), cfg, nil); err != nil {
//	    log.Fatal(err)
//	}
package gifloop

import (
	"context"
	"os"

	"github.com/bft-labs/gifloop/internal/adapters/fs"
	"github.com/bft-labs/gifloop/internal/app"
	"github.com/bft-labs/gifloop/internal/cliconfig"
	"github.com/bft-labs/gifloop/internal/ports"
	"github.com/bft-labs/gifloop/pkg/animate"
	"github.com/bft-labs/gifloop/pkg/log"
)

// Config holds the configuration of a directory build.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = cliconfig.Config

// Option configures the assembler.
type Option = animate.Option

// Summary describes a single GIF file.
type Summary = animate.Summary

// Errors returned by Assemble and Run. Check them with errors.Is.
var (
	ErrInvalidFrameFormat    = animate.ErrInvalidFrameFormat
	ErrAlreadyAnimatedSource = animate.ErrAlreadyAnimatedSource
	ErrArityMismatch         = animate.ErrArityMismatch
	ErrEmptyInput            = animate.ErrEmptyInput
)

// Assemble joins single-image GIF frames into an animated GIF89a stream.
// See animate.Assemble.
func Assemble(frames [][]byte, delays []int, loopCount int, opts ...Option) ([]byte, error) {
	return animate.Assemble(frames, delays, loopCount, opts...)
}

// Inspect summarizes a single GIF file without decoding pixels.
func Inspect(raw []byte) (Summary, error) {
	return animate.Inspect(raw)
}

// DefaultConfig returns a Config with sensible default values.
// At minimum, set FramesDir or Frames before calling Run.
func DefaultConfig() Config {
	return cliconfig.DefaultConfig()
}

// Run builds the animation described by cfg. With cfg.Watch it keeps
// rebuilding on every change of the frame directory until ctx is
// cancelled. A nil logger discards output.
func Run(ctx context.Context, cfg Config, logger log.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}

	source := fs.NewDirSource(fs.DirSourceConfig{
		Dir:           cfg.FramesDir,
		Pattern:       cfg.Pattern,
		Files:         cfg.Frames,
		Delay:         cfg.Delay,
		Delays:        cfg.Delays,
		Exclude:       []string{cfg.Output},
		ConvertStills: cfg.Convert,
	}, logger)

	var sink ports.AnimationSink
	if cfg.Output == cliconfig.StdoutOutput {
		sink = fs.NewWriterSink(os.Stdout, "stdout")
	} else {
		sink = fs.NewFileSink(cfg.Output)
	}

	builder := app.NewBuilder(app.BuilderConfig{
		LoopCount: cfg.Loop,
		Options:   cfg.AssemblerOptions(),
	}, source, sink, logger)

	if !cfg.Watch {
		_, err := builder.Build(ctx)
		return err
	}

	watcher := app.NewWatcher(app.WatcherConfig{
		Dir:      source.Dir(),
		Pattern:  cfg.Pattern,
		Ignore:   []string{cfg.Output, cfg.Output + ".tmp"},
		Debounce: cfg.Debounce,
	}, builder, logger)
	return watcher.Run(ctx)
}
