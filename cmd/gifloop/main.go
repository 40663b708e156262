package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/gifloop"
	"github.com/bft-labs/gifloop/internal/cliconfig"
	logAdapter "github.com/bft-labs/gifloop/pkg/log"
)

const helpDescription = `
Stitch single-image GIF files into one looping GIF89a animation.

Highlights:
  - Copies frame data byte for byte; nothing is decoded or re-quantized.
  - Reuses the first frame's color table wherever a frame's palette matches it.
  - Converts PNG, JPEG, BMP and WebP stills on request.
  - Watches the frame directory and rebuilds on change.
`

var exampleUsage = strings.TrimSpace(`
  gifloop --frames-dir ./frames --output clock.gif --delay 100
  gifloop --frame a.gif --frame b.gif --delays 50,150 --loop 3 --output - > out.gif
  gifloop --frames-dir ./frames --watch
  gifloop inspect frames/*.gif
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logError(os.Stderr, err)
		os.Exit(1)
	}
}

func logError(w io.Writer, err error) {
	log := cliconfig.NewLogger(w, "info")
	log.Error().Err(err).Msg("gifloop")
}

func newRootCmd() *cobra.Command {
	cfg := gifloop.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "gifloop",
		Short:         "Stitch single-image GIFs into a looping animation",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.gifloop/config.toml), then apply flag overrides
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// Apply environment variables (GIFLOOP_*)
			// These override file config but are overridden by flags (checked via changed map)
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			// Positional arguments are frame files
			if len(args) > 0 {
				cfg.Frames = append(cfg.Frames, args...)
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			log := cliconfig.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			log.Debug().Interface("config", cfg).Msg("configuration")

			// Setup signal handling for graceful shutdown
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := gifloop.Run(ctx, cfg, logAdapter.NewZerologAdapterWithLogger(log)); err != nil {
				return err
			}
			if cfg.Watch {
				log.Info().Msg("received signal, stopped watching")
			}
			return nil
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.gifloop/config.toml)")
	root.Flags().StringVar(&cfg.FramesDir, "frames-dir", cfg.FramesDir, "directory holding the frame files")
	root.Flags().StringSliceVar(&cfg.Frames, "frame", cfg.Frames, "frame file, repeatable; overrides frames-dir")
	root.Flags().StringVar(&cfg.Pattern, "pattern", cfg.Pattern, "glob selecting frame files inside frames-dir")
	root.Flags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "output file, or - for stdout")

	root.Flags().IntVar(&cfg.Delay, "delay", cfg.Delay, "delay per frame in centiseconds")
	root.Flags().IntSliceVar(&cfg.Delays, "delays", cfg.Delays, "comma separated per-frame delays in centiseconds")
	root.Flags().IntVar(&cfg.Loop, "loop", cfg.Loop, "number of loops, 0 loops forever")

	root.Flags().StringVar(&cfg.Disposal, "disposal", cfg.Disposal, "disposal method: unspecified, none, background or previous")
	root.Flags().StringVar(&cfg.Transparent, "transparent", cfg.Transparent, "color drawn transparent, as #rgb or #rrggbb")
	root.Flags().BoolVar(&cfg.Convert, "convert", cfg.Convert, "convert PNG, JPEG, BMP and WebP frames to GIF")

	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "rebuild whenever frames-dir changes")
	root.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "quiet period before a watch rebuild")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")

	root.AddCommand(newInspectCmd())
	return root
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE...",
		Short: "Show how gifloop sees GIF files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				s, err := gifloop.Inspect(data)
				if err != nil {
					fmt.Fprintf(out, "%s: %v\n", path, err)
					failed++
					continue
				}
				fmt.Fprintf(out, "%s: %s %dx%d global=%d animated=%t",
					path, s.Signature, s.Width, s.Height, s.GlobalEntries, s.Animated)
				if !s.Animated {
					fmt.Fprintf(out, " palette=%s/%d interlaced=%t extensions=%d data=%dB",
						s.Palette, s.PaletteEntries, s.Interlaced, s.SkippedExtensions, s.ImageDataBytes)
				}
				fmt.Fprintln(out)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files rejected", failed, len(args))
			}
			return nil
		},
	}
}
