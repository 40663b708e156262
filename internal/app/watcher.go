package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/gifloop/pkg/log"
)

// DefaultDebounce is the quiet period after the last change before a rebuild.
const DefaultDebounce = 200 * time.Millisecond

// ErrNoWatchDir is returned when the watcher has no directory to watch.
var ErrNoWatchDir = errors.New("gifloop: no frame directory to watch")

// Rebuilder runs a build.
type Rebuilder interface {
	Build(ctx context.Context) (Result, error)
}

// WatcherConfig holds configuration options for the directory watcher.
type WatcherConfig struct {
	// Dir is the frame directory.
	Dir string

	// Pattern selects the files whose changes trigger a rebuild.
	// Default: *.gif
	Pattern string

	// Ignore lists paths whose changes never trigger a rebuild, such as
	// the output file when it lives in Dir.
	Ignore []string

	// Debounce is the delay to wait after a file change before rebuilding.
	// Default: 200 milliseconds
	Debounce time.Duration
}

// Watcher rebuilds the animation whenever the frame directory changes.
type Watcher struct {
	config  WatcherConfig
	builder Rebuilder
	logger  log.Logger
	ignore  map[string]struct{}
}

// NewWatcher creates a watcher driving builder.
func NewWatcher(cfg WatcherConfig, builder Rebuilder, logger log.Logger) *Watcher {
	if cfg.Pattern == "" {
		cfg.Pattern = "*.gif"
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	ignore := make(map[string]struct{}, len(cfg.Ignore))
	for _, p := range cfg.Ignore {
		ignore[cleanPath(p)] = struct{}{}
	}
	return &Watcher{config: cfg, builder: builder, logger: logger, ignore: ignore}
}

// Run builds once, then rebuilds after every burst of relevant changes
// until ctx is cancelled. Build failures are logged and do not stop the
// watcher.
func (w *Watcher) Run(ctx context.Context) error {
	if w.config.Dir == "" {
		return ErrNoWatchDir
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.config.Dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.config.Dir, err)
	}

	w.logger.Info("watching frame directory",
		log.String("dir", w.config.Dir),
		log.String("pattern", w.config.Pattern),
	)

	// Initial build
	w.rebuild(ctx)

	timer := time.NewTimer(w.config.Debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("frame directory changed",
				log.String("file", event.Name),
				log.String("op", event.Op.String()),
			)
			timer.Reset(w.config.Debounce)

		case <-timer.C:
			w.rebuild(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	if _, skip := w.ignore[cleanPath(event.Name)]; skip {
		return false
	}
	ok, err := filepath.Match(w.config.Pattern, filepath.Base(event.Name))
	return err == nil && ok
}

func (w *Watcher) rebuild(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if _, err := w.builder.Build(ctx); err != nil {
		w.logger.Error("build failed", log.Err(err))
	}
}

func cleanPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
