package fs

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/gif"
	"os"
	"path/filepath"
	"sort"

	"github.com/bft-labs/gifloop/internal/domain"
	"github.com/bft-labs/gifloop/pkg/log"
)

// DefaultPattern selects the frame files of a directory.
const DefaultPattern = "*.gif"

// DirSourceConfig selects and times the frames read by a DirSource.
type DirSourceConfig struct {
	// Dir is the directory holding the frames. Ignored when Files is set.
	Dir string

	// Pattern is a filepath.Match pattern applied inside Dir.
	// Default: *.gif
	Pattern string

	// Files is an explicit, ordered list of frame files.
	Files []string

	// Delay is the delay in centiseconds used for every frame when
	// Delays is empty.
	Delay int

	// Delays holds one delay per frame, in frame order.
	Delays []int

	// Exclude lists files never read as frames, such as the output
	// animation when it is written into Dir.
	Exclude []string

	// ConvertStills re-encodes non-GIF images (PNG, JPEG, BMP, WebP) as
	// single-frame GIFs scaled to the first frame's size.
	ConvertStills bool
}

// DirSource implements ports.FrameSource by reading frame files.
// Directory entries are taken in lexical order, so frames should be named
// with zero padded sequence numbers.
type DirSource struct {
	cfg    DirSourceConfig
	logger log.Logger
}

// NewDirSource creates a DirSource. A nil logger discards output.
func NewDirSource(cfg DirSourceConfig, logger log.Logger) *DirSource {
	if cfg.Pattern == "" {
		cfg.Pattern = DefaultPattern
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &DirSource{cfg: cfg, logger: logger}
}

// Dir returns the watched directory, or the empty string when the source
// reads an explicit file list.
func (s *DirSource) Dir() string {
	if len(s.cfg.Files) > 0 {
		return ""
	}
	return s.cfg.Dir
}

// Paths returns the frame files in frame order.
func (s *DirSource) Paths() ([]string, error) {
	if len(s.cfg.Files) > 0 {
		return append([]string(nil), s.cfg.Files...), nil
	}
	matches, err := filepath.Glob(filepath.Join(s.cfg.Dir, s.cfg.Pattern))
	if err != nil {
		return nil, fmt.Errorf("match %s: %w", s.cfg.Pattern, err)
	}
	exclude := make(map[string]struct{}, len(s.cfg.Exclude))
	for _, p := range s.cfg.Exclude {
		exclude[absPath(p)] = struct{}{}
	}

	paths := matches[:0]
	for _, m := range matches {
		if _, skip := exclude[absPath(m)]; skip {
			continue
		}
		fi, err := os.Stat(m)
		if err != nil {
			return nil, err
		}
		if fi.Mode().IsRegular() {
			paths = append(paths, m)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// Load reads every frame file. GIF files are passed through untouched so
// that the assembler validates them; other images are converted when
// ConvertStills is set and passed through otherwise.
func (s *DirSource) Load(ctx context.Context) (domain.FrameSet, error) {
	var set domain.FrameSet

	paths, err := s.Paths()
	if err != nil {
		return set, err
	}
	if len(paths) == 0 {
		return set, fmt.Errorf("%w: nothing matches %s in %s", domain.ErrEmptyInput, s.cfg.Pattern, s.cfg.Dir)
	}
	if len(s.cfg.Delays) > 0 && len(s.cfg.Delays) != len(paths) {
		return set, fmt.Errorf("%w: %d delays for %d frame files", domain.ErrArityMismatch, len(s.cfg.Delays), len(paths))
	}

	var bounds image.Rectangle
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return domain.FrameSet{}, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return domain.FrameSet{}, fmt.Errorf("read frame %d: %w", i, err)
		}

		if isGIF(data) {
			if i == 0 {
				if c, err := gif.DecodeConfig(bytes.NewReader(data)); err == nil {
					bounds = image.Rect(0, 0, c.Width, c.Height)
				}
			}
		} else if s.cfg.ConvertStills {
			var b image.Rectangle
			data, b, err = EncodeStill(bytes.NewReader(data), bounds)
			if err != nil {
				return domain.FrameSet{}, fmt.Errorf("convert %s: %w", path, err)
			}
			if i == 0 {
				bounds = b
			}
			s.logger.Debug("converted still frame",
				log.String("file", path),
				log.Int("bytes", len(data)),
			)
		}

		set.Add(filepath.Base(path), data, s.delay(i))
	}

	s.logger.Debug("frames loaded",
		log.Int("frames", set.Len()),
		log.Int("bytes", set.TotalBytes()),
	)
	return set, nil
}

func (s *DirSource) delay(i int) int {
	if len(s.cfg.Delays) > 0 {
		return s.cfg.Delays[i]
	}
	return s.cfg.Delay
}

func isGIF(data []byte) bool {
	return bytes.HasPrefix(data, []byte(domain.Signature87a)) ||
		bytes.HasPrefix(data, []byte(domain.Signature89a))
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
