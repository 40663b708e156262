package gifloop

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bft-labs/gifloop/internal/domain"
)

func writeFrame(t *testing.T, path string, c color.Color) {
	t.Helper()
	img := image.NewPaletted(image.Rect(0, 0, 3, 3), color.Palette{color.Black, c})
	for i := range img.Pix {
		img.Pix[i] = uint8(i % 2)
	}
	var buf bytes.Buffer
	if err := gif.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeFrame(t, filepath.Join(dir, "01.gif"), color.RGBA{R: 255, A: 255})
	writeFrame(t, filepath.Join(dir, "02.gif"), color.RGBA{G: 255, A: 255})
	writeFrame(t, filepath.Join(dir, "03.gif"), color.RGBA{B: 255, A: 255})

	cfg := DefaultConfig()
	cfg.FramesDir = dir
	cfg.Output = filepath.Join(dir, "out.gif")
	cfg.Delay = 25
	cfg.Loop = 3

	// Twice, so the second run has to skip its own earlier output.
	for i := 0; i < 2; i++ {
		if err := Run(context.Background(), cfg, nil); err != nil {
			t.Fatalf("Run() #%d error = %v", i, err)
		}
	}

	data, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeAll() error = %v", err)
	}
	if len(g.Image) != 3 {
		t.Errorf("frames = %d, want 3", len(g.Image))
	}
	if g.LoopCount != 3 {
		t.Errorf("LoopCount = %d, want 3", g.LoopCount)
	}

	s, err := Inspect(data)
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}
	if !s.Animated {
		t.Error("Inspect() reports output as not animated")
	}
}

func TestRun_Watch(t *testing.T) {
	dir := t.TempDir()
	writeFrame(t, filepath.Join(dir, "01.gif"), color.White)
	writeFrame(t, filepath.Join(dir, "02.gif"), color.RGBA{R: 255, A: 255})

	cfg := DefaultConfig()
	cfg.FramesDir = dir
	cfg.Output = filepath.Join(dir, "out.gif")
	cfg.Watch = true
	cfg.Debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- Run(ctx, cfg, nil) }()

	// The initial build writes the output before any change is seen.
	deadline := time.Now().Add(5 * time.Second)
	for !fileExists(cfg.Output) {
		if time.Now().After(deadline) {
			cancel()
			t.Fatal("watch mode never wrote the initial animation")
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func fileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mod     func(*testing.T, *Config, string)
		wantErr error
	}{
		{
			name:    "invalid config",
			mod:     func(t *testing.T, c *Config, dir string) { c.Disposal = "bogus"; c.FramesDir = dir },
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name:    "empty directory",
			mod:     func(t *testing.T, c *Config, dir string) { c.FramesDir = dir },
			wantErr: ErrEmptyInput,
		},
		{
			name: "animated source",
			mod: func(t *testing.T, c *Config, dir string) {
				src := filepath.Join(dir, "src")
				if err := os.Mkdir(src, 0o755); err != nil {
					t.Fatal(err)
				}
				writeFrame(t, filepath.Join(src, "01.gif"), color.White)
				writeFrame(t, filepath.Join(src, "02.gif"), color.White)
				one := DefaultConfig()
				one.FramesDir = src
				one.Output = filepath.Join(src, "anim.gif")
				if err := Run(context.Background(), one, nil); err != nil {
					t.Fatalf("setup Run() error = %v", err)
				}
				c.Frames = []string{filepath.Join(src, "01.gif"), one.Output}
			},
			wantErr: ErrAlreadyAnimatedSource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			cfg := DefaultConfig()
			cfg.Output = filepath.Join(dir, "out.gif")
			tt.mod(t, &cfg, dir)

			err := Run(context.Background(), cfg, nil)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}
			if _, statErr := os.Stat(cfg.Output); !os.IsNotExist(statErr) {
				t.Error("output written despite error")
			}
		})
	}
}
