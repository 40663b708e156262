package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFrame(t *testing.T, path string, c color.Color) {
	t.Helper()
	img := image.NewPaletted(image.Rect(0, 0, 2, 2), color.Palette{color.Black, c})
	var buf bytes.Buffer
	if err := gif.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Keep a real config file in $HOME out of the way.
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_Build(t *testing.T) {
	dir := t.TempDir()
	writeFrame(t, filepath.Join(dir, "1.gif"), color.White)
	writeFrame(t, filepath.Join(dir, "2.gif"), color.RGBA{R: 255, A: 255})
	output := filepath.Join(t.TempDir(), "anim.gif")

	if _, err := run(t, "--frames-dir", dir, "--output", output, "--delays", "20,40", "--loop", "2"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeAll() error = %v", err)
	}
	if len(g.Image) != 2 || g.Delay[0] != 20 || g.Delay[1] != 40 {
		t.Errorf("frames = %d delays = %v", len(g.Image), g.Delay)
	}
	if g.LoopCount != 2 {
		t.Errorf("LoopCount = %d, want 2", g.LoopCount)
	}
}

func TestRootCmd_ConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeFrame(t, filepath.Join(dir, "1.gif"), color.White)
	output := filepath.Join(t.TempDir(), "anim.gif")

	cfgFile := filepath.Join(t.TempDir(), "config.toml")
	content := "frames_dir = \"" + filepath.ToSlash(dir) + "\"\ndelay = 30\nloop = 5\n"
	if err := os.WriteFile(cfgFile, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GIFLOOP_LOOP", "6")

	if _, err := run(t, "--config", cfgFile, "--output", output, "--delay", "45"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeAll() error = %v", err)
	}
	if g.Delay[0] != 45 {
		t.Errorf("Delay = %d, want flag value 45", g.Delay[0])
	}
	if g.LoopCount != 6 {
		t.Errorf("LoopCount = %d, want env value 6", g.LoopCount)
	}
}

func TestRootCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no frames", args: []string{}, want: "frames-dir"},
		{name: "bad disposal", args: []string{"--frame", "x.gif", "--disposal", "spin"}, want: "disposal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Execute() error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	logError(&buf, errors.New("frame 2 rejected"))

	out := buf.String()
	if !strings.Contains(out, "frame 2 rejected") || !strings.Contains(out, "gifloop") {
		t.Errorf("logError() output = %q", out)
	}
}

func TestInspectCmd(t *testing.T) {
	dir := t.TempDir()
	frame := filepath.Join(dir, "1.gif")
	writeFrame(t, frame, color.White)
	junk := filepath.Join(dir, "junk.gif")
	if err := os.WriteFile(junk, []byte("nope"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "inspect", frame)
	if err != nil {
		t.Fatalf("inspect error = %v", err)
	}
	if !strings.Contains(out, "GIF89a 2x2") || !strings.Contains(out, "animated=false") {
		t.Errorf("inspect output = %q", out)
	}

	out, err = run(t, "inspect", frame, junk)
	if err == nil {
		t.Fatal("inspect expected error for invalid file")
	}
	if !strings.Contains(out, "junk.gif") {
		t.Errorf("inspect output = %q, want junk.gif reported", out)
	}
}
