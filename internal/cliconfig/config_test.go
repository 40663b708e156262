package cliconfig

import (
	"errors"
	"testing"
	"time"

	"github.com/bft-labs/gifloop/internal/domain"
	"github.com/bft-labs/gifloop/pkg/animate"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Delay != 100 {
		t.Errorf("Delay = %v, want 100", cfg.Delay)
	}
	if cfg.Loop != 0 {
		t.Errorf("Loop = %v, want 0", cfg.Loop)
	}
	if cfg.Disposal != "background" {
		t.Errorf("Disposal = %v, want background", cfg.Disposal)
	}
	if cfg.Pattern != "*.gif" {
		t.Errorf("Pattern = %v, want *.gif", cfg.Pattern)
	}
	if cfg.Debounce != 200*time.Millisecond {
		t.Errorf("Debounce = %v, want 200ms", cfg.Debounce)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func(mod func(*Config)) Config {
		cfg := DefaultConfig()
		cfg.FramesDir = "/tmp/frames"
		if mod != nil {
			mod(&cfg)
		}
		return cfg
	}

	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "valid minimal config", config: valid(nil)},
		{name: "explicit frames", config: valid(func(c *Config) { c.FramesDir = ""; c.Frames = []string{"a.gif"} })},
		{name: "no frames", config: valid(func(c *Config) { c.FramesDir = "" }), wantErr: true},
		{name: "no output", config: valid(func(c *Config) { c.Output = "" }), wantErr: true},
		{name: "negative delay", config: valid(func(c *Config) { c.Delay = -1 }), wantErr: true},
		{name: "negative per frame delay", config: valid(func(c *Config) { c.Delays = []int{10, -5} }), wantErr: true},
		{name: "zero delay", config: valid(func(c *Config) { c.Delay = 0 })},
		{name: "negative loop", config: valid(func(c *Config) { c.Loop = -1 }), wantErr: true},
		{name: "numeric disposal", config: valid(func(c *Config) { c.Disposal = "1" })},
		{name: "unknown disposal", config: valid(func(c *Config) { c.Disposal = "explode" }), wantErr: true},
		{name: "transparent color", config: valid(func(c *Config) { c.Transparent = "#fff" })},
		{name: "bad transparent color", config: valid(func(c *Config) { c.Transparent = "#ggg" }), wantErr: true},
		{name: "bad log level", config: valid(func(c *Config) { c.LogLevel = "loud" }), wantErr: true},
		{name: "watch directory", config: valid(func(c *Config) { c.Watch = true })},
		{name: "watch explicit frames", config: valid(func(c *Config) { c.Watch = true; c.Frames = []string{"a.gif"} }), wantErr: true},
		{name: "watch to stdout", config: valid(func(c *Config) { c.Watch = true; c.Output = StdoutOutput }), wantErr: true},
		{name: "watch without debounce", config: valid(func(c *Config) { c.Watch = true; c.Debounce = 0 }), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.config
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_AssemblerOptions(t *testing.T) {
	frame := []byte{
		'G', 'I', 'F', '8', '9', 'a', 1, 0, 1, 0, 0x80, 0, 0,
		0, 0, 0, 0xff, 0xff, 0xff,
		',', 0, 0, 0, 0, 1, 0, 1, 0, 0,
		2, 2, 0x44, 0x01, 0,
		';',
	}

	tests := []struct {
		name        string
		disposal    string
		transparent string
		wantGCE     byte
		wantIndex   byte
	}{
		{name: "defaults", disposal: "background", wantGCE: 2 << 2},
		{name: "previous", disposal: "previous", wantGCE: 3 << 2},
		{name: "transparent white", disposal: "none", transparent: "#ffffff", wantGCE: 1<<2 | 1, wantIndex: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Disposal = tt.disposal
			cfg.Transparent = tt.transparent

			out, err := animate.Assemble([][]byte{frame}, []int{0}, 0, cfg.AssemblerOptions()...)
			if err != nil {
				t.Fatalf("Assemble() error = %v", err)
			}
			// header(13) + gct(6) + loop extension(19), then the GCE
			gce := out[13+6+19:]
			if gce[3] != tt.wantGCE {
				t.Errorf("GCE packed = %#x, want %#x", gce[3], tt.wantGCE)
			}
			if gce[6] != tt.wantIndex {
				t.Errorf("GCE index = %d, want %d", gce[6], tt.wantIndex)
			}
		})
	}
}

func TestConfigSetter(t *testing.T) {
	s := newConfigSetter(map[string]bool{"delay": true})

	delay := 100
	zero := 0
	s.setInt("delay", &zero, &delay)
	if delay != 100 {
		t.Errorf("changed flag overwritten: delay = %d", delay)
	}

	loop := 5
	s.setInt("loop", &zero, &loop)
	if loop != 0 {
		t.Errorf("zero not applied: loop = %d", loop)
	}
	s.setInt("loop", nil, &loop)
	if loop != 0 {
		t.Errorf("nil applied: loop = %d", loop)
	}

	var delays []int
	if err := s.setIntsFromString("delays", "10, 20,30", &delays); err != nil {
		t.Fatalf("setIntsFromString() error = %v", err)
	}
	if len(delays) != 3 || delays[0] != 10 || delays[1] != 20 || delays[2] != 30 {
		t.Errorf("delays = %v", delays)
	}
	if err := s.setIntsFromString("delays", "10,x", &delays); err == nil {
		t.Error("setIntsFromString() expected error for bad list")
	}

	var frames []string
	s.setStringsFromString("frame", "a.gif, ,b.gif", &frames)
	if len(frames) != 2 || frames[0] != "a.gif" || frames[1] != "b.gif" {
		t.Errorf("frames = %v", frames)
	}
}
