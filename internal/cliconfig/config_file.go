package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	FramesDir   string   `toml:"frames_dir"`
	Frames      []string `toml:"frames"`
	Pattern     string   `toml:"pattern"`
	Output      string   `toml:"output"`
	Delay       *int     `toml:"delay"`
	Delays      []int    `toml:"delays"`
	Loop        *int     `toml:"loop"`
	Disposal    string   `toml:"disposal"`
	Transparent string   `toml:"transparent"`
	Convert     *bool    `toml:"convert"`
	Watch       *bool    `toml:"watch"`
	Debounce    string   `toml:"debounce"`
	LogLevel    string   `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.gifloop/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".gifloop", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("frames-dir", fc.FramesDir, &cfg.FramesDir)
	s.setStrings("frame", fc.Frames, &cfg.Frames)
	s.setString("pattern", fc.Pattern, &cfg.Pattern)
	s.setString("output", fc.Output, &cfg.Output)
	s.setString("disposal", fc.Disposal, &cfg.Disposal)
	s.setString("transparent", fc.Transparent, &cfg.Transparent)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setInt("delay", fc.Delay, &cfg.Delay)
	s.setInts("delays", fc.Delays, &cfg.Delays)
	s.setInt("loop", fc.Loop, &cfg.Loop)

	if err := s.setDuration("debounce", fc.Debounce, &cfg.Debounce); err != nil {
		return err
	}

	s.setBool("convert", fc.Convert, &cfg.Convert)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
