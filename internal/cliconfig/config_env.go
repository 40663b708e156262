package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (GIFLOOP_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("frames-dir", os.Getenv("GIFLOOP_FRAMES_DIR"), &cfg.FramesDir)
	s.setStringsFromString("frame", os.Getenv("GIFLOOP_FRAMES"), &cfg.Frames)
	s.setString("pattern", os.Getenv("GIFLOOP_PATTERN"), &cfg.Pattern)
	s.setString("output", os.Getenv("GIFLOOP_OUTPUT"), &cfg.Output)
	s.setString("disposal", os.Getenv("GIFLOOP_DISPOSAL"), &cfg.Disposal)
	s.setString("transparent", os.Getenv("GIFLOOP_TRANSPARENT"), &cfg.Transparent)
	s.setString("log-level", os.Getenv("GIFLOOP_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setIntFromString("delay", os.Getenv("GIFLOOP_DELAY"), &cfg.Delay); err != nil {
		return err
	}
	if err := s.setIntsFromString("delays", os.Getenv("GIFLOOP_DELAYS"), &cfg.Delays); err != nil {
		return err
	}
	if err := s.setIntFromString("loop", os.Getenv("GIFLOOP_LOOP"), &cfg.Loop); err != nil {
		return err
	}
	if err := s.setDuration("debounce", os.Getenv("GIFLOOP_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	s.setBoolFromString("convert", os.Getenv("GIFLOOP_CONVERT"), &cfg.Convert)
	s.setBoolFromString("watch", os.Getenv("GIFLOOP_WATCH"), &cfg.Watch)

	return nil
}
