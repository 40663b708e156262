package cliconfig

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/gifloop/internal/domain"
	"github.com/bft-labs/gifloop/pkg/animate"
)

// StdoutOutput selects standard output as the animation destination.
const StdoutOutput = "-"

// Config holds CLI configuration for gifloop.
type Config struct {
	FramesDir string
	Frames    []string
	Pattern   string
	Output    string

	Delay  int
	Delays []int
	Loop   int

	Disposal    string
	Transparent string
	Convert     bool

	Watch    bool
	Debounce time.Duration

	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Pattern:  "*.gif",
		Output:   "animation.gif",
		Delay:    100, // 1s
		Loop:     0,   // forever
		Disposal: domain.DisposalBackground.String(),
		Debounce: 200 * time.Millisecond,
		LogLevel: "info",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.FramesDir == "" && len(c.Frames) == 0 {
		return fmt.Errorf("%w: frames-dir or frame files are required", domain.ErrInvalidConfig)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output is required", domain.ErrInvalidConfig)
	}
	if c.Pattern == "" {
		c.Pattern = "*.gif"
	}
	if c.Delay < 0 {
		return fmt.Errorf("%w: delay must not be negative", domain.ErrInvalidConfig)
	}
	for i, d := range c.Delays {
		if d < 0 {
			return fmt.Errorf("%w: delay %d must not be negative", domain.ErrInvalidConfig, i)
		}
	}
	if c.Loop < 0 {
		return fmt.Errorf("%w: loop must not be negative", domain.ErrInvalidConfig)
	}
	if _, ok := domain.ParseDisposal(c.Disposal); !ok {
		return fmt.Errorf("%w: unknown disposal %q", domain.ErrInvalidConfig, c.Disposal)
	}
	if c.Transparent != "" {
		if _, err := domain.ParseRGB(c.Transparent); err != nil {
			return fmt.Errorf("%w: transparent: %v", domain.ErrInvalidConfig, err)
		}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log-level: %v", domain.ErrInvalidConfig, err)
	}
	if c.Watch {
		if c.FramesDir == "" || len(c.Frames) > 0 {
			return fmt.Errorf("%w: watch requires frames-dir", domain.ErrInvalidConfig)
		}
		if c.Output == StdoutOutput {
			return fmt.Errorf("%w: watch cannot write to stdout", domain.ErrInvalidConfig)
		}
		if c.Debounce <= 0 {
			return fmt.Errorf("%w: debounce must be positive", domain.ErrInvalidConfig)
		}
	}
	return nil
}

// AssemblerOptions converts the validated configuration into assembler
// options.
func (c *Config) AssemblerOptions() []animate.Option {
	var opts []animate.Option
	if d, ok := domain.ParseDisposal(c.Disposal); ok {
		opts = append(opts, animate.WithDisposal(d))
	}
	if c.Transparent != "" {
		if rgb, err := domain.ParseRGB(c.Transparent); err == nil {
			opts = append(opts, animate.WithTransparentColor(rgb))
		}
	}
	return opts
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setStrings sets a list if not empty and flag not changed.
func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = append([]string(nil), value...)
}

// setInt sets an int value from a pointer if not nil and flag not changed.
// Zero is a meaningful delay and loop count, so absence is signalled by nil.
func (s *configSetter) setInt(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setInts sets a list of ints if not empty and flag not changed.
func (s *configSetter) setInts(flag string, value []int, dst *[]int) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = append([]int(nil), value...)
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setIntsFromString parses a comma separated list of ints.
// Used for environment variables that come as strings.
func (s *configSetter) setIntsFromString(flag, value string, dst *[]int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		i, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return fmt.Errorf("parse %s: %w", flag, err)
		}
		out = append(out, i)
	}
	*dst = out
	return nil
}

// setStringsFromString splits a comma separated list.
// Used for environment variables that come as strings.
func (s *configSetter) setStringsFromString(flag, value string, dst *[]string) {
	if value == "" || s.changed[flag] {
		return
	}
	var out []string
	for _, p := range strings.Split(value, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	*dst = out
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
