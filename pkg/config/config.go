// Package config defines the xmlnav configuration surface and its YAML
// serialization.
package config

import "fmt"

// Color output modes accepted by the --color flag and the config file.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// minPollInterval is the lowest accepted input poll timeout.
const minPollInterval = 10

// Config holds all user-tunable settings.
type Config struct {
	// Color controls styled output: auto, always or never.
	Color string `yaml:"color"`

	// PollIntervalMS is the input poll timeout in milliseconds; the
	// screen is redrawn at least this often even with no input.
	PollIntervalMS int `yaml:"poll_interval_ms"`

	// PageSize is the PageUp/PageDown stride used before the terminal
	// height is known.
	PageSize int `yaml:"page_size"`

	// PreviewWidth bounds the attribute preview shown beside each entry;
	// 0 disables previews.
	PreviewWidth int `yaml:"preview_width"`

	// ShowHelp shows the key help footer on startup.
	ShowHelp bool `yaml:"show_help"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Color:          ColorAuto,
		PollIntervalMS: 200,
		PageSize:       10,
		PreviewWidth:   40,
		ShowHelp:       true,
	}
}

// Validate checks the configuration for values the program cannot run
// with, returning a descriptive error for the first problem found.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q: must be auto, always or never", c.Color)
	}
	if c.PollIntervalMS < minPollInterval {
		return fmt.Errorf("poll_interval_ms %d is below the %dms minimum", c.PollIntervalMS, minPollInterval)
	}
	if c.PageSize < 1 {
		return fmt.Errorf("page_size must be at least 1, got %d", c.PageSize)
	}
	if c.PreviewWidth < 0 {
		return fmt.Errorf("preview_width must not be negative, got %d", c.PreviewWidth)
	}
	return nil
}
