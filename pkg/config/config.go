// Package config provides TOML-based configuration for charsheet.
package config

import (
	"errors"
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/charsheet/pkg/components"
	"gitlab.com/tinyland/lab/charsheet/pkg/theme"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Color modes for [display] color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the whole configuration file.
type Config struct {
	Display DisplayConfig `toml:"display"`
	Watch   WatchConfig   `toml:"watch"`
	Log     LogConfig     `toml:"log"`
}

// DisplayConfig controls how the sheet looks.
type DisplayConfig struct {
	// Theme names a builtin palette. Ignored when ThemeFile is set.
	Theme string `toml:"theme"`
	// ThemeFile is a TOML palette loaded instead of a builtin.
	ThemeFile string `toml:"theme_file"`
	Border    string `toml:"border"`
	// Color is "auto", "always" or "never".
	Color    string `toml:"color"`
	Portrait bool   `toml:"portrait"`
	// Footer replaces the footer hint line when set.
	Footer string `toml:"footer"`
}

// WatchConfig controls --watch mode.
type WatchConfig struct {
	// ReloadInterval re-reads the character file this often. Zero disables
	// reloading.
	ReloadInterval Duration `toml:"reload_interval"`
}

// LogConfig controls the rotated log file.
type LogConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

// Validate checks every enumerated and numeric field.
func (c *Config) Validate() error {
	var errs []error

	if c.Display.ThemeFile == "" {
		if _, ok := theme.Lookup(c.Display.Theme); !ok {
			errs = append(errs, fmt.Errorf("display.theme: unknown theme %q (have %s)",
				c.Display.Theme, strings.Join(theme.Names(), ", ")))
		}
	}
	if _, err := components.ParseBorderStyle(c.Display.Border); err != nil {
		errs = append(errs, fmt.Errorf("display.border: %w", err))
	}
	switch c.Display.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("display.color: must be auto, always or never, got %q", c.Display.Color))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		errs = append(errs, errors.New("log: rotation limits must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}
