package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"gitlab.com/tinyland/lab/charsheet/pkg/theme"
)

const appName = "charsheet"

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/charsheet/config.toml
//  2. ~/.config/charsheet/config.toml
//
// If no file exists, returns DefaultConfig() with env overrides applied.
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, cfg.Validate()
}

// LoadFromFile reads configuration from a specific file path. Unlike
// Load, a missing file is an error.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Display.ThemeFile != "" && !filepath.IsAbs(cfg.Display.ThemeFile) {
		cfg.Display.ThemeFile = filepath.Join(filepath.Dir(path), cfg.Display.ThemeFile)
	}
	return cfg, nil
}

// LoadFromReader reads configuration from an io.Reader. Keys missing from
// the input keep their defaults; unknown keys are an error.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: parse TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()

	return &Config{
		Display: DisplayConfig{
			Theme:    theme.DefaultName,
			Border:   "plain",
			Color:    ColorAuto,
			Portrait: true,
		},
		Log: LogConfig{
			Level:      "info",
			File:       filepath.Join(xdgCacheHome(home), appName, appName+".log"),
			MaxSizeMB:  5,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// LoadTheme resolves the configured palette: the theme file when set,
// otherwise the named builtin.
func (c *Config) LoadTheme() (theme.Theme, error) {
	if c.Display.ThemeFile != "" {
		return theme.LoadFile(c.Display.ThemeFile)
	}
	t, ok := theme.Lookup(c.Display.Theme)
	if !ok {
		return theme.Theme{}, fmt.Errorf("%w: unknown theme %q", ErrInvalid, c.Display.Theme)
	}
	return t, nil
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CHARSHEET_THEME"); v != "" {
		cfg.Display.Theme = v
		cfg.Display.ThemeFile = ""
	}
	if v := os.Getenv("CHARSHEET_BORDER"); v != "" {
		cfg.Display.Border = v
	}
	if v := os.Getenv("CHARSHEET_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	// https://no-color.org: any non-empty value disables color.
	if os.Getenv("NO_COLOR") != "" {
		cfg.Display.Color = ColorNever
	}
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, appName, "config.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, appName, "config.toml"))
	}

	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}

// xdgCacheHome returns XDG_CACHE_HOME or ~/.cache as fallback.
func xdgCacheHome(home string) string {
	if v := os.Getenv("XDG_CACHE_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".cache")
}
