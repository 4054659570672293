package config

import (
	"fmt"
	"time"
)

// Duration is a TOML duration written as a Go duration string ("500ms",
// "2s", "1m"). "off" and the empty string mean zero.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string. Negative values are rejected.
func (d *Duration) UnmarshalText(text []byte) error {
	switch s := string(text); s {
	case "", "off", "0":
		d.Duration = 0
	default:
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		if parsed < 0 {
			return fmt.Errorf("negative duration %q not allowed", s)
		}
		d.Duration = parsed
	}
	return nil
}

// MarshalText writes zero as "off".
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// String returns the duration string, or "off" for zero.
func (d Duration) String() string {
	if d.Duration == 0 {
		return "off"
	}
	return d.Duration.String()
}
