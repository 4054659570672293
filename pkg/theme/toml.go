package theme

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"gitlab.com/tinyland/lab/charsheet/pkg/components"
)

// thTOMLTheme is the TOML-serializable representation of a Theme.
type thTOMLTheme struct {
	Name   string       `toml:"name"`
	Base   thTOMLBase   `toml:"base"`
	Block  thTOMLBlock  `toml:"block"`
	Status thTOMLStatus `toml:"status"`
}

type thTOMLBase struct {
	Foreground string `toml:"foreground"`
	Dim        string `toml:"dim"`
	Accent     string `toml:"accent"`
	Proficient string `toml:"proficient"`
}

type thTOMLBlock struct {
	Border string `toml:"border"`
	Title  string `toml:"title"`
}

type thTOMLStatus struct {
	Good string `toml:"good"`
	Warn string `toml:"warn"`
	Bad  string `toml:"bad"`
}

// LoadFromTOML parses a TOML theme definition from raw bytes.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt thTOMLTheme
	md, err := toml.Decode(string(data), &tt)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Theme{}, fmt.Errorf("theme: unknown key %q", undecoded[0].String())
	}

	t := Theme{
		Name:       tt.Name,
		Foreground: tt.Base.Foreground,
		Dim:        tt.Base.Dim,
		Accent:     tt.Base.Accent,
		Proficient: tt.Base.Proficient,

		Border: tt.Block.Border,
		Title:  tt.Block.Title,

		Good: tt.Status.Good,
		Warn: tt.Status.Warn,
		Bad:  tt.Status.Bad,
	}

	if err := thValidateTheme(t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// LoadFile reads a TOML theme file.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: read %s: %w", path, err)
	}
	t, err := LoadFromTOML(data)
	if err != nil {
		return Theme{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// SaveToTOML serializes a theme to TOML bytes.
func SaveToTOML(t Theme) ([]byte, error) {
	tt := thTOMLTheme{
		Name: t.Name,
		Base: thTOMLBase{
			Foreground: t.Foreground,
			Dim:        t.Dim,
			Accent:     t.Accent,
			Proficient: t.Proficient,
		},
		Block: thTOMLBlock{
			Border: t.Border,
			Title:  t.Title,
		},
		Status: thTOMLStatus{
			Good: t.Good,
			Warn: t.Warn,
			Bad:  t.Bad,
		},
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// thValidateTheme checks that the theme is named and every color parses.
func thValidateTheme(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}

	colorFields := []struct {
		field, value string
	}{
		{"foreground", t.Foreground},
		{"dim", t.Dim},
		{"accent", t.Accent},
		{"proficient", t.Proficient},
		{"border", t.Border},
		{"title", t.Title},
		{"good", t.Good},
		{"warn", t.Warn},
		{"bad", t.Bad},
	}
	for _, f := range colorFields {
		if !components.ValidColor(f.value) {
			return fmt.Errorf("theme: invalid color %q for field %q", f.value, f.field)
		}
	}
	return nil
}
