package character

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a character file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the decoder by file extension. Anything that is not
// YAML is read as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads, decodes and validates the character file at path. A
// relative Portrait is resolved against the file's directory.
func Load(path string) (*Character, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open character %s: %w", path, err)
	}
	defer f.Close()

	c, err := Decode(f, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("load character %s: %w", path, err)
	}
	if c.Portrait != "" && !filepath.IsAbs(c.Portrait) {
		c.Portrait = filepath.Join(filepath.Dir(path), c.Portrait)
	}
	return c, nil
}

// decoder is satisfied by both the json and yaml stream decoders.
type decoder interface {
	Decode(v any) error
}

// expectEOF fails unless dec has nothing left after the first record.
func expectEOF(dec decoder) error {
	var rest any
	if err := dec.Decode(&rest); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	return nil
}

// Decode reads exactly one record from r in the given format and validates
// it. Anything after the record is an error.
func Decode(r io.Reader, format Format) (*Character, error) {
	var c Character
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&c); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		if err := expectEOF(dec); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		if err := expectEOF(dec); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
