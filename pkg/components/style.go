package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style describes how a run of text is drawn. Colors are hex strings
// ("#ff5500"), ANSI palette indices ("3", "214") or one of the basic
// color names ("yellow", "bright-blue"). The zero Style draws plain text.
type Style struct {
	FG        string
	BG        string
	Bold      bool
	Underline bool
	Italic    bool
	Dim       bool
}

// IsZero reports whether s adds no styling at all.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Merge returns s with every field set in over taking precedence.
func (s Style) Merge(over Style) Style {
	if over.FG != "" {
		s.FG = over.FG
	}
	if over.BG != "" {
		s.BG = over.BG
	}
	s.Bold = s.Bold || over.Bold
	s.Underline = s.Underline || over.Underline
	s.Italic = s.Italic || over.Italic
	s.Dim = s.Dim || over.Dim
	return s
}

// Lipgloss converts s to the equivalent lipgloss style.
func (s Style) Lipgloss() lipgloss.Style {
	ls := lipgloss.NewStyle()
	if c := resolveColor(s.FG); c != "" {
		ls = ls.Foreground(lipgloss.Color(c))
	}
	if c := resolveColor(s.BG); c != "" {
		ls = ls.Background(lipgloss.Color(c))
	}
	if s.Bold {
		ls = ls.Bold(true)
	}
	if s.Underline {
		ls = ls.Underline(true)
	}
	if s.Italic {
		ls = ls.Italic(true)
	}
	if s.Dim {
		ls = ls.Faint(true)
	}
	return ls
}

// Render applies s to text. Empty text and the zero Style pass through
// untouched.
func (s Style) Render(text string) string {
	if text == "" || s.IsZero() {
		return text
	}
	return s.Lipgloss().Render(text)
}

// colorNames maps the basic color names to their ANSI palette index.
var colorNames = map[string]string{
	"black":          "0",
	"red":            "1",
	"green":          "2",
	"yellow":         "3",
	"blue":           "4",
	"magenta":        "5",
	"cyan":           "6",
	"white":          "7",
	"gray":           "8",
	"grey":           "8",
	"bright-red":     "9",
	"bright-green":   "10",
	"bright-yellow":  "11",
	"bright-blue":    "12",
	"bright-magenta": "13",
	"bright-cyan":    "14",
	"bright-white":   "15",
}

// resolveColor turns a color name into a palette index. Hex strings and
// numeric indices are returned unchanged.
func resolveColor(c string) string {
	c = strings.TrimSpace(c)
	if idx, ok := colorNames[strings.ToLower(c)]; ok {
		return idx
	}
	return c
}

// ValidColor reports whether c is empty, a known color name, a palette
// index in 0-255 or a #RRGGBB / #RGB hex string.
func ValidColor(c string) bool {
	c = strings.TrimSpace(c)
	if c == "" {
		return true
	}
	if _, ok := colorNames[strings.ToLower(c)]; ok {
		return true
	}
	if strings.HasPrefix(c, "#") {
		hex := c[1:]
		if len(hex) != 3 && len(hex) != 6 {
			return false
		}
		for _, r := range hex {
			if !isHexDigit(r) {
				return false
			}
		}
		return true
	}
	n := 0
	for _, r := range c {
		if r < '0' || r > '9' {
			return false
		}
		n = n*10 + int(r-'0')
		if n > 255 {
			return false
		}
	}
	return true
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
