// Package theme holds the named color palettes the sheet can be drawn
// with. Colors are anything components.Style accepts: hex strings, ANSI
// palette indices or basic color names. An empty color leaves the
// terminal's own color in place.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// DefaultName is the theme used when none is configured.
const DefaultName = "default"

// Theme defines the palette for the character sheet.
type Theme struct {
	Name string

	// Base colors
	Foreground string // body text
	Dim        string // hints and secondary text
	Accent     string // table headers, the selected tab

	// Block colors
	Border string
	Title  string

	// Sheet colors
	Proficient string // proficiency markers
	Good       string // hit points above half
	Warn       string // hit points at or below half
	Bad        string // hit points at or below a quarter
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	thRegisterBuiltins()
}

// Get returns a named theme, falling back to the default if not found.
func Get(name string) Theme {
	if t, ok := Lookup(name); ok {
		return t
	}
	t, _ := Lookup(DefaultName)
	return t
}

// Lookup returns a named theme and whether it exists.
func Lookup(name string) (Theme, bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := registry[strings.ToLower(name)]
	return t, ok
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds t to the registry under its lowercase name, replacing any
// theme of the same name.
func Register(t Theme) error {
	if err := thValidateTheme(t); err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
	return nil
}
