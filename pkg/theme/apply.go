package theme

import "gitlab.com/tinyland/lab/charsheet/pkg/components"

// Styles are the component styles a theme resolves to.
type Styles struct {
	Text       components.Style
	Dim        components.Style
	Accent     components.Style
	Border     components.Style
	Title      components.Style
	Name       components.Style
	Proficient components.Style
	Key        components.Style
}

// Styles resolves t into component styles.
func (t Theme) Styles() Styles {
	return Styles{
		Text:       components.Style{FG: t.Foreground},
		Dim:        components.Style{FG: t.Dim},
		Accent:     components.Style{FG: t.Accent},
		Border:     components.Style{FG: t.Border},
		Title:      components.Style{FG: t.Title, Bold: true},
		Name:       components.Style{FG: t.Foreground, Bold: true},
		Proficient: components.Style{FG: t.Proficient},
		Key:        components.Style{FG: t.Foreground, Underline: true},
	}
}

// HitPoints returns the style for a current/max hit point reading.
// Thresholds: above half is good, above a quarter is a warning, else bad.
func (t Theme) HitPoints(current, maximum int) components.Style {
	if maximum <= 0 {
		return components.Style{FG: t.Foreground}
	}
	switch {
	case current*4 <= maximum:
		return components.Style{FG: t.Bad, Bold: true}
	case current*2 <= maximum:
		return components.Style{FG: t.Warn}
	default:
		return components.Style{FG: t.Good}
	}
}
