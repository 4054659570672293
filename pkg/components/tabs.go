package components

import "strings"

// DefaultDivider separates tab titles when Tabs.Divider is empty.
const DefaultDivider = "│"

// Tabs is a one-line tab bar with one selected title.
type Tabs struct {
	Titles         []string
	Selected       int
	Style          Style
	HighlightStyle Style
	Divider        string
}

// Render draws the titles on the first line as " A │ B │ C ".
func (t Tabs) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	divider := t.Divider
	if divider == "" {
		divider = DefaultDivider
	}

	var buf strings.Builder
	for i, title := range t.Titles {
		if i > 0 {
			buf.WriteString(t.Style.Render(divider))
		}
		style := t.Style
		if i == t.Selected {
			style = t.HighlightStyle
		}
		buf.WriteString(" ")
		buf.WriteString(style.Render(title))
		buf.WriteString(" ")
	}
	return frame([]string{buf.String()}, width, height)
}
