package components

// Widget is anything that can draw itself into a width x height cell
// block. Render returns exactly height lines joined by "\n", each exactly
// width cells wide, or "" when either dimension is not positive.
type Widget interface {
	Render(width, height int) string
}

// WidgetFunc adapts a plain function to the Widget interface.
type WidgetFunc func(width, height int) string

// Render calls f.
func (f WidgetFunc) Render(width, height int) string {
	return f(width, height)
}

// Blank renders nothing but spaces.
type Blank struct{}

// Render returns a block of spaces.
func (Blank) Render(width, height int) string {
	return frame(nil, width, height)
}

// Text is a single pre-styled string drawn on the first line.
type Text struct {
	Content string
	Align   Align
}

// Render draws the content aligned on the first line.
func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return frame([]string{AlignText(t.Content, width, t.Align)}, width, height)
}
