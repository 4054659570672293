// Package canvas composites rendered widgets into one terminal frame.
//
// The frame is kept as one string per row. Painting a widget renders it at
// the size of its area and splices each of its lines into the row at the
// area's column, leaving the cells on either side (and their styling)
// untouched.
package canvas

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"gitlab.com/tinyland/lab/charsheet/pkg/components"
	"gitlab.com/tinyland/lab/charsheet/pkg/layout"
)

const reset = "\x1b[0m"

// Canvas is a width x height frame of text cells.
type Canvas struct {
	width  int
	height int
	lines  []string
}

// New returns a blank canvas. Negative sizes are treated as zero.
func New(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	c := &Canvas{width: width, height: height, lines: make([]string, height)}
	blank := strings.Repeat(" ", width)
	for i := range c.lines {
		c.lines[i] = blank
	}
	return c
}

// Bounds returns the canvas area with its origin at 0,0.
func (c *Canvas) Bounds() layout.Rect {
	return layout.Rect{Width: c.width, Height: c.height}
}

// Paint renders w at the size of area and copies it into the frame,
// clipped to the canvas bounds. A zero-size area paints nothing.
func (c *Canvas) Paint(area layout.Rect, w components.Widget) {
	if area.Empty() || w == nil {
		return
	}
	clip := area.Intersect(c.Bounds())
	if clip.Empty() {
		return
	}

	rendered := strings.Split(w.Render(area.Width, area.Height), "\n")
	for row := clip.Y; row < clip.Bottom(); row++ {
		src := row - area.Y
		if src >= len(rendered) {
			break
		}
		segment := rendered[src]
		if skip := clip.X - area.X; skip > 0 {
			segment = ansi.TruncateLeft(segment, skip, "")
		}
		segment = ansi.Truncate(segment, clip.Width, "")
		c.lines[row] = splice(c.lines[row], segment, clip.X, clip.Width, c.width)
	}
}

// splice replaces width cells of line starting at column x with segment.
// Styles open on the left are closed before the segment, and the segment's
// own styles are closed before the right-hand remainder.
func splice(line, segment string, x, width, total int) string {
	left := ansi.Truncate(line, x, "")
	right := ansi.TruncateLeft(line, x+width, "")

	var buf strings.Builder
	buf.WriteString(left)
	if strings.Contains(left, "\x1b") {
		buf.WriteString(reset)
	}
	buf.WriteString(segment)
	if pad := width - ansi.StringWidth(segment); pad > 0 {
		buf.WriteString(strings.Repeat(" ", pad))
	}
	if strings.Contains(segment, "\x1b") {
		buf.WriteString(reset)
	}
	buf.WriteString(right)

	out := buf.String()
	if w := ansi.StringWidth(out); w < total {
		out += strings.Repeat(" ", total-w)
	} else if w > total {
		out = ansi.Truncate(out, total, "")
	}
	return out
}

// Lines returns a copy of the frame rows.
func (c *Canvas) Lines() []string {
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

// String joins the frame rows with newlines.
func (c *Canvas) String() string {
	return strings.Join(c.lines, "\n")
}

// Plain returns the frame with every escape sequence removed.
func (c *Canvas) Plain() string {
	return ansi.Strip(c.String())
}
