// Package sheet composes the character sheet screen. It holds no layout
// logic of its own: every section is one solver call whose regions are
// either split again or handed to a Painter together with the widget that
// fills them.
package sheet

import (
	"gitlab.com/tinyland/lab/charsheet/pkg/canvas"
	"gitlab.com/tinyland/lab/charsheet/pkg/character"
	"gitlab.com/tinyland/lab/charsheet/pkg/components"
	"gitlab.com/tinyland/lab/charsheet/pkg/layout"
	"gitlab.com/tinyland/lab/charsheet/pkg/theme"
)

// Painter draws a widget into a leaf region.
type Painter interface {
	Paint(area layout.Rect, w components.Widget)
}

// Options control how the sheet is drawn.
type Options struct {
	Theme  theme.Theme
	Border components.BorderStyle
	// Portrait fills the picture box when set.
	Portrait components.Widget
	// Footer is the hint line shown centered in the footer box.
	Footer string
	// Cache memoizes solver results across frames when set.
	Cache *layout.LayoutCache
}

// Sheet draws one character record.
type Sheet struct {
	char   *character.Character
	opts   Options
	styles theme.Styles
}

// New returns a sheet for c. A zero Theme falls back to the default one.
func New(c *character.Character, opts Options) *Sheet {
	if opts.Theme.Name == "" {
		opts.Theme = theme.Get(theme.DefaultName)
	}
	return &Sheet{char: c, opts: opts, styles: opts.Theme.Styles()}
}

// Draw lays the whole sheet out inside area and paints every leaf.
func (s *Sheet) Draw(p Painter, area layout.Rect) {
	rows := s.split(rootLayout, area)
	s.drawHeader(p, rows[0])
	s.drawStats(p, rows[1])
	s.drawMain(p, rows[2])
	s.drawFooter(p, rows[3])
}

// Render draws c into a width x height frame and returns its lines, or ""
// when either dimension is not positive.
func Render(c *character.Character, opts Options, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	cv := canvas.New(width, height)
	New(c, opts).Draw(cv, cv.Bounds())
	return cv.String()
}

func (s *Sheet) split(l *layout.Layout, area layout.Rect) []layout.Rect {
	if s.opts.Cache != nil {
		return s.opts.Cache.SplitCached(l, area)
	}
	return l.Split(area)
}

func (s *Sheet) block(title string) components.Block {
	return components.Block{
		Title:      title,
		Border:     s.opts.Border,
		Style:      s.styles.Border,
		TitleStyle: s.styles.Title,
	}
}

// label is the bold style for field names.
func (s *Sheet) label() components.Style {
	return s.styles.Text.Merge(components.Style{Bold: true})
}

func (s *Sheet) paragraph(align components.Align, spans ...components.Span) components.Paragraph {
	return components.Paragraph{
		Spans: spans,
		Align: align,
		Wrap:  true,
		Style: s.styles.Text,
	}
}
