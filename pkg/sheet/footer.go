package sheet

import (
	"gitlab.com/tinyland/lab/charsheet/pkg/components"
	"gitlab.com/tinyland/lab/charsheet/pkg/layout"
)

func (s *Sheet) drawFooter(p Painter, area layout.Rect) {
	p.Paint(area, s.block(""))
	if s.opts.Footer == "" {
		return
	}
	inner := s.split(footerLayout, area)
	p.Paint(inner[0], components.Text{
		Content: s.styles.Dim.Render(s.opts.Footer),
		Align:   components.AlignCenter,
	})
}
