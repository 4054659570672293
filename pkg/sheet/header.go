package sheet

import (
	"fmt"

	"gitlab.com/tinyland/lab/charsheet/pkg/components"
	"gitlab.com/tinyland/lab/charsheet/pkg/layout"
)

func (s *Sheet) drawHeader(p Painter, area layout.Rect) {
	p.Paint(area, s.block("Character"))

	cols := s.split(headerLayout, area)
	s.drawPicture(p, cols[0])
	p.Paint(cols[1], s.nameParagraph())
	s.drawRests(p, cols[3])
}

func (s *Sheet) drawPicture(p Painter, area layout.Rect) {
	p.Paint(area, s.block(""))
	if s.opts.Portrait != nil {
		p.Paint(area.Inner(1), s.opts.Portrait)
	}
}

func (s *Sheet) nameParagraph() components.Paragraph {
	c := s.char
	return s.paragraph(components.AlignLeft,
		components.Styled("\n"+c.Name+"\n", s.styles.Name),
		components.Raw(fmt.Sprintf("%s %s Lvl %d\n", c.Race, c.Class, c.Level)),
	)
}

func (s *Sheet) drawRests(p Painter, area layout.Rect) {
	buttons := s.split(restsLayout, area)
	s.drawButton(p, buttons[0], "S", "hort rest ⛺")
	s.drawButton(p, buttons[1], "L", "ong rest 🌖")
}

// drawButton draws a boxed label whose first letter is the key that
// triggers it.
func (s *Sheet) drawButton(p Painter, area layout.Rect, key, rest string) {
	p.Paint(area.WithHeight(buttonHeight), s.block(""))
	inner := s.split(buttonLayout, area)
	p.Paint(inner[0], s.paragraph(components.AlignCenter,
		components.Styled(key, s.styles.Key),
		components.Styled(rest, s.styles.Text),
	))
}
