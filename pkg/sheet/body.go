package sheet

import (
	"fmt"
	"strconv"

	"gitlab.com/tinyland/lab/charsheet/pkg/character"
	"gitlab.com/tinyland/lab/charsheet/pkg/components"
	"gitlab.com/tinyland/lab/charsheet/pkg/layout"
)

func (s *Sheet) drawMain(p Painter, area layout.Rect) {
	cols := s.split(mainLayout, area)
	s.drawLeftColumn(p, cols[0])
	s.drawCenterColumn(p, cols[1])
	s.drawPanel(p, cols[2])
}

func (s *Sheet) drawLeftColumn(p Painter, area layout.Rect) {
	rows := s.split(leftLayout, area)

	p.Paint(rows[0], s.block("Saving Throws"))
	saving := s.split(savingLayout, rows[0])
	p.Paint(saving[0], s.savingThrows())
	p.Paint(saving[1], s.paragraph(components.AlignLeft, advantages(s.label())...))

	p.Paint(rows[1], s.block("Proficiencies & Languages"))
	profs := s.split(profsLayout, rows[1])
	p.Paint(profs[0], s.paragraph(components.AlignLeft, proficiencies(s.label())...))
}

// savingThrows lays the six throws out two per line. Proficient throws are
// marked "(*)".
func (s *Sheet) savingThrows() components.Paragraph {
	label := s.label()
	spans := make([]components.Span, 0, 2*len(character.Stats))
	for i, stat := range character.Stats {
		mark := "( )"
		if s.char.SavingThrowProficient(stat) {
			mark = "(*)"
		}
		value := missing
		if v, ok := s.char.SavingThrow(stat); ok {
			value = character.FormatBonus(v)
		}
		switch {
		case i == len(character.Stats)-1:
		case i%2 == 0:
			value += " | "
		default:
			value += " \n"
		}
		spans = append(spans,
			components.Styled(fmt.Sprintf("%s %s: ", mark, stat.Abbrev()), label),
			components.Raw(value),
		)
	}
	return s.paragraph(components.AlignCenter, spans...)
}

func (s *Sheet) drawCenterColumn(p Painter, area layout.Rect) {
	rows := s.split(centerLayout, area)

	p.Paint(rows[0], s.block("Skills"))
	skills := s.split(skillsLayout, rows[0])
	p.Paint(skills[0], s.skillsTable())

	p.Paint(rows[1], s.block("Senses"))
	senses := s.split(sensesLayout, rows[1])
	p.Paint(senses[0], s.passives())
	p.Paint(senses[1], s.paragraph(components.AlignCenter, components.Raw(darkvision)))
}

func (s *Sheet) skillsTable() components.Table {
	rows := make([][]string, len(s.char.Skills))
	for i, sk := range s.char.Skills {
		prof := "   "
		if sk.HasProficiency {
			prof = proficientMark
		}
		rows[i] = []string{prof, sk.Stat.Abbrev(), sk.Name, character.FormatBonus(sk.Bonus)}
	}
	return s.table(skillColumns, rows)
}

// passiveSkills are the skills shown as passive scores, in order.
var passiveSkills = []string{"Perception", "Investigation", "Insight"}

func (s *Sheet) passives() components.Paragraph {
	spans := make([]components.Span, 0, len(passiveSkills))
	for _, name := range passiveSkills {
		value, abbrev := missing, "???"
		if sk, ok := s.char.SkillByName(name); ok {
			abbrev = sk.Stat.Abbrev()
		}
		if v, ok := s.char.Passive(name); ok {
			value = strconv.Itoa(v)
		}
		spans = append(spans, components.Raw(fmt.Sprintf("%-2s   Passive %s (%s) \n", value, abbrev, name)))
	}
	return s.paragraph(components.AlignLeft, spans...)
}

func (s *Sheet) drawPanel(p Painter, area layout.Rect) {
	p.Paint(area, s.block(""))

	rows := s.split(panelLayout, area)
	p.Paint(rows[0], components.Tabs{
		Titles:         tabTitles,
		Selected:       spellsTab,
		Style:          s.styles.Text,
		HighlightStyle: s.styles.Accent,
	})

	tab := s.split(spellsTabLayout, rows[1])
	p.Paint(tab[0], s.paragraph(components.AlignCenter, spellcasting(s.label())...))

	p.Paint(tab[1], s.block("Spells"))
	list := s.split(spellListLayout, tab[1])
	p.Paint(list[0], s.table(spellColumns, spellRows))
}

func (s *Sheet) table(cols []components.Column, rows [][]string) components.Table {
	return components.Table{
		Columns:     cols,
		Rows:        rows,
		Spacing:     columnSpacing,
		HeaderStyle: s.styles.Accent,
		RowStyle:    s.styles.Text,
	}
}
