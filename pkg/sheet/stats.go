package sheet

import (
	"fmt"
	"strconv"

	"gitlab.com/tinyland/lab/charsheet/pkg/character"
	"gitlab.com/tinyland/lab/charsheet/pkg/components"
	"gitlab.com/tinyland/lab/charsheet/pkg/layout"
)

// missing stands in for a value the record does not have.
const missing = "--"

func (s *Sheet) drawStats(p Painter, area layout.Rect) {
	p.Paint(area, s.block("Stats"))

	cols := s.split(statsLayout, area)
	p.Paint(cols[0], s.abilityStrip())
	p.Paint(cols[1], s.hitPoints())
}

// abilityStrip lists every score with its modifier, then the combat
// numbers on a second line.
func (s *Sheet) abilityStrip() components.Paragraph {
	c := s.char
	label := s.label()

	spans := make([]components.Span, 0, 2*len(character.Stats)+9)
	for i, stat := range character.Stats {
		sep := " | "
		if i == len(character.Stats)-1 {
			sep = "\n"
		}
		spans = append(spans,
			components.Styled(stat.Abbrev()+": ", label),
			components.Raw(s.scoreText(stat)+sep),
		)
	}
	spans = append(spans,
		components.Styled("Armor class: ", label),
		components.Raw(strconv.Itoa(c.ArmorClass)+" | "),
		components.Styled("Initiative: ", label),
		components.Raw(character.FormatBonus(c.Initiative)+" | "),
		components.Styled("Proficiency bonus: ", label),
		components.Raw(character.FormatBonus(c.ProficiencyBonus)+" | "),
		components.Styled("Walking speed: ", label),
		components.Raw(fmt.Sprintf("%d ft", c.WalkingSpeedFt)),
	)
	return s.paragraph(components.AlignLeft, spans...)
}

// scoreText renders "19 (+4)", or "--" when the score is missing.
func (s *Sheet) scoreText(stat character.Stat) string {
	score, ok := s.char.AbilityScore(stat)
	if !ok {
		return missing
	}
	return fmt.Sprintf("%d (%s)", score, character.FormatBonus(character.Modifier(score)))
}

func (s *Sheet) hitPoints() components.Paragraph {
	c := s.char
	label := s.label()
	return s.paragraph(components.AlignRight,
		components.Styled("Hit Points: ", label),
		components.Styled(strconv.Itoa(c.CurrentHitpoints), s.opts.Theme.HitPoints(c.CurrentHitpoints, c.MaxHitpoints)),
		components.Raw(" "),
		components.Styled("/", label),
		components.Raw(fmt.Sprintf(" %d\n", c.MaxHitpoints)),
		components.Styled("H", s.styles.Key),
		components.Raw("eal | "),
		components.Styled("D", s.styles.Key),
		components.Raw("amage"),
	)
}
