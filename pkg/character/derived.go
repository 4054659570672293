package character

import "strconv"

// Modifier converts an ability score to its modifier, rounding down.
func Modifier(score int) int {
	d := score - 10
	if d < 0 {
		return -((-d + 1) / 2)
	}
	return d / 2
}

// FormatBonus renders n with an explicit sign.
func FormatBonus(n int) string {
	if n < 0 {
		return strconv.Itoa(n)
	}
	return "+" + strconv.Itoa(n)
}

// AbilityScore returns the score for stat and whether the record has one.
func (c *Character) AbilityScore(stat Stat) (int, bool) {
	score, ok := c.Stats[stat]
	return score, ok
}

// AbilityModifier returns the modifier for stat and whether the record
// has a score for it.
func (c *Character) AbilityModifier(stat Stat) (int, bool) {
	score, ok := c.AbilityScore(stat)
	if !ok {
		return 0, false
	}
	return Modifier(score), true
}

// SavingThrowProficient reports whether the record lists stat as a
// proficient saving throw.
func (c *Character) SavingThrowProficient(stat Stat) bool {
	for _, s := range c.SavingThrowProficiencies {
		if s == stat {
			return true
		}
	}
	return false
}

// SavingThrow returns the saving throw bonus for stat: its modifier plus
// the proficiency bonus when proficient. The second result is false when
// the score is missing.
func (c *Character) SavingThrow(stat Stat) (int, bool) {
	mod, ok := c.AbilityModifier(stat)
	if !ok {
		return 0, false
	}
	if c.SavingThrowProficient(stat) {
		mod += c.ProficiencyBonus
	}
	return mod, true
}

// SkillByName finds a skill by its exact name.
func (c *Character) SkillByName(name string) (Skill, bool) {
	for _, sk := range c.Skills {
		if sk.Name == name {
			return sk, true
		}
	}
	return Skill{}, false
}

// Passive returns 10 plus the named skill's bonus.
func (c *Character) Passive(skill string) (int, bool) {
	sk, ok := c.SkillByName(skill)
	if !ok {
		return 0, false
	}
	return 10 + sk.Bonus, true
}
