package sheet

import "gitlab.com/tinyland/lab/charsheet/pkg/components"

// Content the character record has no fields for.

const (
	columnSpacing  = 2
	proficientMark = " ⭐ "
	darkvision     = "Darkvision 60 ft. "
	spellsTab      = 1
)

var tabTitles = []string{"Actions", "Spells", "Equipment", "Features & Traits", "Description"}

var skillColumns = []components.Column{
	{Title: "Prof", Width: 4},
	{Title: "Mod", Width: 3},
	{Title: "Skill", Width: 15},
	{Title: "Bonus", Width: 4},
}

var spellColumns = []components.Column{
	{Title: "Lvl", Width: 2},
	{Title: "Name", Width: 20},
	{Title: "Time", Width: 3},
	{Title: "Range", Width: 6},
	{Title: "HIT/DC", Width: 6},
	{Title: "Effect", Width: 8},
	{Title: "Notes", Width: 15},
}

var spellRows = [][]string{
	{"C", "Fire Bolt", "1A", "120ft", "+6", "1d10 🔥", "V/S"},
	{"C", "Mage Hand", "1A", "30ft", "-", "Utility", "D: 1m, V/S"},
	{"C", "Prestidigitation", "1A", "10ft", "-", "Utility", "D: 1m, V/S"},
	{"1", "Burning Hands", "1A", "Self", "DEX 14", "3d6 🔥", "15ft cone, V/S"},
	{"1", "Find Familiar", "1h", "10ft", "-", "Summoning", "V/S/M"},
	{"1", "Identify", "1m", "Touch", "-", "Detection", "V/S/M"},
	{"1", "Illusory Script", "1m", "Touch", "-", "Communication", "D: 10d, S/M"},
	{"1", "Mage Armor", "1A", "Touch", "-", "Buff*", "D: 8h, V/S/M"},
	{"1", "Magic Missile", "1A", "120ft", "-", "1d4+1 ☄", "V/S"},
	{"2", "Burning Hands", "1A", "Self", "DEX 14", "4d6 🔥", "15ft cone, V/S"},
	{"2", "Magic Missile", "1A", "120ft", "-", "1d4+1 ☄", "Count: +1, V/S"},
}

func advantages(label components.Style) []components.Span {
	return []components.Span{
		components.Raw("Advantage on "),
		components.Styled("INT WIS CHA ", label),
		components.Raw("against Magic"),
	}
}

func proficiencies(label components.Style) []components.Span {
	return []components.Span{
		components.Styled("ARMOR \n", label),
		components.Raw("None \n\n"),
		components.Styled("WEAPONS \n", label),
		components.Raw("Crossbow, Light, Dagger, Dart, Quarterstaff, Sling \n\n"),
		components.Styled("TOOLS \n", label),
		components.Raw("Tinker's Tools \n\n"),
		components.Styled("LANGUAGES \n", label),
		components.Raw("Common, Dwarvish, Elvish, Gnomish"),
	}
}

func spellcasting(label components.Style) []components.Span {
	return []components.Span{
		components.Styled("Modifier: ", label),
		components.Raw("+4   "),
		components.Styled("Spell Attack: ", label),
		components.Raw("+6   "),
		components.Styled("Save DC: ", label),
		components.Raw("14 "),
	}
}
