// Package character holds the read-only character record drawn by the
// sheet, along with loading and the values derived from it.
package character

import (
	"errors"
	"fmt"
)

// SkillCount is the number of skills every record carries.
const SkillCount = 17

var (
	// ErrInvalid is wrapped by every validation failure.
	ErrInvalid = errors.New("invalid character")
	// ErrUnsupportedFormat is returned when a record's encoding is unknown.
	ErrUnsupportedFormat = errors.New("unsupported character format")
	// ErrTrailingData is returned when a file holds more than one record.
	ErrTrailingData = errors.New("trailing data after record")
)

// Stat names one of the six ability scores. The record spells
// intelligence as "Intellect".
type Stat string

const (
	Strength     Stat = "Strength"
	Dexterity    Stat = "Dexterity"
	Constitution Stat = "Constitution"
	Intellect    Stat = "Intellect"
	Wisdom       Stat = "Wisdom"
	Charisma     Stat = "Charisma"
)

// Stats lists the abilities in sheet order.
var Stats = []Stat{Strength, Dexterity, Constitution, Intellect, Wisdom, Charisma}

// Abbrev returns the three-letter abbreviation shown on the sheet.
func (s Stat) Abbrev() string {
	switch s {
	case Strength:
		return "STR"
	case Dexterity:
		return "DEX"
	case Constitution:
		return "CON"
	case Intellect:
		return "INT"
	case Wisdom:
		return "WIS"
	case Charisma:
		return "CHA"
	default:
		return "???"
	}
}

// Valid reports whether s is one of the six known abilities.
func (s Stat) Valid() bool {
	for _, known := range Stats {
		if s == known {
			return true
		}
	}
	return false
}

// Skill is one row of the skills table.
type Skill struct {
	HasProficiency bool   `json:"has_proficiency" yaml:"has_proficiency"`
	Stat           Stat   `json:"stat" yaml:"stat"`
	Name           string `json:"name" yaml:"name"`
	Bonus          int    `json:"bonus" yaml:"bonus"`
}

// Character is the full record. Nothing mutates it after loading.
type Character struct {
	Name  string `json:"name" yaml:"name"`
	Race  string `json:"race" yaml:"race"`
	Class string `json:"class" yaml:"class"`
	Level int    `json:"level" yaml:"level"`

	CurrentHitpoints int `json:"current_hitpoints" yaml:"current_hitpoints"`
	MaxHitpoints     int `json:"max_hitpoints" yaml:"max_hitpoints"`

	Stats map[Stat]int `json:"stats" yaml:"stats"`

	ArmorClass       int `json:"armor_class" yaml:"armor_class"`
	Initiative       int `json:"initiative" yaml:"initiative"`
	ProficiencyBonus int `json:"proficiency_bonus" yaml:"proficiency_bonus"`
	WalkingSpeedFt   int `json:"walking_speed_in_ft" yaml:"walking_speed_in_ft"`

	Skills []Skill `json:"skills" yaml:"skills"`

	SavingThrowProficiencies []Stat `json:"saving_throw_proficiencies,omitempty" yaml:"saving_throw_proficiencies,omitempty"`

	// Portrait is an image path, resolved relative to the record's file.
	Portrait string `json:"portrait,omitempty" yaml:"portrait,omitempty"`
}

// Validate checks the record for the shape the sheet depends on.
func (c *Character) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalid)
	}
	if c.Level < 0 {
		return fmt.Errorf("%w: negative level %d", ErrInvalid, c.Level)
	}
	if c.MaxHitpoints < 0 {
		return fmt.Errorf("%w: negative max_hitpoints %d", ErrInvalid, c.MaxHitpoints)
	}
	if len(c.Skills) != SkillCount {
		return fmt.Errorf("%w: want %d skills, got %d", ErrInvalid, SkillCount, len(c.Skills))
	}
	for stat := range c.Stats {
		if !stat.Valid() {
			return fmt.Errorf("%w: unknown stat %q", ErrInvalid, stat)
		}
	}
	for i, sk := range c.Skills {
		if sk.Name == "" {
			return fmt.Errorf("%w: skill %d has no name", ErrInvalid, i)
		}
		if !sk.Stat.Valid() {
			return fmt.Errorf("%w: skill %q has unknown stat %q", ErrInvalid, sk.Name, sk.Stat)
		}
	}
	for _, stat := range c.SavingThrowProficiencies {
		if !stat.Valid() {
			return fmt.Errorf("%w: unknown saving throw %q", ErrInvalid, stat)
		}
	}
	return nil
}
