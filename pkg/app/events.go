// Package app runs the character sheet as a full-screen bubbletea program
// that redraws on resize and re-reads the character file on a timer.
package app

import (
	"time"

	"gitlab.com/tinyland/lab/charsheet/pkg/character"
)

// TickEvent is sent by the reload ticker.
type TickEvent struct {
	Time time.Time
}

// ReloadEvent carries a freshly read character record back into the
// update loop. Char is nil when Err is set.
type ReloadEvent struct {
	Char      *character.Character
	Err       error
	Timestamp time.Time
}
