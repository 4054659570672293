package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/charsheet/pkg/character"
)

// TickCmd returns a Cmd that sends a TickEvent after d.
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickEvent{Time: t}
	})
}

// ReloadCmd returns a Cmd that reads the character file at path and
// delivers the result as a ReloadEvent.
func ReloadCmd(path string) tea.Cmd {
	return func() tea.Msg {
		c, err := character.Load(path)
		return ReloadEvent{
			Char:      c,
			Err:       err,
			Timestamp: time.Now(),
		}
	}
}
