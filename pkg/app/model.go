package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/charsheet/pkg/character"
	"gitlab.com/tinyland/lab/charsheet/pkg/layout"
	"gitlab.com/tinyland/lab/charsheet/pkg/sheet"
)

// Config holds the settings of a watch session.
type Config struct {
	// Path is the character file re-read on every reload.
	Path string
	// ReloadInterval is the time between reloads. Zero disables the timer;
	// the reload key still works.
	ReloadInterval time.Duration
	// Options are passed to the sheet on every frame. A non-empty Footer
	// replaces the key hint; Cache is owned by the model.
	Options sheet.Options
	Logger  *slog.Logger
}

// Model is the bubbletea model of a watch session.
type Model struct {
	cfg    Config
	char   *character.Character
	keys   keyMap
	cache  *layout.LayoutCache
	logger *slog.Logger

	width  int
	height int

	loadedAt time.Time
	err      error
}

// New returns a model showing c.
func New(c *character.Character, cfg Config) Model {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return Model{
		cfg:    cfg,
		char:   c,
		keys:   defaultKeyMap(),
		cache:  layout.NewLayoutCache(),
		logger: logger.With("component", "watch"),
	}
}

// Init starts the reload timer when one is configured.
func (m Model) Init() tea.Cmd {
	if m.cfg.ReloadInterval > 0 {
		return TickCmd(m.cfg.ReloadInterval)
	}
	return nil
}

// Update handles resizes, keys and reloads.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		st := m.cache.Stats()
		m.logger.Debug("resize", "width", msg.Width, "height", msg.Height,
			"layouts", st.Entries, "hits", st.Hits, "misses", st.Misses)
		m.width = msg.Width
		m.height = msg.Height
		m.cache.Invalidate()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reload):
			return m, ReloadCmd(m.cfg.Path)
		}
		return m, nil

	case TickEvent:
		return m, tea.Batch(ReloadCmd(m.cfg.Path), TickCmd(m.cfg.ReloadInterval))

	case ReloadEvent:
		if msg.Err != nil {
			m.err = msg.Err
			m.logger.Warn("reload failed", "path", m.cfg.Path, "error", msg.Err)
			return m, nil
		}
		m.char = msg.Char
		m.err = nil
		m.loadedAt = msg.Timestamp
		m.logger.Debug("character reloaded", "path", m.cfg.Path)
		return m, nil
	}
	return m, nil
}

// View renders the sheet at the last reported window size.
func (m Model) View() string {
	opts := m.cfg.Options
	opts.Footer = m.footer()
	opts.Cache = m.cache
	return sheet.Render(m.char, opts, m.width, m.height)
}

// footer is the key hint followed by the reload status.
func (m Model) footer() string {
	hint := m.cfg.Options.Footer
	if hint == "" {
		hint = m.keys.hint()
	}
	switch {
	case m.err != nil:
		return fmt.Sprintf("%s · reload failed: %v", hint, m.err)
	case !m.loadedAt.IsZero():
		return fmt.Sprintf("%s · reloaded %s", hint, m.loadedAt.Format(time.TimeOnly))
	}
	return hint
}

// Character returns the record currently shown.
func (m Model) Character() *character.Character { return m.char }

// Width returns the last reported window width.
func (m Model) Width() int { return m.width }

// Height returns the last reported window height.
func (m Model) Height() int { return m.height }

// Err returns the error of the last failed reload, if the latest reload
// failed.
func (m Model) Err() error { return m.err }

// Run drives m on the alternate screen until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	return nil
}
