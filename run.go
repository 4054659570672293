package main

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/charsheet/pkg/app"
	"gitlab.com/tinyland/lab/charsheet/pkg/character"
	"gitlab.com/tinyland/lab/charsheet/pkg/components"
	"gitlab.com/tinyland/lab/charsheet/pkg/config"
	"gitlab.com/tinyland/lab/charsheet/pkg/logging"
	"gitlab.com/tinyland/lab/charsheet/pkg/portrait"
	"gitlab.com/tinyland/lab/charsheet/pkg/sheet"
	"gitlab.com/tinyland/lab/charsheet/pkg/terminal"
)

func run(ctx context.Context, path string, f flags, stdin io.Reader, stdout io.Writer) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}

	logger, err := openLogger(cfg.Log, f.verbose)
	if err != nil {
		return err
	}
	defer logger.Close()

	th, err := cfg.LoadTheme()
	if err != nil {
		return err
	}
	border, err := components.ParseBorderStyle(cfg.Display.Border)
	if err != nil {
		return err
	}
	setColorProfile(cfg.Display.Color, stdout)

	c, err := character.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("character loaded", "path", path, "name", c.Name)

	opts := sheet.Options{
		Theme:  th,
		Border: border,
		Footer: cfg.Display.Footer,
	}
	if cfg.Display.Portrait && c.Portrait != "" {
		img, err := portrait.Load(c.Portrait)
		if err != nil {
			logger.Warn("portrait unavailable", "error", err)
		} else {
			opts.Portrait = portrait.New(img)
		}
	}

	if f.watch {
		logger.Info("watching", "path", path, "reload_interval", cfg.Watch.ReloadInterval.String())
		return app.Run(ctx, app.New(c, app.Config{
			Path:           path,
			ReloadInterval: cfg.Watch.ReloadInterval.Duration,
			Options:        opts,
			Logger:         logger.Logger,
		}))
	}
	return renderOnce(c, opts, f, stdin, stdout, logger)
}

// renderOnce draws a single frame between a clear and a flush.
func renderOnce(c *character.Character, opts sheet.Options, f flags, stdin io.Reader, stdout io.Writer, logger *logging.Logger) (err error) {
	s, err := terminal.Open(stdin, stdout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); err == nil {
			err = cerr
		}
	}()

	size := terminal.Size{Cols: f.termWidth, Rows: f.termHeight}
	if size.Cols <= 0 || size.Rows <= 0 {
		detected, err := s.Size()
		if err != nil {
			return err
		}
		if size.Cols <= 0 {
			size.Cols = detected.Cols
		}
		if size.Rows <= 0 {
			size.Rows = detected.Rows
		}
	}
	logger.Info("render", "cols", size.Cols, "rows", size.Rows, "raw", s.Raw())

	if err := s.Clear(); err != nil {
		return err
	}
	return s.Draw(sheet.Render(c, opts, size.Cols, size.Rows))
}

func loadConfig(f flags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.configPath != "" {
		cfg, err = config.LoadFromFile(f.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if f.theme != "" {
		cfg.Display.Theme = f.theme
		cfg.Display.ThemeFile = ""
	}
	if f.border != "" {
		cfg.Display.Border = f.border
	}
	if f.noColor {
		cfg.Display.Color = config.ColorNever
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openLogger(lc config.LogConfig, verbose bool) (*logging.Logger, error) {
	level := lc.Level
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Options{
		File:       lc.File,
		Level:      level,
		MaxSizeMB:  lc.MaxSizeMB,
		MaxBackups: lc.MaxBackups,
		MaxAgeDays: lc.MaxAgeDays,
		Compress:   lc.Compress,
	})
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return logger, nil
}

// setColorProfile picks the lipgloss color profile for the [display] color
// mode. Auto follows the output and the environment.
func setColorProfile(mode string, out io.Writer) {
	switch mode {
	case config.ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	case config.ColorAlways:
		lipgloss.SetColorProfile(termenv.TrueColor)
	default:
		lipgloss.SetColorProfile(termenv.NewOutput(out).EnvColorProfile())
	}
}
