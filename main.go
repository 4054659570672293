// charsheet renders a tabletop character sheet as a full-screen terminal
// layout: a header with the character's name and rest buttons, a stat
// strip, a three-column body and a footer.
//
// Usage:
//
//	charsheet [flags] <character-file>
//
// Flags:
//
//	--config string    Path to a TOML configuration file
//	--theme string     Builtin color theme
//	--border string    Box border style (plain|rounded|double|heavy|dashed|none)
//	--watch            Stay on screen, redraw on resize and reload the file
//	--no-color         Disable colors
//	--term-width int   Terminal width override (0 = auto-detect)
//	--term-height int  Terminal height override (0 = auto-detect)
//	--verbose          Enable debug logging
//	--version          Print version and exit
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

// flags holds the command line overrides.
type flags struct {
	configPath string
	theme      string
	border     string
	watch      bool
	noColor    bool
	termWidth  int
	termHeight int
	verbose    bool
}

func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "charsheet [flags] <character-file>",
		Short:         "Render a character sheet in the terminal",
		Args:          cobra.ExactArgs(1),
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0], f, stdin, stdout)
		},
	}
	cmd.SetOut(stdout)

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "Path to a TOML configuration file")
	fl.StringVar(&f.theme, "theme", "", "Builtin color theme")
	fl.StringVar(&f.border, "border", "", "Box border style (plain|rounded|double|heavy|dashed|none)")
	fl.BoolVar(&f.watch, "watch", false, "Stay on screen, redraw on resize and reload the character file")
	fl.BoolVar(&f.noColor, "no-color", false, "Disable colors")
	fl.IntVar(&f.termWidth, "term-width", 0, "Terminal width override (0 = auto-detect)")
	fl.IntVar(&f.termHeight, "term-height", 0, "Terminal height override (0 = auto-detect)")
	fl.BoolVar(&f.verbose, "verbose", false, "Enable debug logging")
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdin, os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "charsheet: %v\n", err)
		stop()
		os.Exit(1)
	}
}
