// Package terminal is the boundary between the sheet and the real
// terminal: size queries and the raw-mode drawing session.
package terminal

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// Default dimensions used when nothing else reports a size.
const (
	DefaultCols = 80
	DefaultRows = 24
)

// ErrNoSize is returned by QuerySize when the descriptor reports no
// usable dimensions.
var ErrNoSize = errors.New("terminal reported zero size")

// Size represents terminal dimensions in character cells.
type Size struct {
	Cols int
	Rows int
}

// GetSize returns the current terminal dimensions. It tries, in order:
//  1. TIOCGWINSZ ioctl on stdout
//  2. TIOCGWINSZ ioctl on stderr (in case stdout is redirected)
//  3. COLUMNS/LINES environment variables
//  4. 80x24
func GetSize() Size {
	for _, fd := range []uintptr{os.Stdout.Fd(), os.Stderr.Fd()} {
		if s, err := QuerySize(fd); err == nil {
			return s
		}
	}
	return getSizeFromEnv()
}

// GetSizeFromFd returns the size of fd, falling back to COLUMNS/LINES
// and then 80x24 when the ioctl fails.
func GetSizeFromFd(fd uintptr) Size {
	if s, err := QuerySize(fd); err == nil {
		return s
	}
	return getSizeFromEnv()
}

// QuerySize asks fd for its size with TIOCGWINSZ. Unlike GetSizeFromFd it
// never falls back.
func QuerySize(fd uintptr) (Size, error) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return Size{}, fmt.Errorf("query terminal size: %w", err)
	}
	if ws.Col == 0 || ws.Row == 0 {
		return Size{}, ErrNoSize
	}
	return Size{Cols: int(ws.Col), Rows: int(ws.Row)}, nil
}

// getSizeFromEnv reads COLUMNS/LINES, falling back to 80x24.
func getSizeFromEnv() Size {
	return Size{
		Cols: envInt("COLUMNS", DefaultCols),
		Rows: envInt("LINES", DefaultRows),
	}
}

// envInt reads a positive integer from the named environment variable.
func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
