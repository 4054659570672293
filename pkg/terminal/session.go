package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
)

const (
	clearScreen = "\x1b[2J\x1b[H"
	cursorHome  = "\x1b[H"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// Session owns the terminal for one render. When the input is a terminal
// it is switched to raw mode until Close; when the output is not a
// terminal the session degrades to writing plain lines.
//
// Close must run on every exit path:
//
//	s, err := terminal.Open(os.Stdin, os.Stdout)
//	if err != nil { ... }
//	defer s.Close()
type Session struct {
	out   *bufio.Writer
	outFd uintptr
	outTT bool

	inFd  uintptr
	state *term.State

	closeOnce sync.Once
	closeErr  error
}

// IsTerminal reports whether v is backed by a terminal file descriptor.
func IsTerminal(v any) bool {
	f, ok := v.(fder)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Open starts a session reading from in and drawing to out.
func Open(in io.Reader, out io.Writer) (*Session, error) {
	s := &Session{out: bufio.NewWriter(out)}

	if IsTerminal(out) {
		s.outTT = true
		s.outFd = out.(fder).Fd()
	}
	if s.outTT && IsTerminal(in) {
		s.inFd = in.(fder).Fd()
		state, err := term.MakeRaw(s.inFd)
		if err != nil {
			return nil, fmt.Errorf("enter raw mode: %w", err)
		}
		s.state = state
		s.out.WriteString(hideCursor)
	}
	return s, nil
}

// Raw reports whether the session switched the terminal to raw mode.
func (s *Session) Raw() bool {
	return s.state != nil
}

// Interactive reports whether output goes to a terminal.
func (s *Session) Interactive() bool {
	return s.outTT
}

// Size returns the drawing area. On a terminal the query is strict;
// otherwise it falls back to COLUMNS/LINES and 80x24.
func (s *Session) Size() (Size, error) {
	if !s.outTT {
		return getSizeFromEnv(), nil
	}
	cols, rows, err := term.GetSize(s.outFd)
	if err == nil && cols > 0 && rows > 0 {
		return Size{Cols: cols, Rows: rows}, nil
	}
	return QuerySize(s.outFd)
}

// Clear erases the screen and homes the cursor. It does nothing when the
// output is not a terminal.
func (s *Session) Clear() error {
	if !s.outTT {
		return nil
	}
	if _, err := s.out.WriteString(clearScreen); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}
	return nil
}

// Draw writes one frame and flushes it. In raw mode lines end in CRLF
// since the terminal no longer translates newlines.
func (s *Session) Draw(frame string) error {
	if s.outTT {
		s.out.WriteString(cursorHome)
	}
	if s.Raw() {
		frame = strings.ReplaceAll(frame, "\n", "\r\n")
	}
	if _, err := s.out.WriteString(frame); err != nil {
		return fmt.Errorf("draw frame: %w", err)
	}
	if !s.outTT {
		s.out.WriteString("\n")
	}
	return s.Flush()
}

// Flush pushes buffered output to the terminal.
func (s *Session) Flush() error {
	if err := s.out.Flush(); err != nil {
		return fmt.Errorf("flush terminal: %w", err)
	}
	return nil
}

// Close restores the terminal. It is safe to call more than once.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		if s.state == nil {
			s.closeErr = s.Flush()
			return
		}
		s.out.WriteString(showCursor + "\r\n")
		flushErr := s.Flush()
		if err := term.Restore(s.inFd, s.state); err != nil {
			s.closeErr = fmt.Errorf("restore terminal: %w", err)
			return
		}
		s.closeErr = flushErr
	})
	return s.closeErr
}
