// Package terminal owns the raw-mode terminal used by the countdown.
package terminal

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/muesli/termenv"
)

// ErrNotTerminal is returned when stdin or stdout is not a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// TerminalError describes a failed interaction with the terminal.
type TerminalError struct {
	Op  string
	Err error
}

func (e *TerminalError) Error() string {
	return fmt.Sprintf("terminal: %s: %v", e.Op, e.Err)
}

func (e *TerminalError) Unwrap() error {
	return e.Err
}

// Session holds the terminal in raw mode on the alternate screen with the
// cursor hidden. Close puts everything back and must run on every exit
// path, so callers defer it right after Open succeeds.
type Session struct {
	in       *os.File
	state    *term.State
	output   *termenv.Output
	screen   *Screen
	keyboard *Keyboard
	closed   bool
}

// Open takes over the terminal connected to in and out.
func Open(in, out *os.File, pausedColor string) (*Session, error) {
	if !term.IsTerminal(in.Fd()) {
		return nil, &TerminalError{Op: "open stdin", Err: ErrNotTerminal}
	}
	if !term.IsTerminal(out.Fd()) {
		return nil, &TerminalError{Op: "open stdout", Err: ErrNotTerminal}
	}

	state, err := term.MakeRaw(in.Fd())
	if err != nil {
		return nil, &TerminalError{Op: "enter raw mode", Err: err}
	}

	keyboard, err := NewKeyboard(in)
	if err != nil {
		_ = term.Restore(in.Fd(), state)
		return nil, &TerminalError{Op: "read input", Err: err}
	}

	output := termenv.NewOutput(out)
	output.AltScreen()
	output.HideCursor()

	return &Session{
		in:       in,
		state:    state,
		output:   output,
		screen:   NewScreen(out, pausedColor),
		keyboard: keyboard,
	}, nil
}

// Screen returns the drawing surface of the session.
func (s *Session) Screen() *Screen {
	return s.screen
}

// Keyboard returns the key source of the session.
func (s *Session) Keyboard() *Keyboard {
	return s.keyboard
}

// Close leaves the alternate screen, restores the original terminal mode,
// shows the cursor and resets colors. It is safe to call more than once.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if err := s.keyboard.Close(); err != nil {
		errs = append(errs, &TerminalError{Op: "stop input", Err: err})
	}

	s.output.ExitAltScreen()
	if err := term.Restore(s.in.Fd(), s.state); err != nil {
		errs = append(errs, &TerminalError{Op: "restore mode", Err: err})
	}
	s.output.ShowCursor()
	s.output.Reset()

	return errors.Join(errs...)
}
