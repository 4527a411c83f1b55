package terminal

import (
	"bufio"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"
	"github.com/xvierd/countdown-cli/internal/ports"
)

// Screen draws whole frames of centered text. Each frame is buffered and
// written with a single flush.
type Screen struct {
	buf    *bufio.Writer
	out    *termenv.Output
	size   func() (int, int, error)
	paused lipgloss.Style
}

// NewScreen creates a screen drawing to f. pausedColor is any color lipgloss
// accepts: an ANSI index such as "2" or a hex value such as "#4ECDC4".
func NewScreen(f *os.File, pausedColor string) *Screen {
	renderer := lipgloss.NewRenderer(f)
	return newScreen(f, renderer, pausedColor, func() (int, int, error) {
		return term.GetSize(f.Fd())
	})
}

func newScreen(w io.Writer, renderer *lipgloss.Renderer, pausedColor string, size func() (int, int, error)) *Screen {
	buf := bufio.NewWriter(w)
	return &Screen{
		buf:    buf,
		out:    termenv.NewOutput(buf),
		size:   size,
		paused: renderer.NewStyle().Foreground(lipgloss.Color(pausedColor)),
	}
}

// Size returns the current terminal size. It is queried on every call since
// the terminal may be resized at any time.
func (s *Screen) Size() (int, int, error) {
	w, h, err := s.size()
	if err != nil {
		return 0, 0, &TerminalError{Op: "query size", Err: err}
	}
	return w, h, nil
}

// Draw clears the screen and draws lines centered in the terminal.
func (s *Screen) Draw(lines []string, paused bool) error {
	width, height, err := s.Size()
	if err != nil {
		return err
	}

	s.out.ClearScreen()
	for _, p := range layout(width, height, lines) {
		text := p.text
		if paused {
			text = s.paused.Render(text)
		}
		s.out.MoveCursor(p.row, p.col)
		if _, err := s.buf.WriteString(text); err != nil {
			return &TerminalError{Op: "draw", Err: err}
		}
	}
	s.out.HideCursor()

	if err := s.buf.Flush(); err != nil {
		return &TerminalError{Op: "flush", Err: err}
	}
	return nil
}

// placement is a line of text at a 1-based cursor position.
type placement struct {
	row, col int
	text     string
}

// layout centers lines as a block vertically and each line horizontally.
// Positions are clamped to the first row and column, lines wider than the
// terminal are truncated and lines below the last row are dropped.
func layout(width, height int, lines []string) []placement {
	top := max(height/2-len(lines)/2, 1)

	placements := make([]placement, 0, len(lines))
	for i, line := range lines {
		row := top + i
		if height > 0 && row > height {
			break
		}
		if width > 0 && lipgloss.Width(line) > width {
			line = truncate.String(line, uint(width))
		}
		col := max(width/2-lipgloss.Width(line)/2, 1)
		placements = append(placements, placement{row: row, col: col, text: line})
	}
	return placements
}

// Ensure Screen implements ports.Screen.
var _ ports.Screen = (*Screen)(nil)
