// Package ports defines the interfaces between the countdown loop and its adapters.
package ports

// KeyEvent represents a decoded key press relevant to the countdown.
type KeyEvent int

const (
	// KeyOther is any key the countdown does not react to.
	KeyOther KeyEvent = iota

	// KeyQuit cancels the countdown (Ctrl-C or Esc).
	KeyQuit

	// KeyTogglePause pauses or resumes the countdown (space).
	KeyTogglePause
)

// String returns a short name for the key event.
func (k KeyEvent) String() string {
	switch k {
	case KeyQuit:
		return "quit"
	case KeyTogglePause:
		return "toggle_pause"
	default:
		return "other"
	}
}

// Screen is the drawing surface of the countdown.
// This is a driven port (called by the render loop).
type Screen interface {
	// Size returns the current terminal width and height in cells.
	Size() (width, height int, err error)

	// Draw clears the screen, draws lines centered and flushes the frame.
	Draw(lines []string, paused bool) error
}

// KeySource yields buffered key presses without blocking.
// This is a driven port (called by the render loop).
type KeySource interface {
	// Poll returns every key event buffered since the last call.
	Poll() []KeyEvent
}

// Banner expands a short string into large multi-line text.
type Banner interface {
	// Render returns the banner lines for text.
	Render(text string) ([]string, error)
}
