// Package notification signals the end of a countdown.
package notification

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gen2brain/beeep"
)

// Bell is the BEL control character. Terminals typically play a sound or
// flash the window, and some window managers mark the window as urgent.
const Bell = "\a"

// Notifier emits the completion alert.
type Notifier struct {
	out    io.Writer
	bell   bool
	notify bool
	logger *slog.Logger

	desktop func(title, message string) error
}

// New creates a notifier writing the bell to out. bell controls the terminal
// bell and notify controls the desktop notification.
func New(out io.Writer, bell, notify bool, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Notifier{
		out:    out,
		bell:   bell,
		notify: notify,
		logger: logger,
		desktop: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}
}

// Complete signals that a countdown of the given length ran out.
// Desktop notification failures are logged, not returned.
func (n *Notifier) Complete(length string) error {
	if n.bell {
		if _, err := io.WriteString(n.out, Bell); err != nil {
			return fmt.Errorf("failed to write bell: %w", err)
		}
	}

	if n.notify {
		message := fmt.Sprintf("Your %s countdown is over.", length)
		if err := n.desktop("⏰ Time's up!", message); err != nil {
			n.logger.Warn("desktop notification failed", "error", err)
		}
	}

	return nil
}

// IsEnabled returns true if any alert will be emitted.
func (n *Notifier) IsEnabled() bool {
	return n.bell || n.notify
}
