package banner

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/xvierd/countdown-cli/internal/ports"
)

// Figlet renders text by running an external figlet binary. The last result
// is cached since the countdown text only changes once per second.
type Figlet struct {
	path string

	lastText  string
	lastLines []string
}

// NewFiglet locates figlet on PATH.
func NewFiglet() (*Figlet, error) {
	path, err := exec.LookPath("figlet")
	if err != nil {
		return nil, fmt.Errorf("figlet not available: %w", err)
	}
	return &Figlet{path: path}, nil
}

// Render runs figlet with text and returns its output lines.
func (f *Figlet) Render(text string) ([]string, error) {
	if f.lastLines != nil && text == f.lastText {
		return f.lastLines, nil
	}

	out, err := exec.Command(f.path, text).Output()
	if err != nil {
		return nil, fmt.Errorf("figlet failed: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("figlet produced no output for %q", text)
	}

	f.lastText = text
	f.lastLines = lines
	return lines, nil
}

// Ensure Figlet implements ports.Banner.
var _ ports.Banner = (*Figlet)(nil)
