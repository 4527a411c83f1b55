// Package tui drives the countdown display.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xvierd/countdown-cli/internal/domain"
	"github.com/xvierd/countdown-cli/internal/ports"
)

// DefaultFrameInterval is the pause between two frames.
const DefaultFrameInterval = 16 * time.Millisecond

// Runner redraws a countdown every frame until it runs out or the user quits.
// Everything happens on the calling goroutine; the frame sleep is the only
// point where Run blocks.
type Runner struct {
	countdown *domain.Countdown
	screen    ports.Screen
	keys      ports.KeySource
	banner    ports.Banner
	frame     time.Duration
	logger    *slog.Logger

	now   func() time.Time
	sleep func(time.Duration)

	bannerFailed bool
}

// NewRunner creates a runner for countdown drawing to screen and reading keys.
func NewRunner(countdown *domain.Countdown, screen ports.Screen, keys ports.KeySource) *Runner {
	return &Runner{
		countdown: countdown,
		screen:    screen,
		keys:      keys,
		frame:     DefaultFrameInterval,
		logger:    slog.New(slog.DiscardHandler),
		now:       time.Now,
		sleep:     time.Sleep,
	}
}

// SetBanner sets the large-text renderer. A nil banner draws plain text.
func (r *Runner) SetBanner(banner ports.Banner) {
	r.banner = banner
}

// SetFrameInterval sets the pause between frames.
func (r *Runner) SetFrameInterval(d time.Duration) {
	if d > 0 {
		r.frame = d
	}
}

// SetLogger sets the logger for countdown events.
func (r *Runner) SetLogger(logger *slog.Logger) {
	if logger != nil {
		r.logger = logger.With("countdown_id", r.countdown.ID)
	}
}

// Run blocks until the countdown finishes or is cancelled. finished is true
// only when the countdown ran out; a quit key or a cancelled ctx report false.
func (r *Runner) Run(ctx context.Context) (finished bool, err error) {
	r.logger.Debug("countdown started", "total", r.countdown.Total, "frame", r.frame)

	for {
		r.countdown.Tick(r.now())

		remaining, live := r.countdown.Remaining()
		if !live {
			r.logger.Debug("countdown finished", "elapsed", r.countdown.Elapsed)
			return true, nil
		}

		if err := r.screen.Draw(r.lines(remaining), r.countdown.Paused); err != nil {
			return false, fmt.Errorf("failed to draw frame: %w", err)
		}

		for _, key := range r.keys.Poll() {
			switch key {
			case ports.KeyQuit:
				r.logger.Debug("countdown cancelled", "remaining", remaining)
				return false, nil
			case ports.KeyTogglePause:
				r.countdown.TogglePause()
				r.logger.Debug("pause toggled", "paused", r.countdown.Paused, "remaining", remaining)
			}
		}

		if ctx.Err() != nil {
			r.logger.Debug("countdown interrupted", "reason", context.Cause(ctx))
			return false, nil
		}

		r.sleep(r.frame)
	}
}

// lines formats remaining time and expands it through the banner. Banner
// failures fall back to the plain text.
func (r *Runner) lines(remaining time.Duration) []string {
	text := domain.FormatDuration(remaining)
	if r.banner == nil {
		return []string{text}
	}

	lines, err := r.banner.Render(text)
	if err != nil || len(lines) == 0 {
		if !r.bannerFailed {
			r.logger.Debug("banner failed, drawing plain text", "error", err)
			r.bannerFailed = true
		}
		return []string{text}
	}
	return lines
}
