// Package domain holds the countdown model and the duration codec.
package domain

import "time"

// Countdown tracks how much of a fixed countdown has elapsed. Time only
// accumulates while the countdown is running.
type Countdown struct {
	ID       string
	Total    time.Duration
	Elapsed  time.Duration
	Paused   bool
	lastTick time.Time
}

// NewCountdown creates a running countdown of total length starting at now.
func NewCountdown(total time.Duration, now time.Time) *Countdown {
	if total < 0 {
		total = 0
	}
	return &Countdown{
		ID:       newSessionID(),
		Total:    total,
		lastTick: now,
	}
}

// Tick accumulates the time since the previous tick unless paused. The tick
// reference always moves to now, so a pause never adds time when lifted.
func (c *Countdown) Tick(now time.Time) {
	if !c.Paused {
		if delta := now.Sub(c.lastTick); delta > 0 {
			c.Elapsed += delta
		}
	}
	c.lastTick = now
}

// TogglePause flips between paused and running.
func (c *Countdown) TogglePause() {
	c.Paused = !c.Paused
}

// Remaining returns the time left and whether the countdown is still live.
// Elapsed equal to Total still counts as live with zero remaining.
func (c *Countdown) Remaining() (time.Duration, bool) {
	if c.Elapsed > c.Total {
		return 0, false
	}
	return c.Total - c.Elapsed, true
}
