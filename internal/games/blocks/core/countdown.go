package core

import (
	"fmt"
	"time"
)

// Countdown measures the remaining time of a timed game. It is a pure
// function of the timestamps passed in: pausing records the exact remainder
// and resuming continues from it.
type Countdown struct {
	total     time.Duration
	remaining time.Duration
	resumedAt time.Time
	started   bool
	running   bool
}

// NewCountdown creates an idle countdown of the given length.
func NewCountdown(total time.Duration) *Countdown {
	return &Countdown{total: total, remaining: total}
}

// Start (re)starts the countdown from the full duration.
func (c *Countdown) Start(now time.Time) {
	c.remaining = c.total
	c.resumedAt = now
	c.started = true
	c.running = true
}

// Pause freezes the remaining time.
func (c *Countdown) Pause(now time.Time) {
	if !c.running {
		return
	}
	c.remaining = c.Remaining(now)
	c.running = false
}

// Resume continues from the frozen remainder.
func (c *Countdown) Resume(now time.Time) {
	if !c.started || c.running || c.remaining <= 0 {
		return
	}
	c.resumedAt = now
	c.running = true
}

// Stop abandons the countdown.
func (c *Countdown) Stop() {
	c.started = false
	c.running = false
	c.remaining = c.total
}

// Started reports whether the countdown was started and not stopped.
func (c *Countdown) Started() bool {
	return c.started
}

// Running reports whether time is currently being consumed.
func (c *Countdown) Running() bool {
	return c.running
}

// Total returns the full duration.
func (c *Countdown) Total() time.Duration {
	return c.total
}

// Remaining returns the time left at now, never negative.
func (c *Countdown) Remaining(now time.Time) time.Duration {
	if !c.running {
		return c.remaining
	}
	left := c.remaining - now.Sub(c.resumedAt)
	if left < 0 {
		return 0
	}
	return left
}

// Expired reports whether a started countdown has reached zero.
func (c *Countdown) Expired(now time.Time) bool {
	return c.started && c.Remaining(now) == 0
}

// FormatRemaining renders d as MM:SS:CC (minutes, seconds, centiseconds).
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	return fmt.Sprintf("%02d:%02d:%02d", ms/60000, (ms%60000)/1000, (ms%1000)/10)
}
