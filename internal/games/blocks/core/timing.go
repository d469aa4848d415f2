package core

import (
	"math"
	"time"
)

// FallInterval maps a level to the gravity drop interval. Level 1 and below
// use the fixed base interval; above that the interval follows
// (base - (level-1)*decrement)^(level-1) seconds, never below the floor.
func FallInterval(level int, cfg TimingConfig) time.Duration {
	if level <= 1 {
		return cfg.FallInterval
	}
	steps := float64(level - 1)
	t := math.Pow(math.Max(0, cfg.BaseTime-steps*cfg.TimeDecrement), math.Max(0, steps))
	ms := math.Max(float64(cfg.MinFallInterval)/float64(time.Millisecond), t*1000)
	return time.Duration(ms * float64(time.Millisecond))
}

// DropScheduler turns elapsed time into gravity ticks. Changing the interval
// keeps the time already accumulated toward the next drop, so a level change
// alters the period without restarting the phase.
type DropScheduler struct {
	interval time.Duration
	elapsed  time.Duration
	running  bool
}

// NewDropScheduler creates a stopped scheduler with the given period.
func NewDropScheduler(interval time.Duration) *DropScheduler {
	return &DropScheduler{interval: interval}
}

// Start begins accumulating time.
func (d *DropScheduler) Start() {
	d.running = true
}

// Stop freezes the scheduler. Accumulated time is kept for a later Start.
func (d *DropScheduler) Stop() {
	d.running = false
}

// Running reports whether the scheduler is accumulating time.
func (d *DropScheduler) Running() bool {
	return d.running
}

// Reset discards accumulated time.
func (d *DropScheduler) Reset() {
	d.elapsed = 0
}

// Interval returns the current period.
func (d *DropScheduler) Interval() time.Duration {
	return d.interval
}

// SetInterval changes the period without touching the running state or the
// accumulated time.
func (d *DropScheduler) SetInterval(interval time.Duration) {
	if interval > 0 {
		d.interval = interval
	}
}

// Advance adds dt and returns how many drops became due.
func (d *DropScheduler) Advance(dt time.Duration) int {
	if !d.running || d.interval <= 0 || dt <= 0 {
		return 0
	}
	d.elapsed += dt
	n := d.elapsed / d.interval
	d.elapsed -= n * d.interval
	return int(n)
}
