package core

import "time"

// ModeHandler switches game modes and owns the timed-mode countdown.
type ModeHandler struct {
	mode      Mode
	countdown *Countdown
	onChange  func(Mode)
}

// NewModeHandler creates a handler in normal mode. onChange, if not nil, is
// called after every mode switch.
func NewModeHandler(timed time.Duration, onChange func(Mode)) *ModeHandler {
	return &ModeHandler{
		mode:      ModeNormal,
		countdown: NewCountdown(timed),
		onChange:  onChange,
	}
}

// Mode returns the active mode.
func (h *ModeHandler) Mode() Mode {
	return h.mode
}

// Start activates mode m. Timed mode starts a fresh countdown; the other
// modes stop any running one.
func (h *ModeHandler) Start(m Mode, now time.Time) {
	h.mode = m
	if h.onChange != nil {
		h.onChange(m)
	}
	h.RestartForNewGame(now)
}

// RestartForNewGame rearms the countdown for the active mode.
func (h *ModeHandler) RestartForNewGame(now time.Time) {
	h.countdown.Stop()
	if h.mode == ModeTimed {
		h.countdown.Start(now)
	}
}

// Pause freezes the countdown, if any.
func (h *ModeHandler) Pause(now time.Time) {
	h.countdown.Pause(now)
}

// Resume continues a paused countdown in timed mode.
func (h *ModeHandler) Resume(now time.Time) {
	if h.mode == ModeTimed {
		h.countdown.Resume(now)
	}
}

// Stop abandons the countdown.
func (h *ModeHandler) Stop() {
	h.countdown.Stop()
}

// Timed reports whether a countdown applies to the active mode.
func (h *ModeHandler) Timed() bool {
	return h.mode == ModeTimed
}

// Remaining returns the countdown remainder at now.
func (h *ModeHandler) Remaining(now time.Time) time.Duration {
	return h.countdown.Remaining(now)
}

// TimeUp reports whether the timed-mode countdown has expired.
func (h *ModeHandler) TimeUp(now time.Time) bool {
	return h.mode == ModeTimed && h.countdown.Expired(now)
}
