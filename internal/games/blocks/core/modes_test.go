package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestModeHandlerTimed(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var seen []Mode
	h := NewModeHandler(2*time.Minute, func(m Mode) { seen = append(seen, m) })
	assert.Equal(t, ModeNormal, h.Mode())

	h.Start(ModeTimed, t0)
	assert.True(t, h.Timed())
	assert.Equal(t, 119*time.Second, h.Remaining(t0.Add(time.Second)))
	assert.False(t, h.TimeUp(t0.Add(time.Minute)))
	assert.True(t, h.TimeUp(t0.Add(2*time.Minute)))

	h.RestartForNewGame(t0.Add(5 * time.Minute))
	assert.False(t, h.TimeUp(t0.Add(6*time.Minute)))

	h.Start(ModeBottomsUp, t0)
	assert.False(t, h.Timed())
	assert.False(t, h.TimeUp(t0.Add(time.Hour)))
	assert.Equal(t, []Mode{ModeTimed, ModeBottomsUp}, seen)
}

func TestModeHandlerPauseResume(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h := NewModeHandler(time.Minute, nil)
	h.Start(ModeTimed, t0)

	h.Pause(t0.Add(10 * time.Second))
	assert.Equal(t, 50*time.Second, h.Remaining(t0.Add(40*time.Second)))

	h.Resume(t0.Add(40 * time.Second))
	assert.Equal(t, 40*time.Second, h.Remaining(t0.Add(50*time.Second)))

	h.Stop()
	assert.False(t, h.TimeUp(t0.Add(time.Hour)))
}
