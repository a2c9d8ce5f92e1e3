package ui

import "github.com/charmbracelet/harmonica"

// Reveal eases a value from 0 toward 1 with a damped spring once started.
type Reveal struct {
	spring  harmonica.Spring
	pos     float64
	vel     float64
	target  float64
	started bool
}

// NewReveal creates a reveal stepped at fps that settles in roughly seconds.
func NewReveal(fps int, seconds float64) *Reveal {
	if seconds <= 0 {
		seconds = 1
	}
	// Angular frequency for a near-critically damped settle over the duration
	freq := 6.0 / seconds
	return &Reveal{spring: harmonica.NewSpring(harmonica.FPS(fps), freq, 1.0)}
}

// Start begins easing toward fully shown. Repeated calls are no-ops.
func (r *Reveal) Start() {
	r.started = true
	r.target = 1
}

// Started reports whether Start was called.
func (r *Reveal) Started() bool {
	return r.started
}

// Step advances the spring by one frame.
func (r *Reveal) Step() {
	r.pos, r.vel = r.spring.Update(r.pos, r.vel, r.target)
}

// Value returns the current progress clamped to [0, 1].
func (r *Reveal) Value() float32 {
	switch {
	case r.pos < 0:
		return 0
	case r.pos > 1:
		return 1
	}
	return float32(r.pos)
}
