package core

import "time"

// FrameClock measures wall-clock elapsed time between frames, supplying the
// dt fed into the simulation step. A slow frame simply yields a larger dt on
// the next tick, capped so a stall cannot produce an unstable jump.
type FrameClock struct {
	last  time.Time
	maxDT float64
}

// NewFrameClock constructs a FrameClock with the given maximum step in seconds.
func NewFrameClock(maxDT float64) *FrameClock {
	if maxDT <= 0 {
		maxDT = 0.25
	}
	return &FrameClock{maxDT: maxDT}
}

// Tick returns the elapsed seconds since the previous call, clamped to the
// configured maximum. The first call returns zero.
func (c *FrameClock) Tick() float64 {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	if dt > c.maxDT {
		return c.maxDT
	}
	return dt
}
