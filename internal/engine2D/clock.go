package engine2D

import "time"

// Clock tracks the frame delta and total elapsed animation time. The delta
// feeds the incremental motion model, the elapsed total the analytic one;
// both come from the same instant so the two models see a consistent frame.
type Clock struct {
	start time.Time
	last  time.Time
}

func NewClock() *Clock {
	now := time.Now()
	return &Clock{start: now, last: now}
}

// Tick returns seconds since the previous Tick, clamped to >= 0 so a clock
// adjustment can never step sprites backwards.
func (c *Clock) Tick() float64 {
	now := time.Now()
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	return dt
}

// Elapsed returns total seconds since the clock was created.
func (c *Clock) Elapsed() float64 {
	return time.Since(c.start).Seconds()
}
