// Package view plays a grid in a pixel window, independent of the
// terminal front end.
package view

import "time"

// maxBacklog caps how many generations a single tick may owe, so a long
// suspension does not trigger a catch-up burst.
const maxBacklog = 8

// StepClock converts wall-clock time into a number of generations owed,
// letting the simulation advance at its own rate inside a faster render
// loop.
type StepClock struct {
	interval time.Duration
	acc      time.Duration
	last     time.Time
}

// NewStepClock targets the given generations per second.
func NewStepClock(gps int) *StepClock {
	if gps <= 0 {
		gps = 10
	}
	return &StepClock{interval: time.Second / time.Duration(gps)}
}

// Tick accounts time up to now and returns how many generations are due.
func (c *StepClock) Tick(now time.Time) int {
	if c.last.IsZero() {
		c.last = now
	}
	c.acc += now.Sub(c.last)
	c.last = now
	steps := int(c.acc / c.interval)
	if steps <= 0 {
		return 0
	}
	c.acc -= time.Duration(steps) * c.interval
	if steps > maxBacklog {
		steps = maxBacklog
	}
	return steps
}
