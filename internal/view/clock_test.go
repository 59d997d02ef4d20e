package view

import (
	"testing"
	"time"
)

func TestStepClockPacing(t *testing.T) {
	c := NewStepClock(10) // one generation per 100ms
	base := time.Unix(0, 0)

	if got := c.Tick(base); got != 0 {
		t.Fatalf("first tick owes %d steps, want 0", got)
	}
	if got := c.Tick(base.Add(50 * time.Millisecond)); got != 0 {
		t.Fatalf("after 50ms owes %d steps, want 0", got)
	}
	if got := c.Tick(base.Add(100 * time.Millisecond)); got != 1 {
		t.Fatalf("after 100ms owes %d steps, want 1", got)
	}
	// 250ms later: two full intervals due, 50ms carried over.
	if got := c.Tick(base.Add(350 * time.Millisecond)); got != 2 {
		t.Fatalf("after 350ms owes %d steps, want 2", got)
	}
	if got := c.Tick(base.Add(400 * time.Millisecond)); got != 1 {
		t.Fatalf("carry-over tick owes %d steps, want 1", got)
	}
}

func TestStepClockBacklogCap(t *testing.T) {
	c := NewStepClock(100)
	base := time.Unix(0, 0)
	c.Tick(base)
	if got := c.Tick(base.Add(time.Hour)); got != maxBacklog {
		t.Fatalf("long gap owes %d steps, want %d", got, maxBacklog)
	}
	if got := c.Tick(base.Add(time.Hour)); got != 0 {
		t.Fatalf("immediately after catch-up owes %d steps, want 0", got)
	}
}

func TestStepClockDefaultRate(t *testing.T) {
	c := NewStepClock(0)
	if c.interval != 100*time.Millisecond {
		t.Fatalf("default interval = %v, want 100ms", c.interval)
	}
}
