package plume

import (
	"testing"
	"time"
)

func TestManualClockAdvance(t *testing.T) {
	c := NewManualClock()
	t0 := c.Now()
	if t0.IsZero() {
		t.Fatal("manual clock starts at the zero time")
	}
	c.Advance(3 * time.Second)
	if got := c.Now().Sub(t0); got != 3*time.Second {
		t.Errorf("advanced by %v, want 3s", got)
	}
	// Time only moves on Advance.
	if got := c.Now().Sub(t0); got != 3*time.Second {
		t.Errorf("Now() moved without Advance: %v", got)
	}
}

func TestSystemClockMovesForward(t *testing.T) {
	c := NewSystemClock()
	a := c.Now()
	b := c.Now()
	if b.Before(a) {
		t.Errorf("system clock went backwards: %v then %v", a, b)
	}
}
