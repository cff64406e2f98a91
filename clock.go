package plume

import "time"

// Clock supplies the monotonic time used by the scheduler, the controller
// delay throttle, and the sleep timer. The runtime never reads the wall
// clock directly, so tests can substitute a ManualClock and advance it
// deterministically.
type Clock interface {
	Now() time.Time
}

// systemClock reads the real monotonic clock.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// NewSystemClock returns a Clock backed by time.Now.
func NewSystemClock() Clock { return systemClock{} }

// ManualClock is a Clock whose time only moves when Advance is called.
// The zero value is not usable; create one with NewManualClock.
type ManualClock struct {
	now time.Time
}

// NewManualClock returns a ManualClock starting at an arbitrary fixed epoch.
func NewManualClock() *ManualClock {
	// Any nonzero base works; zero time is reserved as the "not sleeping"
	// sentinel on layers.
	return &ManualClock{now: time.Unix(1_000_000, 0)}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time { return c.now }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }
