package plume

import (
	"fmt"
	"os"
	"time"
)

// frameStats holds per-frame phase timings. Only populated when the
// runtime's debug mode is on.
type frameStats struct {
	inputTime   time.Duration
	updateTime  time.Duration
	renderTime  time.Duration
	updateTicks int
	frames      int
	lastLog     time.Time
}

// SetDebugMode enables or disables debug mode. When enabled, phase timings
// and tick counts are printed to stderr about once per second.
func (r *Runtime) SetDebugMode(enabled bool) {
	r.debug = enabled
}

// noteRenderTime records the duration of the most recent render phase.
// Called by the windowed driver.
func (r *Runtime) noteRenderTime(d time.Duration) {
	if r.debug {
		r.stats.renderTime = d
	}
}

// debugLog prints phase timings to stderr, throttled to once per second.
func (r *Runtime) debugLog() {
	now := r.clock.Now()
	if now.Sub(r.stats.lastLog) < time.Second {
		return
	}
	r.stats.lastLog = now
	_, _ = fmt.Fprintf(os.Stderr,
		"[plume] input: %v | update: %v (%d ticks) | render: %v | frames: %d\n",
		r.stats.inputTime, r.stats.updateTime, r.stats.updateTicks,
		r.stats.renderTime, r.stats.frames)
}
