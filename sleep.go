package plume

import (
	"log"
	"time"
)

// SleepState is the result of a sleep-timer query.
type SleepState uint8

const (
	// NotSleeping means no deadline is armed; the caller typically arms one
	// next with Sleep.
	NotSleeping SleepState = iota
	// StillWaiting means the armed deadline has not elapsed yet.
	StillWaiting
	// JustElapsed means the deadline passed; it is reported exactly once and
	// the layer returns to NotSleeping.
	JustElapsed
)

// expiredDeadline is far enough in the past that any clock reading elapses
// it. Used to force the next sleep check to report JustElapsed.
var expiredDeadline = time.Unix(0, 1)

// Sleep arms a cooperative delay on the layer: the next CheckSleep calls
// report StillWaiting until d has elapsed. The layer itself keeps running
// every tick; only the caller's guarded block is throttled. Nothing blocks.
func (r *Runtime) Sleep(l *Layer, d time.Duration) {
	l.sleepDeadline = r.clock.Now().Add(d)
}

// CheckSleep reports the layer's sleep state. A deadline that elapsed is
// reported as JustElapsed exactly once and then cleared.
func (r *Runtime) CheckSleep(l *Layer) SleepState {
	switch {
	case l.sleepDeadline.IsZero():
		return NotSleeping
	case r.clock.Now().Before(l.sleepDeadline):
		return StillWaiting
	default:
		l.sleepDeadline = time.Time{}
		return JustElapsed
	}
}

// SleepEvery is the common "run this block once every d" idiom in one call:
// it returns true each time the layer's delay elapses and re-arms it. The
// first call arms the delay and returns false.
func (r *Runtime) SleepEvery(l *Layer, d time.Duration) bool {
	switch r.CheckSleep(l) {
	case NotSleeping:
		r.Sleep(l, d)
		return false
	case JustElapsed:
		r.Sleep(l, d)
		return true
	default:
		return false
	}
}

// SleepLayer arms a sleep on the named layer of the active scene. A lookup
// miss is logged and ignored.
func (r *Runtime) SleepLayer(name string, d time.Duration) {
	l := r.lookupLayer(name, "sleep")
	if l != nil {
		r.Sleep(l, d)
	}
}

// CheckLayerSleep reports the sleep state of the named layer of the active
// scene. A lookup miss is logged and reported as NotSleeping.
func (r *Runtime) CheckLayerSleep(name string) SleepState {
	l := r.lookupLayer(name, "check sleep on")
	if l == nil {
		return NotSleeping
	}
	return r.CheckSleep(l)
}

// UnsleepCurrentLayer cancels the pending sleep of whichever layer is
// currently executing. With immediate set, the deadline is force-expired so
// the layer's next check reports JustElapsed right away (e.g. to react to a
// direction change without waiting out the delay); otherwise the layer
// simply returns to NotSleeping.
func (r *Runtime) UnsleepCurrentLayer(immediate bool) {
	sc := r.scene
	if sc == nil || sc.runningLayer == nil {
		log.Printf("plume: unsleep requested outside a running layer")
		return
	}
	if immediate {
		sc.runningLayer.sleepDeadline = expiredDeadline
	} else {
		sc.runningLayer.sleepDeadline = time.Time{}
	}
}

func (r *Runtime) lookupLayer(name, op string) *Layer {
	if r.scene == nil {
		log.Printf("plume: unable to %s layer %q: no active scene", op, name)
		return nil
	}
	l := r.scene.LayerByName(name)
	if l == nil {
		log.Printf("plume: unable to %s layer %q: layer does not exist", op, name)
	}
	return l
}
