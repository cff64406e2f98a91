package plume

import "time"

// Schedule controls how many update ticks a layer runs for. Construct one
// with Forever or Times; the zero value is already exhausted and the
// scheduler removes such a layer without ever running it.
type Schedule struct {
	forever   bool
	remaining int
}

// Forever returns a Schedule that runs the layer once per update tick until
// the layer is removed explicitly.
func Forever() Schedule { return Schedule{forever: true} }

// Times returns a Schedule that runs the layer exactly n times, after which
// the scheduler removes it. Times layers run before Forever layers, which
// makes them natural one-shot initializers. n < 1 yields an exhausted
// schedule.
func Times(n int) Schedule { return Schedule{remaining: n} }

// Exhausted reports whether the schedule has no runs left.
func (s Schedule) Exhausted() bool { return !s.forever && s.remaining <= 0 }

// Remaining returns the number of runs left, or -1 for a Forever schedule.
func (s Schedule) Remaining() int {
	if s.forever {
		return -1
	}
	return s.remaining
}

// Layer is a scheduled update unit. Layers are registered on a Scene and run
// in order each update tick: Times layers first (higher run counts first),
// then Forever layers in ascending Priority.
//
// Name should be unique within a scene; the name-based sleep helpers resolve
// layers by it and silently pick the first match otherwise.
type Layer struct {
	Name     string
	Update   func(rt *Runtime)
	Schedule Schedule

	// Priority orders Forever layers among themselves. Lower values run
	// earlier. It has no effect on Times layers.
	Priority int

	// sleepDeadline is zero when the layer is not sleeping; otherwise the
	// instant the current sleep elapses. Managed by the sleep timer.
	sleepDeadline time.Time
}

// sortClass groups layers for scheduling. Every Times layer sorts before
// every Forever layer regardless of either one's numbers, so init layers
// always precede steady-state layers.
func (l *Layer) sortClass() int {
	if l.Schedule.forever {
		return 1
	}
	return 0
}

// sortKey orders layers within a class: larger run counts first for Times
// layers, ascending Priority for Forever layers.
func (l *Layer) sortKey() int {
	if !l.Schedule.forever {
		return -l.Schedule.remaining
	}
	return l.Priority
}

// runLayers executes one scheduler pass over the scene's layers: run each
// non-exhausted layer, decrement Times schedules, and drop layers whose
// schedule just reached zero. The pass iterates a snapshot, so a layer may
// register or remove layers from within its own update function; additions
// take effect next tick.
func (r *Runtime) runLayers(sc *Scene) {
	snapshot := sc.layerSnapshot()
	for _, l := range snapshot {
		if l.Schedule.Exhausted() {
			sc.removeLayer(l)
			continue
		}
		sc.runningLayer = l
		if l.Update != nil {
			l.Update(r)
		}
		if !l.Schedule.forever {
			l.Schedule.remaining--
			if l.Schedule.Exhausted() {
				sc.removeLayer(l)
			}
		}
	}
	sc.runningLayer = nil
}
