package plume

import "time"

// Handler is a controller callback. It runs during the update tick once the
// controller is pending and its delay has elapsed. Returning true re-arms
// the controller immediately (it fires again on the next eligible tick);
// recurring controllers such as the physics step rely on this. Returning
// false leaves the controller idle until the next matching event.
type Handler func(rt *Runtime, c *Controller) bool

// Controller is an event-triggered callback unit. Input events polled at the
// start of a frame mark matching controllers pending; pending controllers
// fire during the update tick, throttled by a minimum re-invocation delay.
//
// UserData is an arbitrary payload carried for the handler. The controller
// holds its own reference, so the caller does not need to keep the value
// alive.
type Controller struct {
	id        ControllerID
	eventType EventType
	handler   Handler

	UserData any

	delay       time.Duration
	lastInvoked time.Time
	pending     bool
	lastEvent   Event
}

// ID returns the controller's runtime-unique id.
func (c *Controller) ID() ControllerID { return c.id }

// EventType returns the event type the controller is subscribed to.
func (c *Controller) EventType() EventType { return c.eventType }

// Event returns the most recent matching event observed by the controller.
// Valid inside the handler; holds the previous occurrence afterwards.
func (c *Controller) Event() Event { return c.lastEvent }

// Arm marks the controller pending so it fires on the next eligible update
// tick without waiting for an input event. Handlers may arm other
// controllers; a handler arming its own controller is equivalent to
// returning true.
func (c *Controller) Arm() { c.pending = true }

// Armed reports whether the controller is currently pending.
func (c *Controller) Armed() bool { return c.pending }

// SetDelay sets the minimum interval between invocations. The controller
// only fires when at least this much time has passed since it last fired,
// which decouples how often its logic runs from the fixed-step rate.
func (c *Controller) SetDelay(d time.Duration) { c.delay = d }

// Delay returns the minimum re-invocation interval.
func (c *Controller) Delay() time.Duration { return c.delay }

// CreateController registers a new controller on the scene and returns its
// id. The id comes from the runtime's counter, so ids are unique across all
// scenes driven by the same runtime and deterministic in tests.
func (r *Runtime) CreateController(sc *Scene, eventType EventType, userData any, fn Handler) ControllerID {
	r.nextControllerID++
	c := &Controller{
		id:        ControllerID(r.nextControllerID),
		eventType: eventType,
		handler:   fn,
		UserData:  userData,
	}
	sc.addController(c)
	return c.id
}

// markPending flags every idle controller subscribed to the event's type and
// hands it the payload. A controller already pending keeps its stored event
// until it fires: one matching polled event yields at most one invocation.
func markPending(sc *Scene, evt Event) {
	for _, c := range sc.controllers {
		if c.pending {
			continue
		}
		if c.eventType == evt.Type {
			c.pending = true
			c.lastEvent = evt
		}
	}
}

// dispatchControllers runs every pending controller whose delay has elapsed.
// The pass iterates a snapshot so handlers may remove controllers (including
// themselves) or create new ones; additions are picked up next tick.
func (r *Runtime) dispatchControllers(sc *Scene, now time.Time) {
	r.ctrlBuf = append(r.ctrlBuf[:0], sc.controllers...)
	for _, c := range r.ctrlBuf {
		if !c.pending {
			continue
		}
		if now.Before(c.lastInvoked.Add(c.delay)) {
			continue
		}
		// Skip controllers removed by an earlier handler in this pass.
		if sc.LookupController(c.id) != c {
			continue
		}
		sc.runningController = c
		c.pending = false
		rearm := false
		if c.handler != nil {
			rearm = c.handler(r, c)
		}
		c.lastInvoked = now
		if rearm {
			c.pending = true
		}
	}
	sc.runningController = nil
}
