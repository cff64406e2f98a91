package plume

import "github.com/hajimehoshi/ebiten/v2"

// Script is a queue of synthetic events injected one per input phase,
// ahead of real device input. Scripts drive demos and headless tests
// through the same dispatch path as real input.
type Script struct {
	queue []Event
}

// NewScript returns an empty script.
func NewScript() *Script { return &Script{} }

// InjectEvent appends a raw event to the queue.
func (s *Script) InjectEvent(evt Event) {
	s.queue = append(s.queue, evt)
}

// InjectKeyPress queues a key-down followed by a key-up. Consumes two input
// phases.
func (s *Script) InjectKeyPress(key ebiten.Key) {
	s.InjectEvent(Event{Type: EventKeyDown, Key: key})
	s.InjectEvent(Event{Type: EventKeyUp, Key: key})
}

// InjectClick queues a press followed by a release of the left button at the
// given screen coordinates. Consumes two input phases.
func (s *Script) InjectClick(x, y float64) {
	s.InjectEvent(Event{Type: EventMouseDown, Button: MouseButtonLeft, X: x, Y: y})
	s.InjectEvent(Event{Type: EventMouseUp, Button: MouseButtonLeft, X: x, Y: y})
}

// InjectMove queues a cursor move to the given screen coordinates.
func (s *Script) InjectMove(x, y float64) {
	s.InjectEvent(Event{Type: EventMouseMove, X: x, Y: y})
}

// InjectQuit queues a quit request.
func (s *Script) InjectQuit() {
	s.InjectEvent(Event{Type: EventQuit})
}

// Len returns the number of events still queued.
func (s *Script) Len() int { return len(s.queue) }

// step pops the next event, if any, into the runtime's event queue. Called
// at the start of each input phase so scripted input precedes device input.
func (s *Script) step(r *Runtime) {
	if len(s.queue) == 0 {
		return
	}
	evt := s.queue[0]
	copy(s.queue, s.queue[1:])
	s.queue = s.queue[:len(s.queue)-1]
	r.PushEvent(evt)
}

// AttachScript installs a script on the runtime. Pass nil to detach.
func (r *Runtime) AttachScript(s *Script) {
	r.script = s
}
