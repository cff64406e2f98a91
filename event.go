package plume

import "github.com/hajimehoshi/ebiten/v2"

// EventType identifies a kind of polled event. Controllers subscribe to
// exactly one event type.
type EventType uint8

const (
	EventNone       EventType = iota // zero value; matches nothing
	EventKeyDown                     // a keyboard key was pressed (or repeated)
	EventKeyUp                       // a keyboard key was released
	EventMouseDown                   // a mouse button was pressed
	EventMouseUp                     // a mouse button was released
	EventMouseMove                   // the cursor moved
	EventMouseWheel                  // the wheel scrolled
	EventQuit                        // the host asked the program to exit
	EventTick                        // synthetic; never produced by input polling
)

// Event is one polled input occurrence. Only the fields relevant to the
// event's Type are meaningful; the rest stay zero. The most recent matching
// Event is stored on each controller before its handler runs.
type Event struct {
	Type EventType

	// Keyboard fields (EventKeyDown, EventKeyUp).
	Key    ebiten.Key
	Repeat bool // true for auto-repeat key-down occurrences

	// Mouse fields (EventMouseDown, EventMouseUp, EventMouseMove,
	// EventMouseWheel). X and Y are cursor coordinates in screen space.
	Button MouseButton
	X, Y   float64
	// Wheel deltas (EventMouseWheel).
	WheelX, WheelY float64
}
