package plume

// Box is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Box struct {
	X, Y, W, H float64
}

// Contains reports whether the point (x, y) lies inside the box.
// Points on the edge are considered inside.
func (b Box) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.W &&
		y >= b.Y && y <= b.Y+b.H
}

// Overlaps reports whether b and other overlap. The test is a separating-axis
// check on two axes: the boxes overlap unless one is fully left of, right of,
// above, or below the other. Boxes sharing only an edge do not overlap.
func (b Box) Overlaps(other Box) bool {
	return !(b.X+b.W <= other.X ||
		b.X >= other.X+other.W ||
		b.Y+b.H <= other.Y ||
		b.Y >= other.Y+other.H)
}

// ControllerID identifies a controller within a runtime. IDs increase
// monotonically from 1 and are never reused; 0 means "no controller".
type ControllerID uint32

// DrawableID identifies a drawable within a runtime. IDs increase
// monotonically from 1 and are never reused; 0 means "no drawable".
type DrawableID uint32

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (wheel click)
)
