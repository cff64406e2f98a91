package plume

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 float64 fields on a Drawable simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenScale,
// TweenRotation) and call Update(dt) from a layer each tick. The group
// auto-applies values to the target fields.
//
// There is no global animation manager; layers call Update themselves with
// the fixed step as dt.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	fields [2]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes the interpolated values
// to the target fields. Once every tween has finished, Done is set and
// further calls are no-ops.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenPosition creates a TweenGroup that animates d.X and d.Y to the given
// target coordinates over the specified duration using the easing function.
func TweenPosition(d *Drawable, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(d.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(d.Y), float32(toY), duration, fn)
	g.fields[0] = &d.X
	g.fields[1] = &d.Y
	return g
}

// TweenScale creates a TweenGroup that animates d.ScaleX and d.ScaleY to the
// given target values over the specified duration using the easing function.
func TweenScale(d *Drawable, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(d.ScaleX), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(d.ScaleY), float32(toSY), duration, fn)
	g.fields[0] = &d.ScaleX
	g.fields[1] = &d.ScaleY
	return g
}

// TweenRotation creates a TweenGroup that animates d.Rotation to the target
// angle in radians over the specified duration.
func TweenRotation(d *Drawable, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(d.Rotation), float32(to), duration, fn)
	g.fields[0] = &d.Rotation
	return g
}
