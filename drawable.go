package plume

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Drawable is a positioned, scaled, rotated render primitive. Drawables are
// owned by the scene they are created into and drawn in ascending Priority
// order, so higher-priority drawables appear on top.
//
// Transform fields may be set directly or through the helpers; the renderer
// reads them fresh every frame.
type Drawable struct {
	id DrawableID

	X, Y           float64
	ScaleX, ScaleY float64
	Rotation       float64 // radians

	// Priority fixes the draw order at creation time.
	Priority int

	// Width and Height are the unscaled frame size in pixels. They default
	// to the texture's frame size when a texture is attached.
	Width, Height float64

	// Frame selects the current texture frame.
	Frame int

	Visible bool

	texture    *Texture
	custom     *ebiten.Image
	animations map[string]*Animation
}

// NewDrawable creates a drawable in the scene with the given render
// priority. The id comes from the runtime's counter. Scale defaults to 1
// and the drawable starts visible.
func (r *Runtime) NewDrawable(sc *Scene, priority int) *Drawable {
	r.nextDrawableID++
	d := &Drawable{
		id:       DrawableID(r.nextDrawableID),
		ScaleX:   1,
		ScaleY:   1,
		Priority: priority,
		Visible:  true,
	}
	sc.addDrawable(d)
	return d
}

// ID returns the drawable's runtime-unique id.
func (d *Drawable) ID() DrawableID { return d.id }

// SetTexture attaches a texture. If the drawable has no size yet, the
// texture's frame size becomes the drawable's size.
func (d *Drawable) SetTexture(t *Texture) {
	d.texture = t
	if t != nil && d.Width == 0 && d.Height == 0 {
		w, h := t.FrameSize()
		d.Width = float64(w)
		d.Height = float64(h)
	}
}

// Texture returns the attached texture, or nil.
func (d *Drawable) Texture() *Texture { return d.texture }

// SetCustomImage makes the drawable render the given image directly instead
// of a texture frame. Used by overlay widgets that paint their own pixels.
func (d *Drawable) SetCustomImage(img *ebiten.Image) {
	d.custom = img
	if img != nil && d.Width == 0 && d.Height == 0 {
		b := img.Bounds()
		d.Width = float64(b.Dx())
		d.Height = float64(b.Dy())
	}
}

// SetPosition sets the drawable's position.
func (d *Drawable) SetPosition(x, y float64) {
	d.X = x
	d.Y = y
}

// Translate moves the drawable by (dx, dy).
func (d *Drawable) Translate(dx, dy float64) {
	d.X += dx
	d.Y += dy
}

// SetScale sets both scale factors.
func (d *Drawable) SetScale(sx, sy float64) {
	d.ScaleX = sx
	d.ScaleY = sy
}

// SetRotation sets the rotation in radians.
func (d *Drawable) SetRotation(rad float64) { d.Rotation = rad }

// Rotate adds to the rotation in radians.
func (d *Drawable) Rotate(rad float64) { d.Rotation += rad }

// SetSize sets the unscaled frame size.
func (d *Drawable) SetSize(w, h float64) {
	d.Width = w
	d.Height = h
}

// Bounds returns the drawable's axis-aligned bounding box: position plus
// scaled size. Rotation is not folded in; physics and hit tests operate on
// the unrotated box.
func (d *Drawable) Bounds() Box {
	return Box{X: d.X, Y: d.Y, W: d.Width * d.ScaleX, H: d.Height * d.ScaleY}
}

// --- Frame animations ---

// Animation is an ordered sequence of frame indices with a cursor.
type Animation struct {
	frames []int
	cursor int
}

// Frames returns the animation's frame sequence.
// The returned slice MUST NOT be mutated.
func (a *Animation) Frames() []int { return a.frames }

// Cursor returns the index of the next frame to be shown.
func (a *Animation) Cursor() int { return a.cursor }

// AddAnimation registers a named frame sequence on the drawable. Registering
// an existing name replaces the sequence and resets its cursor.
func (d *Drawable) AddAnimation(name string, frames []int) {
	if d.animations == nil {
		d.animations = make(map[string]*Animation)
	}
	d.animations[name] = &Animation{frames: append([]int(nil), frames...)}
}

// Animation returns the named animation, or nil.
func (d *Drawable) Animation(name string) *Animation {
	return d.animations[name]
}

// Animate shows the named animation's next frame and advances its cursor,
// wrapping at the end of the sequence. An unknown name is logged and
// ignored.
func (d *Drawable) Animate(name string) {
	a := d.animations[name]
	if a == nil || len(a.frames) == 0 {
		log.Printf("plume: animation %q not found on drawable %d", name, d.id)
		return
	}
	d.Frame = a.frames[a.cursor]
	a.cursor = (a.cursor + 1) % len(a.frames)
}

// ResetAnimation rewinds the named animation's cursor. An unknown name is a
// no-op.
func (d *Drawable) ResetAnimation(name string) {
	if a := d.animations[name]; a != nil {
		a.cursor = 0
	}
}
