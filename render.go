package plume

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Draw renders the active scene's drawables onto screen in ascending
// priority order. Safe to call with no scene (a blank frame).
//
// The transform order is scale, then rotation about the frame center, then
// translation to the drawable's position. A drawable with neither a texture
// nor a custom image is skipped.
func (r *Runtime) Draw(screen *ebiten.Image) {
	if r.scene == nil {
		return
	}
	for _, d := range r.scene.Drawables() {
		if !d.Visible {
			continue
		}
		img := d.renderImage()
		if img == nil {
			continue
		}
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		if d.Rotation != 0 {
			op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
			op.GeoM.Rotate(d.Rotation)
			op.GeoM.Translate(float64(b.Dx())/2, float64(b.Dy())/2)
		}
		op.GeoM.Scale(d.ScaleX, d.ScaleY)
		op.GeoM.Translate(d.X, d.Y)
		screen.DrawImage(img, op)
	}
}

// renderImage resolves the image a drawable shows this frame: the custom
// image when set, otherwise the texture's current frame.
func (d *Drawable) renderImage() *ebiten.Image {
	if d.custom != nil {
		return d.custom
	}
	if d.texture != nil {
		return d.texture.frameImage(d.Frame)
	}
	return nil
}
