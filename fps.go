package plume

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// NewFPSWidget creates a drawable that displays the current FPS and TPS in
// the window's top-left corner, refreshed about twice per second by a layer
// registered on the scene. The drawable renders on top of everything at the
// given priority; pick a priority above the rest of the scene.
func (r *Runtime) NewFPSWidget(sc *Scene, priority int) *Drawable {
	// 100x32 fits "FPS: 60.0\nTPS: 60.0".
	img := ebiten.NewImage(100, 32)

	d := r.NewDrawable(sc, priority)
	d.SetCustomImage(img)

	var last time.Time
	sc.AddLayer(&Layer{
		Name:     "fps-widget",
		Schedule: Forever(),
		Priority: priority,
		Update: func(rt *Runtime) {
			now := rt.Clock().Now()
			if now.Sub(last) < 500*time.Millisecond {
				return
			}
			last = now

			img.Clear()
			// Semi-transparent background for readability.
			img.Fill(color.RGBA{0, 0, 0, 128})
			ebitenutil.DebugPrint(img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
				ebiten.ActualFPS(), ebiten.ActualTPS()))
		},
	})
	return d
}
