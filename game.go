package plume

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key auto-repeat timing, in Update calls (ticks at the configured TPS).
const (
	keyRepeatDelay    = 30
	keyRepeatInterval = 6
)

// game adapts a Runtime to ebiten.Game: Update polls input and advances the
// loop, Draw renders the scene.
type game struct {
	rt *Runtime

	keyBuf         []ebiten.Key
	lastCX, lastCY int
	cursorSeen     bool
}

var driverButtons = [...]struct {
	eb ebiten.MouseButton
	pb MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

// pollInput translates this frame's device state into queued events.
func (g *game) pollInput() {
	rt := g.rt

	g.keyBuf = inpututil.AppendJustPressedKeys(g.keyBuf[:0])
	for _, k := range g.keyBuf {
		rt.PushEvent(Event{Type: EventKeyDown, Key: k})
	}
	g.keyBuf = inpututil.AppendPressedKeys(g.keyBuf[:0])
	for _, k := range g.keyBuf {
		d := inpututil.KeyPressDuration(k)
		if d >= keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0 {
			rt.PushEvent(Event{Type: EventKeyDown, Key: k, Repeat: true})
		}
	}
	g.keyBuf = inpututil.AppendJustReleasedKeys(g.keyBuf[:0])
	for _, k := range g.keyBuf {
		rt.PushEvent(Event{Type: EventKeyUp, Key: k})
	}

	cx, cy := ebiten.CursorPosition()
	fx, fy := float64(cx), float64(cy)
	if g.cursorSeen && (cx != g.lastCX || cy != g.lastCY) {
		rt.PushEvent(Event{Type: EventMouseMove, X: fx, Y: fy})
	}
	g.lastCX, g.lastCY = cx, cy
	g.cursorSeen = true

	for _, b := range driverButtons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			rt.PushEvent(Event{Type: EventMouseDown, Button: b.pb, X: fx, Y: fy})
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			rt.PushEvent(Event{Type: EventMouseUp, Button: b.pb, X: fx, Y: fy})
		}
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		rt.PushEvent(Event{Type: EventMouseWheel, WheelX: wx, WheelY: wy, X: fx, Y: fy})
	}
}

func (g *game) Update() error {
	g.pollInput()
	if err := g.rt.Frame(); err != nil {
		if errors.Is(err, ErrExit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	t0 := time.Now()
	g.rt.Draw(screen)
	g.rt.noteRenderTime(time.Since(t0))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.rt.WindowSize()
}

// Run opens a window and drives the runtime until Exit is called or the
// window is closed. It blocks until the loop ends and must be called from
// the main goroutine.
func Run(rt *Runtime) error {
	cfg := rt.Config()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.FPS)
	if cfg.Uncapped {
		ebiten.SetVsyncEnabled(false)
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}
	return ebiten.RunGame(&game{rt: rt})
}

// IsKeyPressed reports whether the key is held down right now. This bypasses
// the event queue; use a KeyboardController for edge-triggered input.
func IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}
