package plume

import "github.com/hajimehoshi/ebiten/v2"

// BindFunc is a demultiplexed user callback invoked by the composite
// keyboard and mouse controllers. c is the base controller that observed the
// event; read the payload with c.Event().
type BindFunc func(rt *Runtime, c *Controller)

type keyBinding struct {
	key ebiten.Key
	fn  BindFunc
}

// KeyboardController binds per-key callbacks on top of two base controllers
// (key down, key up). It is not separately scheduled: the base controllers'
// pending/delay machinery drives it, and one shared handler demultiplexes by
// key code. Several callbacks may be bound to the same key.
type KeyboardController struct {
	downID, upID ControllerID

	pressed  []keyBinding
	released []keyBinding
}

// NewKeyboardController registers the base controllers on the scene and
// returns the composite.
func (r *Runtime) NewKeyboardController(sc *Scene) *KeyboardController {
	kc := &KeyboardController{}
	kc.downID = r.CreateController(sc, EventKeyDown, kc, keyboardDemux)
	kc.upID = r.CreateController(sc, EventKeyUp, kc, keyboardDemux)
	return kc
}

// OnPress binds fn to a key press. Auto-repeat occurrences do not fire.
func (kc *KeyboardController) OnPress(key ebiten.Key, fn BindFunc) {
	kc.pressed = append(kc.pressed, keyBinding{key: key, fn: fn})
}

// OnRelease binds fn to a key release.
func (kc *KeyboardController) OnRelease(key ebiten.Key, fn BindFunc) {
	kc.released = append(kc.released, keyBinding{key: key, fn: fn})
}

// Remove unregisters the composite's base controllers from the scene.
func (kc *KeyboardController) Remove(sc *Scene) {
	sc.RemoveController(kc.downID)
	sc.RemoveController(kc.upID)
}

// keyboardDemux is the shared handler behind both base controllers.
func keyboardDemux(rt *Runtime, c *Controller) bool {
	kc, ok := c.UserData.(*KeyboardController)
	if !ok {
		return false
	}
	evt := c.Event()
	var bindings []keyBinding
	switch evt.Type {
	case EventKeyDown:
		bindings = kc.pressed
	case EventKeyUp:
		bindings = kc.released
	}
	for _, b := range bindings {
		if b.key == evt.Key && !evt.Repeat {
			b.fn(rt, c)
		}
	}
	return false
}
