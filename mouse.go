package plume

// mouseButtonBinding is a per-button callback with an optional hit target.
type mouseButtonBinding struct {
	button MouseButton
	target *Drawable
	fn     BindFunc
}

// mouseBinding is a buttonless callback (hover, wheel) with an optional hit
// target.
type mouseBinding struct {
	target *Drawable
	fn     BindFunc
}

// MouseController binds per-button and hover/wheel callbacks on top of four
// base controllers (press, release, move, wheel). Each binding may carry a
// target drawable: the callback only fires while the cursor is inside the
// target's current bounding box. A nil target always matches, which is how
// global handlers are bound.
type MouseController struct {
	downID, upID, hoverID, wheelID ControllerID

	pressed  []mouseButtonBinding
	released []mouseButtonBinding
	hover    []mouseBinding
	wheel    []mouseBinding
}

// NewMouseController registers the base controllers on the scene and
// returns the composite.
func (r *Runtime) NewMouseController(sc *Scene) *MouseController {
	mc := &MouseController{}
	mc.downID = r.CreateController(sc, EventMouseDown, mc, mouseDemux)
	mc.upID = r.CreateController(sc, EventMouseUp, mc, mouseDemux)
	mc.hoverID = r.CreateController(sc, EventMouseMove, mc, mouseDemux)
	mc.wheelID = r.CreateController(sc, EventMouseWheel, mc, mouseDemux)
	return mc
}

// OnPress binds fn to a button press over target (nil = anywhere).
func (mc *MouseController) OnPress(button MouseButton, target *Drawable, fn BindFunc) {
	mc.pressed = append(mc.pressed, mouseButtonBinding{button: button, target: target, fn: fn})
}

// OnRelease binds fn to a button release over target (nil = anywhere).
func (mc *MouseController) OnRelease(button MouseButton, target *Drawable, fn BindFunc) {
	mc.released = append(mc.released, mouseButtonBinding{button: button, target: target, fn: fn})
}

// OnHover binds fn to cursor movement over target (nil = any movement).
func (mc *MouseController) OnHover(target *Drawable, fn BindFunc) {
	mc.hover = append(mc.hover, mouseBinding{target: target, fn: fn})
}

// OnWheel binds fn to wheel scrolling while the cursor is over target
// (nil = anywhere).
func (mc *MouseController) OnWheel(target *Drawable, fn BindFunc) {
	mc.wheel = append(mc.wheel, mouseBinding{target: target, fn: fn})
}

// Remove unregisters the composite's base controllers from the scene.
func (mc *MouseController) Remove(sc *Scene) {
	sc.RemoveController(mc.downID)
	sc.RemoveController(mc.upID)
	sc.RemoveController(mc.hoverID)
	sc.RemoveController(mc.wheelID)
}

// hits reports whether the event position falls inside the target's current
// bounds. A nil target always matches.
func hits(target *Drawable, x, y float64) bool {
	if target == nil {
		return true
	}
	return target.Bounds().Contains(x, y)
}

// mouseDemux is the shared handler behind all four base controllers.
func mouseDemux(rt *Runtime, c *Controller) bool {
	mc, ok := c.UserData.(*MouseController)
	if !ok {
		return false
	}
	evt := c.Event()
	switch evt.Type {
	case EventMouseDown:
		for _, b := range mc.pressed {
			if b.button == evt.Button && hits(b.target, evt.X, evt.Y) {
				b.fn(rt, c)
			}
		}
	case EventMouseUp:
		for _, b := range mc.released {
			if b.button == evt.Button && hits(b.target, evt.X, evt.Y) {
				b.fn(rt, c)
			}
		}
	case EventMouseMove:
		for _, b := range mc.hover {
			if hits(b.target, evt.X, evt.Y) {
				b.fn(rt, c)
			}
		}
	case EventMouseWheel:
		for _, b := range mc.wheel {
			if hits(b.target, evt.X, evt.Y) {
				b.fn(rt, c)
			}
		}
	}
	return false
}
