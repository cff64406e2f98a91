package plume

import (
	"sort"

	"github.com/kamstrup/intmap"
)

// Scene owns the active collections the runtime schedules: layers,
// controllers, drawables, and collider labels. The runtime drives exactly one
// scene at a time; swapping scenes preserves the outgoing scene's state.
type Scene struct {
	name string

	layers   []*Layer
	layerBuf []*Layer // reused snapshot buffer for the scheduler pass

	controllers []*Controller
	ctrlIndex   *intmap.Map[uint32, *Controller]

	drawables []*Drawable
	colliders []ColliderLabel

	// Cursors naming what is currently executing, consulted by the sleep
	// timer and diagnostics.
	runningLayer      *Layer
	runningController *Controller
}

// NewScene creates an empty scene with the given name.
func NewScene(name string) *Scene {
	return &Scene{
		name:      name,
		ctrlIndex: intmap.New[uint32, *Controller](32),
	}
}

// Name returns the scene's name.
func (s *Scene) Name() string { return s.name }

// AddLayer registers a layer. Order of registration is irrelevant: layers are
// re-sorted by schedule and priority when the scene becomes active.
func (s *Scene) AddLayer(l *Layer) {
	s.layers = append(s.layers, l)
}

// Layers returns the scene's layer list in current scheduling order.
// The returned slice MUST NOT be mutated.
func (s *Scene) Layers() []*Layer { return s.layers }

// LayerByName returns the first layer with the given name, or nil.
func (s *Scene) LayerByName(name string) *Layer {
	for _, l := range s.layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// RunningLayer returns the layer currently executing its update function,
// or nil outside the scheduler pass.
func (s *Scene) RunningLayer() *Layer { return s.runningLayer }

// RunningController returns the controller whose handler is currently
// executing, or nil outside controller dispatch.
func (s *Scene) RunningController() *Controller { return s.runningController }

// sortLayers orders the layer list for scheduling: Times layers first
// (higher remaining counts first), then Forever layers by ascending
// Priority. Called on scene activation and swap. The sort is stable so
// equal-priority layers keep registration order.
func (s *Scene) sortLayers() {
	sort.SliceStable(s.layers, func(i, j int) bool {
		a, b := s.layers[i], s.layers[j]
		if ac, bc := a.sortClass(), b.sortClass(); ac != bc {
			return ac < bc
		}
		return a.sortKey() < b.sortKey()
	})
}

// layerSnapshot copies the current layer order into a reused buffer so the
// scheduler pass survives layers mutating the list mid-tick.
func (s *Scene) layerSnapshot() []*Layer {
	s.layerBuf = append(s.layerBuf[:0], s.layers...)
	return s.layerBuf
}

// removeLayer drops a layer from the live list. No-op if absent.
func (s *Scene) removeLayer(l *Layer) {
	for i, cur := range s.layers {
		if cur == l {
			s.layers = append(s.layers[:i], s.layers[i+1:]...)
			return
		}
	}
}

// RemoveLayer removes the first layer with the given name. No-op if absent.
func (s *Scene) RemoveLayer(name string) {
	if l := s.LayerByName(name); l != nil {
		s.removeLayer(l)
	}
}

// --- Controllers ---

func (s *Scene) addController(c *Controller) {
	s.controllers = append(s.controllers, c)
	s.ctrlIndex.Put(uint32(c.id), c)
}

// LookupController returns the controller with the given id, or nil if the
// id is absent from this scene.
func (s *Scene) LookupController(id ControllerID) *Controller {
	c, ok := s.ctrlIndex.Get(uint32(id))
	if !ok {
		return nil
	}
	return c
}

// RemoveController removes the controller with the given id. Removing an
// absent id is a no-op, so one-shot controllers can remove themselves from
// inside their own handler without bookkeeping.
func (s *Scene) RemoveController(id ControllerID) {
	if _, ok := s.ctrlIndex.Get(uint32(id)); !ok {
		return
	}
	s.ctrlIndex.Del(uint32(id))
	for i, c := range s.controllers {
		if c.id == id {
			s.controllers = append(s.controllers[:i], s.controllers[i+1:]...)
			return
		}
	}
}

// Controllers returns the scene's controller list in registration order.
// The returned slice MUST NOT be mutated.
func (s *Scene) Controllers() []*Controller { return s.controllers }

// --- Drawables ---

// addDrawable inserts d keeping the list sorted by ascending render
// priority, so higher-priority drawables are drawn last (on top). Equal
// priorities keep insertion order.
func (s *Scene) addDrawable(d *Drawable) {
	i := sort.Search(len(s.drawables), func(i int) bool {
		return s.drawables[i].Priority > d.Priority
	})
	s.drawables = append(s.drawables, nil)
	copy(s.drawables[i+1:], s.drawables[i:])
	s.drawables[i] = d
}

// Drawables returns the scene's drawables in render order.
// The returned slice MUST NOT be mutated.
func (s *Scene) Drawables() []*Drawable { return s.drawables }

// RemoveDrawable removes a drawable and any collider label that refers to
// its physics controller is left to the owning body's removal. No-op if the
// drawable is absent.
func (s *Scene) RemoveDrawable(d *Drawable) {
	for i, cur := range s.drawables {
		if cur == d {
			s.drawables = append(s.drawables[:i], s.drawables[i+1:]...)
			return
		}
	}
}

// --- Collider labels ---

func (s *Scene) addCollider(c ColliderLabel) {
	s.colliders = append(s.colliders, c)
}

func (s *Scene) removeCollider(id ControllerID) {
	for i := range s.colliders {
		if s.colliders[i].ColliderID == id {
			s.colliders = append(s.colliders[:i], s.colliders[i+1:]...)
			return
		}
	}
}

// colliderAt returns the index of the label owned by the given controller,
// or -1.
func (s *Scene) colliderAt(id ControllerID) int {
	for i := range s.colliders {
		if s.colliders[i].ColliderID == id {
			return i
		}
	}
	return -1
}

// Colliders returns the scene's collider labels.
// The returned slice MUST NOT be mutated.
func (s *Scene) Colliders() []ColliderLabel { return s.colliders }

// release drops every collection. Called on the exit path so a terminating
// runtime leaves no scene state behind.
func (s *Scene) release() {
	s.layers = nil
	s.layerBuf = nil
	s.controllers = nil
	s.ctrlIndex.Clear()
	s.drawables = nil
	s.colliders = nil
	s.runningLayer = nil
	s.runningController = nil
}
