package plume

import (
	"math"
	"time"
)

// BodyKind classifies how a physics body participates in the simulation.
type BodyKind uint8

const (
	// Dynamic bodies integrate queued forces and collide.
	Dynamic BodyKind = iota
	// Static bodies stay still unless moved by other means (e.g. a keyboard
	// controller) and collide.
	Static
	// ColliderOnly bodies neither integrate nor scan; they only exist as
	// collider labels for others to hit.
	ColliderOnly
)

// Force is a directional, speed-bearing displacement applied to a dynamic
// body. Times controls repetition: negative means apply every step forever,
// zero means apply once, and k > 0 means apply exactly k times.
type Force struct {
	X, Y     float64 // direction
	Speed    float64
	MaxSpeed float64
	Times    int
}

// apply displaces the drawable by the force's direction times its speed.
func (f *Force) apply(d *Drawable) {
	d.X += f.X * f.Speed
	d.Y += f.Y * f.Speed
}

// AppendForce folds the incoming force's magnitude into main, combining the
// speeds by vector addition and clamping the result to main's MaxSpeed when
// one is set. The incoming force is copied, never retained or mutated.
func AppendForce(main *Force, incoming Force) {
	dot := main.X*incoming.X + main.Y*incoming.Y
	main.Speed = math.Sqrt(main.Speed*main.Speed +
		incoming.Speed*incoming.Speed +
		2*main.Speed*incoming.Speed*dot)
	if main.MaxSpeed > 0 && main.Speed > main.MaxSpeed {
		main.Speed = main.MaxSpeed
	}
}

// ColliderLabel is a derived axis-aligned box recomputed from its owning
// drawable every physics step. Group scopes collision tests: only labels in
// the same group are tested against each other. ColliderID is the owning
// physics controller's id.
type ColliderLabel struct {
	Box
	Group      uint32
	ColliderID ControllerID
}

// PhysicsBody ties a drawable to a self-re-arming physics controller. Each
// step the controller refreshes the body's collider label, integrates
// pending forces (Dynamic only), and rebuilds the list of same-group
// colliders currently overlapping this body (Dynamic and Static).
type PhysicsBody struct {
	ctrlID   ControllerID
	drawable *Drawable

	Kind  BodyKind
	Group uint32

	forces    []Force
	colliding []ColliderLabel
}

// NewPhysicsBody creates a physics body for the drawable and registers its
// recurring controller on the scene. The controller is armed immediately and
// keeps itself armed, so the body steps on every eligible update tick; use
// SetDelay to slow it down.
func (r *Runtime) NewPhysicsBody(sc *Scene, d *Drawable, kind BodyKind, group uint32) *PhysicsBody {
	b := &PhysicsBody{
		drawable: d,
		Kind:     kind,
		Group:    group,
	}
	b.ctrlID = r.CreateController(sc, EventTick, b, func(rt *Runtime, c *Controller) bool {
		b.step(rt.scene)
		return true // physics controllers always re-arm themselves
	})
	ctrl := sc.LookupController(b.ctrlID)
	ctrl.Arm()

	bounds := d.Bounds()
	sc.addCollider(ColliderLabel{
		Box:        bounds,
		Group:      group,
		ColliderID: b.ctrlID,
	})
	return b
}

// ControllerID returns the id of the body's underlying controller.
func (b *PhysicsBody) ControllerID() ControllerID { return b.ctrlID }

// Drawable returns the drawable driven by this body.
func (b *PhysicsBody) Drawable() *Drawable { return b.drawable }

// SetDelay sets the interval between physics steps for this body.
func (b *PhysicsBody) SetDelay(sc *Scene, d time.Duration) {
	if c := sc.LookupController(b.ctrlID); c != nil {
		c.SetDelay(d)
	}
}

// ApplyForce queues a force for the next step. The force is copied.
func (b *PhysicsBody) ApplyForce(f Force) {
	b.forces = append(b.forces, f)
}

// Forces returns the pending force list.
// The returned slice MUST NOT be mutated.
func (b *PhysicsBody) Forces() []Force { return b.forces }

// AnyCollision reports whether the body overlapped anything in its group on
// the most recent step.
func (b *PhysicsBody) AnyCollision() bool { return len(b.colliding) > 0 }

// Colliding returns the labels overlapping this body as of the most recent
// step. The returned slice MUST NOT be mutated.
func (b *PhysicsBody) Colliding() []ColliderLabel { return b.colliding }

// Remove detaches the body from the scene: its controller and collider label
// are removed and no further steps run. Idempotent.
func (b *PhysicsBody) Remove(sc *Scene) {
	sc.RemoveController(b.ctrlID)
	sc.removeCollider(b.ctrlID)
}

// step performs one physics update. Order matters: the label is refreshed
// from the drawable before forces move it, so the scan below compares the
// positions every body published this tick.
func (b *PhysicsBody) step(sc *Scene) {
	var own ColliderLabel
	if i := sc.colliderAt(b.ctrlID); i >= 0 {
		sc.colliders[i].Box = b.drawable.Bounds()
		own = sc.colliders[i]
	}

	if b.Kind == Dynamic {
		b.integrateForces()
	}

	if b.Kind == Dynamic || b.Kind == Static {
		b.colliding = b.colliding[:0]
		for _, other := range sc.colliders {
			if other.Group != b.Group || other.ColliderID == b.ctrlID {
				continue
			}
			if own.Overlaps(other.Box) {
				b.colliding = append(b.colliding, other)
			}
		}
	}
}

// integrateForces applies each pending force once, then expires it according
// to its Times counter: 0 expires after this application, k > 0 after k
// applications total, negative never.
func (b *PhysicsBody) integrateForces() {
	kept := b.forces[:0]
	for i := range b.forces {
		f := &b.forces[i]
		f.apply(b.drawable)
		switch {
		case f.Times < 0:
			kept = append(kept, *f)
		case f.Times == 0:
			// expired
		default:
			f.Times--
			if f.Times > 0 {
				kept = append(kept, *f)
			}
		}
	}
	b.forces = kept
}
