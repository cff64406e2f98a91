package plume

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestControllerFiresOncePerEvent(t *testing.T) {
	rt, _, sc := newTestRuntime(t)

	fired := 0
	rt.CreateController(sc, EventKeyDown, nil, func(*Runtime, *Controller) bool {
		fired++
		return false
	})

	rt.PushEvent(Event{Type: EventKeyDown, Key: ebiten.KeyA})
	if err := rt.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}

	// No new event: the controller stays idle.
	if err := rt.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if fired != 1 {
		t.Errorf("fired = %d after idle tick, want 1", fired)
	}
}

func TestControllerIgnoresOtherEventTypes(t *testing.T) {
	rt, _, sc := newTestRuntime(t)

	fired := 0
	rt.CreateController(sc, EventKeyUp, nil, func(*Runtime, *Controller) bool {
		fired++
		return false
	})

	rt.PushEvent(Event{Type: EventKeyDown, Key: ebiten.KeyA})
	if err := rt.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if fired != 0 {
		t.Errorf("fired = %d, want 0", fired)
	}
}

func TestControllerDelayThrottle(t *testing.T) {
	rt, clock, sc := newTestRuntime(t)

	fired := 0
	id := rt.CreateController(sc, EventKeyDown, nil, func(*Runtime, *Controller) bool {
		fired++
		return false
	})
	sc.LookupController(id).SetDelay(100 * time.Millisecond)

	rt.PushEvent(Event{Type: EventKeyDown})
	if err := rt.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}

	// A second event inside the delay window marks the controller pending
	// but does not fire it.
	rt.PushEvent(Event{Type: EventKeyDown})
	if err := rt.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if fired != 1 {
		t.Errorf("fired = %d inside delay window, want 1", fired)
	}
	if !sc.LookupController(id).Armed() {
		t.Error("controller lost its pending mark while throttled")
	}

	// Once the delay elapses, the retained pending mark fires without a new
	// event.
	clock.Advance(100 * time.Millisecond)
	if err := rt.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if fired != 2 {
		t.Errorf("fired = %d after delay elapsed, want 2", fired)
	}
}

func TestHandlerRearm(t *testing.T) {
	rt, _, sc := newTestRuntime(t)

	fired := 0
	rt.CreateController(sc, EventKeyDown, nil, func(*Runtime, *Controller) bool {
		fired++
		return true
	})

	rt.PushEvent(Event{Type: EventKeyDown})
	for i := 0; i < 3; i++ {
		if err := rt.Step(); err != nil {
			t.Fatalf("Step() = %v", err)
		}
	}
	if fired != 3 {
		t.Errorf("fired = %d, want 3 (one per tick while re-armed)", fired)
	}
}

func TestArmFiresWithoutEvent(t *testing.T) {
	rt, _, sc := newTestRuntime(t)

	fired := 0
	id := rt.CreateController(sc, EventKeyDown, nil, func(*Runtime, *Controller) bool {
		fired++
		return false
	})
	sc.LookupController(id).Arm()

	if err := rt.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
}

func TestRemoveControllerIdempotent(t *testing.T) {
	rt, _, sc := newTestRuntime(t)

	id := rt.CreateController(sc, EventKeyDown, nil, nil)
	if sc.LookupController(id) == nil {
		t.Fatal("controller not registered")
	}
	sc.RemoveController(id)
	if sc.LookupController(id) != nil {
		t.Error("controller still registered after removal")
	}
	// Removing again must be a no-op.
	sc.RemoveController(id)
	if got := len(sc.Controllers()); got != 0 {
		t.Errorf("len(Controllers()) = %d, want 0", got)
	}
}

func TestHandlerRemovesSelf(t *testing.T) {
	rt, _, sc := newTestRuntime(t)

	fired := 0
	var id ControllerID
	id = rt.CreateController(sc, EventKeyDown, nil, func(rt *Runtime, c *Controller) bool {
		fired++
		rt.Scene().RemoveController(id)
		return false
	})

	rt.PushEvent(Event{Type: EventKeyDown})
	if err := rt.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	rt.PushEvent(Event{Type: EventKeyDown})
	if err := rt.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if fired != 1 {
		t.Errorf("fired = %d, want 1 (controller removed itself)", fired)
	}
}

func TestHandlerRemovesPeerInSamePass(t *testing.T) {
	rt, _, sc := newTestRuntime(t)

	var peerID ControllerID
	rt.CreateController(sc, EventKeyDown, nil, func(rt *Runtime, c *Controller) bool {
		rt.Scene().RemoveController(peerID)
		return false
	})
	peerFired := 0
	peerID = rt.CreateController(sc, EventKeyDown, nil, func(*Runtime, *Controller) bool {
		peerFired++
		return false
	})

	rt.PushEvent(Event{Type: EventKeyDown})
	if err := rt.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if peerFired != 0 {
		t.Errorf("peerFired = %d, want 0 (removed earlier in the pass)", peerFired)
	}
}

func TestEventPayloadDelivered(t *testing.T) {
	rt, _, sc := newTestRuntime(t)

	var got Event
	rt.CreateController(sc, EventKeyDown, nil, func(_ *Runtime, c *Controller) bool {
		got = c.Event()
		return false
	})

	rt.PushEvent(Event{Type: EventKeyDown, Key: ebiten.KeyW})
	if err := rt.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if got.Key != ebiten.KeyW {
		t.Errorf("delivered key = %v, want KeyW", got.Key)
	}
}

func TestPendingControllerKeepsFirstEvent(t *testing.T) {
	rt, _, sc := newTestRuntime(t)

	var keys []ebiten.Key
	rt.CreateController(sc, EventKeyDown, nil, func(_ *Runtime, c *Controller) bool {
		keys = append(keys, c.Event().Key)
		return false
	})

	// Two matching events in one input phase: one invocation, first payload.
	rt.PushEvent(Event{Type: EventKeyDown, Key: ebiten.KeyA})
	rt.PushEvent(Event{Type: EventKeyDown, Key: ebiten.KeyB})
	if err := rt.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if len(keys) != 1 {
		t.Fatalf("invocations = %d, want 1", len(keys))
	}
	if keys[0] != ebiten.KeyA {
		t.Errorf("payload key = %v, want KeyA", keys[0])
	}
}

func TestControllerIDsMonotonic(t *testing.T) {
	rt, _, sc := newTestRuntime(t)

	a := rt.CreateController(sc, EventKeyDown, nil, nil)
	b := rt.CreateController(sc, EventKeyUp, nil, nil)
	if a != 1 || b != 2 {
		t.Errorf("ids = %d, %d, want 1, 2", a, b)
	}
	sc.RemoveController(a)
	c := rt.CreateController(sc, EventKeyDown, nil, nil)
	if c != 3 {
		t.Errorf("id after removal = %d, want 3 (ids never reused)", c)
	}
}

func TestUserDataCarried(t *testing.T) {
	rt, _, sc := newTestRuntime(t)

	type payload struct{ n int }
	var got any
	id := rt.CreateController(sc, EventKeyDown, &payload{n: 7}, func(_ *Runtime, c *Controller) bool {
		got = c.UserData
		return false
	})
	sc.LookupController(id).Arm()

	if err := rt.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	p, ok := got.(*payload)
	if !ok || p.n != 7 {
		t.Errorf("UserData = %v, want &payload{7}", got)
	}
}
