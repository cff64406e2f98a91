package plume

import (
	"context"
	"errors"
	"testing"
	"time"
)

// newTestRuntime builds a headless runtime on a manual clock with a fresh
// scene installed. Shared by most tests in the package.
func newTestRuntime(t *testing.T) (*Runtime, *ManualClock, *Scene) {
	t.Helper()
	clock := NewManualClock()
	rt := NewRuntime(Config{Clock: clock, FixedStep: time.Second / 60})
	sc := NewScene("test")
	rt.SetScene(sc)
	return rt, clock, sc
}

func TestFrameWithoutScene(t *testing.T) {
	rt := NewRuntime(Config{Clock: NewManualClock()})
	if err := rt.Frame(); !errors.Is(err, ErrNoScene) {
		t.Errorf("Frame() = %v, want ErrNoScene", err)
	}
}

func TestStepWithoutScene(t *testing.T) {
	rt := NewRuntime(Config{Clock: NewManualClock()})
	if err := rt.Step(); !errors.Is(err, ErrNoScene) {
		t.Errorf("Step() = %v, want ErrNoScene", err)
	}
}

func TestDefaultsApplied(t *testing.T) {
	rt := NewRuntime(Config{})
	cfg := rt.Config()
	if cfg.Width != 640 || cfg.Height != 480 {
		t.Errorf("window = %dx%d, want 640x480", cfg.Width, cfg.Height)
	}
	if cfg.FPS != 60 {
		t.Errorf("FPS = %d, want 60", cfg.FPS)
	}
	if cfg.FixedStep != time.Second/60 {
		t.Errorf("FixedStep = %v, want %v", cfg.FixedStep, time.Second/60)
	}
	if cfg.Clock == nil {
		t.Error("Clock not defaulted")
	}
}

func TestAccumulatorDrainsWholeSteps(t *testing.T) {
	rt, clock, sc := newTestRuntime(t)
	step := rt.Config().FixedStep

	ticks := 0
	sc.AddLayer(&Layer{
		Name:     "counter",
		Schedule: Forever(),
		Update:   func(*Runtime) { ticks++ },
	})

	// First frame establishes the baseline; no time has passed.
	if err := rt.Frame(); err != nil {
		t.Fatalf("Frame() = %v", err)
	}
	if ticks != 0 {
		t.Fatalf("ticks after baseline frame = %d, want 0", ticks)
	}

	// Three and a half steps of elapsed time drain three ticks.
	clock.Advance(3*step + step/2)
	if err := rt.Frame(); err != nil {
		t.Fatalf("Frame() = %v", err)
	}
	if ticks != 3 {
		t.Errorf("ticks = %d, want 3", ticks)
	}

	// The half-step remainder carries over: another half step makes a
	// whole one.
	clock.Advance(step / 2)
	if err := rt.Frame(); err != nil {
		t.Fatalf("Frame() = %v", err)
	}
	if ticks != 4 {
		t.Errorf("ticks = %d, want 4", ticks)
	}
}

func TestStepRunsExactlyOneTick(t *testing.T) {
	rt, clock, sc := newTestRuntime(t)

	ticks := 0
	sc.AddLayer(&Layer{
		Name:     "counter",
		Schedule: Forever(),
		Update:   func(*Runtime) { ticks++ },
	})

	// Pile up debt; Step must ignore it.
	clock.Advance(10 * rt.Config().FixedStep)
	if err := rt.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if ticks != 1 {
		t.Errorf("ticks = %d, want 1", ticks)
	}
}

func TestExitMakesFrameReturnErrExit(t *testing.T) {
	rt, _, sc := newTestRuntime(t)
	sc.AddLayer(&Layer{Name: "noop", Schedule: Forever()})

	rt.Exit()
	if !rt.Exited() {
		t.Error("Exited() = false after Exit")
	}
	if err := rt.Frame(); !errors.Is(err, ErrExit) {
		t.Errorf("Frame() = %v, want ErrExit", err)
	}
	if got := len(sc.Layers()); got != 0 {
		t.Errorf("layers after Exit = %d, want 0 (scene released)", got)
	}
}

func TestQuitEventTriggersExit(t *testing.T) {
	rt, _, _ := newTestRuntime(t)
	rt.PushEvent(Event{Type: EventQuit})
	if err := rt.Frame(); !errors.Is(err, ErrExit) {
		t.Errorf("Frame() = %v, want ErrExit", err)
	}
	if !rt.Exited() {
		t.Error("Exited() = false after quit event")
	}
}

func TestSwapSceneSortsLayers(t *testing.T) {
	rt, _, _ := newTestRuntime(t)

	sc := NewScene("next")
	sc.AddLayer(&Layer{Name: "steady", Schedule: Forever(), Priority: 1})
	sc.AddLayer(&Layer{Name: "init", Schedule: Times(1)})
	rt.SwapScene(sc)

	layers := sc.Layers()
	if len(layers) != 2 {
		t.Fatalf("len(layers) = %d, want 2", len(layers))
	}
	if layers[0].Name != "init" || layers[1].Name != "steady" {
		t.Errorf("order = [%s %s], want [init steady]", layers[0].Name, layers[1].Name)
	}
	if rt.Scene() != sc {
		t.Error("Scene() did not switch")
	}
}

func TestFrameAfterSwapToNilScene(t *testing.T) {
	rt, clock, sc := newTestRuntime(t)
	sc.AddLayer(&Layer{Name: "noop", Schedule: Forever()})

	if err := rt.Frame(); err != nil {
		t.Fatalf("Frame() = %v", err)
	}

	rt.SwapScene(nil)
	rt.PushEvent(Event{Type: EventKeyDown})
	clock.Advance(rt.Config().FixedStep)
	if err := rt.Frame(); !errors.Is(err, ErrNoScene) {
		t.Errorf("Frame() after SwapScene(nil) = %v, want ErrNoScene", err)
	}
}

func TestFrameSwapToNilSceneMidTick(t *testing.T) {
	rt, clock, sc := newTestRuntime(t)

	runs := 0
	sc.AddLayer(&Layer{
		Name:     "vanish",
		Schedule: Forever(),
		Update: func(rt *Runtime) {
			runs++
			rt.SwapScene(nil)
		},
	})

	if err := rt.Frame(); err != nil {
		t.Fatalf("Frame() = %v", err)
	}
	// Three ticks of debt, but the scene vanishes during the first one.
	clock.Advance(3 * rt.Config().FixedStep)
	if err := rt.Frame(); !errors.Is(err, ErrNoScene) {
		t.Errorf("Frame() = %v, want ErrNoScene", err)
	}
	if runs != 1 {
		t.Errorf("layer ran %d times after swapping the scene away, want 1", runs)
	}
}

func TestWindowSize(t *testing.T) {
	rt, _, _ := newTestRuntime(t)
	rt.SetWindowSize(800, 600)
	if w, h := rt.WindowSize(); w != 800 || h != 600 {
		t.Errorf("WindowSize() = %dx%d, want 800x600", w, h)
	}
}

func TestRunHeadlessUncappedExitsCleanly(t *testing.T) {
	rt, _, _ := newTestRuntime(t)
	rt.cfg.Uncapped = true

	script := NewScript()
	script.InjectQuit()
	rt.AttachScript(script)

	if err := rt.RunHeadless(context.Background()); err != nil {
		t.Errorf("RunHeadless() = %v, want nil", err)
	}
}

func TestRunHeadlessContextCancel(t *testing.T) {
	rt, _, _ := newTestRuntime(t)
	rt.cfg.Uncapped = true

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := rt.RunHeadless(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("RunHeadless() = %v, want context.Canceled", err)
	}
}
