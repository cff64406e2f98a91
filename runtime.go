package plume

import (
	"context"
	"time"
)

// Config holds the runtime's construction parameters.
type Config struct {
	// Title is the window title used by the windowed driver.
	Title string
	// Width and Height are the window dimensions in pixels.
	Width, Height int

	// FPS is the target frame rate for render pacing. Ignored when
	// Uncapped is set.
	FPS int
	// Uncapped disables the end-of-frame sleep so frames render as fast as
	// the host allows. Update ticks still run at the fixed step.
	Uncapped bool

	// FixedStep is the simulation tick size drained by the accumulator.
	FixedStep time.Duration

	// Clock supplies monotonic time. Defaults to the system clock; tests
	// substitute a ManualClock.
	Clock Clock
}

// DefaultConfig returns the standard configuration: 640x480 window, 60 FPS
// cap, 60 updates per second.
func DefaultConfig() Config {
	return Config{
		Title:     "plume",
		Width:     640,
		Height:    480,
		FPS:       60,
		FixedStep: time.Second / 60,
	}
}

// Runtime orchestrates the clock, the active scene, the layer scheduler, and
// controller dispatch across the classic input → fixed-step update(s) →
// render cycle.
//
// The runtime is strictly single-threaded and cooperative: all scene
// mutation happens from the update phase, suspension is emulated by deadline
// checks on later ticks, and nothing in the core blocks.
type Runtime struct {
	cfg   Config
	clock Clock
	scene *Scene

	// Per-runtime id counters (never reused, deterministic in tests).
	nextControllerID uint32
	nextDrawableID   uint32

	events  []Event
	ctrlBuf []*Controller
	script  *Script

	textures map[string]*Texture

	started  bool
	lastTick time.Time
	debt     time.Duration

	exited bool

	windowW, windowH int

	debug bool
	stats frameStats
}

// NewRuntime creates a runtime from the config. Zero config fields fall back
// to DefaultConfig values.
func NewRuntime(cfg Config) *Runtime {
	def := DefaultConfig()
	if cfg.Title == "" {
		cfg.Title = def.Title
	}
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.FPS <= 0 {
		cfg.FPS = def.FPS
	}
	if cfg.FixedStep <= 0 {
		cfg.FixedStep = def.FixedStep
	}
	if cfg.Clock == nil {
		cfg.Clock = NewSystemClock()
	}
	return &Runtime{
		cfg:     cfg,
		clock:   cfg.Clock,
		windowW: cfg.Width,
		windowH: cfg.Height,
	}
}

// Config returns the runtime's effective configuration.
func (r *Runtime) Config() Config { return r.cfg }

// Clock returns the runtime's clock.
func (r *Runtime) Clock() Clock { return r.clock }

// Scene returns the active scene, or nil before SetScene.
func (r *Runtime) Scene() *Scene { return r.scene }

// SetScene installs the initial scene before the loop starts. Equivalent to
// SwapScene; both sort the scene's layers for scheduling.
func (r *Runtime) SetScene(sc *Scene) { r.SwapScene(sc) }

// SwapScene makes sc the active scene. The previous scene keeps its state
// and can be swapped back in later. N-shot layers that already ran are not
// reset; reset them manually before swapping if they should run again.
func (r *Runtime) SwapScene(sc *Scene) {
	r.scene = sc
	if sc != nil {
		sc.sortLayers()
	}
}

// PushEvent queues an event for the next input phase. This is how the
// windowed driver, the script runner, and tests feed input; events are
// dispatched in queue order.
func (r *Runtime) PushEvent(evt Event) {
	r.events = append(r.events, evt)
}

// Exit requests an orderly shutdown: the active scene's collections are
// released and the next Frame call returns ErrExit.
func (r *Runtime) Exit() {
	if r.scene != nil {
		r.scene.release()
	}
	r.exited = true
}

// Exited reports whether Exit has been called.
func (r *Runtime) Exited() bool { return r.exited }

// SetWindowSize records the drawable surface size reported by the driver.
func (r *Runtime) SetWindowSize(w, h int) {
	r.windowW = w
	r.windowH = h
}

// WindowSize returns the current window dimensions.
func (r *Runtime) WindowSize() (w, h int) { return r.windowW, r.windowH }

// Frame advances one loop iteration: it measures elapsed time, runs the
// input phase, and drains the accumulated debt in fixed-size update ticks.
// Rendering happens separately (the windowed driver draws after Frame; a
// headless runtime has nothing to draw).
//
// Frame returns ErrNoScene whenever no scene is configured, including after
// SwapScene(nil). After Exit, Frame returns ErrExit.
func (r *Runtime) Frame() error {
	if r.exited {
		return ErrExit
	}
	if r.scene == nil {
		return ErrNoScene
	}
	now := r.clock.Now()
	if !r.started {
		r.scene.sortLayers()
		r.lastTick = now
		r.started = true
	}
	r.debt += now.Sub(r.lastTick)
	r.lastTick = now

	t0 := now
	r.inputPhase()
	if r.exited {
		return ErrExit
	}
	if r.debug {
		r.stats.inputTime = r.clock.Now().Sub(t0)
	}

	t0 = r.clock.Now()
	ticks := 0
	for r.debt >= r.cfg.FixedStep {
		// A layer may have swapped the scene away mid-frame.
		if r.scene == nil {
			return ErrNoScene
		}
		r.updateTick(r.clock.Now())
		r.debt -= r.cfg.FixedStep
		ticks++
		if r.exited {
			return ErrExit
		}
	}
	if r.debug {
		r.stats.updateTime = r.clock.Now().Sub(t0)
		r.stats.updateTicks = ticks
		r.stats.frames++
		r.debugLog()
	}
	return nil
}

// Step runs the input phase and exactly one update tick, ignoring the
// accumulator. Useful for tools and tests that drive the scheduler
// directly.
func (r *Runtime) Step() error {
	if r.exited {
		return ErrExit
	}
	if r.scene == nil {
		return ErrNoScene
	}
	if !r.started {
		r.scene.sortLayers()
		r.lastTick = r.clock.Now()
		r.started = true
	}
	r.inputPhase()
	if r.exited {
		return ErrExit
	}
	r.updateTick(r.clock.Now())
	if r.exited {
		return ErrExit
	}
	return nil
}

// inputPhase drains the queued events: a quit event triggers Exit, anything
// else marks matching controllers pending. The script runner (if attached)
// injects its next step first.
func (r *Runtime) inputPhase() {
	if r.script != nil {
		r.script.step(r)
	}
	for _, evt := range r.events {
		if evt.Type == EventQuit {
			r.Exit()
			break
		}
		markPending(r.scene, evt)
	}
	r.events = r.events[:0]
}

// updateTick runs one fixed-step update: pending controllers first, then the
// layer scheduler.
func (r *Runtime) updateTick(now time.Time) {
	r.dispatchControllers(r.scene, now)
	r.runLayers(r.scene)
}

// RunHeadless drives the loop without a window until the context is
// cancelled, Exit is called, or a phase fails. Frames are paced at the
// configured FPS unless Uncapped is set, in which case the loop spins as
// fast as Frame returns. Update ticks still drain at the fixed step either
// way.
func (r *Runtime) RunHeadless(ctx context.Context) error {
	if r.cfg.Uncapped {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			if err := r.Frame(); err != nil {
				return exitToNil(err)
			}
		}
	}

	interval := time.Second / time.Duration(r.cfg.FPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := r.Frame(); err != nil {
				return exitToNil(err)
			}
		}
	}
}

// exitToNil maps the orderly-exit sentinel to a clean return.
func exitToNil(err error) error {
	if err == ErrExit {
		return nil
	}
	return err
}
