// Package plume is a small fixed-timestep 2D runtime for [Ebitengine].
//
// Plume provides the update/render loop, a priority-ordered layer scheduler,
// event-driven controllers with delay throttling, a cooperative per-layer
// sleep timer, and a minimal AABB physics controller built on top of the
// controller dispatch.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and drives
// the loop for you:
//
//	rt := plume.NewRuntime(plume.DefaultConfig())
//	scene := plume.NewScene("main")
//	scene.AddLayer(&plume.Layer{
//		Name:     "game",
//		Schedule: plume.Forever(),
//		Update:   func(rt *plume.Runtime) { /* per-tick logic */ },
//	})
//	rt.SetScene(scene)
//	plume.Run(rt)
//
// For headless use (servers, tests, tools) call [Runtime.RunHeadless], or
// drive individual frames yourself with [Runtime.Frame].
//
// # Layers
//
// A [Layer] is a scheduled update unit. Its [Schedule] either runs forever,
// once per update tick, or a fixed number of times before the scheduler
// removes it. N-shot layers run before steady-state layers, which makes them
// natural one-time initializers.
//
// # Controllers
//
// A [Controller] is an event-triggered callback. Input events polled at the
// start of each frame mark matching controllers pending; pending controllers
// fire during the update tick, no earlier than their configured delay since
// the previous invocation. A handler that returns true stays armed and fires
// again on the next eligible tick, which is how recurring work such as the
// physics step keeps itself running. [KeyboardController] and
// [MouseController] demultiplex per-key and per-button bindings over a fixed
// set of base controllers.
//
// # Physics
//
// [Runtime.NewPhysicsBody] attaches a self-re-arming controller to a
// [Drawable].
// Each step it integrates queued forces into the drawable's position,
// refreshes the body's collider box in the scene, and collects overlapping
// same-group colliders. Only axis-aligned overlap and simple force summation
// are provided.
//
// [Ebitengine]: https://ebitengine.org
package plume
