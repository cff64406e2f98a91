package plume

import "errors"

// ErrNoScene is returned when the loop starts without a scene configured.
// It is fatal: the loop aborts before the first tick.
var ErrNoScene = errors.New("plume: no scene configured")

// ErrExit is returned by Frame after Exit has been called. Loop drivers
// treat it as an orderly shutdown, not a failure.
var ErrExit = errors.New("plume: exit requested")
