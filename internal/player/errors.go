package player

import "errors"

var (
	// ErrRunning indicates a request that needs an idle or finished driver.
	ErrRunning = errors.New("player: a run is in progress")

	// ErrNotRunning indicates Advance without a prior Start.
	ErrNotRunning = errors.New("player: no run in progress")

	// ErrStaleRun indicates a step requested for a run that a reset or
	// restart has already abandoned.
	ErrStaleRun = errors.New("player: stale run epoch")
)
