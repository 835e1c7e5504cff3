package reconcile

import (
	"errors"
	"sync"
)

// ErrSyncInProgress is returned by Guard.TryAcquire while a sync of the
// same feed is still running. It signals "try again later", not a failure
// of the underlying sync.
var ErrSyncInProgress = errors.New("sync already in progress")

// maxSkips is the number of overlapping invocations a running sync may turn
// away before the guard assumes the run is stuck and lets the next
// invocation through. A failsafe against permanent lockup, not a
// throughput control.
const maxSkips = 4

// State describes what a Guard currently holds.
type State int

const (
	// Idle means no sync is running.
	Idle State = iota
	// Running means a sync is in flight and nothing has been turned away yet.
	Running
	// Busy means a sync is in flight and at least one invocation has been
	// skipped.
	Busy
)

// Guard is the per-feed single-flight guard. Each feed owns exactly one
// Guard; different feeds never share one, so independent feeds can sync
// concurrently.
type Guard struct {
	mu      sync.Mutex
	running bool
	skips   int
}

// TryAcquire attempts to start a sync. It returns ErrSyncInProgress while a
// previous sync of the same feed is still running. After maxSkips rejected
// attempts the guard considers the in-flight run stuck and admits the next
// invocation anyway.
//
// A caller that acquires the guard must call Release when its sync
// finishes, successfully or not.
func (g *Guard) TryAcquire() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.running {
		if g.skips < maxSkips {
			g.skips++
			return ErrSyncInProgress
		}
		// Failsafe: the run holding the guard has turned away maxSkips
		// invocations without completing. Let this one through so the
		// feed cannot get permanently stuck.
		g.skips = 0
		return nil
	}

	g.running = true
	g.skips = 0
	return nil
}

// Release marks the sync as finished and returns the guard to Idle.
func (g *Guard) Release() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.running = false
	g.skips = 0
}

// State returns the guard's current state.
func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch {
	case !g.running:
		return Idle
	case g.skips > 0:
		return Busy
	default:
		return Running
	}
}
