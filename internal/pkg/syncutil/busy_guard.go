// Package syncutil provides the small concurrency helpers required by the
// interaction model: a per-action busy guard that refuses re-entrant
// invocations, and a generation counter used to discard stale results of
// selection-driven loads.
package syncutil

import "sync"

// BusyGuard tracks in-flight mutating actions keyed by action name and
// logical target (a step, an order, a board row). Only one action per key may
// be in flight at a time; callers must release the key once the action
// resolves, successfully or not.
type BusyGuard struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewBusyGuard creates an empty busy guard.
func NewBusyGuard() *BusyGuard {
	return &BusyGuard{inFlight: make(map[string]struct{})}
}

// TryAcquire marks the (action, target) pair as busy. Returns false if an
// action with the same key is already in flight.
func (g *BusyGuard) TryAcquire(action, target string) bool {
	key := action + "\x00" + target
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.inFlight[key]; busy {
		return false
	}
	g.inFlight[key] = struct{}{}
	return true
}

// Release clears the busy mark for the (action, target) pair. Releasing a
// key that is not held is a no-op.
func (g *BusyGuard) Release(action, target string) {
	key := action + "\x00" + target
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inFlight, key)
}
