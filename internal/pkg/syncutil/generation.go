package syncutil

import "sync/atomic"

// Generation is a monotonically increasing counter used to invalidate
// in-flight loads when the selection that triggered them changes. A loader
// captures Current() before starting and applies the result only if
// IsCurrent still holds on completion; otherwise the response is stale and
// must be discarded.
type Generation struct {
	n atomic.Uint64
}

// Next advances the generation and returns the new value. Call it whenever
// the driving selection changes.
func (g *Generation) Next() uint64 {
	return g.n.Add(1)
}

// Current returns the generation value to capture at request start.
func (g *Generation) Current() uint64 {
	return g.n.Load()
}

// IsCurrent reports whether the captured value still matches the latest
// generation.
func (g *Generation) IsCurrent(captured uint64) bool {
	return g.n.Load() == captured
}
