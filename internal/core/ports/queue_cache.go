package ports

import (
	"context"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
)

// WorkCenterQueueItem is one row of a work center's pending-step queue as
// shown on the operator terminal.
type WorkCenterQueueItem struct {
	OrderID      kernel.UUID
	LineID       kernel.UUID
	StepID       kernel.UUID
	StepCode     string
	StepName     string
	StepSequence int
	StepState    string
	ScanInUtc    *time.Time
}

// WorkCenterQueueCache caches each work center's queue so operator
// terminals can poll cheaply between refreshes. A cache miss falls back
// to the database query; Invalidate is called whenever a step at the
// work center changes.
type WorkCenterQueueCache interface {
	// Get returns the cached queue and true, or ok=false on a miss.
	Get(ctx context.Context, workCenterID kernel.UUID) (items []WorkCenterQueueItem, ok bool, err error)

	// Put stores a freshly computed queue with the cache's TTL.
	Put(ctx context.Context, workCenterID kernel.UUID, items []WorkCenterQueueItem) error

	// Invalidate drops the cached queue for a work center.
	Invalidate(ctx context.Context, workCenterID kernel.UUID) error
}
