package ports

import (
	"context"

	"shopfloor/internal/core/domain/model/dispatch"
	"shopfloor/internal/core/domain/model/kernel"
)

// DispatchRepository defines the persistence contract for transportation
// records behind the dispatch board.
type DispatchRepository interface {
	// Get retrieves one order's transportation record.
	Get(ctx context.Context, orderID kernel.UUID) (dispatch.Record, error)

	// GetAll retrieves every transportation record, for board loads.
	GetAll(ctx context.Context) ([]dispatch.Record, error)

	// ApplyPatch writes a partial update: only the fields present in the
	// patch are touched, never the whole row.
	ApplyPatch(ctx context.Context, patch dispatch.Patch) error
}
