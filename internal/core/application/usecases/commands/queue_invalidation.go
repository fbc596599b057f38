package commands

import (
	"context"
	"log/slog"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/ports"
)

// invalidateQueue drops a work center's cached queue after a committed
// step mutation. Invalidation is best-effort: a failure leaves a stale
// entry that self-heals on TTL, so the error is logged and swallowed.
func invalidateQueue(ctx context.Context, cache ports.WorkCenterQueueCache, workCenterID kernel.UUID) {
	if err := cache.Invalidate(ctx, workCenterID); err != nil {
		slog.DebugContext(ctx, "Work center queue invalidation failed",
			"workCenterId", workCenterID.String(), "error", err)
	}
}
