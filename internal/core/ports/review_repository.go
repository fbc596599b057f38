package ports

import (
	"context"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for review records.
type ReviewRepository interface {
	// Add persists a new review record.
	Add(ctx context.Context, record *review.ReviewRecord) error

	// Update persists a decision on an existing review record.
	Update(ctx context.Context, record *review.ReviewRecord) error

	// Get retrieves a review record by id.
	Get(ctx context.Context, id kernel.UUID) (*review.ReviewRecord, error)

	// GetPendingForLine retrieves the open record for a line in the given
	// phase. At most one pending record exists per line and phase.
	GetPendingForLine(ctx context.Context, lineID kernel.UUID, phase review.Phase) (*review.ReviewRecord, error)
}
