package queries

import (
	"context"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/review"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingReviewsQueryHandler reads a review queue from the database.
// Oldest records come first so the queue drains in arrival order.
type GetPendingReviewsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingReviewsQueryHandler creates a handler for review queue queries.
func NewGetPendingReviewsQueryHandler(db *gorm.DB) GetPendingReviewsQueryHandler {
	return GetPendingReviewsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetPendingReviewsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingReviewsQuery,
) ([]GetPendingReviewsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records := make([]GetPendingReviewsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			line_id,
			route_instance_id,
			created_utc
		FROM review_records
		WHERE phase = ?
		  AND decision = ?
		ORDER BY created_utc, id
	`, int(query.Phase()), int(review.DecisionPending)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var record GetPendingReviewsQueryResponse
		var id, orderID, lineID, routeInstanceID uuid.UUID

		err = rows.Scan(&id, &orderID, &lineID, &routeInstanceID, &record.CreatedUtc)
		if err != nil {
			return nil, err
		}

		if record.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if record.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if record.LineID, err = kernel.UUIDFromBytes(lineID[:]); err != nil {
			return nil, err
		}
		if record.RouteInstanceID, err = kernel.UUIDFromBytes(routeInstanceID[:]); err != nil {
			return nil, err
		}
		record.Phase = query.Phase().String()
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
