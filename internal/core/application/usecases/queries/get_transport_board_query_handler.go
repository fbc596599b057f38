package queries

import (
	"context"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTransportBoardQueryHandler reads one page of the dispatch board.
// Rows are ordered by order id so paging is stable between loads.
type GetTransportBoardQueryHandler struct {
	db *gorm.DB
}

// NewGetTransportBoardQueryHandler creates a handler for board queries.
func NewGetTransportBoardQueryHandler(db *gorm.DB) GetTransportBoardQueryHandler {
	return GetTransportBoardQueryHandler{db: db}
}

// Handle executes the query.
func (h GetTransportBoardQueryHandler) Handle(
	ctx context.Context,
	query GetTransportBoardQuery,
) ([]GetTransportBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	board := make([]GetTransportBoardQueryResponse, 0, query.PageSize())
	offset := (query.Page() - 1) * query.PageSize()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.order_id,
			o.status,
			t.trailer_no,
			t.carrier,
			t.dispatch_date,
			t.scheduled_date,
			t.transportation_status,
			t.transportation_notes,
			t.updated_utc
		FROM transport_records t
		JOIN orders o ON o.id = t.order_id
		ORDER BY t.order_id
		LIMIT ? OFFSET ?
	`, query.PageSize(), offset).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetTransportBoardQueryResponse
		var orderID uuid.UUID
		var status int

		err = rows.Scan(
			&orderID,
			&status,
			&row.TrailerNo,
			&row.Carrier,
			&row.DispatchDate,
			&row.ScheduledDate,
			&row.TransportationStatus,
			&row.TransportationNotes,
			&row.UpdatedUtc,
		)
		if err != nil {
			return nil, err
		}

		if row.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		row.LifecycleStatus = order.LifecycleStatus(status).String()
		board = append(board, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return board, nil
}
