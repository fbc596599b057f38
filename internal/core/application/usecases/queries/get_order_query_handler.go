package queries

import (
	"context"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads the order detail projection straight from
// the database, bypassing the aggregate.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. The hold sub-object is present only while a
// hold overlay is applied.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	var resp GetOrderQueryResponse
	if err := query.Validate(); err != nil {
		return resp, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			site_id,
			order_date,
			status,
			hold_type,
			hold_reason_code,
			hold_owner_role,
			hold_note,
			ready_for_pickup_date,
			pickup_scheduled_date,
			received_date,
			production_complete_date,
			invoice_ready_date,
			invoiced_date
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return resp, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return resp, err
		}
		return resp, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}

	var (
		id                 uuid.UUID
		customerID, siteID *uuid.UUID
		status             int
		holdType           *int
		holdReasonCode     string
		holdOwnerRole      *int
		holdNote           string
	)
	err = rows.Scan(
		&id,
		&customerID,
		&siteID,
		&resp.OrderDate,
		&status,
		&holdType,
		&holdReasonCode,
		&holdOwnerRole,
		&holdNote,
		&resp.ReadyForPickupDate,
		&resp.PickupScheduledDate,
		&resp.ReceivedDate,
		&resp.ProductionCompleteDate,
		&resp.InvoiceReadyDate,
		&resp.InvoicedDate,
	)
	if err != nil {
		return resp, err
	}
	if err = rows.Err(); err != nil {
		return resp, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return resp, err
	}
	if resp.CustomerID, err = optionalUUID(customerID); err != nil {
		return resp, err
	}
	if resp.SiteID, err = optionalUUID(siteID); err != nil {
		return resp, err
	}

	lifecycle := order.LifecycleStatus(status)
	resp.LifecycleStatus = lifecycle.String()
	resp.LegacyStatus = order.LegacyFromLifecycle(lifecycle).String()

	if holdType != nil {
		ownerRole := kernel.RoleOperator
		if holdOwnerRole != nil {
			ownerRole = kernel.Role(*holdOwnerRole)
		}
		resp.Hold = &OrderHoldResponse{
			HoldType:   order.HoldType(*holdType).String(),
			ReasonCode: holdReasonCode,
			OwnerRole:  ownerRole.String(),
			Note:       holdNote,
		}
	}

	resp.Lines, err = h.loadLines(ctx, query.OrderID())
	return resp, err
}

func (h GetOrderQueryHandler) loadLines(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderLineResponse, error) {
	lines := make([]OrderLineResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			line_no,
			item_id,
			quantity_ordered,
			quantity_received
		FROM order_lines
		WHERE order_id = ?
		ORDER BY line_no
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line OrderLineResponse
		var id, itemID uuid.UUID

		err = rows.Scan(&id, &line.LineNo, &itemID, &line.QuantityOrdered, &line.QuantityReceived)
		if err != nil {
			return nil, err
		}

		if line.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if line.ItemID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// optionalUUID converts a nullable database uuid into a kernel UUID.
func optionalUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
