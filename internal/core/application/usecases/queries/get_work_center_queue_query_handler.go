package queries

import (
	"context"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/route"
	"shopfloor/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWorkCenterQueueQueryHandler serves the operator terminal's queue
// poll. Results come from the cache when present; a miss falls through to
// the database and repopulates the cache. Cache failures degrade to the
// database, never to an error.
type GetWorkCenterQueueQueryHandler struct {
	db    *gorm.DB
	cache ports.WorkCenterQueueCache
}

// NewGetWorkCenterQueueQueryHandler creates a handler for queue queries.
func NewGetWorkCenterQueueQueryHandler(
	db *gorm.DB,
	cache ports.WorkCenterQueueCache,
) GetWorkCenterQueueQueryHandler {
	return GetWorkCenterQueueQueryHandler{db: db, cache: cache}
}

// Handle executes the query. In-progress steps come first so the operator
// sees their active work at the top, then pending steps by sequence.
func (h GetWorkCenterQueueQueryHandler) Handle(
	ctx context.Context,
	query GetWorkCenterQueueQuery,
) ([]ports.WorkCenterQueueItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if items, ok, err := h.cache.Get(ctx, query.WorkCenterID()); err == nil && ok {
		return items, nil
	}

	items, err := h.loadQueue(ctx, query.WorkCenterID())
	if err != nil {
		return nil, err
	}

	_ = h.cache.Put(ctx, query.WorkCenterID(), items)
	return items, nil
}

// ActiveWorkCenterIDs lists every work center that currently has pending
// or in-progress steps. The refresh job iterates this set.
func (h GetWorkCenterQueueQueryHandler) ActiveWorkCenterIDs(ctx context.Context) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT work_center_id
		FROM route_steps
		WHERE state IN (?, ?)
	`, int(route.StepPending), int(route.StepInProgress)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var raw uuid.UUID
		if err = rows.Scan(&raw); err != nil {
			return nil, err
		}
		id, convErr := kernel.UUIDFromBytes(raw[:])
		if convErr != nil {
			return nil, convErr
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// Refresh recomputes one work center's queue from the database and
// rewrites the cache entry, bypassing whatever is cached.
func (h GetWorkCenterQueueQueryHandler) Refresh(ctx context.Context, workCenterID kernel.UUID) error {
	if err := workCenterID.Validate(); err != nil {
		return err
	}

	items, err := h.loadQueue(ctx, workCenterID)
	if err != nil {
		return err
	}
	return h.cache.Put(ctx, workCenterID, items)
}

func (h GetWorkCenterQueueQueryHandler) loadQueue(
	ctx context.Context,
	workCenterID kernel.UUID,
) ([]ports.WorkCenterQueueItem, error) {
	items := make([]ports.WorkCenterQueueItem, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ol.order_id,
			ri.line_id,
			s.id,
			s.code,
			s.name,
			s.sequence,
			s.state,
			s.scan_in_utc
		FROM route_steps s
		JOIN route_instances ri ON ri.id = s.route_instance_id
		JOIN order_lines ol ON ol.id = ri.line_id
		WHERE s.work_center_id = ?
		  AND s.state IN (?, ?)
		ORDER BY s.state DESC, s.sequence, s.id
	`, workCenterID.Bytes(), int(route.StepPending), int(route.StepInProgress)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item ports.WorkCenterQueueItem
		var orderID, lineID, stepID uuid.UUID
		var state int

		err = rows.Scan(
			&orderID,
			&lineID,
			&stepID,
			&item.StepCode,
			&item.StepName,
			&item.StepSequence,
			&state,
			&item.ScanInUtc,
		)
		if err != nil {
			return nil, err
		}

		if item.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if item.LineID, err = kernel.UUIDFromBytes(lineID[:]); err != nil {
			return nil, err
		}
		if item.StepID, err = kernel.UUIDFromBytes(stepID[:]); err != nil {
			return nil, err
		}
		item.StepState = route.StepState(state).String()
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
