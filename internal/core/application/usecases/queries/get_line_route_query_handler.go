package queries

import (
	"context"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/route"
	"shopfloor/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLineRouteQueryHandler reads the route execution projection. Ledger
// tallies are computed in SQL so the terminal never loads full ledgers
// just to paint gate indicators.
type GetLineRouteQueryHandler struct {
	db *gorm.DB
}

// NewGetLineRouteQueryHandler creates a handler for route execution queries.
func NewGetLineRouteQueryHandler(db *gorm.DB) GetLineRouteQueryHandler {
	return GetLineRouteQueryHandler{db: db}
}

// Handle executes the query.
func (h GetLineRouteQueryHandler) Handle(
	ctx context.Context,
	query GetLineRouteQuery,
) (GetLineRouteQueryResponse, error) {
	var resp GetLineRouteQueryResponse
	if err := query.Validate(); err != nil {
		return resp, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			state,
			quantity_ordered,
			quantity_received,
			quantity_completed,
			quantity_scrapped
		FROM route_instances
		WHERE line_id = ?
	`, query.LineID().Bytes()).Rows()
	if err != nil {
		return resp, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return resp, err
		}
		return resp, errs.NewObjectNotFoundError("lineId", query.LineID().String())
	}

	var routeID uuid.UUID
	var state int
	err = rows.Scan(
		&routeID,
		&state,
		&resp.QuantityOrdered,
		&resp.QuantityReceived,
		&resp.QuantityCompleted,
		&resp.QuantityScrapped,
	)
	if err != nil {
		return resp, err
	}
	if err = rows.Err(); err != nil {
		return resp, err
	}

	if resp.RouteInstanceID, err = kernel.UUIDFromBytes(routeID[:]); err != nil {
		return resp, err
	}
	resp.LineID = query.LineID()
	resp.State = route.RouteState(state).String()

	resp.Steps, err = h.loadSteps(ctx, resp.RouteInstanceID)
	return resp, err
}

func (h GetLineRouteQueryHandler) loadSteps(
	ctx context.Context,
	routeInstanceID kernel.UUID,
) ([]RouteStepResponse, error) {
	steps := make([]RouteStepResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.sequence,
			s.code,
			s.name,
			s.work_center_id,
			s.state,
			s.processing_mode,
			s.time_capture_mode,
			s.blocked_reason,
			s.scan_in_utc,
			s.scan_out_utc,
			s.completed_utc,
			s.manual_duration_minutes,
			s.requires_usage_entry,
			s.requires_scrap_entry,
			s.requires_serial_capture,
			s.requires_checklist_completion,
			(SELECT COUNT(*) FROM material_usage_entries u WHERE u.step_id = s.id),
			(SELECT COUNT(*) FROM scrap_entries sc WHERE sc.step_id = s.id),
			(SELECT COUNT(*) FROM serial_capture_entries se WHERE se.step_id = s.id),
			(SELECT COUNT(*) FROM checklist_entries c WHERE c.step_id = s.id)
		FROM route_steps s
		WHERE s.route_instance_id = ?
		ORDER BY s.sequence
	`, routeInstanceID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var step RouteStepResponse
		var id, workCenterID uuid.UUID
		var state, processingMode, timeCaptureMode int

		err = rows.Scan(
			&id,
			&step.Sequence,
			&step.Code,
			&step.Name,
			&workCenterID,
			&state,
			&processingMode,
			&timeCaptureMode,
			&step.BlockedReason,
			&step.ScanInUtc,
			&step.ScanOutUtc,
			&step.CompletedUtc,
			&step.ManualDurationMinutes,
			&step.RequiresUsageEntry,
			&step.RequiresScrapEntry,
			&step.RequiresSerialCapture,
			&step.RequiresChecklistCompletion,
			&step.UsageEntryCount,
			&step.ScrapEntryCount,
			&step.SerialEntryCount,
			&step.ChecklistEntryCount,
		)
		if err != nil {
			return nil, err
		}

		if step.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if step.WorkCenterID, err = kernel.UUIDFromBytes(workCenterID[:]); err != nil {
			return nil, err
		}
		step.State = route.StepState(state).String()
		step.ProcessingMode = route.ProcessingMode(processingMode).String()
		step.TimeCaptureMode = route.TimeCaptureMode(timeCaptureMode).String()
		steps = append(steps, step)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return steps, nil
}
