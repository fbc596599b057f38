package queries

import (
	"context"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/route"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStepLedgersQueryHandler reads all four capture ledgers of a step in
// recording order.
type GetStepLedgersQueryHandler struct {
	db *gorm.DB
}

// NewGetStepLedgersQueryHandler creates a handler for step ledger queries.
func NewGetStepLedgersQueryHandler(db *gorm.DB) GetStepLedgersQueryHandler {
	return GetStepLedgersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetStepLedgersQueryHandler) Handle(
	ctx context.Context,
	query GetStepLedgersQuery,
) (GetStepLedgersQueryResponse, error) {
	var resp GetStepLedgersQueryResponse
	if err := query.Validate(); err != nil {
		return resp, err
	}

	resp.StepID = query.StepID()

	var err error
	if resp.Usage, err = h.loadUsage(ctx, query.StepID()); err != nil {
		return resp, err
	}
	if resp.Scrap, err = h.loadScrap(ctx, query.StepID()); err != nil {
		return resp, err
	}
	if resp.Serials, err = h.loadSerials(ctx, query.StepID()); err != nil {
		return resp, err
	}
	if resp.Checklist, err = h.loadChecklist(ctx, query.StepID()); err != nil {
		return resp, err
	}
	return resp, nil
}

func (h GetStepLedgersQueryHandler) loadUsage(
	ctx context.Context,
	stepID kernel.UUID,
) ([]UsageEntryResponse, error) {
	entries := make([]UsageEntryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			part_item_id,
			lot_batch,
			quantity_used,
			uom,
			recorded_by,
			recorded_utc
		FROM material_usage_entries
		WHERE step_id = ?
		ORDER BY recorded_utc, id
	`, stepID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry UsageEntryResponse
		var id, partItemID uuid.UUID

		err = rows.Scan(
			&id,
			&partItemID,
			&entry.LotBatch,
			&entry.QuantityUsed,
			&entry.Uom,
			&entry.RecordedBy,
			&entry.RecordedUtc,
		)
		if err != nil {
			return nil, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if entry.PartItemID, err = kernel.UUIDFromBytes(partItemID[:]); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (h GetStepLedgersQueryHandler) loadScrap(
	ctx context.Context,
	stepID kernel.UUID,
) ([]ScrapEntryResponse, error) {
	entries := make([]ScrapEntryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			quantity_scrapped,
			scrap_reason_id,
			recorded_by,
			recorded_utc
		FROM scrap_entries
		WHERE step_id = ?
		ORDER BY recorded_utc, id
	`, stepID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry ScrapEntryResponse
		var id, scrapReasonID uuid.UUID

		err = rows.Scan(
			&id,
			&entry.QuantityScrapped,
			&scrapReasonID,
			&entry.RecordedBy,
			&entry.RecordedUtc,
		)
		if err != nil {
			return nil, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if entry.ScrapReasonID, err = kernel.UUIDFromBytes(scrapReasonID[:]); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (h GetStepLedgersQueryHandler) loadSerials(
	ctx context.Context,
	stepID kernel.UUID,
) ([]SerialEntryResponse, error) {
	entries := make([]SerialEntryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			serial_no,
			manufacturer,
			manufacture_date,
			test_date,
			lid_color_id,
			lid_size_id,
			condition,
			recorded_by,
			recorded_utc
		FROM serial_capture_entries
		WHERE step_id = ?
		ORDER BY recorded_utc, id
	`, stepID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry SerialEntryResponse
		var id uuid.UUID
		var lidColorID, lidSizeID *uuid.UUID
		var condition int

		err = rows.Scan(
			&id,
			&entry.SerialNo,
			&entry.Manufacturer,
			&entry.ManufactureDate,
			&entry.TestDate,
			&lidColorID,
			&lidSizeID,
			&condition,
			&entry.RecordedBy,
			&entry.RecordedUtc,
		)
		if err != nil {
			return nil, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if entry.LidColorID, err = optionalUUID(lidColorID); err != nil {
			return nil, err
		}
		if entry.LidSizeID, err = optionalUUID(lidSizeID); err != nil {
			return nil, err
		}
		entry.Condition = route.ConditionStatus(condition).String()
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (h GetStepLedgersQueryHandler) loadChecklist(
	ctx context.Context,
	stepID kernel.UUID,
) ([]ChecklistEntryResponse, error) {
	entries := make([]ChecklistEntryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			checklist_template_id,
			item_code,
			passed,
			failure_note,
			supervisor_override,
			recorded_by,
			recorded_utc
		FROM checklist_entries
		WHERE step_id = ?
		ORDER BY recorded_utc, id
	`, stepID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry ChecklistEntryResponse
		var id, templateID uuid.UUID

		err = rows.Scan(
			&id,
			&templateID,
			&entry.ItemCode,
			&entry.Passed,
			&entry.FailureNote,
			&entry.SupervisorOverride,
			&entry.RecordedBy,
			&entry.RecordedUtc,
		)
		if err != nil {
			return nil, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if entry.ChecklistTemplateID, err = kernel.UUIDFromBytes(templateID[:]); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
