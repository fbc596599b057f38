// Package reviewrepo persists review records. The adjustment draft and
// the frozen decision diffs are stored as jsonb documents: both are
// write-once payloads read back whole, never queried by field.
package reviewrepo

import (
	"encoding/json"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/review"
	"shopfloor/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// ReviewRecordDTO is the database representation of a review record.
type ReviewRecordDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;index"`
	LineID          uuid.UUID `gorm:"type:uuid;index"`
	RouteInstanceID uuid.UUID `gorm:"type:uuid"`
	Phase           int       `gorm:"index"`
	Decision        int       `gorm:"index"`
	Reviewer        *string
	Note            string
	Draft           []byte `gorm:"type:jsonb"`
	Diffs           []byte `gorm:"type:jsonb"`
	CreatedUtc      time.Time
	DecidedUtc      *time.Time
}

// TableName overrides GORM's default naming.
func (ReviewRecordDTO) TableName() string {
	return "review_records"
}

// stepAdjustmentJSON is the jsonb shape of one draft row.
type stepAdjustmentJSON struct {
	StepID       uuid.UUID `json:"stepId"`
	Sequence     int       `json:"sequence"`
	WorkCenterID uuid.UUID `json:"workCenterId"`
}

// stepDiffJSON is the jsonb shape of one frozen diff row.
type stepDiffJSON struct {
	StepID   uuid.UUID `json:"stepId"`
	StepCode string    `json:"stepCode"`
	Field    string    `json:"field"`
	Before   string    `json:"before"`
	After    string    `json:"after"`
}

func fromDomain(record *review.ReviewRecord) (ReviewRecordDTO, error) {
	dto := ReviewRecordDTO{
		ID:              record.ID().Bytes(),
		OrderID:         record.OrderID().Bytes(),
		LineID:          record.LineID().Bytes(),
		RouteInstanceID: record.RouteInstanceID().Bytes(),
		Phase:           int(record.Phase()),
		Decision:        int(record.Decision()),
		Note:            record.Note(),
		CreatedUtc:      record.CreatedUtc(),
		DecidedUtc:      record.DecidedUtc(),
	}
	if reviewer := record.Reviewer(); reviewer != nil {
		raw := reviewer.String()
		dto.Reviewer = &raw
	}

	if draft := record.Draft(); len(draft) > 0 {
		rows := make([]stepAdjustmentJSON, 0, len(draft))
		for _, adj := range draft {
			rows = append(rows, stepAdjustmentJSON{
				StepID:       adj.StepID.Bytes(),
				Sequence:     adj.Sequence,
				WorkCenterID: adj.WorkCenterID.Bytes(),
			})
		}
		payload, err := json.Marshal(rows)
		if err != nil {
			return ReviewRecordDTO{}, err
		}
		dto.Draft = payload
	}

	if diffs := record.Diffs(); len(diffs) > 0 {
		rows := make([]stepDiffJSON, 0, len(diffs))
		for _, diff := range diffs {
			rows = append(rows, stepDiffJSON{
				StepID:   diff.StepID.Bytes(),
				StepCode: diff.StepCode,
				Field:    diff.Field,
				Before:   diff.Before,
				After:    diff.After,
			})
		}
		payload, err := json.Marshal(rows)
		if err != nil {
			return ReviewRecordDTO{}, err
		}
		dto.Diffs = payload
	}
	return dto, nil
}

func toDomain(dto ReviewRecordDTO) (*review.ReviewRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	lineID, err := kernel.UUIDFromBytes(dto.LineID[:])
	if err != nil {
		return nil, err
	}
	routeInstanceID, err := kernel.UUIDFromBytes(dto.RouteInstanceID[:])
	if err != nil {
		return nil, err
	}

	var reviewer *kernel.EmpNo
	if dto.Reviewer != nil {
		empNo := kernel.EmpNo(*dto.Reviewer)
		reviewer = &empNo
	}

	draft, err := draftToDomain(dto.Draft)
	if err != nil {
		return nil, err
	}
	diffs, err := diffsToDomain(dto.Diffs)
	if err != nil {
		return nil, err
	}

	return review.RestoreReviewRecord(
		id, orderID, lineID, routeInstanceID,
		review.Phase(dto.Phase),
		review.Decision(dto.Decision),
		reviewer,
		dto.Note,
		draft,
		diffs,
		dto.CreatedUtc,
		dto.DecidedUtc,
	)
}

func draftToDomain(payload []byte) ([]route.StepAdjustment, error) {
	if len(payload) == 0 {
		return nil, nil
	}

	var rows []stepAdjustmentJSON
	if err := json.Unmarshal(payload, &rows); err != nil {
		return nil, err
	}

	draft := make([]route.StepAdjustment, 0, len(rows))
	for _, row := range rows {
		stepID, err := kernel.UUIDFromBytes(row.StepID[:])
		if err != nil {
			return nil, err
		}
		workCenterID, err := kernel.UUIDFromBytes(row.WorkCenterID[:])
		if err != nil {
			return nil, err
		}
		draft = append(draft, route.StepAdjustment{
			StepID:       stepID,
			Sequence:     row.Sequence,
			WorkCenterID: workCenterID,
		})
	}
	return draft, nil
}

func diffsToDomain(payload []byte) ([]review.StepDiff, error) {
	if len(payload) == 0 {
		return nil, nil
	}

	var rows []stepDiffJSON
	if err := json.Unmarshal(payload, &rows); err != nil {
		return nil, err
	}

	diffs := make([]review.StepDiff, 0, len(rows))
	for _, row := range rows {
		stepID, err := kernel.UUIDFromBytes(row.StepID[:])
		if err != nil {
			return nil, err
		}
		diffs = append(diffs, review.StepDiff{
			StepID:   stepID,
			StepCode: row.StepCode,
			Field:    row.Field,
			Before:   row.Before,
			After:    row.After,
		})
	}
	return diffs, nil
}
