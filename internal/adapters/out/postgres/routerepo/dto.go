// Package routerepo persists the route aggregate: the route instance row,
// its steps and all four capture ledgers. The aggregate is loaded and
// stored whole so the capture gate always evaluates against current
// entries.
package routerepo

import (
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteInstanceDTO is the database representation of a route instance.
type RouteInstanceDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineID            uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	State             int
	QuantityOrdered   int
	QuantityReceived  int
	QuantityCompleted int
	QuantityScrapped  int

	Steps []RouteStepDTO `gorm:"foreignKey:RouteInstanceID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming.
func (RouteInstanceDTO) TableName() string {
	return "route_instances"
}

// RouteStepDTO is the database representation of one route step with its
// plan attributes, runtime state and ledgers.
type RouteStepDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	RouteInstanceID uuid.UUID `gorm:"type:uuid;index"`
	Sequence        int
	Code            string
	Name            string
	WorkCenterID    uuid.UUID `gorm:"type:uuid;index"`
	State           int
	ProcessingMode  int
	TimeCaptureMode int

	RequiresUsageEntry          bool
	RequiresScrapEntry          bool
	RequiresSerialCapture       bool
	RequiresChecklistCompletion bool
	ChecklistTemplateID         *uuid.UUID `gorm:"type:uuid"`
	ChecklistFailurePolicy      int

	ScanInUtc             *time.Time
	ScanOutUtc            *time.Time
	CompletedUtc          *time.Time
	ManualDurationMinutes *int
	BlockedReason         *string

	Usage     []UsageEntryDTO     `gorm:"foreignKey:StepID;constraint:OnDelete:CASCADE"`
	Scrap     []ScrapEntryDTO     `gorm:"foreignKey:StepID;constraint:OnDelete:CASCADE"`
	Serials   []SerialEntryDTO    `gorm:"foreignKey:StepID;constraint:OnDelete:CASCADE"`
	Checklist []ChecklistEntryDTO `gorm:"foreignKey:StepID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming.
func (RouteStepDTO) TableName() string {
	return "route_steps"
}

// UsageEntryDTO is one material usage ledger row.
type UsageEntryDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	StepID       uuid.UUID `gorm:"type:uuid;index"`
	PartItemID   uuid.UUID `gorm:"type:uuid"`
	LotBatch     string
	QuantityUsed float64
	Uom          string
	RecordedBy   string
	RecordedUtc  time.Time
}

// TableName overrides GORM's default naming.
func (UsageEntryDTO) TableName() string {
	return "material_usage_entries"
}

// ScrapEntryDTO is one scrap ledger row.
type ScrapEntryDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	StepID           uuid.UUID `gorm:"type:uuid;index"`
	QuantityScrapped int
	ScrapReasonID    uuid.UUID `gorm:"type:uuid"`
	RecordedBy       string
	RecordedUtc      time.Time
}

// TableName overrides GORM's default naming.
func (ScrapEntryDTO) TableName() string {
	return "scrap_entries"
}

// SerialEntryDTO is one serial capture ledger row.
type SerialEntryDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	StepID          uuid.UUID `gorm:"type:uuid;index"`
	SerialNo        string
	Manufacturer    string
	ManufactureDate *time.Time
	TestDate        *time.Time
	LidColorID      *uuid.UUID `gorm:"type:uuid"`
	LidSizeID       *uuid.UUID `gorm:"type:uuid"`
	Condition       int
	RecordedBy      string
	RecordedUtc     time.Time
}

// TableName overrides GORM's default naming.
func (SerialEntryDTO) TableName() string {
	return "serial_capture_entries"
}

// ChecklistEntryDTO is one checklist ledger row.
type ChecklistEntryDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	StepID              uuid.UUID `gorm:"type:uuid;index"`
	ChecklistTemplateID uuid.UUID `gorm:"type:uuid"`
	ItemCode            string
	Passed              bool
	FailureNote         string
	SupervisorOverride  *string
	RecordedBy          string
	RecordedUtc         time.Time
}

// TableName overrides GORM's default naming.
func (ChecklistEntryDTO) TableName() string {
	return "checklist_entries"
}

func fromDomain(aggregate *route.RouteInstance) RouteInstanceDTO {
	dto := RouteInstanceDTO{
		ID:                aggregate.ID().Bytes(),
		LineID:            aggregate.LineID().Bytes(),
		State:             int(aggregate.State()),
		QuantityOrdered:   aggregate.QuantityOrdered(),
		QuantityReceived:  aggregate.QuantityReceived(),
		QuantityCompleted: aggregate.QuantityCompleted(),
		QuantityScrapped:  aggregate.QuantityScrapped(),
	}
	for _, step := range aggregate.Steps() {
		dto.Steps = append(dto.Steps, stepFromDomain(step))
	}
	return dto
}

func stepFromDomain(step *route.Step) RouteStepDTO {
	dto := RouteStepDTO{
		ID:              step.ID().Bytes(),
		RouteInstanceID: step.RouteInstanceID().Bytes(),
		Sequence:        step.Sequence(),
		Code:            step.Code(),
		Name:            step.Name(),
		WorkCenterID:    step.WorkCenterID().Bytes(),
		State:           int(step.State()),
		ProcessingMode:  int(step.ProcessingMode()),
		TimeCaptureMode: int(step.TimeCaptureMode()),

		RequiresUsageEntry:          step.RequiresUsageEntry(),
		RequiresScrapEntry:          step.RequiresScrapEntry(),
		RequiresSerialCapture:       step.RequiresSerialCapture(),
		RequiresChecklistCompletion: step.RequiresChecklistCompletion(),
		ChecklistFailurePolicy:      int(step.ChecklistFailurePolicy()),

		ScanInUtc:             step.ScanInUtc(),
		ScanOutUtc:            step.ScanOutUtc(),
		CompletedUtc:          step.CompletedUtc(),
		ManualDurationMinutes: step.ManualDurationMinutes(),
		BlockedReason:         step.BlockedReason(),
	}
	if templateID := step.ChecklistTemplateID(); templateID != nil {
		raw := templateID.Bytes()
		dto.ChecklistTemplateID = &raw
	}

	for _, e := range step.Usage() {
		dto.Usage = append(dto.Usage, UsageEntryDTO{
			ID:           e.ID().Bytes(),
			StepID:       step.ID().Bytes(),
			PartItemID:   e.PartItemID().Bytes(),
			LotBatch:     e.LotBatch(),
			QuantityUsed: e.QuantityUsed(),
			Uom:          e.Uom(),
			RecordedBy:   e.RecordedBy().String(),
			RecordedUtc:  e.RecordedUtc(),
		})
	}
	for _, e := range step.Scrap() {
		dto.Scrap = append(dto.Scrap, ScrapEntryDTO{
			ID:               e.ID().Bytes(),
			StepID:           step.ID().Bytes(),
			QuantityScrapped: e.QuantityScrapped(),
			ScrapReasonID:    e.ScrapReasonID().Bytes(),
			RecordedBy:       e.RecordedBy().String(),
			RecordedUtc:      e.RecordedUtc(),
		})
	}
	for _, e := range step.Serials() {
		serial := SerialEntryDTO{
			ID:              e.ID().Bytes(),
			StepID:          step.ID().Bytes(),
			SerialNo:        e.SerialNo(),
			Manufacturer:    e.Manufacturer(),
			ManufactureDate: e.ManufactureDate(),
			TestDate:        e.TestDate(),
			Condition:       int(e.Condition()),
			RecordedBy:      e.RecordedBy().String(),
			RecordedUtc:     e.RecordedUtc(),
		}
		if id := e.LidColorID(); id != nil {
			raw := id.Bytes()
			serial.LidColorID = &raw
		}
		if id := e.LidSizeID(); id != nil {
			raw := id.Bytes()
			serial.LidSizeID = &raw
		}
		dto.Serials = append(dto.Serials, serial)
	}
	for _, e := range step.Checklist() {
		entry := ChecklistEntryDTO{
			ID:                  e.ID().Bytes(),
			StepID:              step.ID().Bytes(),
			ChecklistTemplateID: e.ChecklistTemplateID().Bytes(),
			ItemCode:            e.ItemCode(),
			Passed:              e.Passed(),
			FailureNote:         e.FailureNote(),
			RecordedBy:          e.RecordedBy().String(),
			RecordedUtc:         e.RecordedUtc(),
		}
		if override := e.SupervisorOverride(); override != nil {
			raw := override.String()
			entry.SupervisorOverride = &raw
		}
		dto.Checklist = append(dto.Checklist, entry)
	}
	return dto
}

func toDomain(dto RouteInstanceDTO) (*route.RouteInstance, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	lineID, err := kernel.UUIDFromBytes(dto.LineID[:])
	if err != nil {
		return nil, err
	}

	steps := make([]*route.Step, 0, len(dto.Steps))
	for _, stepDTO := range dto.Steps {
		step, stepErr := stepToDomain(stepDTO)
		if stepErr != nil {
			return nil, stepErr
		}
		steps = append(steps, step)
	}

	return route.RestoreRouteInstance(
		id, lineID,
		route.RouteState(dto.State),
		dto.QuantityOrdered,
		dto.QuantityReceived,
		dto.QuantityCompleted,
		dto.QuantityScrapped,
		steps,
	)
}

func stepToDomain(dto RouteStepDTO) (*route.Step, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	routeInstanceID, err := kernel.UUIDFromBytes(dto.RouteInstanceID[:])
	if err != nil {
		return nil, err
	}
	workCenterID, err := kernel.UUIDFromBytes(dto.WorkCenterID[:])
	if err != nil {
		return nil, err
	}

	cfg := route.StepConfig{
		ID:                          id,
		RouteInstanceID:             routeInstanceID,
		Sequence:                    dto.Sequence,
		Code:                        dto.Code,
		Name:                        dto.Name,
		WorkCenterID:                workCenterID,
		ProcessingMode:              route.ProcessingMode(dto.ProcessingMode),
		TimeCaptureMode:             route.TimeCaptureMode(dto.TimeCaptureMode),
		RequiresUsageEntry:          dto.RequiresUsageEntry,
		RequiresScrapEntry:          dto.RequiresScrapEntry,
		RequiresSerialCapture:       dto.RequiresSerialCapture,
		RequiresChecklistCompletion: dto.RequiresChecklistCompletion,
		ChecklistFailurePolicy:      route.ChecklistFailurePolicy(dto.ChecklistFailurePolicy),
	}
	if dto.ChecklistTemplateID != nil {
		templateID, templateErr := kernel.UUIDFromBytes((*dto.ChecklistTemplateID)[:])
		if templateErr != nil {
			return nil, templateErr
		}
		cfg.ChecklistTemplateID = &templateID
	}

	state := route.RestoredStepState{
		State:                 route.StepState(dto.State),
		ScanInUtc:             dto.ScanInUtc,
		ScanOutUtc:            dto.ScanOutUtc,
		CompletedUtc:          dto.CompletedUtc,
		ManualDurationMinutes: dto.ManualDurationMinutes,
		BlockedReason:         dto.BlockedReason,
	}

	for _, e := range dto.Usage {
		entry, entryErr := usageToDomain(e)
		if entryErr != nil {
			return nil, entryErr
		}
		state.Usage = append(state.Usage, entry)
	}
	for _, e := range dto.Scrap {
		entry, entryErr := scrapToDomain(e)
		if entryErr != nil {
			return nil, entryErr
		}
		state.Scrap = append(state.Scrap, entry)
	}
	for _, e := range dto.Serials {
		entry, entryErr := serialToDomain(e)
		if entryErr != nil {
			return nil, entryErr
		}
		state.Serials = append(state.Serials, entry)
	}
	for _, e := range dto.Checklist {
		entry, entryErr := checklistToDomain(e)
		if entryErr != nil {
			return nil, entryErr
		}
		state.Checklist = append(state.Checklist, entry)
	}

	return route.RestoreStep(cfg, state)
}

func usageToDomain(dto UsageEntryDTO) (*route.MaterialUsageEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	partItemID, err := kernel.UUIDFromBytes(dto.PartItemID[:])
	if err != nil {
		return nil, err
	}
	return route.NewMaterialUsageEntry(
		id, partItemID, dto.LotBatch, dto.QuantityUsed, dto.Uom,
		kernel.EmpNo(dto.RecordedBy), dto.RecordedUtc)
}

func scrapToDomain(dto ScrapEntryDTO) (*route.ScrapEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	scrapReasonID, err := kernel.UUIDFromBytes(dto.ScrapReasonID[:])
	if err != nil {
		return nil, err
	}
	return route.NewScrapEntry(
		id, dto.QuantityScrapped, scrapReasonID,
		kernel.EmpNo(dto.RecordedBy), dto.RecordedUtc)
}

func serialToDomain(dto SerialEntryDTO) (*route.SerialCaptureEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	attrs := route.SerialCaptureAttributes{
		Manufacturer:    dto.Manufacturer,
		ManufactureDate: dto.ManufactureDate,
		TestDate:        dto.TestDate,
	}
	if dto.LidColorID != nil {
		lidColorID, lidErr := kernel.UUIDFromBytes((*dto.LidColorID)[:])
		if lidErr != nil {
			return nil, lidErr
		}
		attrs.LidColorID = &lidColorID
	}
	if dto.LidSizeID != nil {
		lidSizeID, lidErr := kernel.UUIDFromBytes((*dto.LidSizeID)[:])
		if lidErr != nil {
			return nil, lidErr
		}
		attrs.LidSizeID = &lidSizeID
	}

	return route.NewSerialCaptureEntry(
		id, dto.SerialNo, attrs,
		route.ConditionStatus(dto.Condition),
		kernel.EmpNo(dto.RecordedBy), dto.RecordedUtc)
}

func checklistToDomain(dto ChecklistEntryDTO) (*route.ChecklistEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	templateID, err := kernel.UUIDFromBytes(dto.ChecklistTemplateID[:])
	if err != nil {
		return nil, err
	}

	var override *kernel.EmpNo
	if dto.SupervisorOverride != nil {
		supervisor := kernel.EmpNo(*dto.SupervisorOverride)
		override = &supervisor
	}

	return route.RestoreChecklistEntry(
		id, templateID, dto.ItemCode, dto.Passed, dto.FailureNote,
		override, kernel.EmpNo(dto.RecordedBy), dto.RecordedUtc)
}
