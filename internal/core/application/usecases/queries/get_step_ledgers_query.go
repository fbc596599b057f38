package queries

import (
	"errors"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrGetStepLedgersQueryIsNotConstructed = errors.New(
	"GetStepLedgersQuery must be created via NewGetStepLedgersQuery constructor")

// GetStepLedgersQuery retrieves all four capture ledgers of one route
// step for the step detail screen.
type GetStepLedgersQuery struct {
	stepID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStepLedgersQuery creates a query for one step's ledgers.
func NewGetStepLedgersQuery(stepID kernel.UUID) (GetStepLedgersQuery, error) {
	if err := stepID.Validate(); err != nil {
		return GetStepLedgersQuery{}, err
	}
	return GetStepLedgersQuery{stepID: stepID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStepLedgersQuery) Validate() error {
	return q.guard.Validate(ErrGetStepLedgersQueryIsNotConstructed)
}

// StepID returns the requested step.
func (q GetStepLedgersQuery) StepID() kernel.UUID {
	return q.stepID
}

// GetStepLedgersQueryResponse carries all four ledgers of a step.
type GetStepLedgersQueryResponse struct {
	StepID    kernel.UUID
	Usage     []UsageEntryResponse
	Scrap     []ScrapEntryResponse
	Serials   []SerialEntryResponse
	Checklist []ChecklistEntryResponse
}

// UsageEntryResponse is one material usage ledger row.
type UsageEntryResponse struct {
	ID           kernel.UUID
	PartItemID   kernel.UUID
	LotBatch     string
	QuantityUsed float64
	Uom          string
	RecordedBy   string
	RecordedUtc  time.Time
}

// ScrapEntryResponse is one scrap ledger row.
type ScrapEntryResponse struct {
	ID               kernel.UUID
	QuantityScrapped int
	ScrapReasonID    kernel.UUID
	RecordedBy       string
	RecordedUtc      time.Time
}

// SerialEntryResponse is one serial capture ledger row.
type SerialEntryResponse struct {
	ID              kernel.UUID
	SerialNo        string
	Manufacturer    string
	ManufactureDate *time.Time
	TestDate        *time.Time
	LidColorID      *kernel.UUID
	LidSizeID       *kernel.UUID
	Condition       string
	RecordedBy      string
	RecordedUtc     time.Time
}

// ChecklistEntryResponse is one checklist ledger row.
type ChecklistEntryResponse struct {
	ID                  kernel.UUID
	ChecklistTemplateID kernel.UUID
	ItemCode            string
	Passed              bool
	FailureNote         string
	SupervisorOverride  *string
	RecordedBy          string
	RecordedUtc         time.Time
}
