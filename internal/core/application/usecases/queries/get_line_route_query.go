package queries

import (
	"errors"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrGetLineRouteQueryIsNotConstructed = errors.New(
	"GetLineRouteQuery must be created via NewGetLineRouteQuery constructor")

// GetLineRouteQuery retrieves the execution view of one order line's
// route: the quantity rollups plus every step with its ledger tallies.
type GetLineRouteQuery struct {
	lineID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLineRouteQuery creates a query for one line's route.
func NewGetLineRouteQuery(lineID kernel.UUID) (GetLineRouteQuery, error) {
	if err := lineID.Validate(); err != nil {
		return GetLineRouteQuery{}, err
	}
	return GetLineRouteQuery{lineID: lineID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLineRouteQuery) Validate() error {
	return q.guard.Validate(ErrGetLineRouteQueryIsNotConstructed)
}

// LineID returns the requested order line.
func (q GetLineRouteQuery) LineID() kernel.UUID {
	return q.lineID
}

// GetLineRouteQueryResponse is the route execution projection.
type GetLineRouteQueryResponse struct {
	RouteInstanceID   kernel.UUID
	LineID            kernel.UUID
	State             string
	QuantityOrdered   int
	QuantityReceived  int
	QuantityCompleted int
	QuantityScrapped  int
	Steps             []RouteStepResponse
}

// RouteStepResponse is one step of the route execution projection. The
// ledger counts let the terminal render gate indicators without loading
// the entries themselves.
type RouteStepResponse struct {
	ID                    kernel.UUID
	Sequence              int
	Code                  string
	Name                  string
	WorkCenterID          kernel.UUID
	State                 string
	ProcessingMode        string
	TimeCaptureMode       string
	BlockedReason         *string
	ScanInUtc             *time.Time
	ScanOutUtc            *time.Time
	CompletedUtc          *time.Time
	ManualDurationMinutes *int

	RequiresUsageEntry          bool
	RequiresScrapEntry          bool
	RequiresSerialCapture       bool
	RequiresChecklistCompletion bool

	UsageEntryCount     int
	ScrapEntryCount     int
	SerialEntryCount    int
	ChecklistEntryCount int
}
