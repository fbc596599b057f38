package queries

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrGetWorkCenterQueueQueryIsNotConstructed = errors.New(
	"GetWorkCenterQueueQuery must be created via NewGetWorkCenterQueueQuery constructor")

// GetWorkCenterQueueQuery retrieves the pending-step queue of one work
// center, as polled by operator terminals.
type GetWorkCenterQueueQuery struct {
	workCenterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWorkCenterQueueQuery creates a query for one work center's queue.
func NewGetWorkCenterQueueQuery(workCenterID kernel.UUID) (GetWorkCenterQueueQuery, error) {
	if err := workCenterID.Validate(); err != nil {
		return GetWorkCenterQueueQuery{}, err
	}
	return GetWorkCenterQueueQuery{
		workCenterID: workCenterID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWorkCenterQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkCenterQueueQueryIsNotConstructed)
}

// WorkCenterID returns the requested work center.
func (q GetWorkCenterQueueQuery) WorkCenterID() kernel.UUID {
	return q.workCenterID
}
