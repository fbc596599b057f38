package queries

import (
	"errors"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/review"
	"shopfloor/internal/pkg/guard"
)

var ErrGetPendingReviewsQueryIsNotConstructed = errors.New(
	"GetPendingReviewsQuery must be created via NewGetPendingReviewsQuery constructor")

// GetPendingReviewsQuery retrieves the undecided review records of one
// phase: the clerk's validation queue or the supervisor's decision queue.
type GetPendingReviewsQuery struct {
	phase review.Phase

	guard guard.ConstructorGuard
}

// NewGetPendingReviewsQuery creates a query for one phase's queue.
func NewGetPendingReviewsQuery(phase review.Phase) (GetPendingReviewsQuery, error) {
	if err := phase.Validate(); err != nil {
		return GetPendingReviewsQuery{}, err
	}
	return GetPendingReviewsQuery{phase: phase, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPendingReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingReviewsQueryIsNotConstructed)
}

// Phase returns the requested review phase.
func (q GetPendingReviewsQuery) Phase() review.Phase {
	return q.phase
}

// GetPendingReviewsQueryResponse is one row of a review queue.
type GetPendingReviewsQueryResponse struct {
	ID              kernel.UUID
	OrderID         kernel.UUID
	LineID          kernel.UUID
	RouteInstanceID kernel.UUID
	Phase           string
	CreatedUtc      time.Time
}
