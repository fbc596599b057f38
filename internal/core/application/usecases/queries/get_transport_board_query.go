package queries

import (
	"errors"
	"fmt"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"
	"shopfloor/internal/pkg/guard"
)

var ErrGetTransportBoardQueryIsNotConstructed = errors.New(
	"GetTransportBoardQuery must be created via NewGetTransportBoardQuery constructor")

const maxTransportBoardPageSize = 200

// GetTransportBoardQuery retrieves one page of the dispatch board:
// transportation records joined with the order status the two board
// actions depend on.
type GetTransportBoardQuery struct {
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewGetTransportBoardQuery creates a paginated board query. Pages are
// 1-based.
func NewGetTransportBoardQuery(page, pageSize int) (GetTransportBoardQuery, error) {
	if page <= 0 {
		return GetTransportBoardQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"page", fmt.Errorf("%d is not greater than 0", page))
	}
	if pageSize <= 0 || pageSize > maxTransportBoardPageSize {
		return GetTransportBoardQuery{}, errs.NewValueIsOutOfRangeError(
			"pageSize", pageSize, 1, maxTransportBoardPageSize)
	}
	return GetTransportBoardQuery{
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTransportBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetTransportBoardQueryIsNotConstructed)
}

// Page returns the 1-based page number.
func (q GetTransportBoardQuery) Page() int {
	return q.page
}

// PageSize returns the page size.
func (q GetTransportBoardQuery) PageSize() int {
	return q.pageSize
}

// GetTransportBoardQueryResponse is one row of the dispatch board.
type GetTransportBoardQueryResponse struct {
	OrderID              kernel.UUID
	LifecycleStatus      string
	TrailerNo            string
	Carrier              string
	DispatchDate         *time.Time
	ScheduledDate        *time.Time
	TransportationStatus string
	TransportationNotes  string
	UpdatedUtc           time.Time
}
