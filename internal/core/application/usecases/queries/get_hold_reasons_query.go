package queries

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/pkg/guard"
)

var ErrGetHoldReasonsQueryIsNotConstructed = errors.New(
	"GetHoldReasonsQuery must be created via NewGetHoldReasonsQuery constructor")

// GetHoldReasonsQuery retrieves the configured reason codes of one hold
// overlay type. The hold dialog asks for active codes only; the admin
// screen asks for all of them.
type GetHoldReasonsQuery struct {
	holdType   order.HoldType
	activeOnly bool

	guard guard.ConstructorGuard
}

// NewGetHoldReasonsQuery creates a query for one overlay type's codes.
func NewGetHoldReasonsQuery(holdType order.HoldType, activeOnly bool) (GetHoldReasonsQuery, error) {
	if err := holdType.Validate(); err != nil {
		return GetHoldReasonsQuery{}, err
	}
	return GetHoldReasonsQuery{
		holdType:   holdType,
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetHoldReasonsQuery) Validate() error {
	return q.guard.Validate(ErrGetHoldReasonsQueryIsNotConstructed)
}

// HoldType returns the requested overlay type.
func (q GetHoldReasonsQuery) HoldType() order.HoldType {
	return q.holdType
}

// ActiveOnly reports whether retired codes are filtered out.
func (q GetHoldReasonsQuery) ActiveOnly() bool {
	return q.activeOnly
}

// GetHoldReasonsQueryResponse is one configured reason code.
type GetHoldReasonsQueryResponse struct {
	ID          kernel.UUID
	HoldType    string
	Code        string
	Description string
	Active      bool
}
