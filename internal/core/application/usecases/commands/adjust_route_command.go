package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/route"
	"shopfloor/internal/pkg/errs"
	"shopfloor/internal/pkg/guard"
)

var ErrAdjustRouteCommandIsNotConstructed = errors.New(
	"AdjustRouteCommand must be created via NewAdjustRouteCommand constructor",
)

// AdjustRouteCommand carries a draft of step adjustments for a line's
// route. The draft is applied immediately; a pending supervisor review
// records what changed.
type AdjustRouteCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	lineID      kernel.UUID
	adjustments []route.StepAdjustment
	empNo       kernel.EmpNo

	guard guard.ConstructorGuard
}

// NewAdjustRouteCommand creates a validated adjustment proposal.
func NewAdjustRouteCommand(
	orderID, lineID kernel.UUID,
	adjustments []route.StepAdjustment,
	empNo kernel.EmpNo,
) (AdjustRouteCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		lineID.Validate(),
		empNo.Validate(),
	); err != nil {
		return AdjustRouteCommand{}, err
	}
	if len(adjustments) == 0 {
		return AdjustRouteCommand{}, errs.NewValueIsRequiredError("adjustments")
	}

	return AdjustRouteCommand{
		orderID:     orderID,
		lineID:      lineID,
		adjustments: adjustments,
		empNo:       empNo,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustRouteCommand) Validate() error {
	return c.guard.Validate(ErrAdjustRouteCommandIsNotConstructed)
}

// OrderID returns the order owning the adjusted line.
func (c AdjustRouteCommand) OrderID() kernel.UUID { return c.orderID }

// LineID returns the order line whose route is being adjusted.
func (c AdjustRouteCommand) LineID() kernel.UUID { return c.lineID }

// Adjustments returns the proposed step changes.
func (c AdjustRouteCommand) Adjustments() []route.StepAdjustment { return c.adjustments }

// EmpNo returns the proposing user.
func (c AdjustRouteCommand) EmpNo() kernel.EmpNo { return c.empNo }
