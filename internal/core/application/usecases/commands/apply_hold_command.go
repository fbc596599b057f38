package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/pkg/errs"
	"shopfloor/internal/pkg/guard"
)

var ErrApplyHoldCommandIsNotConstructed = errors.New(
	"ApplyHoldCommand must be created via NewApplyHoldCommand constructor",
)

// ApplyHoldCommand layers a hold overlay on an order. The reason code is
// resolved against the configured codes for the overlay type during
// handling; the lifecycle status is never touched.
type ApplyHoldCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	holdType   order.HoldType
	reasonCode string
	note       string
	actingRole kernel.Role

	guard guard.ConstructorGuard
}

// NewApplyHoldCommand creates a validated hold-application command.
func NewApplyHoldCommand(
	orderID kernel.UUID,
	holdType order.HoldType,
	reasonCode, note string,
	actingRole kernel.Role,
) (ApplyHoldCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		holdType.Validate(),
		actingRole.Validate(),
	); err != nil {
		return ApplyHoldCommand{}, err
	}
	if reasonCode == "" {
		return ApplyHoldCommand{}, errs.NewValueIsRequiredError("reasonCode")
	}

	return ApplyHoldCommand{
		orderID:    orderID,
		holdType:   holdType,
		reasonCode: reasonCode,
		note:       note,
		actingRole: actingRole,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyHoldCommand) Validate() error {
	return c.guard.Validate(ErrApplyHoldCommandIsNotConstructed)
}

// OrderID returns the order to hold.
func (c ApplyHoldCommand) OrderID() kernel.UUID { return c.orderID }

// HoldType returns the overlay type.
func (c ApplyHoldCommand) HoldType() order.HoldType { return c.holdType }

// ReasonCode returns the submitted reason code name.
func (c ApplyHoldCommand) ReasonCode() string { return c.reasonCode }

// Note returns the free-text note.
func (c ApplyHoldCommand) Note() string { return c.note }

// ActingRole returns the caller's role, recorded as the overlay owner.
func (c ApplyHoldCommand) ActingRole() kernel.Role { return c.actingRole }
