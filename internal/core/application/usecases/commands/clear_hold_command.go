package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrClearHoldCommandIsNotConstructed = errors.New(
	"ClearHoldCommand must be created via NewClearHoldCommand constructor",
)

// ClearHoldCommand removes an order's hold overlay, optionally recording
// a closing note in the audit trail.
type ClearHoldCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	actingRole kernel.Role
	note       string

	guard guard.ConstructorGuard
}

// NewClearHoldCommand creates a validated hold-clearing command.
func NewClearHoldCommand(orderID kernel.UUID, actingRole kernel.Role, note string) (ClearHoldCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		actingRole.Validate(),
	); err != nil {
		return ClearHoldCommand{}, err
	}

	return ClearHoldCommand{
		orderID:    orderID,
		actingRole: actingRole,
		note:       note,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearHoldCommand) Validate() error {
	return c.guard.Validate(ErrClearHoldCommandIsNotConstructed)
}

// OrderID returns the order whose hold clears.
func (c ClearHoldCommand) OrderID() kernel.UUID { return c.orderID }

// ActingRole returns the caller's role.
func (c ClearHoldCommand) ActingRole() kernel.Role { return c.actingRole }

// Note returns the optional closing note.
func (c ClearHoldCommand) Note() string { return c.note }
