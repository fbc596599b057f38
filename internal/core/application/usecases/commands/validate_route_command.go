package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrValidateRouteCommandIsNotConstructed = errors.New(
	"ValidateRouteCommand must be created via NewValidateRouteCommand constructor",
)

// ValidateRouteCommand records that a line's route passed structural
// validation. The decision is kept as an approved route-validation
// record.
type ValidateRouteCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	lineID     kernel.UUID
	empNo      kernel.EmpNo
	actingRole kernel.Role
	note       string

	guard guard.ConstructorGuard
}

// NewValidateRouteCommand creates a validated route-validation command.
func NewValidateRouteCommand(
	orderID, lineID kernel.UUID,
	empNo kernel.EmpNo,
	actingRole kernel.Role,
	note string,
) (ValidateRouteCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		lineID.Validate(),
		empNo.Validate(),
		actingRole.Validate(),
	); err != nil {
		return ValidateRouteCommand{}, err
	}

	return ValidateRouteCommand{
		orderID:    orderID,
		lineID:     lineID,
		empNo:      empNo,
		actingRole: actingRole,
		note:       note,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ValidateRouteCommand) Validate() error {
	return c.guard.Validate(ErrValidateRouteCommandIsNotConstructed)
}

// OrderID returns the order being validated.
func (c ValidateRouteCommand) OrderID() kernel.UUID { return c.orderID }

// LineID returns the order line whose route was validated.
func (c ValidateRouteCommand) LineID() kernel.UUID { return c.lineID }

// EmpNo returns the validating user.
func (c ValidateRouteCommand) EmpNo() kernel.EmpNo { return c.empNo }

// ActingRole returns the role of the validating user.
func (c ValidateRouteCommand) ActingRole() kernel.Role { return c.actingRole }

// Note returns the validation note.
func (c ValidateRouteCommand) Note() string { return c.note }
