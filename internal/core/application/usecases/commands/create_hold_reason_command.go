package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/pkg/errs"
	"shopfloor/internal/pkg/guard"
)

var (
	ErrCreateHoldReasonCommandIsNotConstructed = errors.New(
		"CreateHoldReasonCommand must be created via NewCreateHoldReasonCommand constructor",
	)

	// ErrReasonAdministrationForbidden rejects reason-code configuration
	// changes from non-administrators.
	ErrReasonAdministrationForbidden = errors.New(
		"reason-code configuration requires an administrator")
)

// CreateHoldReasonCommand adds a reason code to the configuration for one
// hold overlay type. Restricted to administrators.
type CreateHoldReasonCommand struct { //nolint:recvcheck //using for validation
	reasonID    kernel.UUID
	holdType    order.HoldType
	code        string
	description string
	actingRole  kernel.Role

	guard guard.ConstructorGuard
}

// NewCreateHoldReasonCommand creates a validated reason-creation command.
func NewCreateHoldReasonCommand(
	reasonID kernel.UUID,
	holdType order.HoldType,
	code, description string,
	actingRole kernel.Role,
) (CreateHoldReasonCommand, error) {
	if err := errors.Join(
		reasonID.Validate(),
		holdType.Validate(),
		actingRole.Validate(),
	); err != nil {
		return CreateHoldReasonCommand{}, err
	}
	if code == "" {
		return CreateHoldReasonCommand{}, errs.NewValueIsRequiredError("code")
	}

	return CreateHoldReasonCommand{
		reasonID:    reasonID,
		holdType:    holdType,
		code:        code,
		description: description,
		actingRole:  actingRole,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateHoldReasonCommand) Validate() error {
	return c.guard.Validate(ErrCreateHoldReasonCommandIsNotConstructed)
}

// ReasonID returns the new reason code's identifier.
func (c CreateHoldReasonCommand) ReasonID() kernel.UUID { return c.reasonID }

// HoldType returns the overlay type the code belongs to.
func (c CreateHoldReasonCommand) HoldType() order.HoldType { return c.holdType }

// Code returns the code name.
func (c CreateHoldReasonCommand) Code() string { return c.code }

// Description returns the operator-facing description.
func (c CreateHoldReasonCommand) Description() string { return c.description }

// ActingRole returns the caller's role.
func (c CreateHoldReasonCommand) ActingRole() kernel.Role { return c.actingRole }
