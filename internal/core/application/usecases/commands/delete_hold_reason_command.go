package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrDeleteHoldReasonCommandIsNotConstructed = errors.New(
	"DeleteHoldReasonCommand must be created via NewDeleteHoldReasonCommand constructor",
)

// DeleteHoldReasonCommand removes a reason code from configuration.
// Historical audit entries referencing the code remain valid: they store
// the code name as text, not a foreign key. Restricted to administrators.
type DeleteHoldReasonCommand struct { //nolint:recvcheck //using for validation
	reasonID   kernel.UUID
	actingRole kernel.Role

	guard guard.ConstructorGuard
}

// NewDeleteHoldReasonCommand creates a validated reason-deletion command.
func NewDeleteHoldReasonCommand(reasonID kernel.UUID, actingRole kernel.Role) (DeleteHoldReasonCommand, error) {
	if err := errors.Join(
		reasonID.Validate(),
		actingRole.Validate(),
	); err != nil {
		return DeleteHoldReasonCommand{}, err
	}

	return DeleteHoldReasonCommand{
		reasonID:   reasonID,
		actingRole: actingRole,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteHoldReasonCommand) Validate() error {
	return c.guard.Validate(ErrDeleteHoldReasonCommandIsNotConstructed)
}

// ReasonID returns the reason code to delete.
func (c DeleteHoldReasonCommand) ReasonID() kernel.UUID { return c.reasonID }

// ActingRole returns the caller's role.
func (c DeleteHoldReasonCommand) ActingRole() kernel.Role { return c.actingRole }
