package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrUpdateHoldReasonCommandIsNotConstructed = errors.New(
	"UpdateHoldReasonCommand must be created via NewUpdateHoldReasonCommand constructor",
)

// UpdateHoldReasonCommand changes a reason code's description or active
// flag. The (type, code) key is immutable. Restricted to administrators.
type UpdateHoldReasonCommand struct { //nolint:recvcheck //using for validation
	reasonID    kernel.UUID
	description string
	active      bool
	actingRole  kernel.Role

	guard guard.ConstructorGuard
}

// NewUpdateHoldReasonCommand creates a validated reason-update command.
func NewUpdateHoldReasonCommand(
	reasonID kernel.UUID,
	description string,
	active bool,
	actingRole kernel.Role,
) (UpdateHoldReasonCommand, error) {
	if err := errors.Join(
		reasonID.Validate(),
		actingRole.Validate(),
	); err != nil {
		return UpdateHoldReasonCommand{}, err
	}

	return UpdateHoldReasonCommand{
		reasonID:    reasonID,
		description: description,
		active:      active,
		actingRole:  actingRole,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateHoldReasonCommand) Validate() error {
	return c.guard.Validate(ErrUpdateHoldReasonCommandIsNotConstructed)
}

// ReasonID returns the reason code to update.
func (c UpdateHoldReasonCommand) ReasonID() kernel.UUID { return c.reasonID }

// Description returns the new description.
func (c UpdateHoldReasonCommand) Description() string { return c.description }

// Active returns the new active flag.
func (c UpdateHoldReasonCommand) Active() bool { return c.active }

// ActingRole returns the caller's role.
func (c UpdateHoldReasonCommand) ActingRole() kernel.Role { return c.actingRole }
