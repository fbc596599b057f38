package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrReopenRouteCommandIsNotConstructed = errors.New(
	"ReopenRouteCommand must be created via NewReopenRouteCommand constructor",
)

// ReopenRouteCommand returns a completed route to active execution so
// corrections can be made. Capture ledgers are preserved.
type ReopenRouteCommand struct { //nolint:recvcheck //using for validation
	lineID     kernel.UUID
	empNo      kernel.EmpNo
	actingRole kernel.Role

	guard guard.ConstructorGuard
}

// NewReopenRouteCommand creates a validated reopen command.
func NewReopenRouteCommand(
	lineID kernel.UUID,
	empNo kernel.EmpNo,
	actingRole kernel.Role,
) (ReopenRouteCommand, error) {
	if err := errors.Join(
		lineID.Validate(),
		empNo.Validate(),
		actingRole.Validate(),
	); err != nil {
		return ReopenRouteCommand{}, err
	}

	return ReopenRouteCommand{
		lineID:     lineID,
		empNo:      empNo,
		actingRole: actingRole,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReopenRouteCommand) Validate() error {
	return c.guard.Validate(ErrReopenRouteCommandIsNotConstructed)
}

// LineID returns the order line whose route reopens.
func (c ReopenRouteCommand) LineID() kernel.UUID { return c.lineID }

// EmpNo returns the requesting user.
func (c ReopenRouteCommand) EmpNo() kernel.EmpNo { return c.empNo }

// ActingRole returns the role of the requesting user.
func (c ReopenRouteCommand) ActingRole() kernel.Role { return c.actingRole }
