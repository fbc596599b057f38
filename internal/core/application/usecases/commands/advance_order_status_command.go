package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/pkg/guard"
)

var ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
	"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
)

// AdvanceOrderStatusCommand moves an order to the next lifecycle stage on
// behalf of an acting employee.
type AdvanceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	targetStatus order.LifecycleStatus
	actingRole   kernel.Role
	actingEmpNo  kernel.EmpNo

	guard guard.ConstructorGuard
}

// NewAdvanceOrderStatusCommand creates a validated advancement command.
func NewAdvanceOrderStatusCommand(
	orderID kernel.UUID,
	targetStatus order.LifecycleStatus,
	actingRole kernel.Role,
	actingEmpNo kernel.EmpNo,
) (AdvanceOrderStatusCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		targetStatus.Validate(),
		actingRole.Validate(),
		actingEmpNo.Validate(),
	); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	return AdvanceOrderStatusCommand{
		orderID:      orderID,
		targetStatus: targetStatus,
		actingRole:   actingRole,
		actingEmpNo:  actingEmpNo,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to advance.
func (c AdvanceOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }

// TargetStatus returns the requested lifecycle stage.
func (c AdvanceOrderStatusCommand) TargetStatus() order.LifecycleStatus { return c.targetStatus }

// ActingRole returns the caller's role.
func (c AdvanceOrderStatusCommand) ActingRole() kernel.Role { return c.actingRole }

// ActingEmpNo returns the acting employee.
func (c AdvanceOrderStatusCommand) ActingEmpNo() kernel.EmpNo { return c.actingEmpNo }
