package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrOverrideChecklistItemCommandIsNotConstructed = errors.New(
	"OverrideChecklistItemCommand must be created via NewOverrideChecklistItemCommand constructor",
)

// OverrideChecklistItemCommand applies a supervisor override to a failed
// checklist item.
type OverrideChecklistItemCommand struct { //nolint:recvcheck //using for validation
	lineID     kernel.UUID
	stepID     kernel.UUID
	entryID    kernel.UUID
	supervisor kernel.EmpNo
	actingRole kernel.Role

	guard guard.ConstructorGuard
}

// NewOverrideChecklistItemCommand creates a validated override command.
func NewOverrideChecklistItemCommand(
	lineID, stepID, entryID kernel.UUID,
	supervisor kernel.EmpNo,
	actingRole kernel.Role,
) (OverrideChecklistItemCommand, error) {
	if err := errors.Join(
		lineID.Validate(),
		stepID.Validate(),
		entryID.Validate(),
		supervisor.Validate(),
		actingRole.Validate(),
	); err != nil {
		return OverrideChecklistItemCommand{}, err
	}

	return OverrideChecklistItemCommand{
		lineID:     lineID,
		stepID:     stepID,
		entryID:    entryID,
		supervisor: supervisor,
		actingRole: actingRole,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c OverrideChecklistItemCommand) Validate() error {
	return c.guard.Validate(ErrOverrideChecklistItemCommandIsNotConstructed)
}

// LineID returns the order line the step belongs to.
func (c OverrideChecklistItemCommand) LineID() kernel.UUID { return c.lineID }

// StepID returns the step holding the checklist entry.
func (c OverrideChecklistItemCommand) StepID() kernel.UUID { return c.stepID }

// EntryID returns the failed checklist entry being overridden.
func (c OverrideChecklistItemCommand) EntryID() kernel.UUID { return c.entryID }

// Supervisor returns the overriding supervisor.
func (c OverrideChecklistItemCommand) Supervisor() kernel.EmpNo { return c.supervisor }

// ActingRole returns the role of the overriding user.
func (c OverrideChecklistItemCommand) ActingRole() kernel.Role { return c.actingRole }
