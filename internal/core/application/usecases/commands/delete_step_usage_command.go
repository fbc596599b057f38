package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrDeleteStepUsageCommandIsNotConstructed = errors.New(
	"DeleteStepUsageCommand must be created via NewDeleteStepUsageCommand constructor",
)

// DeleteStepUsageCommand removes a material usage entry from a step.
type DeleteStepUsageCommand struct { //nolint:recvcheck //using for validation
	lineID  kernel.UUID
	stepID  kernel.UUID
	entryID kernel.UUID
	empNo   kernel.EmpNo

	guard guard.ConstructorGuard
}

// NewDeleteStepUsageCommand creates a validated usage removal command.
func NewDeleteStepUsageCommand(
	lineID, stepID, entryID kernel.UUID,
	empNo kernel.EmpNo,
) (DeleteStepUsageCommand, error) {
	if err := errors.Join(
		lineID.Validate(),
		stepID.Validate(),
		entryID.Validate(),
		empNo.Validate(),
	); err != nil {
		return DeleteStepUsageCommand{}, err
	}

	return DeleteStepUsageCommand{
		lineID:  lineID,
		stepID:  stepID,
		entryID: entryID,
		empNo:   empNo,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteStepUsageCommand) Validate() error {
	return c.guard.Validate(ErrDeleteStepUsageCommandIsNotConstructed)
}

// LineID returns the order line the step belongs to.
func (c DeleteStepUsageCommand) LineID() kernel.UUID { return c.lineID }

// StepID returns the step holding the entry.
func (c DeleteStepUsageCommand) StepID() kernel.UUID { return c.stepID }

// EntryID returns the entry being removed.
func (c DeleteStepUsageCommand) EntryID() kernel.UUID { return c.entryID }

// EmpNo returns the requesting operator, kept for the audit trail.
func (c DeleteStepUsageCommand) EmpNo() kernel.EmpNo { return c.empNo }
