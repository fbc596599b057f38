package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrCompleteStepCommandIsNotConstructed = errors.New(
	"CompleteStepCommand must be created via NewCompleteStepCommand constructor",
)

// CompleteStepCommand finalizes a route step once its capture gate is
// satisfied.
type CompleteStepCommand struct { //nolint:recvcheck //using for validation
	lineID                kernel.UUID
	stepID                kernel.UUID
	workCenterID          kernel.UUID
	empNo                 kernel.EmpNo
	notes                 string
	manualDurationMinutes *int

	guard guard.ConstructorGuard
}

// NewCompleteStepCommand creates a validated completion command.
func NewCompleteStepCommand(
	lineID, stepID, workCenterID kernel.UUID,
	empNo kernel.EmpNo,
	notes string,
	manualDurationMinutes *int,
) (CompleteStepCommand, error) {
	if err := errors.Join(
		lineID.Validate(),
		stepID.Validate(),
		workCenterID.Validate(),
		empNo.Validate(),
	); err != nil {
		return CompleteStepCommand{}, err
	}

	return CompleteStepCommand{
		lineID:                lineID,
		stepID:                stepID,
		workCenterID:          workCenterID,
		empNo:                 empNo,
		notes:                 notes,
		manualDurationMinutes: manualDurationMinutes,
		guard:                 guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteStepCommand) Validate() error {
	return c.guard.Validate(ErrCompleteStepCommandIsNotConstructed)
}

// LineID returns the order line whose route step completes.
func (c CompleteStepCommand) LineID() kernel.UUID { return c.lineID }

// StepID returns the completing step.
func (c CompleteStepCommand) StepID() kernel.UUID { return c.stepID }

// WorkCenterID returns the work center whose queue must refresh.
func (c CompleteStepCommand) WorkCenterID() kernel.UUID { return c.workCenterID }

// EmpNo returns the completing operator.
func (c CompleteStepCommand) EmpNo() kernel.EmpNo { return c.empNo }

// Notes returns the completion notes for the audit trail.
func (c CompleteStepCommand) Notes() string { return c.notes }

// ManualDurationMinutes returns the operator-entered duration, nil when
// time capture is automated.
func (c CompleteStepCommand) ManualDurationMinutes() *int { return c.manualDurationMinutes }
