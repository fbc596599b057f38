package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"
	"shopfloor/internal/pkg/guard"
)

var ErrAddStepSerialCommandIsNotConstructed = errors.New(
	"AddStepSerialCommand must be created via NewAddStepSerialCommand constructor",
)

// AddStepSerialCommand captures a unit serial on a batch-mode step.
// Single-unit steps capture serials through the progress command instead.
type AddStepSerialCommand struct { //nolint:recvcheck //using for validation
	lineID kernel.UUID
	stepID kernel.UUID
	serial SerialCaptureInput
	empNo  kernel.EmpNo

	guard guard.ConstructorGuard
}

// NewAddStepSerialCommand creates a validated serial capture command.
func NewAddStepSerialCommand(
	lineID, stepID kernel.UUID,
	serial SerialCaptureInput,
	empNo kernel.EmpNo,
) (AddStepSerialCommand, error) {
	if err := errors.Join(
		lineID.Validate(),
		stepID.Validate(),
		empNo.Validate(),
	); err != nil {
		return AddStepSerialCommand{}, err
	}
	if serial.SerialNo == "" {
		return AddStepSerialCommand{}, errs.NewValueIsRequiredError("serialNo")
	}

	return AddStepSerialCommand{
		lineID: lineID,
		stepID: stepID,
		serial: serial,
		empNo:  empNo,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddStepSerialCommand) Validate() error {
	return c.guard.Validate(ErrAddStepSerialCommandIsNotConstructed)
}

// LineID returns the order line the step belongs to.
func (c AddStepSerialCommand) LineID() kernel.UUID { return c.lineID }

// StepID returns the step capturing the serial.
func (c AddStepSerialCommand) StepID() kernel.UUID { return c.stepID }

// Serial returns the captured serial payload.
func (c AddStepSerialCommand) Serial() SerialCaptureInput { return c.serial }

// EmpNo returns the recording operator.
func (c AddStepSerialCommand) EmpNo() kernel.EmpNo { return c.empNo }
