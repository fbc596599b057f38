package commands

import (
	"errors"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/route"
	"shopfloor/internal/pkg/guard"
)

var ErrRecordStepProgressCommandIsNotConstructed = errors.New(
	"RecordStepProgressCommand must be created via NewRecordStepProgressCommand constructor",
)

// SerialCaptureInput carries a serial capture submitted with a
// single-unit progress call.
type SerialCaptureInput struct {
	SerialNo        string
	Manufacturer    string
	ManufactureDate *time.Time
	TestDate        *time.Time
	LidColorID      *kernel.UUID
	LidSizeID       *kernel.UUID
	Condition       route.ConditionStatus
}

// RecordStepProgressCommand records production progress on a route step.
// BatchQuantity steps read the quantities; SingleUnit steps represent
// exactly one unit per command and read the serial input.
type RecordStepProgressCommand struct { //nolint:recvcheck //using for validation
	lineID            kernel.UUID
	stepID            kernel.UUID
	workCenterID      kernel.UUID
	quantityCompleted int
	quantityScrapped  int
	serial            *SerialCaptureInput
	empNo             kernel.EmpNo

	guard guard.ConstructorGuard
}

// NewRecordStepProgressCommand creates a validated progress command.
func NewRecordStepProgressCommand(
	lineID, stepID, workCenterID kernel.UUID,
	quantityCompleted, quantityScrapped int,
	serial *SerialCaptureInput,
	empNo kernel.EmpNo,
) (RecordStepProgressCommand, error) {
	if err := errors.Join(
		lineID.Validate(),
		stepID.Validate(),
		workCenterID.Validate(),
		empNo.Validate(),
	); err != nil {
		return RecordStepProgressCommand{}, err
	}

	return RecordStepProgressCommand{
		lineID:            lineID,
		stepID:            stepID,
		workCenterID:      workCenterID,
		quantityCompleted: quantityCompleted,
		quantityScrapped:  quantityScrapped,
		serial:            serial,
		empNo:             empNo,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordStepProgressCommand) Validate() error {
	return c.guard.Validate(ErrRecordStepProgressCommandIsNotConstructed)
}

// LineID returns the order line whose route advances.
func (c RecordStepProgressCommand) LineID() kernel.UUID { return c.lineID }

// StepID returns the step progress is recorded at.
func (c RecordStepProgressCommand) StepID() kernel.UUID { return c.stepID }

// WorkCenterID returns the work center whose queue must refresh.
func (c RecordStepProgressCommand) WorkCenterID() kernel.UUID { return c.workCenterID }

// QuantityCompleted returns the batch increment, unused for single-unit.
func (c RecordStepProgressCommand) QuantityCompleted() int { return c.quantityCompleted }

// QuantityScrapped returns the batch scrap increment.
func (c RecordStepProgressCommand) QuantityScrapped() int { return c.quantityScrapped }

// Serial returns the serial capture for single-unit steps, nil otherwise.
func (c RecordStepProgressCommand) Serial() *SerialCaptureInput { return c.serial }

// EmpNo returns the recording operator.
func (c RecordStepProgressCommand) EmpNo() kernel.EmpNo { return c.empNo }
