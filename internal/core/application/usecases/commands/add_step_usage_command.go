package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrAddStepUsageCommandIsNotConstructed = errors.New(
	"AddStepUsageCommand must be created via NewAddStepUsageCommand constructor",
)

// AddStepUsageCommand records material consumption against a route step.
// Entries with the same part, lot, and unit of measure merge into one
// accumulated row.
type AddStepUsageCommand struct { //nolint:recvcheck //using for validation
	lineID       kernel.UUID
	stepID       kernel.UUID
	partItemID   kernel.UUID
	lotBatch     string
	quantityUsed float64
	uom          string
	empNo        kernel.EmpNo

	guard guard.ConstructorGuard
}

// NewAddStepUsageCommand creates a validated usage command.
func NewAddStepUsageCommand(
	lineID, stepID, partItemID kernel.UUID,
	lotBatch string,
	quantityUsed float64,
	uom string,
	empNo kernel.EmpNo,
) (AddStepUsageCommand, error) {
	if err := errors.Join(
		lineID.Validate(),
		stepID.Validate(),
		partItemID.Validate(),
		empNo.Validate(),
	); err != nil {
		return AddStepUsageCommand{}, err
	}

	return AddStepUsageCommand{
		lineID:       lineID,
		stepID:       stepID,
		partItemID:   partItemID,
		lotBatch:     lotBatch,
		quantityUsed: quantityUsed,
		uom:          uom,
		empNo:        empNo,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddStepUsageCommand) Validate() error {
	return c.guard.Validate(ErrAddStepUsageCommandIsNotConstructed)
}

// LineID returns the order line the step belongs to.
func (c AddStepUsageCommand) LineID() kernel.UUID { return c.lineID }

// StepID returns the step the usage is recorded at.
func (c AddStepUsageCommand) StepID() kernel.UUID { return c.stepID }

// PartItemID returns the consumed part.
func (c AddStepUsageCommand) PartItemID() kernel.UUID { return c.partItemID }

// LotBatch returns the lot or batch identifier, may be empty.
func (c AddStepUsageCommand) LotBatch() string { return c.lotBatch }

// QuantityUsed returns the consumed quantity.
func (c AddStepUsageCommand) QuantityUsed() float64 { return c.quantityUsed }

// Uom returns the unit of measure.
func (c AddStepUsageCommand) Uom() string { return c.uom }

// EmpNo returns the recording operator.
func (c AddStepUsageCommand) EmpNo() kernel.EmpNo { return c.empNo }
