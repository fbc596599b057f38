package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrUpdateStepUsageCommandIsNotConstructed = errors.New(
	"UpdateStepUsageCommand must be created via NewUpdateStepUsageCommand constructor",
)

// UpdateStepUsageCommand rewrites an existing material usage entry.
type UpdateStepUsageCommand struct { //nolint:recvcheck //using for validation
	lineID       kernel.UUID
	stepID       kernel.UUID
	entryID      kernel.UUID
	partItemID   kernel.UUID
	lotBatch     string
	quantityUsed float64
	uom          string
	empNo        kernel.EmpNo

	guard guard.ConstructorGuard
}

// NewUpdateStepUsageCommand creates a validated usage update command.
func NewUpdateStepUsageCommand(
	lineID, stepID, entryID, partItemID kernel.UUID,
	lotBatch string,
	quantityUsed float64,
	uom string,
	empNo kernel.EmpNo,
) (UpdateStepUsageCommand, error) {
	if err := errors.Join(
		lineID.Validate(),
		stepID.Validate(),
		entryID.Validate(),
		partItemID.Validate(),
		empNo.Validate(),
	); err != nil {
		return UpdateStepUsageCommand{}, err
	}

	return UpdateStepUsageCommand{
		lineID:       lineID,
		stepID:       stepID,
		entryID:      entryID,
		partItemID:   partItemID,
		lotBatch:     lotBatch,
		quantityUsed: quantityUsed,
		uom:          uom,
		empNo:        empNo,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateStepUsageCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStepUsageCommandIsNotConstructed)
}

// LineID returns the order line the step belongs to.
func (c UpdateStepUsageCommand) LineID() kernel.UUID { return c.lineID }

// StepID returns the step holding the entry.
func (c UpdateStepUsageCommand) StepID() kernel.UUID { return c.stepID }

// EntryID returns the usage entry being rewritten.
func (c UpdateStepUsageCommand) EntryID() kernel.UUID { return c.entryID }

// PartItemID returns the consumed part.
func (c UpdateStepUsageCommand) PartItemID() kernel.UUID { return c.partItemID }

// LotBatch returns the lot or batch identifier, may be empty.
func (c UpdateStepUsageCommand) LotBatch() string { return c.lotBatch }

// QuantityUsed returns the corrected quantity.
func (c UpdateStepUsageCommand) QuantityUsed() float64 { return c.quantityUsed }

// Uom returns the unit of measure.
func (c UpdateStepUsageCommand) Uom() string { return c.uom }

// EmpNo returns the correcting operator.
func (c UpdateStepUsageCommand) EmpNo() kernel.EmpNo { return c.empNo }
