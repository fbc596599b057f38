package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrAddStepScrapCommandIsNotConstructed = errors.New(
	"AddStepScrapCommand must be created via NewAddStepScrapCommand constructor",
)

// AddStepScrapCommand records scrapped units with a reason against a
// route step.
type AddStepScrapCommand struct { //nolint:recvcheck //using for validation
	lineID           kernel.UUID
	stepID           kernel.UUID
	quantityScrapped int
	scrapReasonID    kernel.UUID
	empNo            kernel.EmpNo

	guard guard.ConstructorGuard
}

// NewAddStepScrapCommand creates a validated scrap command.
func NewAddStepScrapCommand(
	lineID, stepID kernel.UUID,
	quantityScrapped int,
	scrapReasonID kernel.UUID,
	empNo kernel.EmpNo,
) (AddStepScrapCommand, error) {
	if err := errors.Join(
		lineID.Validate(),
		stepID.Validate(),
		scrapReasonID.Validate(),
		empNo.Validate(),
	); err != nil {
		return AddStepScrapCommand{}, err
	}

	return AddStepScrapCommand{
		lineID:           lineID,
		stepID:           stepID,
		quantityScrapped: quantityScrapped,
		scrapReasonID:    scrapReasonID,
		empNo:            empNo,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddStepScrapCommand) Validate() error {
	return c.guard.Validate(ErrAddStepScrapCommandIsNotConstructed)
}

// LineID returns the order line the step belongs to.
func (c AddStepScrapCommand) LineID() kernel.UUID { return c.lineID }

// StepID returns the step the scrap is recorded at.
func (c AddStepScrapCommand) StepID() kernel.UUID { return c.stepID }

// QuantityScrapped returns the scrapped unit count.
func (c AddStepScrapCommand) QuantityScrapped() int { return c.quantityScrapped }

// ScrapReasonID returns the scrap reason.
func (c AddStepScrapCommand) ScrapReasonID() kernel.UUID { return c.scrapReasonID }

// EmpNo returns the recording operator.
func (c AddStepScrapCommand) EmpNo() kernel.EmpNo { return c.empNo }
