package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"
	"shopfloor/internal/pkg/guard"
)

var ErrAddChecklistEntryCommandIsNotConstructed = errors.New(
	"AddChecklistEntryCommand must be created via NewAddChecklistEntryCommand constructor",
)

// AddChecklistEntryCommand records the outcome of one checklist item on
// a route step.
type AddChecklistEntryCommand struct { //nolint:recvcheck //using for validation
	lineID              kernel.UUID
	stepID              kernel.UUID
	checklistTemplateID kernel.UUID
	itemCode            string
	passed              bool
	failureNote         string
	empNo               kernel.EmpNo

	guard guard.ConstructorGuard
}

// NewAddChecklistEntryCommand creates a validated checklist command.
func NewAddChecklistEntryCommand(
	lineID, stepID, checklistTemplateID kernel.UUID,
	itemCode string,
	passed bool,
	failureNote string,
	empNo kernel.EmpNo,
) (AddChecklistEntryCommand, error) {
	if err := errors.Join(
		lineID.Validate(),
		stepID.Validate(),
		checklistTemplateID.Validate(),
		empNo.Validate(),
	); err != nil {
		return AddChecklistEntryCommand{}, err
	}
	if itemCode == "" {
		return AddChecklistEntryCommand{}, errs.NewValueIsRequiredError("itemCode")
	}

	return AddChecklistEntryCommand{
		lineID:              lineID,
		stepID:              stepID,
		checklistTemplateID: checklistTemplateID,
		itemCode:            itemCode,
		passed:              passed,
		failureNote:         failureNote,
		empNo:               empNo,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddChecklistEntryCommand) Validate() error {
	return c.guard.Validate(ErrAddChecklistEntryCommandIsNotConstructed)
}

// LineID returns the order line the step belongs to.
func (c AddChecklistEntryCommand) LineID() kernel.UUID { return c.lineID }

// StepID returns the step the checklist belongs to.
func (c AddChecklistEntryCommand) StepID() kernel.UUID { return c.stepID }

// ChecklistTemplateID returns the template the item comes from.
func (c AddChecklistEntryCommand) ChecklistTemplateID() kernel.UUID { return c.checklistTemplateID }

// ItemCode returns the checklist item code.
func (c AddChecklistEntryCommand) ItemCode() string { return c.itemCode }

// Passed reports whether the item passed.
func (c AddChecklistEntryCommand) Passed() bool { return c.passed }

// FailureNote returns the note recorded with a failed item.
func (c AddChecklistEntryCommand) FailureNote() string { return c.failureNote }

// EmpNo returns the recording operator.
func (c AddChecklistEntryCommand) EmpNo() kernel.EmpNo { return c.empNo }
