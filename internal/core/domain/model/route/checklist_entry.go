package route

import (
	"errors"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"
)

var ErrChecklistEntryIsNotConstructed = errors.New(
	"ChecklistEntry must be created via NewChecklistEntry constructor")

// ChecklistEntry records the outcome of one checklist item executed at a
// route step. A failed item can carry a supervisor override, which is how
// the AllowWithSupervisorOverride failure policy lets a step complete
// despite the failure.
type ChecklistEntry struct {
	id                  kernel.UUID
	checklistTemplateID kernel.UUID
	itemCode            string
	passed              bool
	failureNote         string
	supervisorOverride  *kernel.EmpNo
	recordedBy          kernel.EmpNo
	recordedUtc         time.Time
	isConstructed       bool
}

// NewChecklistEntry creates a validated checklist entry.
func NewChecklistEntry(
	id, checklistTemplateID kernel.UUID,
	itemCode string,
	passed bool,
	failureNote string,
	recordedBy kernel.EmpNo,
	recordedUtc time.Time,
) (*ChecklistEntry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := checklistTemplateID.Validate(); err != nil {
		return nil, err
	}
	if itemCode == "" {
		return nil, errs.NewValueIsRequiredError("itemCode")
	}
	if err := recordedBy.Validate(); err != nil {
		return nil, err
	}

	return &ChecklistEntry{
		id:                  id,
		checklistTemplateID: checklistTemplateID,
		itemCode:            itemCode,
		passed:              passed,
		failureNote:         failureNote,
		recordedBy:          recordedBy,
		recordedUtc:         recordedUtc,
		isConstructed:       true,
	}, nil
}

// RestoreChecklistEntry reconstructs an entry from persistence, carrying
// any supervisor override it had.
func RestoreChecklistEntry(
	id, checklistTemplateID kernel.UUID,
	itemCode string,
	passed bool,
	failureNote string,
	supervisorOverride *kernel.EmpNo,
	recordedBy kernel.EmpNo,
	recordedUtc time.Time,
) (*ChecklistEntry, error) {
	e, err := NewChecklistEntry(
		id, checklistTemplateID, itemCode, passed, failureNote, recordedBy, recordedUtc)
	if err != nil {
		return nil, err
	}
	e.restoreOverride(supervisorOverride)
	return e, nil
}

// Validate ensures the entry was created through its constructor.
func (e *ChecklistEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrChecklistEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *ChecklistEntry) ID() kernel.UUID { return e.id }

// ChecklistTemplateID returns the template the item belongs to.
func (e *ChecklistEntry) ChecklistTemplateID() kernel.UUID { return e.checklistTemplateID }

// ItemCode returns the checklist item code.
func (e *ChecklistEntry) ItemCode() string { return e.itemCode }

// Passed reports whether the item passed.
func (e *ChecklistEntry) Passed() bool { return e.passed }

// FailureNote returns the note recorded with a failed item.
func (e *ChecklistEntry) FailureNote() string { return e.failureNote }

// SupervisorOverride returns the overriding supervisor, nil when none.
func (e *ChecklistEntry) SupervisorOverride() *kernel.EmpNo { return e.supervisorOverride }

// RecordedBy returns the employee who executed the item.
func (e *ChecklistEntry) RecordedBy() kernel.EmpNo { return e.recordedBy }

// RecordedUtc returns when the item was executed.
func (e *ChecklistEntry) RecordedUtc() time.Time { return e.recordedUtc }

// ApplyOverride attaches a supervisor override to a failed item.
func (e *ChecklistEntry) ApplyOverride(supervisor kernel.EmpNo) error {
	if err := supervisor.Validate(); err != nil {
		return err
	}
	if e.passed {
		return errs.NewValueIsInvalidErrorWithCause(
			"supervisorOverride", errors.New("passed items do not take overrides"))
	}
	e.supervisorOverride = &supervisor
	return nil
}

// restoreOverride reattaches an override during reconstruction.
func (e *ChecklistEntry) restoreOverride(supervisor *kernel.EmpNo) {
	e.supervisorOverride = supervisor
}
