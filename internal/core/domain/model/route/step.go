package route

import (
	"errors"
	"fmt"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"
)

var (
	ErrStepIsNotConstructed = errors.New("Step must be created via NewStep constructor")

	// ErrStepAlreadyCompleted rejects ledger writes and transitions on a
	// completed step. Only the review workflow's reopen action may touch
	// a completed step.
	ErrStepAlreadyCompleted = errors.New("step is completed; reopen it via the review workflow first")

	// ErrStepNotInProgress rejects batch progress on a step that has not
	// been scanned in.
	ErrStepNotInProgress = errors.New("step must be scanned in before recording batch progress")

	// ErrDuplicateSerial rejects a serial number already captured at the
	// same step.
	ErrDuplicateSerial = errors.New("serial number already captured for this step")
)

// StepConfig carries the route-plan attributes of a step through its
// constructor.
type StepConfig struct {
	ID                          kernel.UUID
	RouteInstanceID             kernel.UUID
	Sequence                    int
	Code                        string
	Name                        string
	WorkCenterID                kernel.UUID
	ProcessingMode              ProcessingMode
	TimeCaptureMode             TimeCaptureMode
	RequiresUsageEntry          bool
	RequiresScrapEntry          bool
	RequiresSerialCapture       bool
	RequiresChecklistCompletion bool
	ChecklistTemplateID         *kernel.UUID
	ChecklistFailurePolicy      ChecklistFailurePolicy
}

// Step is one instance of a route step executed at a work center.
//
// The execution state (Pending/InProgress/Completed) is driven by scan
// events and completion; the blocked overlay is orthogonal to it. All four
// capture ledgers hang off the step, and the capture gate in
// capture_gate.go reads them live.
type Step struct {
	id              kernel.UUID
	routeInstanceID kernel.UUID
	sequence        int
	code            string
	name            string
	workCenterID    kernel.UUID
	state           StepState
	processingMode  ProcessingMode
	timeCaptureMode TimeCaptureMode

	requiresUsageEntry          bool
	requiresScrapEntry          bool
	requiresSerialCapture       bool
	requiresChecklistCompletion bool
	checklistTemplateID         *kernel.UUID
	checklistFailurePolicy      ChecklistFailurePolicy

	scanInUtc             *time.Time
	scanOutUtc            *time.Time
	completedUtc          *time.Time
	manualDurationMinutes *int
	blockedReason         *string

	usage      []*MaterialUsageEntry
	usageIndex map[string]*MaterialUsageEntry
	scrap      []*ScrapEntry
	serials    []*SerialCaptureEntry
	checklist  []*ChecklistEntry

	isConstructed bool
}

// NewStep creates a pending step from its route-plan configuration.
func NewStep(cfg StepConfig) (*Step, error) {
	if err := errors.Join(
		cfg.ID.Validate(),
		cfg.RouteInstanceID.Validate(),
		cfg.WorkCenterID.Validate(),
		cfg.ProcessingMode.Validate(),
		cfg.TimeCaptureMode.Validate(),
	); err != nil {
		return nil, err
	}
	if cfg.Sequence <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"stepSequence", fmt.Errorf("%d is not greater than 0", cfg.Sequence))
	}
	if cfg.Code == "" {
		return nil, errs.NewValueIsRequiredError("stepCode")
	}
	if cfg.RequiresChecklistCompletion {
		if cfg.ChecklistTemplateID == nil {
			return nil, errs.NewValueIsRequiredError("checklistTemplateId")
		}
		if err := cfg.ChecklistFailurePolicy.Validate(); err != nil {
			return nil, err
		}
	}

	return &Step{
		id:                          cfg.ID,
		routeInstanceID:             cfg.RouteInstanceID,
		sequence:                    cfg.Sequence,
		code:                        cfg.Code,
		name:                        cfg.Name,
		workCenterID:                cfg.WorkCenterID,
		state:                       StepPending,
		processingMode:              cfg.ProcessingMode,
		timeCaptureMode:             cfg.TimeCaptureMode,
		requiresUsageEntry:          cfg.RequiresUsageEntry,
		requiresScrapEntry:          cfg.RequiresScrapEntry,
		requiresSerialCapture:       cfg.RequiresSerialCapture,
		requiresChecklistCompletion: cfg.RequiresChecklistCompletion,
		checklistTemplateID:         cfg.ChecklistTemplateID,
		checklistFailurePolicy:      cfg.ChecklistFailurePolicy,
		usageIndex:                  make(map[string]*MaterialUsageEntry),
		isConstructed:               true,
	}, nil
}

// RestoredStepState carries the runtime state of a step through RestoreStep.
type RestoredStepState struct {
	State                 StepState
	ScanInUtc             *time.Time
	ScanOutUtc            *time.Time
	CompletedUtc          *time.Time
	ManualDurationMinutes *int
	BlockedReason         *string
	Usage                 []*MaterialUsageEntry
	Scrap                 []*ScrapEntry
	Serials               []*SerialCaptureEntry
	Checklist             []*ChecklistEntry
}

// RestoreStep reconstructs a step and its ledgers from persistence,
// rebuilding the usage merge index.
func RestoreStep(cfg StepConfig, st RestoredStepState) (*Step, error) {
	s, err := NewStep(cfg)
	if err != nil {
		return nil, err
	}
	if err = st.State.Validate(); err != nil {
		return nil, err
	}

	for _, e := range st.Usage {
		if err = e.Validate(); err != nil {
			return nil, err
		}
		s.usageIndex[e.mergeKey()] = e
	}
	for _, e := range st.Scrap {
		if err = e.Validate(); err != nil {
			return nil, err
		}
	}
	for _, e := range st.Serials {
		if err = e.Validate(); err != nil {
			return nil, err
		}
	}
	for _, e := range st.Checklist {
		if err = e.Validate(); err != nil {
			return nil, err
		}
	}

	s.state = st.State
	s.scanInUtc = st.ScanInUtc
	s.scanOutUtc = st.ScanOutUtc
	s.completedUtc = st.CompletedUtc
	s.manualDurationMinutes = st.ManualDurationMinutes
	s.blockedReason = st.BlockedReason
	s.usage = st.Usage
	s.scrap = st.Scrap
	s.serials = st.Serials
	s.checklist = st.Checklist
	return s, nil
}

// Validate ensures the step was created through its constructors.
func (s *Step) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStepIsNotConstructed
	}
	return nil
}

// ID returns the step's unique identifier.
func (s *Step) ID() kernel.UUID { return s.id }

// RouteInstanceID returns the owning route instance.
func (s *Step) RouteInstanceID() kernel.UUID { return s.routeInstanceID }

// Sequence returns the step's position in the route, unique per route.
func (s *Step) Sequence() int { return s.sequence }

// Code returns the step code from the route plan.
func (s *Step) Code() string { return s.code }

// Name returns the operator-facing step name.
func (s *Step) Name() string { return s.name }

// WorkCenterID returns the work center the step executes at.
func (s *Step) WorkCenterID() kernel.UUID { return s.workCenterID }

// State returns the execution state.
func (s *Step) State() StepState { return s.state }

// ProcessingMode returns the step's progress-recording mode.
func (s *Step) ProcessingMode() ProcessingMode { return s.processingMode }

// TimeCaptureMode returns the step's labor time capture mode.
func (s *Step) TimeCaptureMode() TimeCaptureMode { return s.timeCaptureMode }

// RequiresUsageEntry reports whether the capture gate demands material usage.
func (s *Step) RequiresUsageEntry() bool { return s.requiresUsageEntry }

// RequiresScrapEntry reports whether the capture gate demands a scrap entry.
func (s *Step) RequiresScrapEntry() bool { return s.requiresScrapEntry }

// RequiresSerialCapture reports whether the capture gate demands serials.
func (s *Step) RequiresSerialCapture() bool { return s.requiresSerialCapture }

// RequiresChecklistCompletion reports whether the capture gate demands a
// completed checklist.
func (s *Step) RequiresChecklistCompletion() bool { return s.requiresChecklistCompletion }

// ChecklistTemplateID returns the checklist template, nil when none.
func (s *Step) ChecklistTemplateID() *kernel.UUID { return s.checklistTemplateID }

// ChecklistFailurePolicy returns the failure policy for checklist items.
func (s *Step) ChecklistFailurePolicy() ChecklistFailurePolicy { return s.checklistFailurePolicy }

// ScanInUtc returns the first scan-in time, nil before the first scan.
func (s *Step) ScanInUtc() *time.Time { return s.scanInUtc }

// ScanOutUtc returns the last scan-out time, nil before the first one.
func (s *Step) ScanOutUtc() *time.Time { return s.scanOutUtc }

// CompletedUtc returns the completion time, nil until completed.
func (s *Step) CompletedUtc() *time.Time { return s.completedUtc }

// ManualDurationMinutes returns the manually entered duration, nil when
// none was recorded.
func (s *Step) ManualDurationMinutes() *int { return s.manualDurationMinutes }

// BlockedReason returns the blocked overlay reason, nil when not blocked.
func (s *Step) BlockedReason() *string { return s.blockedReason }

// IsBlocked reports whether the blocked overlay is set.
func (s *Step) IsBlocked() bool { return s.blockedReason != nil }

// Elapsed derives the running time since scan-in. It is a pure function of
// scanInUtc and now, so display timers need no persisted ticking state.
func (s *Step) Elapsed(now time.Time) time.Duration {
	if s.scanInUtc == nil {
		return 0
	}
	if s.completedUtc != nil {
		return s.completedUtc.Sub(*s.scanInUtc)
	}
	return now.Sub(*s.scanInUtc)
}

// ScanIn moves the step to InProgress and stamps scanInUtc on first entry.
// Re-entry on an already in-progress step is idempotent and keeps the
// original timestamp.
func (s *Step) ScanIn(empNo kernel.EmpNo, now time.Time) error {
	if err := empNo.Validate(); err != nil {
		return err
	}
	if s.state == StepCompleted {
		return ErrStepAlreadyCompleted
	}
	if s.scanInUtc == nil {
		s.scanInUtc = &now
	}
	s.state = StepInProgress
	return nil
}

// ScanOut stamps scanOutUtc. It does not change the state and does not
// complete the step.
func (s *Step) ScanOut(empNo kernel.EmpNo, now time.Time) error {
	if err := empNo.Validate(); err != nil {
		return err
	}
	if s.state == StepCompleted {
		return ErrStepAlreadyCompleted
	}
	s.scanOutUtc = &now
	return nil
}

// Block sets the blocked overlay. The execution state is untouched; the
// overlay only prevents completion.
func (s *Step) Block(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("blockedReason")
	}
	s.blockedReason = &reason
	return nil
}

// Unblock clears the blocked overlay.
func (s *Step) Unblock() {
	s.blockedReason = nil
}

// Usage returns the material usage ledger.
func (s *Step) Usage() []*MaterialUsageEntry { return s.usage }

// Scrap returns the scrap ledger.
func (s *Step) Scrap() []*ScrapEntry { return s.scrap }

// Serials returns the serial capture ledger.
func (s *Step) Serials() []*SerialCaptureEntry { return s.serials }

// Checklist returns the checklist ledger.
func (s *Step) Checklist() []*ChecklistEntry { return s.checklist }

// AddUsage applies the insert-or-accumulate rule: an entry with equal
// partItemId, case-insensitive lotBatch and case-insensitive uom already on
// the step absorbs the submitted quantity instead of a second row being
// inserted.
func (s *Step) AddUsage(entry *MaterialUsageEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	if s.state == StepCompleted {
		return ErrStepAlreadyCompleted
	}

	if existing, ok := s.usageIndex[entry.mergeKey()]; ok {
		existing.accumulate(entry.QuantityUsed(), entry.RecordedBy(), entry.RecordedUtc())
		return nil
	}

	s.usage = append(s.usage, entry)
	s.usageIndex[entry.mergeKey()] = entry
	return nil
}

// UpdateUsage rewrites an existing usage entry by id and reindexes it, so
// a changed lot or uom participates in future merges under its new key.
func (s *Step) UpdateUsage(
	entryID, partItemID kernel.UUID,
	lotBatch string,
	quantityUsed float64,
	uom string,
	recordedBy kernel.EmpNo,
	now time.Time,
) error {
	if s.state == StepCompleted {
		return ErrStepAlreadyCompleted
	}

	entry, err := s.findUsage(entryID)
	if err != nil {
		return err
	}

	delete(s.usageIndex, entry.mergeKey())
	if err = entry.update(partItemID, lotBatch, quantityUsed, uom, recordedBy, now); err != nil {
		s.usageIndex[entry.mergeKey()] = entry
		return err
	}
	s.usageIndex[entry.mergeKey()] = entry
	return nil
}

// DeleteUsage removes a usage entry by id. The requester's identity is
// validated for audit purposes; removal is allowed in any step state
// before Completed.
func (s *Step) DeleteUsage(entryID kernel.UUID, requestedBy kernel.EmpNo) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}
	if s.state == StepCompleted {
		return ErrStepAlreadyCompleted
	}

	entry, err := s.findUsage(entryID)
	if err != nil {
		return err
	}

	delete(s.usageIndex, entry.mergeKey())
	for i, e := range s.usage {
		if e.ID().IsEqual(entryID) {
			s.usage = append(s.usage[:i], s.usage[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Step) findUsage(entryID kernel.UUID) (*MaterialUsageEntry, error) {
	for _, e := range s.usage {
		if e.ID().IsEqual(entryID) {
			return e, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("usageEntryId", entryID.String())
}

// AddScrap appends a scrap entry to the step's ledger.
func (s *Step) AddScrap(entry *ScrapEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	if s.state == StepCompleted {
		return ErrStepAlreadyCompleted
	}
	s.scrap = append(s.scrap, entry)
	return nil
}

// DeleteScrap removes a scrap entry by id.
func (s *Step) DeleteScrap(entryID kernel.UUID, requestedBy kernel.EmpNo) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}
	if s.state == StepCompleted {
		return ErrStepAlreadyCompleted
	}
	for i, e := range s.scrap {
		if e.ID().IsEqual(entryID) {
			s.scrap = append(s.scrap[:i], s.scrap[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("scrapEntryId", entryID.String())
}

// AddSerial appends a serial capture. Serial numbers are unique per step.
func (s *Step) AddSerial(entry *SerialCaptureEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	if s.state == StepCompleted {
		return ErrStepAlreadyCompleted
	}
	for _, e := range s.serials {
		if e.SerialNo() == entry.SerialNo() {
			return ErrDuplicateSerial
		}
	}
	s.serials = append(s.serials, entry)
	return nil
}

// DeleteSerial removes a serial capture by id.
func (s *Step) DeleteSerial(entryID kernel.UUID, requestedBy kernel.EmpNo) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}
	if s.state == StepCompleted {
		return ErrStepAlreadyCompleted
	}
	for i, e := range s.serials {
		if e.ID().IsEqual(entryID) {
			s.serials = append(s.serials[:i], s.serials[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("serialEntryId", entryID.String())
}

// AddChecklistEntry appends a checklist item outcome to the step.
func (s *Step) AddChecklistEntry(entry *ChecklistEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	if s.state == StepCompleted {
		return ErrStepAlreadyCompleted
	}
	s.checklist = append(s.checklist, entry)
	return nil
}

// OverrideChecklistItem attaches a supervisor override to a failed item.
func (s *Step) OverrideChecklistItem(entryID kernel.UUID, supervisor kernel.EmpNo) error {
	if s.state == StepCompleted {
		return ErrStepAlreadyCompleted
	}
	for _, e := range s.checklist {
		if e.ID().IsEqual(entryID) {
			return e.ApplyOverride(supervisor)
		}
	}
	return errs.NewObjectNotFoundError("checklistEntryId", entryID.String())
}

// consumeUnitMaterials applies the single-unit proportional consumption
// rule: each material already listed on the step absorbs one more unit of
// usage per unit produced. The rule is deliberately literal; no
// per-material consumption rate is modeled.
func (s *Step) consumeUnitMaterials(empNo kernel.EmpNo, now time.Time) {
	for _, e := range s.usage {
		e.accumulate(1, empNo, now)
	}
}

// markCompleted finalizes the step. Callers must have evaluated the
// capture gate first; this only records the transition.
func (s *Step) markCompleted(manualDurationMinutes *int, now time.Time) error {
	if manualDurationMinutes != nil {
		if s.timeCaptureMode == TimeCaptureAutomated {
			return errs.NewValueIsInvalidErrorWithCause("manualDurationMinutes",
				errors.New("automated time capture does not accept manual durations"))
		}
		if *manualDurationMinutes <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("manualDurationMinutes",
				fmt.Errorf("%d is not greater than 0", *manualDurationMinutes))
		}
	}

	s.state = StepCompleted
	s.completedUtc = &now
	s.manualDurationMinutes = manualDurationMinutes
	return nil
}

// reopen reverses a completion for correction. The step returns to
// InProgress when it had been scanned in, otherwise to Pending; its
// ledgers are preserved.
func (s *Step) reopen() error {
	if s.state != StepCompleted {
		return errs.NewValueIsInvalidErrorWithCause(
			"stepState", fmt.Errorf("%s step cannot be reopened", s.state.String()))
	}
	s.completedUtc = nil
	if s.scanInUtc != nil {
		s.state = StepInProgress
	} else {
		s.state = StepPending
	}
	return nil
}

// applyAdjustment rewrites the plan attributes the review workflow may
// change: the sequence and the work center.
func (s *Step) applyAdjustment(sequence int, workCenterID kernel.UUID) error {
	if sequence <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stepSequence", fmt.Errorf("%d is not greater than 0", sequence))
	}
	if err := workCenterID.Validate(); err != nil {
		return err
	}
	s.sequence = sequence
	s.workCenterID = workCenterID
	return nil
}
