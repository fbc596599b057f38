package route

import (
	"fmt"

	"shopfloor/internal/pkg/errs"
)

// StepState represents the execution state of a route step.
//
// State transitions:
//
//	Pending ──> InProgress ──> Completed
//	                ^               │
//	                └── (reopen) ───┘
//
// Completed is terminal in normal operation; only the supervisor review
// workflow's reopen action moves a step back. Blocking is not a state: a
// blocked step keeps its state and carries a blockedReason overlay that
// prevents completion.
type StepState int

const (
	// StepStateUnknown catches uninitialized values.
	StepStateUnknown StepState = iota

	// StepPending is the initial state before the first scan-in.
	StepPending

	// StepInProgress means an operator has scanned in on the step.
	StepInProgress

	// StepCompleted means the step has passed the capture gate and is done.
	StepCompleted
)

func getStepStateStrings() map[StepState]string {
	return map[StepState]string{
		StepStateUnknown: "Unknown",
		StepPending:      "Pending",
		StepInProgress:   "InProgress",
		StepCompleted:    "Completed",
	}
}

// Validate checks that the state is one of the defined step states.
func (s StepState) Validate() error {
	switch s {
	case StepPending, StepInProgress, StepCompleted:
		return nil
	case StepStateUnknown:
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"stepState", fmt.Errorf("%d is not a valid step state", s))
}

// String returns the human-readable state name.
func (s StepState) String() string {
	if str, ok := getStepStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ProcessingMode selects how a step records production progress.
type ProcessingMode int

const (
	ProcessingModeUnknown ProcessingMode = iota

	// BatchQuantity steps report completed quantities in increments.
	BatchQuantity

	// SingleUnit steps report exactly one unit per progress call, with
	// per-unit serial capture and material consumption.
	SingleUnit
)

// Validate checks that the mode is one of the defined processing modes.
func (m ProcessingMode) Validate() error {
	if m != BatchQuantity && m != SingleUnit {
		return errs.NewValueIsInvalidErrorWithCause(
			"processingMode", fmt.Errorf("%d is not a valid processing mode", m))
	}
	return nil
}

// String returns the mode name.
func (m ProcessingMode) String() string {
	switch m {
	case BatchQuantity:
		return "BatchQuantity"
	case SingleUnit:
		return "SingleUnit"
	case ProcessingModeUnknown:
	}
	return "Unknown"
}

// TimeCaptureMode selects how step labor time is captured.
type TimeCaptureMode int

const (
	TimeCaptureModeUnknown TimeCaptureMode = iota

	// TimeCaptureAutomated derives duration purely from scan timestamps.
	TimeCaptureAutomated

	// TimeCaptureManual requires an operator-entered duration.
	TimeCaptureManual

	// TimeCaptureHybrid uses scans but accepts a manual override.
	TimeCaptureHybrid
)

// Validate checks that the mode is one of the defined capture modes.
func (m TimeCaptureMode) Validate() error {
	if m != TimeCaptureAutomated && m != TimeCaptureManual && m != TimeCaptureHybrid {
		return errs.NewValueIsInvalidErrorWithCause(
			"timeCaptureMode", fmt.Errorf("%d is not a valid time capture mode", m))
	}
	return nil
}

// String returns the mode name.
func (m TimeCaptureMode) String() string {
	switch m {
	case TimeCaptureAutomated:
		return "Automated"
	case TimeCaptureManual:
		return "Manual"
	case TimeCaptureHybrid:
		return "Hybrid"
	case TimeCaptureModeUnknown:
	}
	return "Unknown"
}

// ChecklistFailurePolicy selects what a failed checklist item does to
// step completion.
type ChecklistFailurePolicy int

const (
	ChecklistFailurePolicyUnknown ChecklistFailurePolicy = iota

	// BlockCompletion makes any unresolved failed item block the step.
	BlockCompletion

	// AllowWithSupervisorOverride lets a supervisor override a failed
	// item so the step can still complete.
	AllowWithSupervisorOverride
)

// Validate checks that the policy is one of the defined policies.
func (p ChecklistFailurePolicy) Validate() error {
	if p != BlockCompletion && p != AllowWithSupervisorOverride {
		return errs.NewValueIsInvalidErrorWithCause(
			"checklistFailurePolicy", fmt.Errorf("%d is not a valid checklist failure policy", p))
	}
	return nil
}

// String returns the policy name.
func (p ChecklistFailurePolicy) String() string {
	switch p {
	case BlockCompletion:
		return "BlockCompletion"
	case AllowWithSupervisorOverride:
		return "AllowWithSupervisorOverride"
	case ChecklistFailurePolicyUnknown:
	}
	return "Unknown"
}
