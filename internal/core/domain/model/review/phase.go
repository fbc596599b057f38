package review

import (
	"fmt"

	"shopfloor/internal/pkg/errs"
)

// Phase identifies which review stage a record belongs to.
type Phase int

const (
	PhaseUnknown Phase = iota

	// RouteValidation is the clerk's post-execution check of a line's
	// route: captured quantities, ledgers and structural adjustments.
	RouteValidation

	// SupervisorReview is the second stage: a supervisor approves or
	// rejects the validated route before invoicing can proceed.
	SupervisorReview
)

func getPhaseStrings() map[Phase]string {
	return map[Phase]string{
		PhaseUnknown:     "Unknown",
		RouteValidation:  "RouteValidation",
		SupervisorReview: "SupervisorReview",
	}
}

// PhaseFromString parses a phase name as stored in the database.
func PhaseFromString(s string) (Phase, error) {
	for phase, str := range getPhaseStrings() {
		if str == s && phase != PhaseUnknown {
			return phase, nil
		}
	}
	return PhaseUnknown, errs.NewValueIsInvalidErrorWithCause(
		"reviewPhase", fmt.Errorf("%q is not a valid review phase", s))
}

// Validate checks that the phase is one of the defined review phases.
func (p Phase) Validate() error {
	if p != RouteValidation && p != SupervisorReview {
		return errs.NewValueIsInvalidErrorWithCause(
			"reviewPhase", fmt.Errorf("%d is not a valid review phase", p))
	}
	return nil
}

// String returns the phase name.
func (p Phase) String() string {
	if str, ok := getPhaseStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// Decision is the outcome of a review record.
type Decision int

const (
	DecisionUnknown Decision = iota

	// DecisionPending means the record awaits a reviewer.
	DecisionPending

	// DecisionApproved passes the line to the next stage.
	DecisionApproved

	// DecisionRejected sends the line back for correction.
	DecisionRejected
)

func getDecisionStrings() map[Decision]string {
	return map[Decision]string{
		DecisionUnknown:  "Unknown",
		DecisionPending:  "Pending",
		DecisionApproved: "Approved",
		DecisionRejected: "Rejected",
	}
}

// DecisionFromString parses a decision name as stored in the database.
func DecisionFromString(s string) (Decision, error) {
	for decision, str := range getDecisionStrings() {
		if str == s && decision != DecisionUnknown {
			return decision, nil
		}
	}
	return DecisionUnknown, errs.NewValueIsInvalidErrorWithCause(
		"reviewDecision", fmt.Errorf("%q is not a valid review decision", s))
}

// Validate checks that the decision is one of the defined decisions.
func (d Decision) Validate() error {
	switch d {
	case DecisionPending, DecisionApproved, DecisionRejected:
		return nil
	case DecisionUnknown:
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"reviewDecision", fmt.Errorf("%d is not a valid review decision", d))
}

// String returns the decision name.
func (d Decision) String() string {
	if str, ok := getDecisionStrings()[d]; ok {
		return str
	}
	return "Unknown"
}
