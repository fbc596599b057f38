package route

import (
	"fmt"
	"strings"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"
)

// RequirementCategory names one clause of the capture-requirement gate.
// Gate errors must name the unmet category, so the categories are part of
// the public contract.
type RequirementCategory string

const (
	RequirementEmpNo     RequirementCategory = "EmployeeNumber"
	RequirementUnblocked RequirementCategory = "BlockedReason"
	RequirementUsage     RequirementCategory = "MaterialUsage"
	RequirementScrap     RequirementCategory = "Scrap"
	RequirementSerial    RequirementCategory = "SerialCapture"
	RequirementChecklist RequirementCategory = "Checklist"
	RequirementQuantity  RequirementCategory = "Quantity"
)

// GateResult is the outcome of one capture-gate evaluation.
type GateResult struct {
	Unmet []RequirementCategory
}

// Satisfied reports whether every gate clause held.
func (r GateResult) Satisfied() bool {
	return len(r.Unmet) == 0
}

// Err converts an unsatisfied result into a gate error naming the unmet
// requirement categories. Returns nil when satisfied.
func (r GateResult) Err() error {
	if r.Satisfied() {
		return nil
	}
	names := make([]string, len(r.Unmet))
	for i, c := range r.Unmet {
		names[i] = string(c)
	}
	return errs.NewValueIsInvalidErrorWithCause("captureGate",
		fmt.Errorf("unmet requirements: %s", strings.Join(names, ", ")))
}

// EvaluateGate computes the capture-requirement gate from the step's live
// ledger state:
//
//	canComplete = hasEmpNo ∧ ¬blocked
//	            ∧ (¬requiresUsage     ∨ usageDone)
//	            ∧ (¬requiresScrap     ∨ scrapDone)
//	            ∧ (¬requiresSerial    ∨ serialDone)
//	            ∧ (¬requiresChecklist ∨ checklistDone)
//
// A ledger clause is done once at least one entry exists during the
// current non-completed lifetime of the step. The result is never cached:
// every evaluation re-reads the ledgers, so a reloaded step reflects
// entries added or deleted in other sessions.
func (s *Step) EvaluateGate(empNo kernel.EmpNo) GateResult {
	var unmet []RequirementCategory

	if empNo.Validate() != nil {
		unmet = append(unmet, RequirementEmpNo)
	}
	if s.IsBlocked() {
		unmet = append(unmet, RequirementUnblocked)
	}
	if s.requiresUsageEntry && len(s.usage) == 0 {
		unmet = append(unmet, RequirementUsage)
	}
	if s.requiresScrapEntry && len(s.scrap) == 0 {
		unmet = append(unmet, RequirementScrap)
	}
	if s.requiresSerialCapture && len(s.serials) == 0 {
		unmet = append(unmet, RequirementSerial)
	}
	if s.requiresChecklistCompletion && !s.checklistDone() {
		unmet = append(unmet, RequirementChecklist)
	}

	return GateResult{Unmet: unmet}
}

// CanComplete reports whether the capture gate is satisfied for empNo.
func (s *Step) CanComplete(empNo kernel.EmpNo) bool {
	return s.EvaluateGate(empNo).Satisfied()
}

// checklistDone requires at least one recorded item, with failed items
// resolved according to the step's failure policy: under BlockCompletion
// any failed item keeps the gate shut; under AllowWithSupervisorOverride a
// failed item passes once a supervisor override is attached.
func (s *Step) checklistDone() bool {
	if len(s.checklist) == 0 {
		return false
	}
	for _, e := range s.checklist {
		if e.Passed() {
			continue
		}
		if s.checklistFailurePolicy == BlockCompletion {
			return false
		}
		if e.SupervisorOverride() == nil {
			return false
		}
	}
	return true
}
