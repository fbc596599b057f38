package order

import (
	"fmt"

	"shopfloor/internal/pkg/errs"
)

// LifecycleStatus represents the order-level lifecycle state.
//
// State transitions:
//
//	Draft ──> InboundPlanned ──> PickupScheduled ──> Received
//	      ──> ProductionComplete ──> InvoiceReady ──> Invoiced
//
// Each status has exactly one permitted successor; skipping stages is not
// allowed. Holds are not part of this enum — they gate advancement as an
// independent overlay on the aggregate.
type LifecycleStatus int

const (
	// LifecycleUnknown catches uninitialized status values.
	LifecycleUnknown LifecycleStatus = iota

	// Draft is the initial status of a newly created order.
	Draft

	// InboundPlanned means inbound logistics have been planned and the
	// order is ready for pickup from the customer site.
	InboundPlanned

	// PickupScheduled means a pickup date has been committed.
	PickupScheduled

	// Received means the material has arrived and is pending
	// reconciliation against the ordered quantities.
	Received

	// ProductionComplete means every route on every line has finished
	// and the order is ready to ship.
	ProductionComplete

	// InvoiceReady means shipping is done and the order awaits the
	// invoice submission wizard.
	InvoiceReady

	// Invoiced is the terminal status: the order is billed and closed.
	Invoiced
)

func getLifecycleStatusStrings() map[LifecycleStatus]string {
	return map[LifecycleStatus]string{
		LifecycleUnknown:   "Unknown",
		Draft:              "Draft",
		InboundPlanned:     "InboundPlanned",
		PickupScheduled:    "PickupScheduled",
		Received:           "Received",
		ProductionComplete: "ProductionComplete",
		InvoiceReady:       "InvoiceReady",
		Invoiced:           "Invoiced",
	}
}

func getValidLifecycleStatusStrings() map[LifecycleStatus]string {
	//nolint:exhaustive // LifecycleUnknown is intentionally excluded as invalid
	return map[LifecycleStatus]string{
		Draft:              "Draft",
		InboundPlanned:     "InboundPlanned",
		PickupScheduled:    "PickupScheduled",
		Received:           "Received",
		ProductionComplete: "ProductionComplete",
		InvoiceReady:       "InvoiceReady",
		Invoiced:           "Invoiced",
	}
}

// lifecycleSuccessors is the single source of truth for permitted
// order-level transitions.
func lifecycleSuccessors() map[LifecycleStatus]LifecycleStatus {
	return map[LifecycleStatus]LifecycleStatus{
		Draft:              InboundPlanned,
		InboundPlanned:     PickupScheduled,
		PickupScheduled:    Received,
		Received:           ProductionComplete,
		ProductionComplete: InvoiceReady,
		InvoiceReady:       Invoiced,
	}
}

// LifecycleStatusFromString parses a status name as received on the
// transport boundary.
func LifecycleStatusFromString(s string) (LifecycleStatus, error) {
	for status, name := range getValidLifecycleStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return LifecycleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"lifecycleStatus", fmt.Errorf("%q is not a valid lifecycle status", s))
}

// Validate checks that the status is one of the defined lifecycle stages.
func (s LifecycleStatus) Validate() error {
	if _, ok := getValidLifecycleStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"lifecycleStatus", fmt.Errorf("%d is not a valid lifecycle status", s))
	}
	return nil
}

// String returns the human-readable status name. Implements fmt.Stringer
// and is safe on any value, including invalid ones.
func (s LifecycleStatus) String() string {
	if str, ok := getLifecycleStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateAdvanceTo checks whether target is the permitted successor of the
// current status, without performing the transition.
func (s LifecycleStatus) ValidateAdvanceTo(target LifecycleStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}
	next, ok := lifecycleSuccessors()[s]
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"lifecycleStatus",
			fmt.Errorf("%s is terminal and cannot be advanced", s.String()))
	}
	if next != target {
		return errs.NewValueIsInvalidErrorWithCause(
			"targetStatus",
			fmt.Errorf("%s is not a permitted successor of %s", target.String(), s.String()))
	}
	return nil
}

// AdvanceTo transitions to target, returning the new status.
// Returns an error when target is not the permitted successor.
func (s LifecycleStatus) AdvanceTo(target LifecycleStatus) (LifecycleStatus, error) {
	if err := s.ValidateAdvanceTo(target); err != nil {
		return 0, err
	}
	return target, nil
}

// IsTerminal reports whether no further advancement is possible.
func (s LifecycleStatus) IsTerminal() bool {
	_, ok := lifecycleSuccessors()[s]
	return !ok && s == Invoiced
}
