package order

import (
	"fmt"

	"shopfloor/internal/pkg/errs"
)

// LegacyStatus is the shipping-era status vocabulary still used by older
// reports and screens. It is kept in sync with LifecycleStatus on every
// transition; the mapping functions below are pure and must stay that way.
type LegacyStatus int

const (
	LegacyUnknown LegacyStatus = iota
	LegacyDraft
	LegacyReadyForPickup
	LegacyPickupScheduled
	LegacyReceivedPendingReconciliation
	LegacyReadyToShip
	LegacyReadyToInvoice
	LegacyClosed
)

func getLegacyStatusStrings() map[LegacyStatus]string {
	return map[LegacyStatus]string{
		LegacyUnknown:                       "Unknown",
		LegacyDraft:                         "Draft",
		LegacyReadyForPickup:                "ReadyForPickup",
		LegacyPickupScheduled:               "PickupScheduled",
		LegacyReceivedPendingReconciliation: "ReceivedPendingReconciliation",
		LegacyReadyToShip:                   "ReadyToShip",
		LegacyReadyToInvoice:                "ReadyToInvoice",
		LegacyClosed:                        "Closed",
	}
}

// String returns the legacy status name used by compatibility surfaces.
func (s LegacyStatus) String() string {
	if str, ok := getLegacyStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks that the legacy status is one of the defined values.
func (s LegacyStatus) Validate() error {
	if s <= LegacyUnknown || s > LegacyClosed {
		return errs.NewValueIsInvalidErrorWithCause(
			"legacyStatus", fmt.Errorf("%d is not a valid legacy status", s))
	}
	return nil
}

// LegacyFromLifecycle maps a lifecycle status onto its legacy display name.
// Pure function; preserved exactly for display and compatibility.
func LegacyFromLifecycle(s LifecycleStatus) LegacyStatus {
	switch s {
	case Draft:
		return LegacyDraft
	case InboundPlanned:
		return LegacyReadyForPickup
	case PickupScheduled:
		return LegacyPickupScheduled
	case Received:
		return LegacyReceivedPendingReconciliation
	case ProductionComplete:
		return LegacyReadyToShip
	case InvoiceReady:
		return LegacyReadyToInvoice
	case Invoiced:
		return LegacyClosed
	case LifecycleUnknown:
		return LegacyUnknown
	default:
		return LegacyUnknown
	}
}

// LifecycleFromLegacy maps a legacy status back onto the lifecycle enum.
// Pure function; the inverse of LegacyFromLifecycle.
func LifecycleFromLegacy(s LegacyStatus) LifecycleStatus {
	switch s {
	case LegacyDraft:
		return Draft
	case LegacyReadyForPickup:
		return InboundPlanned
	case LegacyPickupScheduled:
		return PickupScheduled
	case LegacyReceivedPendingReconciliation:
		return Received
	case LegacyReadyToShip:
		return ProductionComplete
	case LegacyReadyToInvoice:
		return InvoiceReady
	case LegacyClosed:
		return Invoiced
	case LegacyUnknown:
		return LifecycleUnknown
	default:
		return LifecycleUnknown
	}
}
