package order

import (
	"fmt"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"
	"shopfloor/internal/pkg/guard"
)

// HoldType classifies the hold overlays that can be layered on an order.
type HoldType int

const (
	HoldTypeUnknown HoldType = iota

	// CreditHold blocks advancement until accounting releases the order.
	CreditHold

	// QualityHold blocks advancement pending a quality investigation.
	QualityHold

	// DocumentationHold blocks advancement until required paperwork
	// is complete.
	DocumentationHold

	// CustomerHold blocks advancement at the customer's request.
	CustomerHold
)

func getValidHoldTypeStrings() map[HoldType]string {
	//nolint:exhaustive // HoldTypeUnknown is intentionally excluded as invalid
	return map[HoldType]string{
		CreditHold:        "CreditHold",
		QualityHold:       "QualityHold",
		DocumentationHold: "DocumentationHold",
		CustomerHold:      "CustomerHold",
	}
}

// HoldTypeFromString parses a hold type name from the transport boundary.
func HoldTypeFromString(s string) (HoldType, error) {
	for t, name := range getValidHoldTypeStrings() {
		if name == s {
			return t, nil
		}
	}
	return HoldTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"holdType", fmt.Errorf("%q is not a valid hold type", s))
}

// Validate checks that the hold type is one of the defined overlay types.
func (t HoldType) Validate() error {
	if _, ok := getValidHoldTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"holdType", fmt.Errorf("%d is not a valid hold type", t))
	}
	return nil
}

// String returns the hold type name.
func (t HoldType) String() string {
	if s, ok := getValidHoldTypeStrings()[t]; ok {
		return s
	}
	return "Unknown"
}

var ErrHoldOverlayIsNotConstructed = fmt.Errorf(
	"HoldOverlay must be created via NewHoldOverlay constructor")

// HoldOverlay is the block/reason/owner/note overlay layered on an order.
// It is orthogonal to the lifecycle status: applying or clearing a hold
// never changes the status, and a hold persists until explicitly cleared.
// At most one overlay is applied at a time; applying a new one replaces
// the previous overlay entirely.
type HoldOverlay struct {
	holdType   HoldType
	reasonCode string
	ownerRole  kernel.Role
	note       string

	guard guard.ConstructorGuard
}

// NewHoldOverlay creates a validated hold overlay. The reason code must be
// resolved against the configured codes for the overlay type before calling
// this constructor; here it only has to be non-empty.
func NewHoldOverlay(holdType HoldType, reasonCode string, ownerRole kernel.Role, note string) (HoldOverlay, error) {
	if err := holdType.Validate(); err != nil {
		return HoldOverlay{}, err
	}
	if reasonCode == "" {
		return HoldOverlay{}, errs.NewValueIsRequiredError("reasonCode")
	}
	if err := ownerRole.Validate(); err != nil {
		return HoldOverlay{}, err
	}

	return HoldOverlay{
		holdType:   holdType,
		reasonCode: reasonCode,
		ownerRole:  ownerRole,
		note:       note,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the overlay was created through NewHoldOverlay.
func (h HoldOverlay) Validate() error {
	return h.guard.Validate(ErrHoldOverlayIsNotConstructed)
}

// Type returns the overlay type.
func (h HoldOverlay) Type() HoldType {
	return h.holdType
}

// ReasonCode returns the configured reason code attached at apply time.
func (h HoldOverlay) ReasonCode() string {
	return h.reasonCode
}

// OwnerRole returns the role that applied the hold.
func (h HoldOverlay) OwnerRole() kernel.Role {
	return h.ownerRole
}

// Note returns the free-text note attached at apply time.
func (h HoldOverlay) Note() string {
	return h.note
}
