package order

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"
)

var ErrHoldReasonCodeIsNotConstructed = errors.New(
	"HoldReasonCode must be created via NewHoldReasonCode constructor")

// HoldReasonCode is a configured reason code for one hold overlay type.
// Codes are keyed by (overlay type, code name) and managed by
// administrators. Deactivating or deleting a code never retroactively
// invalidates holds that referenced it: audit history stores the code name
// as plain text, not a foreign key.
type HoldReasonCode struct {
	id          kernel.UUID
	holdType    HoldType
	code        string
	description string
	active      bool

	isConstructed bool
}

// NewHoldReasonCode creates a validated, active reason code.
func NewHoldReasonCode(id kernel.UUID, holdType HoldType, code, description string) (*HoldReasonCode, error) {
	rc := &HoldReasonCode{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		rc.setID(id),
		rc.setHoldType(holdType),
		rc.setCode(code),
	); err != nil {
		return nil, err
	}

	rc.description = description
	return rc, nil
}

// RestoreHoldReasonCode reconstructs a reason code from persistence.
func RestoreHoldReasonCode(
	id kernel.UUID,
	holdType HoldType,
	code, description string,
	active bool,
) (*HoldReasonCode, error) {
	rc, err := NewHoldReasonCode(id, holdType, code, description)
	if err != nil {
		return nil, err
	}
	rc.active = active
	return rc, nil
}

// Validate ensures the reason code was created through its constructor.
func (rc *HoldReasonCode) Validate() error {
	if rc == nil || !rc.isConstructed {
		return ErrHoldReasonCodeIsNotConstructed
	}
	return nil
}

// ID returns the reason code's unique identifier.
func (rc *HoldReasonCode) ID() kernel.UUID {
	return rc.id
}

// HoldType returns the overlay type this code belongs to.
func (rc *HoldReasonCode) HoldType() HoldType {
	return rc.holdType
}

// Code returns the code name, unique within its overlay type.
func (rc *HoldReasonCode) Code() string {
	return rc.code
}

// Description returns the operator-facing description.
func (rc *HoldReasonCode) Description() string {
	return rc.description
}

// IsActive reports whether the code may be used for new holds.
func (rc *HoldReasonCode) IsActive() bool {
	return rc.active
}

// Update changes the description and active flag. The (type, code) key is
// immutable; renaming a code means creating a new one.
func (rc *HoldReasonCode) Update(description string, active bool) {
	rc.description = description
	rc.active = active
}

// Deactivate retires the code for new holds without touching history.
func (rc *HoldReasonCode) Deactivate() {
	rc.active = false
}

func (rc *HoldReasonCode) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	rc.id = id
	return nil
}

func (rc *HoldReasonCode) setHoldType(holdType HoldType) error {
	if err := holdType.Validate(); err != nil {
		return err
	}
	rc.holdType = holdType
	return nil
}

func (rc *HoldReasonCode) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	rc.code = code
	return nil
}
