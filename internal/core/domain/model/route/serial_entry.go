package route

import (
	"errors"
	"fmt"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"
)

var ErrSerialEntryIsNotConstructed = errors.New(
	"SerialCaptureEntry must be created via NewSerialCaptureEntry constructor")

// ConditionStatus is the received condition of a serialized unit.
type ConditionStatus int

const (
	ConditionUnknown ConditionStatus = iota
	ConditionGood
	ConditionBad
)

// Validate checks that the status is Good or Bad.
func (c ConditionStatus) Validate() error {
	if c != ConditionGood && c != ConditionBad {
		return errs.NewValueIsInvalidErrorWithCause(
			"conditionStatus", fmt.Errorf("%d is not a valid condition status", c))
	}
	return nil
}

// String returns the status name.
func (c ConditionStatus) String() string {
	switch c {
	case ConditionGood:
		return "Good"
	case ConditionBad:
		return "Bad"
	case ConditionUnknown:
	}
	return "Unknown"
}

// SerialCaptureEntry records one serialized unit processed at a route step.
// Serial numbers are unique within their step.
type SerialCaptureEntry struct {
	id              kernel.UUID
	serialNo        string
	manufacturer    string
	manufactureDate *time.Time
	testDate        *time.Time
	lidColorID      *kernel.UUID
	lidSizeID       *kernel.UUID
	condition       ConditionStatus
	recordedBy      kernel.EmpNo
	recordedUtc     time.Time
	isConstructed   bool
}

// SerialCaptureAttributes carries the optional descriptive fields of a
// serial capture through the constructor.
type SerialCaptureAttributes struct {
	Manufacturer    string
	ManufactureDate *time.Time
	TestDate        *time.Time
	LidColorID      *kernel.UUID
	LidSizeID       *kernel.UUID
}

// NewSerialCaptureEntry creates a validated serial capture entry.
func NewSerialCaptureEntry(
	id kernel.UUID,
	serialNo string,
	attrs SerialCaptureAttributes,
	condition ConditionStatus,
	recordedBy kernel.EmpNo,
	recordedUtc time.Time,
) (*SerialCaptureEntry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if serialNo == "" {
		return nil, errs.NewValueIsRequiredError("serialNo")
	}
	if err := condition.Validate(); err != nil {
		return nil, err
	}
	if err := recordedBy.Validate(); err != nil {
		return nil, err
	}

	return &SerialCaptureEntry{
		id:              id,
		serialNo:        serialNo,
		manufacturer:    attrs.Manufacturer,
		manufactureDate: attrs.ManufactureDate,
		testDate:        attrs.TestDate,
		lidColorID:      attrs.LidColorID,
		lidSizeID:       attrs.LidSizeID,
		condition:       condition,
		recordedBy:      recordedBy,
		recordedUtc:     recordedUtc,
		isConstructed:   true,
	}, nil
}

// Validate ensures the entry was created through its constructor.
func (e *SerialCaptureEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrSerialEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *SerialCaptureEntry) ID() kernel.UUID { return e.id }

// SerialNo returns the captured serial number.
func (e *SerialCaptureEntry) SerialNo() string { return e.serialNo }

// Manufacturer returns the unit's manufacturer, empty when unknown.
func (e *SerialCaptureEntry) Manufacturer() string { return e.manufacturer }

// ManufactureDate returns the manufacture date when captured.
func (e *SerialCaptureEntry) ManufactureDate() *time.Time { return e.manufactureDate }

// TestDate returns the last test date when captured.
func (e *SerialCaptureEntry) TestDate() *time.Time { return e.testDate }

// LidColorID returns the lid color lookup value when captured.
func (e *SerialCaptureEntry) LidColorID() *kernel.UUID { return e.lidColorID }

// LidSizeID returns the lid size lookup value when captured.
func (e *SerialCaptureEntry) LidSizeID() *kernel.UUID { return e.lidSizeID }

// Condition returns the received condition of the unit.
func (e *SerialCaptureEntry) Condition() ConditionStatus { return e.condition }

// RecordedBy returns the employee who captured the serial.
func (e *SerialCaptureEntry) RecordedBy() kernel.EmpNo { return e.recordedBy }

// RecordedUtc returns when the serial was captured.
func (e *SerialCaptureEntry) RecordedUtc() time.Time { return e.recordedUtc }
