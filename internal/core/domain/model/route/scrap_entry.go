package route

import (
	"errors"
	"fmt"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"
)

var ErrScrapEntryIsNotConstructed = errors.New(
	"ScrapEntry must be created via NewScrapEntry constructor")

// ScrapEntry records scrapped units at a route step with the reason for
// the loss.
type ScrapEntry struct {
	id               kernel.UUID
	quantityScrapped int
	scrapReasonID    kernel.UUID
	recordedBy       kernel.EmpNo
	recordedUtc      time.Time
	isConstructed    bool
}

// NewScrapEntry creates a validated scrap entry.
func NewScrapEntry(
	id kernel.UUID,
	quantityScrapped int,
	scrapReasonID kernel.UUID,
	recordedBy kernel.EmpNo,
	recordedUtc time.Time,
) (*ScrapEntry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if quantityScrapped <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantityScrapped", fmt.Errorf("%d is not greater than 0", quantityScrapped))
	}
	if err := scrapReasonID.Validate(); err != nil {
		return nil, err
	}
	if err := recordedBy.Validate(); err != nil {
		return nil, err
	}

	return &ScrapEntry{
		id:               id,
		quantityScrapped: quantityScrapped,
		scrapReasonID:    scrapReasonID,
		recordedBy:       recordedBy,
		recordedUtc:      recordedUtc,
		isConstructed:    true,
	}, nil
}

// Validate ensures the entry was created through its constructor.
func (e *ScrapEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrScrapEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *ScrapEntry) ID() kernel.UUID { return e.id }

// QuantityScrapped returns the number of units lost.
func (e *ScrapEntry) QuantityScrapped() int { return e.quantityScrapped }

// ScrapReasonID returns the configured scrap reason.
func (e *ScrapEntry) ScrapReasonID() kernel.UUID { return e.scrapReasonID }

// RecordedBy returns the employee who recorded the scrap.
func (e *ScrapEntry) RecordedBy() kernel.EmpNo { return e.recordedBy }

// RecordedUtc returns when the scrap was recorded.
func (e *ScrapEntry) RecordedUtc() time.Time { return e.recordedUtc }
