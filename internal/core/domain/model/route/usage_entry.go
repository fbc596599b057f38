package route

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"
)

var ErrUsageEntryIsNotConstructed = errors.New(
	"MaterialUsageEntry must be created via NewMaterialUsageEntry constructor")

// MaterialUsageEntry records consumption of a part at a route step.
//
// Entries are deduplicated by the composite key (partItemId,
// case-insensitive lotBatch, case-insensitive uom): a repeat submission for
// the same key accumulates onto the existing entry's quantity instead of
// inserting a second row. The key lookup lives on the owning Step.
type MaterialUsageEntry struct {
	id            kernel.UUID
	partItemID    kernel.UUID
	lotBatch      string
	quantityUsed  float64
	uom           string
	recordedBy    kernel.EmpNo
	recordedUtc   time.Time
	isConstructed bool
}

// NewMaterialUsageEntry creates a validated usage entry.
func NewMaterialUsageEntry(
	id, partItemID kernel.UUID,
	lotBatch string,
	quantityUsed float64,
	uom string,
	recordedBy kernel.EmpNo,
	recordedUtc time.Time,
) (*MaterialUsageEntry, error) {
	e := &MaterialUsageEntry{isConstructed: true}

	if err := errors.Join(
		e.setID(id),
		e.setPartItemID(partItemID),
		e.setQuantityUsed(quantityUsed),
		e.setUom(uom),
		e.setRecordedBy(recordedBy),
	); err != nil {
		return nil, err
	}

	e.lotBatch = lotBatch
	e.recordedUtc = recordedUtc
	return e, nil
}

// Validate ensures the entry was created through its constructor.
func (e *MaterialUsageEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrUsageEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *MaterialUsageEntry) ID() kernel.UUID { return e.id }

// PartItemID returns the consumed part.
func (e *MaterialUsageEntry) PartItemID() kernel.UUID { return e.partItemID }

// LotBatch returns the lot/batch designation, empty when untracked.
func (e *MaterialUsageEntry) LotBatch() string { return e.lotBatch }

// QuantityUsed returns the accumulated consumed quantity.
func (e *MaterialUsageEntry) QuantityUsed() float64 { return e.quantityUsed }

// Uom returns the unit of measure.
func (e *MaterialUsageEntry) Uom() string { return e.uom }

// RecordedBy returns the employee who last touched the entry.
func (e *MaterialUsageEntry) RecordedBy() kernel.EmpNo { return e.recordedBy }

// RecordedUtc returns the time of the last accumulation or update.
func (e *MaterialUsageEntry) RecordedUtc() time.Time { return e.recordedUtc }

// mergeKey normalizes the dedup key: lot and uom compare case-insensitively.
func (e *MaterialUsageEntry) mergeKey() string {
	return usageMergeKey(e.partItemID, e.lotBatch, e.uom)
}

func usageMergeKey(partItemID kernel.UUID, lotBatch, uom string) string {
	return partItemID.String() + "|" + strings.ToLower(lotBatch) + "|" + strings.ToLower(uom)
}

// accumulate merges a repeat submission into this entry.
func (e *MaterialUsageEntry) accumulate(quantity float64, recordedBy kernel.EmpNo, recordedUtc time.Time) {
	e.quantityUsed += quantity
	e.recordedBy = recordedBy
	e.recordedUtc = recordedUtc
}

// update rewrites the entry in place. Used by the ledger update operation.
func (e *MaterialUsageEntry) update(
	partItemID kernel.UUID,
	lotBatch string,
	quantityUsed float64,
	uom string,
	recordedBy kernel.EmpNo,
	recordedUtc time.Time,
) error {
	if err := errors.Join(
		e.setPartItemID(partItemID),
		e.setQuantityUsed(quantityUsed),
		e.setUom(uom),
		e.setRecordedBy(recordedBy),
	); err != nil {
		return err
	}
	e.lotBatch = lotBatch
	e.recordedUtc = recordedUtc
	return nil
}

func (e *MaterialUsageEntry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *MaterialUsageEntry) setPartItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.partItemID = id
	return nil
}

func (e *MaterialUsageEntry) setQuantityUsed(q float64) error {
	if q <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantityUsed", fmt.Errorf("%v is not greater than 0", q))
	}
	e.quantityUsed = q
	return nil
}

func (e *MaterialUsageEntry) setUom(uom string) error {
	if uom == "" {
		return errs.NewValueIsRequiredError("uom")
	}
	e.uom = uom
	return nil
}

func (e *MaterialUsageEntry) setRecordedBy(empNo kernel.EmpNo) error {
	if err := empNo.Validate(); err != nil {
		return err
	}
	e.recordedBy = empNo
	return nil
}
