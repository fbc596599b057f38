package dispatch

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/pkg/errs"
	"shopfloor/internal/pkg/syncutil"
)

// ErrOrderHasUnsavedEdits blocks status advancement from the board while
// the same order carries unsaved dispatch-field edits.
var ErrOrderHasUnsavedEdits = errors.New(
	"order has unsaved dispatch edits; save or discard them first")

// Board is the in-session edit buffer of the dispatch screen. Every field
// edit marks its order dirty; SaveablePatches turns the dirty subset into
// partial-update payloads and MarkSaved / Reload close the loop after the
// persistence call.
type Board struct {
	records map[string]*Record
	dirty   map[string]map[string]struct{}

	// loadGen invalidates in-flight async loads: a reload result is only
	// applied when no newer load has started since it was requested.
	loadGen syncutil.Generation
}

// NewBoard builds a clean board from freshly loaded records.
func NewBoard(records []Record) *Board {
	b := &Board{
		records: make(map[string]*Record, len(records)),
		dirty:   make(map[string]map[string]struct{}),
	}
	for i := range records {
		r := records[i]
		b.records[r.OrderID.String()] = &r
	}
	return b
}

// Record returns the editable record for an order.
func (b *Board) Record(orderID kernel.UUID) (*Record, error) {
	r, ok := b.records[orderID.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", orderID.String())
	}
	return r, nil
}

// Records returns all records ordered by order id, for stable rendering.
func (b *Board) Records() []*Record {
	out := make([]*Record, 0, len(b.records))
	for _, r := range b.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].OrderID.String() < out[j].OrderID.String()
	})
	return out
}

// SetTrailerNo edits the trailer number and marks the order dirty.
func (b *Board) SetTrailerNo(orderID kernel.UUID, v string) error {
	return b.edit(orderID, FieldTrailerNo, func(r *Record) { r.TrailerNo = v })
}

// SetCarrier edits the carrier and marks the order dirty.
func (b *Board) SetCarrier(orderID kernel.UUID, v string) error {
	return b.edit(orderID, FieldCarrier, func(r *Record) { r.Carrier = v })
}

// SetDispatchDate edits the dispatch date and marks the order dirty. A nil
// value clears the date.
func (b *Board) SetDispatchDate(orderID kernel.UUID, v *time.Time) error {
	return b.edit(orderID, FieldDispatchDate, func(r *Record) { r.DispatchDate = v })
}

// SetScheduledDate edits the scheduled date and marks the order dirty.
func (b *Board) SetScheduledDate(orderID kernel.UUID, v *time.Time) error {
	return b.edit(orderID, FieldScheduledDate, func(r *Record) { r.ScheduledDate = v })
}

// SetTransportationStatus edits the status text and marks the order dirty.
func (b *Board) SetTransportationStatus(orderID kernel.UUID, v string) error {
	return b.edit(orderID, FieldTransportationStatus, func(r *Record) { r.TransportationStatus = v })
}

// SetTransportationNotes edits the notes and marks the order dirty.
func (b *Board) SetTransportationNotes(orderID kernel.UUID, v string) error {
	return b.edit(orderID, FieldTransportationNotes, func(r *Record) { r.TransportationNotes = v })
}

func (b *Board) edit(orderID kernel.UUID, field string, apply func(*Record)) error {
	r, err := b.Record(orderID)
	if err != nil {
		return err
	}
	apply(r)

	key := orderID.String()
	if b.dirty[key] == nil {
		b.dirty[key] = make(map[string]struct{})
	}
	b.dirty[key][field] = struct{}{}
	return nil
}

// IsDirty reports whether an order has unsaved edits.
func (b *Board) IsDirty(orderID kernel.UUID) bool {
	return len(b.dirty[orderID.String()]) > 0
}

// DirtyOrderIDs returns the orders with unsaved edits, sorted for
// deterministic save batches.
func (b *Board) DirtyOrderIDs() []kernel.UUID {
	keys := make([]string, 0, len(b.dirty))
	for key := range b.dirty {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]kernel.UUID, 0, len(keys))
	for _, key := range keys {
		out = append(out, b.records[key].OrderID)
	}
	return out
}

// SaveablePatches builds the partial-update payloads for the dirty subset:
// one patch per dirty order carrying only the touched fields.
func (b *Board) SaveablePatches() []Patch {
	var patches []Patch
	for _, orderID := range b.DirtyOrderIDs() {
		r := b.records[orderID.String()]
		fields := make(map[string]any, len(b.dirty[orderID.String()]))
		for field := range b.dirty[orderID.String()] {
			switch field {
			case FieldTrailerNo:
				fields[field] = r.TrailerNo
			case FieldCarrier:
				fields[field] = r.Carrier
			case FieldDispatchDate:
				fields[field] = r.DispatchDate
			case FieldScheduledDate:
				fields[field] = r.ScheduledDate
			case FieldTransportationStatus:
				fields[field] = r.TransportationStatus
			case FieldTransportationNotes:
				fields[field] = r.TransportationNotes
			}
		}
		patches = append(patches, Patch{OrderID: orderID, Fields: fields})
	}
	return patches
}

// MarkSaved clears dirty tracking for orders whose patches persisted.
// Orders whose save failed stay dirty for retry.
func (b *Board) MarkSaved(orderIDs []kernel.UUID) {
	for _, id := range orderIDs {
		delete(b.dirty, id.String())
	}
}

// Reload replaces the board contents from freshly loaded records,
// dropping every unsaved edit. This is the discard action. Any load still
// in flight when Reload runs becomes stale.
func (b *Board) Reload(records []Record) {
	b.loadGen.Next()
	fresh := NewBoard(records)
	b.records = fresh.records
	b.dirty = fresh.dirty
}

// BeginLoad marks a new async load in flight and returns its generation.
// The caller passes the value back to CompleteLoad with the fetched rows.
func (b *Board) BeginLoad() uint64 {
	return b.loadGen.Next()
}

// CompleteLoad applies the result of an async load, unless a newer load or
// a Reload started after it. Returns false when the result was discarded.
func (b *Board) CompleteLoad(generation uint64, records []Record) bool {
	if !b.loadGen.IsCurrent(generation) {
		return false
	}
	fresh := NewBoard(records)
	b.records = fresh.records
	b.dirty = fresh.dirty
	return true
}

// ValidateStatusAdvance checks a status-advance request issued from the
// board. Only two transitions are offered here, and neither may run while
// the order has unsaved dispatch edits.
func (b *Board) ValidateStatusAdvance(orderID kernel.UUID, from, to order.LifecycleStatus) error {
	if _, err := b.Record(orderID); err != nil {
		return err
	}
	if b.IsDirty(orderID) {
		return ErrOrderHasUnsavedEdits
	}
	return ValidateBoardTransition(from, to)
}

// ValidateBoardTransition restricts board-issued advancement to scheduling
// a pickup and releasing a shipped order for invoicing.
func ValidateBoardTransition(from, to order.LifecycleStatus) error {
	if from == order.InboundPlanned && to == order.PickupScheduled {
		return nil
	}
	if from == order.ProductionComplete && to == order.InvoiceReady {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("targetStatus",
		fmt.Errorf("%s to %s is not available from the dispatch board",
			from.String(), to.String()))
}
