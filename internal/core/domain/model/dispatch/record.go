package dispatch

import (
	"time"

	"shopfloor/internal/core/domain/model/kernel"
)

// Record is one order's transportation data as edited on the dispatch
// board. Fields are exported because the record is an edit buffer, not an
// invariant-bearing aggregate; the Board enforces the save discipline.
type Record struct {
	OrderID              kernel.UUID
	TrailerNo            string
	Carrier              string
	DispatchDate         *time.Time
	ScheduledDate        *time.Time
	TransportationStatus string
	TransportationNotes  string
}

// Patchable field names, also the column keys of partial-update payloads.
const (
	FieldTrailerNo            = "trailerNo"
	FieldCarrier              = "carrier"
	FieldDispatchDate         = "dispatchDate"
	FieldScheduledDate        = "scheduledDate"
	FieldTransportationStatus = "transportationStatus"
	FieldTransportationNotes  = "transportationNotes"
)

// Patch is the partial-update payload for one dirty order: only touched
// fields appear in Fields, so an untouched column is never overwritten.
type Patch struct {
	OrderID kernel.UUID
	Fields  map[string]any
}
