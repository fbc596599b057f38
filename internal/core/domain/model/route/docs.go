// Package route implements the per-line route execution model: the
// RouteInstance aggregate, its ordered StepInstances, and the four capture
// ledgers (material usage, scrap, serial numbers, checklists) attached to
// each step.
//
// The aggregate enforces the quantity invariants
//
//	0 <= quantityCompleted <= quantityReceived
//	quantityCompleted + quantityScrapped <= quantityReceived
//
// and owns the dual processing modes: batch-quantity steps report progress
// in arbitrary increments, single-unit steps report exactly one unit per
// call. Both modes share one step type and one state machine; only the
// progress-recording behavior dispatches on the mode tag.
//
// Capture-requirement gating is recomputed from the live ledger slices on
// every evaluation. Nothing caches "done" flags, so a reloaded aggregate
// always reflects the real ledger state.
package route
