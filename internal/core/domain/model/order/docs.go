// Package order implements the sales-order aggregate: the order-level
// lifecycle state machine, the orthogonal hold overlay, order lines and the
// legacy status mapping kept for display and compatibility.
//
// The lifecycle status and the hold overlay are deliberately modeled as two
// independent fields on the aggregate. Folding holds into the status enum
// would multiply every status by every hold type; instead advancement checks
// read both fields, and a hold persists across status reads until it is
// explicitly cleared.
package order
