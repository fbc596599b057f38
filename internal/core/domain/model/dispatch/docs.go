// Package dispatch models the transportation dispatch board: one editable
// record per order, per-order dirty tracking, and partial-update patches
// built from touched fields only. The board is an edit buffer over the
// persisted records; nothing is written until a bulk save submits the
// dirty subset.
package dispatch
