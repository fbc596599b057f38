// Package kernel provides the core domain primitives shared by every
// aggregate in the shopfloor system.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and
//     comparison capabilities
//   - Role: the acting-role value object used for permission checks on
//     mutating operations
//   - EmpNo: the badge number identifying the employee performing an action
//
// These primitives enforce domain invariants at construction time and are
// immutable, making them safe to share freely between aggregates.
package kernel
