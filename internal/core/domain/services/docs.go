// Package services provides domain services that orchestrate business
// operations across multiple aggregates.
//
// The package includes:
//   - RouteExecutionEngine: drives step transitions, mode-specific
//     progress recording and quantity rollups on a route instance
//
// Domain services coordinate between aggregates, implementing business
// logic that spans multiple bounded contexts following Domain-Driven
// Design principles.
package services
