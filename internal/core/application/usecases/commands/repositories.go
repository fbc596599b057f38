// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"shopfloor/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends only on the narrowest unit of work its
// operation needs, so tests mock exactly the repositories in play.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RouteRepoFactory provides the route repository within a transaction.
	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// ReviewRepoFactory provides the review repository within a transaction.
	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// HoldReasonRepoFactory provides the reason-code repository within a
	// transaction.
	HoldReasonRepoFactory interface {
		HoldReasonRepository() ports.HoldReasonRepository
	}

	// DispatchRepoFactory provides the dispatch repository within a
	// transaction.
	DispatchRepoFactory interface {
		DispatchRepository() ports.DispatchRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// RouteUoW manages transactions for route-only operations: scans,
	// progress recording and ledger writes.
	RouteUoW interface {
		TxManager
		RouteRepoFactory
	}

	// RouteUoWFactory creates new route unit of work instances.
	RouteUoWFactory interface {
		Create() RouteUoW
	}

	// OrderRouteUoW spans the order and its routes. Lifecycle advancement
	// to ProductionComplete reads route completion inside the same
	// transaction that moves the order.
	OrderRouteUoW interface {
		TxManager
		OrderRepoFactory
		RouteRepoFactory
	}

	// OrderRouteUoWFactory creates new order+route unit of work instances.
	OrderRouteUoWFactory interface {
		Create() OrderRouteUoW
	}

	// OrderReasonUoW spans the order and the configured reason codes.
	// Hold application resolves the submitted code before mutating the
	// order.
	OrderReasonUoW interface {
		TxManager
		OrderRepoFactory
		HoldReasonRepoFactory
	}

	// OrderReasonUoWFactory creates new order+reason unit of work instances.
	OrderReasonUoWFactory interface {
		Create() OrderReasonUoW
	}

	// ReasonUoW manages transactions for reason-code configuration.
	ReasonUoW interface {
		TxManager
		HoldReasonRepoFactory
	}

	// ReasonUoWFactory creates new reason-code unit of work instances.
	ReasonUoWFactory interface {
		Create() ReasonUoW
	}

	// ReviewUoW spans the review records and the routes they correct.
	ReviewUoW interface {
		TxManager
		ReviewRepoFactory
		RouteRepoFactory
	}

	// ReviewUoWFactory creates new review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}

	// DispatchUoW manages transactions for transportation-record saves.
	DispatchUoW interface {
		TxManager
		DispatchRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}
)
