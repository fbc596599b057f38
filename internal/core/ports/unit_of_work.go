package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request/command, so
// concurrent operations never share transaction state.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the business transaction boundary. Repositories obtained
// from it are bound to the transaction started by Begin; client code
// manages the lifecycle explicitly.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Rolling back after a
	// successful commit is a no-op, which lets handlers defer it.
	Rollback(ctx context.Context) error

	// OrderRepository returns an order repository bound to the transaction.
	OrderRepository() OrderRepository

	// RouteRepository returns a route repository bound to the transaction.
	RouteRepository() RouteRepository

	// ReviewRepository returns a review repository bound to the transaction.
	ReviewRepository() ReviewRepository

	// HoldReasonRepository returns a reason-code repository bound to the
	// transaction.
	HoldReasonRepository() HoldReasonRepository

	// DispatchRepository returns a dispatch repository bound to the
	// transaction.
	DispatchRepository() DispatchRepository
}
