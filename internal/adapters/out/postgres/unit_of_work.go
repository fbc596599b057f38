// Package postgres provides the GORM-based Unit of Work implementation.
// A unit of work owns one database transaction; repositories obtained
// from it are bound to that transaction and every aggregate they touch is
// tracked for post-commit processing.
package postgres

import (
	"context"

	"shopfloor/internal/adapters/out/postgres/dispatchrepo"
	"shopfloor/internal/adapters/out/postgres/orderrepo"
	"shopfloor/internal/adapters/out/postgres/reasonrepo"
	"shopfloor/internal/adapters/out/postgres/reviewrepo"
	"shopfloor/internal/adapters/out/postgres/routerepo"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate modified during the unit of work,
// retained for patterns like outbox publishing.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates a fresh unit of work per business
// operation, so concurrent operations never share transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to a database
// connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the
// repositories of a business operation. Before Begin (and after
// Commit/Rollback) repositories run against the base connection.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling Begin on an already started unit
// of work is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}
	return nil
}

// Commit finalizes the transaction. The unit of work cannot be reused
// afterwards.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Rolling back after a successful
// commit returns gorm.ErrInvalidTransaction, which deferred callers
// ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an order repository bound to the transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// RouteRepository returns a route repository bound to the transaction.
func (uow *GormUnitOfWork) RouteRepository() ports.RouteRepository {
	return routerepo.NewGormRouteRepository(uow.conn(), uow)
}

// ReviewRepository returns a review repository bound to the transaction.
func (uow *GormUnitOfWork) ReviewRepository() ports.ReviewRepository {
	return reviewrepo.NewGormReviewRepository(uow.conn(), uow)
}

// HoldReasonRepository returns a reason-code repository bound to the
// transaction.
func (uow *GormUnitOfWork) HoldReasonRepository() ports.HoldReasonRepository {
	return reasonrepo.NewGormHoldReasonRepository(uow.conn(), uow)
}

// DispatchRepository returns a dispatch repository bound to the
// transaction.
func (uow *GormUnitOfWork) DispatchRepository() ports.DispatchRepository {
	return dispatchrepo.NewGormDispatchRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate as modified within this unit of
// work. Repositories call it on every Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
