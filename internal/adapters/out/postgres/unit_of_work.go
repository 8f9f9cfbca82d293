// Package postgres implements the Unit of Work pattern over GORM.
//
// A unit of work groups the repository calls of one business operation into a
// single database transaction. Order aggregates written through its repositories
// are tracked, and their domain events are handed to the event publisher only
// after the transaction commits.
//
// Key Features:
//   - Transaction scope: repositories obtained after Begin share one *gorm.DB tx
//   - Event dispatch after commit: a rolled back operation publishes nothing
//   - Best-effort publishing: publish errors are logged and never undo a commit
//   - Read-only use: repositories obtained without Begin run on the plain pool
//
// Usage Patterns:
//
// Command handlers create one unit of work per call:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Query handlers skip Begin and read directly:
//
//	o, err := factory.Create().OrderRepository().Get(ctx, id)
//
// Thread Safety:
//
// A GormUnitOfWork is not safe for concurrent use. The factory is, and every
// request gets its own instance.
package postgres

import (
	"context"
	"log/slog"

	"procurement/internal/adapters/out/postgres/orderrepo"
	"procurement/internal/adapters/out/postgres/userrepo"
	"procurement/internal/adapters/out/postgres/vendorrepo"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written inside the current transaction.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates GormUnitOfWork instances sharing one connection
// pool and one event publisher. It is safe for concurrent use.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.OrderEventPublisher
	logger    *slog.Logger
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. Events of committed order aggregates go to publisher.
func NewGormUnitOfWorkFactory(
	db *gorm.DB,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:        db,
		publisher: publisher,
		logger:    logger.With("component", "unit_of_work"),
	}
}

// Create returns a fresh unit of work with no open transaction.
//
// Example:
//
//	uow := factory.Create()
//	defer uow.Rollback(ctx)
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		publisher:         f.publisher,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork is the GORM implementation of ports.UnitOfWork.
// tx is nil outside Begin/Commit; repositories then use db directly.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	publisher         ports.OrderEventPublisher
	logger            *slog.Logger
	trackedAggregates []trackedAggregate
}

// Begin is idempotent: a second call reuses the open transaction.
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

// Commit makes the transaction durable and then publishes the domain events
// of every tracked order. Publish failures are logged and do not fail Commit.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	uow.dispatchEvents(ctx)
	return nil
}

// Rollback aborts the open transaction and discards tracked aggregates.
// Deferred after a successful Commit it returns gorm.ErrInvalidTransaction,
// which callers ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	uow.trackedAggregates = uow.trackedAggregates[:0]
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an order repository bound to the current
// transaction. Writes it performs are tracked for event dispatch.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// VendorRepository returns a vendor repository bound to the current transaction.
func (uow *GormUnitOfWork) VendorRepository() ports.VendorRepository {
	return vendorrepo.NewGormVendorRepository(uow.conn())
}

// UserRepository returns a user repository bound to the current transaction.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn())
}

// TrackAggregate registers an aggregate modified within this unit of work.
// Repositories call it; the aggregate's events are dispatched on Commit.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// conn returns the open transaction, or the pool when none is open.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// dispatchEvents publishes and clears the events of every tracked order.
func (uow *GormUnitOfWork) dispatchEvents(ctx context.Context) {
	tracked := uow.trackedAggregates
	uow.trackedAggregates = make([]trackedAggregate, 0)

	if uow.publisher == nil {
		return
	}

	for _, t := range tracked {
		o, ok := t.Aggregate.(*order.Order)
		if !ok {
			continue
		}

		for _, event := range o.DomainEvents() {
			if err := uow.publisher.Publish(ctx, event); err != nil {
				uow.logger.ErrorContext(ctx, "failed to publish order event",
					"event_type", string(event.Type),
					"order_id", t.ID.String(),
					"error", err,
				)
			}
		}
		o.ClearDomainEvents()
	}
}
