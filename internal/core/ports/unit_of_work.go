package ports

import (
	"context"
)

// UnitOfWorkFactory creates UnitOfWork instances. Every business operation gets
// its own instance; instances are not safe for concurrent use.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork scopes repositories to one database transaction. Repositories
// obtained before Begin run outside any transaction.
type UnitOfWork interface {
	// Begin opens the transaction. A second call reuses the open transaction.
	Begin(ctx context.Context) error

	// Commit commits the transaction and then publishes the events of every
	// tracked aggregate. Publishing failures are logged, not returned.
	Commit(ctx context.Context) error

	// Rollback aborts the transaction and drops tracked aggregates.
	// It returns an error when no transaction is open.
	Rollback(ctx context.Context) error

	// OrderRepository returns the order repository bound to the transaction.
	OrderRepository() OrderRepository

	// VendorRepository returns the vendor repository bound to the transaction.
	VendorRepository() VendorRepository

	// UserRepository returns the user repository bound to the transaction.
	UserRepository() UserRepository
}
