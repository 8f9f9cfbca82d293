// Package commands contains the operations that change state: orders,
// vendors and users. Every handler follows the same shape: validate the
// command, check the actor, open a unit of work, mutate, commit.
package commands

import (
	"context"

	"procurement/internal/core/ports"
)

type (
	// TxManager controls the transaction of a unit of work. Rollback after Commit is a no-op.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory exposes the order repository bound to the current transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// VendorRepoFactory exposes the vendor repository bound to the current transaction.
	VendorRepoFactory interface {
		VendorRepository() ports.VendorRepository
	}

	// UserRepoFactory exposes the user repository bound to the current transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// OrderUoW covers order writes. Vendors are reachable to check that an
	// order's vendor exists inside the same transaction.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		VendorRepoFactory
	}

	// OrderUoWFactory creates a fresh OrderUoW per command.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// VendorUoW covers vendor writes.
	VendorUoW interface {
		TxManager
		VendorRepoFactory
	}

	// VendorUoWFactory creates a fresh VendorUoW per command.
	VendorUoWFactory interface {
		Create() VendorUoW
	}

	// UserUoW covers user writes.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates a fresh UserUoW per command.
	UserUoWFactory interface {
		Create() UserUoW
	}
)
