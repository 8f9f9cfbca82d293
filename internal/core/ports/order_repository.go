package ports

import (
	"context"
	"fmt"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"
)

// OrderRepository defines the persistence contract for order aggregates.
// Repositories obtained from a UnitOfWork track the aggregates they write so
// their events can be published after commit.
type OrderRepository interface {
	// Add persists a new order aggregate.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update overwrites the stored order. Missing rows yield errs.ErrObjectNotFound.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes the stored order. Missing rows yield errs.ErrObjectNotFound.
	Delete(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Missing rows yield errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Find returns matching orders, newest first. No match is an empty slice.
	Find(ctx context.Context, filter OrderFilter) ([]*order.Order, error)
}

// OrderFilter narrows Find. Zero fields do not filter.
type OrderFilter struct {
	// OwnerID restricts the result to orders owned by that principal.
	OwnerID *kernel.UUID

	// Search matches case-insensitively against vendor name, owner id,
	// owner username and order id.
	Search string

	// DueFrom and DueTo bound due_at inclusively; orders without a due date
	// never match a bounded filter.
	DueFrom *time.Time
	DueTo   *time.Time

	// DueBefore is an exclusive upper bound on due_at.
	DueBefore *time.Time

	// ExcludeTerminal drops fulfilled and cancelled orders.
	ExcludeTerminal bool
}

// Validate checks the owner id and that DueFrom is not after DueTo.
// Returns ValueIsInvalidError("start") for an inverted range.
func (f OrderFilter) Validate() error {
	if f.OwnerID != nil {
		if err := f.OwnerID.Validate(); err != nil {
			return err
		}
	}
	if f.DueFrom != nil && f.DueTo != nil && f.DueFrom.After(*f.DueTo) {
		return errs.NewValueIsInvalidErrorWithCause("start", fmt.Errorf("%s is after end %s",
			f.DueFrom.Format(time.RFC3339), f.DueTo.Format(time.RFC3339)))
	}
	return nil
}
