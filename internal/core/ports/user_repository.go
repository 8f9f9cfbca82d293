package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/principal"
)

// UserRepository stores the accounts principals are resolved from.
type UserRepository interface {
	// Add fails with errs.ErrObjectAlreadyExists when the username is taken.
	Add(ctx context.Context, p principal.Principal) error

	// Update overwrites role and disabled flag. The username never changes.
	// Missing rows yield errs.ErrObjectNotFound.
	Update(ctx context.Context, p principal.Principal) error

	// Get retrieves an account by id. Missing rows yield errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (principal.Principal, error)

	// GetByUsername retrieves an account by its exact username, as carried in a
	// token subject. Missing rows yield errs.ErrObjectNotFound.
	GetByUsername(ctx context.Context, username string) (principal.Principal, error)
}
