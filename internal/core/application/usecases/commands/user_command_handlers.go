package commands

import (
	"context"
	"errors"

	"procurement/internal/core/application/views"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/principal"
	"procurement/internal/pkg/errs"
)

// UserCommandHandler serves account administration. Create and Update require
// an active admin; Bootstrap runs without a principal at startup.
//
// Example:
//
//	handler := NewUserCommandHandler(uowFactory)
//	if err := handler.Bootstrap(ctx, "root"); err != nil {
//	    log.Fatal(err)
//	}
type UserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUserCommandHandler creates the account handler.
// Requires a UserUoWFactory for transactional persistence.
func NewUserCommandHandler(uowFactory UserUoWFactory) UserCommandHandler {
	return UserCommandHandler{uowFactory: uowFactory}
}

// Create adds an account. A taken username yields errs.ErrObjectAlreadyExists.
func (h UserCommandHandler) Create(ctx context.Context, cmd CreateUserCommand) (views.User, error) {
	if err := cmd.Validate(); err != nil {
		return views.User{}, err
	}
	if err := cmd.Actor().RequireAdmin(); err != nil {
		return views.User{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return views.User{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.UserRepository().Add(ctx, cmd.User()); err != nil {
		return views.User{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return views.User{}, err
	}

	return views.SerializeUser(cmd.User()), nil
}

// Update changes role and/or disabled flag of an account. Disabling an account
// takes effect on its next request; tokens are not revoked.
//
// Returns:
//   - views.User: The account as stored after the change
//   - AccessDeniedError if the actor is not an active admin
//   - ObjectNotFoundError if the account does not exist
func (h UserCommandHandler) Update(ctx context.Context, cmd UpdateUserCommand) (views.User, error) {
	if err := cmd.Validate(); err != nil {
		return views.User{}, err
	}
	if err := cmd.Actor().RequireAdmin(); err != nil {
		return views.User{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return views.User{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	user, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return views.User{}, err
	}

	if role := cmd.Role(); role != nil {
		user = user.WithRole(*role)
	}
	if disabled := cmd.Disabled(); disabled != nil {
		user = user.WithDisabled(*disabled)
	}

	if err = userRepo.Update(ctx, user); err != nil {
		return views.User{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return views.User{}, err
	}

	return views.SerializeUser(user), nil
}

// Bootstrap makes sure username exists as an enabled admin. It runs at
// startup, before any principal can authenticate.
func (h UserCommandHandler) Bootstrap(ctx context.Context, username string) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	existing, err := userRepo.GetByUsername(ctx, username)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		admin, newErr := principal.NewPrincipal(kernel.NewUUID(), username, principal.RoleAdmin, false)
		if newErr != nil {
			return newErr
		}
		if err = userRepo.Add(ctx, admin); err != nil {
			return err
		}
	case err != nil:
		return err
	case existing.IsAdmin() && !existing.IsDisabled():
		return nil
	default:
		if err = userRepo.Update(ctx, existing.WithRole(principal.RoleAdmin).WithDisabled(false)); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
