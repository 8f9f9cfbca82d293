package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/principal"
	"procurement/internal/pkg/guard"
)

// Constructor guards for the user commands.
var (
	ErrCreateUserCommandIsNotConstructed = errors.New(
		"CreateUserCommand must be created via NewCreateUserCommand constructor",
	)
	ErrUpdateUserCommandIsNotConstructed = errors.New(
		"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
	)
)

// CreateUserCommand registers an account. Only admins may issue it; the new
// account starts enabled.
//
// Example:
//
//	cmd, err := NewCreateUserCommand(admin, "carol", "")
//	// cmd.User().Role() == principal.RoleCustomer
type CreateUserCommand struct {
	actor principal.Principal
	user  principal.Principal

	guard guard.ConstructorGuard
}

// NewCreateUserCommand builds the account to create. An empty role means
// customer.
func NewCreateUserCommand(actor principal.Principal, username, role string) (CreateUserCommand, error) {
	cmd := CreateUserCommand{guard: guard.NewConstructorGuard()}

	user, userErr := principal.NewPrincipal(kernel.NewUUID(), username, principal.ParseRole(role), false)
	if err := errors.Join(setActor(&cmd.actor, actor), userErr); err != nil {
		return CreateUserCommand{}, err
	}
	cmd.user = user

	return cmd, nil
}

// Validate ensures the command was created through NewCreateUserCommand.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// Actor returns the principal creating the account.
func (c CreateUserCommand) Actor() principal.Principal {
	return c.actor
}

// User returns the account to store, with its freshly assigned id.
func (c CreateUserCommand) User() principal.Principal {
	return c.user
}

// UpdateUserCommand changes role and/or disabled flag; nil leaves a field as is.
type UpdateUserCommand struct {
	actor    principal.Principal
	userID   kernel.UUID
	role     *principal.Role
	disabled *bool

	guard guard.ConstructorGuard
}

// NewUpdateUserCommand validates the actor and parses userID. Role is parsed
// like at creation: blank means customer.
//
// Example:
//
//	disabled := true
//	cmd, err := NewUpdateUserCommand(admin, userID, nil, &disabled)
func NewUpdateUserCommand(
	actor principal.Principal,
	userID string,
	role *string,
	disabled *bool,
) (UpdateUserCommand, error) {
	cmd := UpdateUserCommand{
		disabled: disabled,
		guard:    guard.NewConstructorGuard(),
	}

	id, idErr := kernel.ParseUUID("user_id", userID)
	if err := errors.Join(setActor(&cmd.actor, actor), idErr); err != nil {
		return UpdateUserCommand{}, err
	}
	cmd.userID = id

	if role != nil {
		r := principal.ParseRole(*role)
		cmd.role = &r
	}

	return cmd, nil
}

// Validate ensures the command was created through NewUpdateUserCommand.
func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

// Actor returns the principal making the change.
func (c UpdateUserCommand) Actor() principal.Principal {
	return c.actor
}

// UserID returns the account to change.
func (c UpdateUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Role returns the new role, or nil to keep the current one.
func (c UpdateUserCommand) Role() *principal.Role {
	return c.role
}

// Disabled returns the new disabled flag, or nil to keep the current one.
func (c UpdateUserCommand) Disabled() *bool {
	return c.disabled
}
