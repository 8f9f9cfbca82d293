package commands_test

import (
	"testing"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/principal"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserCommandHandler_Create(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateUserCommand(newActor(t, "root", principal.RoleAdmin), "carol", "admin")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Add", ctx, cmd.User()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUserCommandHandler(factory)
	result, err := h.Create(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "carol", result.Username)
	assert.Equal(t, "admin", result.Role)
	uow.AssertExpectations(t)
}

func TestUserCommandHandler_Create_Duplicate(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateUserCommand(newActor(t, "root", principal.RoleAdmin), "carol", "")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	userRepo.On("Add", ctx, cmd.User()).Return(errs.NewObjectAlreadyExistsError("username", "carol")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUserCommandHandler(factory)
	_, err = h.Create(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
}

func TestUserCommandHandler_Create_RequiresAdmin(t *testing.T) {
	cmd, err := commands.NewCreateUserCommand(newActor(t, "alice", principal.RoleCustomer), "carol", "admin")
	require.NoError(t, err)

	factory := new(MockUserUoWFactory)
	h := commands.NewUserCommandHandler(factory)
	_, err = h.Create(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrAccessDenied)
}

func TestUserCommandHandler_Update(t *testing.T) {
	ctx := t.Context()
	target := newActor(t, "carol", principal.RoleCustomer)
	disabled := true
	cmd, err := commands.NewUpdateUserCommand(newActor(t, "root", principal.RoleAdmin), target.ID().String(), nil, &disabled)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		userRepo.On("Update", ctx, target.WithDisabled(true)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUserCommandHandler(factory)
	result, err := h.Update(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, result.Disabled)
	assert.Equal(t, "customer", result.Role)
	userRepo.AssertExpectations(t)
}

func TestUserCommandHandler_Bootstrap(t *testing.T) {
	t.Run("creates missing admin", func(t *testing.T) {
		ctx := t.Context()
		userRepo := new(MockUserRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("UserRepository").Return(userRepo).Once(),
			userRepo.On("GetByUsername", ctx, "root").
				Return(principal.Principal{}, errs.NewObjectNotFoundError("username", "root")).Once(),
			userRepo.On("Add", ctx, mock.MatchedBy(func(p principal.Principal) bool {
				return p.Username() == "root" && p.IsAdmin() && !p.IsDisabled()
			})).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockUserUoWFactory)
		factory.On("Create").Return(uow).Once()

		require.NoError(t, commands.NewUserCommandHandler(factory).Bootstrap(ctx, "root"))
		uow.AssertExpectations(t)
	})

	t.Run("promotes and enables existing user", func(t *testing.T) {
		ctx := t.Context()
		existing := newActor(t, "root", principal.RoleCustomer).WithDisabled(true)
		userRepo := new(MockUserRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("UserRepository").Return(userRepo).Once(),
			userRepo.On("GetByUsername", ctx, "root").Return(existing, nil).Once(),
			userRepo.On("Update", ctx, existing.WithRole(principal.RoleAdmin).WithDisabled(false)).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockUserUoWFactory)
		factory.On("Create").Return(uow).Once()

		require.NoError(t, commands.NewUserCommandHandler(factory).Bootstrap(ctx, "root"))
		uow.AssertExpectations(t)
	})

	t.Run("leaves active admin alone", func(t *testing.T) {
		ctx := t.Context()
		existing := newActor(t, "root", principal.RoleAdmin)
		userRepo := new(MockUserRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("UserRepository").Return(userRepo).Once()
		userRepo.On("GetByUsername", ctx, "root").Return(existing, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockUserUoWFactory)
		factory.On("Create").Return(uow).Once()

		require.NoError(t, commands.NewUserCommandHandler(factory).Bootstrap(ctx, "root"))
		uow.AssertNotCalled(t, "Commit", mock.Anything)
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
