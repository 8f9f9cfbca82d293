package commands_test

import (
	"errors"
	"testing"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/principal"
	"procurement/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotifyDueOrdersCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	owner := newActor(t, "alice", principal.RoleCustomer)
	first, second := newOrder(t, owner), newOrder(t, owner)
	from := time.Date(2030, 5, 1, 10, 0, 0, 0, time.UTC)
	to := from.Add(15 * time.Minute)
	cmd, err := commands.NewNotifyDueOrdersCommand(from, 15*time.Minute)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Find", ctx, mock.MatchedBy(func(f ports.OrderFilter) bool {
		return f.DueFrom.Equal(from) && f.DueBefore.Equal(to) && f.DueTo == nil &&
			f.ExcludeTerminal && f.OwnerID == nil
	})).Return([]*order.Order{first, second}, nil).Once()

	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockOrderEventPublisher)
	isDueSoonFor := func(o *order.Order) any {
		return mock.MatchedBy(func(e order.Event) bool {
			return e.Type == order.EventDueSoon && e.OrderID.IsEqual(o.ID())
		})
	}
	publisher.On("Publish", ctx, isDueSoonFor(first)).Return(errors.New("broker down")).Once()
	publisher.On("Publish", ctx, isDueSoonFor(second)).Return(nil).Once()

	h := commands.NewNotifyDueOrdersCommandHandler(factory, publisher)
	published, err := h.Handle(ctx, cmd)

	require.ErrorContains(t, err, "broker down")
	assert.Equal(t, 1, published)
	publisher.AssertExpectations(t)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestNotifyDueOrdersCommandHandler_Handle_FindError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewNotifyDueOrdersCommand(time.Now(), time.Minute)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Find", ctx, mock.Anything).Return(nil, errors.New("db down")).Once()
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(MockOrderEventPublisher)

	h := commands.NewNotifyDueOrdersCommandHandler(factory, publisher)
	published, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "db down")
	assert.Zero(t, published)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
