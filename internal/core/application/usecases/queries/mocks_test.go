package queries_test

import (
	"context"
	"testing"

	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/principal"
	"procurement/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository only serves reads.
type MockOrderRepository struct {
	mock.Mock
	ports.OrderRepository
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Find(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderReaderFactory struct{ mock.Mock }

func (m *MockOrderReaderFactory) Create() queries.OrderReader {
	args := m.Called()
	return args.Get(0).(queries.OrderReader)
}

func newReaderFactory(repo *MockOrderRepository) *MockOrderReaderFactory {
	reader := new(MockOrderReader)
	reader.On("OrderRepository").Return(repo)
	factory := new(MockOrderReaderFactory)
	factory.On("Create").Return(reader)
	return factory
}

func newActor(t *testing.T, username string, role principal.Role) principal.Principal {
	t.Helper()
	p, err := principal.NewPrincipal(kernel.NewUUID(), username, role, false)
	require.NoError(t, err)
	return p
}

func newOrder(t *testing.T, owner principal.Principal) *order.Order {
	t.Helper()
	item, err := order.NewItem("widget", 1, decimal.NewFromInt(3))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), owner.ID(), order.Draft{Items: []order.Item{item}})
	require.NoError(t, err)
	return o
}
