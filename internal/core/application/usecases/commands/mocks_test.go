package commands_test

import (
	"context"
	"testing"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/principal"
	"procurement/internal/core/domain/model/vendor"
	"procurement/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
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

type MockVendorRepository struct{ mock.Mock }

func (m *MockVendorRepository) Add(ctx context.Context, v *vendor.Vendor) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVendorRepository) Update(ctx context.Context, v *vendor.Vendor) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVendorRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVendorRepository) Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*vendor.Vendor)
	return v, args.Error(1)
}

func (m *MockVendorRepository) List(ctx context.Context) ([]*vendor.Vendor, error) {
	args := m.Called(ctx)
	vendors, _ := args.Get(0).([]*vendor.Vendor)
	return vendors, args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, p principal.Principal) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, p principal.Principal) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (principal.Principal, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(principal.Principal)
	return p, args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (principal.Principal, error) {
	args := m.Called(ctx, username)
	p, _ := args.Get(0).(principal.Principal)
	return p, args.Error(1)
}

// MockUoW satisfies OrderUoW, VendorUoW and UserUoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) VendorRepository() ports.VendorRepository {
	args := m.Called()
	return args.Get(0).(ports.VendorRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockVendorUoWFactory struct{ mock.Mock }

func (m *MockVendorUoWFactory) Create() commands.VendorUoW {
	args := m.Called()
	return args.Get(0).(commands.VendorUoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) Publish(ctx context.Context, event order.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func newActor(t *testing.T, username string, role principal.Role) principal.Principal {
	t.Helper()
	p, err := principal.NewPrincipal(kernel.NewUUID(), username, role, false)
	require.NoError(t, err)
	return p
}

func newVendor(t *testing.T) *vendor.Vendor {
	t.Helper()
	v, err := vendor.NewVendor(kernel.NewUUID(), vendor.Contact{
		Name:    "Acme",
		Email:   "sales@acme.test",
		Phone:   "555-0100",
		Address: "1 Main St",
	})
	require.NoError(t, err)
	return v
}

func newOrder(t *testing.T, owner principal.Principal) *order.Order {
	t.Helper()
	item, err := order.NewItem("widget", 2, decimal.NewFromInt(5))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), owner.ID(), order.Draft{Items: []order.Item{item}})
	require.NoError(t, err)
	o.ClearDomainEvents()
	return o
}

func items(quantity int, price string) []commands.ItemInput {
	return []commands.ItemInput{{
		ProductName: "widget",
		Quantity:    quantity,
		Price:       decimal.RequireFromString(price),
	}}
}
