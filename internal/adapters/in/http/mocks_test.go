package http_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "procurement/internal/adapters/in/http"
	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/application/views"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/principal"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const token = "token-123"

type MockPrincipalResolver struct{ mock.Mock }

func (m *MockPrincipalResolver) Resolve(ctx context.Context, credential string) (principal.Principal, error) {
	args := m.Called(ctx, credential)
	return args.Get(0).(principal.Principal), args.Error(1)
}

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (views.Order, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(views.Order), args.Error(1)
}

type MockUpdateOrderHandler struct{ mock.Mock }

func (m *MockUpdateOrderHandler) Handle(ctx context.Context, cmd commands.UpdateOrderCommand) (views.Order, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(views.Order), args.Error(1)
}

type MockDeleteOrderHandler struct{ mock.Mock }

func (m *MockDeleteOrderHandler) Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockRescheduleOrderHandler struct{ mock.Mock }

func (m *MockRescheduleOrderHandler) Handle(
	ctx context.Context,
	cmd commands.RescheduleOrderCommand,
) (views.Order, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(views.Order), args.Error(1)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (views.Order, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(views.Order), args.Error(1)
}

type MockListOrdersHandler struct{ mock.Mock }

func (m *MockListOrdersHandler) Handle(ctx context.Context, query queries.ListOrdersQuery) ([]views.Order, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]views.Order), args.Error(1)
}

type MockOrderSummaryHandler struct{ mock.Mock }

func (m *MockOrderSummaryHandler) Handle(
	ctx context.Context,
	query queries.OrderSummaryQuery,
) ([]queries.OrderSummaryRow, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.OrderSummaryRow), args.Error(1)
}

type MockVendorCommandHandler struct{ mock.Mock }

func (m *MockVendorCommandHandler) Create(ctx context.Context, cmd commands.CreateVendorCommand) (views.Vendor, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(views.Vendor), args.Error(1)
}

func (m *MockVendorCommandHandler) Update(ctx context.Context, cmd commands.UpdateVendorCommand) (views.Vendor, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(views.Vendor), args.Error(1)
}

func (m *MockVendorCommandHandler) Delete(ctx context.Context, cmd commands.DeleteVendorCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockVendorQueryHandler struct{ mock.Mock }

func (m *MockVendorQueryHandler) Get(ctx context.Context, query queries.GetVendorQuery) (views.Vendor, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(views.Vendor), args.Error(1)
}

func (m *MockVendorQueryHandler) List(ctx context.Context, query queries.ListVendorsQuery) ([]views.Vendor, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]views.Vendor), args.Error(1)
}

type MockUserCommandHandler struct{ mock.Mock }

func (m *MockUserCommandHandler) Create(ctx context.Context, cmd commands.CreateUserCommand) (views.User, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(views.User), args.Error(1)
}

func (m *MockUserCommandHandler) Update(ctx context.Context, cmd commands.UpdateUserCommand) (views.User, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(views.User), args.Error(1)
}

// fixture wires a server with fresh mocks for every handler.
type fixture struct {
	echo     *echo.Echo
	resolver *MockPrincipalResolver

	createOrder     *MockCreateOrderHandler
	updateOrder     *MockUpdateOrderHandler
	deleteOrder     *MockDeleteOrderHandler
	rescheduleOrder *MockRescheduleOrderHandler
	getOrder        *MockGetOrderHandler
	listOrders      *MockListOrdersHandler
	orderSummary    *MockOrderSummaryHandler
	vendorCommands  *MockVendorCommandHandler
	vendorQueries   *MockVendorQueryHandler
	userCommands    *MockUserCommandHandler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		echo:            echo.New(),
		resolver:        new(MockPrincipalResolver),
		createOrder:     new(MockCreateOrderHandler),
		updateOrder:     new(MockUpdateOrderHandler),
		deleteOrder:     new(MockDeleteOrderHandler),
		rescheduleOrder: new(MockRescheduleOrderHandler),
		getOrder:        new(MockGetOrderHandler),
		listOrders:      new(MockListOrdersHandler),
		orderSummary:    new(MockOrderSummaryHandler),
		vendorCommands:  new(MockVendorCommandHandler),
		vendorQueries:   new(MockVendorQueryHandler),
		userCommands:    new(MockUserCommandHandler),
	}

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:     f.createOrder,
		UpdateOrder:     f.updateOrder,
		DeleteOrder:     f.deleteOrder,
		RescheduleOrder: f.rescheduleOrder,
		GetOrder:        f.getOrder,
		ListOrders:      f.listOrders,
		OrderSummary:    f.orderSummary,
		VendorCommands:  f.vendorCommands,
		VendorQueries:   f.vendorQueries,
		UserCommands:    f.userCommands,
	}, f.resolver, prometheus.NewRegistry(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	server.Register(f.echo)

	t.Cleanup(func() {
		f.resolver.AssertExpectations(t)
		f.createOrder.AssertExpectations(t)
		f.updateOrder.AssertExpectations(t)
		f.deleteOrder.AssertExpectations(t)
		f.rescheduleOrder.AssertExpectations(t)
		f.getOrder.AssertExpectations(t)
		f.listOrders.AssertExpectations(t)
		f.orderSummary.AssertExpectations(t)
		f.vendorCommands.AssertExpectations(t)
		f.vendorQueries.AssertExpectations(t)
		f.userCommands.AssertExpectations(t)
	})

	return f
}

// signIn makes the resolver accept token as p.
func (f *fixture) signIn(p principal.Principal) {
	f.resolver.On("Resolve", mock.Anything, token).Return(p, nil)
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func newPrincipal(t *testing.T, username string, role principal.Role) principal.Principal {
	t.Helper()
	p, err := principal.NewPrincipal(kernel.NewUUID(), username, role, false)
	require.NoError(t, err)
	return p
}

func sampleOrder(owner principal.Principal) views.Order {
	return views.Order{
		ID:          kernel.NewUUID().String(),
		VendorID:    kernel.NewUUID().String(),
		UserID:      owner.ID().String(),
		OrderDate:   "2025-03-01T10:00:00Z",
		Items:       []views.OrderItem{{ProductName: "paper", Quantity: 2, Price: 4.5}},
		Status:      "pending",
		TotalAmount: 9,
	}
}
