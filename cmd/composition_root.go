package cmd

import (
	"log/slog"

	httpin "procurement/internal/adapters/in/http"
	"procurement/internal/adapters/out/jwtauth"
	"procurement/internal/adapters/out/postgres"
	"procurement/internal/adapters/out/postgres/userrepo"
	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/ports"
	"procurement/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// CompositionRoot builds the use case handlers and adapters from one
// configuration, database pool and event publisher.
type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	publisher  ports.OrderEventPublisher
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

// NewCompositionRoot creates the root and its shared unit of work factory.
func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		publisher:  publisher,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		logger:     logger,
	}
}

// orderUoWFactory narrows the shared factory to the order handlers' view.
func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

// orderReaderFactory narrows the shared factory to the query handlers' view.
func (c *CompositionRoot) orderReaderFactory() queries.OrderReaderFactory {
	return FuncOrderReaderFactory(func() queries.OrderReader {
		return c.uowFactory.Create()
	})
}

// CreateCreateOrderCommandHandler wires the place order use case.
func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

// CreateUpdateOrderCommandHandler wires the amend order use case.
func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

// CreateDeleteOrderCommandHandler wires the delete order use case.
func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

// CreateRescheduleOrderCommandHandler wires the reschedule use case.
func (c *CompositionRoot) CreateRescheduleOrderCommandHandler() commands.RescheduleOrderCommandHandler {
	return commands.NewRescheduleOrderCommandHandler(c.orderUoWFactory())
}

// CreateNotifyDueOrdersCommandHandler wires the due reminder use case.
func (c *CompositionRoot) CreateNotifyDueOrdersCommandHandler() commands.NotifyDueOrdersCommandHandler {
	return commands.NewNotifyDueOrdersCommandHandler(c.orderUoWFactory(), c.publisher)
}

// CreateVendorCommandHandler wires vendor maintenance.
func (c *CompositionRoot) CreateVendorCommandHandler() commands.VendorCommandHandler {
	var f commands.VendorUoWFactory = FuncVendorUoWFactory(func() commands.VendorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVendorCommandHandler(f)
}

// CreateUserCommandHandler wires account maintenance.
func (c *CompositionRoot) CreateUserCommandHandler() commands.UserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUserCommandHandler(f)
}

// CreateGetOrderQueryHandler wires the single order read.
func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderReaderFactory())
}

// CreateListOrdersQueryHandler wires order listing and the due calendar.
func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orderReaderFactory())
}

// CreateVendorQueryHandler wires vendor reads.
func (c *CompositionRoot) CreateVendorQueryHandler() queries.VendorQueryHandler {
	return queries.NewVendorQueryHandler(c.gormDB)
}

// CreateOrderSummaryQueryHandler wires the per-vendor summary.
func (c *CompositionRoot) CreateOrderSummaryQueryHandler() queries.OrderSummaryQueryHandler {
	return queries.NewOrderSummaryQueryHandler(c.gormDB)
}

// CreatePrincipalResolver builds the bearer token resolver. Lookups run on the
// plain pool, outside any unit of work.
func (c *CompositionRoot) CreatePrincipalResolver() (*jwtauth.Resolver, error) {
	return jwtauth.NewResolver(c.configs.JWTSecret, userrepo.NewGormUserRepository(c.gormDB))
}

// CreateHTTPServer wires every handler into the HTTP adapter.
//
// Example:
//
//	server, err := root.CreateHTTPServer(prometheus.NewRegistry())
//	if err != nil {
//	    return err
//	}
//	server.Register(e)
func (c *CompositionRoot) CreateHTTPServer(registry *prometheus.Registry) (*httpin.Server, error) {
	resolver, err := c.CreatePrincipalResolver()
	if err != nil {
		return nil, err
	}

	createOrder := c.CreateCreateOrderCommandHandler()
	updateOrder := c.CreateUpdateOrderCommandHandler()
	deleteOrder := c.CreateDeleteOrderCommandHandler()
	rescheduleOrder := c.CreateRescheduleOrderCommandHandler()

	return httpin.NewServer(httpin.Handlers{
		CreateOrder:     &createOrder,
		UpdateOrder:     &updateOrder,
		DeleteOrder:     &deleteOrder,
		RescheduleOrder: &rescheduleOrder,
		GetOrder:        c.CreateGetOrderQueryHandler(),
		ListOrders:      c.CreateListOrdersQueryHandler(),
		OrderSummary:    c.CreateOrderSummaryQueryHandler(),
		VendorCommands:  c.CreateVendorCommandHandler(),
		VendorQueries:   c.CreateVendorQueryHandler(),
		UserCommands:    c.CreateUserCommandHandler(),
	}, resolver, registry, c.logger), nil
}

// CreateJobManager wires the scheduled jobs with the configured reminder timing.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateNotifyDueOrdersCommandHandler(),
		c.configs.ReminderInterval,
		c.configs.ReminderLead,
		c.logger,
	)
}

// FuncOrderUoWFactory adapts a function to commands.OrderUoWFactory.
type FuncOrderUoWFactory func() commands.OrderUoW

// Create calls f.
func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// FuncVendorUoWFactory adapts a function to commands.VendorUoWFactory.
type FuncVendorUoWFactory func() commands.VendorUoW

// Create calls f.
func (f FuncVendorUoWFactory) Create() commands.VendorUoW {
	return f()
}

// FuncUserUoWFactory adapts a function to commands.UserUoWFactory.
type FuncUserUoWFactory func() commands.UserUoW

// Create calls f.
func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

// FuncOrderReaderFactory adapts a function to queries.OrderReaderFactory.
type FuncOrderReaderFactory func() queries.OrderReader

// Create calls f.
func (f FuncOrderReaderFactory) Create() queries.OrderReader {
	return f()
}
