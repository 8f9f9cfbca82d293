package http

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/application/views"
	"procurement/internal/core/domain/model/principal"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const principalKey = "principal"

// collectionRoots are redirected to their trailing-slash form, so /orders and
// /orders/ reach the same handlers.
var collectionRoots = []string{"/orders", "/vendors", "/users", "/calendar"}

type (
	// CreateOrderHandler places a new order for the calling principal.
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (views.Order, error)
	}
	// UpdateOrderHandler applies a partial amendment to an existing order.
	UpdateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderCommand) (views.Order, error)
	}
	// DeleteOrderHandler removes an order the principal may delete.
	DeleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}
	// RescheduleOrderHandler moves or clears an order's due date.
	RescheduleOrderHandler interface {
		Handle(ctx context.Context, cmd commands.RescheduleOrderCommand) (views.Order, error)
	}
	// GetOrderHandler loads one order, hiding orders the principal may not see.
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (views.Order, error)
	}
	// ListOrdersHandler lists orders scoped to the principal.
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]views.Order, error)
	}
	// OrderSummaryHandler aggregates order counts and totals per vendor.
	OrderSummaryHandler interface {
		Handle(ctx context.Context, query queries.OrderSummaryQuery) ([]queries.OrderSummaryRow, error)
	}
	// VendorCommandHandler creates, updates and deletes vendors. Admin only.
	VendorCommandHandler interface {
		Create(ctx context.Context, cmd commands.CreateVendorCommand) (views.Vendor, error)
		Update(ctx context.Context, cmd commands.UpdateVendorCommand) (views.Vendor, error)
		Delete(ctx context.Context, cmd commands.DeleteVendorCommand) error
	}
	// VendorQueryHandler reads the vendor catalogue.
	VendorQueryHandler interface {
		Get(ctx context.Context, query queries.GetVendorQuery) (views.Vendor, error)
		List(ctx context.Context, query queries.ListVendorsQuery) ([]views.Vendor, error)
	}
	// UserCommandHandler manages accounts. Admin only.
	UserCommandHandler interface {
		Create(ctx context.Context, cmd commands.CreateUserCommand) (views.User, error)
		Update(ctx context.Context, cmd commands.UpdateUserCommand) (views.User, error)
	}
)

// Handlers bundles the use cases the server dispatches to.
type Handlers struct {
	CreateOrder     CreateOrderHandler
	UpdateOrder     UpdateOrderHandler
	DeleteOrder     DeleteOrderHandler
	RescheduleOrder RescheduleOrderHandler
	GetOrder        GetOrderHandler
	ListOrders      ListOrdersHandler
	OrderSummary    OrderSummaryHandler
	VendorCommands  VendorCommandHandler
	VendorQueries   VendorQueryHandler
	UserCommands    UserCommandHandler
}

// Server adapts echo requests to application use cases. Every route except
// /health, /metrics and /swagger requires a bearer credential.
type Server struct {
	handlers Handlers
	resolver ports.PrincipalResolver
	metrics  *ServerMetrics
	gatherer prometheus.Gatherer
	logger   *slog.Logger
}

// NewServer wires the use case handlers into an HTTP server.
// It registers the HTTP collectors on registry and serves them from /metrics.
//
// Parameters:
//   - handlers: use cases the routes dispatch to
//   - resolver: turns bearer credentials into principals
//   - registry: Prometheus registry for collectors and the /metrics endpoint
//   - logger: request and error logger
func NewServer(
	handlers Handlers,
	resolver ports.PrincipalResolver,
	registry *prometheus.Registry,
	logger *slog.Logger,
) *Server {
	return &Server{
		handlers: handlers,
		resolver: resolver,
		metrics:  NewServerMetrics(registry, "api"),
		gatherer: registry,
		logger:   logger.With("component", "http_server"),
	}
}

// Register installs middleware and routes on e.
//
// Middleware order:
//   - trailing-slash redirect for collection roots (before routing)
//   - panic recovery
//   - Prometheus request metrics
//   - structured request logging through slog
//
// Example:
//
//	e := echo.New()
//	server := NewServer(handlers, resolver, prometheus.NewRegistry(), logger)
//	server.Register(e)
//	e.Start(":8080")
func (s *Server) Register(e *echo.Echo) {
	e.Validator = newRequestValidator()

	e.Pre(middleware.AddTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		RedirectCode: http.StatusTemporaryRedirect,
		Skipper: func(ctx echo.Context) bool {
			return !slices.Contains(collectionRoots, ctx.Request().URL.Path)
		},
	}))

	e.Use(middleware.Recover())
	e.Use(s.metrics.Middleware())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			s.logger.LogAttrs(ctx.Request().Context(), level, "HTTP request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	auth := s.authenticate

	orders := e.Group("/orders", auth)
	orders.POST("/", s.CreateOrder)
	orders.GET("/", s.ListOrders)
	orders.GET("/:id", s.GetOrder)
	orders.PUT("/:id", s.UpdateOrder)
	orders.DELETE("/:id", s.DeleteOrder)

	calendar := e.Group("/calendar", auth)
	calendar.GET("/", s.ListDueOrders)
	calendar.PUT("/:id", s.RescheduleOrder)

	reports := e.Group("/reports", auth)
	reports.GET("/summary", s.GetOrderSummary)

	vendors := e.Group("/vendors", auth)
	vendors.POST("/", s.CreateVendor)
	vendors.GET("/", s.ListVendors)
	vendors.GET("/:id", s.GetVendor)
	vendors.PUT("/:id", s.UpdateVendor)
	vendors.DELETE("/:id", s.DeleteVendor)

	users := e.Group("/users", auth)
	users.POST("/", s.CreateUser)
	users.GET("/me", s.GetCurrentUser)
	users.PATCH("/:id", s.UpdateUser)
}

func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return s.writeError(ctx, errs.NewUnauthenticatedError("missing bearer token", nil))
		}

		p, err := s.resolver.Resolve(ctx.Request().Context(), strings.TrimSpace(token))
		if err != nil {
			return s.writeError(ctx, err)
		}

		ctx.Set(principalKey, p)
		return next(ctx)
	}
}

// actor returns the principal stored by authenticate. Routes without it never
// reach a handler, so a miss is a wiring bug and yields the zero principal,
// which every use case rejects.
func actor(ctx echo.Context) principal.Principal {
	p, _ := ctx.Get(principalKey).(principal.Principal)
	return p
}
