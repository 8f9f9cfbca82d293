package http

import (
	"net/http"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ListDueOrders handles GET /calendar/?start=&end=.
func (s *Server) ListDueOrders(ctx echo.Context) error {
	start, err := requiredTimeQuery(ctx, "start")
	if err != nil {
		return s.writeError(ctx, err)
	}
	end, err := requiredTimeQuery(ctx, "end")
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewListDueOrdersQuery(actor(ctx), start, end)
	if err != nil {
		return s.writeError(ctx, err)
	}

	orders, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// RescheduleOrder handles PUT /calendar/:id?due_at=. A missing due_at clears
// the due date.
func (s *Server) RescheduleOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}
	dueAt, err := optionalTimeQuery(ctx, "due_at")
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewRescheduleOrderCommand(actor(ctx), id, dueAt)
	if err != nil {
		return s.writeError(ctx, err)
	}

	rescheduled, err := s.handlers.RescheduleOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, rescheduled)
}
