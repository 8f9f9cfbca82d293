package http

import (
	"net/http"

	"procurement/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetOrderSummary handles GET /reports/summary?start=&end=.
func (s *Server) GetOrderSummary(ctx echo.Context) error {
	start, err := requiredTimeQuery(ctx, "start")
	if err != nil {
		return s.writeError(ctx, err)
	}
	end, err := requiredTimeQuery(ctx, "end")
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewOrderSummaryQuery(actor(ctx), start, end)
	if err != nil {
		return s.writeError(ctx, err)
	}

	rows, err := s.handlers.OrderSummary.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, rows)
}
