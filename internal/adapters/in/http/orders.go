package http

import (
	"net/http"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// OrderItemRequest is one line of an order payload. Quantity and price are
// validated by the domain, not by tags.
type OrderItemRequest struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// NewOrderRequest is the body of POST /orders/. An empty Status means pending.
type NewOrderRequest struct {
	VendorID            string             `json:"vendor_id" validate:"required"`
	Items               []OrderItemRequest `json:"items"`
	Status              string             `json:"status"`
	SpecialInstructions *string            `json:"special_instructions"`
	DueAt               *time.Time         `json:"due_at"`
}

// OrderPatchRequest distinguishes absent fields (nil) from present ones. An
// explicit empty items list is present and rejected downstream.
type OrderPatchRequest struct {
	VendorID            *string            `json:"vendor_id"`
	Items               []OrderItemRequest `json:"items"`
	Status              *string            `json:"status"`
	SpecialInstructions *string            `json:"special_instructions"`
	DueAt               *time.Time         `json:"due_at"`
}

func itemInputs(items []OrderItemRequest) []commands.ItemInput {
	if items == nil {
		return nil
	}
	return lo.Map(items, func(item OrderItemRequest, _ int) commands.ItemInput {
		return commands.ItemInput{ProductName: item.ProductName, Quantity: item.Quantity, Price: item.Price}
	})
}

// CreateOrder handles POST /orders/.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := bindBody(ctx, &req); err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(actor(ctx), req.VendorID, itemInputs(req.Items),
		req.Status, req.SpecialInstructions, req.DueAt)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, created)
}

// ListOrders handles GET /orders/.
func (s *Server) ListOrders(ctx echo.Context) error {
	search, err := optionalQuery(ctx, "q")
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewListOrdersQuery(actor(ctx), lo.FromPtr(search))
	if err != nil {
		return s.writeError(ctx, err)
	}

	orders, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(actor(ctx), id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	found, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, found)
}

// UpdateOrder handles PUT /orders/:id.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req OrderPatchRequest
	if err = bindBody(ctx, &req); err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(actor(ctx), id, commands.OrderPatch{
		VendorID:            req.VendorID,
		Items:               itemInputs(req.Items),
		Status:              req.Status,
		SpecialInstructions: req.SpecialInstructions,
		DueAt:               req.DueAt,
	})
	if err != nil {
		return s.writeError(ctx, err)
	}

	updated, err := s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, updated)
}

// DeleteOrder handles DELETE /orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(actor(ctx), id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Message{Message: "Order deleted successfully"})
}
