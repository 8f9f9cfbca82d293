package queries

import (
	"context"

	"procurement/internal/core/application/views"
	"procurement/internal/core/domain/services"
)

// GetOrderQueryHandler reads single orders and applies the order policy to
// them. The order is loaded before authorization, so a missing id is reported
// as not found even to a principal who could not have read it.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(readerFactory)
//	order, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrAccessDenied) {
//	    // not the owner and not an admin
//	}
type GetOrderQueryHandler struct {
	readerFactory OrderReaderFactory
	policy        services.OrderPolicy
}

// NewGetOrderQueryHandler creates a handler for single order reads.
// Requires an OrderReaderFactory; reads run outside a transaction.
func NewGetOrderQueryHandler(readerFactory OrderReaderFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		readerFactory: readerFactory,
		policy:        services.NewOrderPolicy(),
	}
}

// Handle loads, authorizes and serializes one order.
//
// Returns:
//   - views.Order: The serialized order
//   - ObjectNotFoundError if the order does not exist
//   - AccessDeniedError if the actor is disabled or may not read it
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (views.Order, error) {
	if err := query.Validate(); err != nil {
		return views.Order{}, err
	}
	if err := query.Actor().CheckActive(); err != nil {
		return views.Order{}, err
	}

	o, err := h.readerFactory.Create().OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return views.Order{}, err
	}

	if err = h.policy.Authorize(query.Actor(), o, services.ActionRead); err != nil {
		return views.Order{}, err
	}

	return views.SerializeOrder(o), nil
}
