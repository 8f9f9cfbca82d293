package queries

import (
	"context"

	"procurement/internal/core/application/views"
)

// ListOrdersQueryHandler serves both the order listing and the calendar; the
// query's filter decides which.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(readerFactory)
//	query, _ := NewListOrdersQuery(actor, "")
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQueryHandler struct {
	readerFactory OrderReaderFactory
}

// NewListOrdersQueryHandler creates a handler for order listings.
// Requires an OrderReaderFactory; reads run outside a transaction.
func NewListOrdersQueryHandler(readerFactory OrderReaderFactory) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{readerFactory: readerFactory}
}

// Handle returns serialized orders newest first; no match is an empty slice.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]views.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := query.Actor().CheckActive(); err != nil {
		return nil, err
	}

	orders, err := h.readerFactory.Create().OrderRepository().Find(ctx, query.Filter())
	if err != nil {
		return nil, err
	}

	return views.SerializeOrders(orders), nil
}
