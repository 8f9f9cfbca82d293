package commands

import (
	"context"

	"procurement/internal/core/application/views"
	"procurement/internal/core/domain/model/order"
)

// CreateOrderCommandHandler places orders. The owner is always the command's
// actor; the client never chooses it.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(actor, vendorID, items, "", nil, nil)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// created.Status == "pending", created.UserID == actor.ID().String()
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the order owned by the command's actor and returns it
// serialized. The vendor lookup and the insert share one transaction.
//
// Returns:
//   - views.Order: The stored order
//   - AccessDeniedError if the actor is disabled
//   - ErrVendorDoesNotExist if the vendor is missing
//   - store errors otherwise; nothing is persisted on error
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (views.Order, error) {
	if err := cmd.Validate(); err != nil {
		return views.Order{}, err
	}
	if err := cmd.Actor().CheckActive(); err != nil {
		return views.Order{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return views.Order{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := ensureVendorExists(ctx, uow.VendorRepository(), cmd.VendorID()); err != nil {
		return views.Order{}, err
	}

	created, err := order.NewOrder(cmd.OrderID(), cmd.VendorID(), cmd.Actor().ID(), cmd.Draft())
	if err != nil {
		return views.Order{}, err
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return views.Order{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return views.Order{}, err
	}

	return views.SerializeOrder(created), nil
}
