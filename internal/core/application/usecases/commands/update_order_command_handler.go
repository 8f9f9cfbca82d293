package commands

import (
	"context"

	"procurement/internal/core/application/views"
	"procurement/internal/core/domain/services"
)

// UpdateOrderCommandHandler applies partial updates to orders after checking
// the order policy. Replacing the items recomputes the total and resets the
// status to pending.
//
// Example:
//
//	handler := NewUpdateOrderCommandHandler(uowFactory)
//	updated, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	// updated.TotalAmount reflects the new items
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.OrderPolicy
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
// Requires an OrderUoWFactory for transactional persistence.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewOrderPolicy(),
	}
}

// Handle applies the patch to an order the actor may update. Concurrent
// updates are last-write-wins.
//
// Returns:
//   - views.Order: The order as stored after the update
//   - ObjectNotFoundError if the order does not exist
//   - AccessDeniedError if the actor may not update it
//   - ErrVendorDoesNotExist if the patch moves it to a missing vendor
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (views.Order, error) {
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

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return views.Order{}, err
	}

	if err = h.policy.Authorize(cmd.Actor(), existing, services.ActionUpdate); err != nil {
		return views.Order{}, err
	}

	amendment := cmd.Amendment()
	if amendment.VendorID != nil {
		if err = ensureVendorExists(ctx, uow.VendorRepository(), *amendment.VendorID); err != nil {
			return views.Order{}, err
		}
	}

	if err = existing.Amend(amendment); err != nil {
		return views.Order{}, err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return views.Order{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return views.Order{}, err
	}

	return views.SerializeOrder(existing), nil
}
