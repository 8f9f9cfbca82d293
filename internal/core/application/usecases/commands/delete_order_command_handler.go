package commands

import (
	"context"

	"procurement/internal/core/domain/services"
)

// DeleteOrderCommandHandler deletes orders after checking the order policy.
// An EventDeleted is published once the transaction commits.
//
// Example:
//
//	handler := NewDeleteOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrAccessDenied) {
//	    // not the owner and not an admin
//	}
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.OrderPolicy
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
// Requires an OrderUoWFactory for transactional persistence.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewOrderPolicy(),
	}
}

// Handle removes an order the actor may delete. Deleting an id twice reports
// errs.ErrObjectNotFound the second time.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Actor().CheckActive(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.policy.Authorize(cmd.Actor(), existing, services.ActionDelete); err != nil {
		return err
	}

	existing.MarkDeleted()
	if err = orderRepo.Delete(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
