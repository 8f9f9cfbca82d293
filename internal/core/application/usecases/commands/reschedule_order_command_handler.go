package commands

import (
	"context"

	"procurement/internal/core/application/views"
	"procurement/internal/core/domain/services"
)

// RescheduleOrderCommandHandler serves the calendar. It is authorized like an
// update: owners and admins only.
type RescheduleOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.OrderPolicy
}

// NewRescheduleOrderCommandHandler creates a handler for due date changes.
// Requires an OrderUoWFactory for transactional persistence.
func NewRescheduleOrderCommandHandler(uowFactory OrderUoWFactory) RescheduleOrderCommandHandler {
	return RescheduleOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewOrderPolicy(),
	}
}

// Handle changes only the due date; status and total stay as they are.
func (h *RescheduleOrderCommandHandler) Handle(ctx context.Context, cmd RescheduleOrderCommand) (views.Order, error) {
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

	existing.Reschedule(cmd.DueAt())
	if err = orderRepo.Update(ctx, existing); err != nil {
		return views.Order{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return views.Order{}, err
	}

	return views.SerializeOrder(existing), nil
}
