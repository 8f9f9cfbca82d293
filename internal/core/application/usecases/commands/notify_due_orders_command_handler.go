package commands

import (
	"context"
	"errors"
	"fmt"

	"procurement/internal/core/ports"
)

// NotifyDueOrdersCommandHandler announces orders coming due. It only reads
// orders, so no transaction is opened and nothing is written back.
type NotifyDueOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewNotifyDueOrdersCommandHandler creates the reminder handler. Events go
// straight to publisher rather than through a unit of work.
func NewNotifyDueOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) NotifyDueOrdersCommandHandler {
	return NotifyDueOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle publishes an order.due_soon event for every open order due in the
// command's window and returns how many were published. A failed publish does
// not stop the remaining ones; all failures come back joined.
func (h NotifyDueOrdersCommandHandler) Handle(ctx context.Context, cmd NotifyDueOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	from, to := cmd.From(), cmd.To()
	due, err := h.uowFactory.Create().OrderRepository().Find(ctx, ports.OrderFilter{
		DueFrom:         &from,
		DueBefore:       &to,
		ExcludeTerminal: true,
	})
	if err != nil {
		return 0, err
	}

	published := 0
	var errList []error
	for _, o := range due {
		if err = h.publisher.Publish(ctx, o.DueSoonEvent()); err != nil {
			errList = append(errList, fmt.Errorf("order %s: %w", o.ID(), err))
			continue
		}
		published++
	}

	return published, errors.Join(errList...)
}
