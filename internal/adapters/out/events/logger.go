package events

import (
	"context"
	"log/slog"

	"procurement/internal/core/domain/model/order"
)

// LogPublisher writes events to the application log. It is used when no
// broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher returns a publisher that logs through logger.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "order_events")}
}

// Publish logs event at info level. It never fails.
func (p *LogPublisher) Publish(ctx context.Context, event order.Event) error {
	payload := NewPayload(event)
	p.logger.InfoContext(ctx, "Order event",
		"event_id", payload.EventID,
		"event_type", payload.Type,
		"order_id", payload.OrderID,
		"status", payload.Status,
		"total_amount", payload.TotalAmount.String(),
	)
	return nil
}
