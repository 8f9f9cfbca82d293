package ports

import (
	"context"

	"procurement/internal/core/domain/model/order"
)

// OrderEventPublisher delivers order events to whoever listens downstream.
// Implementations must be safe for concurrent use.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event order.Event) error
}
