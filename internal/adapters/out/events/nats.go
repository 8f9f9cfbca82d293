package events

import (
	"context"
	"fmt"

	"procurement/internal/core/domain/model/order"

	"github.com/nats-io/nats.go"
)

type msgPublisher interface {
	PublishMsg(m *nats.Msg) error
}

// NatsPublisher publishes each event on <subject>.<event type>, for example
// procurement.orders.order.created.
type NatsPublisher struct {
	conn    msgPublisher
	subject string
}

// NewNatsPublisher publishes through conn under the subject prefix.
// A *nats.Conn satisfies msgPublisher.
func NewNatsPublisher(conn msgPublisher, subject string) *NatsPublisher {
	return &NatsPublisher{conn: conn, subject: subject}
}

// Publish sends event as JSON. Core NATS gives no delivery guarantee,
// so a nil error only means the message was buffered.
func (p *NatsPublisher) Publish(ctx context.Context, event order.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encode(event)
	if err != nil {
		return err
	}

	msg := nats.NewMsg(p.subject + "." + string(event.Type))
	msg.Data = data
	msg.Header.Set(nats.MsgIdHdr, event.ID.String())

	if err = p.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("failed to publish %s to nats: %w", event.Type, err)
	}
	return nil
}
