package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"procurement/internal/adapters/out/events"
	"procurement/internal/core/ports"

	"github.com/nats-io/nats.go"
)

// NewOrderEventPublisher picks the transport named by EVENTS_BROKER. The
// returned func releases the broker connection.
func NewOrderEventPublisher(configs Config, logger *slog.Logger) (ports.OrderEventPublisher, func() error, error) {
	switch configs.EventsBroker {
	case BrokerKafka:
		writer := events.NewKafkaWriter(events.SplitList(configs.KafkaBrokers), configs.KafkaOrderEventsTopic)
		publisher := events.NewKafkaPublisher(writer)
		return publisher, publisher.Close, nil

	case BrokerNats:
		conn, err := nats.Connect(configs.NatsURL,
			nats.Name("procurement"),
			nats.MaxReconnects(-1),
			nats.ReconnectWait(2*time.Second),
			nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
				logger.Warn("NATS disconnected", "error", err)
			}),
			nats.ReconnectHandler(func(nc *nats.Conn) {
				logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
			}),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to nats at %s: %w", configs.NatsURL, err)
		}
		return events.NewNatsPublisher(conn, configs.NatsOrderEventsSubject), conn.Drain, nil

	default:
		return events.NewLogPublisher(logger), func() error { return nil }, nil
	}
}
