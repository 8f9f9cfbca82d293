package events

import (
	"context"
	"fmt"
	"time"

	"procurement/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes one message per event, keyed by order id so that all
// events of an order land on the same partition.
type KafkaPublisher struct {
	writer messageWriter
}

// NewKafkaWriter builds a writer that hashes message keys onto partitions and
// waits for the leader acknowledgement.
//
// Example:
//
//	publisher := events.NewKafkaPublisher(events.NewKafkaWriter(brokers, "orders"))
//	defer publisher.Close()
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
}

// NewKafkaPublisher wraps writer. Tests pass an in-memory messageWriter.
func NewKafkaPublisher(writer messageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// Publish writes event as JSON with its type in the event_type header.
// Returns the writer error wrapped with the event type.
func (p *KafkaPublisher) Publish(ctx context.Context, event order.Event) error {
	data, err := encode(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:     []byte(event.OrderID.String()),
		Value:   data,
		Headers: []kafka.Header{{Key: "event_type", Value: []byte(event.Type)}},
		Time:    time.Now().UTC(),
	}
	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write %s to kafka: %w", event.Type, err)
	}
	return nil
}

// Close flushes pending messages and closes the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
