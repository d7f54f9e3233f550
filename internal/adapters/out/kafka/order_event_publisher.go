// Package kafka publishes domain events to Kafka topics.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"bestcat/internal/core/domain/model/order"
)

// OrderChangedEvent is the wire payload emitted whenever an order's status
// changes. Consumers key on the order ID, so all events for one order land in
// the same partition and arrive in order.
type OrderChangedEvent struct {
	OrderID    string    `json:"orderId"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

// OrderEventPublisher implements ports.OrderEventPublisher on top of a
// kafka-go writer.
type OrderEventPublisher struct {
	writer *kafka.Writer
	topic  string
}

// NewOrderEventPublisher creates a publisher writing to the given topic.
func NewOrderEventPublisher(host, topic string) *OrderEventPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(host),
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
	}

	return &OrderEventPublisher{
		writer: writer,
		topic:  topic,
	}
}

// PublishOrderChanged emits an OrderChangedEvent for the aggregate's current
// status.
func (p *OrderEventPublisher) PublishOrderChanged(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	event := OrderChangedEvent{
		OrderID:    aggregate.ID().String(),
		Status:     aggregate.Status().String(),
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order changed event: %w", err)
	}

	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(event.OrderID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish order changed event to %s: %w", p.topic, err)
	}

	return nil
}

// Close closes the underlying writer and flushes pending messages.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}
