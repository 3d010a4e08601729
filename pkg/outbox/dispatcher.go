package outbox

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"
)

type Producer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Dispatcher publishes outbox events, routing each one to the topic
// registered for its aggregate type.
type Dispatcher struct {
	log      *slog.Logger
	producer Producer
	topics   map[string]string
}

func NewDispatcher(log *slog.Logger, producer Producer, topics map[string]string) *Dispatcher {
	return &Dispatcher{log: log, producer: producer, topics: topics}
}

func (d *Dispatcher) Dispatch(ctx context.Context, event Event) error {
	topic, ok := d.topics[event.AggregateType]
	if !ok {
		return fmt.Errorf("no topic for aggregate type %q", event.AggregateType)
	}

	headers := make([]kafka.Header, 0, len(event.Headers)+2)
	for k, v := range event.Headers {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
	}
	headers = append(headers, kafka.Header{Key: "event_type", Value: []byte(event.Type)})
	if event.Traceparent != "" {
		headers = append(headers, kafka.Header{Key: "traceparent", Value: []byte(event.Traceparent)})
	}

	msg := kafka.Message{
		Topic:   topic,
		Key:     []byte(event.AggregateID),
		Value:   event.Payload,
		Headers: headers,
	}
	if err := d.producer.WriteMessages(ctx, msg); err != nil {
		d.log.Error("outbox dispatch failed", "event_id", event.ID, "topic", topic, "err", err)
		return err
	}
	d.log.Debug("outbox dispatched", "event_id", event.ID, "type", event.Type, "topic", topic)
	return nil
}
