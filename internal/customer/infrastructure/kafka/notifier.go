package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/dmehra2102/shop-backoffice/internal/customer/domain"
	"github.com/dmehra2102/shop-backoffice/pkg/tracing"
)

type Producer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Notifier publishes spend entries for the customer service. Delivery is
// at-least-once; the consumer dedupes on the entry ref.
type Notifier struct {
	log      *slog.Logger
	producer Producer
	topic    string
}

func NewNotifier(log *slog.Logger, producer Producer, topic string) *Notifier {
	return &Notifier{log: log, producer: producer, topic: topic}
}

func (n *Notifier) AddOrderTotal(ctx context.Context, customerID string, amount decimal.Decimal, ref string) error {
	return n.publish(ctx, domain.SpendEntry{
		Ref:        ref,
		CustomerID: customerID,
		Amount:     amount,
		Orders:     domain.OrdersFor(amount),
		At:         time.Now().UTC(),
	})
}

func (n *Notifier) AdjustOrderTotal(ctx context.Context, customerID string, delta decimal.Decimal, ref string) error {
	return n.publish(ctx, domain.SpendEntry{
		Ref:        ref,
		CustomerID: customerID,
		Amount:     delta,
		At:         time.Now().UTC(),
	})
}

func (n *Notifier) publish(ctx context.Context, entry domain.SpendEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Topic: n.topic,
		Key:   []byte(entry.CustomerID),
		Value: payload,
		Headers: tracing.InjectKafkaHeaders(ctx, []kafka.Header{
			{Key: "event_type", Value: []byte("SpendRecorded")},
		}),
	}
	if err := n.producer.WriteMessages(ctx, msg); err != nil {
		return err
	}
	n.log.Debug("spend entry published", "customer_id", entry.CustomerID, "ref", entry.Ref)
	return nil
}
