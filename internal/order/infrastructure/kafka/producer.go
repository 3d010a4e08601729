package kafka

import (
	"time"

	"github.com/segmentio/kafka-go"
)

// NewWriter returns the writer used by the outbox relay and the customer
// notifier. Messages are hashed on their key so that every event of one
// order or stock record lands on the same partition, in order.
func NewWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}
