package kafka_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmehra2102/shop-backoffice/internal/customer/application"
	"github.com/dmehra2102/shop-backoffice/internal/customer/domain"
	customerkafka "github.com/dmehra2102/shop-backoffice/internal/customer/infrastructure/kafka"
	"github.com/dmehra2102/shop-backoffice/internal/customer/infrastructure/memory"
)

type captureProducer struct {
	mu   sync.Mutex
	msgs []kafka.Message
}

func (p *captureProducer) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, msgs...)
	return nil
}

func TestNotifierRoundTripsThroughHandler(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()
	producer := &captureProducer{}
	notifier := customerkafka.NewNotifier(log, producer, "customer.spend")

	require.NoError(t, notifier.AddOrderTotal(ctx, "cust-1", decimal.RequireFromString("12.34"), "order:1:created"))
	require.NoError(t, notifier.AddOrderTotal(ctx, "cust-1", decimal.RequireFromString("-12.34"), "order:1:cancelled"))
	require.Len(t, producer.msgs, 2)

	msg := producer.msgs[0]
	assert.Equal(t, "customer.spend", msg.Topic)
	assert.Equal(t, []byte("cust-1"), msg.Key)
	assert.Equal(t, "order:1:created", customerkafka.EntryRef(msg))

	svc := application.NewService(log, memory.NewRepository())
	h := customerkafka.NewSpendHandler(log, svc)
	require.NoError(t, h.Handle(ctx, producer.msgs[0]))
	require.NoError(t, h.Handle(ctx, producer.msgs[0]))

	c, err := svc.Get(ctx, "cust-1")
	require.NoError(t, err)
	assert.Equal(t, "12.34", c.LifetimeSpend.String())
	assert.Equal(t, int64(1), c.OrderCount)

	require.NoError(t, h.Handle(ctx, producer.msgs[1]))
	c, err = svc.Get(ctx, "cust-1")
	require.NoError(t, err)
	assert.True(t, c.LifetimeSpend.IsZero())
}

func TestSpendHandlerRejectsGarbage(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := customerkafka.NewSpendHandler(log, application.NewService(log, memory.NewRepository()))
	err := h.Handle(context.Background(), kafka.Message{Value: []byte("{")})
	assert.ErrorIs(t, err, domain.ErrInvalidEntry)
}
