// Package kafkaconsumer runs the fetch, dedupe, handle, commit loop shared
// by every topic consumer.
package kafkaconsumer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmehra2102/shop-backoffice/pkg/apperr"
	"github.com/dmehra2102/shop-backoffice/pkg/tracing"
)

// maxHold caps the pause between attempts at a message that keeps failing.
const maxHold = 30 * time.Second

type Reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Deduper interface {
	Key(topic string, partition int, offset int64) string
	Seen(ctx context.Context, key string) (bool, error)
	Unmark(ctx context.Context, key string) error
}

// Handler processes one message. Errors classified by apperr as anything
// but internal are permanent and the message is skipped; internal errors
// are retried.
type Handler func(ctx context.Context, msg kafka.Message) error

// KeyFunc picks the dedupe key of a message. An empty result falls back to
// topic, partition and offset.
type KeyFunc func(msg kafka.Message) string

type Consumer struct {
	log      *slog.Logger
	reader   Reader
	idem     Deduper
	handle   Handler
	key      KeyFunc
	name     string
	attempts int
	backoff  time.Duration
	tracer   trace.Tracer
}

type Option func(*Consumer)

func WithKey(fn KeyFunc) Option { return func(c *Consumer) { c.key = fn } }

func WithRetry(attempts int, backoff time.Duration) Option {
	return func(c *Consumer) {
		c.attempts = attempts
		c.backoff = backoff
	}
}

func NewReader(brokers []string, topic, group string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: group,
	})
}

func New(log *slog.Logger, name string, reader Reader, idem Deduper, handle Handler, opts ...Option) *Consumer {
	c := &Consumer{
		log:      log.With("consumer", name),
		reader:   reader,
		idem:     idem,
		handle:   handle,
		name:     name,
		attempts: 3,
		backoff:  200 * time.Millisecond,
		tracer:   otel.Tracer(name),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run consumes until ctx is cancelled. Offsets are committed per
// partition, so committing a later message would also commit past one that
// failed; a message that fails with an internal error is therefore
// processed again, with growing pauses, before anything else is fetched.
func (c *Consumer) Run(ctx context.Context) error {
	defer c.reader.Close()
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return fmt.Errorf("fetch %s: %w", c.name, err)
		}
		if err := c.processUntilDone(ctx, msg); err != nil {
			return nil
		}
	}
}

// processUntilDone returns only once msg is committed or ctx is done.
func (c *Consumer) processUntilDone(ctx context.Context, msg kafka.Message) error {
	wait := max(c.backoff, time.Millisecond)
	for {
		err := c.Process(ctx, msg)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.log.Error("message processing failed, holding partition",
			"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset, "retry_in", wait, "err", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
		wait = min(wait*2, maxHold)
	}
}

// Process dedupes, handles and commits a single message. A message whose
// handler keeps failing with an internal error is unmarked and not
// committed; the error is returned and the caller decides when to try it
// again.
func (c *Consumer) Process(ctx context.Context, msg kafka.Message) error {
	key := c.dedupeKey(msg)
	seen, err := c.idem.Seen(ctx, key)
	if err != nil {
		return fmt.Errorf("idempotency check: %w", err)
	}
	if seen {
		c.log.Info("duplicate message skipped", "key", key)
		return c.reader.CommitMessages(ctx, msg)
	}

	msgCtx := tracing.ExtractKafkaHeaders(ctx, msg.Headers)
	msgCtx, span := c.tracer.Start(msgCtx, "consume "+msg.Topic, trace.WithSpanKind(trace.SpanKindConsumer))
	span.SetAttributes(
		attribute.String("messaging.kafka.topic", msg.Topic),
		attribute.Int64("messaging.kafka.offset", msg.Offset),
		attribute.String("messaging.event_type", tracing.HeaderValue(msg.Headers, "event_type")),
	)
	defer span.End()

	err = c.handleWithRetry(msgCtx, msg)
	switch {
	case err == nil:
	case apperr.KindOf(err) != apperr.KindInternal:
		span.SetStatus(codes.Error, err.Error())
		c.log.Warn("message rejected", "key", key, "event_type", tracing.HeaderValue(msg.Headers, "event_type"), "err", err)
	default:
		span.SetStatus(codes.Error, err.Error())
		if uerr := c.idem.Unmark(context.WithoutCancel(ctx), key); uerr != nil {
			c.log.Error("idempotency unmark failed", "key", key, "err", uerr)
		}
		return err
	}
	return c.reader.CommitMessages(ctx, msg)
}

func (c *Consumer) handleWithRetry(ctx context.Context, msg kafka.Message) error {
	var err error
	for attempt := 1; attempt <= c.attempts; attempt++ {
		err = c.handle(ctx, msg)
		if err == nil || apperr.KindOf(err) != apperr.KindInternal {
			return err
		}
		if attempt == c.attempts {
			break
		}
		c.log.Warn("message handler failed, retrying", "attempt", attempt, "err", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.backoff * time.Duration(attempt)):
		}
	}
	return err
}

func (c *Consumer) dedupeKey(msg kafka.Message) string {
	if c.key != nil {
		if k := c.key(msg); k != "" {
			return "idem:" + msg.Topic + ":" + k
		}
	}
	return c.idem.Key(msg.Topic, msg.Partition, msg.Offset)
}
