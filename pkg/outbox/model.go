package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmehra2102/shop-backoffice/pkg/tracing"
)

const (
	statusPending    = "pending"
	statusInProgress = "in_progress"
	statusSent       = "sent"
)

// Event is one row of the outbox table. AggregateType selects the topic the
// relay publishes it to.
type Event struct {
	ID            int64
	AggregateType string
	AggregateID   string
	Type          string
	Payload       []byte
	Headers       map[string]string
	Traceparent   string
	CreatedAt     time.Time
	RelayID       string
	RetryCount    int
}

// Typed is a domain event that knows its own wire name.
type Typed interface {
	EventType() string
}

// NewEvent encodes a domain event as JSON and stamps it with the span
// active in ctx so consumers continue the same trace.
func NewEvent(ctx context.Context, aggregateType, aggregateID string, ev Typed) (Event, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return Event{}, fmt.Errorf("encode %s: %w", ev.EventType(), err)
	}
	return Event{
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		Type:          ev.EventType(),
		Payload:       payload,
		Headers:       map[string]string{"source": aggregateType},
		Traceparent:   tracing.Traceparent(ctx),
	}, nil
}
