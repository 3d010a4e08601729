package tracing

import (
	"context"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

func TestKafkaHeadersCarrySpanContext(t *testing.T) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID, TraceFlags: trace.FlagsSampled})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	headers := InjectKafkaHeaders(ctx, []kafka.Header{{Key: "event_type", Value: []byte("StockReceived")}})
	assert.Equal(t, "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01", HeaderValue(headers, TraceparentHeader))
	assert.Equal(t, "StockReceived", HeaderValue(headers, "event_type"))
	assert.Equal(t, HeaderValue(headers, TraceparentHeader), Traceparent(ctx))

	got := trace.SpanContextFromContext(ExtractKafkaHeaders(context.Background(), headers))
	assert.Equal(t, traceID, got.TraceID())
	assert.True(t, got.IsRemote())
}

func TestHeaderCarrierSetReplaces(t *testing.T) {
	var headers []kafka.Header
	c := HeaderCarrier{Headers: &headers}
	c.Set("a", "1")
	c.Set("a", "2")
	assert.Len(t, headers, 1)
	assert.Equal(t, "2", c.Get("a"))
	assert.Equal(t, []string{"a"}, c.Keys())
	assert.Empty(t, c.Get("missing"))
}
