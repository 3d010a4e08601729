package kafkaconsumer_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmehra2102/shop-backoffice/pkg/apperr"
	"github.com/dmehra2102/shop-backoffice/pkg/kafkaconsumer"
)

type fakeReader struct {
	mu        sync.Mutex
	msgs      []kafka.Message
	committed []int64
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.msgs) == 0 {
		return kafka.Message{}, context.Canceled
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *fakeReader) Close() error { return nil }

type fakeIdem struct {
	mu   sync.Mutex
	seen map[string]bool
}

func (f *fakeIdem) Key(topic string, partition int, offset int64) string {
	return fmt.Sprintf("%s:%d:%d", topic, partition, offset)
}

func (f *fakeIdem) Seen(_ context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	was := f.seen[key]
	f.seen[key] = true
	return was, nil
}

func (f *fakeIdem) Unmark(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.seen, key)
	return nil
}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestRunDedupesByKey(t *testing.T) {
	reader := &fakeReader{msgs: []kafka.Message{
		{Topic: "t", Offset: 1, Key: []byte("a")},
		{Topic: "t", Offset: 2, Key: []byte("a")},
		{Topic: "t", Offset: 3, Key: []byte("b")},
	}}
	idem := &fakeIdem{seen: map[string]bool{}}
	var handled []string
	c := kafkaconsumer.New(discard(), "test", reader, idem, func(_ context.Context, msg kafka.Message) error {
		handled = append(handled, string(msg.Key))
		return nil
	}, kafkaconsumer.WithKey(func(msg kafka.Message) string { return string(msg.Key) }))

	require.NoError(t, c.Run(context.Background()))
	assert.Equal(t, []string{"a", "b"}, handled)
	assert.Equal(t, []int64{1, 2, 3}, reader.committed)
}

func TestProcessSkipsPermanentFailures(t *testing.T) {
	reader := &fakeReader{}
	idem := &fakeIdem{seen: map[string]bool{}}
	calls := 0
	c := kafkaconsumer.New(discard(), "test", reader, idem, func(context.Context, kafka.Message) error {
		calls++
		return apperr.Validation("bad_payload", "bad payload")
	})

	require.NoError(t, c.Process(context.Background(), kafka.Message{Topic: "t", Offset: 7}))
	assert.Equal(t, 1, calls)
	assert.Equal(t, []int64{7}, reader.committed)
}

func TestProcessRetriesThenLeavesMessageUncommitted(t *testing.T) {
	reader := &fakeReader{}
	idem := &fakeIdem{seen: map[string]bool{}}
	calls := 0
	c := kafkaconsumer.New(discard(), "test", reader, idem, func(context.Context, kafka.Message) error {
		calls++
		return errors.New("db down")
	}, kafkaconsumer.WithRetry(3, time.Millisecond))

	err := c.Process(context.Background(), kafka.Message{Topic: "t", Offset: 9})
	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.Empty(t, reader.committed)
	assert.Empty(t, idem.seen)
}

func TestProcessRecoversOnRetry(t *testing.T) {
	reader := &fakeReader{}
	idem := &fakeIdem{seen: map[string]bool{}}
	calls := 0
	c := kafkaconsumer.New(discard(), "test", reader, idem, func(context.Context, kafka.Message) error {
		calls++
		if calls == 1 {
			return errors.New("timeout")
		}
		return nil
	}, kafkaconsumer.WithRetry(3, time.Millisecond))

	require.NoError(t, c.Process(context.Background(), kafka.Message{Topic: "t", Offset: 4}))
	assert.Equal(t, 2, calls)
	assert.Equal(t, []int64{4}, reader.committed)
}

func TestRunHoldsPartitionUntilFailedMessageSucceeds(t *testing.T) {
	reader := &fakeReader{msgs: []kafka.Message{
		{Topic: "t", Offset: 1},
		{Topic: "t", Offset: 2},
	}}
	idem := &fakeIdem{seen: map[string]bool{}}
	var handled []int64
	failures := 0
	c := kafkaconsumer.New(discard(), "test", reader, idem, func(_ context.Context, msg kafka.Message) error {
		handled = append(handled, msg.Offset)
		if msg.Offset == 1 && failures < 2 {
			failures++
			return errors.New("db down")
		}
		return nil
	}, kafkaconsumer.WithRetry(1, time.Millisecond))

	require.NoError(t, c.Run(context.Background()))
	assert.Equal(t, []int64{1, 1, 1, 2}, handled)
	assert.Equal(t, []int64{1, 2}, reader.committed)
}

func TestRunNeverCommitsPastFailingMessage(t *testing.T) {
	reader := &fakeReader{msgs: []kafka.Message{
		{Topic: "t", Offset: 1},
		{Topic: "t", Offset: 2},
	}}
	idem := &fakeIdem{seen: map[string]bool{}}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var handled []int64
	c := kafkaconsumer.New(discard(), "test", reader, idem, func(_ context.Context, msg kafka.Message) error {
		handled = append(handled, msg.Offset)
		if len(handled) == 3 {
			cancel()
		}
		return errors.New("db down")
	}, kafkaconsumer.WithRetry(1, time.Millisecond))

	require.NoError(t, c.Run(ctx))
	assert.Equal(t, []int64{1, 1, 1}, handled)
	assert.Empty(t, reader.committed)
	assert.Len(t, reader.msgs, 1)
}
