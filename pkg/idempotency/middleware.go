package idempotency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// pendingMarker is stored while the first caller holding a key is still
// working; it is replaced by the result reference on Resolve.
const pendingMarker = "__pending__"

var ErrInFlight = errors.New("idempotency key is being processed")

type Store struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewStore(rdb redis.Cmdable, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Key builds the dedupe key for a consumed kafka message.
func (s *Store) Key(topic string, partition int, offset int64) string {
	return fmt.Sprintf("idem:%s:%d:%d", topic, partition, offset)
}

// Seen marks key as processed and reports whether it already was.
func (s *Store) Seen(ctx context.Context, key string) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, key, "1", s.ttl).Result()
	if err != nil {
		return false, err
	}

	return !ok, nil
}

// Claim reserves a caller supplied request key. When the key was claimed
// before, claimed is false and ref holds the reference stored by Resolve;
// ErrInFlight is returned if the earlier claim has not resolved yet.
func (s *Store) Claim(ctx context.Context, scope, key string) (ref string, claimed bool, err error) {
	k := requestKey(scope, key)
	ok, err := s.rdb.SetNX(ctx, k, pendingMarker, s.ttl).Result()
	if err != nil {
		return "", false, err
	}
	if ok {
		return "", true, nil
	}

	ref, err = s.rdb.Get(ctx, k).Result()
	if errors.Is(err, redis.Nil) {
		// expired between SETNX and GET; let the caller retry
		return "", false, ErrInFlight
	}
	if err != nil {
		return "", false, err
	}
	if ref == pendingMarker {
		return "", false, ErrInFlight
	}
	return ref, false, nil
}

// Resolve records the outcome reference for a claimed key.
func (s *Store) Resolve(ctx context.Context, scope, key, ref string) error {
	return s.rdb.Set(ctx, requestKey(scope, key), ref, s.ttl).Err()
}

// Forget drops a claim so that a failed request can be retried.
func (s *Store) Forget(ctx context.Context, scope, key string) error {
	return s.rdb.Del(ctx, requestKey(scope, key)).Err()
}

func requestKey(scope, key string) string {
	return fmt.Sprintf("idem:req:%s:%s", scope, key)
}

// Unmark drops a key set by Seen so the message can be processed again.
func (s *Store) Unmark(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}
