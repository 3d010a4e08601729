package idempotency

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// MemoryStore keeps request claims in process, for the memory driver.
// Claims outlive neither a restart nor the size bound.
type MemoryStore struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, string]
}

func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	if size <= 0 {
		size = 10000
	}
	return &MemoryStore{cache: expirable.NewLRU[string, string](size, nil, ttl)}
}

// Claim has the same contract as Store.Claim.
func (s *MemoryStore) Claim(_ context.Context, scope, key string) (string, bool, error) {
	k := requestKey(scope, key)
	s.mu.Lock()
	defer s.mu.Unlock()
	ref, ok := s.cache.Get(k)
	if !ok {
		s.cache.Add(k, pendingMarker)
		return "", true, nil
	}
	if ref == pendingMarker {
		return "", false, ErrInFlight
	}
	return ref, false, nil
}

func (s *MemoryStore) Resolve(_ context.Context, scope, key, ref string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Add(requestKey(scope, key), ref)
	return nil
}

func (s *MemoryStore) Forget(_ context.Context, scope, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Remove(requestKey(scope, key))
	return nil
}
