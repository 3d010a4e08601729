// Package redis caches catalog lookups. Order creation reads every product
// on the order, and product rows change rarely.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/dmehra2102/shop-backoffice/internal/catalog/domain"
)

type Source interface {
	GetProduct(ctx context.Context, id string) (domain.Product, error)
}

type Cache struct {
	log   *slog.Logger
	rdb   redis.Cmdable
	next  Source
	ttl   time.Duration
	group singleflight.Group
}

func NewCache(log *slog.Logger, rdb redis.Cmdable, next Source, ttl time.Duration) *Cache {
	return &Cache{log: log, rdb: rdb, next: next, ttl: ttl}
}

// GetProduct serves from redis and falls through to the source on a miss or
// a redis failure. Concurrent misses for one id share a single source call.
func (c *Cache) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	key := "catalog:product:" + id

	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var p domain.Product
		if err := json.Unmarshal(raw, &p); err == nil {
			return p, nil
		}
		c.log.Warn("catalog cache entry corrupt", "product_id", id)
	case !errors.Is(err, redis.Nil):
		c.log.Warn("catalog cache read failed", "product_id", id, "err", err)
	}

	v, err, _ := c.group.Do(id, func() (any, error) {
		p, err := c.next.GetProduct(ctx, id)
		if err != nil {
			return domain.Product{}, err
		}
		if b, err := json.Marshal(p); err == nil {
			if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
				c.log.Warn("catalog cache write failed", "product_id", id, "err", err)
			}
		}
		return p, nil
	})
	if err != nil {
		return domain.Product{}, err
	}
	return v.(domain.Product), nil
}
