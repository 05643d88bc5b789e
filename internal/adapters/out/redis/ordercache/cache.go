// Package ordercache decorates an order store with a Redis read-through
// cache. Single-order lookups are cached; search lookups always pass
// through, since fragment queries have low hit rates and the dataset is
// served by indexed SQL anyway.
package ordercache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"support/internal/core/domain/model/kernel"
	"support/internal/core/domain/model/order"
	"support/internal/core/ports"
	"support/internal/pkg/errs"
	"support/internal/pkg/metrics"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const keyPrefix = "order:view:"

const defaultTTL = 5 * time.Minute

// CachingOrderStore wraps an order store with read-through caching.
// Cache faults degrade to the inner store; a broken Redis never breaks a
// lookup. Negative results are not cached, so a freshly ingested order is
// visible on the next request.
type CachingOrderStore struct {
	inner   ports.OrderStore
	client  *redis.Client
	ttl     time.Duration
	group   singleflight.Group
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewCachingOrderStore decorates the inner store with a Redis cache.
// ttl bounds entry freshness; zero selects the default.
func NewCachingOrderStore(
	inner ports.OrderStore,
	client *redis.Client,
	ttl time.Duration,
	m *metrics.Metrics,
	logger *slog.Logger,
) *CachingOrderStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &CachingOrderStore{
		inner:   inner,
		client:  client,
		ttl:     ttl,
		metrics: m,
		logger:  logger.With("component", "order_cache"),
	}
}

// GetOrderView returns the cached projection when present, loading and
// caching it from the inner store otherwise. Concurrent misses for the same
// order collapse into a single inner lookup.
func (c *CachingOrderStore) GetOrderView(ctx context.Context, id kernel.OrderID) (order.ResolvedOrderView, error) {
	if err := id.Validate(); err != nil {
		return order.ResolvedOrderView{}, err
	}

	key := keyPrefix + id.String()
	if view, ok := c.lookup(ctx, key); ok {
		return view, nil
	}

	result, err, _ := c.group.Do(key, func() (any, error) {
		if view, ok := c.lookup(ctx, key); ok {
			return view, nil
		}

		view, loadErr := c.inner.GetOrderView(ctx, id)
		if loadErr != nil {
			return order.ResolvedOrderView{}, loadErr
		}
		c.store(ctx, key, view)
		return view, nil
	})
	if err != nil {
		return order.ResolvedOrderView{}, err
	}

	return result.(order.ResolvedOrderView), nil
}

// FindByCustomerEmail passes through to the inner store.
func (c *CachingOrderStore) FindByCustomerEmail(ctx context.Context, email string) ([]order.ResolvedOrderView, error) {
	return c.inner.FindByCustomerEmail(ctx, email)
}

// FindByCustomerName passes through to the inner store.
func (c *CachingOrderStore) FindByCustomerName(ctx context.Context, fragment string) ([]order.ResolvedOrderView, error) {
	return c.inner.FindByCustomerName(ctx, fragment)
}

// FindByProduct passes through to the inner store.
func (c *CachingOrderStore) FindByProduct(ctx context.Context, fragment string) ([]order.ResolvedOrderView, error) {
	return c.inner.FindByProduct(ctx, fragment)
}

func (c *CachingOrderStore) lookup(ctx context.Context, key string) (order.ResolvedOrderView, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "cache get failed", "key", key, "error", err)
		}
		c.miss()
		return order.ResolvedOrderView{}, false
	}

	var view order.ResolvedOrderView
	if err = json.Unmarshal(data, &view); err != nil {
		c.logger.WarnContext(ctx, "cache entry corrupt, dropping", "key", key, "error", err)
		c.client.Del(ctx, key)
		c.miss()
		return order.ResolvedOrderView{}, false
	}

	c.hit()
	return view, true
}

func (c *CachingOrderStore) store(ctx context.Context, key string, view order.ResolvedOrderView) {
	data, err := json.Marshal(view)
	if err != nil {
		c.logger.WarnContext(ctx, "cache marshal failed", "key", key, "error", err)
		return
	}
	if err = c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "cache set failed", "key", key, "error", err)
	}
}

// Invalidate removes every cached order view, for use after a reseed.
func (c *CachingOrderStore) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return errs.NewInfrastructureError("redis", err)
		}
	}
	if err := iter.Err(); err != nil {
		return errs.NewInfrastructureError("redis", err)
	}
	return nil
}

func (c *CachingOrderStore) hit() {
	if c.metrics != nil {
		c.metrics.OrderCacheHitsTotal.Inc()
	}
}

func (c *CachingOrderStore) miss() {
	if c.metrics != nil {
		c.metrics.OrderCacheMissTotal.Inc()
	}
}
