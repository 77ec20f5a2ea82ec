package external

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/ba-raid-api/internal/engine/options"
	"github.com/KirkDiggler/ba-raid-api/internal/pkg/clock"
)

type cacheEntry struct {
	value   any
	expires time.Time
}

// cachedClient keeps successful responses for a fixed TTL. Errors are never
// cached.
type cachedClient struct {
	next  Client
	ttl   time.Duration
	clock clock.Clock

	mu      sync.Mutex
	entries map[string]cacheEntry
}

// NewCached wraps a Client with an in-memory TTL cache
func NewCached(next Client, ttl time.Duration, clk clock.Clock) Client {
	if clk == nil {
		clk = clock.New()
	}
	return &cachedClient{
		next:    next,
		ttl:     ttl,
		clock:   clk,
		entries: make(map[string]cacheEntry),
	}
}

func (c *cachedClient) GetParties(ctx context.Context, raidID string) (*PartyFeed, error) {
	return cached(c, "parties:"+raidID, func() (*PartyFeed, error) {
		return c.next.GetParties(ctx, raidID)
	})
}

func (c *cachedClient) GetFilterData(ctx context.Context, raidID string) (*FilterFeed, error) {
	return cached(c, "filters:"+raidID, func() (*FilterFeed, error) {
		return c.next.GetFilterData(ctx, raidID)
	})
}

func (c *cachedClient) GetStudentNames(ctx context.Context) (options.Names, error) {
	return cached(c, "students", func() (options.Names, error) {
		return c.next.GetStudentNames(ctx)
	})
}

func cached[T any](c *cachedClient, key string, load func() (T, error)) (T, error) {
	now := c.clock.Now()

	c.mu.Lock()
	entry, ok := c.entries[key]
	c.mu.Unlock()
	if ok && now.Before(entry.expires) {
		return entry.value.(T), nil
	}

	value, err := load()
	if err != nil {
		var zero T
		return zero, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{value: value, expires: now.Add(c.ttl)}
	c.mu.Unlock()

	return value, nil
}
