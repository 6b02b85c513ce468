// Package cache provides the TTL caches used in front of the dividend providers.
package cache

import (
	"context"
	"sync"
	"time"
)

// DefaultTTL is the freshness window used when no TTL is configured.
const DefaultTTL = 60 * time.Second

// Option configures a cache.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// TTLCache is an in-process map of key to (value, storedAt).
// Entries are never evicted; a stale entry is simply ignored until the next Put overwrites it.
// The key space is bounded by the tickers actually requested.
type TTLCache[V any] struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry[V]
}

// NewTTLCache creates an empty cache. If ttl is 0 or negative, DefaultTTL is used.
func NewTTLCache[V any](ttl time.Duration, opts ...Option) *TTLCache[V] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	o := buildOptions(opts)
	return &TTLCache[V]{ttl: ttl, now: o.now, entries: make(map[string]entry[V])}
}

// Get returns the value for key only while now - storedAt < ttl.
func (c *TTLCache[V]) Get(_ context.Context, key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	var zero V
	if !ok || c.now().Sub(e.storedAt) >= c.ttl {
		return zero, false
	}
	return e.value, true
}

// Put stores value under key, replacing whatever was there.
func (c *TTLCache[V]) Put(_ context.Context, key string, value V, storedAt time.Time) {
	c.mu.Lock()
	c.entries[key] = entry[V]{value: value, storedAt: storedAt}
	c.mu.Unlock()
}

// Len returns the number of stored entries, fresh or not.
func (c *TTLCache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// TTL returns the configured freshness window.
func (c *TTLCache[V]) TTL() time.Duration { return c.ttl }
