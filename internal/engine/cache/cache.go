// Package cache implements a byte-budgeted LRU cache safe for concurrent use.
package cache

import (
	"container/list"
	"sync"

	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
)

var _ ports.PayloadCache = (*Cache[*domain.Payload])(nil)

type entry[V any] struct {
	key   string
	value V
	size  int64
}

// Cache maps keys to values with a per-entry byte size and evicts the least
// recently used entries once the running total exceeds the budget.
// The front of the recency list is the most recently used entry.
type Cache[V any] struct {
	mu       sync.Mutex
	budget   int64
	total    int64
	items    map[string]*list.Element
	order    *list.List
	observer ports.CacheObserver
}

// Option configures a Cache.
type Option func(*options)

type options struct {
	observer ports.CacheObserver
}

// WithObserver reports hits, misses, evictions and usage to o.
func WithObserver(o ports.CacheObserver) Option {
	return func(opts *options) {
		opts.observer = o
	}
}

// New creates a cache with the given byte budget.
// A non-positive budget falls back to domain.DefaultCacheBudget.
func New[V any](budget int64, opts ...Option) *Cache[V] {
	if budget <= 0 {
		budget = domain.DefaultCacheBudget
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Cache[V]{
		budget:   budget,
		items:    make(map[string]*list.Element),
		order:    list.New(),
		observer: o.observer,
	}
}

// NewPayloadCache creates the cache used for decoded images.
func NewPayloadCache(budget int64, opts ...Option) *Cache[*domain.Payload] {
	return New[*domain.Payload](budget, opts...)
}

// Get returns the value for key and marks it most recently used.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		if c.observer != nil {
			c.observer.CacheMiss()
		}
		var zero V
		return zero, false
	}

	c.order.MoveToFront(el)
	if c.observer != nil {
		c.observer.CacheHit()
	}
	return el.Value.(*entry[V]).value, true
}

// Peek returns the value for key without changing its recency or reporting a lookup.
func (c *Cache[V]) Peek(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	return el.Value.(*entry[V]).value, true
}

// Put inserts or replaces the value for key, marks it most recently used and
// evicts least recently used entries until the total fits the budget.
// The entry just inserted is never evicted, so an entry larger than the whole
// budget is kept alone. Negative sizes count as zero.
func (c *Cache[V]) Put(key string, value V, sizeBytes int64) {
	if sizeBytes < 0 {
		sizeBytes = 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		e := el.Value.(*entry[V])
		c.total += sizeBytes - e.size
		e.value = value
		e.size = sizeBytes
		c.order.MoveToFront(el)
	} else {
		el := c.order.PushFront(&entry[V]{key: key, value: value, size: sizeBytes})
		c.items[key] = el
		c.total += sizeBytes
	}

	evicted := c.evict()
	if c.observer != nil {
		if evicted > 0 {
			c.observer.CacheEvicted(evicted)
		}
		c.observer.CacheUsage(c.statsLocked())
	}
}

// evict drops entries from the back of the list while over budget, stopping
// at the most recently used entry. Callers must hold mu.
func (c *Cache[V]) evict() int {
	evicted := 0
	for c.total > c.budget {
		last := c.order.Back()
		if last == nil || last == c.order.Front() {
			break
		}
		c.removeElement(last)
		evicted++
	}
	return evicted
}

// Remove deletes key if present.
func (c *Cache[V]) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return
	}
	c.removeElement(el)
	if c.observer != nil {
		c.observer.CacheUsage(c.statsLocked())
	}
}

// Clear drops every entry.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.order.Init()
	c.total = 0
	if c.observer != nil {
		c.observer.CacheUsage(c.statsLocked())
	}
}

// Stats returns a consistent snapshot of the cache.
func (c *Cache[V]) Stats() ports.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.statsLocked()
}

func (c *Cache[V]) statsLocked() ports.CacheStats {
	return ports.CacheStats{
		Count:      len(c.items),
		TotalBytes: c.total,
		Budget:     c.budget,
	}
}

func (c *Cache[V]) removeElement(el *list.Element) {
	e := el.Value.(*entry[V])
	c.order.Remove(el)
	delete(c.items, e.key)
	c.total -= e.size
}
