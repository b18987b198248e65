package tenant

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// Cache stores resolved tenants between requests so the provider is not hit
// on every request.
type Cache interface {
	// Get retrieves a tenant from cache by key.
	Get(ctx context.Context, key string) (*Tenant, bool)

	// Set stores a tenant in cache with the given TTL.
	Set(ctx context.Context, key string, t *Tenant, ttl time.Duration)

	// Delete removes a tenant from cache. Call it on tenant updates and
	// deactivation so stale records do not outlive their TTL.
	Delete(ctx context.Context, key string)

	// Close releases any resources held by the cache.
	Close() error
}

// DefaultCacheSize is the default capacity of the in-memory cache.
const DefaultCacheSize = 1000

type memEntry struct {
	key       string
	tenant    *Tenant
	expiresAt time.Time
}

// memoryCache is an LRU cache with per-entry TTL and a background sweeper.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List // front = most recently used
	maxSize int
	stop    chan struct{}
	done    chan struct{}
	closed  bool
}

// NewInMemoryCache creates an in-memory cache with the default capacity.
func NewInMemoryCache() Cache {
	return NewInMemoryCacheWithSize(DefaultCacheSize)
}

// NewInMemoryCacheWithSize creates an in-memory cache holding at most
// maxSize tenants; the least recently used entry is evicted on overflow.
func NewInMemoryCacheWithSize(maxSize int) Cache {
	if maxSize <= 0 {
		maxSize = DefaultCacheSize
	}

	c := &memoryCache{
		entries: make(map[string]*list.Element),
		order:   list.New(),
		maxSize: maxSize,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go c.sweep()
	return c
}

func (c *memoryCache) Get(ctx context.Context, key string) (*Tenant, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	entry := el.Value.(*memEntry)
	if time.Now().After(entry.expiresAt) {
		c.order.Remove(el)
		delete(c.entries, key)
		return nil, false
	}
	c.order.MoveToFront(el)
	return entry.tenant, true
}

func (c *memoryCache) Set(ctx context.Context, key string, t *Tenant, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		entry := el.Value.(*memEntry)
		entry.tenant = t
		entry.expiresAt = time.Now().Add(ttl)
		c.order.MoveToFront(el)
		return
	}

	if c.order.Len() >= c.maxSize {
		if oldest := c.order.Back(); oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*memEntry).key)
		}
	}

	c.entries[key] = c.order.PushFront(&memEntry{
		key:       key,
		tenant:    t,
		expiresAt: time.Now().Add(ttl),
	})
}

func (c *memoryCache) Delete(ctx context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		c.order.Remove(el)
		delete(c.entries, key)
	}
}

// Close stops the sweeper goroutine and waits for it to exit.
func (c *memoryCache) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	close(c.stop)
	<-c.done
	return nil
}

func (c *memoryCache) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	defer close(c.done)

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stop:
			return
		}
	}
}

func (c *memoryCache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		entry := el.Value.(*memEntry)
		if now.After(entry.expiresAt) {
			c.order.Remove(el)
			delete(c.entries, entry.key)
		}
		el = prev
	}
}

// noOpCache disables caching. Useful in tests and when tenants change so
// often that caching does more harm than good.
type noOpCache struct{}

// NewNoOpCache creates a cache that never stores anything.
func NewNoOpCache() Cache {
	return noOpCache{}
}

func (noOpCache) Get(ctx context.Context, key string) (*Tenant, bool) { return nil, false }

func (noOpCache) Set(ctx context.Context, key string, t *Tenant, ttl time.Duration) {}

func (noOpCache) Delete(ctx context.Context, key string) {}

func (noOpCache) Close() error { return nil }
