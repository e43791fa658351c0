// Package viewcache holds rendered view payloads keyed by path so listing
// handlers can serve repeat reads without touching the database. Mutation
// handlers depend only on Invalidator: marking a view stale is an explicit
// call on an injected collaborator, never a hidden global.
package viewcache

import (
	"sync"
)

// Invalidator is the only capability mutation handlers need.
type Invalidator interface {
	Invalidate(view string)
}

// Cache is an in-memory view store. The zero value is not usable; use New.
type Cache struct {
	mu    sync.RWMutex
	views map[string][]byte
}

func New() *Cache {
	return &Cache{views: make(map[string][]byte)}
}

// Get returns the cached payload for view, if fresh.
func (c *Cache) Get(view string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	payload, ok := c.views[view]

	return payload, ok
}

// Set stores a freshly rendered payload for view.
func (c *Cache) Set(view string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.views[view] = payload
}

// Invalidate marks the view stale so the next read recomputes it.
func (c *Cache) Invalidate(view string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.views, view)
}
