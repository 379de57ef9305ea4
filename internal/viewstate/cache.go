// Package viewstate holds the per-session, lazily fetched view data the
// dashboards render from. Nothing here is a source of truth: every slot is
// the last-fetched snapshot of something the API owns, kept only for the
// lifetime of the session.
package viewstate

import (
	"sort"
	"sync"
)

// Cache is a keyed cache slot family: one stored value per parent id.
type Cache[V any] struct {
	mu sync.Mutex
	m  map[int]V
}

// NewCache creates an empty keyed cache.
func NewCache[V any]() *Cache[V] {
	return &Cache[V]{m: make(map[int]V)}
}

// Get returns the cached value for key. It never fetches.
func (c *Cache[V]) Get(key int) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.m[key]
	return v, ok
}

// FetchAndStore runs fetch and stores its result under key, overwriting any
// prior value. The fetch runs outside the lock: rapid repeated triggers each
// issue their own request and the last response to resolve wins the slot.
// On fetch failure the slot is left untouched.
func (c *Cache[V]) FetchAndStore(key int, fetch func() (V, error)) (V, error) {
	v, err := fetch()
	if err != nil {
		var zero V
		return zero, err
	}

	c.mu.Lock()
	c.m[key] = v
	c.mu.Unlock()
	return v, nil
}

// Put stores a value directly, for local edits after a confirmed write.
func (c *Cache[V]) Put(key int, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = v
}

// Delete drops the slot for key so the next expansion fetches fresh.
func (c *Cache[V]) Delete(key int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, key)
}

// Len returns the number of filled slots.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.m)
}

// Values returns the cached values ordered by key, so rendering is stable
// across refreshes.
func (c *Cache[V]) Values() []V {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]int, 0, len(c.m))
	for k := range c.m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	out := make([]V, 0, len(keys))
	for _, k := range keys {
		out = append(out, c.m[k])
	}
	return out
}
