// Package status keeps named counters for runtime diagnostics.
package status

import (
	"slices"
	"sync"
	"sync/atomic"
)

// Counters is a concurrent set of named int64 counters
// Creating a key takes the write lock, later increments are lock-free
type Counters struct {
	mu    sync.RWMutex
	items map[string]*atomic.Int64
}

func NewCounters() *Counters {
	return &Counters{items: make(map[string]*atomic.Int64)}
}

func (c *Counters) counter(key string) *atomic.Int64 {
	c.mu.RLock()
	v, ok := c.items[key]
	c.mu.RUnlock()
	if ok {
		return v
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another goroutine may have created it between the locks
	if v, ok := c.items[key]; ok {
		return v
	}
	v = new(atomic.Int64)
	c.items[key] = v
	return v
}

// Add increments key by n
func (c *Counters) Add(key string, n int64) {
	c.counter(key).Add(n)
}

// Get returns the value of key, zero when never added
func (c *Counters) Get(key string) int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if v, ok := c.items[key]; ok {
		return v.Load()
	}
	return 0
}

// Keys returns counter names in sorted order
func (c *Counters) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.items))
	for k := range c.items {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Snapshot copies all current values
func (c *Counters) Snapshot() map[string]int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]int64, len(c.items))
	for k, v := range c.items {
		out[k] = v.Load()
	}
	return out
}
