package store

import "sync"

// Container holds the current snapshot of a collection and fans whole-slice
// replacements out to watchers. There is no diffing; every Set publishes
// the full collection.
type Container[T any] struct {
	mu       sync.RWMutex
	items    []T
	watchers map[chan []T]struct{}
}

func NewContainer[T any]() *Container[T] {
	return &Container[T]{watchers: make(map[chan []T]struct{})}
}

// Get returns a copy of the current snapshot.
func (c *Container[T]) Get() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Container[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Set replaces the snapshot and notifies watchers. A watcher that cannot
// keep up misses intermediate snapshots, never blocks the publisher.
func (c *Container[T]) Set(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	for ch := range c.watchers {
		snapshot := make([]T, len(items))
		copy(snapshot, items)
		select {
		case ch <- snapshot:
		default:
		}
	}
}

// Watch registers a channel that receives every snapshot replacement until
// Unwatch is called.
func (c *Container[T]) Watch() chan []T {
	ch := make(chan []T, 8)
	c.mu.Lock()
	c.watchers[ch] = struct{}{}
	c.mu.Unlock()
	return ch
}

func (c *Container[T]) Unwatch(ch chan []T) {
	c.mu.Lock()
	if _, ok := c.watchers[ch]; ok {
		delete(c.watchers, ch)
		close(ch)
	}
	c.mu.Unlock()
}
