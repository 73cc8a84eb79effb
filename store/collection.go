package store

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"
)

// Collection is a reactive set of records persisted as one JSON snapshot
// under a single key. Loading prefers the persisted snapshot; a missing or
// corrupt snapshot falls back to the seed source. Every mutation publishes
// the full updated collection first and then persists it, so readers see
// the change before storage confirms it.
type Collection[T any] struct {
	key    string
	kv     KeyValue
	seed   SeedSource
	idOf   func(T) int
	withID func(T, int) T
	delay  time.Duration

	container *Container[T]

	mu     sync.Mutex // serializes load and mutations
	loaded bool
}

type CollectionConfig[T any] struct {
	// Key names both the storage entry and the log subject.
	Key  string
	KV   KeyValue
	Seed SeedSource
	// IDOf and WithID give the collection access to the record id without
	// constraining the record type.
	IDOf   func(T) int
	WithID func(T, int) T
	// WriteDelay emulates backend latency on Add. Zero disables it.
	WriteDelay time.Duration
}

func NewCollection[T any](cfg CollectionConfig[T]) *Collection[T] {
	return &Collection[T]{
		key:       cfg.Key,
		kv:        cfg.KV,
		seed:      cfg.Seed,
		idOf:      cfg.IDOf,
		withID:    cfg.WithID,
		delay:     cfg.WriteDelay,
		container: NewContainer[T](),
	}
}

// Load populates the collection once. The persisted snapshot, when present
// and valid, is authoritative and is never re-merged with the seed. A
// corrupt snapshot is discarded before reseeding. A failed seed fetch
// publishes an empty collection and is not retried.
func (c *Collection[T]) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return nil
	}
	c.loaded = true

	if c.kv.Available() {
		data, ok, err := c.kv.Get(c.key)
		if err != nil {
			log.Printf("❌ Failed to read %s from storage: %v", c.key, err)
		} else if ok {
			var items []T
			if jsonErr := json.Unmarshal(data, &items); jsonErr == nil {
				c.container.Set(items)
				log.Printf("📦 Loaded %d %s from storage", len(items), c.key)
				return nil
			}
			log.Printf("❌ Corrupted %s snapshot, discarding", c.key)
			if delErr := c.kv.Delete(c.key); delErr != nil {
				log.Printf("❌ Failed to remove corrupted %s snapshot: %v", c.key, delErr)
			}
		}
	}
	return c.seedLocked()
}

func (c *Collection[T]) seedLocked() error {
	data, err := c.seed.Fetch()
	if err != nil {
		log.Printf("❌ Failed to fetch %s seed: %v", c.key, err)
		c.container.Set([]T{})
		return fmt.Errorf("fetch %s seed: %w", c.key, err)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("❌ Invalid %s seed document: %v", c.key, err)
		c.container.Set([]T{})
		return fmt.Errorf("parse %s seed: %w", c.key, err)
	}
	c.container.Set(items)
	if err := c.persist(items); err != nil {
		log.Printf("❌ Failed to persist %s seed: %v", c.key, err)
	} else if c.kv.Available() {
		log.Printf("📥 Seeded %d %s and saved baseline", len(items), c.key)
	} else {
		log.Printf("📥 Seeded %d %s (no durable storage)", len(items), c.key)
	}
	return nil
}

func (c *Collection[T]) ensureLoaded() {
	c.mu.Lock()
	loaded := c.loaded
	c.mu.Unlock()
	if !loaded {
		_ = c.Load()
	}
}

// List returns the current published snapshot, loading on first access.
func (c *Collection[T]) List() []T {
	c.ensureLoaded()
	return c.container.Get()
}

// Find returns the record with the given id.
func (c *Collection[T]) Find(id int) (T, bool) {
	for _, item := range c.List() {
		if c.idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Add assigns the next id (max existing + 1, or 1 when empty), publishes
// the grown collection and persists it. A failed persist rolls the
// published state back and surfaces the error; this is the only operation
// with a rollback path.
func (c *Collection[T]) Add(item T) (T, error) {
	c.ensureLoaded()
	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.container.Get()
	created := c.withID(item, c.nextID(current))
	updated := append(current, created)
	c.container.Set(updated)

	if err := c.persist(updated); err != nil {
		previous := make([]T, len(current))
		copy(previous, current)
		c.container.Set(previous)
		var zero T
		return zero, fmt.Errorf("persist %s: %w", c.key, err)
	}
	if c.delay > 0 {
		time.Sleep(c.delay)
	}
	return created, nil
}

// Update replaces the record with a matching id by whole-record
// replacement, keeping its position. A missing id leaves the collection
// unchanged and reports found=false rather than an error.
func (c *Collection[T]) Update(item T) (T, bool) {
	return c.UpdateMatching(func(existing T) bool {
		return c.idOf(existing) == c.idOf(item)
	}, func(T) T { return item })
}

// UpdateMatching applies fn to the first record satisfying match. Persist
// failures after an update are logged, not rolled back.
func (c *Collection[T]) UpdateMatching(match func(T) bool, fn func(T) T) (T, bool) {
	c.ensureLoaded()
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.container.Get()
	for i := range items {
		if match(items[i]) {
			items[i] = fn(items[i])
			c.container.Set(items)
			if err := c.persist(items); err != nil {
				log.Printf("❌ Failed to persist %s update: %v", c.key, err)
			}
			return items[i], true
		}
	}
	var zero T
	return zero, false
}

// Remove deletes the record with the given id, reporting whether anything
// was removed.
func (c *Collection[T]) Remove(id int) bool {
	c.ensureLoaded()
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.container.Get()
	remaining := items[:0:0]
	for _, item := range items {
		if c.idOf(item) != id {
			remaining = append(remaining, item)
		}
	}
	if len(remaining) == len(items) {
		return false
	}
	c.container.Set(remaining)
	if err := c.persist(remaining); err != nil {
		log.Printf("❌ Failed to persist %s removal: %v", c.key, err)
	}
	return true
}

// Watch subscribes to snapshot replacements.
func (c *Collection[T]) Watch() chan []T {
	c.ensureLoaded()
	return c.container.Watch()
}

func (c *Collection[T]) Unwatch(ch chan []T) {
	c.container.Unwatch(ch)
}

func (c *Collection[T]) persist(items []T) error {
	if !c.kv.Available() {
		return nil
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.kv.Set(c.key, data)
}

func (c *Collection[T]) nextID(items []T) int {
	max := 0
	for _, item := range items {
		if id := c.idOf(item); id > max {
			max = id
		}
	}
	return max + 1
}
