package store

import (
	"encoding/json"
	"log"
	"sync"
)

// Single is one persisted record under its own key, used for the current
// session user. Memory is checked first; storage restores the record after
// a restart. Corrupt stored data is discarded on read.
type Single[T any] struct {
	key string
	kv  KeyValue

	mu       sync.Mutex
	val      *T
	restored bool
}

func NewSingle[T any](key string, kv KeyValue) *Single[T] {
	return &Single[T]{key: key, kv: kv}
}

func (s *Single[T]) Get() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.val != nil {
		return *s.val, true
	}
	var zero T
	if s.restored || !s.kv.Available() {
		return zero, false
	}
	s.restored = true

	data, ok, err := s.kv.Get(s.key)
	if err != nil || !ok {
		return zero, false
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		log.Printf("❌ Corrupted %s record, discarding: %v", s.key, err)
		if delErr := s.kv.Delete(s.key); delErr != nil {
			log.Printf("❌ Failed to remove corrupted %s record: %v", s.key, delErr)
		}
		return zero, false
	}
	s.val = &v
	return v, true
}

// Set stores the record in memory first, then best-effort in storage.
func (s *Single[T]) Set(v T) error {
	s.mu.Lock()
	s.val = &v
	s.restored = true
	s.mu.Unlock()

	if !s.kv.Available() {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.kv.Set(s.key, data)
}

func (s *Single[T]) Clear() {
	s.mu.Lock()
	s.val = nil
	s.restored = true
	s.mu.Unlock()

	if err := s.kv.Delete(s.key); err != nil {
		log.Printf("❌ Failed to remove %s record: %v", s.key, err)
	}
}
