package store

import (
	"errors"
	"os"
	"path/filepath"
)

// KeyValue is the persistence strategy behind collections. Implementations
// are chosen once at startup; callers check Available before any storage
// I/O instead of treating failures as control flow.
type KeyValue interface {
	// Available reports whether durable storage exists at all.
	Available() bool
	// Get returns the stored value and whether the key was present.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	// Delete is a no-op for missing keys.
	Delete(key string) error
}

// DirStore keeps one JSON document per key in a directory.
type DirStore struct {
	dir string
}

func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DirStore{dir: dir}, nil
}

func (s *DirStore) Available() bool { return true }

func (s *DirStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *DirStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (s *DirStore) Set(key string, value []byte) error {
	return os.WriteFile(s.path(key), value, 0o644)
}

func (s *DirStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// NopStore is the strategy for environments without durable storage.
// Reads always miss and writes succeed without storing anything, so
// collections seed on every start and never report persistence errors.
type NopStore struct{}

func (NopStore) Available() bool                    { return false }
func (NopStore) Get(string) ([]byte, bool, error)   { return nil, false, nil }
func (NopStore) Set(string, []byte) error           { return nil }
func (NopStore) Delete(string) error                { return nil }
