package store

import "os"

// SeedSource provides the initial snapshot for a collection when storage
// has none. It is consulted at most once per collection lifetime.
type SeedSource interface {
	Fetch() ([]byte, error)
}

// BytesSeed serves an embedded seed document.
type BytesSeed []byte

func (b BytesSeed) Fetch() ([]byte, error) { return []byte(b), nil }

// FileSeed reads the seed document from disk on fetch.
type FileSeed string

func (f FileSeed) Fetch() ([]byte, error) { return os.ReadFile(string(f)) }
