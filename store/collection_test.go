package store

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rec struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// memKV is an in-memory KeyValue with write-failure injection.
type memKV struct {
	data      map[string][]byte
	available bool
	failSet   bool
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]byte), available: true}
}

func (m *memKV) Available() bool { return m.available }

func (m *memKV) Get(key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(key string, value []byte) error {
	if m.failSet {
		return errors.New("quota exceeded")
	}
	m.data[key] = value
	return nil
}

func (m *memKV) Delete(key string) error {
	delete(m.data, key)
	return nil
}

type errSeed struct{}

func (errSeed) Fetch() ([]byte, error) { return nil, errors.New("seed unavailable") }

func newRecCollection(kv KeyValue, seed SeedSource) *Collection[rec] {
	return NewCollection(CollectionConfig[rec]{
		Key:    "recs",
		KV:     kv,
		Seed:   seed,
		IDOf:   func(r rec) int { return r.ID },
		WithID: func(r rec, id int) rec { r.ID = id; return r },
	})
}

const seedTwo = `[{"id":3,"name":"alpha"},{"id":7,"name":"beta"}]`

func TestAddAssignsNextID(t *testing.T) {
	c := newRecCollection(newMemKV(), BytesSeed(`[]`))

	created, err := c.Add(rec{Name: "first"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID, "empty collection starts at id 1")
	assert.Equal(t, "first", created.Name)

	c2 := newRecCollection(newMemKV(), BytesSeed(seedTwo))
	created, err = c2.Add(rec{Name: "gamma"})
	require.NoError(t, err)
	assert.Equal(t, 8, created.ID, "next id is max existing + 1")

	list := c2.List()
	require.Len(t, list, 3)
	assert.Equal(t, rec{ID: 8, Name: "gamma"}, list[2])
}

func TestAddRollsBackWhenPersistFails(t *testing.T) {
	kv := newMemKV()
	c := newRecCollection(kv, BytesSeed(seedTwo))
	require.NoError(t, c.Load())

	kv.failSet = true
	_, err := c.Add(rec{Name: "doomed"})
	require.Error(t, err)

	list := c.List()
	assert.Len(t, list, 2, "optimistic publish must be rolled back")
	assert.Equal(t, "alpha", list[0].Name)
	assert.Equal(t, "beta", list[1].Name)
}

func TestUpdateReplacesInPlace(t *testing.T) {
	c := newRecCollection(newMemKV(), BytesSeed(seedTwo))

	updated, found := c.Update(rec{ID: 3, Name: "alpha prime"})
	require.True(t, found)
	assert.Equal(t, "alpha prime", updated.Name)

	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, rec{ID: 3, Name: "alpha prime"}, list[0], "position preserved")
	assert.Equal(t, rec{ID: 7, Name: "beta"}, list[1], "other records untouched")
}

func TestUpdateMissingReturnsSentinel(t *testing.T) {
	c := newRecCollection(newMemKV(), BytesSeed(seedTwo))
	before := c.List()

	_, found := c.Update(rec{ID: 42, Name: "ghost"})
	assert.False(t, found, "missing id is a sentinel, not an error")
	assert.Equal(t, before, c.List(), "collection unchanged")
}

func TestRemove(t *testing.T) {
	c := newRecCollection(newMemKV(), BytesSeed(seedTwo))

	assert.True(t, c.Remove(3))
	assert.Len(t, c.List(), 1)

	assert.False(t, c.Remove(99))
	assert.Len(t, c.List(), 1)
}

func TestPersistedSnapshotIsAuthoritative(t *testing.T) {
	kv := newMemKV()
	kv.data["recs"] = []byte(`[{"id":9,"name":"kept"}]`)

	c := newRecCollection(kv, BytesSeed(seedTwo))
	require.NoError(t, c.Load())

	list := c.List()
	require.Len(t, list, 1, "persisted state wins, never merged with seed")
	assert.Equal(t, rec{ID: 9, Name: "kept"}, list[0])
}

func TestCorruptSnapshotReseeds(t *testing.T) {
	kv := newMemKV()
	kv.data["recs"] = []byte(`{definitely not an array`)

	c := newRecCollection(kv, BytesSeed(seedTwo))
	require.NoError(t, c.Load())

	list := c.List()
	require.Len(t, list, 2, "corrupt snapshot falls back to the seed")

	stored, ok := kv.data["recs"]
	require.True(t, ok, "seed becomes the new persisted baseline")
	var restored []rec
	require.NoError(t, json.Unmarshal(stored, &restored))
	assert.Equal(t, list, restored)
}

func TestSeedFetchFailurePublishesEmpty(t *testing.T) {
	kv := newMemKV()
	c := newRecCollection(kv, errSeed{})

	err := c.Load()
	require.Error(t, err)
	assert.Empty(t, c.List())
	assert.NotContains(t, kv.data, "recs", "nothing persisted on seed failure")

	// No retry: a later read still sees the empty collection.
	assert.Empty(t, c.List())
}

func TestRoundTripAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewDirStore(dir)
	require.NoError(t, err)

	first := newRecCollection(kv, BytesSeed(seedTwo))
	created, err := first.Add(rec{Name: "gamma"})
	require.NoError(t, err)
	assert.Equal(t, 8, created.ID)

	kv2, err := NewDirStore(dir)
	require.NoError(t, err)
	second := newRecCollection(kv2, BytesSeed(`[]`))

	assert.Equal(t, first.List(), second.List(), "fresh instance restores deep-equal state")
}

func TestNopStoreAlwaysSeeds(t *testing.T) {
	first := newRecCollection(NopStore{}, BytesSeed(seedTwo))
	_, err := first.Add(rec{Name: "volatile"})
	require.NoError(t, err, "writes without storage never fail")
	assert.Len(t, first.List(), 3)

	second := newRecCollection(NopStore{}, BytesSeed(seedTwo))
	assert.Len(t, second.List(), 2, "nothing survives without durable storage")
}

func TestWatchSeesReplacements(t *testing.T) {
	c := newRecCollection(newMemKV(), BytesSeed(seedTwo))
	require.NoError(t, c.Load())

	ch := c.Watch()
	defer c.Unwatch(ch)

	_, err := c.Add(rec{Name: "gamma"})
	require.NoError(t, err)

	snapshot := <-ch
	require.Len(t, snapshot, 3, "watcher receives the full replaced collection")
	assert.Equal(t, "gamma", snapshot[2].Name)
}

func TestFind(t *testing.T) {
	c := newRecCollection(newMemKV(), BytesSeed(seedTwo))

	r, ok := c.Find(7)
	require.True(t, ok)
	assert.Equal(t, "beta", r.Name)

	_, ok = c.Find(100)
	assert.False(t, ok)
}
