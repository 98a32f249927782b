package indexedmap

import (
	"iter"
	"maps"
	"slices"

	"github.com/goccy/go-reflect"
)

// Map is an in-memory key-value container with optional secondary indices.
// Indices are registered with AddIndex and maintained incrementally on every
// insert, so queries through them never rescan the stored entries.
//
// A Map performs no locking. Insert, InsertMulti and AddIndex require
// exclusive access. Any number of read operations may run concurrently as
// long as no write is in flight.
type Map[K KeyConstraint, V ValueConstraint] struct {
	entries map[K]V

	// indices is keyed by index name, then by the runtime type of the
	// secondary key. Two indices may share a name when their secondary-key
	// types differ.
	indices map[string]map[reflect.Type]indexUpdater[K, V]
}

// New creates an empty Map.
func New[K KeyConstraint, V ValueConstraint]() *Map[K, V] {
	return &Map[K, V]{
		entries: map[K]V{},
		indices: map[string]map[reflect.Type]indexUpdater[K, V]{},
	}
}

// Insert stores a value under the given key, replacing any existing value.
// It returns the previous value and whether the key was already present.
//
// Every registered index incorporates the entry before it becomes visible
// through Get. When an existing key is overwritten, forward memberships
// recorded for the previous value are kept: the key stays reachable under
// secondary keys its current value no longer produces. Callers that need
// exact index contents must insert each key at most once, or re-register
// the index with AddIndex to rebuild it.
func (m *Map[K, V]) Insert(key K, value V) (V, bool) {
	for _, byType := range m.indices {
		for _, updater := range byType {
			updater.insert(key, value)
		}
	}

	previous, replaced := m.entries[key]
	m.entries[key] = value
	return previous, replaced
}

// InsertMulti stores the given entries in order.
// It is equivalent to calling Insert for each entry; when two entries share
// a key, the later one wins.
func (m *Map[K, V]) InsertMulti(entries []Entry[K, V]) {
	for _, entry := range entries {
		m.Insert(entry.Key, entry.Value)
	}
}

// Get retrieves the value stored under the given key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	value, ok := m.entries[key]
	return value, ok
}

// Contains reports whether a value is stored under the given key.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.entries[key]
	return ok
}

// Len returns the number of stored entries.
func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// All returns an iterator over all stored entries.
// The iteration order is unspecified.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return maps.All(m.entries)
}

// Keys returns an iterator over all stored keys.
// The iteration order is unspecified.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return maps.Keys(m.entries)
}

// Values returns an iterator over all stored values.
// The iteration order is unspecified.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return maps.Values(m.entries)
}

// IndexNames returns the names of all registered indices in lexicographic
// order. A name registered for several secondary-key types appears once.
func (m *Map[K, V]) IndexNames() []string {
	return slices.Sorted(maps.Keys(m.indices))
}
