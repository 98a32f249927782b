package indexedmap

import (
	"iter"
	"maps"
)

// KeySet is an unordered set of keys.
//
// Sets returned by GetIndex and KeysByIndex share the container's internal
// state and must be treated as read-only.
type KeySet[K KeyConstraint] map[K]struct{}

// Add adds a key to the set.
func (s KeySet[K]) Add(key K) {
	s[key] = struct{}{}
}

// Contains reports whether the key is in the set.
func (s KeySet[K]) Contains(key K) bool {
	_, ok := s[key]
	return ok
}

// Len returns the number of keys in the set.
func (s KeySet[K]) Len() int {
	return len(s)
}

// Iter returns an iterator over the keys in the set.
// The iteration order is unspecified.
func (s KeySet[K]) Iter() iter.Seq[K] {
	return maps.Keys(s)
}
