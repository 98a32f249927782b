package indexedmap

import (
	"github.com/derekjw/indexed-map/internal/iterutil"
	"github.com/goccy/go-reflect"
)

// IndexID is the handle returned by AddIndex and accepted by every index
// query. Its type parameter pins the secondary-key type, so an
// IndexID[SecondaryKey] can only ever resolve an index that was registered
// for SecondaryKey, even when several types share one index name.
//
// IDs are plain values: they may be copied and used against any Map with a
// matching registration.
type IndexID[SecondaryKey KeyConstraint] struct {
	name string
}

// Name returns the index name the ID is bound to.
func (id IndexID[SecondaryKey]) Name() string {
	return id.name
}

// typeOf returns the runtime identity of the secondary-key type.
// The pointer indirection keeps it working when SecondaryKey is an
// interface type.
func typeOf[SecondaryKey KeyConstraint]() reflect.Type {
	return reflect.TypeOf((*SecondaryKey)(nil)).Elem()
}

// AddIndex registers an index on the map under the given name and returns
// the ID to query it with. Entries already stored are indexed immediately;
// entries inserted afterwards are indexed incrementally.
//
// A name may be registered once per secondary-key type. Registering a
// (name, secondary-key type) pair that already exists discards the previous
// index state and rebuilds it from the currently stored entries.
//
// AddIndex is a function rather than a method: a method cannot introduce
// the secondary-key type parameter.
func AddIndex[K KeyConstraint, V ValueConstraint, SecondaryKey KeyConstraint](m *Map[K, V], name string, fn IndexFunc[K, V, SecondaryKey]) IndexID[SecondaryKey] {
	state := newIndexState(fn)
	for key, value := range m.entries {
		state.insert(key, value)
	}

	byType := m.indices[name]
	if byType == nil {
		byType = make(map[reflect.Type]indexUpdater[K, V], 1)
		m.indices[name] = byType
	}
	byType[typeOf[SecondaryKey]()] = state

	return IndexID[SecondaryKey]{name: name}
}

// stateOf resolves an ID to its index state. It reports false when no index
// is registered under the name for the ID's secondary-key type.
func stateOf[K KeyConstraint, V ValueConstraint, SecondaryKey KeyConstraint](m *Map[K, V], id IndexID[SecondaryKey]) (*indexState[K, V, SecondaryKey], bool) {
	byType, ok := m.indices[id.name]
	if !ok {
		return nil, false
	}
	updater, ok := byType[typeOf[SecondaryKey]()]
	if !ok {
		return nil, false
	}
	state, ok := updater.(*indexState[K, V, SecondaryKey])
	return state, ok
}

// GetIndex returns the forward map of the index the ID resolves to, from
// secondary key to the set of primary keys assigned to it. It reports false
// when the ID does not resolve to an index on this map.
//
// The returned map shares the index's internal state and must be treated as
// read-only. It reflects later inserts.
func GetIndex[K KeyConstraint, V ValueConstraint, SecondaryKey KeyConstraint](m *Map[K, V], id IndexID[SecondaryKey]) (map[SecondaryKey]KeySet[K], bool) {
	state, ok := stateOf(m, id)
	if !ok {
		return nil, false
	}
	return state.forward, true
}

// KeysByIndex returns the set of primary keys assigned to the given
// secondary key. It reports false when the ID does not resolve to an index
// on this map, or when the index holds no entry for the secondary key.
//
// The returned set shares the index's internal state and must be treated as
// read-only.
func KeysByIndex[K KeyConstraint, V ValueConstraint, SecondaryKey KeyConstraint](m *Map[K, V], id IndexID[SecondaryKey], secondaryKey SecondaryKey) (KeySet[K], bool) {
	state, ok := stateOf(m, id)
	if !ok {
		return nil, false
	}
	bucket, ok := state.forward[secondaryKey]
	return bucket, ok
}

// FilterByIndex returns the entries whose primary keys are assigned to the
// given secondary key, paired with their currently stored values. It reports
// false when the ID does not resolve to an index on this map, or when the
// index holds no entry for the secondary key.
//
// The returned map is freshly built and owned by the caller. Primary keys
// without a stored entry are skipped.
func FilterByIndex[K KeyConstraint, V ValueConstraint, SecondaryKey KeyConstraint](m *Map[K, V], id IndexID[SecondaryKey], secondaryKey SecondaryKey) (map[K]V, bool) {
	state, ok := stateOf(m, id)
	if !ok {
		return nil, false
	}
	bucket, ok := state.forward[secondaryKey]
	if !ok {
		return nil, false
	}
	return m.collectEntries(bucket), true
}

// KeysByIndexMulti returns the primary-key sets for multiple secondary keys
// at once. Secondary keys without an index entry are omitted from the
// result; duplicates in the input are queried once. It reports false when
// the ID does not resolve to an index on this map.
//
// The returned sets share the index's internal state and must be treated as
// read-only.
func KeysByIndexMulti[K KeyConstraint, V ValueConstraint, SecondaryKey KeyConstraint](m *Map[K, V], id IndexID[SecondaryKey], secondaryKeys []SecondaryKey) (map[SecondaryKey]KeySet[K], bool) {
	state, ok := stateOf(m, id)
	if !ok {
		return nil, false
	}

	found := make(map[SecondaryKey]KeySet[K], len(secondaryKeys))
	for secondaryKey := range iterutil.Distinct(secondaryKeys) {
		if bucket, ok := state.forward[secondaryKey]; ok {
			found[secondaryKey] = bucket
		}
	}
	return found, true
}

// FilterByIndexMulti returns the matching entries for multiple secondary
// keys at once, grouped by secondary key. Secondary keys without an index
// entry are omitted from the result; duplicates in the input are queried
// once. It reports false when the ID does not resolve to an index on this
// map.
//
// The returned maps are freshly built and owned by the caller.
func FilterByIndexMulti[K KeyConstraint, V ValueConstraint, SecondaryKey KeyConstraint](m *Map[K, V], id IndexID[SecondaryKey], secondaryKeys []SecondaryKey) (map[SecondaryKey]map[K]V, bool) {
	state, ok := stateOf(m, id)
	if !ok {
		return nil, false
	}

	matched := make(map[SecondaryKey]map[K]V, len(secondaryKeys))
	for secondaryKey := range iterutil.Distinct(secondaryKeys) {
		if bucket, ok := state.forward[secondaryKey]; ok {
			matched[secondaryKey] = m.collectEntries(bucket)
		}
	}
	return matched, true
}

// collectEntries copies the stored entries for the given primary keys.
// Keys without a stored entry are skipped.
func (m *Map[K, V]) collectEntries(keys KeySet[K]) map[K]V {
	entries := make(map[K]V, keys.Len())
	for key := range keys.Iter() {
		if value, ok := m.entries[key]; ok {
			entries[key] = value
		}
	}
	return entries
}
