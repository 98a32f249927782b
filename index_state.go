package indexedmap

import (
	"github.com/derekjw/indexed-map/internal/iterutil"
)

// indexUpdater is the type-erased face of an index state.
// The registry stores every state behind this interface so that states with
// different secondary-key types can live under the same index name.
type indexUpdater[PrimaryKey KeyConstraint, Value ValueConstraint] interface {
	insert(key PrimaryKey, value Value)
}

// indexState holds the data of a single index: the index function, the
// forward map from secondary key to the primary keys assigned to it, and the
// reverse map from primary key to its most recent secondary-key assignment.
type indexState[PrimaryKey KeyConstraint, Value ValueConstraint, SecondaryKey KeyConstraint] struct {
	fn      IndexFunc[PrimaryKey, Value, SecondaryKey]
	forward map[SecondaryKey]KeySet[PrimaryKey]
	reverse map[PrimaryKey]KeySet[SecondaryKey]
}

var _ indexUpdater[uint8, struct{}] = (*indexState[uint8, struct{}, uint8])(nil)

func newIndexState[PrimaryKey KeyConstraint, Value ValueConstraint, SecondaryKey KeyConstraint](fn IndexFunc[PrimaryKey, Value, SecondaryKey]) *indexState[PrimaryKey, Value, SecondaryKey] {
	return &indexState[PrimaryKey, Value, SecondaryKey]{
		fn:      fn,
		forward: map[SecondaryKey]KeySet[PrimaryKey]{},
		reverse: map[PrimaryKey]KeySet[SecondaryKey]{},
	}
}

// insert incorporates a single entry into the index.
// The reverse assignment for key is replaced wholesale. Forward memberships
// recorded for a previous value of key are left in place, so an overwritten
// key can stay reachable under secondary keys its current value no longer
// produces.
func (s *indexState[PrimaryKey, Value, SecondaryKey]) insert(key PrimaryKey, value Value) {
	produced := s.fn(key, value)
	assigned := make(KeySet[SecondaryKey], len(produced))
	for secondaryKey := range iterutil.Distinct(produced) {
		bucket := s.forward[secondaryKey]
		if bucket == nil {
			bucket = make(KeySet[PrimaryKey], 1)
			s.forward[secondaryKey] = bucket
		}
		bucket.Add(key)
		assigned.Add(secondaryKey)
	}
	s.reverse[key] = assigned
}
