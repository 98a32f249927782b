package iterutil

import (
	"iter"
)

// Distinct returns an iterator that yields the distinct values of the input slice.
// The order of the output follows the first occurrence of each value.
func Distinct[V comparable](values []V) iter.Seq[V] {
	return iter.Seq[V](func(yield func(V) bool) {
		seen := make(map[V]struct{}, len(values))
		for _, v := range values {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				if !yield(v) {
					return
				}
			}
		}
	})
}
