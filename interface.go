package indexedmap

// KeyConstraint is an interface for key constraints.
// It applies to primary keys and to the secondary keys produced by index
// functions alike.
type KeyConstraint interface {
	comparable
}

// ValueConstraint is an interface for value constraints.
type ValueConstraint interface {
	any
}

// Entry is a key-value pair.
type Entry[K KeyConstraint, V ValueConstraint] struct {
	// Key is the key of the entry.
	Key K

	// Value is the value associated with the key.
	Value V
}

// IndexFunc derives the secondary keys an entry is reachable under.
// It must be pure: the same key and value always produce the same secondary
// keys. The returned slice may be empty, and duplicates in it count as a
// single membership.
type IndexFunc[PrimaryKey KeyConstraint, Value ValueConstraint, SecondaryKey KeyConstraint] func(key PrimaryKey, value Value) []SecondaryKey
