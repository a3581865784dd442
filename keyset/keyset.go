// Package keyset presents a finite, externally supplied collection of keys
// as a membership, iteration, and size primitive, with no notion of an
// underlying storage medium.
package keyset

import "github.com/thoas/go-funk"

// Key is the key for an entry in a store.
type Key = string

// Set is a finite collection of keys. Iteration order is the order of the
// slice it was built from, and duplicates are preserved as given.
type Set struct {
	keys []Key
}

// New builds a Set from the given keys. The slice is copied, so later
// mutation of the caller's slice does not affect the Set.
func New(keys []Key) Set {
	cp := make([]Key, len(keys))
	copy(cp, keys)
	return Set{keys: cp}
}

// Keys returns the keys in their original order.
func (s Set) Keys() []Key {
	cp := make([]Key, len(s.keys))
	copy(cp, s.keys)
	return cp
}

// Contains returns true if the set holds the given key.
func (s Set) Contains(key Key) bool {
	return funk.ContainsString(s.keys, key)
}

// Len returns the number of keys, counting duplicates.
func (s Set) Len() int {
	return len(s.keys)
}
