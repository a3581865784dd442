// Package keyview presents the keys of a backing store through short
// relative keys and template-filtered views.
//
// Example usage:
//
//		// Wrap a set of absolute keys. The shared prefix is inferred.
//		store, err := keyview.New(keyview.Args{
//			Keys: []string{"/root/of/foo", "/root/of/bar", "/root/for/alice"},
//		})
//		if err != nil {
//			return err
//		}
//
//		store.Prefix()            // "/root/"
//		store.Keys()              // ["of/foo", "of/bar", "for/alice"]
//		store.Contains("of/foo")  // true
//
//		// Restrict a backend's keyspace to the keys matching a template
//		filtered, err := keyview.NewFiltered(src, "data/{group}/{relative_path}.json")
//		if err != nil {
//			return err
//		}
//
// Relative keys exist only at this layer: every key handed to the backing
// store is first translated back to its absolute form.
package keyview

// DefaultSeparator is the key segment separator used when none is specified.
const DefaultSeparator = "/"

// Key is the key for an entry in a store.
type Key = string

// Collection is the minimal contract for a key-bearing collaborator:
// sized, iterable, and containment-testable. It is never assumed to also
// support retrieval of values.
type Collection interface {
	// Keys returns every key in the collection, in its original order.
	Keys() []Key
	// Contains returns true if the collection holds the given key.
	Contains(key Key) bool
	// Len returns the number of keys in the collection.
	Len() int
}
