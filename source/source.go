// Package source provides key-bearing collaborators: backends that can
// enumerate the absolute keys they hold under a prefix.
package source

// Key is the key for an entry in a backend.
type Key = string

// Source is an interface by which a view lists the keys in some backend
// datastore. Listing is likely a very slow operation, so use with caution.
type Source interface {
	// List lists all keys in the backend with the given prefix.
	List(prefix string) ([]Key, error)
}
