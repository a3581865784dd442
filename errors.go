package keyview

import "fmt"

// PrefixMismatchError indicates an absolute key does not start with the
// configured prefix, so it cannot be relativized.
type PrefixMismatchError struct {
	Prefix string
	Key    string
}

func (e PrefixMismatchError) Error() string {
	return fmt.Sprintf("key %q does not start with prefix %q", e.Key, e.Prefix)
}

// InvalidCollectionError indicates a Store was constructed without a usable
// key collection.
type InvalidCollectionError struct {
	Reason string
}

func (e InvalidCollectionError) Error() string {
	return fmt.Sprintf("invalid key collection: %s", e.Reason)
}
