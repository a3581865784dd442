package keyview

import (
	"log"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/mplewis/keyview/keyset"
)

// Store presents the keys of an underlying collection through relative
// keys: every key crossing its boundary has the prefix stripped on the way
// out and prepended on the way in. A Store holds no state of its own beyond
// the prefix; each read delegates to the underlying collection.
//
// Store itself satisfies Collection, so relativized views compose.
type Store struct {
	underlying Collection
	rel        Relativizer
}

// Args are the arguments for a new Store.
type Args struct {
	Keys       []Key      // The absolute keys to wrap. Required unless Collection is set.
	Collection Collection // Optional. An existing key collection to wrap instead of Keys.
	Prefix     *string    // Optional. The prefix to strip from every key. If not provided, the longest common prefix of the keys is used.
}

// New builds a new Store. When an explicit prefix is given, every key is
// checked against it up front; the returned error reports all keys that do
// not start with it.
func New(args Args) (*Store, error) {
	var coll Collection
	switch {
	case args.Collection != nil:
		coll = args.Collection
	case args.Keys != nil:
		coll = keyset.New(args.Keys)
	default:
		return nil, InvalidCollectionError{Reason: "no keys or collection supplied"}
	}

	var prefix string
	if args.Prefix != nil {
		prefix = *args.Prefix
		if err := checkPrefix(prefix, coll.Keys()); err != nil {
			return nil, err
		}
	} else {
		prefix = CommonPrefix(coll.Keys())
	}
	return &Store{underlying: coll, rel: NewRelativizer(prefix)}, nil
}

// checkPrefix verifies the prefix against every key, reporting all
// mismatches at once.
func checkPrefix(prefix string, keys []Key) error {
	var errs error
	for _, k := range keys {
		if !strings.HasPrefix(k, prefix) {
			errs = multierror.Append(errs, PrefixMismatchError{Prefix: prefix, Key: k})
		}
	}
	return errs
}

// Prefix returns the prefix stripped from every key this Store exposes.
func (s *Store) Prefix() string {
	return s.rel.Prefix()
}

// Keys returns every underlying key with the prefix stripped, in the
// underlying collection's order.
func (s *Store) Keys() []Key {
	keys := s.underlying.Keys()
	rels := make([]Key, 0, len(keys))
	for _, k := range keys {
		rel, err := s.rel.Relativize(k)
		if err != nil {
			// Unreachable unless the underlying collection changed after
			// construction, which violates its contract.
			log.Printf("WARN: %v", err)
			continue
		}
		rels = append(rels, rel)
	}
	return rels
}

// Contains returns true if the underlying collection holds the absolute
// form of the given relative key.
func (s *Store) Contains(key Key) bool {
	return s.underlying.Contains(s.rel.Derelativize(key))
}

// Len returns the number of keys in the underlying collection.
// Relativization never changes cardinality.
func (s *Store) Len() int {
	return s.underlying.Len()
}
