package keyview

import (
	"fmt"

	"github.com/mplewis/keyview/source"
)

// NewFromSource lists every key in the backend under the given prefix and
// builds a relativized Store over the result.
func NewFromSource(src source.Source, prefix string) (*Store, error) {
	if src == nil {
		return nil, InvalidCollectionError{Reason: "nil source"}
	}
	keys, err := src.List(prefix)
	if err != nil {
		return nil, fmt.Errorf("listing keys: %w", err)
	}
	return New(Args{Keys: keys, Prefix: &prefix})
}

// NewFiltered restricts a backend's keyspace to the keys matching a
// template and wraps them in a Store rooted at the template's derived
// prefix.
func NewFiltered(src source.Source, tmpl string) (*Store, error) {
	return NewFilteredSep(src, tmpl, DefaultSeparator)
}

// NewFilteredSep is NewFiltered for keys segmented by sep.
func NewFilteredSep(src source.Source, tmpl, sep string) (*Store, error) {
	if src == nil {
		return nil, InvalidCollectionError{Reason: "nil source"}
	}
	f, err := NewFilterSep(tmpl, sep)
	if err != nil {
		return nil, err
	}
	all, err := src.List(f.Prefix())
	if err != nil {
		return nil, fmt.Errorf("listing keys: %w", err)
	}
	keys := []Key{}
	for _, k := range all {
		if f.IsValidKey(k) {
			keys = append(keys, k)
		}
	}
	prefix := f.Prefix()
	return New(Args{Keys: keys, Prefix: &prefix})
}
