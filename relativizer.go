package keyview

import "strings"

// Relativizer translates keys between the absolute form used by a backing
// store and the relative form exposed to callers. Instead of referencing an
// entry through an absolute key such as
//
//	/A/VERY/LONG/ROOT/FOLDER/the/file/we.want
//
// callers can reference it as
//
//	the/file/we.want
//
// A Relativizer is a stateless value: it holds only the prefix it was built
// with.
type Relativizer struct {
	prefix string
}

// NewRelativizer builds a Relativizer anchored on the given prefix.
func NewRelativizer(prefix string) Relativizer {
	return Relativizer{prefix: prefix}
}

// Prefix returns the prefix this Relativizer strips and prepends.
func (r Relativizer) Prefix() string {
	return r.prefix
}

// Relativize strips the prefix from an absolute key. It fails with a
// PrefixMismatchError if the key does not start with the prefix.
func (r Relativizer) Relativize(abs Key) (Key, error) {
	if !strings.HasPrefix(abs, r.prefix) {
		return "", PrefixMismatchError{Prefix: r.prefix, Key: abs}
	}
	return abs[len(r.prefix):], nil
}

// Derelativize prepends the prefix to a relative key. It always succeeds,
// and Relativize(Derelativize(k)) == k for every k.
func (r Relativizer) Derelativize(rel Key) Key {
	return r.prefix + rel
}

// CommonPrefix returns the longest leading substring shared by every given
// key. It returns "" for an empty slice.
func CommonPrefix(keys []Key) string {
	if len(keys) == 0 {
		return ""
	}
	prefix := keys[0]
	for _, k := range keys[1:] {
		for !strings.HasPrefix(k, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}
