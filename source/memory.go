package source

import "strings"

// Memory is a Source over a fixed, in-memory list of keys. It is useful for
// tests and for small keyspaces that are already known in full.
type Memory struct {
	keys []Key
}

// NewMemory creates a Source over the given keys. Order is preserved.
func NewMemory(keys []Key) *Memory {
	cp := make([]Key, len(keys))
	copy(cp, keys)
	return &Memory{keys: cp}
}

// List returns the keys with the given prefix, in insertion order.
func (m *Memory) List(prefix string) ([]Key, error) {
	keys := []Key{}
	for _, k := range m.keys {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}
