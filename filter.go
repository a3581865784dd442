package keyview

import (
	"strings"

	"github.com/mplewis/keyview/template"
)

// Filter decides which absolute keys belong to a keyspace described by a
// path-like template, and derives the keyspace's root prefix. Every key
// accepted by IsValidKey starts with the derived prefix, so a Filter can
// always be composed safely with a Relativizer anchored on Prefix().
type Filter struct {
	prefix string
	rule   *template.Rule
}

// NewFilter builds a Filter from a template using the default separator.
func NewFilter(tmpl string) (*Filter, error) {
	return NewFilterSep(tmpl, DefaultSeparator)
}

// NewFilterSep builds a Filter from a template whose keys are segmented by
// sep. A template with no fields is treated as a literal root directory:
// the prefix is the root normalized to one trailing separator, and the rule
// accepts any key under it. Otherwise the prefix is the directory portion
// of the template's field-free head, and the rule is the compiled template.
func NewFilterSep(tmpl, sep string) (*Filter, error) {
	var prefix, pattern string
	if i := strings.IndexByte(tmpl, '{'); i < 0 {
		prefix = ensureSepSuffix(tmpl, sep)
		pattern = prefix + "{}"
	} else {
		prefix = dirHead(tmpl[:i], sep)
		if prefix != "" {
			prefix = ensureSepSuffix(prefix, sep)
		}
		pattern = tmpl
	}
	rule, err := template.CompileSep(pattern, sep)
	if err != nil {
		return nil, err
	}
	return &Filter{prefix: prefix, rule: rule}, nil
}

// Prefix returns the derived root prefix.
func (f *Filter) Prefix() string {
	return f.prefix
}

// IsValidKey returns whether the key is in scope for the template.
func (f *Filter) IsValidKey(key Key) bool {
	return f.rule.Matches(key)
}

// Fields returns the value each named template field matched within the
// key, or false if the key is not in scope.
func (f *Filter) Fields(key Key) (map[string]string, bool) {
	return f.rule.Extract(key)
}

// dirHead truncates s to its last separator, exclusive. It returns "" when
// s holds no separator.
func dirHead(s, sep string) string {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return ""
	}
	return s[:i]
}

// ensureSepSuffix normalizes s to end with exactly one trailing separator.
func ensureSepSuffix(s, sep string) string {
	for strings.HasSuffix(s, sep) {
		s = s[:len(s)-len(sep)]
	}
	return s + sep
}
