// Package template compiles key templates into matching rules.
//
// A template is literal text with named fields in braces:
//
//	{rootdir}/{relative_path}.ext
//
// By default a field matches one or more characters within a single key
// segment. Field names ending in "path" or "dir" also match the separator,
// so they can span segments. The anonymous field {} matches any run of
// characters, including an empty one.
package template

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultSeparator is the key segment separator used when none is specified.
const DefaultSeparator = "/"

// fieldName is the set of valid field names.
var fieldName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SyntaxError indicates a malformed template.
type SyntaxError struct {
	Template string
	Pos      int
	Reason   string
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("template %q: %s at offset %d", e.Template, e.Reason, e.Pos)
}

// Rule is a compiled template: a whole-string predicate over candidate keys,
// plus extraction of the values its named fields matched.
type Rule struct {
	template string
	re       *regexp.Regexp
}

// Compile compiles a template using the default separator.
func Compile(tmpl string) (*Rule, error) {
	return CompileSep(tmpl, DefaultSeparator)
}

// CompileSep compiles a template whose keys are segmented by sep. The
// template is scanned left to right; literal runs become exact-match
// fragments and fields become capturing wildcard fragments. The resulting
// rule is anchored at both ends.
func CompileSep(tmpl, sep string) (*Rule, error) {
	var b strings.Builder
	b.WriteString(`\A`)

	i := 0
	for i < len(tmpl) {
		switch tmpl[i] {
		case '{':
			j := strings.IndexByte(tmpl[i+1:], '}')
			if j < 0 {
				return nil, SyntaxError{Template: tmpl, Pos: i, Reason: "unclosed '{'"}
			}
			name := tmpl[i+1 : i+1+j]
			if strings.ContainsRune(name, '{') {
				return nil, SyntaxError{Template: tmpl, Pos: i, Reason: "nested '{'"}
			}
			frag, err := fieldFragment(tmpl, i, name, sep)
			if err != nil {
				return nil, err
			}
			b.WriteString(frag)
			i += j + 2
		case '}':
			return nil, SyntaxError{Template: tmpl, Pos: i, Reason: "unmatched '}'"}
		default:
			j := strings.IndexAny(tmpl[i:], "{}")
			if j < 0 {
				j = len(tmpl) - i
			}
			b.WriteString(regexp.QuoteMeta(tmpl[i : i+j]))
			i += j
		}
	}

	b.WriteString(`\z`)
	re, err := regexp.Compile(b.String())
	if err != nil {
		// Reachable via field names the engine rejects, e.g. duplicates.
		return nil, SyntaxError{Template: tmpl, Pos: 0, Reason: err.Error()}
	}
	return &Rule{template: tmpl, re: re}, nil
}

// fieldFragment builds the capturing fragment for one field.
func fieldFragment(tmpl string, pos int, name, sep string) (string, error) {
	if name == "" {
		return `.*`, nil
	}
	if !fieldName.MatchString(name) {
		return "", SyntaxError{Template: tmpl, Pos: pos, Reason: fmt.Sprintf("invalid field name %q", name)}
	}
	domain := `.+`
	if !spansSegments(name) {
		domain = fmt.Sprintf(`[^%s]+`, regexp.QuoteMeta(sep))
	}
	return fmt.Sprintf(`(?P<%s>%s)`, name, domain), nil
}

// spansSegments returns whether a field may match across separator
// boundaries.
func spansSegments(name string) bool {
	n := strings.ToLower(name)
	return strings.HasSuffix(n, "path") || strings.HasSuffix(n, "dir")
}

// Template returns the template text this rule was compiled from.
func (r *Rule) Template() string {
	return r.template
}

// LiteralPrefix returns the literal text before the template's first field.
func (r *Rule) LiteralPrefix() string {
	if i := strings.IndexByte(r.template, '{'); i >= 0 {
		return r.template[:i]
	}
	return r.template
}

// Matches returns whether the candidate key is an instance of the template.
func (r *Rule) Matches(candidate string) bool {
	return r.re.MatchString(candidate)
}

// Extract returns the value each named field matched within the candidate,
// or false if the candidate does not match the template.
func (r *Rule) Extract(candidate string) (map[string]string, bool) {
	m := r.re.FindStringSubmatch(candidate)
	if m == nil {
		return nil, false
	}
	fields := map[string]string{}
	for i, name := range r.re.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		fields[name] = m[i]
	}
	return fields, true
}
