// Package placeholder finds {{name}} tokens in template text, resolves a
// value for each, and substitutes the values back into the text.
package placeholder

import (
	"context"
	"regexp"
	"strings"
)

// Placeholder names are ASCII letters only.
var (
	tokenPattern = regexp.MustCompile(`\{\{([a-zA-Z]+)\}\}`)
	namePattern  = regexp.MustCompile(`^[a-zA-Z]+$`)
)

// Map is an insertion-ordered mapping of placeholder name to value.
// The zero value is an empty map ready to use.
type Map struct {
	keys   []string
	values map[string]string
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{values: make(map[string]string)}
}

// Set assigns value to key. A new key is appended to the order; an existing
// key keeps its position.
func (m *Map) Set(key, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether it is present.
func (m *Map) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of keys.
func (m *Map) Len() int {
	return len(m.keys)
}

// Find returns the distinct placeholder names in text, in order of first
// appearance, each mapped to an empty value.
func Find(text string) *Map {
	m := NewMap()
	for _, match := range tokenPattern.FindAllStringSubmatch(text, -1) {
		if _, seen := m.values[match[1]]; !seen {
			m.Set(match[1], "")
		}
	}
	return m
}

// Token renders the literal token for name.
func Token(name string) string {
	return "{{" + name + "}}"
}

// Substitute replaces every {{key}} in text with its value, one key at a time
// in map order. Each pass runs over the output of the previous one, so a value
// that itself contains a later key's token is rewritten by that later pass.
func Substitute(text string, m *Map) string {
	if m == nil {
		return text
	}
	for _, k := range m.keys {
		text = strings.ReplaceAll(text, Token(k), m.values[k])
	}
	return text
}

// Apply runs the full find, resolve, substitute pipeline over text.
// On any resolution error nothing is substituted and the error is returned.
func Apply(ctx context.Context, text string, r Resolver) (string, error) {
	found := Find(text)
	if found.Len() == 0 {
		return text, nil
	}
	resolved, err := r.Resolve(ctx, found)
	if err != nil {
		return "", err
	}
	return Substitute(text, resolved), nil
}
