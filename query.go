package weburl

import (
	"bytes"
	"sort"
	"strings"
)

// Values maps a string key to a list of values, the form-encoded
// key-value view spec.md §1 names as an out-of-scope consumer of setQuery
// and raw KVP iteration. Grounded on the net/url Values shape carried by
// wenfang-golang1.6-src/src/net/url/url.go, generalized to splice back
// through the core's SetQueryKnownFormEncoded rather than owning a raw
// query string of its own.
type Values map[string][]string

// Get returns the first value associated with key, or "" if absent.
func (v Values) Get(key string) string {
	vs, ok := v[key]
	if !ok || len(vs) == 0 {
		return ""
	}
	return vs[0]
}

// Set replaces any existing values for key with a single value.
func (v Values) Set(key, value string) {
	v[key] = []string{value}
}

// Add appends value to key's existing values.
func (v Values) Add(key, value string) {
	v[key] = append(v[key], value)
}

// Del removes all values associated with key.
func (v Values) Del(key string) {
	delete(v, key)
}

// Has reports whether key is present, even with an empty value list.
func (v Values) Has(key string) bool {
	_, ok := v[key]
	return ok
}

// ParseQuery parses a form-encoded query string into Values. It always
// returns a non-nil map containing every parameter it could decode; err
// reports the first decoding error encountered, if any, and parsing
// continues past it (matching the lenient net/url ParseQuery behavior).
func ParseQuery(query string) (Values, error) {
	m := make(Values)
	err := parseQueryInto(m, query)
	return m, err
}

func parseQueryInto(m Values, query string) error {
	var firstErr error
	for query != "" {
		key := query
		if i := strings.IndexAny(key, "&;"); i >= 0 {
			key, query = key[:i], key[i+1:]
		} else {
			query = ""
		}
		if key == "" {
			continue
		}
		value := ""
		if i := strings.IndexByte(key, '='); i >= 0 {
			key, value = key[:i], key[i+1:]
		}
		decodedKey, err := QueryUnescape(key)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		decodedValue, err := QueryUnescape(value)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		m[decodedKey] = append(m[decodedKey], decodedValue)
	}
	return firstErr
}

// Encode renders v as "k=v&k2=v2", sorted by key, each component
// form-encoded (space as '+').
func (v Values) Encode() string {
	if len(v) == 0 {
		return ""
	}
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	for _, k := range keys {
		prefix := QueryEscape(k) + "="
		for _, val := range v[k] {
			if buf.Len() > 0 {
				buf.WriteByte('&')
			}
			buf.WriteString(prefix)
			buf.WriteString(QueryEscape(val))
		}
	}
	return buf.String()
}

// QueryValues parses the URL's query component into a Values map. A URL
// with no query returns an empty, non-nil map.
func (u *URL) QueryValues() (Values, error) {
	q, ok := u.Query()
	if !ok {
		return make(Values), nil
	}
	return ParseQuery(q)
}

// WithQueryValues returns a copy of u with its query replaced by v's
// form-encoded serialization, splicing back through
// SetQueryKnownFormEncoded so v's own escaping is not redone.
func (u *URL) WithQueryValues(v Values) *URL {
	return u.SetQueryKnownFormEncoded(v.Encode())
}
