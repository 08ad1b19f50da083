// Package searchparams converts between the query string of a URL and
// a key-value mapping, and percent-encodes/decodes single components.
//
// It works on the query string part only: the "?" delimiter and the
// "#fragment" are not part of a query string, callers strip them before
// parsing and prepend "?" themselves when assembling a full URL.
package searchparams

import (
	"slices"
	"strings"

	"github.com/spf13/cast"
)

// Parse converts a query string into a mapping of its parameters.
// Both keys and values are decoded with DecodeComponent. Each pair is
// split on the first "=" so values may contain literal "=" characters;
// a pair without "=" gets an empty value. Pairs with an empty key are
// dropped. Duplicate keys keep the last value.
//
// Parse never fails, malformed input degrades to these fallbacks.
func Parse(query string) map[string]string {
	params := make(map[string]string)
	if strings.TrimSpace(query) == "" {
		return params
	}
	for _, pair := range strings.Split(query, ampersand) {
		key, value, _ := strings.Cut(pair, equals)
		if key == "" {
			continue
		}
		params[DecodeComponent(key)] = DecodeComponent(value)
	}
	return params
}

// Build converts a mapping into a query string. Keys and values are
// encoded with EncodeComponent and joined as "key=value" pairs with
// "&". Since map iteration order is unspecified the pairs are sorted
// case-insensitively, making the output deterministic. An empty
// mapping yields an empty string.
func Build(params map[string]string) string {
	pairs := make([]string, 0, len(params))
	for key, value := range params {
		pairs = append(pairs, EncodeComponent(key)+equals+EncodeComponent(value))
	}
	slices.SortFunc(pairs, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return strings.Join(pairs, ampersand)
}

// BuildAny is Build for mappings of arbitrary values, converted to
// strings with cast. It fails when a value has no string representation.
func BuildAny(params map[string]any) (string, error) {
	m := make(map[string]string, len(params))
	for key, value := range params {
		s, err := cast.ToStringE(value)
		if err != nil {
			return "", err
		}
		m[key] = s
	}
	return Build(m), nil
}
