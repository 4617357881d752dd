// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query projects typed request options onto ordered query parameters
// and decodes response bodies into typed envelopes.
//
// Options are plain structs whose optional fields are pointers tagged with
// their upstream key, e.g.
//
//	DateRestrict *string `url:"dateRestrict,omitempty"`
//
// The tags form the mapping table from field to upstream key: a nil field is
// absent and contributes nothing, a non-nil field is emitted exactly once.
// Enumerations are emitted through their String method, which returns the
// upstream literal.
package query

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	querystring "github.com/google/go-querystring/query"
)

// Pair is one query parameter.
type Pair struct {
	Key   string
	Value string
}

// Project returns the required pairs, in the order given, followed by every
// present field of opts sorted by key. opts must be a struct or a pointer to
// one. A field whose key collides with a required pair is an error.
func Project(opts any, required ...Pair) ([]Pair, error) {
	values, err := querystring.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("projecting options: %w", err)
	}

	pairs := make([]Pair, 0, len(required)+len(values))
	taken := make(map[string]bool, len(required))
	for _, p := range required {
		pairs = append(pairs, p)
		taken[p.Key] = true
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		if taken[k] {
			return nil, fmt.Errorf("option %q duplicates a required parameter", k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		for _, v := range values[k] {
			pairs = append(pairs, Pair{Key: k, Value: v})
		}
	}
	return pairs, nil
}

// Encode URL-encodes pairs in order.
func Encode(pairs []Pair) string {
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// Redact returns a copy of pairs with the values of the named keys replaced,
// for logging.
func Redact(pairs []Pair, keys ...string) []Pair {
	out := make([]Pair, len(pairs))
	copy(out, pairs)
	for i := range out {
		for _, k := range keys {
			if out[i].Key == k {
				out[i].Value = "REDACTED"
			}
		}
	}
	return out
}

// Get returns the value of the first pair with key k.
func Get(pairs []Pair, k string) (string, bool) {
	for _, p := range pairs {
		if p.Key == k {
			return p.Value, true
		}
	}
	return "", false
}
