package transmission

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode"
)

// The daemon speaks lowercase keys joined with hyphens (and a few
// underscores), while this package exposes camel-cased fields. Responses are
// re-cased key by key before they are decoded into typed structs; requests go
// out with wire names baked into struct tags or rename tables, so no inverse
// transform is needed at runtime.

// camelKey converts a single wire key to application casing:
//
//	"download-dir"  -> "downloadDir"
//	"total_size"    -> "totalSize"
//	"hashString"    -> "hashString" (already camel, unchanged)
//
// Separators are dropped and the letter after each one is uppercased. Keys
// without separators pass through untouched, which makes the transform
// idempotent.
func camelKey(key string) string {
	if !strings.ContainsAny(key, "-_") {
		return key
	}

	var b strings.Builder
	b.Grow(len(key))

	upper := false
	for _, r := range key {
		if r == '-' || r == '_' {
			upper = true
			continue
		}
		if upper && b.Len() > 0 {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		upper = false
	}
	return b.String()
}

// camelizeKeys rewrites every object key in a decoded JSON tree, recursing
// through nested objects and arrays. Values are never altered, only keys.
func camelizeKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, child := range t {
			out[camelKey(k)] = camelizeKeys(child)
		}
		return out
	case []any:
		for i, child := range t {
			t[i] = camelizeKeys(child)
		}
		return t
	default:
		return v
	}
}

// camelizeRaw decodes a raw JSON payload, re-cases all of its keys and
// encodes it again so it can be unmarshaled into camel-tagged structs.
// Numbers are carried as json.Number to keep 64-bit values exact through the
// round trip.
func camelizeRaw(raw json.RawMessage) (json.RawMessage, error) {
	if len(raw) == 0 {
		return raw, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return json.Marshal(camelizeKeys(v))
}
