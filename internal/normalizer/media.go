// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package normalizer

import (
	"bytes"
	"encoding/json"
	"strings"
)

var jsonNull = []byte("null")

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull)
}

// decodeRequestMedia accepts an absent value, a JSON array of strings, or a
// JSON string holding an encoded array. An empty string means no media.
func decodeRequestMedia(raw json.RawMessage) ([]string, error) {
	if isAbsent(raw) {
		return []string{}, nil
	}

	trimmed := bytes.TrimSpace(raw)

	var urls []string
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &urls); err != nil {
			return nil, ErrInvalidMediaURLs
		}
	case '"':
		var encoded string
		if err := json.Unmarshal(trimmed, &encoded); err != nil {
			return nil, ErrInvalidMediaURLs
		}
		encoded = strings.TrimSpace(encoded)
		if encoded == "" {
			return []string{}, nil
		}
		if !strings.HasPrefix(encoded, "[") {
			return nil, ErrInvalidMediaURLs
		}
		if err := json.Unmarshal([]byte(encoded), &urls); err != nil {
			return nil, ErrInvalidMediaURLs
		}
	default:
		return nil, ErrInvalidMediaURLs
	}

	for i, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			return nil, ErrInvalidMediaURLs
		}
		urls[i] = u
	}

	if urls == nil {
		urls = []string{}
	}
	return urls, nil
}

// encodeMedia produces the storage encoding of a media list: always a JSON
// array, never null.
func encodeMedia(urls []string) string {
	if len(urls) == 0 {
		return "[]"
	}
	encoded, err := json.Marshal(urls)
	if err != nil {
		return "[]"
	}
	return string(encoded)
}

// decodeStoredMedia reads the media column of any schema generation. Rows
// without the column, with a JSON array, or with a Postgres array literal
// are understood; anything else reads as no media.
func decodeStoredMedia(raw []byte) []string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		return []string{}
	}

	if trimmed[0] == '{' && trimmed[len(trimmed)-1] == '}' {
		return decodeArrayLiteral(string(trimmed[1 : len(trimmed)-1]))
	}

	var urls []string
	if err := json.Unmarshal(trimmed, &urls); err != nil {
		// some drivers hand back a JSON string wrapping the array
		var encoded string
		if json.Unmarshal(trimmed, &encoded) != nil || json.Unmarshal([]byte(encoded), &urls) != nil {
			return []string{}
		}
	}

	return compact(urls)
}

func decodeArrayLiteral(body string) []string {
	if strings.TrimSpace(body) == "" {
		return []string{}
	}

	parts := strings.Split(body, ",")
	urls := make([]string, 0, len(parts))
	for _, p := range parts {
		urls = append(urls, strings.Trim(strings.TrimSpace(p), `"`))
	}
	return compact(urls)
}

func compact(urls []string) []string {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			out = append(out, u)
		}
	}
	return out
}
