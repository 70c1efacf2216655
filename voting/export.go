// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Result is one element of an exported tally. Games are not exported.
type Result struct {
	Name string `json:"name"`
	Wins int    `json:"wins"`
}

// Results projects entries onto name and wins, keeping their order.
func Results(entries []Entry) []Result {
	out := make([]Result, len(entries))
	for i, e := range entries {
		out[i] = Result{Name: e.Name, Wins: e.Wins}
	}
	return out
}

// Export encodes entries as base64(JSON([{name, wins}, ...])).
// HTML escaping is disabled so the JSON matches what a browser's
// JSON.stringify produces for the same list.
func Export(entries []Entry) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Results(entries)); err != nil {
		return "", fmt.Errorf("failed to encode results: %w", err)
	}

	raw := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	return base64.StdEncoding.EncodeToString(raw), nil
}

// Decode reverses Export.
func Decode(blob string) ([]Result, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedExport, err)
	}

	var results []Result
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedExport, err)
	}
	if results == nil {
		return nil, fmt.Errorf("%w: not a list", ErrMalformedExport)
	}

	for _, r := range results {
		if r.Name == "" {
			return nil, fmt.Errorf("%w: %v", ErrMalformedExport, ErrEmptyName)
		}
		if r.Wins < 0 {
			return nil, fmt.Errorf("%w: negative wins for %q", ErrMalformedExport, r.Name)
		}
	}

	return results, nil
}
