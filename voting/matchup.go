// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"math/rand/v2"
	"time"
)

// Matchup is an unordered pairing of two entries, referenced by name.
// A is shown on the left, B on the right.
type Matchup struct {
	A string `json:"a"`
	B string `json:"b"`
}

// Has reports whether name is one of the two sides.
func (m Matchup) Has(name string) bool {
	return m.A == name || m.B == name
}

// Pairs builds every 2-combination of entries in input order (i < j).
func Pairs(entries []Entry) []Matchup {
	n := len(entries)
	if n < 2 {
		return []Matchup{}
	}

	pairs := make([]Matchup, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, Matchup{A: entries[i].Name, B: entries[j].Name})
		}
	}
	return pairs
}

// Filter drops every pair containing excluded. An excluded name that
// matches no entry leaves the pairs untouched.
func Filter(pairs []Matchup, excluded string) []Matchup {
	out := make([]Matchup, 0, len(pairs))
	for _, p := range pairs {
		if p.Has(excluded) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Shuffle permutes pairs in place with Fisher-Yates.
func Shuffle(pairs []Matchup, rng *rand.Rand) {
	for i := len(pairs) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		pairs[i], pairs[j] = pairs[j], pairs[i]
	}
}

// Generate returns the filtered, shuffled matchup sequence for entries.
// A nil rng uses a time-seeded source.
func Generate(entries []Entry, excluded string, rng *rand.Rand) []Matchup {
	if rng == nil {
		rng = NewRand(uint64(time.Now().UnixNano()))
	}

	pairs := Filter(Pairs(entries), excluded)
	Shuffle(pairs, rng)
	return pairs
}

// NewRand returns a PCG-backed generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
