// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entriesOf(names ...string) []Entry {
	out := make([]Entry, len(names))
	for i, n := range names {
		out[i] = Entry{Name: n}
	}
	return out
}

func TestPairs_CountAndUniqueness(t *testing.T) {
	for n := 0; n <= 15; n++ {
		names := make([]string, n)
		for i := range names {
			names[i] = string(rune('A' + i))
		}

		pairs := Pairs(entriesOf(names...))
		want := n * (n - 1) / 2
		require.Len(t, pairs, want, "n=%d", n)

		seen := make(map[[2]string]bool)
		for _, p := range pairs {
			assert.NotEqual(t, p.A, p.B, "self pair for n=%d", n)
			key := [2]string{p.A, p.B}
			if p.B < p.A {
				key = [2]string{p.B, p.A}
			}
			assert.False(t, seen[key], "duplicate pair %v", p)
			seen[key] = true
		}
	}
}

func TestPairs_InputOrder(t *testing.T) {
	pairs := Pairs(entriesOf("A", "B", "C"))
	assert.Equal(t, []Matchup{{"A", "B"}, {"A", "C"}, {"B", "C"}}, pairs)
}

func TestFilter(t *testing.T) {
	pairs := Pairs(entriesOf("A", "B", "C", "D"))

	tests := []struct {
		name     string
		excluded string
		wantLen  int
	}{
		{name: "excluded entry removed", excluded: "A", wantLen: 3},
		{name: "unknown name keeps all", excluded: "Z", wantLen: 6},
		{name: "empty name keeps all", excluded: "", wantLen: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(pairs, tt.excluded)
			assert.Len(t, got, tt.wantLen)
			for _, p := range got {
				assert.False(t, p.Has(tt.excluded) && tt.excluded != "", "pair %v contains %q", p, tt.excluded)
			}
		})
	}
}

func TestGenerate_ExcludeLeavesSinglePair(t *testing.T) {
	got := Generate(entriesOf("A", "B", "C"), "A", NewRand(1))
	assert.Equal(t, []Matchup{{A: "B", B: "C"}}, got)
}

func TestGenerate_NoExclusionKeepsEveryPair(t *testing.T) {
	got := Generate(entriesOf("A", "B", "C"), "", NewRand(7))
	assert.ElementsMatch(t, []Matchup{{"A", "B"}, {"A", "C"}, {"B", "C"}}, got)
}

func TestGenerate_NilRand(t *testing.T) {
	got := Generate(entriesOf("A", "B", "C", "D"), "", nil)
	assert.Len(t, got, 6)
}

func TestShuffle_IsPermutation(t *testing.T) {
	pairs := Pairs(entriesOf("A", "B", "C", "D", "E", "F"))
	shuffled := make([]Matchup, len(pairs))
	copy(shuffled, pairs)

	Shuffle(shuffled, NewRand(42))
	assert.ElementsMatch(t, pairs, shuffled)
}

func TestShuffle_Deterministic(t *testing.T) {
	a := Generate(entriesOf("A", "B", "C", "D", "E"), "", NewRand(99))
	b := Generate(entriesOf("A", "B", "C", "D", "E"), "", NewRand(99))
	assert.Equal(t, a, b)
}

// Every ordering of three pairs should show up over enough shuffles.
func TestShuffle_CoversAllPermutations(t *testing.T) {
	rng := NewRand(2025)
	seen := make(map[[3]Matchup]int)

	for i := 0; i < 3000; i++ {
		pairs := Pairs(entriesOf("A", "B", "C"))
		Shuffle(pairs, rng)
		seen[[3]Matchup{pairs[0], pairs[1], pairs[2]}]++
	}

	require.Len(t, seen, 6)
	for perm, count := range seen {
		assert.Greater(t, count, 350, "permutation %v under-represented", perm)
	}
}
