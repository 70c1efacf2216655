// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tallyOf(names []string, wins ...int) []Result {
	out := make([]Result, len(names))
	for i, name := range names {
		out[i] = Result{Name: name, Wins: wins[i]}
	}
	return out
}

func TestCheckResults(t *testing.T) {
	abc := []string{"A", "B", "C"}
	abcd := []string{"A", "B", "C", "D"}

	tests := []struct {
		name    string
		names   []string
		results []Result
		want    error
	}{
		{"full round-robin", abc, tallyOf(abc, 2, 1, 0), nil},
		{"full round-robin cycle", abc, tallyOf(abc, 1, 1, 1), nil},
		{"one entry sat out", abc, tallyOf(abc, 0, 1, 0), nil},
		{"four entries with one out", abcd, tallyOf(abcd, 2, 0, 1, 0), nil},
		{"four entries full", abcd, tallyOf(abcd, 3, 1, 1, 1), nil},
		{"inflated wins", abc, tallyOf(abc, 1000000, 1000000, 1000000), ErrImpossibleTally},
		{"wins above n-1", abc, tallyOf(abc, 3, 0, 0), ErrImpossibleTally},
		{"total too low", abcd, tallyOf(abcd, 1, 1, 0, 0), ErrImpossibleTally},
		{"right total, impossible split", abcd, tallyOf(abcd, 3, 3, 0, 0), ErrImpossibleTally},
		{"negative wins", abc, tallyOf(abc, 2, 2, -1), ErrImpossibleTally},
		{"partial list", abc, tallyOf([]string{"A", "B"}, 1, 0), ErrRosterMismatch},
		{"out of roster order", abc, tallyOf([]string{"B", "A", "C"}, 2, 1, 0), ErrRosterMismatch},
		{"unknown entry", abc, tallyOf([]string{"A", "B", "Z"}, 2, 1, 0), ErrRosterMismatch},
		{"duplicate entry", abc, tallyOf([]string{"A", "A", "C"}, 2, 1, 0), ErrRosterMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckResults(tt.names, tt.results)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCheckResults_AcceptsEveryExport(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E"}
	for _, excluded := range []string{"C", "nobody"} {
		for seed := uint64(0); seed < 20; seed++ {
			s, err := NewSession(names, WithRand(NewRand(seed)))
			require.NoError(t, err)
			d, err := s.SelectExclusion(excluded)
			require.NoError(t, err)

			for i := 0; d.State == StateVoting; i++ {
				side := SideLeft
				if (seed+uint64(i))%3 == 0 {
					side = SideRight
				}
				d, err = s.Vote(side)
				require.NoError(t, err)
			}

			_, res, err := s.ExportResults()
			require.NoError(t, err)
			assert.NoError(t, CheckResults(names, res), "excluded=%s seed=%d", excluded, seed)
		}
	}
}
