// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"fmt"
	"slices"
)

// CheckResults reports whether results could have been exported by a
// completed session over names. Exports list every entry in roster order,
// so results must match names position by position. The wins must form a
// round-robin over all entries, or over all but one entry when one sat out.
func CheckResults(names []string, results []Result) error {
	if len(results) != len(names) {
		return fmt.Errorf("%w: got %d entries, want %d", ErrRosterMismatch, len(results), len(names))
	}
	for i, r := range results {
		if r.Name != names[i] {
			return fmt.Errorf("%w: entry %d is %q, want %q", ErrRosterMismatch, i, r.Name, names[i])
		}
	}

	wins := make([]int, len(results))
	for i, r := range results {
		if r.Wins < 0 {
			return fmt.Errorf("%w: negative wins for %q", ErrImpossibleTally, r.Name)
		}
		wins[i] = r.Wins
	}
	slices.Sort(wins)

	// Nobody sat out
	if isScoreSequence(wins) {
		return nil
	}
	// One entry sat out; it has no wins and sorts first
	if len(wins) > 0 && wins[0] == 0 && isScoreSequence(wins[1:]) {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrImpossibleTally, wins)
}

// isScoreSequence applies Landau's theorem to ascending win counts: every k
// smallest must total at least k(k-1)/2 and all n must total n(n-1)/2.
// This also bounds each count by n-1.
func isScoreSequence(sorted []int) bool {
	n := len(sorted)
	sum := 0
	for k, w := range sorted {
		sum += w
		if sum < (k+1)*k/2 {
			return false
		}
	}
	return sum == n*(n-1)/2
}
