// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

// Scorer applies and reverses vote outcomes against a Store.
// Both names are resolved before any counter changes, so a failed
// call leaves the store untouched.
type Scorer struct {
	store *Store
}

// NewScorer returns a Scorer that records wins in store.
func NewScorer(store *Store) *Scorer {
	return &Scorer{store: store}
}

// Apply records a win for winner and a game for both sides.
func (sc *Scorer) Apply(winner, loser string) error {
	w, l, err := sc.resolve(winner, loser)
	if err != nil {
		return err
	}

	w.Wins++
	w.Games++
	l.Games++
	return nil
}

// Reverse undoes exactly one Apply(winner, loser).
func (sc *Scorer) Reverse(winner, loser string) error {
	w, l, err := sc.resolve(winner, loser)
	if err != nil {
		return err
	}

	if w.Wins < 1 || w.Games < 1 || l.Games < 1 {
		return ErrCorruptTally
	}

	w.Wins--
	w.Games--
	l.Games--
	return nil
}

func (sc *Scorer) resolve(winner, loser string) (*Entry, *Entry, error) {
	if winner == loser {
		return nil, nil, ErrSelfMatchup
	}

	w, err := sc.store.Lookup(winner)
	if err != nil {
		return nil, nil, err
	}
	l, err := sc.store.Lookup(loser)
	if err != nil {
		return nil, nil, err
	}
	return w, l, nil
}
