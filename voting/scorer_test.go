// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScorer_Apply(t *testing.T) {
	store, err := NewStore([]string{"A", "B", "C"})
	require.NoError(t, err)
	sc := NewScorer(store)

	require.NoError(t, sc.Apply("A", "B"))

	assert.Equal(t, []Entry{
		{Name: "A", Wins: 1, Games: 1},
		{Name: "B", Wins: 0, Games: 1},
		{Name: "C", Wins: 0, Games: 0},
	}, store.Entries())
}

func TestScorer_RoundTrip(t *testing.T) {
	store, err := NewStore([]string{"A", "B", "C"})
	require.NoError(t, err)
	sc := NewScorer(store)

	require.NoError(t, sc.Apply("C", "A"))
	before := store.Entries()

	for i := 0; i < 10; i++ {
		require.NoError(t, sc.Apply("A", "B"))
		require.NoError(t, sc.Reverse("A", "B"))
	}

	assert.Equal(t, before, store.Entries())
}

func TestScorer_UnknownNameLeavesStoreUntouched(t *testing.T) {
	store, err := NewStore([]string{"A", "B"})
	require.NoError(t, err)
	sc := NewScorer(store)

	err = sc.Apply("A", "Z")
	require.ErrorIs(t, err, ErrNotFound)

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Z", nf.Name)

	assert.Equal(t, 0, store.TotalGames())
}

func TestScorer_ReverseWithoutApply(t *testing.T) {
	store, err := NewStore([]string{"A", "B"})
	require.NoError(t, err)
	sc := NewScorer(store)

	assert.ErrorIs(t, sc.Reverse("A", "B"), ErrCorruptTally)
	assert.Equal(t, 0, store.TotalGames())
}

func TestScorer_SelfMatchup(t *testing.T) {
	store, err := NewStore([]string{"A", "B"})
	require.NoError(t, err)

	assert.ErrorIs(t, NewScorer(store).Apply("A", "A"), ErrSelfMatchup)
}
