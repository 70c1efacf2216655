// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CreateGetDelete(t *testing.T) {
	r := NewRegistry([]string{"A", "B", "C"})

	s, err := r.Create(WithToken("secret"))
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "secret", s.Token)

	got, err := r.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	assert.True(t, r.Delete(s.ID))
	assert.False(t, r.Delete(s.ID))

	_, err = r.Get(s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRegistry_InvalidRoster(t *testing.T) {
	r := NewRegistry([]string{"A", "A"})
	_, err := r.Create()
	assert.ErrorIs(t, err, ErrDuplicateEntry)
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_SessionsAreIndependent(t *testing.T) {
	r := NewRegistry([]string{"A", "B"})
	s1, err := r.Create()
	require.NoError(t, err)
	s2, err := r.Create()
	require.NoError(t, err)

	_, err = s1.SelectExclusion("none")
	require.NoError(t, err)
	_, err = s1.Vote(SideLeft)
	require.NoError(t, err)

	for _, e := range s2.Entries() {
		assert.Zero(t, e.Games)
	}
}

func TestRegistry_Sweep(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r := NewRegistry([]string{"A", "B"})

	old, err := r.Create(WithClock(func() time.Time { return base }))
	require.NoError(t, err)
	fresh, err := r.Create(WithClock(func() time.Time { return base.Add(50 * time.Minute) }))
	require.NoError(t, err)

	removed := r.Sweep(base.Add(time.Hour), 30*time.Minute)
	assert.Equal(t, 1, removed)

	_, err = r.Get(old.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = r.Get(fresh.ID)
	assert.NoError(t, err)
}

func TestRegistry_ConcurrentVotesAreSerialized(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	r := NewRegistry(names)
	s, err := r.Create()
	require.NoError(t, err)
	_, err = s.SelectExclusion("H")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Vote(SideLeft)
		}()
	}
	wg.Wait()

	d := s.Display()
	assert.Equal(t, StateComplete, d.State)

	total := 0
	for _, e := range s.Entries() {
		total += e.Games
	}
	assert.Equal(t, 2*d.Total, total)
}
