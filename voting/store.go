// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "fmt"

// Entry is a named contestant and its running tally.
type Entry struct {
	Name  string `json:"name"`
	Wins  int    `json:"wins"`
	Games int    `json:"games"`
}

// Store holds entries in configuration order. Lookups are by name.
type Store struct {
	entries []*Entry
	index   map[string]*Entry
}

// NewStore creates a store with zeroed counters for each name.
// Names must be non-empty and unique.
func NewStore(names []string) (*Store, error) {
	s := &Store{
		entries: make([]*Entry, 0, len(names)),
		index:   make(map[string]*Entry, len(names)),
	}

	for _, name := range names {
		if name == "" {
			return nil, ErrEmptyName
		}
		if _, ok := s.index[name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateEntry, name)
		}
		e := &Entry{Name: name}
		s.entries = append(s.entries, e)
		s.index[name] = e
	}

	return s, nil
}

// Lookup returns the live entry for name.
func (s *Store) Lookup(name string) (*Entry, error) {
	e, ok := s.index[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return e, nil
}

// Entries returns a copy of every entry in configuration order.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		out[i] = *e
	}
	return out
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// TotalGames sums games across all entries. With no undo pending
// this is twice the number of decided matchups.
func (s *Store) TotalGames() int {
	total := 0
	for _, e := range s.entries {
		total += e.Games
	}
	return total
}
