// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"sync"
	"time"
)

// Registry keeps live sessions in memory, keyed by session ID.
type Registry struct {
	mu       sync.RWMutex
	names    []string
	sessions map[string]*Session
}

// NewRegistry creates a registry whose sessions all use names as their roster.
func NewRegistry(names []string) *Registry {
	roster := make([]string, len(names))
	copy(roster, names)
	return &Registry{
		names:    roster,
		sessions: make(map[string]*Session),
	}
}

// Names returns the roster new sessions are built from.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Create builds a session over the registry roster and tracks it by ID.
func (r *Registry) Create(opts ...Option) (*Session, error) {
	s, err := NewSession(r.names, opts...)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s, nil
}

// Get returns the session for id, or ErrSessionNotFound.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete removes a session. It reports whether the session existed.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.sessions[id]
	delete(r.sessions, id)
	return ok
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep drops sessions idle for longer than maxIdle and returns how many
// were removed.
func (r *Registry) Sweep(now time.Time, maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if now.Sub(s.LastActive()) > maxIdle {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}
