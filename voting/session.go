// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Side picks which half of the current matchup wins.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Listener receives display notifications from a Session.
// Calls happen while the session lock is held; implementations must
// not call back into the session.
type Listener interface {
	OnMatchupReady(index, total int, a, b string)
	OnVotingComplete()
}

type nopListener struct{}

func (nopListener) OnMatchupReady(int, int, string, string) {}
func (nopListener) OnVotingComplete()                       {}

// Display is the payload returned by every session command.
type Display struct {
	SessionID string   `json:"session_id"`
	State     State    `json:"state"`
	Excluded  string   `json:"excluded,omitempty"`
	Index     int      `json:"index"`
	Total     int      `json:"total"`
	Matchup   *Matchup `json:"matchup,omitempty"`
	Status    string   `json:"status"`
	CanUndo   bool     `json:"can_undo"`
}

// Session owns one Entry Store and Sequencer. All commands are
// serialized through mu.
type Session struct {
	ID        string
	Token     string
	CreatedAt time.Time

	mu         sync.Mutex
	store      *Store
	scorer     *Scorer
	seq        *Sequencer
	excluded   string
	lastActive time.Time
	rng        *rand.Rand
	listener   Listener
	now        func() time.Time
}

// Option configures a Session at construction.
type Option func(*Session)

// WithRand fixes the shuffle source, mostly for tests.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithListener routes display notifications to l. A nil l keeps the no-op listener.
func WithListener(l Listener) Option {
	return func(s *Session) {
		if l != nil {
			s.listener = l
		}
	}
}

// WithToken attaches the secret clients must present to drive the session.
func WithToken(token string) Option {
	return func(s *Session) { s.Token = token }
}

// WithClock replaces time.Now for activity tracking.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// NewSession creates an Idle session over names.
func NewSession(names []string, opts ...Option) (*Session, error) {
	store, err := NewStore(names)
	if err != nil {
		return nil, fmt.Errorf("failed to create entry store: %w", err)
	}

	scorer := NewScorer(store)
	s := &Session{
		ID:       uuid.NewString(),
		store:    store,
		scorer:   scorer,
		seq:      NewSequencer(scorer),
		listener: nopListener{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.CreatedAt = s.now()
	s.lastActive = s.CreatedAt
	return s, nil
}

// SelectExclusion generates the matchup sequence without the excluded
// entry and starts voting.
func (s *Session) SelectExclusion(excluded string) (Display, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if excluded == "" {
		return s.display(), ErrInvalidSelection
	}
	if s.seq.State() != StateIdle {
		return s.display(), ErrAlreadyStarted
	}

	pairs := Generate(s.store.Entries(), excluded, s.rng)
	if err := s.seq.Start(pairs); err != nil {
		return s.display(), err
	}
	s.excluded = excluded

	slog.Info("voting started", "session_id", s.ID, "excluded", excluded, "matchups", len(pairs))
	s.notify()
	return s.display(), nil
}

// Vote decides the current matchup for the given side.
func (s *Session) Vote(side Side) (Display, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	current, ok := s.seq.Current()
	if !ok {
		return s.display(), ErrNotVoting
	}

	var winner, loser string
	switch side {
	case SideLeft:
		winner, loser = current.A, current.B
	case SideRight:
		winner, loser = current.B, current.A
	default:
		return s.display(), fmt.Errorf("%w: %q", ErrInvalidSide, side)
	}

	if err := s.seq.Vote(winner, loser); err != nil {
		s.logInconsistency("vote", err)
		return s.display(), err
	}

	s.notify()
	return s.display(), nil
}

// Undo reverses the most recent vote. Only one level is kept.
func (s *Session) Undo() (Display, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if err := s.seq.Undo(); err != nil {
		s.logInconsistency("undo", err)
		return s.display(), err
	}

	s.notify()
	return s.display(), nil
}

// Export returns the encoded tally once every matchup is decided.
func (s *Session) Export() (string, error) {
	blob, _, err := s.ExportResults()
	return blob, err
}

// ExportResults returns the encoded tally together with the results it
// encodes, both taken from the same snapshot.
func (s *Session) ExportResults() (string, []Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.seq.State() != StateComplete {
		return "", nil, ErrNotComplete
	}

	entries := s.store.Entries()
	blob, err := Export(entries)
	if err != nil {
		return "", nil, err
	}
	return blob, Results(entries), nil
}

// Display snapshots what the voter should see right now.
func (s *Session) Display() Display {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.display()
}

// Entries returns a snapshot of the tally.
func (s *Session) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Entries()
}

// LastActive reports when the session last accepted a command.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

func (s *Session) touch() {
	s.lastActive = s.now()
}

func (s *Session) display() Display {
	d := Display{
		SessionID: s.ID,
		State:     s.seq.State(),
		Excluded:  s.excluded,
		Index:     s.seq.Cursor(),
		Total:     s.seq.Len(),
		CanUndo:   s.seq.CanUndo(),
	}

	switch d.State {
	case StateIdle:
		d.Status = "Select an entry to sit out"
	case StateVoting:
		m, _ := s.seq.Current()
		d.Matchup = &m
		d.Status = fmt.Sprintf("Matchups completed: %s/%s",
			humanize.Comma(int64(d.Index)), humanize.Comma(int64(d.Total)))
	case StateComplete:
		d.Status = "All matchups are complete!"
	}
	return d
}

func (s *Session) notify() {
	switch s.seq.State() {
	case StateVoting:
		m, _ := s.seq.Current()
		s.listener.OnMatchupReady(s.seq.Cursor(), s.seq.Len(), m.A, m.B)
	case StateComplete:
		s.listener.OnVotingComplete()
	}
}

// logInconsistency reports errors that can only come from corrupted
// session state.
func (s *Session) logInconsistency(op string, err error) {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrCorruptTally) {
		slog.Error("session state inconsistent", "session_id", s.ID, "op", op, "error", err)
	}
}
