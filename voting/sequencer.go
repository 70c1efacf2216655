// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

// State is the sequencer lifecycle position.
type State string

const (
	StateIdle     State = "idle"
	StateVoting   State = "voting"
	StateComplete State = "complete"
)

// UndoRecord remembers the most recent vote so it can be reversed.
type UndoRecord struct {
	PriorCursor int
	Winner      string
	Loser       string
}

// Sequencer walks a matchup sequence one vote at a time and keeps a
// single undo slot. Recording a vote replaces any unused record.
type Sequencer struct {
	scorer  *Scorer
	seq     []Matchup
	cursor  int
	started bool
	undo    *UndoRecord
}

// NewSequencer returns an idle Sequencer that scores through scorer.
func NewSequencer(scorer *Scorer) *Sequencer {
	return &Sequencer{scorer: scorer}
}

// Start moves from Idle to Voting, or straight to Complete when seq is empty.
func (sq *Sequencer) Start(seq []Matchup) error {
	if sq.started {
		return ErrAlreadyStarted
	}

	sq.seq = seq
	sq.cursor = 0
	sq.undo = nil
	sq.started = true
	return nil
}

// State derives the phase from the cursor and start flag.
func (sq *Sequencer) State() State {
	switch {
	case !sq.started:
		return StateIdle
	case sq.cursor >= len(sq.seq):
		return StateComplete
	default:
		return StateVoting
	}
}

// Current returns the matchup under the cursor while Voting.
func (sq *Sequencer) Current() (Matchup, bool) {
	if sq.State() != StateVoting {
		return Matchup{}, false
	}
	return sq.seq[sq.cursor], true
}

// Cursor is the zero-based index of the next matchup.
func (sq *Sequencer) Cursor() int {
	return sq.cursor
}

// Len is the number of matchups in the sequence.
func (sq *Sequencer) Len() int {
	return len(sq.seq)
}

// CanUndo reports whether a vote is held for Undo.
func (sq *Sequencer) CanUndo() bool {
	return sq.undo != nil
}

// Sequence returns a copy of the matchup order.
func (sq *Sequencer) Sequence() []Matchup {
	out := make([]Matchup, len(sq.seq))
	copy(out, sq.seq)
	return out
}

// Vote decides the current matchup in favour of winner.
func (sq *Sequencer) Vote(winner, loser string) error {
	current, ok := sq.Current()
	if !ok {
		return ErrNotVoting
	}
	if !(current.Has(winner) && current.Has(loser)) || winner == loser {
		return ErrNotInMatchup
	}

	if err := sq.scorer.Apply(winner, loser); err != nil {
		return err
	}

	sq.undo = &UndoRecord{PriorCursor: sq.cursor, Winner: winner, Loser: loser}
	sq.cursor++
	return nil
}

// Undo reverses the last recorded vote and rewinds the cursor to it.
// It is valid in any started state, including Complete.
func (sq *Sequencer) Undo() error {
	if sq.undo == nil {
		return ErrNothingToUndo
	}

	rec := sq.undo
	if err := sq.scorer.Reverse(rec.Winner, rec.Loser); err != nil {
		return err
	}

	sq.cursor = rec.PriorCursor
	sq.undo = nil
	return nil
}
