// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSelection is returned when voting is started without an
	// excluded entry chosen.
	ErrInvalidSelection = errors.New("no exclusion selected")
	ErrNotFound         = errors.New("entry not found")
	ErrNothingToUndo    = errors.New("nothing to undo")
	ErrNotVoting        = errors.New("session is not accepting votes")
	ErrNotComplete      = errors.New("voting is not complete")
	ErrAlreadyStarted   = errors.New("voting already started")
	ErrNotInMatchup     = errors.New("vote does not match the current matchup")
	ErrInvalidSide      = errors.New("invalid side")
	ErrCorruptTally     = errors.New("tally would become negative")
	ErrMalformedExport  = errors.New("malformed export")
	ErrSessionNotFound  = errors.New("session not found")
	ErrDuplicateEntry   = errors.New("duplicate entry name")
	ErrEmptyName        = errors.New("entry name is empty")
	ErrSelfMatchup      = errors.New("winner and loser are the same entry")

	// ErrRosterMismatch and ErrImpossibleTally reject submitted results that
	// no session over the roster could have exported.
	ErrRosterMismatch  = errors.New("results do not list the roster")
	ErrImpossibleTally = errors.New("win counts cannot come from a round-robin")
)

// NotFoundError names the entry that could not be resolved.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("entry %q not found", e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
