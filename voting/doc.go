// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting runs one round-robin of pairwise votes over a fixed roster.

# Building Blocks

  - Store: entries in roster order with win and game counters
  - Generate: every pair, minus the excluded entry, in shuffled order
  - Scorer: applies a vote and reverses it on undo
  - Sequencer: walks the matchups and keeps one undo slot
  - Export / Decode: base64 of a JSON list of {name, wins}

# Sessions

A Session ties one Store and Sequencer together behind a mutex:

	s, err := voting.NewSession(names)
	d, err := s.SelectExclusion("Veronica") // idle → voting
	d, err = s.Vote(voting.SideLeft)
	d, err = s.Undo()
	blob, results, err := s.ExportResults() // complete only

Sessions move idle → voting → complete. Undo is allowed from complete and
returns to the last matchup.

# Registry

Registry holds live sessions by ID. Sweep drops sessions idle for longer
than a given duration.

# Tally Checks

CheckResults verifies a decoded export could have come from a session over
the roster: every entry listed once in roster order, and win counts that a
full round-robin (or one with a single entry sitting out) can produce.
*/
package voting
