// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the head2head API.

# Handler Types

Each handler is a struct with its dependencies injected by constructor:

  - SessionHandler: Voting session lifecycle (create, start, vote, undo, export)
  - ResultsHandler: Roster listing and the submitted results archive

	sessionHandler := handlers.NewSessionHandler(registry, cfg, m)
	resultsHandler := handlers.NewResultsHandler(db, cfg, roster, m)

# Session Flow

Sessions progress through three states: idle → voting → complete

	POST /sessions              → CreateSession (returns session_token)
	POST /sessions/{id}/start   → StartVoting (one entry sits out)
	POST /sessions/{id}/vote    → Vote (left or right)
	POST /sessions/{id}/undo    → Undo (most recent vote only)
	GET  /sessions/{id}/export  → Export (complete only)

Session operations require the X-Session-Token header returned at creation.
Rejected commands map onto status codes:

  - 400: empty exclusion, unknown side
  - 409: command out of order (nothing to undo, not voting, not complete)
  - 500: tally inconsistency

# Results Archive

An exported blob is base64 of a JSON list of {name, wins}. Submitting one
stores it with a salted hash of the client IP:

	POST /results → SubmitResults
	GET  /results → GetResults (summed wins per roster entry)
	GET  /entries → ListEntries (?q= for a fuzzy filter)
*/
package handlers
