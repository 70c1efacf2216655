// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

Types for parsing incoming JSON:

  - StartVotingRequest: excluded
  - VoteRequest: side ("left" or "right")
  - SubmitResultsRequest: blob, optional session_id

Request types carry validator tags checked by the handlers.

# Response Types

Types for JSON responses:

  - CreateSessionResponse: session_id, session_token, entries, display
  - ExportResponse: blob, results
  - SubmitResultsResponse: submission_id, message
  - EntriesResponse: title, entries
  - ResultsResponse: title, submissions, tallies
  - ErrorResponse: error, message

Session commands answer with voting.Display directly.
*/
package models
