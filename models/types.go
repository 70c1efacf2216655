package models

import "github.com/danielhkuo/head2head/voting"

// Request types

type StartVotingRequest struct {
	Excluded string `json:"excluded" validate:"max=100"`
}

type VoteRequest struct {
	Side string `json:"side" validate:"required,oneof=left right"`
}

type SubmitResultsRequest struct {
	Blob      string `json:"blob" validate:"required,base64,max=65536"`
	SessionID string `json:"session_id,omitempty" validate:"omitempty,uuid"`
}

// Response types

type CreateSessionResponse struct {
	SessionID    string         `json:"session_id"`
	SessionToken string         `json:"session_token"`
	Entries      []string       `json:"entries"`
	Display      voting.Display `json:"display"`
}

type ExportResponse struct {
	Blob    string          `json:"blob"`
	Results []voting.Result `json:"results"`
}

type SubmitResultsResponse struct {
	SubmissionID string `json:"submission_id"`
	Message      string `json:"message"`
}

type EntriesResponse struct {
	Title   string   `json:"title"`
	Entries []string `json:"entries"`
}

// Tally is the total wins for one entry across every submitted export.
type Tally struct {
	Name        string `json:"name"`
	Wins        int    `json:"wins"`
	Submissions int    `json:"submissions"`
}

type ResultsResponse struct {
	Title       string  `json:"title"`
	Submissions int     `json:"submissions"`
	Tallies     []Tally `json:"tallies"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
