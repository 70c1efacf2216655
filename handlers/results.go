// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/head2head/auth"
	"github.com/danielhkuo/head2head/cliparse"
	"github.com/danielhkuo/head2head/metrics"
	"github.com/danielhkuo/head2head/middleware"
	"github.com/danielhkuo/head2head/models"
	"github.com/danielhkuo/head2head/roster"
	"github.com/danielhkuo/head2head/voting"
)

type ResultsHandler struct {
	db      *sql.DB
	cfg     cliparse.Config
	roster  roster.Roster
	metrics *metrics.Metrics
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config, r roster.Roster, m *metrics.Metrics) *ResultsHandler {
	return &ResultsHandler{db: db, cfg: cfg, roster: r, metrics: m}
}

// SubmitResults handles POST /results
// Accepts an exported blob, checks it against the roster and archives it.
func (h *ResultsHandler) SubmitResults(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitResultsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		h.metrics.ResultSubmission(false)
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if msg := validateRequest(req); msg != "" {
		h.metrics.ResultSubmission(false)
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	results, err := voting.Decode(req.Blob)
	if err != nil {
		h.metrics.ResultSubmission(false)
		middleware.ErrorResponse(w, http.StatusBadRequest, "Results could not be decoded")
		return
	}

	// Only tallies a completed session over this roster could export
	if err := voting.CheckResults(h.roster.Entries, results); err != nil {
		h.metrics.ResultSubmission(false)
		slog.Warn("rejected results", "error", err)
		switch {
		case errors.Is(err, voting.ErrRosterMismatch):
			middleware.ErrorResponse(w, http.StatusBadRequest, "Results must list every roster entry in order")
		default:
			middleware.ErrorResponse(w, http.StatusBadRequest, "Win counts are not possible for this roster")
		}
		return
	}

	submissionID, err := auth.GenerateID(16)
	if err != nil {
		slog.Error("failed to generate submission ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store results")
		return
	}
	ipHash := auth.HashIP(middleware.ClientIP(r, h.cfg.TrustProxy), h.cfg.IPHashSalt)

	var sessionID *string
	if req.SessionID != "" {
		sessionID = &req.SessionID
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO result_submission (id, session_id, blob, ip_hash, submitted_at)
		VALUES ($1, $2, $3, $4, $5)
	`, submissionID, sessionID, req.Blob, ipHash, time.Now().UTC())
	if err != nil {
		slog.Error("failed to insert submission", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store results")
		return
	}

	for _, res := range results {
		_, err = tx.Exec(`
			INSERT INTO result_entry (submission_id, name, wins)
			VALUES ($1, $2, $3)
		`, submissionID, res.Name, res.Wins)
		if err != nil {
			slog.Error("failed to insert result entry", "error", err, "name", res.Name)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store results")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store results")
		return
	}

	h.metrics.ResultSubmission(true)
	slog.Info("results submitted", "submission_id", submissionID, "entries", len(results))

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitResultsResponse{
		SubmissionID: submissionID,
		Message:      "Results submitted successfully",
	})
}

// GetResults handles GET /results
// Returns summed wins per roster entry, in roster order.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	var submissions int
	err := h.db.QueryRow(`SELECT COUNT(*) FROM result_submission`).Scan(&submissions)
	if err != nil {
		slog.Error("failed to count submissions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	rows, err := h.db.Query(`
		SELECT name, SUM(wins), COUNT(*)
		FROM result_entry
		GROUP BY name
	`)
	if err != nil {
		slog.Error("failed to query tallies", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	byName := make(map[string]models.Tally)
	for rows.Next() {
		var t models.Tally
		if err := rows.Scan(&t.Name, &t.Wins, &t.Submissions); err != nil {
			slog.Error("failed to scan tally", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		byName[t.Name] = t
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read tallies", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	tallies := make([]models.Tally, 0, len(h.roster.Entries))
	for _, name := range h.roster.Entries {
		t, ok := byName[name]
		if !ok {
			t = models.Tally{Name: name}
		}
		tallies = append(tallies, t)
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Title:       h.roster.Title,
		Submissions: submissions,
		Tallies:     tallies,
	})
}

// ListEntries handles GET /entries?q=
// Feeds the exclusion dropdown; q narrows the list with a fuzzy match.
func (h *ResultsHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.EntriesResponse{
		Title:   h.roster.Title,
		Entries: h.roster.Search(r.URL.Query().Get("q")),
	})
}
