// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/head2head/auth"
	"github.com/danielhkuo/head2head/cliparse"
	"github.com/danielhkuo/head2head/metrics"
	"github.com/danielhkuo/head2head/middleware"
	"github.com/danielhkuo/head2head/models"
	"github.com/danielhkuo/head2head/voting"
)

type SessionHandler struct {
	registry *voting.Registry
	cfg      cliparse.Config
	metrics  *metrics.Metrics
}

func NewSessionHandler(registry *voting.Registry, cfg cliparse.Config, m *metrics.Metrics) *SessionHandler {
	return &SessionHandler{registry: registry, cfg: cfg, metrics: m}
}

// sessionListener logs display notifications and counts completions.
type sessionListener struct {
	sessionID string
	metrics   *metrics.Metrics
}

func (l *sessionListener) OnMatchupReady(index, total int, a, b string) {
	slog.Debug("matchup ready", "session_id", l.sessionID, "index", index, "total", total, "a", a, "b", b)
}

func (l *sessionListener) OnVotingComplete() {
	slog.Info("voting complete", "session_id", l.sessionID)
	l.metrics.SessionCompleted()
}

// CreateSession handles POST /sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	token, err := auth.GenerateSessionToken()
	if err != nil {
		slog.Error("failed to generate session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	listener := &sessionListener{metrics: h.metrics}
	session, err := h.registry.Create(voting.WithToken(token), voting.WithListener(listener))
	if err != nil {
		slog.Error("failed to create session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}
	listener.sessionID = session.ID

	h.metrics.SessionCreated()
	h.metrics.SetActiveSessions(h.registry.Len())
	slog.Info("session created", "session_id", session.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSessionResponse{
		SessionID:    session.ID,
		SessionToken: token,
		Entries:      h.registry.Names(),
		Display:      session.Display(),
	})
}

// GetSession handles GET /sessions/{id}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, session.Display())
}

// StartVoting handles POST /sessions/{id}/start
func (h *SessionHandler) StartVoting(w http.ResponseWriter, r *http.Request) {
	session, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	var req models.StartVotingRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if msg := validateRequest(req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	display, err := session.SelectExclusion(req.Excluded)
	if err != nil {
		h.commandError(w, "start", session.ID, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, display)
}

// Export handles GET /sessions/{id}/export
func (h *SessionHandler) Export(w http.ResponseWriter, r *http.Request) {
	session, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	blob, results, err := session.ExportResults()
	if err != nil {
		h.commandError(w, "export", session.ID, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ExportResponse{
		Blob:    blob,
		Results: results,
	})
}

// DeleteSession handles DELETE /sessions/{id}
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	session, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	h.registry.Delete(session.ID)
	h.metrics.SetActiveSessions(h.registry.Len())
	slog.Info("session deleted", "session_id", session.ID)

	w.WriteHeader(http.StatusNoContent)
}

// loadSession resolves the session in the path and checks its token.
// It writes the error response itself and returns false on failure.
func (h *SessionHandler) loadSession(w http.ResponseWriter, r *http.Request) (*voting.Session, bool) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return nil, false
	}

	session, err := h.registry.Get(id)
	if errors.Is(err, voting.ErrSessionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return nil, false
	}
	if err != nil {
		slog.Error("failed to load session", "error", err, "session_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load session")
		return nil, false
	}

	if err := auth.ValidateSessionToken(r.Header.Get("X-Session-Token"), session.Token); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Session-Token header missing or invalid")
		return nil, false
	}

	return session, true
}

// commandError maps a rejected session command onto an HTTP status.
func (h *SessionHandler) commandError(w http.ResponseWriter, command, sessionID string, err error) {
	h.metrics.CommandError(command)

	switch {
	case errors.Is(err, voting.ErrInvalidSelection):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Please select an entry to exclude")
	case errors.Is(err, voting.ErrInvalidSide):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, voting.ErrNothingToUndo):
		middleware.ErrorResponse(w, http.StatusConflict, "Nothing to undo")
	case errors.Is(err, voting.ErrNotVoting),
		errors.Is(err, voting.ErrNotComplete),
		errors.Is(err, voting.ErrAlreadyStarted),
		errors.Is(err, voting.ErrNotInMatchup):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	default:
		slog.Error("session command failed", "command", command, "session_id", sessionID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Session state error")
	}
}
