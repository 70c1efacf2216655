// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/head2head/middleware"
	"github.com/danielhkuo/head2head/models"
	"github.com/danielhkuo/head2head/voting"
)

// Vote handles POST /sessions/{id}/vote
func (h *SessionHandler) Vote(w http.ResponseWriter, r *http.Request) {
	session, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	// Parse request
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if msg := validateRequest(req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	display, err := session.Vote(voting.Side(req.Side))
	if err != nil {
		h.commandError(w, "vote", session.ID, err)
		return
	}

	h.metrics.Vote(req.Side)
	middleware.JSONResponse(w, http.StatusOK, display)
}

// Undo handles POST /sessions/{id}/undo
// Only the most recent vote can be undone.
func (h *SessionHandler) Undo(w http.ResponseWriter, r *http.Request) {
	session, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	display, err := session.Undo()
	if err != nil {
		h.commandError(w, "undo", session.ID, err)
		return
	}

	h.metrics.Undo()
	middleware.JSONResponse(w, http.StatusOK, display)
}
