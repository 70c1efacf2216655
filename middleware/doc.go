// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# Metrics

WithMetrics records request latency against the route pattern:

	middleware.WithMetrics(m, "/sessions/{id}/vote", handler)

# Rate Limiting

RateLimiter keeps a golang.org/x/time/rate token bucket per client IP and
answers 429 once a client runs dry:

	rl := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst, cfg.TrustProxy)
	mux.HandleFunc("POST /sessions/{id}/vote", rl.Wrap(handler))

# CORS Middleware

Enable cross-origin requests for the voting page:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type, Authorization, X-Session-Token.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

ClientIP picks the address a request is attributed to. Proxy headers are
client-controlled, so they are only read when the server runs behind a
trusted proxy (TRUSTED_PROXY / -trust-proxy):

	ip := middleware.ClientIP(r, cfg.TrustProxy)

GetClientIP always honours X-Forwarded-For then X-Real-IP; RemoteIP never does.

Used for rate limiting and IP hashing on result submissions.
*/
package middleware
