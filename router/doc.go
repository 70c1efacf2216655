// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the head2head API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(router.Deps{DB: db, Config: cfg, ...})

Every API route is wrapped with request logging and a latency histogram
labelled by route pattern. Commands that change state also pass through
the per-IP rate limiter.

# Endpoints

Health and monitoring:

	GET /health  - Liveness check
	GET /metrics - Prometheus scrape endpoint

Roster:

	GET /entries - Roster entries (?q= fuzzy filter)

Voting sessions (requires X-Session-Token except on create):

	POST   /sessions              - Create session
	GET    /sessions/{id}         - Current display state
	POST   /sessions/{id}/start   - Choose the entry that sits out
	POST   /sessions/{id}/vote    - Pick the left or right entry
	POST   /sessions/{id}/undo    - Reverse the most recent vote
	GET    /sessions/{id}/export  - Encoded results (complete only)
	DELETE /sessions/{id}         - Discard session

Results archive:

	POST /results - Submit an exported blob
	GET  /results - Summed wins per roster entry
*/
package router
