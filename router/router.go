// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/head2head/cliparse"
	"github.com/danielhkuo/head2head/handlers"
	"github.com/danielhkuo/head2head/metrics"
	"github.com/danielhkuo/head2head/middleware"
	"github.com/danielhkuo/head2head/roster"
	"github.com/danielhkuo/head2head/voting"
)

// Deps carries everything the routes need.
type Deps struct {
	DB       *sql.DB
	Config   cliparse.Config
	Roster   roster.Roster
	Registry *voting.Registry
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Limiter  *middleware.RateLimiter
}

func NewRouter(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(d.Registry, d.Config, d.Metrics)
	resultsHandler := handlers.NewResultsHandler(d.DB, d.Config, d.Roster, d.Metrics)

	handle := func(pattern string, h http.HandlerFunc) {
		// the path half of "METHOD /path" doubles as the metrics route label
		_, route, _ := strings.Cut(pattern, " ")
		mux.HandleFunc(pattern, middleware.WithLogging(middleware.WithMetrics(d.Metrics, route, h)))
	}
	limited := func(pattern string, h http.HandlerFunc) {
		handle(pattern, d.Limiter.Wrap(h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus scrape endpoint
	mux.Handle("GET /metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))

	// Roster
	handle("GET /entries", resultsHandler.ListEntries)

	// Voting sessions (token-protected)
	limited("POST /sessions", sessionHandler.CreateSession)
	handle("GET /sessions/{id}", sessionHandler.GetSession)
	limited("POST /sessions/{id}/start", sessionHandler.StartVoting)
	limited("POST /sessions/{id}/vote", sessionHandler.Vote)
	limited("POST /sessions/{id}/undo", sessionHandler.Undo)
	handle("GET /sessions/{id}/export", sessionHandler.Export)
	handle("DELETE /sessions/{id}", sessionHandler.DeleteSession)

	// Results archive
	limited("POST /results", resultsHandler.SubmitResults)
	handle("GET /results", resultsHandler.GetResults)

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("head2head API v1"))
	})

	return mux
}
