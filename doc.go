// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the head2head API server.

head2head runs a round-robin of pairwise votes over a fixed roster. A voter
picks one entry to sit out, decides every remaining matchup in shuffled
order, and exports the win counts as a base64 blob that can be handed in
to the results archive.

# Starting the Server

The server reads a .env file if present, then environment variables or CLI flags:

	IP_HASH_SALT=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." --ip-salt dev-salt

# Configuration

Required settings:

  - IP_HASH_SALT (--ip-salt): Secret mixed into stored client IP hashes

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (sqlite default: in-memory)
  - ROSTER_FILE (--roster): YAML roster (default: built-in list)
  - SESSION_TTL (--session-ttl): Idle time before a session is dropped (default: 2h)
  - RATE_LIMIT (--rate, --burst): Requests per second per client IP (default: 10)
  - TRUSTED_PROXY (--trust-proxy): Read client IPs from X-Forwarded-For (default: false)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - voting: Entry store, matchup generation, sequencing and undo, export
  - roster: Roster loading and fuzzy search
  - handlers: HTTP request handlers (sessions, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, rate limiting
  - metrics: Prometheus collectors
  - models: Request/response types
  - auth: Token generation and validation
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
