// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: results archive connection string (sqlite default: in-memory)
  - RosterFile: YAML roster path (default: built-in roster)
  - IPHashSalt: Secret for hashing submitter IPs (required)
  - SessionTTL: Idle time before a voting session is dropped (default: 2h)
  - RateLimit / RateBurst: per-IP request limiter (default: 10/s, burst 20)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-roster       Roster file
	-ip-salt      IP hash salt
	-session-ttl  Session idle TTL
	-rate         Requests per second per IP
	-burst        Limiter burst

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	ROSTER_FILE   → -roster
	IP_HASH_SALT  → -ip-salt
	SESSION_TTL   → -session-ttl
	RATE_LIMIT    → -rate

CLI flags take precedence over environment variables. main loads a .env
file, if present, before ParseFlags runs.
*/
package cliparse
