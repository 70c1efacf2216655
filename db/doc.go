// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the results archive and creates its schema.

# Connecting

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

SQLite (modernc.org/sqlite, pure Go) is the default and runs in memory unless
a file URL is given. PostgreSQL goes through github.com/lib/pq.

# Schema Creation

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - result_submission: one exported blob per row, with hashed submitter IP
  - result_entry: decoded wins per entry name

	result_submission 1──* result_entry

Voting sessions themselves are never written here; they live in memory.
*/
package db
