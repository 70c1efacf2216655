// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the results archive. dbType is "sqlite" or "postgres".
func Open(dbType, url string) (*sql.DB, error) {
	var driver string
	switch dbType {
	case "sqlite":
		driver = "sqlite"
	case "postgres":
		driver = "postgres"
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every sqlite connection to :memory: is a separate database
	if driver == "sqlite" {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Statements stick to the subset shared by SQLite and PostgreSQL.
const schema = `
-- One row per exported tally handed in
CREATE TABLE IF NOT EXISTS result_submission (
    id TEXT PRIMARY KEY,
    session_id TEXT,
    blob TEXT NOT NULL,
    ip_hash TEXT,
    submitted_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_result_submission_session ON result_submission(session_id);

-- Decoded wins per entry
CREATE TABLE IF NOT EXISTS result_entry (
    submission_id TEXT NOT NULL REFERENCES result_submission(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    wins INTEGER NOT NULL CHECK (wins >= 0),
    PRIMARY KEY (submission_id, name)
);

CREATE INDEX IF NOT EXISTS idx_result_entry_name ON result_entry(name);
`
