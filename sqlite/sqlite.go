// Package sqlite records crawl reports in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB is a SQLite-backed store for crawl reports.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB returns a DB for path. The connection is not opened until Open.
// Use ":memory:" for a throwaway in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open connects to the database, applies connection pragmas and creates
// the crawls and outcomes tables when they are missing.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// One writer at a time: outcomes are recorded from a single goroutine.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	for _, p := range db.pragmas() {
		if _, err := conn.Exec(p); err != nil {
			conn.Close()
			return fmt.Errorf("failed to apply %q: %w", p, err)
		}
	}

	db.db = conn
	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// pragmas lists the statements run on every new connection. WAL is skipped
// for in-memory databases, which do not support it.
func (db *DB) pragmas() []string {
	p := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	if db.path != ":memory:" {
		p = append(p, "PRAGMA journal_mode = WAL")
	}
	return p
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// createSchema creates the database tables if they don't exist.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS crawls (
			id TEXT PRIMARY KEY,
			seed_url TEXT NOT NULL,
			budget INTEGER NOT NULL,
			started_at TEXT NOT NULL,
			finished_at TEXT NOT NULL DEFAULT '',
			scheduled INTEGER NOT NULL DEFAULT 0,
			spawned INTEGER NOT NULL DEFAULT 0,
			outcomes INTEGER NOT NULL DEFAULT 0,
			skipped INTEGER NOT NULL DEFAULT 0,
			discovered INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS outcomes (
			id TEXT PRIMARY KEY,
			crawl_id TEXT NOT NULL REFERENCES crawls(id) ON DELETE CASCADE,
			url TEXT NOT NULL,
			status INTEGER NOT NULL,
			link_count INTEGER NOT NULL DEFAULT 0,
			links TEXT NOT NULL DEFAULT '[]',
			content_hash TEXT NOT NULL DEFAULT '',
			bytes INTEGER NOT NULL DEFAULT 0,
			fetched_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_outcomes_crawl_id ON outcomes(crawl_id);
		CREATE INDEX IF NOT EXISTS idx_outcomes_url ON outcomes(url);
	`

	_, err := db.db.Exec(schema)
	return err
}
