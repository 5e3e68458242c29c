// Package sqlite provides the SQLite-backed run history for urlinfo.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	// Verify connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Wait on lock contention instead of failing with "database is locked".
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// WAL lets the history command read while a server is recording runs.
	// In-memory databases do not support it.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	db.db = conn

	// Create schema
	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
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

// BeginTx starts a transaction.
func (db *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, opts)
}

// createSchema creates the database tables if they don't exist.
// seq orders entries by insertion; created_at only has second precision.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS history (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			source_url TEXT NOT NULL,
			report TEXT NOT NULL DEFAULT '',
			content_hash TEXT NOT NULL DEFAULT '',
			error TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_history_source_url ON history(source_url);
	`

	_, err := db.db.Exec(schema)
	return err
}
