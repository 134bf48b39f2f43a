// Package sqlite provides the SQLite-backed location catalog.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	"github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/ncruces/go-sqlite3/ext/unicode"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string

	// ReadOnly opens an existing catalog file without creating the schema.
	// Set before calling Open().
	ReadOnly bool
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Path returns the database path.
func (db *DB) Path() string {
	return db.path
}

// Open opens the database connection. Writable databases get the schema
// created if needed; read-only databases must already contain it.
func (db *DB) Open() error {
	dsn := db.path
	if db.ReadOnly {
		dsn = "file:" + (&url.URL{Path: db.path}).EscapedPath() + "?mode=ro"
	}

	// Every connection gets Unicode-aware lower() so name matching folds
	// case beyond ASCII.
	conn, err := driver.Open(dsn, unicode.Register)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// In-memory databases live in a single connection, and writers are
	// serialized anyway. Read-only catalogs allow concurrent readers.
	if !db.ReadOnly {
		conn.SetMaxOpenConns(1)
	}

	// Verify connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Set busy timeout to wait 5 seconds before failing on lock contention.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	db.db = conn

	if db.ReadOnly {
		if err := db.verifySchema(); err != nil {
			conn.Close()
			return fmt.Errorf("failed to verify schema: %w", err)
		}
		return nil
	}

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

// Stats returns database statistics.
func (db *DB) Stats() sql.DBStats {
	return db.db.Stats()
}

// createSchema creates the database tables if they don't exist.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS locations (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			country TEXT NOT NULL DEFAULT '',
			latitude REAL NOT NULL,
			longitude REAL NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_locations_name_country ON locations(name, country);
		CREATE INDEX IF NOT EXISTS idx_locations_country_name ON locations(country, name);
	`

	_, err := db.db.Exec(schema)
	return err
}

// verifySchema checks that the locations table can be queried.
func (db *DB) verifySchema() error {
	var n int
	return db.db.QueryRow("SELECT COUNT(*) FROM locations").Scan(&n)
}
