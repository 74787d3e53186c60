// Package storage provides the relational store behind the flight roster:
// connection handling, schema creation and constraint-error classification
// for the embedded SQLite drivers and an optional PostgreSQL backend.
package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Driver names a supported database backend.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"   // modernc.org/sqlite, pure Go.
	DriverSQLite3  Driver = "sqlite3"  // github.com/mattn/go-sqlite3, needs cgo.
	DriverPostgres Driver = "postgres" // github.com/jackc/pgx/v5.
)

// Config holds database connection settings.
type Config struct {
	Driver   Driver
	Path     string // SQLite database file, or ":memory:".
	Postgres PostgresConfig
}

// DefaultConfig returns a configuration for the local SQLite database file.
func DefaultConfig() Config {
	return Config{
		Driver: DriverSQLite,
		Path:   "FlightManagement.db",
		Postgres: PostgresConfig{
			Host:     "localhost",
			Port:     5432,
			Database: "flight_roster",
			User:     "flight_roster",
			Password: "flight_roster",
		},
	}
}

// DB wraps the single long-lived connection shared by all roster operations.
type DB struct {
	db      *sql.DB
	dialect *dialect
}

// Open opens the database selected by cfg.Driver.
func Open(ctx context.Context, cfg Config) (*DB, error) {
	switch cfg.Driver {
	case DriverSQLite, "":
		return OpenSQLite(cfg.Path)
	case DriverSQLite3:
		return OpenSQLite3(cfg.Path)
	case DriverPostgres:
		return OpenPostgres(ctx, cfg.Postgres)
	default:
		return nil, fmt.Errorf("unknown driver %q", cfg.Driver)
	}
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Driver reports which backend this database was opened with.
func (d *DB) Driver() Driver {
	return d.dialect.driver
}

// CreateSchema creates the pilot, airport and flight tables if absent.
func (d *DB) CreateSchema(ctx context.Context) error {
	for _, stmt := range d.dialect.schema {
		if _, err := d.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// Reset deletes every row from flight, pilot and airport (in that order) and
// restarts the id sequences.
func (d *DB) Reset(ctx context.Context) error {
	for _, stmt := range d.dialect.reset {
		if _, err := d.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
	}
	return nil
}

// ExecContext runs a mutating statement. Constraint violations come back as
// *ConstraintError.
func (d *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := d.db.ExecContext(ctx, d.dialect.rebind(query), args...)
	if err != nil {
		return nil, classify(err)
	}
	return res, nil
}

// InsertReturningID runs an INSERT and returns the generated id column.
// Postgres has no LastInsertId, so the statement gets a RETURNING clause there.
func (d *DB) InsertReturningID(ctx context.Context, query string, args ...any) (int64, error) {
	if d.dialect.returning {
		var id int64
		err := d.db.QueryRowContext(ctx, d.dialect.rebind(query)+" RETURNING id", args...).Scan(&id)
		if err != nil {
			return 0, classify(err)
		}
		return id, nil
	}
	res, err := d.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// QueryContext runs a query returning rows.
func (d *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return d.db.QueryContext(ctx, d.dialect.rebind(query), args...)
}

// QueryRowContext runs a query expected to return at most one row.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return d.db.QueryRowContext(ctx, d.dialect.rebind(query), args...)
}
