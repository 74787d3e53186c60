package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

func init() {
	registerClassifier(classifyModernc)
}

// OpenSQLite opens or creates a SQLite database at the given path using the
// pure-Go driver. Use ":memory:" for a throwaway database.
func OpenSQLite(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := configureSQLite(db, path); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &DB{db: db, dialect: sqliteDialect(DriverSQLite)}, nil
}

func sqliteDialect(driver Driver) *dialect {
	return &dialect{
		driver: driver,
		schema: sqliteSchema,
		reset:  sqliteReset,
	}
}

// configureSQLite pins the pool to one connection and enables foreign keys
// on it. SQLite only enforces foreign keys per connection, and every
// ":memory:" connection is a separate database.
func configureSQLite(db *sql.DB, path string) error {
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("enable foreign keys: %w", err)
	}

	if path != ":memory:" && path != "" {
		// Enable WAL mode for durable commits without blocking readers.
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			return fmt.Errorf("enable WAL: %w", err)
		}
	}
	return nil
}

func classifyModernc(err error) (ConstraintKind, bool) {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return ConstraintUnknown, false
	}
	code := se.Code()
	if code&0xff != sqlite3.SQLITE_CONSTRAINT {
		return ConstraintUnknown, false
	}
	switch code {
	case sqlite3.SQLITE_CONSTRAINT_CHECK:
		return ConstraintCheck, true
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return ConstraintForeignKey, true
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return ConstraintPrimaryKey, true
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return ConstraintUnique, true
	case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
		return ConstraintNotNull, true
	}
	return kindFromMessage(se.Error()), true
}

// kindFromMessage recovers the constraint kind from SQLite's error text when
// only the primary result code is available.
func kindFromMessage(msg string) ConstraintKind {
	switch {
	case strings.Contains(msg, "CHECK constraint"):
		return ConstraintCheck
	case strings.Contains(msg, "FOREIGN KEY constraint"):
		return ConstraintForeignKey
	case strings.Contains(msg, "NOT NULL constraint"):
		return ConstraintNotNull
	case strings.Contains(msg, "UNIQUE constraint"):
		return ConstraintUnique
	}
	return ConstraintUnknown
}
