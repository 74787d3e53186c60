//go:build cgo

package storage

import (
	"database/sql"
	"errors"
	"fmt"

	sqlite3 "github.com/mattn/go-sqlite3"
)

func init() {
	registerClassifier(classifyMattn)
}

// OpenSQLite3 opens or creates a SQLite database through the cgo driver.
func OpenSQLite3(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := configureSQLite(db, path); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &DB{db: db, dialect: sqliteDialect(DriverSQLite3)}, nil
}

func classifyMattn(err error) (ConstraintKind, bool) {
	var se sqlite3.Error
	if !errors.As(err, &se) || se.Code != sqlite3.ErrConstraint {
		return ConstraintUnknown, false
	}
	switch se.ExtendedCode {
	case sqlite3.ErrConstraintCheck:
		return ConstraintCheck, true
	case sqlite3.ErrConstraintForeignKey:
		return ConstraintForeignKey, true
	case sqlite3.ErrConstraintPrimaryKey:
		return ConstraintPrimaryKey, true
	case sqlite3.ErrConstraintUnique:
		return ConstraintUnique, true
	case sqlite3.ErrConstraintNotNull:
		return ConstraintNotNull, true
	}
	return kindFromMessage(se.Error()), true
}
