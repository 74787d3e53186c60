package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/stdlib"
)

// SQLSTATE codes for integrity constraint violations (class 23).
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

func init() {
	registerClassifier(classifyPostgres)
}

// PostgresConfig holds PostgreSQL connection settings.
type PostgresConfig struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
}

// ConnString renders the configuration as a postgres:// URL.
func (c PostgresConfig) ConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.Database)
}

// OpenPostgres opens a PostgreSQL database through pgx's database/sql adapter
// so the roster queries run unchanged apart from placeholder style.
func OpenPostgres(ctx context.Context, cfg PostgresConfig) (*DB, error) {
	connCfg, err := pgx.ParseConfig(cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}

	db := stdlib.OpenDB(*connCfg)
	db.SetMaxOpenConns(1)

	// Test the connection.
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &DB{db: db, dialect: &dialect{
		driver:    DriverPostgres,
		schema:    postgresSchema,
		reset:     postgresReset,
		dollar:    true,
		returning: true,
	}}, nil
}

func classifyPostgres(err error) (ConstraintKind, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || !strings.HasPrefix(pgErr.Code, "23") {
		return ConstraintUnknown, false
	}
	switch pgErr.Code {
	case pgNotNullViolation:
		return ConstraintNotNull, true
	case pgForeignKeyViolation:
		return ConstraintForeignKey, true
	case pgUniqueViolation:
		if strings.HasSuffix(pgErr.ConstraintName, "_pkey") {
			return ConstraintPrimaryKey, true
		}
		return ConstraintUnique, true
	case pgCheckViolation:
		return ConstraintCheck, true
	}
	return ConstraintUnknown, true
}
