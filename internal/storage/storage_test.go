package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.CreateSchema(context.Background()))
	return db
}

func insertAirport(t *testing.T, db *DB, code, city string) {
	t.Helper()
	_, err := db.ExecContext(context.Background(),
		`INSERT INTO airport (code, name, city, country) VALUES (?, ?, ?, ?)`,
		code, code+" Airport", city, "UK")
	require.NoError(t, err)
}

const insertFlight = `
	INSERT INTO flight (flight_number, pilot_id, departure_airport, arrival_airport,
		departure_date, departure_time, arrival_date, arrival_time, status)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

func TestCreateSchemaIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.CreateSchema(context.Background()))
	assert.Equal(t, DriverSQLite, db.Driver())
}

func TestConstraintClassification(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	insertAirport(t, db, "LHR", "London")
	insertAirport(t, db, "JFK", "New York")

	tests := []struct {
		name string
		args []any
		want ConstraintKind
	}{
		{
			name: "status outside closed set",
			args: []any{"BA101", nil, "LHR", "JFK", "2025-10-10", "08:00", "2025-10-10", "11:30", "Boarding"},
			want: ConstraintCheck,
		},
		{
			name: "unknown arrival airport",
			args: []any{"BA101", nil, "LHR", "XXX", "2025-10-10", "08:00", "2025-10-10", "11:30", "Scheduled"},
			want: ConstraintForeignKey,
		},
		{
			name: "unknown pilot",
			args: []any{"BA101", 42, "LHR", "JFK", "2025-10-10", "08:00", "2025-10-10", "11:30", "Scheduled"},
			want: ConstraintForeignKey,
		},
		{
			name: "missing flight number",
			args: []any{nil, nil, "LHR", "JFK", "2025-10-10", "08:00", "2025-10-10", "11:30", "Scheduled"},
			want: ConstraintNotNull,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := db.ExecContext(ctx, insertFlight, tt.args...)
			require.Error(t, err)
			require.True(t, IsConstraint(err), "expected constraint error, got %v", err)

			kind, ok := ConstraintKindOf(err)
			require.True(t, ok)
			assert.Equal(t, tt.want, kind)

			var count int
			require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM flight`).Scan(&count))
			assert.Zero(t, count)
		})
	}
}

func TestDuplicateAirportCode(t *testing.T) {
	db := openTestDB(t)
	insertAirport(t, db, "LHR", "London")

	_, err := db.ExecContext(context.Background(),
		`INSERT INTO airport (code, name, city, country) VALUES (?, ?, ?, ?)`,
		"LHR", "Other", "London", "UK")
	require.Error(t, err)

	kind, ok := ConstraintKindOf(err)
	require.True(t, ok)
	assert.Contains(t, []ConstraintKind{ConstraintPrimaryKey, ConstraintUnique}, kind)
}

func TestNonConstraintErrorPassesThrough(t *testing.T) {
	db := openTestDB(t)

	_, err := db.ExecContext(context.Background(), `INSERT INTO no_such_table VALUES (1)`)
	require.Error(t, err)
	assert.False(t, IsConstraint(err))
	assert.Nil(t, classify(nil))
}

func TestResetRestartsSequences(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	first, err := db.InsertReturningID(ctx,
		`INSERT INTO pilot (first_name, last_name) VALUES (?, ?)`, "Emma", "Thompson")
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	require.NoError(t, db.Reset(ctx))

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pilot`).Scan(&count))
	assert.Zero(t, count)

	again, err := db.InsertReturningID(ctx,
		`INSERT INTO pilot (first_name, last_name) VALUES (?, ?)`, "James", "Wilson")
	require.NoError(t, err)
	assert.Equal(t, int64(1), again)
}

func TestRebind(t *testing.T) {
	pg := &dialect{dollar: true}
	lite := &dialect{}

	q := `UPDATE flight SET status = ? WHERE id = ?`
	assert.Equal(t, `UPDATE flight SET status = $1 WHERE id = $2`, pg.rebind(q))
	assert.Equal(t, q, lite.rebind(q))
	assert.Equal(t, `SELECT 1`, pg.rebind(`SELECT 1`))
}

func TestConstraintErrorUnwrap(t *testing.T) {
	cause := errors.New("FOREIGN KEY constraint failed")
	err := &ConstraintError{Kind: ConstraintForeignKey, Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "FOREIGN KEY constraint failed: FOREIGN KEY constraint failed", err.Error())
	assert.Equal(t, ConstraintCheck, kindFromMessage("CHECK constraint failed: status"))
	assert.Equal(t, ConstraintUnknown, kindFromMessage("something else"))
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), Config{Driver: "oracle"})
	assert.Error(t, err)
}
