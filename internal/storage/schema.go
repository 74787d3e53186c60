package storage

import (
	"strconv"
	"strings"
)

// dialect captures what differs between the SQLite and Postgres backends.
type dialect struct {
	driver    Driver
	schema    []string
	reset     []string
	dollar    bool // Postgres-style $n placeholders.
	returning bool // INSERT ... RETURNING instead of LastInsertId.
}

// rebind rewrites ? placeholders into $1, $2, ... for dialects that need it.
func (d *dialect) rebind(query string) string {
	if !d.dollar || !strings.Contains(query, "?") {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Dates and times are TEXT: both SQLite drivers turn DATE/DATETIME columns
// into time.Time on scan, which would not round-trip the stored text.
var sqliteSchema = []string{`
CREATE TABLE IF NOT EXISTS pilot (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	first_name TEXT NOT NULL,
	last_name  TEXT NOT NULL,
	email      TEXT,
	phone      TEXT
)`, `
CREATE TABLE IF NOT EXISTS airport (
	code    TEXT PRIMARY KEY,
	name    TEXT NOT NULL,
	city    TEXT NOT NULL,
	country TEXT NOT NULL
)`, `
CREATE TABLE IF NOT EXISTS flight (
	id                INTEGER PRIMARY KEY AUTOINCREMENT,
	flight_number     TEXT NOT NULL,
	pilot_id          INTEGER REFERENCES pilot(id),
	departure_airport TEXT NOT NULL REFERENCES airport(code),
	arrival_airport   TEXT NOT NULL REFERENCES airport(code),
	departure_date    TEXT NOT NULL,
	departure_time    TEXT NOT NULL,
	arrival_date      TEXT NOT NULL,
	arrival_time      TEXT NOT NULL,
	status            TEXT NOT NULL CHECK (status IN
		('Scheduled', 'Departed', 'Delayed', 'Cancelled', 'Completed'))
)`,
	`CREATE INDEX IF NOT EXISTS idx_flight_number_date ON flight(flight_number, departure_date)`,
	`CREATE INDEX IF NOT EXISTS idx_flight_pilot ON flight(pilot_id)`,
	`CREATE INDEX IF NOT EXISTS idx_flight_status ON flight(status)`,
}

var sqliteReset = []string{
	`DELETE FROM flight`,
	`DELETE FROM pilot`,
	`DELETE FROM airport`,
	`DELETE FROM sqlite_sequence WHERE name IN ('flight', 'pilot')`,
}

var postgresSchema = []string{`
CREATE TABLE IF NOT EXISTS pilot (
	id         BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	first_name TEXT NOT NULL,
	last_name  TEXT NOT NULL,
	email      TEXT,
	phone      TEXT
)`, `
CREATE TABLE IF NOT EXISTS airport (
	code    TEXT PRIMARY KEY,
	name    TEXT NOT NULL,
	city    TEXT NOT NULL,
	country TEXT NOT NULL
)`, `
CREATE TABLE IF NOT EXISTS flight (
	id                BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	flight_number     TEXT NOT NULL,
	pilot_id          BIGINT REFERENCES pilot(id),
	departure_airport TEXT NOT NULL REFERENCES airport(code),
	arrival_airport   TEXT NOT NULL REFERENCES airport(code),
	departure_date    TEXT NOT NULL,
	departure_time    TEXT NOT NULL,
	arrival_date      TEXT NOT NULL,
	arrival_time      TEXT NOT NULL,
	status            TEXT NOT NULL CHECK (status IN
		('Scheduled', 'Departed', 'Delayed', 'Cancelled', 'Completed'))
)`,
	`CREATE INDEX IF NOT EXISTS idx_flight_number_date ON flight(flight_number, departure_date)`,
	`CREATE INDEX IF NOT EXISTS idx_flight_pilot ON flight(pilot_id)`,
	`CREATE INDEX IF NOT EXISTS idx_flight_status ON flight(status)`,
}

var postgresReset = []string{
	`TRUNCATE flight, pilot, airport RESTART IDENTITY`,
}
