package roster

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"strconv"

	"flight_roster/internal/storage"
)

// Registry runs roster operations against an injected database. Integrity
// rules (foreign keys, the status CHECK, required fields) are enforced by the
// store; violations surface as *storage.ConstraintError.
type Registry struct {
	db     *storage.DB
	logger *log.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used to record committed mutations.
func WithLogger(l *log.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a Registry over db.
func New(db *storage.DB, opts ...Option) *Registry {
	r := &Registry{
		db:     db,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddPilot inserts a pilot and returns the assigned id.
func (r *Registry) AddPilot(ctx context.Context, p NewPilot) (int64, error) {
	id, err := r.db.InsertReturningID(ctx, `
		INSERT INTO pilot (first_name, last_name, email, phone)
		VALUES (?, ?, ?, ?)
	`, nullText(p.FirstName), nullText(p.LastName), nullText(p.Email), nullText(p.Phone))
	if err != nil {
		return 0, fmt.Errorf("add pilot: %w", err)
	}
	r.logger.Printf("pilot %d added (%s %s)", id, p.FirstName, p.LastName)
	return id, nil
}

// AddFlight inserts a flight and returns the assigned id. The status is stored
// as given; an unknown status, airport code or pilot id is rejected by the
// store and nothing is inserted.
func (r *Registry) AddFlight(ctx context.Context, f NewFlight) (int64, error) {
	id, err := r.db.InsertReturningID(ctx, `
		INSERT INTO flight (
			flight_number, pilot_id, departure_airport, arrival_airport,
			departure_date, departure_time, arrival_date, arrival_time,
			status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, nullText(f.Number), nullableID(f.PilotID), nullText(f.DepartureAirport), nullText(f.ArrivalAirport),
		nullText(f.DepartureDate), nullText(f.DepartureTime), nullText(f.ArrivalDate), nullText(f.ArrivalTime),
		nullText(string(f.Status)))
	if err != nil {
		return 0, fmt.Errorf("add flight: %w", err)
	}
	r.logger.Printf("flight %d added (%s %s)", id, f.Number, f.DepartureDate)
	return id, nil
}

// UpdateStatus overwrites the status of the flight with the given id. The new
// value is not checked against the closed set here, and a missing id is not
// an error: zero rows change and nil is returned.
func (r *Registry) UpdateStatus(ctx context.Context, flightID int64, status string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE flight SET status = ? WHERE id = ?`, status, flightID)
	if err != nil {
		return fmt.Errorf("update flight status: %w", err)
	}
	r.logger.Printf("flight %d status -> %s", flightID, status)
	return nil
}

// AssignPilot sets the pilot of a flight. An unknown pilot id fails with a
// foreign-key violation; an unknown flight id changes nothing.
func (r *Registry) AssignPilot(ctx context.Context, flightID, pilotID int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE flight SET pilot_id = ? WHERE id = ?`, pilotID, flightID)
	if err != nil {
		return fmt.Errorf("assign pilot: %w", err)
	}
	r.logger.Printf("flight %d pilot -> %d", flightID, pilotID)
	return nil
}

// UnassignPilot clears the pilot of a flight.
func (r *Registry) UnassignPilot(ctx context.Context, flightID int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE flight SET pilot_id = NULL WHERE id = ?`, flightID)
	if err != nil {
		return fmt.Errorf("unassign pilot: %w", err)
	}
	r.logger.Printf("flight %d pilot cleared", flightID)
	return nil
}

// AddAirport inserts an airport. A duplicate code fails with a primary-key
// violation.
func (r *Registry) AddAirport(ctx context.Context, a Airport) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO airport (code, name, city, country)
		VALUES (?, ?, ?, ?)
	`, nullText(a.Code), nullText(a.Name), nullText(a.City), nullText(a.Country))
	if err != nil {
		return fmt.Errorf("add airport: %w", err)
	}
	r.logger.Printf("airport %s added (%s)", a.Code, a.City)
	return nil
}

// FindFlight returns the first flight matching number and departure date
// exactly, or nil if none does. When several flights share the pair, which
// one comes back is up to the store.
func (r *Registry) FindFlight(ctx context.Context, number, departureDate string) (*FlightRef, error) {
	var f FlightRef
	err := r.db.QueryRowContext(ctx, `
		SELECT id, flight_number, departure_date, status
		FROM flight
		WHERE flight_number = ? AND departure_date = ?
		LIMIT 1
	`, number, departureDate).Scan(&f.ID, &f.Number, &f.DepartureDate, &f.Status)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find flight: %w", err)
	}
	return &f, nil
}

// DeleteFlight deletes the flight with the given id.
func (r *Registry) DeleteFlight(ctx context.Context, flightID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM flight WHERE id = ?`, flightID)
	if err != nil {
		return fmt.Errorf("delete flight: %w", err)
	}
	r.logger.Printf("flight %d deleted", flightID)
	return nil
}

// DeleteByNumberDate looks up a flight by number and departure date, asks
// confirm about the first match and deletes exactly that row if confirm
// returns true. A nil confirm deletes without asking.
//
// The pair is not unique: with several matches only one row is removed.
func (r *Registry) DeleteByNumberDate(ctx context.Context, number, departureDate string, confirm func(FlightRef) bool) (DeleteOutcome, error) {
	f, err := r.FindFlight(ctx, number, departureDate)
	if err != nil {
		return DeleteNotFound, err
	}
	if f == nil {
		return DeleteNotFound, nil
	}
	if confirm != nil && !confirm(*f) {
		return DeleteCancelled, nil
	}
	if err := r.DeleteFlight(ctx, f.ID); err != nil {
		return DeleteNotFound, err
	}
	return Deleted, nil
}

// nullText stores an empty field as NULL, so a missing required field trips
// the store's NOT NULL constraint and a missing optional one stays absent.
func nullText(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}

func formatID(id *int64) string {
	if id == nil {
		return NoPilotID
	}
	return strconv.FormatInt(*id, 10)
}
