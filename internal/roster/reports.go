package roster

import (
	"context"
	"database/sql"
	"fmt"
)

// FlightsByStatus lists flights whose status equals the title-cased input,
// ordered by departure date and time. An unknown status gives an empty list.
func (r *Registry) FlightsByStatus(ctx context.Context, status string) ([]StatusFlight, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			f.id,
			f.flight_number,
			COALESCE(p.first_name || ' ' || p.last_name, 'Unassigned'),
			o.city,
			d.city,
			f.departure_date,
			f.departure_time,
			f.arrival_date,
			f.arrival_time,
			f.status
		FROM flight f
		LEFT JOIN pilot p ON f.pilot_id = p.id
		JOIN airport o ON f.departure_airport = o.code
		JOIN airport d ON f.arrival_airport = d.code
		WHERE f.status = ?
		ORDER BY f.departure_date, f.departure_time, f.id
	`, string(NormalizeStatus(status)))
	if err != nil {
		return nil, fmt.Errorf("query flights by status: %w", err)
	}
	defer func() { _ = rows.Close() }()

	flights := []StatusFlight{}
	for rows.Next() {
		var f StatusFlight
		if err := rows.Scan(&f.ID, &f.Number, &f.Pilot, &f.DepartureCity, &f.ArrivalCity,
			&f.DepartureDate, &f.DepartureTime, &f.ArrivalDate, &f.ArrivalTime, &f.Status); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

// PilotName returns "First Last" for the pilot id. The bool is false when no
// pilot has that id.
func (r *Registry) PilotName(ctx context.Context, pilotID int64) (string, bool, error) {
	var p Pilot
	err := r.db.QueryRowContext(ctx,
		`SELECT first_name, last_name FROM pilot WHERE id = ?`, pilotID,
	).Scan(&p.FirstName, &p.LastName)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query pilot: %w", err)
	}
	return p.Name(), true, nil
}

// PilotFlights lists the flights referencing pilotID, ordered by departure
// date and time.
func (r *Registry) PilotFlights(ctx context.Context, pilotID int64) ([]ScheduledFlight, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			f.id,
			f.flight_number,
			f.departure_date,
			f.departure_time,
			f.arrival_date,
			f.arrival_time,
			o.city,
			d.city,
			f.status
		FROM flight f
		JOIN airport o ON f.departure_airport = o.code
		JOIN airport d ON f.arrival_airport = d.code
		WHERE f.pilot_id = ?
		ORDER BY f.departure_date, f.departure_time, f.id
	`, pilotID)
	if err != nil {
		return nil, fmt.Errorf("query pilot flights: %w", err)
	}
	defer func() { _ = rows.Close() }()

	flights := []ScheduledFlight{}
	for rows.Next() {
		var f ScheduledFlight
		if err := rows.Scan(&f.ID, &f.Number, &f.DepartureDate, &f.DepartureTime,
			&f.ArrivalDate, &f.ArrivalTime, &f.DepartureCity, &f.ArrivalCity, &f.Status); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

// PilotSchedule combines PilotName and PilotFlights. The two lookups are
// independent: an unknown pilot still gets whatever flights reference the id.
func (r *Registry) PilotSchedule(ctx context.Context, pilotID int64) (*Schedule, error) {
	name, known, err := r.PilotName(ctx, pilotID)
	if err != nil {
		return nil, err
	}
	if !known {
		name = UnknownPilot
	}

	flights, err := r.PilotFlights(ctx, pilotID)
	if err != nil {
		return nil, err
	}

	return &Schedule{
		PilotID:   pilotID,
		PilotName: name,
		Known:     known,
		Flights:   flights,
	}, nil
}

// AllFlights lists every flight with its pilot and both cities, by id.
func (r *Registry) AllFlights(ctx context.Context) ([]FlightDetail, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			f.id,
			f.flight_number,
			f.pilot_id,
			COALESCE(p.first_name || ' ' || p.last_name, 'Unassigned'),
			o.city,
			d.city,
			f.status
		FROM flight f
		LEFT JOIN pilot p ON f.pilot_id = p.id
		JOIN airport o ON f.departure_airport = o.code
		JOIN airport d ON f.arrival_airport = d.code
		ORDER BY f.id
	`)
	if err != nil {
		return nil, fmt.Errorf("query flights: %w", err)
	}
	defer func() { _ = rows.Close() }()

	flights := []FlightDetail{}
	for rows.Next() {
		var f FlightDetail
		var pilotID sql.NullInt64
		if err := rows.Scan(&f.ID, &f.Number, &pilotID, &f.Pilot,
			&f.DepartureCity, &f.ArrivalCity, &f.Status); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if pilotID.Valid {
			f.PilotID = &pilotID.Int64
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

// DestinationSummary counts flights per arrival city, busiest first.
func (r *Registry) DestinationSummary(ctx context.Context) ([]CityCount, error) {
	return r.countByArrivalCity(ctx)
}

// FlightCountByDestination counts flights per arrival city, busiest first.
// It reports the same figures as DestinationSummary.
func (r *Registry) FlightCountByDestination(ctx context.Context) ([]CityCount, error) {
	return r.countByArrivalCity(ctx)
}

func (r *Registry) countByArrivalCity(ctx context.Context) ([]CityCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT d.city, COUNT(f.id) AS total
		FROM flight f
		JOIN airport d ON f.arrival_airport = d.code
		GROUP BY d.city
		ORDER BY total DESC, d.city
	`)
	if err != nil {
		return nil, fmt.Errorf("query destination counts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := []CityCount{}
	for rows.Next() {
		var c CityCount
		if err := rows.Scan(&c.City, &c.Flights); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// FlightsPerPilot counts flights per pilot reference, busiest first.
// Unassigned flights form their own group with a nil PilotID.
func (r *Registry) FlightsPerPilot(ctx context.Context) ([]PilotCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			f.pilot_id,
			COALESCE(p.first_name || ' ' || p.last_name, 'Unassigned'),
			COUNT(f.id) AS total
		FROM flight f
		LEFT JOIN pilot p ON f.pilot_id = p.id
		GROUP BY f.pilot_id, p.first_name, p.last_name
		ORDER BY total DESC, f.pilot_id IS NULL, f.pilot_id
	`)
	if err != nil {
		return nil, fmt.Errorf("query flights per pilot: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := []PilotCount{}
	for rows.Next() {
		var c PilotCount
		var pilotID sql.NullInt64
		if err := rows.Scan(&pilotID, &c.Pilot, &c.Flights); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if pilotID.Valid {
			c.PilotID = &pilotID.Int64
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// CityFlights returns the count for one city from a destination report, or
// zero if the city has no arrivals.
func CityFlights(counts []CityCount, city string) int {
	for _, c := range counts {
		if c.City == city {
			return c.Flights
		}
	}
	return 0
}
