// Package seed loads the illustrative London-based roster used for demos and
// end-to-end tests.
package seed

import (
	"context"
	"fmt"

	"flight_roster/internal/roster"
	"flight_roster/internal/storage"
)

// Airports are the seeded airports (domestic and international routes).
var Airports = []roster.Airport{
	{Code: "LHR", Name: "Heathrow Airport", City: "London", Country: "UK"},
	{Code: "LGW", Name: "Gatwick Airport", City: "London", Country: "UK"},
	{Code: "MAN", Name: "Manchester Airport", City: "Manchester", Country: "UK"},
	{Code: "EDI", Name: "Edinburgh Airport", City: "Edinburgh", Country: "UK"},
	{Code: "BFS", Name: "Belfast International Airport", City: "Belfast", Country: "UK"},
	{Code: "GLA", Name: "Glasgow Airport", City: "Glasgow", Country: "UK"},
	{Code: "JFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "USA"},
	{Code: "CDG", Name: "Charles de Gaulle Airport", City: "Paris", Country: "France"},
	{Code: "AMS", Name: "Amsterdam Schiphol Airport", City: "Amsterdam", Country: "Netherlands"},
	{Code: "DXB", Name: "Dubai International Airport", City: "Dubai", Country: "UAE"},
	{Code: "FRA", Name: "Frankfurt Main Airport", City: "Frankfurt", Country: "Germany"},
	{Code: "MAD", Name: "Adolfo Suárez Madrid–Barajas Airport", City: "Madrid", Country: "Spain"},
	{Code: "HKG", Name: "Hong Kong International Airport", City: "Hong Kong", Country: "Hong Kong"},
	{Code: "NRT", Name: "Narita International Airport", City: "Tokyo", Country: "Japan"},
	{Code: "SIN", Name: "Changi Airport", City: "Singapore", Country: "Singapore"},
}

// Pilots are the seeded pilots. After a reset they receive ids 1..10 in order.
var Pilots = []roster.NewPilot{
	{FirstName: "Emma", LastName: "Thompson", Email: "emma.thompson@example.com", Phone: "+447911123456"},
	{FirstName: "James", LastName: "Wilson", Email: "james.wilson@example.com", Phone: "+447912345678"},
	{FirstName: "Sophie", LastName: "Davies", Email: "sophie.davies@example.com", Phone: "+447913456789"},
	{FirstName: "Thomas", LastName: "Harris", Email: "thomas.harris@example.com", Phone: "+447914567890"},
	{FirstName: "Olivia", LastName: "Clark", Email: "olivia.clark@example.com", Phone: "+447915678901"},
	{FirstName: "William", LastName: "Lewis", Email: "william.lewis@example.com", Phone: "+447916789012"},
	{FirstName: "Charlotte", LastName: "Walker", Email: "charlotte.walker@example.com", Phone: "+447917890123"},
	{FirstName: "Daniel", LastName: "Hall", Email: "daniel.hall@example.com", Phone: "+447918901234"},
	{FirstName: "Amelia", LastName: "Green", Email: "amelia.green@example.com", Phone: "+447919012345"},
	{FirstName: "George", LastName: "Adams", Email: "george.adams@example.com", Phone: "+447920123456"},
}

// flightRow is a seeded flight whose pilot is given by position in Pilots
// (1-based), so the data does not depend on the ids the store hands out.
type flightRow struct {
	number, from, to string
	pilot            int
	depDate, depTime string
	arrDate, arrTime string
	status           roster.Status
}

// Some flight numbers recur on different days.
var flights = []flightRow{
	{"BA101", "LHR", "JFK", 1, "2025-10-10", "08:00", "2025-10-10", "11:30", roster.StatusScheduled},
	{"BA101", "LHR", "JFK", 2, "2025-10-11", "08:00", "2025-10-11", "11:30", roster.StatusScheduled},
	{"BA202", "LGW", "EDI", 5, "2025-10-11", "07:30", "2025-10-11", "09:00", roster.StatusDelayed},
	{"BA202", "LGW", "EDI", 6, "2025-10-12", "07:30", "2025-10-12", "09:00", roster.StatusScheduled},
	{"BA303", "LHR", "CDG", 8, "2025-10-12", "10:15", "2025-10-12", "12:30", roster.StatusScheduled},
	{"BA404", "LHR", "MAN", 9, "2025-10-13", "06:45", "2025-10-13", "07:45", roster.StatusDeparted},
	{"BA505", "LHR", "DXB", 3, "2025-10-13", "13:00", "2025-10-13", "23:00", roster.StatusScheduled},
	{"BA606", "LGW", "BFS", 4, "2025-10-14", "08:30", "2025-10-14", "09:45", roster.StatusScheduled},
	{"BA707", "LHR", "HKG", 5, "2025-10-14", "18:00", "2025-10-15", "13:30", roster.StatusScheduled},
	{"BA808", "LHR", "GLA", 6, "2025-10-15", "09:00", "2025-10-15", "10:30", roster.StatusScheduled},
	{"BA909", "LHR", "AMS", 10, "2025-10-15", "11:00", "2025-10-15", "13:15", roster.StatusCancelled},
	{"BA1010", "LHR", "NRT", 7, "2025-10-16", "12:00", "2025-10-17", "08:00", roster.StatusScheduled},
	{"BA1111", "LHR", "FRA", 8, "2025-10-16", "14:30", "2025-10-16", "17:00", roster.StatusScheduled},
	{"BA1212", "LGW", "MAD", 9, "2025-10-17", "07:00", "2025-10-17", "10:30", roster.StatusScheduled},
	{"BA1313", "LHR", "SIN", 10, "2025-10-17", "15:45", "2025-10-18", "11:30", roster.StatusScheduled},
}

// Counts reports how many rows of each kind were loaded.
type Counts struct {
	Airports int
	Pilots   int
	Flights  int
}

// Load creates the schema if needed, clears flight, pilot and airport, and
// inserts the sample dataset through the registry.
func Load(ctx context.Context, db *storage.DB, reg *roster.Registry) (Counts, error) {
	var c Counts

	if err := db.CreateSchema(ctx); err != nil {
		return c, err
	}
	if err := db.Reset(ctx); err != nil {
		return c, err
	}

	for _, a := range Airports {
		if err := reg.AddAirport(ctx, a); err != nil {
			return c, fmt.Errorf("seed airport %s: %w", a.Code, err)
		}
		c.Airports++
	}

	pilotIDs := make([]int64, 0, len(Pilots))
	for _, p := range Pilots {
		id, err := reg.AddPilot(ctx, p)
		if err != nil {
			return c, fmt.Errorf("seed pilot %s %s: %w", p.FirstName, p.LastName, err)
		}
		pilotIDs = append(pilotIDs, id)
		c.Pilots++
	}

	for _, f := range flights {
		pilotID := pilotIDs[f.pilot-1]
		_, err := reg.AddFlight(ctx, roster.NewFlight{
			Number:           f.number,
			PilotID:          &pilotID,
			DepartureAirport: f.from,
			ArrivalAirport:   f.to,
			DepartureDate:    f.depDate,
			DepartureTime:    f.depTime,
			ArrivalDate:      f.arrDate,
			ArrivalTime:      f.arrTime,
			Status:           f.status,
		})
		if err != nil {
			return c, fmt.Errorf("seed flight %s %s: %w", f.number, f.depDate, err)
		}
		c.Flights++
	}

	return c, nil
}
