package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flight_roster/internal/roster"
	"flight_roster/internal/storage"
)

func loadSeed(t *testing.T) (*roster.Registry, *storage.DB) {
	t.Helper()

	db, err := storage.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	reg := roster.New(db)
	counts, err := Load(context.Background(), db, reg)
	require.NoError(t, err)
	assert.Equal(t, Counts{Airports: 15, Pilots: 10, Flights: 15}, counts)
	return reg, db
}

func TestLoadIsRepeatable(t *testing.T) {
	reg, db := loadSeed(t)
	ctx := context.Background()

	counts, err := Load(ctx, db, reg)
	require.NoError(t, err)
	assert.Equal(t, Counts{Airports: 15, Pilots: 10, Flights: 15}, counts)

	name, ok, err := reg.PilotName(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Emma Thompson", name)
}

func TestSeedFlightsPerPilot(t *testing.T) {
	reg, _ := loadSeed(t)

	counts, err := reg.FlightsPerPilot(context.Background())
	require.NoError(t, err)

	var olivia *roster.PilotCount
	for i := range counts {
		if counts[i].PilotID != nil && *counts[i].PilotID == 5 {
			olivia = &counts[i]
		}
	}
	require.NotNil(t, olivia, "pilot 5 missing from %v", counts)
	assert.Equal(t, "Olivia Clark", olivia.Pilot)
	assert.Equal(t, 2, olivia.Flights)

	schedule, err := reg.PilotSchedule(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, schedule.Flights, 2)
	assert.Equal(t, "BA202", schedule.Flights[0].Number)
	assert.Equal(t, "2025-10-11", schedule.Flights[0].DepartureDate)
	assert.Equal(t, "BA707", schedule.Flights[1].Number)
	assert.Equal(t, "2025-10-14", schedule.Flights[1].DepartureDate)
}

func TestSeedFlightCountByDestination(t *testing.T) {
	reg, _ := loadSeed(t)

	counts, err := reg.FlightCountByDestination(context.Background())
	require.NoError(t, err)

	// Nothing arrives in London; both BA101 rotations arrive at JFK.
	assert.Zero(t, roster.CityFlights(counts, "London"))
	assert.Equal(t, 2, roster.CityFlights(counts, "New York"))
	assert.Equal(t, 2, roster.CityFlights(counts, "Edinburgh"))
	assert.Equal(t, 1, roster.CityFlights(counts, "Paris"))

	// Ties are broken by city name.
	require.Len(t, counts, 13)
	assert.Equal(t, roster.CityCount{City: "Edinburgh", Flights: 2}, counts[0])
	assert.Equal(t, roster.CityCount{City: "New York", Flights: 2}, counts[1])
	assert.Equal(t, roster.CityCount{City: "Amsterdam", Flights: 1}, counts[2])
}

func TestSeedCancelledFlights(t *testing.T) {
	reg, _ := loadSeed(t)

	got, err := reg.FlightsByStatus(context.Background(), "Cancelled")
	require.NoError(t, err)
	require.Len(t, got, 1)

	f := got[0]
	assert.Equal(t, "BA909", f.Number)
	assert.Equal(t, "London", f.DepartureCity)
	assert.Equal(t, "Amsterdam", f.ArrivalCity)
	assert.Equal(t, "2025-10-15", f.DepartureDate)
	assert.Equal(t, "George Adams", f.Pilot)
}

func TestSeedDeleteRecurringNumber(t *testing.T) {
	reg, db := loadSeed(t)
	ctx := context.Background()

	out, err := reg.DeleteByNumberDate(ctx, "BA101", "2025-10-11", nil)
	require.NoError(t, err)
	assert.Equal(t, roster.Deleted, out)

	// The same number on the previous day is untouched.
	other, err := reg.FindFlight(ctx, "BA101", "2025-10-10")
	require.NoError(t, err)
	require.NotNil(t, other)

	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM flight`).Scan(&n))
	assert.Equal(t, 14, n)
}
