package menu

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flight_roster/internal/roster"
	"flight_roster/internal/seed"
	"flight_roster/internal/storage"
)

func seededRegistry(t *testing.T) *roster.Registry {
	t.Helper()

	db, err := storage.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	reg := roster.New(db)
	_, err = seed.Load(context.Background(), db, reg)
	require.NoError(t, err)
	return reg
}

// session runs the menu against scripted input and returns everything it
// printed.
func session(t *testing.T, reg *roster.Registry, lines ...string) string {
	t.Helper()

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	require.NoError(t, New(reg, in, &out).Run(context.Background()))
	return out.String()
}

func TestRunExit(t *testing.T) {
	reg := seededRegistry(t)

	tests := []struct {
		name  string
		input []string
		want  string
	}{
		{"zero", []string{"0"}, "Thank you for using the Flight Management System."},
		{"decline return", []string{"8", "no"}, "Thank you for using the Flight Management System."},
		{"invalid choice", []string{"42", "no"}, "Invalid choice. Please enter a number between 0 and 12."},
		{"not a number", []string{"two", "no"}, "Invalid choice."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := session(t, reg, tt.input...)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestRunEndOfInput(t *testing.T) {
	reg := seededRegistry(t)

	var out bytes.Buffer
	err := New(reg, strings.NewReader(""), &out).Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Thank you for using the Flight Management System.")

	// Input ending mid-action is also a clean exit.
	out.Reset()
	err = New(reg, strings.NewReader("1\nBA999\n"), &out).Run(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "Flight added successfully!")
}

func TestRunReturnToMenu(t *testing.T) {
	reg := seededRegistry(t)

	out := session(t, reg, "8", "yes", "0")
	assert.Equal(t, 2, strings.Count(out, "Enter your choice (0-12): "))
	assert.Contains(t, out, "All Flights")
	assert.Contains(t, out, "BA909")
}

func TestAddFlightAction(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  string
		added bool
	}{
		{
			name:  "unassigned",
			input: []string{"1", "BA999", "", "LHR", "JFK", "2025-11-01", "09:00", "2025-11-01", "12:00", "Scheduled", "no"},
			want:  "Flight added successfully! (Flight ID 16)",
			added: true,
		},
		{
			name:  "with pilot",
			input: []string{"1", "BA998", "3", "LHR", "CDG", "2025-11-02", "07:00", "2025-11-02", "09:15", "Delayed", "no"},
			want:  "Flight added successfully!",
			added: true,
		},
		{
			name:  "unknown airport",
			input: []string{"1", "BA997", "", "LHR", "XXX", "2025-11-01", "09:00", "2025-11-01", "12:00", "Scheduled", "no"},
			want:  "Error adding flight:",
		},
		{
			name:  "bad status",
			input: []string{"1", "BA996", "", "LHR", "JFK", "2025-11-01", "09:00", "2025-11-01", "12:00", "Landed", "no"},
			want:  "Error adding flight:",
		},
		{
			name:  "unknown pilot",
			input: []string{"1", "BA995", "404", "LHR", "JFK", "2025-11-01", "09:00", "2025-11-01", "12:00", "Scheduled", "no"},
			want:  "Error adding flight:",
		},
		{
			name:  "non-integer pilot",
			input: []string{"1", "BA994", "abc", "no"},
			want:  `Invalid pilot ID "abc": must be an integer.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := seededRegistry(t)

			out := session(t, reg, tt.input...)
			assert.Contains(t, out, tt.want)

			all, err := reg.AllFlights(context.Background())
			require.NoError(t, err)
			if tt.added {
				assert.Len(t, all, 16)
			} else {
				assert.Len(t, all, 15)
			}
		})
	}
}

func TestFlightsByStatusAction(t *testing.T) {
	reg := seededRegistry(t)

	out := session(t, reg, "2", "cancelled", "no")
	assert.Contains(t, out, "Flights with Status: Cancelled")
	assert.Contains(t, out, "BA909")
	assert.Contains(t, out, "George Adams")

	out = session(t, reg, "2", "landed", "no")
	assert.Contains(t, out, "No flights found with status 'Landed'.")
}

func TestUpdateAndAssignActions(t *testing.T) {
	reg := seededRegistry(t)
	ctx := context.Background()

	out := session(t, reg, "3", "1", "Completed", "no")
	assert.Contains(t, out, "Flight status updated successfully!")

	out = session(t, reg, "3", "1", "Landed", "no")
	assert.Contains(t, out, "Error updating flight status:")

	out = session(t, reg, "3", "first", "no")
	assert.Contains(t, out, `Invalid flight ID "first": must be an integer.`)

	out = session(t, reg, "5", "1", "no")
	assert.Contains(t, out, "Pilot removed from flight successfully!")

	out = session(t, reg, "4", "1", "404", "no")
	assert.Contains(t, out, "Error assigning pilot:")

	out = session(t, reg, "4", "1", "2", "no")
	assert.Contains(t, out, "Pilot assigned to flight successfully!")

	all, err := reg.AllFlights(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, all)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, roster.StatusCompleted, all[0].Status)
	require.NotNil(t, all[0].PilotID)
	assert.Equal(t, int64(2), *all[0].PilotID)
}

func TestPilotScheduleAction(t *testing.T) {
	reg := seededRegistry(t)

	out := session(t, reg, "6", "5", "no")
	assert.Contains(t, out, "Flight Schedule for Pilot: Olivia Clark (ID: 5)")
	assert.Contains(t, out, "BA202")
	assert.Contains(t, out, "BA707")

	out = session(t, reg, "6", "99", "no")
	assert.Contains(t, out, "No flights assigned to pilot ID 99 (Unknown Pilot).")
}

func TestAddAirportAction(t *testing.T) {
	reg := seededRegistry(t)

	out := session(t, reg, "7", "OSL", "Oslo Gardermoen", "Oslo", "Norway", "no")
	assert.Contains(t, out, "Airport added successfully!")

	out = session(t, reg, "7", "OSL", "Oslo Gardermoen", "Oslo", "Norway", "no")
	assert.Contains(t, out, "Error adding airport:")
}

func TestDeleteFlightAction(t *testing.T) {
	reg := seededRegistry(t)
	ctx := context.Background()

	out := session(t, reg, "10", "BA909", "2025-10-15", "no", "no")
	assert.Contains(t, out, "Flight Details:")
	assert.Contains(t, out, "Deletion cancelled.")

	f, err := reg.FindFlight(ctx, "BA909", "2025-10-15")
	require.NoError(t, err)
	require.NotNil(t, f)

	out = session(t, reg, "10", "BA909", "2025-10-15", "yes", "no")
	assert.Contains(t, out, "Flight deleted successfully!")

	f, err = reg.FindFlight(ctx, "BA909", "2025-10-15")
	require.NoError(t, err)
	assert.Nil(t, f)

	out = session(t, reg, "10", "BA909", "2025-10-15", "no")
	assert.Contains(t, out, "No flight found with flight number 'BA909' on 2025-10-15.")
}

func TestReportActions(t *testing.T) {
	reg := seededRegistry(t)

	tests := []struct {
		choice string
		want   []string
	}{
		{"9", []string{"Flight Summary by Arrival City", "Edinburgh", "New York"}},
		{"11", []string{"Flights per Pilot", "Olivia Clark", "Flights Assigned"}},
		{"12", []string{"Flight Count by Arrival City", "Amsterdam"}},
	}

	for _, tt := range tests {
		t.Run(tt.choice, func(t *testing.T) {
			out := session(t, reg, tt.choice, "no")
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestReportActionsEmptyStore(t *testing.T) {
	db, err := storage.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.CreateSchema(context.Background()))
	reg := roster.New(db)

	tests := []struct {
		choice string
		want   string
	}{
		{"8", "No flights available."},
		{"9", "No flight summary available."},
		{"11", "No pilots or flights available."},
		{"12", "No flights or destinations available."},
	}

	for _, tt := range tests {
		t.Run(tt.choice, func(t *testing.T) {
			out := session(t, reg, tt.choice, "no")
			assert.Contains(t, out, tt.want)
		})
	}
}
