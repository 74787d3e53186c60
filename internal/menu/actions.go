package menu

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"flight_roster/internal/roster"
)

func (m *Menu) addFlight(ctx context.Context) error {
	m.printf("\n%s\n", banner("Add New Flight"))
	m.printf("Enter the flight details below.\n")
	m.printf("%s\n", noteStyle.Render("Note: Flight Number (e.g., BA101) can be reused for flights on different days.\n"+
		"      Pilot ID is optional (press Enter to leave unassigned)."))

	number, err := m.prompt("Flight Number (e.g., BA101): ")
	if err != nil {
		return err
	}

	var pilotID *int64
	pilotText, err := m.prompt("Pilot ID (integer, e.g., 1; optional): ")
	if err != nil {
		return err
	}
	if pilotText != "" {
		n, convErr := strconv.ParseInt(pilotText, 10, 64)
		if convErr != nil {
			m.failure("Invalid pilot ID %q: must be an integer.", pilotText)
			return nil
		}
		pilotID = &n
	}

	v, err := m.promptAll(
		"Departure Airport Code (e.g., LHR): ",
		"Arrival Airport Code (e.g., JFK): ",
		"Departure Date (YYYY-MM-DD, e.g., 2025-10-10): ",
		"Departure Time (HH:MM in 24-hour format, e.g., 08:00): ",
		"Arrival Date (YYYY-MM-DD, e.g., 2025-10-10): ",
		"Arrival Time (HH:MM in 24-hour format, e.g., 11:30): ",
		fmt.Sprintf("Flight Status (%s): ", statusHint()),
	)
	if err != nil {
		return err
	}

	flightID, err := m.reg.AddFlight(ctx, roster.NewFlight{
		Number:           number,
		PilotID:          pilotID,
		DepartureAirport: v[0],
		ArrivalAirport:   v[1],
		DepartureDate:    v[2],
		DepartureTime:    v[3],
		ArrivalDate:      v[4],
		ArrivalTime:      v[5],
		Status:           roster.Status(v[6]),
	})
	if err != nil {
		m.failure("Error adding flight: %v", err)
		return nil
	}
	m.success(fmt.Sprintf("Flight added successfully! (Flight ID %d)", flightID))
	return nil
}

func (m *Menu) flightsByStatus(ctx context.Context) error {
	m.printf("\n%s\n", banner("View Flights by Status"))
	m.printf("Available statuses: %s\n", statusHint())

	text, err := m.prompt("Enter flight status: ")
	if err != nil {
		return err
	}
	status := roster.NormalizeStatus(text)

	flights, err := m.reg.FlightsByStatus(ctx, text)
	if err != nil {
		m.failure("Error retrieving flights: %v", err)
		return nil
	}
	if len(flights) == 0 {
		m.printf("\nNo flights found with status '%s'.\n", status)
		return nil
	}

	m.printf("\nFlights with Status: %s\n", status)
	m.printf("%s\n", renderTable(
		[]string{"FlightID", "Flight", "Pilot", "From", "To", "Depart", "Time", "Arrive", "Time"},
		statusFlightRows(flights),
	))
	return nil
}

func (m *Menu) updateStatus(ctx context.Context) error {
	m.printf("\n%s\n", banner("Update Flight Status"))
	m.printf("%s\n", noteStyle.Render("Note: Use Flight ID (unique integer, e.g., 1) to identify the flight."))
	m.printf("Available statuses: %s\n", statusHint())

	flightID, ok, err := m.promptID("Enter Flight ID (integer, e.g., 1): ", "flight ID")
	if err != nil || !ok {
		return err
	}
	status, err := m.prompt("Enter new status: ")
	if err != nil {
		return err
	}

	if err := m.reg.UpdateStatus(ctx, flightID, status); err != nil {
		m.failure("Error updating flight status: %v", err)
		return nil
	}
	m.success("Flight status updated successfully!")
	return nil
}

func (m *Menu) assignPilot(ctx context.Context) error {
	m.printf("\n%s\n", banner("Assign Pilot to Flight"))
	m.printf("%s\n", noteStyle.Render("Note: Use Flight ID (unique integer, e.g., 1) to identify the flight."))

	flightID, ok, err := m.promptID("Enter Flight ID (integer, e.g., 1): ", "flight ID")
	if err != nil || !ok {
		return err
	}
	pilotID, ok, err := m.promptID("Enter Pilot ID (integer, e.g., 2): ", "pilot ID")
	if err != nil || !ok {
		return err
	}

	if err := m.reg.AssignPilot(ctx, flightID, pilotID); err != nil {
		m.failure("Error assigning pilot: %v", err)
		return nil
	}
	m.success("Pilot assigned to flight successfully!")
	return nil
}

func (m *Menu) unassignPilot(ctx context.Context) error {
	m.printf("\n%s\n", banner("Remove Pilot from Flight"))
	m.printf("%s\n", noteStyle.Render("Note: Use Flight ID (unique integer, e.g., 1) to identify the flight."))

	flightID, ok, err := m.promptID("Enter Flight ID (integer, e.g., 1): ", "flight ID")
	if err != nil || !ok {
		return err
	}

	if err := m.reg.UnassignPilot(ctx, flightID); err != nil {
		m.failure("Error removing pilot: %v", err)
		return nil
	}
	m.success("Pilot removed from flight successfully!")
	return nil
}

func (m *Menu) pilotSchedule(ctx context.Context) error {
	m.printf("\n%s\n", banner("View Pilot Schedule"))

	pilotID, ok, err := m.promptID("Enter Pilot ID (integer, e.g., 1): ", "pilot ID")
	if err != nil || !ok {
		return err
	}

	s, err := m.reg.PilotSchedule(ctx, pilotID)
	if err != nil {
		m.failure("Error retrieving schedule: %v", err)
		return nil
	}
	if len(s.Flights) == 0 {
		m.printf("\nNo flights assigned to pilot ID %d (%s).\n", s.PilotID, s.PilotName)
		return nil
	}

	m.printf("\nFlight Schedule for Pilot: %s (ID: %d)\n", s.PilotName, s.PilotID)
	m.printf("%s\n", renderTable(
		[]string{"FlightID", "Flight", "Depart", "Time", "Arrive", "Time", "From", "To", "Status"},
		scheduleRows(s.Flights),
	))
	return nil
}

func (m *Menu) addAirport(ctx context.Context) error {
	m.printf("\n%s\n", banner("Add New Airport"))
	m.printf("Enter the airport details below.\n")

	v, err := m.promptAll(
		"Airport Code (e.g., LHR): ",
		"Airport Name (e.g., Heathrow Airport): ",
		"City (e.g., London): ",
		"Country (e.g., UK): ",
	)
	if err != nil {
		return err
	}

	a := roster.Airport{Code: v[0], Name: v[1], City: v[2], Country: v[3]}
	if err := m.reg.AddAirport(ctx, a); err != nil {
		m.failure("Error adding airport: %v", err)
		return nil
	}
	m.success("Airport added successfully!")
	return nil
}

func (m *Menu) allFlights(ctx context.Context) error {
	m.printf("\n%s\n", banner("View All Flights"))

	flights, err := m.reg.AllFlights(ctx)
	if err != nil {
		m.failure("Error retrieving flights: %v", err)
		return nil
	}
	if len(flights) == 0 {
		m.printf("\nNo flights available.\n")
		return nil
	}

	m.printf("\nAll Flights\n")
	m.printf("%s\n", renderTable(
		[]string{"FlightID", "Flight", "PilotID", "Pilot", "From", "To", "Status"},
		detailRows(flights),
	))
	return nil
}

func (m *Menu) destinationSummary(ctx context.Context) error {
	m.printf("\n%s\n", banner("Flight Summary by City"))

	counts, err := m.reg.DestinationSummary(ctx)
	if err != nil {
		m.failure("Error retrieving summary: %v", err)
		return nil
	}
	if len(counts) == 0 {
		m.printf("\nNo flight summary available.\n")
		return nil
	}

	m.printf("\nFlight Summary by Arrival City\n")
	m.printf("%s\n", renderTable([]string{"City", "Total Flights"}, cityRows(counts)))
	return nil
}

func (m *Menu) deleteFlight(ctx context.Context) error {
	m.printf("\n%s\n", banner("Delete Flight"))
	m.printf("%s\n", noteStyle.Render("Note: Flight Number (e.g., BA101) may not be unique; "+
		"specify Departure Date to identify the flight."))

	v, err := m.promptAll(
		"Enter Flight Number (e.g., BA101): ",
		"Enter Departure Date (YYYY-MM-DD, e.g., 2025-10-10): ",
	)
	if err != nil {
		return err
	}
	number, date := v[0], v[1]

	// The confirmation reads input; an input failure there is reported
	// after the registry returns.
	var inputErr error
	confirm := func(f roster.FlightRef) bool {
		m.printf("\nFlight Details:\n")
		m.printf("%s\n", renderTable(
			[]string{"Field", "Value"},
			[][]string{
				{"Flight ID", id(f.ID)},
				{"Flight Number", f.Number},
				{"Departure Date", f.DepartureDate},
				{"Status", string(f.Status)},
			},
		))
		answer, err := m.prompt("Are you sure you want to delete this flight? (yes/no): ")
		if err != nil {
			inputErr = err
			return false
		}
		return strings.ToLower(answer) == "yes"
	}

	outcome, err := m.reg.DeleteByNumberDate(ctx, number, date, confirm)
	if inputErr != nil {
		return inputErr
	}
	if err != nil {
		m.failure("Error deleting flight: %v", err)
		return nil
	}

	switch outcome {
	case roster.DeleteNotFound:
		m.printf("\nNo flight found with flight number '%s' on %s.\n", number, date)
	case roster.DeleteCancelled:
		m.printf("\nDeletion cancelled.\n")
	case roster.Deleted:
		m.success("Flight deleted successfully!")
	}
	return nil
}

func (m *Menu) flightsPerPilot(ctx context.Context) error {
	m.printf("\n%s\n", banner("Flights Assigned per Pilot"))

	counts, err := m.reg.FlightsPerPilot(ctx)
	if err != nil {
		m.failure("Error retrieving pilot counts: %v", err)
		return nil
	}
	if len(counts) == 0 {
		m.printf("\nNo pilots or flights available.\n")
		return nil
	}

	m.printf("\nFlights per Pilot\n")
	m.printf("%s\n", renderTable([]string{"PilotID", "Pilot", "Flights Assigned"}, pilotCountRows(counts)))
	return nil
}

func (m *Menu) countByDestination(ctx context.Context) error {
	m.printf("\n%s\n", banner("Flight Count by Destination"))

	counts, err := m.reg.FlightCountByDestination(ctx)
	if err != nil {
		m.failure("Error retrieving flight counts: %v", err)
		return nil
	}
	if len(counts) == 0 {
		m.printf("\nNo flights or destinations available.\n")
		return nil
	}

	m.printf("\nFlight Count by Arrival City\n")
	m.printf("%s\n", renderTable([]string{"City", "Flight Count"}, cityRows(counts)))
	return nil
}
