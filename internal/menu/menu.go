// Package menu provides the interactive text menu for the flight roster.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"flight_roster/internal/roster"
)

// Menu reads choices and field values from in and writes prompts and
// results to out. Store errors are reported to the user and do not end the
// session; running out of input does.
type Menu struct {
	reg *roster.Registry
	in  *bufio.Scanner
	out io.Writer
}

type action struct {
	title string
	run   func(ctx context.Context) error
}

// New creates a menu over reg.
func New(reg *roster.Registry, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		reg: reg,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (m *Menu) actions() []action {
	return []action{
		{"Add a New Flight", m.addFlight},
		{"View Flights by Status", m.flightsByStatus},
		{"Update Flight Status", m.updateStatus},
		{"Assign Pilot to Flight", m.assignPilot},
		{"Remove Pilot from Flight", m.unassignPilot},
		{"View Pilot Schedule", m.pilotSchedule},
		{"Add New Airport", m.addAirport},
		{"View All Flights with Details", m.allFlights},
		{"Flight Summary by Destination", m.destinationSummary},
		{"Delete Flight", m.deleteFlight},
		{"Flights Assigned per Pilot", m.flightsPerPilot},
		{"Flight Count by Destination", m.countByDestination},
	}
}

// Run shows the menu until the user picks 0, declines to return to the
// menu, or input ends.
func (m *Menu) Run(ctx context.Context) error {
	actions := m.actions()
	for {
		m.printMenu(actions)

		choice, err := m.prompt(fmt.Sprintf("\nEnter your choice (0-%d): ", len(actions)))
		if err != nil {
			return m.finish(err)
		}

		n, convErr := strconv.Atoi(choice)
		switch {
		case choice == "0":
			m.goodbye()
			return nil
		case convErr != nil || n < 1 || n > len(actions):
			m.printf("\nInvalid choice. Please enter a number between 0 and %d.\n", len(actions))
		default:
			if err := actions[n-1].run(ctx); err != nil {
				return m.finish(err)
			}
			m.printf("\nAction completed.\n")
		}

		again, err := m.prompt("\nReturn to menu? (yes/no): ")
		if err != nil {
			return m.finish(err)
		}
		if strings.ToLower(again) != "yes" {
			m.goodbye()
			return nil
		}
	}
}

func (m *Menu) printMenu(actions []action) {
	m.printf("\n%s\n", banner("Flight Management System"))
	m.printf("Welcome! Select an option from the menu below.\n")
	m.printf("%s\n", noteStyle.Render("Note: FlightID is a unique integer (e.g., 1).\n"+
		"      FlightNumber (e.g., BA101) can be reused for different days."))
	for i, a := range actions {
		m.printf(" %2d. %s\n", i+1, a.title)
	}
	m.printf("  0. Exit System\n")
}

func (m *Menu) goodbye() {
	m.printf("\nThank you for using the Flight Management System.\n")
}

// finish ends the session: end of input is a normal exit.
func (m *Menu) finish(err error) error {
	if errors.Is(err, io.EOF) {
		m.goodbye()
		return nil
	}
	return err
}

func (m *Menu) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(m.out, format, args...)
}

func (m *Menu) success(msg string) {
	m.printf("\n%s\n", successStyle.Render(msg))
}

func (m *Menu) failure(format string, args ...any) {
	m.printf("\n%s\n", errorStyle.Render(fmt.Sprintf(format, args...)))
}

// prompt writes label and returns the next input line, trimmed. It returns
// io.EOF once input is exhausted.
func (m *Menu) prompt(label string) (string, error) {
	m.printf("%s", label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

// promptID reads an integer id. ok is false when the text is not an integer;
// the user has already been told.
func (m *Menu) promptID(label, what string) (id int64, ok bool, err error) {
	text, err := m.prompt(label)
	if err != nil {
		return 0, false, err
	}
	id, convErr := strconv.ParseInt(text, 10, 64)
	if convErr != nil {
		m.failure("Invalid %s %q: must be an integer.", what, text)
		return 0, false, nil
	}
	return id, true, nil
}

// promptAll reads one line per label, stopping at the first input error.
func (m *Menu) promptAll(labels ...string) ([]string, error) {
	values := make([]string, 0, len(labels))
	for _, l := range labels {
		v, err := m.prompt(l)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func statusHint() string {
	names := make([]string, 0, 5)
	for _, s := range roster.Statuses() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
