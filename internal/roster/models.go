// Package roster implements the flight registry: creating, listing, updating
// and deleting flights, pilots and airports, plus the aggregate reports.
package roster

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Status is a flight status. The store only accepts the five values below.
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusDeparted  Status = "Departed"
	StatusDelayed   Status = "Delayed"
	StatusCancelled Status = "Cancelled"
	StatusCompleted Status = "Completed"
)

// Statuses returns the closed status set in display order.
func Statuses() []Status {
	return []Status{StatusScheduled, StatusDeparted, StatusDelayed, StatusCancelled, StatusCompleted}
}

// Valid reports whether s belongs to the closed status set.
func (s Status) Valid() bool {
	for _, v := range Statuses() {
		if s == v {
			return true
		}
	}
	return false
}

// NormalizeStatus trims s and title-cases it: first letter upper, the rest
// lower ("sCHEDULED" -> "Scheduled"). The result is not checked against the
// closed set.
func NormalizeStatus(s string) Status {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return Status(string(unicode.ToUpper(r)) + strings.ToLower(s[size:]))
}

// Display placeholders for absent references.
const (
	Unassigned   = "Unassigned"
	NoPilotID    = "None"
	UnknownPilot = "Unknown Pilot"
)

// Pilot is a crew member who can be assigned to flights.
type Pilot struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Name returns "First Last".
func (p Pilot) Name() string {
	return p.FirstName + " " + p.LastName
}

// NewPilot contains the fields for adding a pilot.
type NewPilot struct {
	FirstName string
	LastName  string
	Email     string // Optional.
	Phone     string // Optional.
}

// Airport is identified by its short code.
type Airport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// NewFlight contains the fields for adding a flight. Dates (YYYY-MM-DD) and
// times (HH:MM) are stored as given.
type NewFlight struct {
	Number           string
	PilotID          *int64 // Nil leaves the flight unassigned.
	DepartureAirport string
	ArrivalAirport   string
	DepartureDate    string
	DepartureTime    string
	ArrivalDate      string
	ArrivalTime      string
	Status           Status
}

// StatusFlight is a row of the flights-by-status listing.
type StatusFlight struct {
	ID            int64  `json:"id"`
	Number        string `json:"number"`
	Pilot         string `json:"pilot"` // Display name or Unassigned.
	DepartureCity string `json:"departure_city"`
	ArrivalCity   string `json:"arrival_city"`
	DepartureDate string `json:"departure_date"`
	DepartureTime string `json:"departure_time"`
	ArrivalDate   string `json:"arrival_date"`
	ArrivalTime   string `json:"arrival_time"`
	Status        Status `json:"status"`
}

// ScheduledFlight is a row of a pilot's schedule.
type ScheduledFlight struct {
	ID            int64  `json:"id"`
	Number        string `json:"number"`
	DepartureDate string `json:"departure_date"`
	DepartureTime string `json:"departure_time"`
	ArrivalDate   string `json:"arrival_date"`
	ArrivalTime   string `json:"arrival_time"`
	DepartureCity string `json:"departure_city"`
	ArrivalCity   string `json:"arrival_city"`
	Status        Status `json:"status"`
}

// Schedule is a pilot's display name together with their flights.
type Schedule struct {
	PilotID   int64             `json:"pilot_id"`
	PilotName string            `json:"pilot_name"` // UnknownPilot if the id does not resolve.
	Known     bool              `json:"known"`
	Flights   []ScheduledFlight `json:"flights"`
}

// FlightDetail is a row of the full flight listing.
type FlightDetail struct {
	ID            int64  `json:"id"`
	Number        string `json:"number"`
	PilotID       *int64 `json:"pilot_id"`
	Pilot         string `json:"pilot"` // Display name or Unassigned.
	DepartureCity string `json:"departure_city"`
	ArrivalCity   string `json:"arrival_city"`
	Status        Status `json:"status"`
}

// PilotIDText renders the raw pilot reference, or None when absent.
func (f FlightDetail) PilotIDText() string {
	return formatID(f.PilotID)
}

// FlightRef identifies one flight instance for confirmation before deletion.
type FlightRef struct {
	ID            int64  `json:"id"`
	Number        string `json:"number"`
	DepartureDate string `json:"departure_date"`
	Status        Status `json:"status"`
}

// CityCount pairs an arrival city with the number of flights arriving there.
type CityCount struct {
	City    string `json:"city"`
	Flights int    `json:"flights"`
}

// PilotCount pairs a pilot reference with the number of flights it carries.
// PilotID is nil for the group of unassigned flights.
type PilotCount struct {
	PilotID *int64 `json:"pilot_id"`
	Pilot   string `json:"pilot"`
	Flights int    `json:"flights"`
}

// PilotIDText renders the raw pilot reference, or None when absent.
func (p PilotCount) PilotIDText() string {
	return formatID(p.PilotID)
}

// DeleteOutcome reports what DeleteByNumberDate did.
type DeleteOutcome int

const (
	DeleteNotFound DeleteOutcome = iota
	DeleteCancelled
	Deleted
)

func (o DeleteOutcome) String() string {
	switch o {
	case Deleted:
		return "deleted"
	case DeleteCancelled:
		return "cancelled"
	default:
		return "not found"
	}
}
