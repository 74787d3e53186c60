package menu

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"flight_roster/internal/roster"
)

var (
	primaryColor = lipgloss.Color("#8B5CF6")
	accentColor  = lipgloss.Color("#10B981")
	errorColor   = lipgloss.Color("#EF4444")
	mutedColor   = lipgloss.Color("#94A3B8")

	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(primaryColor).
			Bold(true).
			Padding(0, 2)

	headerCellStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	successStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor)
	noteStyle    = lipgloss.NewStyle().Foreground(mutedColor)
)

func banner(title string) string {
	return bannerStyle.Render(title)
}

// renderTable lays rows out in fixed columns under a bold header row.
func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(mutedColor)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCellStyle
			}
			return cellStyle
		})
	return t.String()
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

func statusFlightRows(flights []roster.StatusFlight) [][]string {
	rows := make([][]string, 0, len(flights))
	for _, f := range flights {
		rows = append(rows, []string{
			id(f.ID), f.Number, f.Pilot, f.DepartureCity, f.ArrivalCity,
			f.DepartureDate, f.DepartureTime, f.ArrivalDate, f.ArrivalTime,
		})
	}
	return rows
}

func scheduleRows(flights []roster.ScheduledFlight) [][]string {
	rows := make([][]string, 0, len(flights))
	for _, f := range flights {
		rows = append(rows, []string{
			id(f.ID), f.Number, f.DepartureDate, f.DepartureTime,
			f.ArrivalDate, f.ArrivalTime, f.DepartureCity, f.ArrivalCity, string(f.Status),
		})
	}
	return rows
}

func detailRows(flights []roster.FlightDetail) [][]string {
	rows := make([][]string, 0, len(flights))
	for _, f := range flights {
		rows = append(rows, []string{
			id(f.ID), f.Number, f.PilotIDText(), f.Pilot, f.DepartureCity, f.ArrivalCity, string(f.Status),
		})
	}
	return rows
}

func cityRows(counts []roster.CityCount) [][]string {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.City, strconv.Itoa(c.Flights)})
	}
	return rows
}

func pilotCountRows(counts []roster.PilotCount) [][]string {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.PilotIDText(), c.Pilot, strconv.Itoa(c.Flights)})
	}
	return rows
}
