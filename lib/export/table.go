package exporthandler

import (
	dbmodels "attachment-hub-backend/models/db"
	"strconv"
	"time"
)

// Table is one exported dataset: a titled header plus string rows.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

const timestampLayout = "2006-01-02 15:04:05"

var (
	userHeaders      = []string{"ID", "Full Name", "Email", "Username"}
	testimonyHeaders = []string{"ID", "Username", "Full Name", "Company", "Company Email", "University", "Start Date", "End Date", "Department", "Rating", "Notes", "Timestamp"}
	logHeaders       = []string{"ID", "Username", "Action", "Details", "Timestamp"}
)

func UsersTable(list []dbmodels.PortalUser) Table {
	table := Table{Title: "Users", Headers: userHeaders, Rows: make([][]string, 0, len(list))}
	for _, rec := range list {
		table.Rows = append(table.Rows, []string{rec.ID, rec.FullName, rec.Email, rec.Username})
	}
	return table
}

func TestimoniesTable(list []dbmodels.Testimony) Table {
	table := Table{Title: "Testimonies", Headers: testimonyHeaders, Rows: make([][]string, 0, len(list))}
	for _, rec := range list {
		table.Rows = append(table.Rows, []string{
			rec.ID,
			rec.Username,
			rec.FullName,
			rec.Company,
			rec.CompanyEmail,
			rec.University,
			rec.StartDate,
			rec.EndDate,
			rec.Department,
			strconv.Itoa(rec.Rating),
			rec.Notes,
			formatTime(rec.Timestamp),
		})
	}
	return table
}

func LogsTable(list []dbmodels.AuditLog) Table {
	table := Table{Title: "Logs", Headers: logHeaders, Rows: make([][]string, 0, len(list))}
	for _, rec := range list {
		table.Rows = append(table.Rows, []string{rec.ID, rec.Username, string(rec.Action), rec.Details, formatTime(rec.Timestamp)})
	}
	return table
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Format(timestampLayout)
}
