package scheduler

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/Vprince099/restaurant-scheduler/pkg/models"
)

// CSVHeader is the first row written by WriteCSV.
var CSVHeader = []string{"Day", "Date", "Shift", "Role", "Start", "End", "Hours", "Employee"}

// WriteCSV exports shifts in the given order, one row each. Times are the
// stored template times. Unassigned shifts show "(unassigned)"; unknown
// employees show their id.
func WriteCSV(w io.Writer, shifts []models.ShiftInstance, employees []models.Employee) error {
	names := make(map[string]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.Name
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(CSVHeader); err != nil {
		return err
	}
	for _, s := range shifts {
		date := s.DateISO
		if len(date) > 10 {
			date = date[:10]
		}
		hours := ""
		if h, err := DurationHours(s.Start, s.End); err == nil {
			hours = fmt.Sprintf("%.2f", h)
		}
		employee := "(unassigned)"
		if s.Assigned() {
			employee = names[s.AssignedTo()]
			if employee == "" {
				employee = s.AssignedTo()
			}
		}
		if err := writer.Write([]string{
			models.DayName(s.Day),
			date,
			s.Label,
			s.Role,
			s.Start,
			s.End,
			hours,
			employee,
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
