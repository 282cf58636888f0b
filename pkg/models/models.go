package models

// Days lists the week in schedule order. A ShiftInstance.Day indexes into it.
var Days = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DayIndex returns the position of a day name in Days.
func DayIndex(name string) (int, bool) {
	for i, d := range Days {
		if d == name {
			return i, true
		}
	}
	return -1, false
}

// DayName returns the name for a day index, or "" when out of range.
func DayName(day int) string {
	if day < 0 || day >= len(Days) {
		return ""
	}
	return Days[day]
}

// TimeOverride replaces a template's start and/or end for one role. Blank fields
// fall back to the template.
type TimeOverride struct {
	Start string `json:"start,omitempty" yaml:"start,omitempty" validate:"omitempty,hhmm"`
	End   string `json:"end,omitempty" yaml:"end,omitempty" validate:"omitempty,hhmm"`
}

// Role is a job an employee can be qualified for
type Role struct {
	ID            string                  `json:"id" yaml:"id"`
	Name          string                  `json:"name" yaml:"name" validate:"required"`
	HourlyRate    float64                 `json:"hourly_rate" yaml:"hourly_rate" validate:"gte=0"`
	Priority      int                     `json:"priority" yaml:"priority"`
	TimeOverrides map[string]TimeOverride `json:"time_overrides,omitempty" yaml:"time_overrides,omitempty" validate:"dive"`
}

// Employee represents a person available for shifts
type Employee struct {
	ID           string       `json:"id" yaml:"id" validate:"required"`
	Name         string       `json:"name" yaml:"name" validate:"required"`
	Roles        []string     `json:"roles" yaml:"roles"`
	MaxHours     float64      `json:"max_hours" yaml:"max_hours" validate:"gte=0"`
	Availability Availability `json:"availability" yaml:"availability"`
}

// HasRole reports whether the employee is qualified for the named role.
func (e Employee) HasRole(name string) bool {
	for _, r := range e.Roles {
		if r == name {
			return true
		}
	}
	return false
}

// ShiftTemplate is a named time window reused on every day of the week
type ShiftTemplate struct {
	Label string `json:"label" yaml:"label" validate:"required"`
	Start string `json:"start" yaml:"start" validate:"required,hhmm"`
	End   string `json:"end" yaml:"end" validate:"required,hhmm"`
}

// ClosedDays marks days (by name) on which no shifts are generated.
type ClosedDays map[string]bool

// ShiftInstance is one concrete staffing slot on one day of a week.
// EmployeeID is nil while the slot is unassigned.
type ShiftInstance struct {
	ID         string  `json:"id"`
	Day        int     `json:"day"`
	DateISO    string  `json:"date_iso"`
	Role       string  `json:"role"`
	Label      string  `json:"label"`
	Start      string  `json:"start"`
	End        string  `json:"end"`
	EmployeeID *string `json:"employee_id"`
}

// Assigned reports whether an employee holds the shift.
func (s ShiftInstance) Assigned() bool {
	return s.EmployeeID != nil
}

// AssignedTo returns the employee id or "" when unassigned.
func (s ShiftInstance) AssignedTo() string {
	if s.EmployeeID == nil {
		return ""
	}
	return *s.EmployeeID
}

// WithEmployee returns a copy of the shift held by id. An empty id clears it.
func (s ShiftInstance) WithEmployee(id string) ShiftInstance {
	if id == "" {
		s.EmployeeID = nil
		return s
	}
	s.EmployeeID = &id
	return s
}

// Roster bundles everything needed to generate and staff one week.
type Roster struct {
	Title      string          `json:"title,omitempty" yaml:"title,omitempty"`
	Roles      []Role          `json:"roles" yaml:"roles" validate:"dive"`
	Employees  []Employee      `json:"employees" yaml:"employees" validate:"dive"`
	Templates  []ShiftTemplate `json:"templates" yaml:"templates" validate:"min=1,dive"`
	Demand     RawDemand       `json:"demand" yaml:"demand"`
	ClosedDays ClosedDays      `json:"closed_days,omitempty" yaml:"closed_days,omitempty"`
}
