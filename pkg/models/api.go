package models

// ConflictReason represents why a shift could not be filled
type ConflictReason struct {
	ShiftID string   `json:"shift_id"`
	Day     int      `json:"day"`
	Label   string   `json:"label"`
	Role    string   `json:"role"`
	Reasons []string `json:"reasons"`
}

// EmployeeStats summarises one employee's week after assignment
type EmployeeStats struct {
	AssignedHours  float64  `json:"assigned_hours"`
	RemainingHours float64  `json:"remaining_hours"`
	AssignedShifts []string `json:"assigned_shifts"`
}

// GenerateRequest is the payload for the shift generation endpoint
type GenerateRequest struct {
	WeekStart  string          `json:"week_start"`
	Roles      []Role          `json:"roles" binding:"required"`
	Templates  []ShiftTemplate `json:"templates" binding:"required"`
	Demand     RawDemand       `json:"demand"`
	ClosedDays ClosedDays      `json:"closed_days"`
}

// AssignRequest is the payload for the auto-assign endpoint
type AssignRequest struct {
	Shifts    []ShiftInstance `json:"shifts" binding:"required"`
	Employees []Employee      `json:"employees" binding:"required"`
	Roles     []Role          `json:"roles" binding:"required"`
	Templates []ShiftTemplate `json:"templates"`
}

// ScheduleRequest runs generation and assignment in one call
type ScheduleRequest struct {
	WeekStart string `json:"week_start"`
	Roster
}

// ScheduleResponse is the data structure for the scheduling result
type ScheduleResponse struct {
	Shifts         []ShiftInstance          `json:"shifts"`
	UnfilledShifts []string                 `json:"unfilled_shifts"`
	Conflicts      []ConflictReason         `json:"conflicts,omitempty"`
	FairnessScore  float64                  `json:"fairness_score"`
	LaborCost      string                   `json:"labor_cost"`
	Employees      map[string]EmployeeStats `json:"employees"`
}

// SaveScheduleRequest stores a finished week
type SaveScheduleRequest struct {
	Title      string          `json:"title" binding:"required"`
	WeekStart  string          `json:"week_start" binding:"required"`
	Notes      string          `json:"notes"`
	ClosedDays ClosedDays      `json:"closed_days"`
	Shifts     []ShiftInstance `json:"shifts" binding:"required"`
}
