package scheduler

import (
	"time"

	"github.com/Vprince099/restaurant-scheduler/pkg/models"
)

// Prepared is a roster after the one-time ingestion step: demand counts
// coerced and availability upgraded to the per-label shape.
type Prepared struct {
	Roles      []models.Role
	Employees  []models.Employee
	Templates  []models.ShiftTemplate
	Demand     models.DemandSpec
	ClosedDays models.ClosedDays
}

// Prepare normalizes a roster. It does not validate; call ValidateRoster first
// when the input comes from outside.
func Prepare(r models.Roster) Prepared {
	return Prepared{
		Roles:      append([]models.Role(nil), r.Roles...),
		Employees:  NormalizeEmployees(r.Employees, r.Templates),
		Templates:  append([]models.ShiftTemplate(nil), r.Templates...),
		Demand:     NormalizeDemand(r.Demand, r.Templates, r.Roles),
		ClosedDays: r.ClosedDays,
	}
}

// Plan generates the week containing anchor and auto-assigns it.
func (g *Generator) Plan(p Prepared, anchor time.Time) Result {
	shifts := g.Generate(BuildWeekDates(anchor), p.Demand, p.Templates, p.Roles, p.ClosedDays)
	return AssignWithReport(shifts, p.Employees, p.Roles)
}
