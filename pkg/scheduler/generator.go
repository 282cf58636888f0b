package scheduler

import (
	"time"

	"github.com/google/uuid"

	"github.com/Vprince099/restaurant-scheduler/pkg/models"
)

// Generator expands weekly demand into unassigned shift instances.
type Generator struct {
	// NewID supplies shift identifiers. Defaults to random UUIDs.
	NewID func() string
}

// NewGenerator creates a generator that issues UUID shift ids
func NewGenerator() *Generator {
	return &Generator{NewID: uuid.NewString}
}

// Generate emits count instances for every (day, label, role) cell of the
// active demand row, skipping closed days. Output is day-major, then template
// order, then role order, then repetition. Template start/end are copied
// verbatim; role time overrides are never baked in.
//
// Demand must already be normalized. Only roles in the given list produce
// instances, so every instance references a known role and template.
func (g *Generator) Generate(weekDates []time.Time, demand models.DemandSpec, templates []models.ShiftTemplate, roles []models.Role, closed models.ClosedDays) []models.ShiftInstance {
	newID := g.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	var result []models.ShiftInstance
	for idx, date := range weekDates {
		if idx >= len(models.Days) {
			break
		}
		dayName := models.Days[idx]
		if closed[dayName] {
			continue
		}
		row := demand.RowFor(idx)
		for _, tpl := range templates {
			counts := row[tpl.Label]
			for _, role := range roles {
				for i := 0; i < counts[role.Name]; i++ {
					result = append(result, models.ShiftInstance{
						ID:      newID(),
						Day:     idx,
						DateISO: date.Format(time.RFC3339),
						Role:    role.Name,
						Label:   tpl.Label,
						Start:   tpl.Start,
						End:     tpl.End,
					})
				}
			}
		}
	}
	return result
}

// Generate runs a default Generator.
func Generate(weekDates []time.Time, demand models.DemandSpec, templates []models.ShiftTemplate, roles []models.Role, closed models.ClosedDays) []models.ShiftInstance {
	return NewGenerator().Generate(weekDates, demand, templates, roles, closed)
}
