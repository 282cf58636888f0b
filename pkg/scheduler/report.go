package scheduler

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/Vprince099/restaurant-scheduler/pkg/models"
)

// FairnessScore rates the spread of assigned hours from 0 to 100 as
// 100 * (1 - stddev/mean). No hours at all scores 100.
func FairnessScore(hours []float64) float64 {
	n := float64(len(hours))
	mean := 0.0
	for _, h := range hours {
		mean += h / n
	}
	if mean == 0 {
		return 100
	}

	var sq float64
	for _, h := range hours {
		sq += (h - mean) * (h - mean)
	}
	cv := math.Sqrt(sq/n) / mean
	return math.Max(0, 100*(1-cv))
}

// LaborCost sums duration times hourly rate over every shift, assigned or not,
// using the stored (template) times. Shifts for unknown roles or with bad
// times cost nothing. The total is rounded to cents.
func LaborCost(shifts []models.ShiftInstance, roles []models.Role) decimal.Decimal {
	catalog := indexRoles(roles)
	total := decimal.Zero
	for _, s := range shifts {
		role, ok := catalog.Lookup(s.Role)
		if !ok {
			continue
		}
		hours, err := DurationHours(s.Start, s.End)
		if err != nil {
			continue
		}
		total = total.Add(decimal.NewFromFloat(hours).Mul(decimal.NewFromFloat(role.HourlyRate)))
	}
	return total.Round(2)
}

// HoursByEmployee totals assigned hours per employee id.
func HoursByEmployee(shifts []models.ShiftInstance) map[string]float64 {
	out := make(map[string]float64)
	for _, s := range shifts {
		if !s.Assigned() {
			continue
		}
		hours, err := DurationHours(s.Start, s.End)
		if err != nil {
			continue
		}
		out[s.AssignedTo()] += hours
	}
	return out
}
