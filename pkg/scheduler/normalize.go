package scheduler

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/Vprince099/restaurant-scheduler/pkg/models"
)

// NormalizeDemandRow fills one cell per template label and role, coercing each
// count to a non-negative integer. Labels and roles not in the lists are dropped.
func NormalizeDemandRow(raw models.RawDemandRow, templates []models.ShiftTemplate, roles []models.Role) models.DemandRow {
	out := make(models.DemandRow, len(templates))
	for _, tpl := range templates {
		src := raw[tpl.Label]
		row := make(map[string]int, len(roles))
		for _, r := range roles {
			row[r.Name] = coerceCount(src[r.Name])
		}
		out[tpl.Label] = row
	}
	return out
}

// NormalizeDemand normalizes the global row and one row per day of the week.
func NormalizeDemand(raw models.RawDemand, templates []models.ShiftTemplate, roles []models.Role) models.DemandSpec {
	demand := models.DemandSpec{
		Global:   NormalizeDemandRow(raw.Global, templates, roles),
		Daily:    make(map[string]models.DemandRow, len(models.Days)),
		UseDaily: raw.UseDaily,
	}
	for _, day := range models.Days {
		demand.Daily[day] = NormalizeDemandRow(raw.Daily[day], templates, roles)
	}
	return demand
}

// MaxDemandCount caps a single label/role demand cell.
const MaxDemandCount = 1000

// coerceCount rounds numbers and numeric strings; anything else, negative or
// non-finite becomes 0. Counts above MaxDemandCount are clamped to it.
func coerceCount(v any) int {
	var n float64
	switch x := v.(type) {
	case int:
		n = float64(x)
	case int64:
		n = float64(x)
	case uint64:
		n = float64(x)
	case float64:
		n = x
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0
		}
		n = f
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		n = f
	case bool:
		if x {
			n = 1
		}
	default:
		return 0
	}
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0
	}
	if n > MaxDemandCount {
		return MaxDemandCount
	}
	return int(math.Round(n))
}

// DefaultAvailability marks every label available Monday to Friday and
// unavailable at weekends.
func DefaultAvailability(labels []string) models.Availability {
	out := make(models.Availability, len(models.Days))
	for i, day := range models.Days {
		row := make(map[string]bool, len(labels))
		for _, l := range labels {
			row[l] = i < 5
		}
		out[day] = row
	}
	return out
}

// NormalizeAvailability upgrades the legacy per-day boolean shape and makes
// sure every day has an entry for every label.
func NormalizeAvailability(av models.Availability, labels []string) models.Availability {
	out := make(models.Availability, len(models.Days))
	for _, day := range models.Days {
		src := av[day]
		legacy, isLegacy := src[models.AllLabels]
		row := make(map[string]bool, len(labels))
		for _, l := range labels {
			if isLegacy {
				row[l] = legacy
			} else {
				row[l] = src[l]
			}
		}
		out[day] = row
	}
	return out
}

// NormalizeEmployees returns copies of the employees with availability
// normalized against the template labels.
func NormalizeEmployees(employees []models.Employee, templates []models.ShiftTemplate) []models.Employee {
	labels := TemplateLabels(templates)
	out := make([]models.Employee, len(employees))
	for i, e := range employees {
		e.Roles = append([]string(nil), e.Roles...)
		e.Availability = NormalizeAvailability(e.Availability, labels)
		out[i] = e
	}
	return out
}

// TemplateLabels lists template labels in declaration order.
func TemplateLabels(templates []models.ShiftTemplate) []string {
	labels := make([]string, len(templates))
	for i, t := range templates {
		labels[i] = t.Label
	}
	return labels
}
