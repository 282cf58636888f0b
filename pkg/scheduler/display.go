package scheduler

import (
	"cmp"
	"slices"
	"strings"

	"github.com/Vprince099/restaurant-scheduler/pkg/models"
)

// ResolveTimes returns the effective start and end of a shift after applying
// its role's override for the shift label. Role names match ignoring case;
// blank override fields fall back to the stored times.
func ResolveTimes(shift models.ShiftInstance, roles []models.Role) (start, end string) {
	return resolveTimes(indexRoles(roles), shift)
}

func resolveTimes(catalog *RoleCatalog, shift models.ShiftInstance) (string, string) {
	start, end := shift.Start, shift.End
	role, ok := catalog.LookupFold(shift.Role)
	if !ok {
		return start, end
	}
	ov, ok := role.TimeOverrides[shift.Label]
	if !ok {
		return start, end
	}
	if strings.TrimSpace(ov.Start) != "" {
		start = ov.Start
	}
	if strings.TrimSpace(ov.End) != "" {
		end = ov.End
	}
	return start, end
}

// ApplyRoleTimeOverrides returns display copies of shifts with resolved times.
// The result is for presentation only and must not be fed back to Assign.
func ApplyRoleTimeOverrides(shifts []models.ShiftInstance, roles []models.Role) []models.ShiftInstance {
	catalog := indexRoles(roles)
	out := make([]models.ShiftInstance, len(shifts))
	for i, s := range shifts {
		s.Start, s.End = resolveTimes(catalog, s)
		out[i] = s
	}
	return out
}

// SortForDisplay groups shifts by day and orders each day by resolved start
// time. Index i of the result holds day i.
func SortForDisplay(shifts []models.ShiftInstance, roles []models.Role) [][]models.ShiftInstance {
	catalog := indexRoles(roles)
	byDay := make([][]models.ShiftInstance, len(models.Days))
	for _, s := range shifts {
		if models.DayName(s.Day) == "" {
			continue
		}
		byDay[s.Day] = append(byDay[s.Day], s)
	}
	startOf := func(s models.ShiftInstance) int {
		start, _ := resolveTimes(catalog, s)
		m, err := ParseClock(start)
		if err != nil {
			return minutesInvalid
		}
		return m
	}
	for _, list := range byDay {
		slices.SortStableFunc(list, func(a, b models.ShiftInstance) int {
			return cmp.Compare(startOf(a), startOf(b))
		})
	}
	return byDay
}

// minutesInvalid sorts unparseable times after every real one.
const minutesInvalid = 1 << 30
