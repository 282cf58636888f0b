package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vprince099/restaurant-scheduler/pkg/models"
)

func TestResolveTimes(t *testing.T) {
	roles := []models.Role{
		{Name: "Cook", TimeOverrides: map[string]models.TimeOverride{
			"Lunch":  {Start: "10:00", End: "15:00"},
			"Dinner": {Start: "  ", End: "23:00"},
		}},
		{Name: "Server"},
	}

	tests := []struct {
		name       string
		shift      models.ShiftInstance
		start, end string
	}{
		{"full override", shift("a", 0, "Cook", "Lunch", "12:00", "16:00"), "10:00", "15:00"},
		{"blank start falls back", shift("b", 0, "Cook", "Dinner", "16:00", "22:00"), "16:00", "23:00"},
		{"role matched ignoring case", shift("c", 0, " cook ", "Lunch", "12:00", "16:00"), "10:00", "15:00"},
		{"no override for role", shift("d", 0, "Server", "Lunch", "12:00", "16:00"), "12:00", "16:00"},
		{"unknown role", shift("e", 0, "Host", "Lunch", "12:00", "16:00"), "12:00", "16:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := ResolveTimes(tt.shift, roles)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestApplyRoleTimeOverrides_LeavesInputAlone(t *testing.T) {
	roles := []models.Role{{Name: "Cook", TimeOverrides: map[string]models.TimeOverride{"Lunch": {Start: "10:00"}}}}
	in := []models.ShiftInstance{shift("a", 0, "Cook", "Lunch", "12:00", "16:00")}

	out := ApplyRoleTimeOverrides(in, roles)

	assert.Equal(t, "10:00", out[0].Start)
	assert.Equal(t, "12:00", in[0].Start)
}

func TestSortForDisplay(t *testing.T) {
	roles := []models.Role{
		{Name: "Cook", TimeOverrides: map[string]models.TimeOverride{"Lunch": {Start: "10:00"}}},
		{Name: "Server"},
	}
	shifts := []models.ShiftInstance{
		shift("s-dinner", 0, "Server", "Dinner", "16:00", "22:00"),
		shift("s-lunch", 0, "Server", "Lunch", "12:00", "16:00"),
		shift("c-lunch", 0, "Cook", "Lunch", "12:00", "16:00"),
		shift("s-lunch-2", 0, "Server", "Lunch", "12:00", "16:00"),
		shift("tue", 1, "Server", "Lunch", "12:00", "16:00"),
		shift("bad-day", 9, "Server", "Lunch", "12:00", "16:00"),
	}

	days := SortForDisplay(shifts, roles)

	require.Len(t, days, 7)
	var monday []string
	for _, s := range days[0] {
		monday = append(monday, s.ID)
	}
	assert.Equal(t, []string{"c-lunch", "s-lunch", "s-lunch-2", "s-dinner"}, monday)
	assert.Len(t, days[1], 1)
	assert.Empty(t, days[6])
}
