package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Vprince099/restaurant-scheduler/pkg/models"
)

func TestFairnessScore(t *testing.T) {
	assert.Equal(t, 100.0, FairnessScore(nil))
	assert.Equal(t, 100.0, FairnessScore([]float64{0, 0, 0}))
	assert.Equal(t, 100.0, FairnessScore([]float64{8, 8, 8}))
	assert.InDelta(t, 50.0, FairnessScore([]float64{4, 12}), 1e-9)
	assert.Equal(t, 0.0, FairnessScore([]float64{0, 0, 0, 30}))
}

func TestLaborCost(t *testing.T) {
	roles := []models.Role{
		{Name: "Server", HourlyRate: 10},
		{Name: "Cook", HourlyRate: 17.25, TimeOverrides: map[string]models.TimeOverride{"Lunch": {Start: "08:00"}}},
	}
	shifts := []models.ShiftInstance{
		shift("a", 0, "Server", "Lunch", "09:00", "13:00").WithEmployee("e1"),
		shift("b", 0, "Cook", "Lunch", "12:00", "16:00"),
		shift("c", 0, "Host", "Lunch", "12:00", "16:00"),
		shift("d", 0, "Server", "Lunch", "bad", "16:00"),
	}

	assert.Equal(t, "40", LaborCost(shifts[:1], roles).String())
	assert.Equal(t, "109.00", LaborCost(shifts, roles).StringFixed(2))
	assert.True(t, LaborCost(nil, roles).IsZero())
}

func TestHoursByEmployee(t *testing.T) {
	shifts := []models.ShiftInstance{
		shift("a", 0, "Server", "Lunch", "12:00", "16:00").WithEmployee("e1"),
		shift("b", 1, "Server", "Dinner", "16:00", "22:00").WithEmployee("e1"),
		shift("c", 1, "Server", "Lunch", "12:00", "16:00").WithEmployee("e2"),
		shift("d", 2, "Server", "Lunch", "12:00", "16:00"),
	}

	assert.Equal(t, map[string]float64{"e1": 10, "e2": 4}, HoursByEmployee(shifts))
}
