package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestAvailability_UnmarshalJSON(t *testing.T) {
	var e Employee
	err := json.Unmarshal([]byte(`{
		"id": "e1",
		"name": "Ava",
		"availability": {"Mon": {"Lunch": true, "Dinner": false}, "Tue": true}
	}`), &e)
	require.NoError(t, err)

	assert.True(t, e.Availability.Available("Mon", "Lunch"))
	assert.False(t, e.Availability.Available("Mon", "Dinner"))
	assert.Equal(t, map[string]bool{AllLabels: true}, e.Availability["Tue"])
	assert.True(t, e.Availability.IsLegacy())
	assert.False(t, e.Availability.Available("Wed", "Lunch"))
}

func TestAvailability_UnmarshalJSONRejectsGarbage(t *testing.T) {
	var av Availability
	err := json.Unmarshal([]byte(`{"Mon": "sometimes"}`), &av)
	assert.Error(t, err)
}

func TestAvailability_UnmarshalYAML(t *testing.T) {
	var e Employee
	err := yaml.Unmarshal([]byte(`
id: e1
name: Ava
availability:
  Mon:
    Lunch: true
  Sat: false
`), &e)
	require.NoError(t, err)

	assert.True(t, e.Availability.Available("Mon", "Lunch"))
	assert.Equal(t, map[string]bool{AllLabels: false}, e.Availability["Sat"])
}

func TestShiftInstance_WithEmployee(t *testing.T) {
	s := ShiftInstance{ID: "s1"}
	held := s.WithEmployee("e1")

	assert.False(t, s.Assigned())
	assert.Equal(t, "e1", held.AssignedTo())
	assert.False(t, held.WithEmployee("").Assigned())

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"employee_id":null`)
}

func TestDayIndex(t *testing.T) {
	i, ok := DayIndex("Thu")
	assert.True(t, ok)
	assert.Equal(t, 3, i)

	_, ok = DayIndex("thu")
	assert.False(t, ok)
	assert.Equal(t, "", DayName(7))
	assert.Equal(t, "Sun", DayName(6))
}
