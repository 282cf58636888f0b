package roster

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vprince099/restaurant-scheduler/pkg/scheduler"
)

const yamlRoster = `
title: Bistro
roles:
  - name: Server
    hourly_rate: 12.5
  - name: Cook
    hourly_rate: 18
    priority: 2
    time_overrides:
      Lunch:
        start: "10:30"
employees:
  - id: ava
    name: Ava
    roles: [Server]
    max_hours: 32
    availability:
      Mon: {Lunch: true, Dinner: false}
      Tue: true
templates:
  - {label: Lunch, start: "12:00", end: "16:00"}
  - {label: Dinner, start: "16:00", end: "22:00"}
demand:
  global:
    Lunch: {Server: 2, Cook: "1"}
    Dinner: {Server: 3}
closed_days:
  Sun: true
`

func TestDecodeYAML(t *testing.T) {
	r, err := Decode(strings.NewReader(yamlRoster), ".yaml")
	require.NoError(t, err)

	assert.Equal(t, "Bistro", r.Title)
	require.Len(t, r.Roles, 2)
	assert.NotEmpty(t, r.Roles[0].ID)
	assert.Equal(t, 2, r.Roles[1].Priority)
	assert.Equal(t, "10:30", r.Roles[1].TimeOverrides["Lunch"].Start)
	assert.True(t, r.Employees[0].Availability.Available("Mon", "Lunch"))
	assert.True(t, r.Employees[0].Availability.IsLegacy())
	assert.True(t, r.ClosedDays["Sun"])
	require.NoError(t, scheduler.ValidateRoster(r))

	demand := scheduler.NormalizeDemand(r.Demand, r.Templates, r.Roles)
	assert.Equal(t, 1, demand.Global.Count("Lunch", "Cook"))
	assert.Equal(t, 3, demand.Global.Count("Dinner", "Server"))
}

func TestDecodeYAML_UnknownField(t *testing.T) {
	_, err := Decode(strings.NewReader("templtes: []\n"), ".yml")
	assert.Error(t, err)
}

func TestLoadJSONAndShifts(t *testing.T) {
	dir := t.TempDir()
	rosterPath := filepath.Join(dir, "roster.json")
	require.NoError(t, os.WriteFile(rosterPath, []byte(`{
		"roles": [{"id": "r1", "name": "Server"}],
		"templates": [{"label": "Lunch", "start": "12:00", "end": "16:00"}],
		"employees": [{"id": "ava", "name": "Ava", "roles": ["Server"], "max_hours": 20, "availability": {"Mon": true}}]
	}`), 0o600))

	r, err := Load(rosterPath)
	require.NoError(t, err)
	assert.Equal(t, "r1", r.Roles[0].ID)

	bare := filepath.Join(dir, "bare.json")
	require.NoError(t, os.WriteFile(bare, []byte(`[{"id": "s1", "day": 0, "role": "Server", "label": "Lunch", "start": "12:00", "end": "16:00", "employee_id": null}]`), 0o600))
	shifts, err := LoadShifts(bare)
	require.NoError(t, err)
	require.Len(t, shifts, 1)
	assert.False(t, shifts[0].Assigned())

	wrapped := filepath.Join(dir, "wrapped.json")
	require.NoError(t, os.WriteFile(wrapped, []byte(`{"shifts": [{"id": "s1"}, {"id": "s2"}]}`), 0o600))
	shifts, err = LoadShifts(wrapped)
	require.NoError(t, err)
	assert.Len(t, shifts, 2)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
