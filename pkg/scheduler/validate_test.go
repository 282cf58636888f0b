package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vprince099/restaurant-scheduler/pkg/models"
)

func validRoster() models.Roster {
	return models.Roster{
		Roles: []models.Role{{Name: "Server", HourlyRate: 12}, {Name: "Cook", HourlyRate: 15}},
		Employees: []models.Employee{
			{ID: "e1", Name: "Ava", Roles: []string{"Server"}, MaxHours: 30},
			{ID: "e2", Name: "Ben", Roles: []string{"Cook", "Server"}, MaxHours: 40},
		},
		Templates:  lunchDinner,
		ClosedDays: models.ClosedDays{"Sun": true},
	}
}

func TestValidateRoster(t *testing.T) {
	require.NoError(t, ValidateRoster(validRoster()))

	tests := []struct {
		name   string
		mutate func(r *models.Roster)
		field  string
	}{
		{"no templates", func(r *models.Roster) { r.Templates = nil }, "Roster.Templates"},
		{"bad template time", func(r *models.Roster) {
			r.Templates = []models.ShiftTemplate{{Label: "Lunch", Start: "noon", End: "16:00"}}
		}, "Roster.Templates[0].Start"},
		{"signed template time", func(r *models.Roster) {
			r.Templates = []models.ShiftTemplate{{Label: "Lunch", Start: "+9:00", End: "16:00"}}
		}, "Roster.Templates[0].Start"},
		{"template ends before start", func(r *models.Roster) {
			r.Templates = []models.ShiftTemplate{{Label: "Late", Start: "22:00", End: "02:00"}}
		}, "templates[0]"},
		{"duplicate label", func(r *models.Roster) {
			r.Templates = append(r.Templates, models.ShiftTemplate{Label: "Lunch", Start: "11:00", End: "15:00"})
		}, "templates[2].label"},
		{"blank role name", func(r *models.Roster) { r.Roles[1].Name = "" }, "Roster.Roles[1].Name"},
		{"negative rate", func(r *models.Roster) { r.Roles[0].HourlyRate = -1 }, "Roster.Roles[0].HourlyRate"},
		{"bad override", func(r *models.Roster) {
			r.Roles[0].TimeOverrides = map[string]models.TimeOverride{"Lunch": {Start: "10"}}
		}, "Roster.Roles[0].TimeOverrides[Lunch].Start"},
		{"duplicate employee", func(r *models.Roster) { r.Employees[1].ID = "e1" }, "employees[1].id"},
		{"unknown employee role", func(r *models.Roster) { r.Employees[0].Roles = []string{"Bartender"} }, "employees[0].roles"},
		{"unknown closed day", func(r *models.Roster) { r.ClosedDays = models.ClosedDays{"Funday": true} }, "closed_days"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRoster()
			r.Roles = append([]models.Role(nil), r.Roles...)
			r.Employees = append([]models.Employee(nil), r.Employees...)
			tt.mutate(&r)

			err := ValidateRoster(r)
			require.Error(t, err)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestValidateRoster_DuplicateRoleIgnoringCase(t *testing.T) {
	r := validRoster()
	r.Roles = append(r.Roles, models.Role{Name: " server "})

	err := ValidateRoster(r)

	assert.ErrorIs(t, err, ErrDuplicateRole)
	assert.True(t, IsValidationError(err))
}
