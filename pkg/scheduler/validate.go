package scheduler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Vprince099/restaurant-scheduler/pkg/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, err := ParseClock(fl.Field().String())
		return err == nil
	})
}

// ValidateRoster checks a roster before it is used to build a week: struct
// rules, unique role names ignoring case, unique template labels and employee
// ids, templates that end after they start, and employee roles that exist.
func ValidateRoster(r models.Roster) error {
	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return &ValidationError{
				Field:   fe.Namespace(),
				Message: fmt.Sprintf("failed %q rule", fe.Tag()),
				Err:     err,
			}
		}
		return &ValidationError{Message: err.Error(), Err: err}
	}

	catalog, err := NewRoleCatalog(r.Roles)
	if err != nil {
		return err
	}
	if err := ValidateTemplates(r.Templates); err != nil {
		return err
	}

	ids := make(map[string]bool, len(r.Employees))
	for i, e := range r.Employees {
		if ids[e.ID] {
			return &ValidationError{Field: fmt.Sprintf("employees[%d].id", i), Message: "duplicate employee id " + e.ID}
		}
		ids[e.ID] = true
		for _, name := range e.Roles {
			if _, ok := catalog.Lookup(name); !ok {
				return &ValidationError{
					Field:   fmt.Sprintf("employees[%d].roles", i),
					Message: fmt.Sprintf("unknown role %q", name),
				}
			}
		}
	}
	for day := range r.ClosedDays {
		if _, ok := models.DayIndex(day); !ok {
			return &ValidationError{Field: "closed_days", Message: fmt.Sprintf("unknown day %q", day)}
		}
	}
	return nil
}

// ValidateTemplates checks labels are unique and each window is well formed.
func ValidateTemplates(templates []models.ShiftTemplate) error {
	labels := make(map[string]bool, len(templates))
	for i, t := range templates {
		field := fmt.Sprintf("templates[%d]", i)
		if strings.TrimSpace(t.Label) == "" {
			return &ValidationError{Field: field + ".label", Message: "label is required"}
		}
		if labels[t.Label] {
			return &ValidationError{Field: field + ".label", Message: "duplicate label " + t.Label}
		}
		labels[t.Label] = true
		w, err := parseWindow(t.Start, t.End)
		if err != nil {
			return &ValidationError{Field: field, Message: err.Error(), Err: err}
		}
		if w.end <= w.start {
			return &ValidationError{Field: field, Message: "end must be after start"}
		}
	}
	return nil
}
