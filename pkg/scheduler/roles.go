package scheduler

import (
	"fmt"
	"strings"

	"github.com/Vprince099/restaurant-scheduler/pkg/models"
)

// RoleCatalog indexes roles by name. Names are unique ignoring case and
// surrounding whitespace; that rule is enforced once, by NewRoleCatalog.
type RoleCatalog struct {
	roles  []models.Role
	byName map[string]int
	byFold map[string]int
}

// NewRoleCatalog validates role names and builds the index.
func NewRoleCatalog(roles []models.Role) (*RoleCatalog, error) {
	seen := make(map[string]string, len(roles))
	for i, r := range roles {
		key := foldRoleName(r.Name)
		if key == "" {
			return nil, &ValidationError{Field: fmt.Sprintf("roles[%d].name", i), Message: "role name is required"}
		}
		if prev, ok := seen[key]; ok {
			return nil, &ValidationError{
				Field:   fmt.Sprintf("roles[%d].name", i),
				Message: fmt.Sprintf("%q conflicts with %q", r.Name, prev),
				Err:     ErrDuplicateRole,
			}
		}
		seen[key] = r.Name
	}
	return indexRoles(roles), nil
}

// indexRoles builds a catalog without validation; the first role wins on a clash.
func indexRoles(roles []models.Role) *RoleCatalog {
	c := &RoleCatalog{
		roles:  append([]models.Role(nil), roles...),
		byName: make(map[string]int, len(roles)),
		byFold: make(map[string]int, len(roles)),
	}
	for i, r := range c.roles {
		if _, ok := c.byName[r.Name]; !ok {
			c.byName[r.Name] = i
		}
		if key := foldRoleName(r.Name); key != "" {
			if _, ok := c.byFold[key]; !ok {
				c.byFold[key] = i
			}
		}
	}
	return c
}

func foldRoleName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup finds a role by its exact name.
func (c *RoleCatalog) Lookup(name string) (models.Role, bool) {
	i, ok := c.byName[name]
	if !ok {
		return models.Role{}, false
	}
	return c.roles[i], true
}

// LookupFold finds a role ignoring case and surrounding whitespace.
func (c *RoleCatalog) LookupFold(name string) (models.Role, bool) {
	i, ok := c.byFold[foldRoleName(name)]
	if !ok {
		return models.Role{}, false
	}
	return c.roles[i], true
}

// Priority returns the role's priority, 0 for unknown roles.
func (c *RoleCatalog) Priority(name string) int {
	r, _ := c.Lookup(name)
	return r.Priority
}
