package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vprince099/restaurant-scheduler/pkg/models"
	"github.com/Vprince099/restaurant-scheduler/pkg/scheduler"
)

// ValidateInput checks a roster without generating anything
func (h *Handler) ValidateInput(c *gin.Context) {
	var input models.Roster
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	if err := scheduler.ValidateRoster(input); err != nil {
		var ve *scheduler.ValidationError
		if !errors.As(err, &ve) {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": ve.Message,
			"field": ve.Field,
		})
		return
	}

	var warnings []string
	if len(input.Employees) == 0 {
		warnings = append(warnings, "no employees: every shift will be unassigned")
	}
	for _, e := range input.Employees {
		if e.Availability.IsLegacy() {
			warnings = append(warnings, "employee "+e.ID+" uses per-day availability; it applies to every shift label")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":    true,
		"warnings": warnings,
		"stats": gin.H{
			"employee_count": len(input.Employees),
			"role_count":     len(input.Roles),
			"template_count": len(input.Templates),
		},
	})
}
