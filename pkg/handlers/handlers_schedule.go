package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Vprince099/restaurant-scheduler/pkg/models"
	"github.com/Vprince099/restaurant-scheduler/pkg/scheduler"
)

// Generate expands demand into unassigned shifts for one week
func (h *Handler) Generate(c *gin.Context) {
	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := scheduler.NewRoleCatalog(req.Roles); err != nil {
		h.fail(c, err)
		return
	}
	if err := scheduler.ValidateTemplates(req.Templates); err != nil {
		h.fail(c, err)
		return
	}
	anchor, err := scheduler.ParseWeekStart(req.WeekStart, h.now())
	if err != nil {
		h.fail(c, err)
		return
	}

	demand := scheduler.NormalizeDemand(req.Demand, req.Templates, req.Roles)
	shifts := h.generator().Generate(scheduler.BuildWeekDates(anchor), demand, req.Templates, req.Roles, req.ClosedDays)
	if shifts == nil {
		shifts = []models.ShiftInstance{}
	}

	h.RecordUsage(c, len(shifts), 0)
	h.Log.WithFields(map[string]interface{}{
		"week_start": anchor.Format("2006-01-02"),
		"shifts":     len(shifts),
	}).Info("generated week")

	c.JSON(http.StatusOK, gin.H{
		"week_start": anchor.Format("2006-01-02"),
		"shifts":     shifts,
		"labor_cost": scheduler.LaborCost(shifts, req.Roles).StringFixed(2),
	})
}

// Assign auto-assigns an existing set of shifts. Prior assignments in the
// input are discarded.
func (h *Handler) Assign(c *gin.Context) {
	var req models.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := scheduler.NewRoleCatalog(req.Roles); err != nil {
		h.fail(c, err)
		return
	}

	labels := scheduler.TemplateLabels(req.Templates)
	if len(labels) == 0 {
		labels = shiftLabels(req.Shifts)
	}
	employees := make([]models.Employee, len(req.Employees))
	for i, e := range req.Employees {
		e.Availability = scheduler.NormalizeAvailability(e.Availability, labels)
		employees[i] = e
	}

	res := scheduler.AssignWithReport(req.Shifts, employees, req.Roles)
	h.RecordUsage(c, len(req.Shifts), len(employees))
	h.logResult(res)
	c.JSON(http.StatusOK, buildResponse(res, req.Roles))
}

// ScheduleJSON generates a week from a roster and assigns it in one call
func (h *Handler) ScheduleJSON(c *gin.Context) {
	res, roster, ok := h.plan(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, buildResponse(res, roster.Roles))
}

// ScheduleCSV is ScheduleJSON with the week rendered as CSV
func (h *Handler) ScheduleCSV(c *gin.Context) {
	res, roster, ok := h.plan(c)
	if !ok {
		return
	}

	var out strings.Builder
	if err := scheduler.WriteCSV(&out, res.Shifts, roster.Employees); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"csv": out.String()})
}

func (h *Handler) plan(c *gin.Context) (scheduler.Result, models.Roster, bool) {
	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return scheduler.Result{}, models.Roster{}, false
	}
	if err := scheduler.ValidateRoster(req.Roster); err != nil {
		h.fail(c, err)
		return scheduler.Result{}, models.Roster{}, false
	}
	anchor, err := scheduler.ParseWeekStart(req.WeekStart, h.now())
	if err != nil {
		h.fail(c, err)
		return scheduler.Result{}, models.Roster{}, false
	}

	res := h.generator().Plan(scheduler.Prepare(req.Roster), anchor)
	h.RecordUsage(c, len(res.Shifts), len(req.Employees))
	h.logResult(res)
	return res, req.Roster, true
}

func (h *Handler) logResult(res scheduler.Result) {
	h.Log.WithFields(map[string]interface{}{
		"shifts":     len(res.Shifts),
		"unassigned": len(res.Unassigned),
		"fairness":   res.FairnessScore,
	}).Info("assigned shifts")
}

func buildResponse(res scheduler.Result, roles []models.Role) models.ScheduleResponse {
	shifts := res.Shifts
	if shifts == nil {
		shifts = []models.ShiftInstance{}
	}
	unfilled := res.Unassigned
	if unfilled == nil {
		unfilled = []string{}
	}
	return models.ScheduleResponse{
		Shifts:         shifts,
		UnfilledShifts: unfilled,
		Conflicts:      res.Conflicts,
		FairnessScore:  res.FairnessScore,
		LaborCost:      scheduler.LaborCost(shifts, roles).StringFixed(2),
		Employees:      res.Employees,
	}
}

// shiftLabels lists distinct shift labels in first-seen order.
func shiftLabels(shifts []models.ShiftInstance) []string {
	seen := make(map[string]bool)
	var labels []string
	for _, s := range shifts {
		if !seen[s.Label] {
			seen[s.Label] = true
			labels = append(labels, s.Label)
		}
	}
	return labels
}
