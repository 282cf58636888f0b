package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vprince099/restaurant-scheduler/pkg/database"
	"github.com/Vprince099/restaurant-scheduler/pkg/models"
	"github.com/Vprince099/restaurant-scheduler/pkg/scheduler"
)

// SaveSchedule stores a finished week for the calling key
func (h *Handler) SaveSchedule(c *gin.Context) {
	apiKey, ok := currentKey(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API Key context missing"})
		return
	}
	var req models.SaveScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	week, err := scheduler.ParseWeekStart(req.WeekStart, h.now())
	if err != nil {
		h.fail(c, err)
		return
	}

	s := &database.Schedule{
		KeyID:      apiKey.ID,
		Title:      req.Title,
		WeekStart:  week.Format("2006-01-02"),
		Notes:      req.Notes,
		ClosedDays: req.ClosedDays,
		Shifts:     req.Shifts,
	}
	if err := database.SaveSchedule(h.DB, s); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

// ListSchedules returns the calling key's saved weeks, newest first
func (h *Handler) ListSchedules(c *gin.Context) {
	apiKey, ok := currentKey(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API Key context missing"})
		return
	}
	list, err := database.ListSchedules(h.DB, apiKey.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": list})
}

// GetSchedule returns one saved week with its shifts
func (h *Handler) GetSchedule(c *gin.Context) {
	apiKey, ok := currentKey(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API Key context missing"})
		return
	}
	s, err := database.GetSchedule(h.DB, apiKey.ID, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}
