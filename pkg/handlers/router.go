package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version is reported by the banner route.
const Version = "1.0.0"

// NewRouter wires every route onto a fresh engine.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(h.Log.Middleware(), gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Restaurant Shift Scheduler API",
			"version": Version,
		})
	})

	r.POST("/admin/login", h.Login)

	// Admin Endpoints
	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/keys", h.GenerateKey)
		admin.GET("/keys", h.ListKeys)
		admin.PUT("/keys/:id", h.UpdateKeyLimit)
		admin.DELETE("/keys/:id", h.RevokeKey)
		admin.GET("/usage/:id", h.GetUsage)
	}

	// Scheduler Endpoints
	api := r.Group("/api")
	api.Use(h.APIKeyMiddleware())
	{
		api.POST("/generate", h.Generate)
		api.POST("/assign", h.Assign)
		api.POST("/schedule", h.ScheduleJSON)
		api.POST("/schedule/csv", h.ScheduleCSV)
		api.POST("/validate", h.ValidateInput)
		api.GET("/usage", h.GetMyUsage)
		api.POST("/schedules", h.SaveSchedule)
		api.GET("/schedules", h.ListSchedules)
		api.GET("/schedules/:id", h.GetSchedule)
	}

	return r
}
