// Package app assembles the HTTP service from configuration. It is shared by
// the standalone server and the serverless entry point.
package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Vprince099/restaurant-scheduler/pkg/auth"
	"github.com/Vprince099/restaurant-scheduler/pkg/config"
	"github.com/Vprince099/restaurant-scheduler/pkg/database"
	"github.com/Vprince099/restaurant-scheduler/pkg/handlers"
	"github.com/Vprince099/restaurant-scheduler/pkg/logger"
	"github.com/Vprince099/restaurant-scheduler/pkg/scheduler"
)

// Build opens the database, seeds the admin account and returns the router.
func Build(cfg *config.Config, log *logger.Logger) (*gin.Engine, error) {
	db, err := database.InitDB(database.Options{
		DatabaseURL: cfg.DatabaseURL,
		DataPath:    cfg.DataPath,
		Debug:       cfg.LogLevel == "debug",
	})
	if err != nil {
		return nil, err
	}

	svc := auth.NewService(cfg.JWTSecret, cfg.APIMasterSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	return BuildWith(db, svc, cfg, log)
}

// BuildWith wires handlers over an open database and auth service.
func BuildWith(db *gorm.DB, svc *auth.Service, cfg *config.Config, log *logger.Logger) (*gin.Engine, error) {
	created, err := svc.EnsureAdminExists(db, cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		return nil, err
	}
	if created {
		log.WithField("username", cfg.AdminUsername).Info("default admin user created")
	}

	h := &handlers.Handler{
		DB:               db,
		Auth:             svc,
		Log:              log,
		Gen:              scheduler.NewGenerator(),
		DefaultRateLimit: cfg.DefaultRateLimit,
	}
	return handlers.NewRouter(h), nil
}
