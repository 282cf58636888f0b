package main

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Vprince099/restaurant-scheduler/pkg/app"
	"github.com/Vprince099/restaurant-scheduler/pkg/config"
	"github.com/Vprince099/restaurant-scheduler/pkg/logger"
)

func main() {
	envFile := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		logger.New("info").WithError(err).Fatal("failed to load configuration")
	}
	log := logger.New(cfg.LogLevel)
	if envFile != "" {
		log.WithField("path", envFile).Debug("loaded .env")
	}

	gin.SetMode(cfg.GinMode)

	router, err := app.Build(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize")
	}

	log.WithFields(map[string]interface{}{
		"port":      cfg.Port,
		"token_ttl": (time.Duration(cfg.TokenTTLHours) * time.Hour).String(),
	}).Info("server starting")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("could not run server")
	}
}
