package handler

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/Vprince099/restaurant-scheduler/pkg/app"
	"github.com/Vprince099/restaurant-scheduler/pkg/config"
	"github.com/Vprince099/restaurant-scheduler/pkg/logger"
)

var (
	once    sync.Once
	router  http.Handler
	initErr error
)

func setup() {
	// Load .env if it exists (for local testing with vercel dev)
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		initErr = err
		return
	}
	gin.SetMode(gin.ReleaseMode)
	router, initErr = app.Build(cfg, logger.New(cfg.LogLevel))
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(setup)
	if initErr != nil {
		http.Error(w, `{"error":"service unavailable"}`, http.StatusServiceUnavailable)
		return
	}
	router.ServeHTTP(w, r)
}
