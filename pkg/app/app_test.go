package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Vprince099/restaurant-scheduler/pkg/auth"
	"github.com/Vprince099/restaurant-scheduler/pkg/config"
	"github.com/Vprince099/restaurant-scheduler/pkg/database"
	"github.com/Vprince099/restaurant-scheduler/pkg/logger"
)

func TestBuildWith(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, err := database.InitDB(database.Options{DataPath: "file:TestBuildWith?mode=memory&cache=shared"})
	require.NoError(t, err)

	cfg := &config.Config{AdminUsername: "owner", AdminPassword: "pw", DefaultRateLimit: 10}
	svc := auth.NewService("jwt", "master", time.Hour, auth.WithBcryptCost(bcrypt.MinCost))

	router, err := BuildWith(db, svc, cfg, logger.Discard())
	require.NoError(t, err)

	var admins []database.MasterUser
	require.NoError(t, db.Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.Equal(t, "owner", admins[0].Username)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	_, err = BuildWith(db, svc, cfg, logger.Discard())
	require.NoError(t, err)
	require.NoError(t, db.Find(&admins).Error)
	assert.Len(t, admins, 1, "admin is only seeded into an empty table")
}
