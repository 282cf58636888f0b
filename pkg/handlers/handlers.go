package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Vprince099/restaurant-scheduler/pkg/auth"
	"github.com/Vprince099/restaurant-scheduler/pkg/database"
	"github.com/Vprince099/restaurant-scheduler/pkg/logger"
	"github.com/Vprince099/restaurant-scheduler/pkg/scheduler"
)

const (
	ctxAPIKey   = "apiKey"
	ctxUserID   = "userID"
	ctxUsername = "username"
)

// Handler contains dependencies for the route handlers
type Handler struct {
	DB               *gorm.DB
	Auth             *auth.Service
	Log              *logger.Logger
	Gen              *scheduler.Generator
	DefaultRateLimit int
	// Now defaults to time.Now; usage rows are keyed by its date.
	Now func() time.Time
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *Handler) today() string {
	return h.now().Format("2006-01-02")
}

func (h *Handler) generator() *scheduler.Generator {
	if h.Gen != nil {
		return h.Gen
	}
	return scheduler.NewGenerator()
}

func (h *Handler) rateLimit() int {
	if h.DefaultRateLimit > 0 {
		return h.DefaultRateLimit
	}
	return 10000
}

func bearer(c *gin.Context) string {
	token := c.GetHeader("Authorization")
	if len(token) > 7 && strings.EqualFold(token[:7], "Bearer ") {
		token = token[7:]
	}
	return strings.TrimSpace(token)
}

// AuthMiddleware verifies the JWT token for admin routes
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearer(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		claims, err := h.Auth.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ctxUsername, claims.Username)
		c.Next()
	}
}

// APIKeyMiddleware verifies the HMAC API key, registers it on first use and
// enforces its daily request limit.
func (h *Handler) APIKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := bearer(c)
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API Key required"})
			return
		}

		userID, err := h.Auth.VerifyHMACKey(key)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API Key signature"})
			return
		}

		apiKey, err := database.FindOrRegisterKey(h.DB, key, userID, auth.KeyPreview(key), h.rateLimit(), h.now())
		if errors.Is(err, database.ErrKeyRevoked) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API Key revoked"})
			return
		}
		if err != nil {
			h.Log.WithError(err).Error("api key lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not load API key"})
			return
		}

		used, err := database.RequestsOn(h.DB, apiKey.ID, h.today())
		if err != nil {
			h.Log.WithError(err).Error("usage lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not load usage"})
			return
		}
		if apiKey.RateLimit > 0 && used >= apiKey.RateLimit {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":      "Daily rate limit exceeded",
				"rate_limit": apiKey.RateLimit,
			})
			return
		}

		c.Set(ctxAPIKey, apiKey)
		c.Set(ctxUserID, userID)
		c.Next()
	}
}

func currentKey(c *gin.Context) (*database.APIKey, bool) {
	raw, ok := c.Get(ctxAPIKey)
	if !ok {
		return nil, false
	}
	key, ok := raw.(*database.APIKey)
	return key, ok
}

// RecordUsage records API usage for the calling key. Failures are logged, not returned.
func (h *Handler) RecordUsage(c *gin.Context, shiftCount, employeeCount int) {
	apiKey, ok := currentKey(c)
	if !ok {
		return
	}
	if err := database.RecordUsage(h.DB, apiKey.ID, h.today(), shiftCount, employeeCount); err != nil {
		h.Log.WithError(err).WithField("key_id", apiKey.ID).Warn("could not record usage")
	}
}

// fail maps an error to a status code and JSON body.
func (h *Handler) fail(c *gin.Context, err error) {
	var ve *scheduler.ValidationError
	switch {
	case errors.As(err, &ve):
		body := gin.H{"error": ve.Error()}
		if ve.Field != "" {
			body["field"] = ve.Field
		}
		c.JSON(http.StatusBadRequest, body)
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		h.Log.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// Login handles admin login
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Auth.Authenticate(h.DB, req.Username, req.Password)
	if err != nil {
		h.Log.WithField("username", req.Username).Warn("admin login rejected")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := h.Auth.CreateToken(user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

// GenerateKey creates a new API key using the HMAC strategy
func (h *Handler) GenerateKey(c *gin.Context) {
	var req struct {
		Name      string `json:"name" binding:"required"`
		RateLimit int    `json:"rate_limit" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.Contains(req.Name, ".") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name must not contain '.'"})
		return
	}
	if req.RateLimit == 0 {
		req.RateLimit = h.rateLimit()
	}

	key := h.Auth.GenerateHMACKey(req.Name)
	apiKey := database.APIKey{
		Key:        key,
		Name:       req.Name,
		KeyPreview: auth.KeyPreview(key),
		RateLimit:  req.RateLimit,
	}

	if err := h.DB.Create(&apiKey).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Could not create key record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":   apiKey.ID,
		"name": req.Name,
		"key":  key,
	})
}

// ListKeys returns all active API keys
func (h *Handler) ListKeys(c *gin.Context) {
	var keys []database.APIKey
	if err := h.DB.Order("id").Find(&keys).Error; err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"keys": keys})
}

// RevokeKey soft-deletes an API key
func (h *Handler) RevokeKey(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid key id"})
		return
	}
	res := h.DB.Delete(&database.APIKey{}, id)
	if res.Error != nil {
		h.fail(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		h.fail(c, gorm.ErrRecordNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Key revoked"})
}

// UpdateKeyLimit updates the rate limit for a key
func (h *Handler) UpdateKeyLimit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid key id"})
		return
	}
	var req struct {
		RateLimit int `json:"rate_limit" form:"rate_limit"`
	}

	// Try JSON first, then Form/Query
	if err := c.ShouldBindJSON(&req); err != nil {
		if err := c.ShouldBindQuery(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "rate_limit is required"})
			return
		}
	}
	if req.RateLimit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rate limit"})
		return
	}

	res := h.DB.Model(&database.APIKey{}).Where("id = ?", id).Update("rate_limit", req.RateLimit)
	if res.Error != nil {
		h.fail(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		h.fail(c, gorm.ErrRecordNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rate limit updated successfully"})
}

// GetUsage returns usage stats for a key
func (h *Handler) GetUsage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid key id"})
		return
	}
	usage, err := database.UsageHistory(h.DB, uint(id), 30)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"usage": usage})
}
