package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Vprince099/restaurant-scheduler/pkg/database"
)

var jwtAlgorithm = jwt.SigningMethodHS256

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrInvalidKeyFormat = errors.New("invalid key format")
	ErrInvalidSignature = errors.New("invalid signature")
)

// Claims represents the JWT claims
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service issues admin tokens and signs API keys.
type Service struct {
	jwtSecret    []byte
	masterSecret []byte
	tokenTTL     time.Duration
	bcryptCost   int
	now          func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithBcryptCost overrides the password hashing cost.
func WithBcryptCost(cost int) Option {
	return func(s *Service) { s.bcryptCost = cost }
}

// WithClock overrides the time source used for token expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService builds a Service. tokenTTL <= 0 means 24 hours.
func NewService(jwtSecret, masterSecret string, tokenTTL time.Duration, opts ...Option) *Service {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	s := &Service{
		jwtSecret:    []byte(jwtSecret),
		masterSecret: []byte(masterSecret),
		tokenTTL:     tokenTTL,
		bcryptCost:   14,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HashPassword hashes a password using bcrypt
func (s *Service) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with its hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// CreateToken creates a new JWT token for a user
func (s *Service) CreateToken(username string) (string, error) {
	now := s.now()
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwtAlgorithm, claims)
	return token.SignedString(s.jwtSecret)
}

// VerifyToken verifies a JWT token
func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwtAlgorithm {
			return nil, ErrInvalidToken
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// EnsureAdminExists creates the admin account when the table is empty.
// It reports whether an account was created.
func (s *Service) EnsureAdminExists(db *gorm.DB, username, password string) (bool, error) {
	var count int64
	if err := db.Model(&database.MasterUser{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return false, err
	}
	user := database.MasterUser{
		Username:     username,
		PasswordHash: hash,
	}
	if err := db.Create(&user).Error; err != nil {
		return false, err
	}
	return true, nil
}

// Authenticate checks a username and password against master_users.
func (s *Service) Authenticate(db *gorm.DB, username, password string) (*database.MasterUser, error) {
	var user database.MasterUser
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	if !CheckPasswordHash(password, user.PasswordHash) {
		return nil, bcrypt.ErrMismatchedHashAndPassword
	}
	return &user, nil
}

// GenerateHMACKey creates a signed API key using HMAC-SHA256
func (s *Service) GenerateHMACKey(userID string) string {
	return userID + "." + s.sign(userID)
}

// VerifyHMACKey validates an HMAC-signed API key and returns its user id.
func (s *Service) VerifyHMACKey(key string) (string, error) {
	userID, signature, ok := strings.Cut(key, ".")
	if !ok || userID == "" || strings.Contains(signature, ".") {
		return "", ErrInvalidKeyFormat
	}
	if !hmac.Equal([]byte(signature), []byte(s.sign(userID))) {
		return "", ErrInvalidSignature
	}
	return userID, nil
}

func (s *Service) sign(userID string) string {
	h := hmac.New(sha256.New, s.masterSecret)
	h.Write([]byte(userID))
	return hex.EncodeToString(h.Sum(nil))
}

// KeyPreview masks a key for listings, e.g. "kit...9f3a".
func KeyPreview(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:3] + "..." + key[len(key)-4:]
}
