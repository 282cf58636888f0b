package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the server, serverless entry and CLI read from the environment.
type Config struct {
	Environment      string
	Port             string
	GinMode          string
	LogLevel         string
	DatabaseURL      string
	DataPath         string
	JWTSecret        string
	APIMasterSecret  string
	AdminUsername    string
	AdminPassword    string
	DefaultRateLimit int
	TokenTTLHours    int
}

// IsProduction reports whether APP_ENV is "production".
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// LoadDotEnv loads the first .env found in the working directory or up to two parents.
// It returns the path loaded, or "" when none exists.
func LoadDotEnv() string {
	for _, p := range []string{".env", filepath.Join("..", ".env"), filepath.Join("..", "..", ".env")} {
		if _, err := os.Stat(p); err == nil {
			if godotenv.Load(p) == nil {
				return p
			}
		}
	}
	return ""
}

// Load reads configuration from environment variables, with defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Environment:      v.GetString("APP_ENV"),
		Port:             v.GetString("PORT"),
		GinMode:          v.GetString("GIN_MODE"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		DatabaseURL:      v.GetString("DATABASE_URL"),
		DataPath:         v.GetString("DATA_PATH"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		APIMasterSecret:  v.GetString("API_MASTER_SECRET"),
		AdminUsername:    v.GetString("ADMIN_USERNAME"),
		AdminPassword:    v.GetString("ADMIN_PASSWORD"),
		DefaultRateLimit: v.GetInt("DEFAULT_RATE_LIMIT"),
		TokenTTLHours:    v.GetInt("TOKEN_TTL_HOURS"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "8000")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DATA_PATH", "scheduler.db")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("API_MASTER_SECRET", "")
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD", "admin123")
	v.SetDefault("DEFAULT_RATE_LIMIT", 10000)
	v.SetDefault("TOKEN_TTL_HOURS", 24)
}

func (c *Config) validate() error {
	if c.DefaultRateLimit <= 0 {
		return errors.New("DEFAULT_RATE_LIMIT must be positive")
	}
	if c.TokenTTLHours <= 0 {
		return errors.New("TOKEN_TTL_HOURS must be positive")
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be debug, release or test, got %q", c.GinMode)
	}
	if !c.IsProduction() {
		return nil
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required in production")
	}
	if c.APIMasterSecret == "" {
		return errors.New("API_MASTER_SECRET is required in production")
	}
	return nil
}
