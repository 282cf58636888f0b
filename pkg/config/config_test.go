package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "PORT", "DATA_PATH", "DEFAULT_RATE_LIMIT", "TOKEN_TTL_HOURS", "ADMIN_USERNAME"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "scheduler.db", cfg.DataPath)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, 10000, cfg.DefaultRateLimit)
	assert.Equal(t, 24, cfg.TokenTTLHours)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEFAULT_RATE_LIMIT", "50")
	t.Setenv("DATABASE_URL", "postgres://localhost/sched")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 50, cfg.DefaultRateLimit)
	assert.Equal(t, "postgres://localhost/sched", cfg.DatabaseURL)
}

func TestLoad_ProductionNeedsSecrets(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("API_MASTER_SECRET", "")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "jwt")
	t.Setenv("API_MASTER_SECRET", "master")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_RejectsBadRateLimit(t *testing.T) {
	t.Setenv("DEFAULT_RATE_LIMIT", "-5")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SCHEDULER_DOTENV_PROBE=found\n"), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("SCHEDULER_DOTENV_PROBE", "")
	os.Unsetenv("SCHEDULER_DOTENV_PROBE")

	assert.Equal(t, ".env", LoadDotEnv())
	assert.Equal(t, "found", os.Getenv("SCHEDULER_DOTENV_PROBE"))
}

func TestLoad_RejectsBadGinMode(t *testing.T) {
	t.Setenv("GIN_MODE", "verbose")

	_, err := Load()
	assert.Error(t, err)
}
