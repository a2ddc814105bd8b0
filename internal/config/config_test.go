package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/propease_test")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev-secret-change-in-production", cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.DraftTTL)
	assert.Equal(t, "0", cfg.FloorDefaultArea)
	assert.Equal(t, "0", cfg.FloorDefaultQuantity)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/propease_test")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("ALLOWED_ORIGINS", "https://app.propease.in, http://localhost:5173 ,")
	t.Setenv("DRAFT_TTL_HOURS", "6")
	t.Setenv("WORKER_COUNT", "not-a-number")
	t.Setenv("ENABLE_EMAIL_NOTIFICATIONS", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://app.propease.in", "http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Equal(t, 6*time.Hour, cfg.DraftTTL)
	assert.Equal(t, 5, cfg.WorkerCount)
	assert.True(t, cfg.EnableEmailNotifications)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("database url required", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("production needs a jwt secret", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/propease_test")
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("JWT_SECRET", "")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("draft ttl must be positive", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/propease_test")
		t.Setenv("DRAFT_TTL_HOURS", "0")
		_, err := Load()
		assert.Error(t, err)
	})
}
