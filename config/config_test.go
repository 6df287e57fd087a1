package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("JWT_SECRET_KEY", "")
	t.Setenv("MONGO_DB", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsTest())
	assert.Equal(t, "test_secret_key", cfg.JWT.Secret)
	assert.Equal(t, "stickynotes", cfg.Database.DatabaseName)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessLifetime)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoadRequiresSecretOutsideTests(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET_KEY")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("JWT_SECRET_KEY", "s3cret")
	t.Setenv("JWT_EXPIRATION_TIME", "3600")
	t.Setenv("REFRESH_TOKEN_EXPIRATION_TIME", "48h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, http://127.0.0.1:5173")
	t.Setenv("MONGO_MAX_CONN_IDLE_TIME", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.JWT.AccessLifetime)
	assert.Equal(t, 48*time.Hour, cfg.JWT.RefreshLifetime)
	assert.Equal(t, []string{"http://localhost:5173", "http://127.0.0.1:5173"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.Database.MaxConnIdleTime)
}
