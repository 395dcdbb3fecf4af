package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.Psql.ConnectTimeout)
	assert.Equal(t, 3*time.Second, cfg.Billing.Timeout)
	assert.False(t, cfg.Billing.Remote())
	assert.ErrorIs(t, cfg.ValidateServer(), ErrMissingJWTSecret)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://brands.example.com,https://admin.example.com")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	t.Setenv("BILLING_URL", "https://billing.internal:8443")
	t.Setenv("BILLING_TIMEOUT", "750ms")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Len(t, cfg.HTTP.AllowedOrigins, 2)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.NoError(t, cfg.ValidateServer())
	assert.True(t, cfg.Billing.Remote())
	assert.Equal(t, "billing.internal:8443", cfg.Billing.URL.Host)
	assert.Equal(t, 750*time.Millisecond, cfg.Billing.Timeout)
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")
	_, err := Load()
	assert.Error(t, err)
}
