package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "patient", cfg.Database.Name)
	assert.Equal(t, 60*time.Minute, cfg.JWT.AccessTokenTTL)
	assert.NotEmpty(t, cfg.JWT.Secret)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_ACCESS_TTL", "30m")
	t.Setenv("DB_MAX_CONNS", "12")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, int32(12), cfg.Database.MaxConns)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestValidateMissingPassword(t *testing.T) {
	cfg := &Config{}
	cfg.JWT.Secret = "s"
	cfg.JWT.AccessTokenTTL = time.Minute

	err := cfg.Validate()
	assert.ErrorContains(t, err, "DB_PASSWORD")
}

func TestValidateMissingSecret(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Password = "p"
	cfg.JWT.AccessTokenTTL = time.Minute

	err := cfg.Validate()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:        "db.local",
			Port:        "5433",
			User:        "clinic",
			Password:    "pw",
			Name:        "patient",
			SSLMode:     "require",
			ConnTimeout: 10 * time.Second,
		},
	}

	assert.Equal(t,
		"postgres://clinic:pw@db.local:5433/patient?sslmode=require&connect_timeout=10",
		cfg.GetDSN())
}
