package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_USER", "curriculum")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "curriculum")
	t.Setenv("JWT_SECRET", "jwt-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)
	for _, key := range []string{"SERVER_PORT", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS", "API_KEY", "GITHUB_TOKEN",
		"GITHUB_BASE_URL", "CURRICULUM_REPOSITORY", "CONTENT_IMPORT_CRON", "CONTENT_IMPORT_TIMEOUT", "GITHUB_TIMEOUT",
		"JWT_ACCESS_TOKEN_EXPIRY", "REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "theodinproject/curriculum", cfg.GitHub.Repository)
	assert.Equal(t, 10*time.Second, cfg.GitHub.Timeout)
	assert.Equal(t, "0 3 * * *", cfg.Import.Cron)
	assert.Equal(t, 30*time.Minute, cfg.Import.Timeout)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
	assert.Empty(t, cfg.Redis.Password)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, time.Hour, cfg.JWT.AccessTokenExpiry)
	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, "curriculum:secret@tcp(localhost:3306)/curriculum?parseTime=true&charset=utf8mb4&clientFoundRows=true", cfg.DSN())
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, ,https://b.example.com ")
	t.Setenv("CURRICULUM_REPOSITORY", "acme/lessons")
	t.Setenv("GITHUB_TIMEOUT", "3s")
	t.Setenv("CONTENT_IMPORT_CRON", "*/30 * * * *")
	t.Setenv("API_KEY", "admin-key")
	t.Setenv("CONTENT_IMPORT_TIMEOUT", "5m")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Minute, cfg.Import.Timeout)
	assert.Equal(t, "redis:6380", cfg.RedisAddr())
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "acme/lessons", cfg.GitHub.Repository)
	assert.Equal(t, 3*time.Second, cfg.GitHub.Timeout)
	assert.Equal(t, "*/30 * * * *", cfg.Import.Cron)
	assert.Equal(t, "admin-key", cfg.APIKey)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name          string
		key           string
		value         string
		errorContains string
	}{
		{name: "missing host", key: "DB_HOST", value: "", errorContains: "DB_HOST is required"},
		{name: "invalid port", key: "DB_PORT", value: "abc", errorContains: "invalid DB_PORT"},
		{name: "missing jwt secret", key: "JWT_SECRET", value: "", errorContains: "JWT_SECRET is required"},
		{name: "invalid server port", key: "SERVER_PORT", value: "http", errorContains: "invalid SERVER_PORT"},
		{name: "invalid timeout", key: "GITHUB_TIMEOUT", value: "soon", errorContains: "invalid GITHUB_TIMEOUT"},
		{name: "invalid repository", key: "CURRICULUM_REPOSITORY", value: "curriculum", errorContains: "invalid CURRICULUM_REPOSITORY"},
		{name: "invalid import timeout", key: "CONTENT_IMPORT_TIMEOUT", value: "never", errorContains: "invalid CONTENT_IMPORT_TIMEOUT"},
		{name: "invalid redis port", key: "REDIS_PORT", value: "redis", errorContains: "invalid REDIS_PORT"},
		{name: "invalid redis db", key: "REDIS_DB", value: "first", errorContains: "invalid REDIS_DB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
			assert.Nil(t, cfg)
		})
	}
}
