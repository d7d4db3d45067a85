// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	JWT      JWTConfig
	GitHub   GitHubConfig
	Import   ImportConfig
	Redis    RedisConfig
	APIKey   string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// JWTConfig holds JWT access token settings
type JWTConfig struct {
	Secret            string
	AccessTokenExpiry time.Duration
}

// GitHubConfig holds the settings of the upstream content client
type GitHubConfig struct {
	Token      string
	BaseURL    string
	Repository string
	Timeout    time.Duration
}

// ImportConfig holds the settings of the queued content import
type ImportConfig struct {
	Cron    string
	Timeout time.Duration
}

// RedisConfig holds the settings of the Redis server backing the task queue
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// .env is optional
	godotenv.Load()

	cfg := &Config{}
	var err error

	if cfg.Database.Host, err = requiredEnv("DB_HOST"); err != nil {
		return nil, err
	}
	dbPort, err := requiredEnv("DB_PORT")
	if err != nil {
		return nil, err
	}
	if cfg.Database.Port, err = strconv.Atoi(dbPort); err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	if cfg.Database.User, err = requiredEnv("DB_USER"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requiredEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.DBName, err = requiredEnv("DB_NAME"); err != nil {
		return nil, err
	}

	if cfg.Server.Port, err = strconv.Atoi(envOrDefault("SERVER_PORT", "8080")); err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	cfg.Logging.Level = envOrDefault("LOG_LEVEL", "info")
	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	if cfg.JWT.Secret, err = requiredEnv("JWT_SECRET"); err != nil {
		return nil, err
	}
	if cfg.JWT.AccessTokenExpiry, err = time.ParseDuration(envOrDefault("JWT_ACCESS_TOKEN_EXPIRY", "1h")); err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_EXPIRY: %w", err)
	}

	// Admin routes reject every request while API_KEY is unset
	cfg.APIKey = os.Getenv("API_KEY")

	cfg.GitHub.Token = os.Getenv("GITHUB_TOKEN")
	cfg.GitHub.BaseURL = os.Getenv("GITHUB_BASE_URL")
	cfg.GitHub.Repository = envOrDefault("CURRICULUM_REPOSITORY", "theodinproject/curriculum")
	if !strings.Contains(cfg.GitHub.Repository, "/") {
		return nil, fmt.Errorf("invalid CURRICULUM_REPOSITORY %q, expected owner/name", cfg.GitHub.Repository)
	}
	if cfg.GitHub.Timeout, err = time.ParseDuration(envOrDefault("GITHUB_TIMEOUT", "10s")); err != nil {
		return nil, fmt.Errorf("invalid GITHUB_TIMEOUT: %w", err)
	}

	cfg.Import.Cron = envOrDefault("CONTENT_IMPORT_CRON", "0 3 * * *")
	if cfg.Import.Timeout, err = time.ParseDuration(envOrDefault("CONTENT_IMPORT_TIMEOUT", "30m")); err != nil {
		return nil, fmt.Errorf("invalid CONTENT_IMPORT_TIMEOUT: %w", err)
	}

	cfg.Redis.Host = envOrDefault("REDIS_HOST", "localhost")
	if cfg.Redis.Port, err = strconv.Atoi(envOrDefault("REDIS_PORT", "6379")); err != nil {
		return nil, fmt.Errorf("invalid REDIS_PORT: %w", err)
	}
	// Optional
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.DB, err = strconv.Atoi(envOrDefault("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	return cfg, nil
}

// DSN returns the database connection string
//
// clientFoundRows makes UPDATE report matched rather than changed rows.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&clientFoundRows=true",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
	)
}

// RedisAddr returns the host:port address of the Redis server
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

func requiredEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return value, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// parseOrigins splits a comma-separated origin list, allowing every origin when it is empty
func parseOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
