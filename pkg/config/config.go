// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, sessions, limits and logging

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Session contains preview session configuration
	Session SessionConfig

	// RateLimit contains per-client request limits
	RateLimit RateLimitConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// MaxUploadBytes bounds the size of an uploaded file and its request body
	MaxUploadBytes int64

	// MaxConnections caps concurrently accepted connections
	MaxConnections int

	// SettleTimeout bounds how long an upload waits for the preview to render
	SettleTimeout time.Duration

	// AllowedOrigins lists CORS origins
	AllowedOrigins []string
}

// SessionConfig holds preview session configuration
type SessionConfig struct {
	// TTL is how long an idle session is kept
	TTL time.Duration

	// CleanupInterval is how often expired sessions are purged
	CleanupInterval time.Duration
}

// RateLimitConfig holds per-IP rate limiting configuration
type RateLimitConfig struct {
	// Requests is the number of requests allowed per window
	Requests int

	// Window is the rate limit window
	Window time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is the minimum level logged
	Level string

	// Format is "text" or "json"
	Format string

	// File is an optional rotating log file path
	File string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvOrDefault("PORT", "8000"),
			MaxUploadBytes: int64(getEnvAsIntOrDefault("MAX_UPLOAD_BYTES", 1<<20)),
			MaxConnections: getEnvAsIntOrDefault("MAX_CONNECTIONS", 256),
			SettleTimeout:  getEnvAsSecondsOrDefault("SETTLE_TIMEOUT", 10),
			AllowedOrigins: splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),
		},
		Session: SessionConfig{
			TTL:             getEnvAsSecondsOrDefault("SESSION_TTL", 1800),
			CleanupInterval: getEnvAsSecondsOrDefault("SESSION_CLEANUP", 300),
		},
		RateLimit: RateLimitConfig{
			Requests: getEnvAsIntOrDefault("RATE_LIMIT", 120),
			Window:   getEnvAsSecondsOrDefault("RATE_WINDOW", 60),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsSecondsOrDefault reads a whole number of seconds
func getEnvAsSecondsOrDefault(key string, defaultSeconds int) time.Duration {
	return time.Duration(getEnvAsIntOrDefault(key, defaultSeconds)) * time.Second
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.MaxUploadBytes < 1 {
		return errors.New("max upload bytes must be positive")
	}

	if c.Server.MaxConnections < 1 {
		return errors.New("max connections must be at least 1")
	}

	if c.Server.SettleTimeout < time.Second {
		return errors.New("settle timeout must be at least 1 second")
	}

	if len(c.Server.AllowedOrigins) == 0 {
		return errors.New("at least one CORS origin is required")
	}

	if c.Session.TTL < time.Second {
		return errors.New("session ttl must be at least 1 second")
	}

	if c.Session.CleanupInterval < time.Second {
		return errors.New("session cleanup interval must be at least 1 second")
	}

	if c.RateLimit.Requests < 0 || c.RateLimit.Window < 0 {
		return errors.New("rate limit values cannot be negative")
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("log format must be 'text' or 'json'")
	}

	return nil
}
