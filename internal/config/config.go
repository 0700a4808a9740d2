// Package config loads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Analysis AnalysisConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	CORSOrigins     []string
	ReadTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// AnalysisConfig holds dataset and chart settings
type AnalysisConfig struct {
	PreviewRows int
	MaxSessions int
}

// LoadDotEnv loads variables from the given .env files (default ".env").
// Missing files are ignored; variables already set are kept.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnvOrDefault("PORT", "8080"),
			CORSOrigins:     getEnvListOrDefault("CORS_ORIGINS", []string{"http://localhost:3000", "http://127.0.0.1:3000"}),
			ReadTimeout:     getEnvDurationOrDefault("READ_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getEnvDurationOrDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
		},
		Analysis: AnalysisConfig{
			PreviewRows: getEnvIntOrDefault("PREVIEW_ROWS", 10),
			MaxSessions: getEnvIntOrDefault("MAX_SESSIONS", 100),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Addr returns the listen address for the server port.
func (c ServerConfig) Addr() string {
	return ":" + c.Port
}

func validate(cfg *Config) error {
	if port, err := strconv.Atoi(cfg.Server.Port); err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("PORT must be a number between 1 and 65535, got %q", cfg.Server.Port)
	}
	if cfg.Analysis.PreviewRows < 0 {
		return fmt.Errorf("PREVIEW_ROWS must not be negative, got %d", cfg.Analysis.PreviewRows)
	}
	if cfg.Analysis.MaxSessions <= 0 {
		return fmt.Errorf("MAX_SESSIONS must be positive, got %d", cfg.Analysis.MaxSessions)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
