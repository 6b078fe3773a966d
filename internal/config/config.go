// Package config loads application configuration from an optional YAML file
// and environment variables. Environment variables win.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	// remote portal API
	PortalBaseURL    string  `yaml:"portal_base_url"`
	PortalTimeoutSec int     `yaml:"portal_timeout_seconds"`
	PortalRateRPS    float64 `yaml:"portal_rate_rps"`
	PortalRateBurst  int     `yaml:"portal_rate_burst"`

	// admin session
	AdminEmail    string `yaml:"admin_email"`
	AdminPassword string `yaml:"admin_password"`
	SessionTTLMin int    `yaml:"session_ttl_minutes"`

	// audit store
	AuditDBPath string `yaml:"audit_db_path"`

	// server
	HTTPPort       int      `yaml:"http_port"`
	AllowedOrigins []string `yaml:"allowed_origins"`

	// notifications
	NotifyTTLSec int `yaml:"notify_ttl_seconds"`

	// logging
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// Load reads configuration with sensible defaults. If ADMIN_CONFIG_FILE is
// set, that YAML file is read first; environment variables override its values.
func Load() (*Config, error) {
	cfg := &Config{
		PortalBaseURL:    "https://api.webutsav.com",
		PortalTimeoutSec: 30,
		PortalRateRPS:    10,
		PortalRateBurst:  5,
		SessionTTLMin:    12 * 60,
		AuditDBPath:      "./data/audit.db",
		HTTPPort:         3200,
		AllowedOrigins:   []string{"*"},
		NotifyTTLSec:     5,
		LogLevel:         "info",
		LogFile:          "",
	}

	if path := os.Getenv("ADMIN_CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.PortalBaseURL = getEnv("PORTAL_BASE_URL", cfg.PortalBaseURL)
	cfg.PortalTimeoutSec = getEnvInt("PORTAL_TIMEOUT_SECONDS", cfg.PortalTimeoutSec)
	cfg.PortalRateRPS = getEnvFloat("PORTAL_RATE_RPS", cfg.PortalRateRPS)
	cfg.PortalRateBurst = getEnvInt("PORTAL_RATE_BURST", cfg.PortalRateBurst)
	cfg.AdminEmail = getEnv("ADMIN_EMAIL", cfg.AdminEmail)
	cfg.AdminPassword = getEnv("ADMIN_PASSWORD", cfg.AdminPassword)
	cfg.SessionTTLMin = getEnvInt("SESSION_TTL_MINUTES", cfg.SessionTTLMin)
	cfg.AuditDBPath = getEnv("AUDIT_DB_PATH", cfg.AuditDBPath)
	cfg.HTTPPort = getEnvInt("HTTP_PORT", cfg.HTTPPort)
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}
	cfg.NotifyTTLSec = getEnvInt("NOTIFY_TTL_SECONDS", cfg.NotifyTTLSec)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFile = getEnv("LOG_FILE", cfg.LogFile)

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil, fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt returns the integer value of an environment variable or a default.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// getEnvFloat returns the float value of an environment variable or a default.
func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
