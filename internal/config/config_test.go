package config

import (
	"os"
	"path/filepath"
	"testing"
)

func setCredentials(t *testing.T) {
	t.Helper()
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD", "secret")
}

func TestConfig_Defaults(t *testing.T) {
	setCredentials(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.PortalBaseURL != "https://api.webutsav.com" {
		t.Errorf("PortalBaseURL = %q, want default", cfg.PortalBaseURL)
	}
	if cfg.HTTPPort != 3200 {
		t.Errorf("HTTPPort = %d, want 3200", cfg.HTTPPort)
	}
	if cfg.NotifyTTLSec != 5 {
		t.Errorf("NotifyTTLSec = %d, want 5", cfg.NotifyTTLSec)
	}
}

func TestConfig_RequiresCredentials(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("ADMIN_PASSWORD", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail without admin credentials")
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	setCredentials(t)
	t.Setenv("PORTAL_BASE_URL", "http://localhost:9000")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("PORTAL_RATE_RPS", "2.5")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.PortalBaseURL != "http://localhost:9000" {
		t.Errorf("PortalBaseURL = %q", cfg.PortalBaseURL)
	}
	if cfg.HTTPPort != 8080 {
		t.Errorf("HTTPPort = %d", cfg.HTTPPort)
	}
	if cfg.PortalRateRPS != 2.5 {
		t.Errorf("PortalRateRPS = %v", cfg.PortalRateRPS)
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}

func TestConfig_YAMLFileWithEnvPrecedence(t *testing.T) {
	setCredentials(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "portal_base_url: http://from-file:9999\nhttp_port: 4000\n"
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ADMIN_CONFIG_FILE", path)
	t.Setenv("HTTP_PORT", "5000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.PortalBaseURL != "http://from-file:9999" {
		t.Errorf("PortalBaseURL = %q, want file value", cfg.PortalBaseURL)
	}
	if cfg.HTTPPort != 5000 {
		t.Errorf("HTTPPort = %d, env must win over file", cfg.HTTPPort)
	}
}

func TestConfig_MissingFile(t *testing.T) {
	setCredentials(t)
	t.Setenv("ADMIN_CONFIG_FILE", "/nonexistent/config.yaml")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail when the named config file is missing")
	}
}
