package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if cfg.SMTP.Port != 587 {
		t.Errorf("SMTP.Port = %d", cfg.SMTP.Port)
	}
	if cfg.SMTP.TLS != "auto" {
		t.Errorf("SMTP.TLS = %q", cfg.SMTP.TLS)
	}
	if cfg.SMTP.FromName != "Courrier" {
		t.Errorf("SMTP.FromName = %q", cfg.SMTP.FromName)
	}
	if cfg.Email.TemplatesDir != "./templates" {
		t.Errorf("Email.TemplatesDir = %q", cfg.Email.TemplatesDir)
	}
	if cfg.Email.BaseURL != "http://localhost:3000" {
		t.Errorf("Email.BaseURL = %q", cfg.Email.BaseURL)
	}
}

func TestLoadMissingFileIsTolerated(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load with missing file: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
}

func TestLoadYAMLAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  addr: ":9090"
auth:
  api_key: "from-yaml"
smtp:
  host: smtp.example.com
  port: 465
  tls: ssl
email:
  base_url: https://app.example.com
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write yaml: %v", err)
	}

	// El env pisa al YAML.
	t.Setenv("API_KEY", "from-env")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_TLS", "STARTTLS")
	t.Setenv("SERVER_CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("METRICS_ENABLED", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q, want yaml value", cfg.Server.Addr)
	}
	if cfg.Auth.APIKey != "from-env" {
		t.Errorf("Auth.APIKey = %q, env must win", cfg.Auth.APIKey)
	}
	if cfg.SMTP.Port != 2525 {
		t.Errorf("SMTP.Port = %d, env must win", cfg.SMTP.Port)
	}
	if cfg.SMTP.TLS != "starttls" {
		t.Errorf("SMTP.TLS = %q, want lowercased env value", cfg.SMTP.TLS)
	}
	if cfg.SMTP.Host != "smtp.example.com" {
		t.Errorf("SMTP.Host = %q", cfg.SMTP.Host)
	}
	if len(cfg.Server.CORSAllowedOrigins) != 2 || cfg.Server.CORSAllowedOrigins[1] != "https://b.example.com" {
		t.Errorf("CORSAllowedOrigins = %v", cfg.Server.CORSAllowedOrigins)
	}
	if !cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled = false, want true")
	}
}

func TestTestMode(t *testing.T) {
	var cfg Config
	if !cfg.TestMode() {
		t.Fatal("no credentials: TestMode must be true")
	}

	cfg.SMTP.Username = "apikey"
	if !cfg.TestMode() {
		t.Fatal("missing password: TestMode must be true")
	}

	cfg.SMTP.Password = "secret"
	if cfg.TestMode() {
		t.Fatal("both credentials set: TestMode must be false")
	}

	cfg.SMTP.Password = "   "
	if !cfg.TestMode() {
		t.Fatal("blank password: TestMode must be true")
	}
}
