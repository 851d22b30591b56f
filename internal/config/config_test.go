package config

import (
	"testing"
	"time"
)

// clearEnv blanks every variable Load consults so the test observes
// genuine defaults regardless of the machine's environment or a local
// .env file.
func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"SERVER_PORT", "GIN_MODE", "LOG_LEVEL", "LOG_FORMAT",
		"DATABASE_URL", "MAX_DB_CONNS", "REDIS_URL",
		"SESSION_TTL_MINUTES", "BCRYPT_COST",
		"ADMIN_USERNAME", "ADMIN_PASSWORD", "ALLOWED_ORIGINS",
	}
	for _, key := range keys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.ServerPort != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.ServerPort)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("expected 30m session TTL, got %s", cfg.SessionTTL)
	}
	if cfg.AdminUsername != "admin" {
		t.Errorf("expected default admin username, got %s", cfg.AdminUsername)
	}
	if cfg.AdminPassword != "" {
		t.Error("admin password must have no default")
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("SESSION_TTL_MINUTES", "5")
	t.Setenv("MAX_DB_CONNS", "not-a-number")

	cfg := Load()

	if cfg.ServerPort != "9000" {
		t.Errorf("expected port 9000, got %s", cfg.ServerPort)
	}
	if cfg.SessionTTL != 5*time.Minute {
		t.Errorf("expected 5m session TTL, got %s", cfg.SessionTTL)
	}
	if cfg.MaxDBConns != 16 {
		t.Errorf("unparsable int should fall back to default, got %d", cfg.MaxDBConns)
	}
}

func TestParseOrigins(t *testing.T) {
	if got := parseOrigins(""); got != nil {
		t.Errorf("empty input should mean allow-all (nil), got %v", got)
	}

	got := parseOrigins("https://a.example, https://b.example ,")
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Errorf("unexpected origins: %v", got)
	}
}
