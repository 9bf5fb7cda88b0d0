package config

import (
	"strings"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.App.HTTPPort != "8080" {
		t.Fatalf("port = %q", cfg.App.HTTPPort)
	}
	if cfg.Database.Host != "localhost" || cfg.Database.Port != "5432" {
		t.Fatalf("db defaults = %+v", cfg.Database)
	}
	if cfg.JWT.ExpiresIn != 30*24*time.Hour {
		t.Fatalf("jwt expiry = %v", cfg.JWT.ExpiresIn)
	}
	if cfg.Upload.Dir != "uploads" || cfg.Upload.MaxSizeBytes != 5*1024*1024 {
		t.Fatalf("upload defaults = %+v", cfg.Upload)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("HTTP_PORT", "")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing required env")
	}
	for _, key := range []string{"HTTP_PORT", "JWT_SECRET"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q does not name %s", err, key)
		}
	}
}

func TestLoadJWTExpiresIn(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_EXPIRES_IN", "12h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.JWT.ExpiresIn != 12*time.Hour {
		t.Fatalf("jwt expiry = %v", cfg.JWT.ExpiresIn)
	}
}

func TestLoadInvalidJWTExpiresIn(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_EXPIRES_IN", "twelve hours")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for bad duration")
	}
}

func TestLoadInvalidPoolSize(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_POOL_MAX_CONNS", "-3")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative pool size")
	}
}
