package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Upload   UploadConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	Host         string
	Port         string
	Name         string
	User         string
	Password     string
	SSLMode      string
	PoolMaxConns int32

	MigrationsDir string
}

type JWTConfig struct {
	Secret    string
	ExpiresIn time.Duration
}

type UploadConfig struct {
	Dir          string
	MaxSizeBytes int64
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	// Local development convenience; the file is optional.
	_ = godotenv.Load()

	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, fallback string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "job-portal"),
		Environment: opt("APP_ENV", "development"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		Host:          opt("DB_HOST", "localhost"),
		Port:          opt("DB_PORT", "5432"),
		Name:          opt("DB_NAME", "job_portal"),
		User:          opt("DB_USER", "postgres"),
		Password:      os.Getenv("DB_PASSWORD"),
		SSLMode:       opt("DB_SSL_MODE", "disable"),
		MigrationsDir: opt("DB_MIGRATIONS_DIR", "migrations"),
	}
	if raw := strings.TrimSpace(os.Getenv("DB_POOL_MAX_CONNS")); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid DB_POOL_MAX_CONNS: %q", raw)
		}
		cfg.Database.PoolMaxConns = int32(n)
	}

	cfg.JWT = JWTConfig{
		Secret:    req("JWT_SECRET"),
		ExpiresIn: 30 * 24 * time.Hour,
	}
	if raw := strings.TrimSpace(os.Getenv("JWT_EXPIRES_IN")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid JWT_EXPIRES_IN: %q", raw)
		}
		cfg.JWT.ExpiresIn = d
	}

	cfg.Upload = UploadConfig{
		Dir:          opt("UPLOAD_DIR", "uploads"),
		MaxSizeBytes: 5 * 1024 * 1024,
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}
