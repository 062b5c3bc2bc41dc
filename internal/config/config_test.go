package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"APP_ENV", "PORT", "SHUTDOWN_TIMEOUT", "LOG_LEVEL", "LOG_ENCODING",
		"PRODUCTS_FILE", "CUSTOMERS_FILE", "SEED_DATABASE_URL",
		"METRICS_ENABLED", "METRICS_TOKEN", "WRITE_LIMIT_PER_MIN",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Server.Port != "8080" {
		t.Fatalf("port=%q", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Fatalf("shutdown=%v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Logger.Encoding != "json" || cfg.Logger.Level != "info" {
		t.Fatalf("logger=%+v", cfg.Logger)
	}
	if cfg.Seed.ProductsFile != "data/products.txt" || cfg.Seed.DatabaseURL != "" {
		t.Fatalf("seed=%+v", cfg.Seed)
	}
	if !cfg.MetricsEnabled || cfg.WriteLimitPerMin != 120 {
		t.Fatalf("metrics=%v limit=%d", cfg.MetricsEnabled, cfg.WriteLimitPerMin)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "3")
	t.Setenv("SEED_DATABASE_URL", "postgres://localhost/store")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("WRITE_LIMIT_PER_MIN", "7")

	cfg := Load()
	if cfg.Server.Port != "9090" || cfg.Server.ShutdownTimeout != 3*time.Second {
		t.Fatalf("server=%+v", cfg.Server)
	}
	if cfg.Seed.DatabaseURL != "postgres://localhost/store" {
		t.Fatalf("db=%q", cfg.Seed.DatabaseURL)
	}
	if cfg.MetricsEnabled || cfg.WriteLimitPerMin != 7 {
		t.Fatalf("metrics=%v limit=%d", cfg.MetricsEnabled, cfg.WriteLimitPerMin)
	}
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("WRITE_LIMIT_PER_MIN", "lots")
	t.Setenv("METRICS_ENABLED", "maybe")

	cfg := Load()
	if cfg.WriteLimitPerMin != 120 || !cfg.MetricsEnabled {
		t.Fatalf("limit=%d metrics=%v", cfg.WriteLimitPerMin, cfg.MetricsEnabled)
	}
}

func TestLoadDevelopmentLogger(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_ENCODING", "")

	cfg := Load()
	if cfg.Logger.Encoding != "console" || cfg.Logger.Level != "debug" {
		t.Fatalf("logger=%+v", cfg.Logger)
	}
}
