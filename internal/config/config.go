// Package config reads runtime settings from the environment.
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	Seed   SeedConfig

	MetricsEnabled   bool
	MetricsToken     string
	WriteLimitPerMin int
}

type ServerConfig struct {
	AppEnv          string
	Port            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

// SeedConfig selects the bulk load source. DatabaseURL wins over the files
// when set.
type SeedConfig struct {
	ProductsFile  string
	CustomersFile string
	DatabaseURL   string
}

func Load() Config {
	cfg := Config{
		Server: ServerConfig{
			AppEnv:          getEnv("APP_ENV", "production"),
			Port:            getEnv("PORT", "8080"),
			ShutdownTimeout: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT", 10)) * time.Second,
		},
		Logger: LoggerConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			Encoding: getEnv("LOG_ENCODING", "json"),
		},
		Seed: SeedConfig{
			ProductsFile:  getEnv("PRODUCTS_FILE", "data/products.txt"),
			CustomersFile: getEnv("CUSTOMERS_FILE", "data/customers.txt"),
			DatabaseURL:   getEnv("SEED_DATABASE_URL", ""),
		},
		MetricsEnabled:   getEnvBool("METRICS_ENABLED", true),
		MetricsToken:     getEnv("METRICS_TOKEN", ""),
		WriteLimitPerMin: getEnvInt("WRITE_LIMIT_PER_MIN", 120),
	}

	if cfg.Server.AppEnv == "development" {
		cfg.Logger.Encoding = getEnv("LOG_ENCODING", "console")
		cfg.Logger.Level = getEnv("LOG_LEVEL", "debug")
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
