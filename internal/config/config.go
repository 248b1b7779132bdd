// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Supported values for Config.DatabaseDriver.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseDriver selects the store: "postgres" (default) or "sqlite".
	DatabaseDriver string

	// DatabaseURL is the Postgres connection string or SQLite DSN. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"]. Set CORS_ORIGINS to a
	// comma-separated list to override.
	CORSOrigins []string

	// MaxBodyBytes caps request body size. Defaults to 1 MiB.
	MaxBodyBytes int64

	// MigrateOnStart applies pending migrations before serving. Defaults to true.
	MigrateOnStart bool
}

// knownVars are the environment variables Load reads. Everything else in the
// environment is ignored so unrelated variables never leak into config.
var knownVars = map[string]bool{
	"PORT":             true,
	"DATABASE_DRIVER":  true,
	"DATABASE_URL":     true,
	"LOG_LEVEL":        true,
	"CORS_ORIGINS":     true,
	"MAX_BODY_BYTES":   true,
	"MIGRATE_ON_START": true,
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set, or
// describing the first malformed value.
func Load() (Config, error) {
	k := koanf.New(".")

	// Keys are lowercased: DATABASE_URL -> database_url. Returning "" drops a variable.
	err := k.Load(env.Provider("", ".", func(s string) string {
		if !knownVars[s] {
			return ""
		}
		return strings.ToLower(s)
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("config.Load: read environment: %w", err)
	}

	cfg := Config{
		Port:           getString(k, "port", "8080"),
		DatabaseDriver: getString(k, "database_driver", DriverPostgres),
		DatabaseURL:    k.String("database_url"),
		LogLevel:       getString(k, "log_level", "info"),
		CORSOrigins:    splitCSV(getString(k, "cors_origins", "http://localhost:5173")),
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	if cfg.DatabaseDriver != DriverPostgres && cfg.DatabaseDriver != DriverSQLite {
		return Config{}, fmt.Errorf("DATABASE_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, cfg.DatabaseDriver)
	}

	cfg.MaxBodyBytes, err = strconv.ParseInt(getString(k, "max_body_bytes", "1048576"), 10, 64)
	if err != nil || cfg.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("MAX_BODY_BYTES must be a positive integer, got %q", k.String("max_body_bytes"))
	}

	cfg.MigrateOnStart, err = strconv.ParseBool(getString(k, "migrate_on_start", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("MIGRATE_ON_START must be a boolean, got %q", k.String("migrate_on_start"))
	}

	return cfg, nil
}

// getString returns the value at key, or fallback if it is unset or empty.
func getString(k *koanf.Koanf, key, fallback string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
