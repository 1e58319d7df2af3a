// Package config reads the process configuration from the environment.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything that is configurable at process start. It is
// created once in main and passed explicitly to the components that
// need it.
type Config struct {
	// DSN is the path of the sqlite database file.
	DSN string

	// GinMode is the mode gin runs in, "release" unless overridden.
	GinMode string

	// LogFormat selects "human" readable or JSON log output. Empty
	// means JSON in release mode and human readable otherwise.
	LogFormat string

	// CORSAllowOrigins contains glob patterns for allowed CORS
	// origins. CORS headers are only sent when at least one pattern
	// is configured.
	CORSAllowOrigins []string

	// EnablePprof serves the pprof profiling endpoints when set.
	EnablePprof bool
}

// Load reads the configuration from the environment. A .env file in
// the working directory is loaded first if one exists.
func Load() Config {
	// A missing .env file is fine, the environment is used as is
	_ = godotenv.Load()

	return Config{
		DSN:              getenv("DB_DSN", "data/expenses.db"),
		GinMode:          getenv("GIN_MODE", "release"),
		LogFormat:        os.Getenv("LOG_FORMAT"),
		CORSAllowOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:      os.Getenv("ENABLE_PPROF") == "true",
	}
}

func getenv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}
