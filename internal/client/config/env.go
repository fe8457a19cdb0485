package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables. A .env
// file in the working directory is loaded first when present; real
// environment variables win over the file.
//
// Recognized variables:
//
//	SMARTTRACE_API_URL          base URL of the backend
//	SMARTTRACE_REQUEST_TIMEOUT  duration, e.g. "15s"
//	SMARTTRACE_SESSION_FILE     session file path
//	SMARTTRACE_CACHE_DSN        sqlite DSN of the local cache
//	SMARTTRACE_PAGE_SIZE        rows per page
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SMARTTRACE_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("SMARTTRACE_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("SMARTTRACE_SESSION_FILE"); v != "" {
		cfg.SessionFile = v
	}
	if v := os.Getenv("SMARTTRACE_CACHE_DSN"); v != "" {
		cfg.CacheDSN = v
	}
	if v := os.Getenv("SMARTTRACE_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}
}
