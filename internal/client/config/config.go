package config

import "time"

// Config holds runtime settings for the Smart Trace CLI.
//
// Fields:
//   - APIBaseURL: base address of the backend REST API.
//   - RequestTimeout: per-request deadline applied by the gateway.
//   - SessionFile: path of the persisted session credentials file.
//   - CacheDSN: sqlite DSN for the local list cache.
//   - PageSize: rows per page in listing views.
//   - RequestsPerSecond, Burst: outbound rate limit for the gateway.
type Config struct {
	APIBaseURL        string
	RequestTimeout    time.Duration
	SessionFile       string
	CacheDSN          string
	PageSize          int
	RequestsPerSecond float64
	Burst             int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 15 * time.Second
	c.SessionFile = "session.json"
	c.CacheDSN = "smarttrace.db"
	c.PageSize = 10
	c.RequestsPerSecond = 5
	c.Burst = 10
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file if present), a JSON config
// file and command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
