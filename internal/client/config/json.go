package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/smarttrace/smarttrace-cli/internal/flagx"
	"github.com/smarttrace/smarttrace-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "15s" or as integer nanoseconds. After parsing, values are copied into
// the runtime Config.
type JsonConfig struct {
	APIBaseURL        string         `json:"api_base_url"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
	SessionFile       string         `json:"session_file"`
	CacheDSN          string         `json:"cache_dsn"`
	PageSize          int            `json:"page_size"`
	RequestsPerSecond float64        `json:"requests_per_second"`
	Burst             int            `json:"burst"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c or -config flags; when neither is set, nothing is
// loaded. Zero values in the file leave the current Config value alone so
// a partial file only overrides what it names.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.SessionFile != "" {
		cfg.SessionFile = jc.SessionFile
	}
	if jc.CacheDSN != "" {
		cfg.CacheDSN = jc.CacheDSN
	}
	if jc.PageSize > 0 {
		cfg.PageSize = jc.PageSize
	}
	if jc.RequestsPerSecond > 0 {
		cfg.RequestsPerSecond = jc.RequestsPerSecond
	}
	if jc.Burst > 0 {
		cfg.Burst = jc.Burst
	}
}
