package config

import "time"

// Config holds runtime settings for the Yeng portal client.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, without a trailing slash.
//   - RequestTimeout: per-request HTTP timeout.
//   - StorageDSN: SQLite file holding the persisted session.
//   - Verbose: enables debug logging.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	StorageDSN     string
	Verbose        bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000"
	c.RequestTimeout = 15 * time.Second
	c.StorageDSN = "yeng.db"
	c.Verbose = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
