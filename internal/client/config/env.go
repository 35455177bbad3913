package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig is a DTO for environment parsing; only variables that are
// actually set override the running Config.
type envConfig struct {
	APIBaseURL     string        `env:"YENG_API_URL"`
	RequestTimeout time.Duration `env:"YENG_REQUEST_TIMEOUT"`
	StorageDSN     string        `env:"YENG_STORAGE_DSN"`
	Verbose        bool          `env:"YENG_VERBOSE"`
}

// parseEnv overlays Config with values from YENG_* environment variables.
// Panics on unparseable values (caller should recover if desired).
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.StorageDSN != "" {
		cfg.StorageDSN = ec.StorageDSN
	}
	if _, ok := os.LookupEnv("YENG_VERBOSE"); ok {
		cfg.Verbose = ec.Verbose
	}
}
