package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by FromEnv.
const (
	EnvAPIURL  = "HIRECALIBER_API_URL"
	EnvTimeout = "HIRECALIBER_TIMEOUT"
	EnvJobID   = "HIRECALIBER_JOB_ID"
	EnvVerbose = "HIRECALIBER_VERBOSE"
)

// FromEnv builds a Config from HIRECALIBER_* environment variables. Unset
// variables leave their fields empty.
func FromEnv() (*Config, error) {
	cfg := &Config{
		APIURL: os.Getenv(EnvAPIURL),
		JobID:  os.Getenv(EnvJobID),
	}

	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		cfg.Timeout = d
	}

	if v := os.Getenv(EnvVerbose); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %v", EnvVerbose, err)
		}
		cfg.Verbose = verbose
	}

	return cfg, nil
}
