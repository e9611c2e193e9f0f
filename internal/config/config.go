// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultAPIURL is the backend used when nothing else is configured.
const DefaultAPIURL = "http://localhost:8000"

// DefaultTimeout is the request timeout used when nothing else is configured.
const DefaultTimeout = 30 * time.Second

// Config represents the CLI configuration that can be loaded from a JSON or
// YAML file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	APIURL  string            `json:"api_url,omitempty" yaml:"api_url,omitempty"`   // Backend scheme and host; /api is appended
	Timeout Duration          `json:"timeout,omitempty" yaml:"timeout,omitempty"`   // Request timeout, e.g. "15s"
	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`   // Extra request headers
	Verbose bool              `json:"verbose,omitempty" yaml:"verbose,omitempty"`   // Print debug logs
	JobID   string            `json:"job_id,omitempty" yaml:"job_id,omitempty"`     // Default job for resume uploads
	NoColor bool              `json:"no_color,omitempty" yaml:"no_color,omitempty"` // Disable colored output
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by
// extension (.yaml/.yml for YAML, anything else JSON).
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// after merging with defaults.
func (c *Config) Validate() error {
	if c.APIURL != "" {
		u, err := url.Parse(c.APIURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("config error: 'api_url' must be an absolute URL, got %q", c.APIURL)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("config error: 'api_url' scheme must be http or https, got %q", u.Scheme)
		}
		if strings.HasSuffix(strings.TrimRight(u.Path, "/"), "/api") {
			return fmt.Errorf("config error: 'api_url' must not include the /api prefix")
		}
	}

	if c.Timeout < 0 {
		return fmt.Errorf("config error: 'timeout' must be non-negative")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIURL == "" {
		result.APIURL = defaults.APIURL
	}
	if result.JobID == "" {
		result.JobID = defaults.JobID
	}
	if result.Timeout == 0 {
		if defaults.Timeout > 0 {
			result.Timeout = defaults.Timeout
		} else {
			result.Timeout = Duration(DefaultTimeout)
		}
	}
	if len(defaults.Headers) > 0 {
		merged := make(map[string]string, len(defaults.Headers)+len(result.Headers))
		for k, v := range defaults.Headers {
			merged[k] = v
		}
		for k, v := range result.Headers {
			merged[k] = v
		}
		result.Headers = merged
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
