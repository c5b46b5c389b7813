// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	CV     string `json:"cv,omitempty"`      // Path to CV text file
	Job    string `json:"job,omitempty"`     // Path to job posting text file
	JobURL string `json:"job_url,omitempty"` // URL to fetch job posting from

	// Analysis
	TargetRole string `json:"target_role,omitempty"` // Role title to check the CV headline against
	Strategy   string `json:"strategy,omitempty"`    // Scoring strategy name (enhanced or legacy)

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for premium rewrites
	TierSecret  string `json:"tier_secret,omitempty"`  // HMAC secret for tier tokens
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Use headless browser for SPA job sites
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed analysis breakdown
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for stored analyses
	Port        int    `json:"port,omitempty"`         // HTTP listen port for serve
}

// LoadConfig loads configuration from a JSON file.
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
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if c.Strategy != "" && c.Strategy != "enhanced" && c.Strategy != "legacy" {
		return fmt.Errorf("config error: 'strategy' must be 'enhanced' or 'legacy'")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	// Validate file paths exist (if specified)
	if c.CV != "" {
		if _, err := os.Stat(c.CV); os.IsNotExist(err) {
			return fmt.Errorf("config error: cv file not found: %s", c.CV)
		}
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.CV == "" {
		result.CV = defaults.CV
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.TargetRole == "" {
		result.TargetRole = defaults.TargetRole
	}
	if result.Strategy == "" {
		result.Strategy = defaults.Strategy
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.TierSecret == "" {
		result.TierSecret = defaults.TierSecret
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: true wins over default false
	result.UseBrowser = result.UseBrowser || defaults.UseBrowser
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}
