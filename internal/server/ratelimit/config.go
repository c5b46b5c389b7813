package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Budget is the request allowance for one route class.
type Budget struct {
	Limit  int           // requests per Window
	Window time.Duration // refill window
	Burst  int           // bucket capacity; 0 means Limit
}

// Config holds the limiter settings.
type Config struct {
	Enabled         bool
	Analyze         Budget
	Read            Budget
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
}

func (c *Config) budgetFor(class RouteClass) Budget {
	if class == ClassAnalyze {
		return c.Analyze
	}
	return c.Read
}

// DefaultConfig throttles analysis hard, since premium requests may wait on
// the LLM, and leaves record reads effectively free.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		Analyze:         Budget{Limit: 60, Window: time.Hour, Burst: 10},
		Read:            Budget{Limit: 1000, Window: time.Minute},
		CleanupInterval: 5 * time.Minute,
		Whitelist:       map[string]bool{},
		Blacklist:       map[string]bool{},
	}
}

// LoadConfig reads limiter settings from the environment, falling back to
// DefaultConfig values for anything unset.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	cfg := DefaultConfig()
	cfg.Analyze.Limit = getEnvInt("RATE_LIMIT_ANALYZE_LIMIT", cfg.Analyze.Limit)
	cfg.Analyze.Window = getEnvDuration("RATE_LIMIT_ANALYZE_WINDOW", cfg.Analyze.Window)
	cfg.Analyze.Burst = getEnvInt("RATE_LIMIT_ANALYZE_BURST", cfg.Analyze.Burst)
	cfg.Read.Limit = getEnvInt("RATE_LIMIT_READ_LIMIT", cfg.Read.Limit)
	cfg.Read.Window = getEnvDuration("RATE_LIMIT_READ_WINDOW", cfg.Read.Window)
	cfg.CleanupInterval = getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval)
	cfg.Whitelist = parseClientList(os.Getenv("RATE_LIMIT_WHITELIST"))
	cfg.Blacklist = parseClientList(os.Getenv("RATE_LIMIT_BLACKLIST"))
	return cfg
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// parseClientList parses a comma-separated list of client IDs into a set.
func parseClientList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, id := range strings.Split(list, ",") {
		if id = strings.TrimSpace(id); id != "" {
			result[id] = true
		}
	}
	return result
}
