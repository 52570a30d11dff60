package ratelimit

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variables read by LoadConfig.
const (
	EnvEnabled       = "ADVISOR_RATE_LIMIT_ENABLED"
	EnvDefaultLimit  = "ADVISOR_RATE_LIMIT_DEFAULT_LIMIT"
	EnvDefaultWindow = "ADVISOR_RATE_LIMIT_DEFAULT_WINDOW"
	EnvCleanup       = "ADVISOR_RATE_LIMIT_CLEANUP_INTERVAL"
	EnvAllowList     = "ADVISOR_RATE_LIMIT_ALLOW"
	EnvDenyList      = "ADVISOR_RATE_LIMIT_DENY"
)

// Rule limits one method on one path. A Path ending in "/" matches every
// path below it.
type Rule struct {
	Method string
	Path   string
	Limit  int           // requests per Window
	Window time.Duration
	Burst  int // bucket size; Limit when zero
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	// IdleTTL is how long an unused bucket is kept before cleanup drops it.
	IdleTTL time.Duration
	Allow   map[string]bool
	Deny    map[string]bool
	Rules   []Rule
}

// DefaultConfig returns the configuration used when no environment overrides are set.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    600,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		IdleTTL:         time.Hour,
		Allow:           map[string]bool{},
		Deny:            map[string]bool{},
		Rules:           DefaultRules(),
	}
}

// LoadConfig loads rate limiting configuration from ADVISOR_RATE_LIMIT_* variables.
func LoadConfig() *Config {
	cfg := DefaultConfig()
	cfg.Enabled = getEnvBool(EnvEnabled, cfg.Enabled)
	if !cfg.Enabled {
		return &Config{Enabled: false}
	}

	cfg.DefaultLimit = getEnvInt(EnvDefaultLimit, cfg.DefaultLimit)
	cfg.DefaultWindow = getEnvDuration(EnvDefaultWindow, cfg.DefaultWindow)
	cfg.CleanupInterval = getEnvDuration(EnvCleanup, cfg.CleanupInterval)
	cfg.Allow = parseIPList(os.Getenv(EnvAllowList))
	cfg.Deny = parseIPList(os.Getenv(EnvDenyList))
	return cfg
}

// DefaultRules returns the per-endpoint limits. Recommendation requests
// evaluate the whole catalog, so they get tighter limits than catalog reads.
func DefaultRules() []Rule {
	return []Rule{
		{Method: http.MethodPost, Path: "/recommend", Limit: 60, Window: time.Minute, Burst: 10},
		{Method: http.MethodPost, Path: "/recommend/export", Limit: 30, Window: time.Minute, Burst: 5},
		{Method: http.MethodGet, Path: "/courses/", Limit: 300, Window: time.Minute, Burst: 50},
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
