// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv.
const (
	EnvCatalog = "ADVISOR_CATALOG"
	EnvPeers   = "ADVISOR_PEERS"
	EnvPort    = "ADVISOR_PORT"
	EnvFormat  = "ADVISOR_FORMAT"
	EnvVerbose = "ADVISOR_VERBOSE"
	EnvOrigins = "ADVISOR_CORS_ORIGINS"
)

// Config represents the advisor configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	Catalog string `json:"catalog,omitempty" yaml:"catalog,omitempty"` // Path to a course catalog JSON file (empty = built-in)
	Peers   string `json:"peers,omitempty" yaml:"peers,omitempty"`     // Path to a reference population JSON file (empty = built-in sample)
	Port    int    `json:"port,omitempty" yaml:"port,omitempty"`       // HTTP port for serve
	Format  string `json:"format,omitempty" yaml:"format,omitempty"`   // Export format: json or csv
	Verbose bool   `json:"verbose,omitempty" yaml:"verbose,omitempty"` // Print detailed summaries

	CORSOrigins []string `json:"cors_origins,omitempty" yaml:"cors_origins,omitempty"` // Allowed browser origins for serve (empty = any)
}

// Defaults returns the built-in defaults.
func Defaults() Config {
	return Config{
		Port:   8080,
		Format: "json",
	}
}

// LoadConfig loads configuration from a JSON file, or YAML when the
// extension is .yaml or .yml. Returns an error if the file cannot be read or parsed.
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

// ApplyEnv overrides fields from ADVISOR_* environment variables that are set.
// Malformed numeric or boolean values are reported rather than ignored.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvCatalog); v != "" {
		c.Catalog = v
	}
	if v := os.Getenv(EnvPeers); v != "" {
		c.Peers = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		c.Format = v
	}
	if v := os.Getenv(EnvOrigins); v != "" {
		c.CORSOrigins = nil
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				c.CORSOrigins = append(c.CORSOrigins, origin)
			}
		}
	}
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %v", EnvPort, err)
		}
		c.Port = port
	}
	if v := os.Getenv(EnvVerbose); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %v", EnvVerbose, err)
		}
		c.Verbose = verbose
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	switch c.Format {
	case "", "json", "csv":
	default:
		return fmt.Errorf("config error: 'format' must be json or csv, got %q", c.Format)
	}

	// Validate file paths exist (if specified)
	if c.Catalog != "" {
		if _, err := os.Stat(c.Catalog); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.Catalog)
		}
	}

	if c.Peers != "" {
		if _, err := os.Stat(c.Peers); os.IsNotExist(err) {
			return fmt.Errorf("config error: peers file not found: %s", c.Peers)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Catalog == "" {
		result.Catalog = defaults.Catalog
	}
	if result.Peers == "" {
		result.Peers = defaults.Peers
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if len(result.CORSOrigins) == 0 {
		result.CORSOrigins = defaults.CORSOrigins
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
