// Package config provides configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure. The generation surface
// is flat, mirroring the file format; runtime concerns nest below it.
type Config struct {
	Schema             string `yaml:"schema"`
	Output             string `yaml:"output"`
	Module             string `yaml:"module"`
	TypesPackage       string `yaml:"types_package"`
	FunctionsPackage   string `yaml:"functions_package"`
	IncludeRestricted  bool   `yaml:"include_restricted_api"`
	TextRepresentation string `yaml:"text_representation"` // "standard" or "shared"
	EventClass         string `yaml:"event_class"`

	Runtime RuntimeConfig `yaml:"runtime"`
	Status  StatusConfig  `yaml:"status"`
	Metrics MetricsConfig `yaml:"metrics"`
	Log     LogConfig     `yaml:"log"`
}

// RuntimeConfig configures how a consumer reaches an engine.
type RuntimeConfig struct {
	Engine         string        `yaml:"engine"` // "tdjson", "websocket" or "test"
	URL            string        `yaml:"url,omitempty"`
	ReceiveTimeout time.Duration `yaml:"receive_timeout"`
}

// StatusConfig configures the status HTTP server.
type StatusConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"` // Expose /metrics and attach the collector
	Path    string `yaml:"path"`    // Custom path (default: /metrics)
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "console"
}

// Addr returns the listen address of the status server.
func (s StatusConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Apply environment variable overrides
	applyEnvOverrides(&cfg)

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// LoadFromEnv creates configuration entirely from environment
// variables, for runs where no config file is present.
//
// Environment variables:
//
//	TDGEN_SCHEMA             - Schema file path (required)
//	TDGEN_OUTPUT             - Output directory (default: gen)
//	TDGEN_MODULE             - Import path of the emitted module (required)
//	TDGEN_TYPES_PACKAGE      - Types package name (default: types)
//	TDGEN_FUNCTIONS_PACKAGE  - Functions package name (default: functions)
//	TDGEN_INCLUDE_RESTRICTED - Emit restricted definitions (default: false)
//	TDGEN_TEXT               - Text representation: standard or shared
//	TDGEN_EVENT_CLASS        - Event class name (default: Update)
//	TDGEN_RUNTIME_ENGINE     - Engine: tdjson, websocket or test
//	TDGEN_RUNTIME_URL        - Engine host URL for the websocket engine
//	TDGEN_STATUS_HOST        - Status server host (default: 0.0.0.0)
//	TDGEN_STATUS_PORT        - Status server port (default: 8080)
//	TDGEN_METRICS_ENABLED    - Expose /metrics (default: false)
//	TDGEN_LOG_LEVEL          - Log level: debug, info, warn, error
//	TDGEN_LOG_FORMAT         - Log format: json or console
func LoadFromEnv() (*Config, error) {
	var cfg Config

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// LoadWithFallback tries to load from file, falls back to environment
// variables.
func LoadWithFallback(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	if HasEnvConfig() {
		return LoadFromEnv()
	}

	return nil, fmt.Errorf("no configuration found: provide config file or set TDGEN_SCHEMA")
}

// HasEnvConfig returns true if essential environment variables are set.
func HasEnvConfig() bool {
	return os.Getenv("TDGEN_SCHEMA") != ""
}

// applyEnvOverrides applies TDGEN_* environment variables to the
// config. Environment variables always override file-based
// configuration.
func applyEnvOverrides(cfg *Config) {
	// Generation surface
	if v := os.Getenv("TDGEN_SCHEMA"); v != "" {
		cfg.Schema = v
	}
	if v := os.Getenv("TDGEN_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("TDGEN_MODULE"); v != "" {
		cfg.Module = v
	}
	if v := os.Getenv("TDGEN_TYPES_PACKAGE"); v != "" {
		cfg.TypesPackage = v
	}
	if v := os.Getenv("TDGEN_FUNCTIONS_PACKAGE"); v != "" {
		cfg.FunctionsPackage = v
	}
	if v := os.Getenv("TDGEN_INCLUDE_RESTRICTED"); v != "" {
		cfg.IncludeRestricted = parseBool(v)
	}
	if v := os.Getenv("TDGEN_TEXT"); v != "" {
		cfg.TextRepresentation = v
	}
	if v := os.Getenv("TDGEN_EVENT_CLASS"); v != "" {
		cfg.EventClass = v
	}

	// Runtime configuration
	if v := os.Getenv("TDGEN_RUNTIME_ENGINE"); v != "" {
		cfg.Runtime.Engine = v
	}
	if v := os.Getenv("TDGEN_RUNTIME_URL"); v != "" {
		cfg.Runtime.URL = v
	}
	if v := os.Getenv("TDGEN_RUNTIME_RECEIVE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Runtime.ReceiveTimeout = d
		}
	}

	// Status server configuration
	if v := os.Getenv("TDGEN_STATUS_HOST"); v != "" {
		cfg.Status.Host = v
	}
	if v := os.Getenv("TDGEN_STATUS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Status.Port = port
		}
	}

	// Metrics configuration
	if v := os.Getenv("TDGEN_METRICS_ENABLED"); v != "" {
		cfg.Metrics.Enabled = parseBool(v)
	}
	if v := os.Getenv("TDGEN_METRICS_PATH"); v != "" {
		cfg.Metrics.Path = v
	}

	// Logging configuration
	if v := os.Getenv("TDGEN_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TDGEN_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

// parseBool parses a boolean from common string values.
func parseBool(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "true" || v == "1" || v == "yes" || v == "on"
}

func setDefaults(cfg *Config) {
	if cfg.Output == "" {
		cfg.Output = "gen"
	}
	if cfg.TypesPackage == "" {
		cfg.TypesPackage = "types"
	}
	if cfg.FunctionsPackage == "" {
		cfg.FunctionsPackage = "functions"
	}
	if cfg.TextRepresentation == "" {
		cfg.TextRepresentation = "standard"
	}
	if cfg.EventClass == "" {
		cfg.EventClass = "Update"
	}

	if cfg.Runtime.Engine == "" {
		cfg.Runtime.Engine = "tdjson"
	}
	if cfg.Runtime.ReceiveTimeout == 0 {
		cfg.Runtime.ReceiveTimeout = 10 * time.Second
	}

	if cfg.Status.Host == "" {
		cfg.Status.Host = "0.0.0.0"
	}
	if cfg.Status.Port == 0 {
		cfg.Status.Port = 8080
	}
	if cfg.Status.ReadTimeout == 0 {
		cfg.Status.ReadTimeout = 30 * time.Second
	}
	if cfg.Status.WriteTimeout == 0 {
		cfg.Status.WriteTimeout = 60 * time.Second
	}

	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
}

func validate(cfg *Config) error {
	if cfg.Schema == "" {
		return fmt.Errorf("schema is required")
	}
	if cfg.Module == "" {
		return fmt.Errorf("module is required")
	}

	validText := map[string]bool{"standard": true, "shared": true}
	if !validText[cfg.TextRepresentation] {
		return fmt.Errorf("text_representation must be 'standard' or 'shared', got %q", cfg.TextRepresentation)
	}

	validEngines := map[string]bool{"tdjson": true, "websocket": true, "test": true}
	if !validEngines[cfg.Runtime.Engine] {
		return fmt.Errorf("runtime.engine must be one of: tdjson, websocket, test")
	}
	if cfg.Runtime.Engine == "websocket" && cfg.Runtime.URL == "" {
		return fmt.Errorf("runtime.url is required when runtime.engine is 'websocket'")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Log.Level] {
		return fmt.Errorf("log.level must be one of: debug, info, warn, error")
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Log.Format] {
		return fmt.Errorf("log.format must be 'json' or 'console', got %q", cfg.Log.Format)
	}

	return nil
}
