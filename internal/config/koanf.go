// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order
// of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/translocatus/config.yaml",
	"/etc/translocatus/config.yml",
}

// ConfigPathEnvVar overrides the config file path when set.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config with all defaults applied. These are loaded
// first, then overridden by config file and environment variables.
func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:           "/data/translocatus.duckdb",
			MaxMemory:      "1GB",
			Threads:        0, // 0 = use runtime.NumCPU()
			SeedSampleData: false,
		},
		Server: ServerConfig{
			Port:        4326,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		API: APIConfig{
			DefaultPageSize: 50,
			MaxPageSize:     500,
		},
		Import: ImportConfig{
			MaxUploadBytes: 10 << 20, // 10MiB
			MaxRows:        10000,
		},
		Security: SecurityConfig{
			AuthMode:             "jwt",
			JWTSecret:            "",
			SessionTimeout:       24 * time.Hour,
			RateLimitReqs:        100,
			RateLimitWindow:      1 * time.Minute,
			RateLimitDisabled:    false,
			LoginRateLimitReqs:   5,
			LoginRateLimitWindow: 5 * time.Minute,
			CORSOrigins:          []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file, and
// environment variables, then validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: optional config file
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Env vars arrive as strings; convert known slice fields from
	// comma-separated values.
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file path, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths lists config paths parsed as comma-separated slices.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for
// known slice fields.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		if !k.Exists(path) {
			continue
		}
		raw := k.Get(path)
		str, ok := raw.(string)
		if !ok {
			continue // already a slice (from defaults or YAML)
		}
		parts := strings.Split(str, ",")
		values := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				values = append(values, trimmed)
			}
		}
		if err := k.Set(path, values); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names to koanf config paths.
// Variables not listed here are ignored, which keeps unrelated environment
// noise out of the configuration.
var envMappings = map[string]string{
	"duckdb_path":             "database.path",
	"duckdb_max_memory":       "database.max_memory",
	"duckdb_threads":          "database.threads",
	"seed_sample_data":        "database.seed_sample_data",
	"http_port":               "server.port",
	"http_host":               "server.host",
	"http_timeout":            "server.timeout",
	"environment":             "server.environment",
	"api_default_page_size":   "api.default_page_size",
	"api_max_page_size":       "api.max_page_size",
	"import_max_upload_bytes": "import.max_upload_bytes",
	"import_max_rows":         "import.max_rows",
	"auth_mode":               "security.auth_mode",
	"jwt_secret":              "security.jwt_secret",
	"session_timeout":         "security.session_timeout",
	"dashboard_password":      "security.dashboard_password",
	"dashboard_password_hash": "security.dashboard_password_hash",
	"rate_limit_reqs":         "security.rate_limit_reqs",
	"rate_limit_window":       "security.rate_limit_window",
	"rate_limit_disabled":     "security.rate_limit_disabled",
	"login_rate_limit_reqs":   "security.login_rate_limit_reqs",
	"login_rate_limit_window": "security.login_rate_limit_window",
	"cors_origins":            "security.cors_origins",
	"log_level":               "logging.level",
	"log_format":              "logging.format",
	"log_caller":              "logging.caller",
}

// envTransformFunc maps environment variable names to koanf config paths.
// Examples: DUCKDB_PATH -> database.path, JWT_SECRET -> security.jwt_secret.
func envTransformFunc(key string) string {
	if path, ok := envMappings[strings.ToLower(key)]; ok {
		return path
	}
	return "" // ignore unknown variables
}
