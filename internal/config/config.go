// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

// Package config provides centralized configuration for all Translocatus
// components, loaded via Koanf v2 with layered sources (highest priority wins):
//
//  1. Built-in defaults
//  2. Optional YAML config file (config.yaml, or CONFIG_PATH)
//  3. Environment variables
//
// Config is immutable after Load() and safe for concurrent reads.
package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Import   ImportConfig   `koanf:"import"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DatabaseConfig holds DuckDB settings.
//
// Environment variables:
//   - DUCKDB_PATH: database file path (default: /data/translocatus.duckdb)
//   - DUCKDB_MAX_MEMORY: DuckDB memory limit (default: 1GB)
//   - DUCKDB_THREADS: worker threads, 0 = runtime.NumCPU()
//   - SEED_SAMPLE_DATA: load the curated sample dataset at startup
type DatabaseConfig struct {
	Path           string `koanf:"path"`
	MaxMemory      string `koanf:"max_memory"`
	Threads        int    `koanf:"threads"`
	SeedSampleData bool   `koanf:"seed_sample_data"`
}

// ServerConfig holds HTTP server settings.
//
// The default port 4326 references EPSG:4326 (WGS 84), the lat/lng coordinate
// system the dashboard stores and plots.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development" or "production"
}

// APIConfig holds pagination and response limits.
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`
}

// ImportConfig holds spreadsheet import limits.
//
// Environment variables:
//   - IMPORT_MAX_UPLOAD_BYTES: multipart upload cap (default: 10MiB)
//   - IMPORT_MAX_ROWS: hard cap on data rows per import (default: 10000)
type ImportConfig struct {
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`
	MaxRows        int   `koanf:"max_rows"`
}

// SecurityConfig holds authentication and rate limiting settings.
//
// The dashboard uses a single shared password. Either DASHBOARD_PASSWORD
// (plain, compared in constant time) or DASHBOARD_PASSWORD_HASH (bcrypt,
// preferred for production) must be set when AuthMode is "jwt".
type SecurityConfig struct {
	AuthMode              string        `koanf:"auth_mode"` // "jwt" or "none"
	JWTSecret             string        `koanf:"jwt_secret"`
	SessionTimeout        time.Duration `koanf:"session_timeout"`
	DashboardPassword     string        `koanf:"dashboard_password"`
	DashboardPasswordHash string        `koanf:"dashboard_password_hash"`
	RateLimitReqs         int           `koanf:"rate_limit_reqs"`
	RateLimitWindow       time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled     bool          `koanf:"rate_limit_disabled"`
	LoginRateLimitReqs    int           `koanf:"login_rate_limit_reqs"`
	LoginRateLimitWindow  time.Duration `koanf:"login_rate_limit_window"`
	CORSOrigins           []string      `koanf:"cors_origins"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`  // trace, debug, info, warn, error
	Format string `koanf:"format"` // json or console
	Caller bool   `koanf:"caller"`
}

// Validate checks configuration invariants. It returns the first violation
// found with a message specific enough to fix the deployment.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.API.DefaultPageSize < 1 {
		return fmt.Errorf("api.default_page_size must be at least 1, got %d", c.API.DefaultPageSize)
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("api.max_page_size (%d) must not be below api.default_page_size (%d)",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}
	if c.Import.MaxUploadBytes <= 0 {
		return fmt.Errorf("import.max_upload_bytes must be positive, got %d", c.Import.MaxUploadBytes)
	}
	if c.Import.MaxRows <= 0 {
		return fmt.Errorf("import.max_rows must be positive, got %d", c.Import.MaxRows)
	}

	switch c.Security.AuthMode {
	case "none":
		// Development mode, nothing to check.
	case "jwt":
		if len(c.Security.JWTSecret) < 32 {
			return fmt.Errorf("security.jwt_secret must be at least 32 characters when auth_mode is jwt (got %d)",
				len(c.Security.JWTSecret))
		}
		if c.Security.DashboardPassword == "" && c.Security.DashboardPasswordHash == "" {
			return fmt.Errorf("security.dashboard_password or security.dashboard_password_hash is required when auth_mode is jwt")
		}
		if c.Security.SessionTimeout <= 0 {
			return fmt.Errorf("security.session_timeout must be positive, got %s", c.Security.SessionTimeout)
		}
	default:
		return fmt.Errorf("security.auth_mode must be \"jwt\" or \"none\", got %q", c.Security.AuthMode)
	}

	return nil
}
