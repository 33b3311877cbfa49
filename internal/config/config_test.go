// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

package config

import (
	"strings"
	"testing"
	"time"
)

// validConfig returns the defaults completed with the credentials the jwt
// auth mode requires.
func validConfig() *Config {
	cfg := defaultConfig()
	cfg.Security.JWTSecret = strings.Repeat("s", 32)
	cfg.Security.DashboardPassword = "letmein"
	return cfg
}

func TestDefaultsAreValidWithCredentials(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("Validate() error on defaults: %v", err)
	}
}

func TestDefaults(t *testing.T) {
	cfg := defaultConfig()
	if cfg.Server.Port != 4326 {
		t.Errorf("default port = %d, want 4326", cfg.Server.Port)
	}
	if cfg.Security.AuthMode != "jwt" {
		t.Errorf("default auth mode = %q, want jwt", cfg.Security.AuthMode)
	}
	if cfg.Security.LoginRateLimitReqs != 5 || cfg.Security.LoginRateLimitWindow != 5*time.Minute {
		t.Errorf("default login rate limit = %d/%s, want 5 per 5m",
			cfg.Security.LoginRateLimitReqs, cfg.Security.LoginRateLimitWindow)
	}
	if cfg.Import.MaxUploadBytes != 10<<20 {
		t.Errorf("default upload cap = %d, want 10MiB", cfg.Import.MaxUploadBytes)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"zero timeout", func(c *Config) { c.Server.Timeout = 0 }, "server.timeout"},
		{"empty db path", func(c *Config) { c.Database.Path = "" }, "database.path"},
		{"page size inversion", func(c *Config) { c.API.MaxPageSize = 1 }, "max_page_size"},
		{"zero upload cap", func(c *Config) { c.Import.MaxUploadBytes = 0 }, "max_upload_bytes"},
		{"short jwt secret", func(c *Config) { c.Security.JWTSecret = "short" }, "jwt_secret"},
		{"no credential", func(c *Config) {
			c.Security.DashboardPassword = ""
			c.Security.DashboardPasswordHash = ""
		}, "dashboard_password"},
		{"unknown auth mode", func(c *Config) { c.Security.AuthMode = "basic" }, "auth_mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() accepted an invalid config")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateAuthModeNoneSkipsCredentialChecks(t *testing.T) {
	cfg := defaultConfig()
	cfg.Security.AuthMode = "none"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error with auth disabled: %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := map[string]string{
		"DUCKDB_PATH":        "database.path",
		"HTTP_PORT":          "server.port",
		"JWT_SECRET":         "security.jwt_secret",
		"DASHBOARD_PASSWORD": "security.dashboard_password",
		"SEED_SAMPLE_DATA":   "database.seed_sample_data",
		"LOG_LEVEL":          "logging.level",
		"PATH":               "", // unrelated environment noise is ignored
		"HOME":               "",
	}

	for key, want := range tests {
		if got := envTransformFunc(key); got != want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", key, got, want)
		}
	}
}
