// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mkotze/translocatus/internal/config"
)

// PasswordVerifier checks login attempts against the shared dashboard
// credential. When a bcrypt hash is configured it takes precedence over the
// plaintext password, which exists for development setups only.
type PasswordVerifier struct {
	hash     []byte
	password []byte
}

// NewPasswordVerifier builds a verifier from the security configuration.
func NewPasswordVerifier(cfg *config.SecurityConfig) (*PasswordVerifier, error) {
	if cfg.DashboardPasswordHash == "" && cfg.DashboardPassword == "" {
		return nil, fmt.Errorf("either a dashboard password or password hash must be configured")
	}
	return &PasswordVerifier{
		hash:     []byte(cfg.DashboardPasswordHash),
		password: []byte(cfg.DashboardPassword),
	}, nil
}

// Verify reports whether the attempt matches the configured credential.
// Both paths take time independent of where the mismatch occurs.
func (v *PasswordVerifier) Verify(attempt string) bool {
	if len(v.hash) > 0 {
		return bcrypt.CompareHashAndPassword(v.hash, []byte(attempt)) == nil
	}
	return subtle.ConstantTimeCompare(v.password, []byte(attempt)) == 1
}

// HashPassword produces a bcrypt hash suitable for the
// dashboard_password_hash setting.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
