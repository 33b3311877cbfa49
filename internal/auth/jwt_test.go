// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

package auth

import (
	"testing"
	"time"

	"github.com/mkotze/translocatus/internal/config"
)

func testSecurityConfig() *config.SecurityConfig {
	return &config.SecurityConfig{
		JWTSecret:      "test-secret-that-is-at-least-32-chars!",
		SessionTimeout: time.Hour,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	manager, err := NewJWTManager(testSecurityConfig())
	if err != nil {
		t.Fatalf("NewJWTManager() error: %v", err)
	}

	token, expiresAt, err := manager.GenerateToken("dashboard")
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
	if remaining := time.Until(expiresAt); remaining < 55*time.Minute || remaining > time.Hour {
		t.Errorf("expiry %v not near the configured timeout", remaining)
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error: %v", err)
	}
	if claims.Subject != "dashboard" {
		t.Errorf("subject = %q, want dashboard", claims.Subject)
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	manager, _ := NewJWTManager(testSecurityConfig())
	token, _, _ := manager.GenerateToken("dashboard")

	if _, err := manager.ValidateToken(token + "x"); err == nil {
		t.Error("tampered token validated")
	}
	if _, err := manager.ValidateToken("not.a.token"); err == nil {
		t.Error("garbage token validated")
	}
}

func TestValidateTokenRejectsOtherSecret(t *testing.T) {
	first, _ := NewJWTManager(testSecurityConfig())

	otherCfg := testSecurityConfig()
	otherCfg.JWTSecret = "a-completely-different-32-char-secret!!"
	second, _ := NewJWTManager(otherCfg)

	token, _, _ := second.GenerateToken("dashboard")
	if _, err := first.ValidateToken(token); err == nil {
		t.Error("token signed with another secret validated")
	}
}

func TestNewJWTManagerRequiresSecret(t *testing.T) {
	if _, err := NewJWTManager(&config.SecurityConfig{}); err == nil {
		t.Error("NewJWTManager() accepted an empty secret")
	}
}

func TestPasswordVerifier(t *testing.T) {
	verifier, err := NewPasswordVerifier(&config.SecurityConfig{DashboardPassword: "hunter2"})
	if err != nil {
		t.Fatalf("NewPasswordVerifier() error: %v", err)
	}
	if !verifier.Verify("hunter2") {
		t.Error("correct password rejected")
	}
	if verifier.Verify("wrong") {
		t.Error("wrong password accepted")
	}
}

func TestPasswordVerifierHashTakesPrecedence(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}

	verifier, err := NewPasswordVerifier(&config.SecurityConfig{
		DashboardPassword:     "something-else",
		DashboardPasswordHash: hash,
	})
	if err != nil {
		t.Fatalf("NewPasswordVerifier() error: %v", err)
	}
	if !verifier.Verify("correct-horse") {
		t.Error("hashed password rejected")
	}
	if verifier.Verify("something-else") {
		t.Error("plaintext setting accepted despite configured hash")
	}
}

func TestPasswordVerifierRequiresCredential(t *testing.T) {
	if _, err := NewPasswordVerifier(&config.SecurityConfig{}); err == nil {
		t.Error("NewPasswordVerifier() accepted an empty configuration")
	}
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !limiter.Allow("10.0.0.1") {
			t.Fatalf("attempt %d denied within burst", i+1)
		}
	}
	if limiter.Allow("10.0.0.1") {
		t.Error("attempt over the limit allowed")
	}
	// Other IPs have their own bucket.
	if !limiter.Allow("10.0.0.2") {
		t.Error("unrelated IP denied")
	}
}

func TestRateLimiterStopEndsCleanup(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)

	done := make(chan struct{})
	go func() {
		limiter.startCleanup(time.Millisecond)
		close(done)
	}()

	limiter.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup goroutine did not exit after Stop")
	}

	// Stop is idempotent.
	limiter.Stop()
}
