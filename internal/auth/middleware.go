// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

package auth

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/mkotze/translocatus/internal/logging"
)

type contextKey string

// ClaimsContextKey locates the validated session claims in a request context.
const ClaimsContextKey contextKey = "claims"

// Middleware guards API routes with bearer token authentication and rate
// limits the login endpoint.
type Middleware struct {
	jwtManager   *JWTManager
	authMode     string
	loginLimiter *RateLimiter
}

// NewMiddleware creates the authentication middleware. authMode "none"
// disables enforcement entirely, which only makes sense for local
// development and tests.
func NewMiddleware(jwtManager *JWTManager, authMode string, loginReqs int, loginWindow time.Duration) *Middleware {
	m := &Middleware{
		jwtManager:   jwtManager,
		authMode:     authMode,
		loginLimiter: NewRateLimiter(loginReqs, loginWindow),
	}
	go m.loginLimiter.startCleanup(10 * time.Minute)
	return m
}

// Close stops the login limiter's cleanup goroutine.
func (m *Middleware) Close() {
	m.loginLimiter.Stop()
}

// Authenticate rejects requests without a valid bearer token.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.authMode == "none" {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			http.Error(w, "Unauthorized: missing bearer token", http.StatusUnauthorized)
			return
		}

		claims, err := m.jwtManager.ValidateToken(token)
		if err != nil {
			logger := logging.Ctx(r.Context())
			logger.Debug().Err(err).Msg("Token validation failed")
			http.Error(w, "Unauthorized: invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LoginRateLimit throttles login attempts per client IP.
func (m *Middleware) LoginRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !m.loginLimiter.Allow(ip) {
			logger := logging.Ctx(r.Context())
			logger.Warn().Str("ip", ip).Msg("Login rate limit exceeded")
			http.Error(w, "Too many login attempts, try again later", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClaimsFromContext returns the session claims placed by Authenticate, or
// nil when the request was not authenticated (auth mode "none").
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(ClaimsContextKey).(*Claims)
	return claims
}

// bearerToken extracts the token from an "Authorization: Bearer x" header.
func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// clientIP returns the remote address without the port.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
