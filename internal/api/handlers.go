// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

// Package api provides the HTTP surface of the dashboard: health and login,
// the translocation CRUD and aggregation endpoints, the import pipeline, and
// the live WebSocket feed.
package api

import (
	"net/http"
	"time"

	gorillaws "github.com/gorilla/websocket"

	"github.com/mkotze/translocatus/internal/auth"
	"github.com/mkotze/translocatus/internal/config"
	"github.com/mkotze/translocatus/internal/database"
	"github.com/mkotze/translocatus/internal/importer"
	"github.com/mkotze/translocatus/internal/logging"
	"github.com/mkotze/translocatus/internal/models"
	"github.com/mkotze/translocatus/internal/websocket"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Handler holds the dependencies shared by all HTTP handlers.
type Handler struct {
	db        *database.DB
	cfg       *config.Config
	jwt       *auth.JWTManager
	passwords *auth.PasswordVerifier
	importer  *importer.Importer
	hub       *websocket.Hub
	startTime time.Time
	upgrader  gorillaws.Upgrader
}

// NewHandler creates the handler set.
func NewHandler(db *database.DB, cfg *config.Config, jwt *auth.JWTManager, passwords *auth.PasswordVerifier, imp *importer.Importer, hub *websocket.Hub) *Handler {
	return &Handler{
		db:        db,
		cfg:       cfg,
		jwt:       jwt,
		passwords: passwords,
		importer:  imp,
		hub:       hub,
		startTime: time.Now(),
		upgrader: gorillaws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return checkWSOrigin(r, cfg.Security.CORSOrigins)
			},
		},
	}
}

// Health reports service status, database connectivity, and record count.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	status := models.HealthStatus{
		Status:  "healthy",
		Version: Version,
		Uptime:  time.Since(h.startTime).Seconds(),
	}

	if err := h.db.Ping(r.Context()); err != nil {
		status.Status = "degraded"
	} else {
		status.DatabaseConnected = true
		if count, err := h.db.CountTranslocations(r.Context()); err == nil {
			status.RecordCount = count
		}
	}

	httpStatus := http.StatusOK
	if !status.DatabaseConnected {
		httpStatus = http.StatusServiceUnavailable
	}
	respondSuccess(w, httpStatus, status, started)
}

// HealthLive always returns 200 while the process is running.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]string{"status": "alive"}, time.Now())
}

// HealthReady returns 200 only when the database answers.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, "INTERNAL_ERROR", "Database not ready", err)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]string{"status": "ready"}, time.Now())
}

// loginRequest is the login endpoint's body.
type loginRequest struct {
	Password string `json:"password" validate:"required"`
}

// Login exchanges the shared dashboard password for a bearer token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondJSON(w, http.StatusBadRequest, &models.APIResponse{
			Status:   "error",
			Metadata: models.Metadata{Timestamp: time.Now()},
			Error:    apiErr,
		})
		return
	}

	if !h.passwords.Verify(req.Password) {
		logger := logging.Ctx(r.Context())
		logger.Warn().Msg("Failed login attempt")
		respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid password", nil)
		return
	}

	token, expiresAt, err := h.jwt.GenerateToken("dashboard")
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to issue token", err)
		return
	}

	respondSuccess(w, http.StatusOK, models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, time.Now())
}

// WebSocket upgrades the connection and attaches it to the hub.
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger := logging.Ctx(r.Context())
		logger.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	websocket.NewClient(h.hub, conn).Start()
}

// checkWSOrigin accepts same-host upgrades and any configured CORS origin.
func checkWSOrigin(r *http.Request, allowed []string) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, candidate := range allowed {
		if candidate == "*" || candidate == origin {
			return true
		}
	}
	return false
}
