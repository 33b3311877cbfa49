// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

// Command server runs the Translocatus API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/mkotze/translocatus/internal/api"
	"github.com/mkotze/translocatus/internal/auth"
	"github.com/mkotze/translocatus/internal/config"
	"github.com/mkotze/translocatus/internal/database"
	"github.com/mkotze/translocatus/internal/importer"
	"github.com/mkotze/translocatus/internal/logging"
	"github.com/mkotze/translocatus/internal/websocket"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Server failed")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logging.Info().
		Str("version", api.Version).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Translocatus")

	db, err := database.New(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Database.SeedSampleData {
		if err := db.SeedSampleData(ctx); err != nil {
			return fmt.Errorf("failed to seed sample data: %w", err)
		}
	}

	var jwtManager *auth.JWTManager
	var passwords *auth.PasswordVerifier
	if cfg.Security.AuthMode != "none" {
		if jwtManager, err = auth.NewJWTManager(&cfg.Security); err != nil {
			return err
		}
		if passwords, err = auth.NewPasswordVerifier(&cfg.Security); err != nil {
			return err
		}
	}

	authMiddleware := auth.NewMiddleware(jwtManager, cfg.Security.AuthMode,
		cfg.Security.LoginRateLimitReqs, cfg.Security.LoginRateLimitWindow)
	defer authMiddleware.Close()

	hub := websocket.NewHub()
	go func() {
		if err := hub.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("WebSocket hub stopped")
		}
	}()

	imp := importer.New(db, cfg.Import.MaxRows)
	handler := api.NewHandler(db, cfg, jwtManager, passwords, imp, hub)
	router := api.NewRouter(handler, authMiddleware, cfg)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  2 * cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logging.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
		return err
	}

	logging.Info().Msg("Server stopped")
	return nil
}
