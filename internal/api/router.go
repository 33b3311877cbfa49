// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mkotze/translocatus/internal/auth"
	"github.com/mkotze/translocatus/internal/config"
	"github.com/mkotze/translocatus/internal/middleware"
)

// Router wires handlers and middleware into the chi route tree.
type Router struct {
	handler *Handler
	auth    *auth.Middleware
	cfg     *config.Config
}

// NewRouter creates a router.
func NewRouter(handler *Handler, authMiddleware *auth.Middleware, cfg *config.Config) *Router {
	return &Router{handler: handler, auth: authMiddleware, cfg: cfg}
}

// Setup builds the route tree.
//
// Route groups, from least to most protected: health and metrics are open,
// login is open but strictly rate limited, and everything else requires a
// bearer token. The WebSocket route skips the metrics middleware because
// its wrapped ResponseWriter cannot be hijacked for the upgrade.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   router.cfg.Security.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(router.auth.LoginRateLimit).Post("/login", router.handler.Login)
	})

	r.Route("/api/v1", func(r chi.Router) {
		if !router.cfg.Security.RateLimitDisabled {
			r.Use(httprate.LimitByIP(router.cfg.Security.RateLimitReqs, router.cfg.Security.RateLimitWindow))
		}
		r.Use(router.auth.Authenticate)

		r.Group(func(r chi.Router) {
			r.Use(middleware.PrometheusMetrics)

			r.Route("/translocations", func(r chi.Router) {
				r.Get("/", router.handler.ListTranslocations)
				r.Post("/", router.handler.CreateTranslocation)
				r.Get("/stats", router.handler.Stats)
				r.Get("/filters", router.handler.FilterValues)
				r.Post("/import", router.handler.Import)
				r.Post("/seed", router.handler.Seed)
				r.Get("/{id}", router.handler.GetTranslocation)
				r.Put("/{id}", router.handler.UpdateTranslocation)
				r.Delete("/{id}", router.handler.DeleteTranslocation)
			})
		})

		r.Get("/ws", router.handler.WebSocket)
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
