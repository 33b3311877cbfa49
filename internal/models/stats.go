// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

package models

import "time"

// SpeciesStats aggregates the records of one reporting category.
type SpeciesStats struct {
	Category            string `json:"category"`
	TotalAnimals        int    `json:"total_animals"`
	TotalTranslocations int    `json:"total_translocations"`
}

// HealthStatus is the health check response.
type HealthStatus struct {
	Status            string  `json:"status"`
	Version           string  `json:"version"`
	DatabaseConnected bool    `json:"database_connected"`
	RecordCount       int64   `json:"record_count"`
	Uptime            float64 `json:"uptime_seconds"`
}

// LoginResponse carries the bearer token issued to a dashboard session.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
