// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

package api

import (
	"net/http"
	"time"
)

// statsResponse is the payload of the stats endpoint.
type statsResponse struct {
	Categories   []statsCategory `json:"categories"`
	TotalAnimals int             `json:"total_animals"`
	TotalRecords int             `json:"total_records"`
}

type statsCategory struct {
	Category            string `json:"category"`
	TotalAnimals        int    `json:"total_animals"`
	TotalTranslocations int    `json:"total_translocations"`
}

// Stats aggregates animal totals per reporting category, honoring the same
// filters as the listing endpoint so the dashboard's headline numbers always
// match the visible records.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	stats, err := h.db.GetSpeciesStats(r.Context(), h.filterFromQuery(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute stats", err)
		return
	}

	response := statsResponse{Categories: make([]statsCategory, 0, len(stats))}
	for _, s := range stats {
		response.Categories = append(response.Categories, statsCategory{
			Category:            s.Category,
			TotalAnimals:        s.TotalAnimals,
			TotalTranslocations: s.TotalTranslocations,
		})
		response.TotalAnimals += s.TotalAnimals
		response.TotalRecords += s.TotalTranslocations
	}

	respondSuccess(w, http.StatusOK, response, started)
}

// FilterValues returns the distinct values present in the dataset for each
// filter dimension.
func (h *Handler) FilterValues(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	values, err := h.db.GetFilterValues(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load filter values", err)
		return
	}

	respondSuccess(w, http.StatusOK, values, started)
}
