// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mkotze/translocatus/internal/database"
	"github.com/mkotze/translocatus/internal/models"
)

// listResponse is the payload of the listing endpoint. Total counts matches
// before pagination so clients can page.
type listResponse struct {
	Records []models.Translocation `json:"records"`
	Total   int64                  `json:"total"`
	Limit   int                    `json:"limit"`
	Offset  int                    `json:"offset"`
}

// filterFromQuery builds a TranslocationFilter from the shared filter query
// parameters used by the listing and stats endpoints.
func (h *Handler) filterFromQuery(r *http.Request) database.TranslocationFilter {
	query := r.URL.Query()
	return database.TranslocationFilter{
		SpeciesCategories: parseCommaSeparated(query.Get("species_category")),
		Years:             parseCommaSeparatedInts(query.Get("year")),
		Transports:        parseCommaSeparated(query.Get("transport")),
		SpecialProjects:   parseCommaSeparated(query.Get("special_project")),
		Countries:         parseCommaSeparated(query.Get("country")),
		Search:            query.Get("search"),
	}
}

// ListTranslocations returns filtered records in insertion order. This is
// the endpoint map consumers poll, so pagination defaults are generous.
func (h *Handler) ListTranslocations(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	filter := h.filterFromQuery(r)
	filter.Limit = getIntParam(r, "limit", h.cfg.API.DefaultPageSize)
	filter.Offset = getIntParam(r, "offset", 0)
	if filter.Limit > h.cfg.API.MaxPageSize {
		filter.Limit = h.cfg.API.MaxPageSize
	}
	if filter.Limit < 0 || filter.Offset < 0 {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "limit and offset must be non-negative", nil)
		return
	}

	records, total, err := h.db.ListTranslocations(r.Context(), filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list translocations", err)
		return
	}

	respondSuccess(w, http.StatusOK, listResponse{
		Records: records,
		Total:   total,
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	}, started)
}

// GetTranslocation returns one record by ID.
func (h *Handler) GetTranslocation(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	id, ok := h.idFromURL(w, r)
	if !ok {
		return
	}

	record, err := h.db.GetTranslocation(r.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Translocation not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to get translocation", err)
		return
	}

	respondSuccess(w, http.StatusOK, record, started)
}

// CreateTranslocation inserts a new record and notifies live dashboards.
func (h *Handler) CreateTranslocation(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var record models.Translocation
	if err := decodeJSONBody(r, &record); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err)
		return
	}
	record.ID = uuid.Nil // server-assigned
	if apiErr := validateRequest(&record); apiErr != nil {
		respondJSON(w, http.StatusBadRequest, &models.APIResponse{
			Status:   "error",
			Metadata: models.Metadata{Timestamp: time.Now()},
			Error:    apiErr,
		})
		return
	}

	if err := h.db.InsertTranslocation(r.Context(), &record); err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create translocation", err)
		return
	}

	h.hub.BroadcastRecordsChanged("created", record.ID.String())
	respondSuccess(w, http.StatusCreated, record, started)
}

// UpdateTranslocation replaces a record's fields. The URL ID wins over any
// ID in the body.
func (h *Handler) UpdateTranslocation(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	id, ok := h.idFromURL(w, r)
	if !ok {
		return
	}

	var record models.Translocation
	if err := decodeJSONBody(r, &record); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err)
		return
	}
	record.ID = id
	if apiErr := validateRequest(&record); apiErr != nil {
		respondJSON(w, http.StatusBadRequest, &models.APIResponse{
			Status:   "error",
			Metadata: models.Metadata{Timestamp: time.Now()},
			Error:    apiErr,
		})
		return
	}

	if err := h.db.UpdateTranslocation(r.Context(), &record); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Translocation not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update translocation", err)
		return
	}

	updated, err := h.db.GetTranslocation(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load updated translocation", err)
		return
	}

	h.hub.BroadcastRecordsChanged("updated", id.String())
	respondSuccess(w, http.StatusOK, updated, started)
}

// DeleteTranslocation removes one record.
func (h *Handler) DeleteTranslocation(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	id, ok := h.idFromURL(w, r)
	if !ok {
		return
	}

	if err := h.db.DeleteTranslocation(r.Context(), id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Translocation not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete translocation", err)
		return
	}

	h.hub.BroadcastRecordsChanged("deleted", id.String())
	respondSuccess(w, http.StatusOK, map[string]string{"deleted": id.String()}, started)
}

// idFromURL parses the {id} path segment, responding with a validation
// error when it is not a UUID.
func (h *Handler) idFromURL(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid translocation ID", err)
		return uuid.Nil, false
	}
	return id, true
}
