// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

package api

import (
	"net/http"
	"time"

	"github.com/mkotze/translocatus/internal/logging"
	"github.com/mkotze/translocatus/internal/metrics"
	"github.com/mkotze/translocatus/internal/models"
)

// Import accepts a multipart spreadsheet upload and runs it through the
// import pipeline. The optional ?mode=replace query parameter clears the
// existing dataset before loading; the default appends.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	mode := models.ImportModeAppend
	switch r.URL.Query().Get("mode") {
	case "", string(models.ImportModeAppend):
	case string(models.ImportModeReplace):
		mode = models.ImportModeReplace
	default:
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "mode must be \"append\" or \"replace\"", nil)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.Import.MaxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Request must include a \"file\" upload", err)
		return
	}
	defer file.Close()

	outcome, err := h.importer.Import(r.Context(), file, header.Filename, mode)
	if err != nil {
		respondError(w, http.StatusBadRequest, "IMPORT_ERROR", err.Error(), err)
		return
	}

	metrics.RecordImport(outcome.SuccessfulImports, len(outcome.Failures), time.Since(started))
	h.hub.BroadcastImportCompleted(outcome)
	if mode == models.ImportModeReplace {
		h.hub.BroadcastRecordsChanged("replaced", "")
	} else if outcome.SuccessfulImports > 0 {
		h.hub.BroadcastRecordsChanged("created", "")
	}

	logger := logging.Ctx(r.Context())
	logger.Info().
		Str("filename", sanitizeLogValue(header.Filename)).
		Int("imported", outcome.SuccessfulImports).
		Msg("Import upload handled")

	respondSuccess(w, http.StatusOK, outcome, started)
}

// Seed loads the curated sample dataset into an empty database.
func (h *Handler) Seed(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	if err := h.db.SeedSampleData(r.Context()); err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to seed sample data", err)
		return
	}

	count, err := h.db.CountTranslocations(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to count records", err)
		return
	}

	h.hub.BroadcastRecordsChanged("created", "")
	respondSuccess(w, http.StatusOK, map[string]int64{"record_count": count}, started)
}
