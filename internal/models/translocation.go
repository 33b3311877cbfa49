// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

// Package models defines the data structures used throughout Translocatus:
// translocation event records, import outcomes, statistics, and API responses.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Transport is the mode used to move the animals.
type Transport string

const (
	TransportRoad Transport = "Road"
	TransportAir  Transport = "Air"
)

// Area describes one end of a translocation: where animals were captured
// (source) or released (recipient).
//
// Coordinates holds the text exactly as entered or imported ("-24.9947,
// 32.5969", possibly with degree symbols or other noise). Lat/Lng are the
// parsed values and are nil when Coordinates is absent or unparseable; a nil
// pair means "location unknown, not plottable", never (0, 0).
type Area struct {
	Name        string   `json:"name" validate:"required"`
	Coordinates string   `json:"coordinates,omitempty"`
	Country     string   `json:"country" validate:"required"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
}

// Translocation is one conservation event: a number of animals of one species
// (or a mixed consignment) moved from a source area to a recipient area.
//
// Species holds the raw label as entered; SpeciesCategory is derived from it
// at write time (see internal/species) and drives statistics and filtering.
// ID and CreatedAt are immutable after creation; Seq records insertion order.
type Translocation struct {
	ID              uuid.UUID `json:"id"`
	ProjectTitle    string    `json:"project_title" validate:"required"`
	Year            int       `json:"year" validate:"gte=2000,lte=2035"`
	Species         string    `json:"species" validate:"required"`
	SpeciesCategory string    `json:"species_category,omitempty"`
	NumberOfAnimals int       `json:"number_of_animals" validate:"gte=1"`
	SourceArea      Area      `json:"source_area"`
	RecipientArea   Area      `json:"recipient_area"`
	Transport       Transport `json:"transport" validate:"omitempty,oneof=Road Air"`
	SpecialProject  string    `json:"special_project,omitempty"`
	AdditionalInfo  string    `json:"additional_info,omitempty"`
	CreatedAt       time.Time `json:"created_at"`

	// Seq is assigned by the store and preserves insertion order in listings.
	Seq int64 `json:"-"`
}

// FilterValues holds the distinct values present in the store for each
// filterable dimension, used to populate the dashboard's filter dropdowns.
type FilterValues struct {
	SpeciesCategories []string `json:"species_categories"`
	Years             []int    `json:"years"`
	Transports        []string `json:"transports"`
	SpecialProjects   []string `json:"special_projects"`
}
