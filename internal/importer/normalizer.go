// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

package importer

import (
	"fmt"
	"strings"
)

// Field names a logical record field that a spreadsheet column can map to.
type Field string

const (
	FieldProjectTitle     Field = "project_title"
	FieldYear             Field = "year"
	FieldSpecies          Field = "species"
	FieldNumberOfAnimals  Field = "number_of_animals"
	FieldSourceName       Field = "source_area.name"
	FieldSourceCoords     Field = "source_area.coordinates"
	FieldSourceCountry    Field = "source_area.country"
	FieldRecipientName    Field = "recipient_area.name"
	FieldRecipientCoords  Field = "recipient_area.coordinates"
	FieldRecipientCountry Field = "recipient_area.country"
	FieldTransport        Field = "transport"
	FieldSpecialProject   Field = "special_project"
	FieldAdditionalInfo   Field = "additional_info"
)

// columnSpec declares how one logical field is recognized in a header row.
// Each pattern is a set of substrings that must all appear in the header,
// case-insensitively; a header matches the spec when it matches any pattern.
//
// Specs are evaluated in declaration order and each header column can be
// claimed only once, so multi-word specifics (e.g. "source coordinates") are
// declared before the broad fallbacks that would otherwise swallow them
// (e.g. a bare "source" matching the source area name).
type columnSpec struct {
	field    Field
	required bool
	patterns [][]string

	// exclude disqualifies headers containing any of these substrings, so a
	// "count" pattern cannot swallow a bare "Country" column.
	exclude []string
}

// columnSpecs is the declarative header matching table. Synonyms cover the
// header variants seen in real partner spreadsheets: "Destination" for
// recipient, "Origin" for source, "Count" or "No. of Animals" for the animal
// count, "Notes" for additional info.
var columnSpecs = []columnSpec{
	{field: FieldSpecialProject, patterns: [][]string{{"special", "project"}, {"special"}, {"partner"}}},
	{field: FieldSourceCoords, patterns: [][]string{{"source", "coord"}, {"origin", "coord"}, {"source", "gps"}}},
	{field: FieldSourceCountry, patterns: [][]string{{"source", "country"}, {"origin", "country"}}},
	{field: FieldRecipientCoords, patterns: [][]string{{"recipient", "coord"}, {"destination", "coord"}, {"dest", "coord"}, {"recipient", "gps"}}},
	{field: FieldRecipientCountry, patterns: [][]string{{"recipient", "country"}, {"destination", "country"}, {"dest", "country"}}},
	{field: FieldSourceName, required: true, patterns: [][]string{{"source", "name"}, {"source", "area"}, {"origin"}, {"source"}}},
	{field: FieldRecipientName, required: true, patterns: [][]string{{"recipient", "name"}, {"recipient", "area"}, {"destination"}, {"recipient"}, {"dest"}}},
	{field: FieldProjectTitle, required: true, patterns: [][]string{{"project", "title"}, {"title"}, {"project", "name"}, {"project"}}},
	{field: FieldYear, required: true, patterns: [][]string{{"year"}, {"date"}}},
	{field: FieldNumberOfAnimals, required: true,
		patterns: [][]string{{"number", "animals"}, {"no", "animals"}, {"count"}, {"number"}, {"animals"}},
		exclude:  []string{"country"}},
	{field: FieldSpecies, required: true, patterns: [][]string{{"species"}, {"animal"}}},
	{field: FieldTransport, patterns: [][]string{{"transport"}, {"method"}}},
	{field: FieldAdditionalInfo, patterns: [][]string{{"additional"}, {"info"}, {"notes"}, {"comment"}}},
}

// ColumnMap maps logical fields to zero-based column indices. Fields with no
// matching header are absent from the map.
type ColumnMap map[Field]int

// Has reports whether the field matched a header column.
func (m ColumnMap) Has(field Field) bool {
	_, ok := m[field]
	return ok
}

// NormalizeColumns maps a spreadsheet header row onto the record schema.
//
// Header order and exact naming do not matter; matching is case-insensitive
// substring containment against the synonym table above. Optional fields that
// match nothing are simply absent for every row. A required field with no
// matching header fails the whole import, naming the field so the uploader
// can fix the sheet without guessing.
func NormalizeColumns(headers []string) (ColumnMap, error) {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = strings.ToLower(strings.TrimSpace(h))
	}

	columns := make(ColumnMap, len(columnSpecs))
	claimed := make([]bool, len(headers))

	for _, spec := range columnSpecs {
		idx := matchHeader(normalized, claimed, spec)
		if idx < 0 {
			if spec.required {
				return nil, fmt.Errorf("required column %q not found in header row %v", spec.field, headers)
			}
			continue
		}
		columns[spec.field] = idx
		claimed[idx] = true
	}

	return columns, nil
}

// matchHeader returns the index of the first unclaimed header matching any
// of the spec's patterns, trying patterns in order so more specific synonyms
// win. Returns -1 when nothing matches.
func matchHeader(headers []string, claimed []bool, spec columnSpec) int {
	for _, pattern := range spec.patterns {
		for i, header := range headers {
			if claimed[i] || header == "" {
				continue
			}
			if containsAny(header, spec.exclude) {
				continue
			}
			if containsAll(header, pattern) {
				return i
			}
		}
	}
	return -1
}

// containsAny reports whether any substring appears in the header.
func containsAny(header string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(header, sub) {
			return true
		}
	}
	return false
}

// containsAll reports whether every substring appears in the header.
func containsAll(header string, substrings []string) bool {
	for _, sub := range substrings {
		if !strings.Contains(header, sub) {
			return false
		}
	}
	return true
}
