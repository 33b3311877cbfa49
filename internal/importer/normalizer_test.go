// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

package importer

import (
	"strings"
	"testing"
)

// canonicalHeaders is the column layout the dashboard's own exports use.
var canonicalHeaders = []string{
	"Project Title", "Year", "Species", "Number of Animals",
	"Source Name", "Source Coordinates", "Source Country",
	"Recipient Name", "Recipient Coordinates", "Recipient Country",
	"Transport", "Special Project", "Additional Info",
}

func TestNormalizeColumnsCanonical(t *testing.T) {
	columns, err := NormalizeColumns(canonicalHeaders)
	if err != nil {
		t.Fatalf("NormalizeColumns() error: %v", err)
	}

	want := map[Field]int{
		FieldProjectTitle:     0,
		FieldYear:             1,
		FieldSpecies:          2,
		FieldNumberOfAnimals:  3,
		FieldSourceName:       4,
		FieldSourceCoords:     5,
		FieldSourceCountry:    6,
		FieldRecipientName:    7,
		FieldRecipientCoords:  8,
		FieldRecipientCountry: 9,
		FieldTransport:        10,
		FieldSpecialProject:   11,
		FieldAdditionalInfo:   12,
	}

	for field, wantIdx := range want {
		idx, ok := columns[field]
		if !ok {
			t.Errorf("field %q not mapped", field)
			continue
		}
		if idx != wantIdx {
			t.Errorf("field %q mapped to column %d, want %d", field, idx, wantIdx)
		}
	}
}

func TestNormalizeColumnsSynonyms(t *testing.T) {
	headers := []string{
		"Title", "Date", "Animal", "Count",
		"Origin", "Origin Coordinates", "Origin Country",
		"Destination", "Destination Coordinates", "Destination Country",
		"Method", "Partner", "Notes",
	}

	columns, err := NormalizeColumns(headers)
	if err != nil {
		t.Fatalf("NormalizeColumns() error: %v", err)
	}

	checks := map[Field]int{
		FieldProjectTitle:     0,
		FieldYear:             1,
		FieldSpecies:          2,
		FieldNumberOfAnimals:  3,
		FieldSourceName:       4,
		FieldSourceCoords:     5,
		FieldSourceCountry:    6,
		FieldRecipientName:    7,
		FieldRecipientCoords:  8,
		FieldRecipientCountry: 9,
		FieldTransport:        10,
		FieldSpecialProject:   11,
		FieldAdditionalInfo:   12,
	}
	for field, wantIdx := range checks {
		if idx := columns[field]; idx != wantIdx {
			t.Errorf("field %q mapped to column %d, want %d", field, idx, wantIdx)
		}
	}
}

func TestNormalizeColumnsCaseAndWhitespace(t *testing.T) {
	headers := []string{
		"  PROJECT TITLE ", "year", "SPECIES", "number of animals",
		"source name", "source coordinates", "source country",
		"recipient name", "recipient coordinates", "recipient country",
	}

	columns, err := NormalizeColumns(headers)
	if err != nil {
		t.Fatalf("NormalizeColumns() error: %v", err)
	}
	if !columns.Has(FieldProjectTitle) || !columns.Has(FieldNumberOfAnimals) {
		t.Errorf("case-insensitive matching failed: %v", columns)
	}
}

func TestNormalizeColumnsCountDoesNotClaimCountry(t *testing.T) {
	// "Count" is a substring of "Country"; the count column must not
	// swallow a country header.
	headers := []string{
		"Project Title", "Year", "Species",
		"Source Name", "Source Country",
		"Recipient Name", "Recipient Country",
		"Count",
	}

	columns, err := NormalizeColumns(headers)
	if err != nil {
		t.Fatalf("NormalizeColumns() error: %v", err)
	}
	if idx := columns[FieldNumberOfAnimals]; idx != 7 {
		t.Errorf("count mapped to column %d, want 7", idx)
	}
	if idx := columns[FieldSourceCountry]; idx != 4 {
		t.Errorf("source country mapped to column %d, want 4", idx)
	}
}

func TestNormalizeColumnsMissingRequired(t *testing.T) {
	headers := []string{"Project Title", "Year", "Species", "Count", "Source Name"}

	_, err := NormalizeColumns(headers)
	if err == nil {
		t.Fatal("NormalizeColumns() succeeded without a recipient column")
	}
	if !strings.Contains(err.Error(), string(FieldRecipientName)) {
		t.Errorf("error %q does not name the missing field", err)
	}
}

func TestNormalizeColumnsOptionalFieldsAbsent(t *testing.T) {
	headers := []string{
		"Project Title", "Year", "Species", "Number of Animals",
		"Source Name", "Recipient Name",
	}

	columns, err := NormalizeColumns(headers)
	if err != nil {
		t.Fatalf("NormalizeColumns() error: %v", err)
	}
	for _, field := range []Field{FieldSourceCoords, FieldRecipientCoords, FieldTransport, FieldSpecialProject} {
		if columns.Has(field) {
			t.Errorf("optional field %q mapped with no matching header", field)
		}
	}
}
