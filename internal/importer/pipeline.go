// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

// Package importer turns uploaded spreadsheets into translocation records.
//
// The pipeline is deliberately forgiving at the row level and strict at the
// file level: a file that cannot be read or lacks a required column fails
// outright, while individual bad rows are skipped and reported back with a
// reason so the uploader can fix them without losing the rest of the sheet.
package importer

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mkotze/translocatus/internal/geo"
	"github.com/mkotze/translocatus/internal/logging"
	"github.com/mkotze/translocatus/internal/models"
	"github.com/mkotze/translocatus/internal/species"
)

// Store is the persistence surface the pipeline needs. The database package
// implements it.
type Store interface {
	InsertTranslocation(ctx context.Context, record *models.Translocation) error
	ClearTranslocations(ctx context.Context) (int64, error)
}

// Importer runs upload files through parse, normalize, and persist stages.
type Importer struct {
	store   Store
	maxRows int
}

// New creates an Importer. maxRows caps the number of data rows accepted per
// file; zero or negative disables the cap.
func New(store Store, maxRows int) *Importer {
	return &Importer{store: store, maxRows: maxRows}
}

// yearPattern recovers a four-digit year from date-like cells
// ("2023-06-12", "June 2023").
var yearPattern = regexp.MustCompile(`\b(20\d{2})\b`)

// integerPattern recovers the first integer from count cells that carry
// extra text ("~150", "120 animals").
var integerPattern = regexp.MustCompile(`\d+`)

const (
	yearMin = 2000
	yearMax = 2035
)

// canonicalProjects maps lowercase keywords to canonical special project
// names, so "PPF" rows and "Peace Parks Foundation" rows aggregate together.
var canonicalProjects = []struct {
	keyword string
	name    string
}{
	{"peace parks", "Peace Parks"},
	{"ppf", "Peace Parks"},
	{"african parks", "African Parks"},
	{"rhino rewild", "Rhino Rewild"},
	{"rewild", "Rhino Rewild"},
}

// Import parses the uploaded file and persists its rows.
//
// In replace mode the existing dataset is cleared only after the file has
// been read and its header normalized, so a corrupt upload can never wipe
// the database. Row numbers in failures and warnings are 1-based and count
// the header row, matching what the uploader sees in their spreadsheet.
func (imp *Importer) Import(ctx context.Context, r io.Reader, filename string, mode models.ImportMode) (*models.ImportOutcome, error) {
	rows, err := readRows(r, filename)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("file %q is empty", filename)
	}

	columns, err := NormalizeColumns(rows[0])
	if err != nil {
		return nil, err
	}

	dataRows := rows[1:]
	if imp.maxRows > 0 && len(dataRows) > imp.maxRows {
		return nil, fmt.Errorf("file has %d data rows, exceeding the limit of %d", len(dataRows), imp.maxRows)
	}

	outcome := &models.ImportOutcome{
		Filename:       filename,
		Mode:           mode,
		SpeciesSummary: make(map[string]int),
	}

	type parsedRow struct {
		rowNum int
		record *models.Translocation
	}
	parsed := make([]parsedRow, 0, len(dataRows))
	for i, row := range dataRows {
		if rowIsEmpty(row) {
			continue
		}
		rowNum := i + 2 // 1-based, counting the header row
		outcome.TotalRowsProcessed++

		record, warnings, err := parseRow(row, rowNum, columns)
		if err != nil {
			outcome.Failures = append(outcome.Failures, models.RowFailure{Row: rowNum, Reason: err.Error()})
			continue
		}
		outcome.Warnings = append(outcome.Warnings, warnings...)
		parsed = append(parsed, parsedRow{rowNum: rowNum, record: record})
	}

	if mode == models.ImportModeReplace {
		cleared, err := imp.store.ClearTranslocations(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to clear existing records: %w", err)
		}
		outcome.RecordsCleared = cleared
	}

	for _, p := range parsed {
		if err := imp.store.InsertTranslocation(ctx, p.record); err != nil {
			outcome.Failures = append(outcome.Failures, models.RowFailure{
				Row:    p.rowNum,
				Reason: fmt.Sprintf("failed to save record: %v", err),
			})
			continue
		}
		outcome.SuccessfulImports++
		outcome.SpeciesSummary[p.record.SpeciesCategory]++
	}

	logger := logging.Ctx(ctx)
	logger.Info().
		Str("filename", filename).
		Str("mode", string(mode)).
		Int("rows_processed", outcome.TotalRowsProcessed).
		Int("imported", outcome.SuccessfulImports).
		Int("failed", len(outcome.Failures)).
		Msg("Import completed")

	return outcome, nil
}

// parseRow builds one record from a spreadsheet row. The returned error names
// the offending field; warnings report recoverable issues such as coordinates
// that could not be parsed.
func parseRow(row []string, rowNum int, columns ColumnMap) (*models.Translocation, []models.RowWarning, error) {
	title := cell(row, columns, FieldProjectTitle)
	if title == "" {
		return nil, nil, fmt.Errorf("missing project title")
	}

	year, err := parseYear(cell(row, columns, FieldYear))
	if err != nil {
		return nil, nil, err
	}

	speciesLabel := cell(row, columns, FieldSpecies)
	if speciesLabel == "" {
		return nil, nil, fmt.Errorf("missing species")
	}

	count, err := parseCount(cell(row, columns, FieldNumberOfAnimals))
	if err != nil {
		return nil, nil, err
	}

	var warnings []models.RowWarning
	source, warn := parseArea(row, rowNum, columns, "source",
		FieldSourceName, FieldSourceCoords, FieldSourceCountry)
	if source.Name == "" {
		return nil, nil, fmt.Errorf("missing source area name")
	}
	warnings = append(warnings, warn...)

	recipient, warn := parseArea(row, rowNum, columns, "recipient",
		FieldRecipientName, FieldRecipientCoords, FieldRecipientCountry)
	if recipient.Name == "" {
		return nil, nil, fmt.Errorf("missing recipient area name")
	}
	warnings = append(warnings, warn...)

	info := cell(row, columns, FieldAdditionalInfo)
	categorized := species.Categorize(speciesLabel)
	if categorized.Note != "" {
		note := "Species: " + categorized.Note
		if info == "" {
			info = note
		} else {
			info = info + "; " + note
		}
	}

	record := &models.Translocation{
		ID:              uuid.New(),
		ProjectTitle:    title,
		Year:            year,
		Species:         speciesLabel,
		SpeciesCategory: categorized.Category,
		NumberOfAnimals: count,
		SourceArea:      source,
		RecipientArea:   recipient,
		Transport:       parseTransport(cell(row, columns, FieldTransport)),
		SpecialProject:  parseSpecialProject(cell(row, columns, FieldSpecialProject)),
		AdditionalInfo:  info,
		CreatedAt:       time.Now().UTC(),
	}
	return record, warnings, nil
}

// parseArea assembles one endpoint of a translocation. The raw coordinate
// text is kept verbatim; lat/lng stay nil when it does not parse, which marks
// the record as not plottable rather than pinning it to a bogus location.
func parseArea(row []string, rowNum int, columns ColumnMap, side string, nameField, coordsField, countryField Field) (models.Area, []models.RowWarning) {
	area := models.Area{
		Name:        cell(row, columns, nameField),
		Coordinates: cell(row, columns, coordsField),
		Country:     cell(row, columns, countryField),
	}
	if area.Country == "" {
		area.Country = "Unknown"
	}

	var warnings []models.RowWarning
	if area.Coordinates != "" {
		if point, ok := geo.Parse(area.Coordinates); ok {
			area.Lat = &point.Lat
			area.Lng = &point.Lng
		} else {
			warnings = append(warnings, models.RowWarning{
				Row:     rowNum,
				Message: fmt.Sprintf("could not parse %s coordinates %q", side, area.Coordinates),
			})
		}
	}
	return area, warnings
}

// parseYear accepts a bare year or recovers one from a date-like string, and
// bounds it to the programme's operating window.
func parseYear(raw string) (int, error) {
	if raw == "" {
		return 0, fmt.Errorf("missing year")
	}

	year, err := strconv.Atoi(raw)
	if err != nil {
		match := yearPattern.FindString(raw)
		if match == "" {
			return 0, fmt.Errorf("invalid year %q", raw)
		}
		year, _ = strconv.Atoi(match)
	}

	if year < yearMin || year > yearMax {
		return 0, fmt.Errorf("year %d out of range (%d-%d)", year, yearMin, yearMax)
	}
	return year, nil
}

// parseCount accepts a bare integer or recovers the first integer from cells
// with surrounding text. Zero and negative counts are rejected.
func parseCount(raw string) (int, error) {
	if raw == "" {
		return 0, fmt.Errorf("missing number of animals")
	}

	count, err := strconv.Atoi(raw)
	if err != nil {
		match := integerPattern.FindString(raw)
		if match == "" {
			return 0, fmt.Errorf("invalid number of animals %q", raw)
		}
		count, _ = strconv.Atoi(match)
	}

	if count <= 0 {
		return 0, fmt.Errorf("number of animals must be positive, got %d", count)
	}
	return count, nil
}

// parseTransport buckets free-text transport cells. Anything mentioning
// flight becomes Air; everything else, including blank, defaults to Road.
func parseTransport(raw string) models.Transport {
	normalized := strings.ToLower(raw)
	for _, keyword := range []string{"air", "plane", "fly", "flown", "helicopter"} {
		if strings.Contains(normalized, keyword) {
			return models.TransportAir
		}
	}
	return models.TransportRoad
}

// parseSpecialProject canonicalizes known partner programmes and passes
// unrecognized values through trimmed.
func parseSpecialProject(raw string) string {
	trimmed := strings.TrimSpace(raw)
	normalized := strings.ToLower(trimmed)
	for _, project := range canonicalProjects {
		if strings.Contains(normalized, project.keyword) {
			return project.name
		}
	}
	return trimmed
}

// cell returns the trimmed value of the mapped column, or "" when the field
// has no column or the row is too short.
func cell(row []string, columns ColumnMap, field Field) string {
	idx, ok := columns[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// rowIsEmpty reports whether every cell is blank.
func rowIsEmpty(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
