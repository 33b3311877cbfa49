// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mkotze/translocatus/internal/geo"
	"github.com/mkotze/translocatus/internal/metrics"
	"github.com/mkotze/translocatus/internal/models"
	"github.com/mkotze/translocatus/internal/species"
)

// observeQuery feeds the Prometheus query collectors. Not-found results are
// normal control flow, not query errors.
func observeQuery(operation string, start time.Time, err error) {
	if errors.Is(err, ErrNotFound) {
		err = nil
	}
	metrics.RecordDBQuery(operation, time.Since(start), err)
}

// translocationColumns is the column list shared by every SELECT so scan
// order stays in one place.
const translocationColumns = `id, seq, project_title, year, species, species_category, number_of_animals,
	source_name, source_coordinates, source_lat, source_lng, source_country,
	recipient_name, recipient_coordinates, recipient_lat, recipient_lng, recipient_country,
	transport, special_project, additional_info, created_at`

// normalizeRecord derives the stored fields that are functions of user input.
// The species category and the parsed lat/lng pairs are always recomputed at
// write time so an update to the species or coordinate text can never leave a
// stale derivation behind.
func normalizeRecord(record *models.Translocation) {
	record.SpeciesCategory = species.Categorize(record.Species).Category
	normalizeArea(&record.SourceArea)
	normalizeArea(&record.RecipientArea)
	if record.Transport == "" {
		record.Transport = models.TransportRoad
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
}

func normalizeArea(area *models.Area) {
	if area.Country == "" {
		area.Country = "Unknown"
	}
	if point, ok := geo.Parse(area.Coordinates); ok {
		area.Lat = &point.Lat
		area.Lng = &point.Lng
	} else {
		area.Lat = nil
		area.Lng = nil
	}
}

// InsertTranslocation persists one record. The seq column is assigned by the
// database sequence and read back into the record.
func (db *DB) InsertTranslocation(ctx context.Context, record *models.Translocation) (err error) {
	start := time.Now()
	defer func() { observeQuery("insert", start, err) }()

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	normalizeRecord(record)

	query := `INSERT INTO translocations (
		id, project_title, year, species, species_category, number_of_animals,
		source_name, source_coordinates, source_lat, source_lng, source_country,
		recipient_name, recipient_coordinates, recipient_lat, recipient_lng, recipient_country,
		transport, special_project, additional_info, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	RETURNING seq`

	err = db.conn.QueryRowContext(ctx, query,
		record.ID, record.ProjectTitle, record.Year, record.Species,
		record.SpeciesCategory, record.NumberOfAnimals,
		record.SourceArea.Name, record.SourceArea.Coordinates,
		record.SourceArea.Lat, record.SourceArea.Lng, record.SourceArea.Country,
		record.RecipientArea.Name, record.RecipientArea.Coordinates,
		record.RecipientArea.Lat, record.RecipientArea.Lng, record.RecipientArea.Country,
		string(record.Transport), record.SpecialProject, record.AdditionalInfo,
		record.CreatedAt,
	).Scan(&record.Seq)
	if err != nil {
		return fmt.Errorf("failed to insert translocation: %w", err)
	}
	metrics.TranslocationRecords.Inc()
	return nil
}

// GetTranslocation fetches one record by ID. Returns ErrNotFound when the ID
// does not exist.
func (db *DB) GetTranslocation(ctx context.Context, id uuid.UUID) (record *models.Translocation, err error) {
	start := time.Now()
	defer func() { observeQuery("get", start, err) }()

	query := fmt.Sprintf(`SELECT %s FROM translocations WHERE id = ?`, translocationColumns)

	record, err = scanTranslocation(db.conn.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get translocation: %w", err)
	}
	return record, nil
}

// UpdateTranslocation replaces the mutable fields of an existing record,
// re-deriving the category and coordinates. Returns ErrNotFound when the ID
// does not exist.
func (db *DB) UpdateTranslocation(ctx context.Context, record *models.Translocation) (err error) {
	start := time.Now()
	defer func() { observeQuery("update", start, err) }()

	normalizeRecord(record)

	query := `UPDATE translocations SET
		project_title = ?, year = ?, species = ?, species_category = ?, number_of_animals = ?,
		source_name = ?, source_coordinates = ?, source_lat = ?, source_lng = ?, source_country = ?,
		recipient_name = ?, recipient_coordinates = ?, recipient_lat = ?, recipient_lng = ?, recipient_country = ?,
		transport = ?, special_project = ?, additional_info = ?
	WHERE id = ?`

	result, err := db.conn.ExecContext(ctx, query,
		record.ProjectTitle, record.Year, record.Species,
		record.SpeciesCategory, record.NumberOfAnimals,
		record.SourceArea.Name, record.SourceArea.Coordinates,
		record.SourceArea.Lat, record.SourceArea.Lng, record.SourceArea.Country,
		record.RecipientArea.Name, record.RecipientArea.Coordinates,
		record.RecipientArea.Lat, record.RecipientArea.Lng, record.RecipientArea.Country,
		string(record.Transport), record.SpecialProject, record.AdditionalInfo,
		record.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update translocation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTranslocation removes one record by ID. Returns ErrNotFound when the
// ID does not exist.
func (db *DB) DeleteTranslocation(ctx context.Context, id uuid.UUID) (err error) {
	start := time.Now()
	defer func() { observeQuery("delete", start, err) }()

	result, err := db.conn.ExecContext(ctx, `DELETE FROM translocations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete translocation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	metrics.TranslocationRecords.Dec()
	return nil
}

// ClearTranslocations deletes every record and reports how many were removed.
// Used by replace-mode imports.
func (db *DB) ClearTranslocations(ctx context.Context) (count int64, err error) {
	start := time.Now()
	defer func() { observeQuery("clear", start, err) }()

	count, err = db.CountTranslocations(ctx)
	if err != nil {
		return 0, err
	}
	if _, err := db.conn.ExecContext(ctx, `DELETE FROM translocations`); err != nil {
		return 0, fmt.Errorf("failed to clear translocations: %w", err)
	}
	metrics.TranslocationRecords.Set(0)
	return count, nil
}

// CountTranslocations returns the total record count.
func (db *DB) CountTranslocations(ctx context.Context) (count int64, err error) {
	start := time.Now()
	defer func() { observeQuery("count", start, err) }()

	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM translocations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count translocations: %w", err)
	}
	metrics.TranslocationRecords.Set(float64(count))
	return count, nil
}

// ListTranslocations returns records matching the filter in insertion order,
// plus the total match count before pagination so clients can page.
func (db *DB) ListTranslocations(ctx context.Context, filter TranslocationFilter) (_ []models.Translocation, _ int64, err error) {
	start := time.Now()
	defer func() { observeQuery("list", start, err) }()

	whereClauses, args := buildFilterConditions(filter)
	whereSQL := ""
	if len(whereClauses) > 0 {
		whereSQL = " WHERE " + strings.Join(whereClauses, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM translocations` + whereSQL
	if err := db.conn.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered translocations: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM translocations%s ORDER BY seq`, translocationColumns, whereSQL)
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", filter.Limit, filter.Offset)
	}

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list translocations: %w", err)
	}
	defer rows.Close()

	records := make([]models.Translocation, 0)
	for rows.Next() {
		record, err := scanTranslocation(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan translocation: %w", err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate translocations: %w", err)
	}

	return records, total, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for the shared scan helper.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanTranslocation reads one row in translocationColumns order.
func scanTranslocation(row rowScanner) (*models.Translocation, error) {
	var (
		record         models.Translocation
		transport      string
		sourceCoords   sql.NullString
		sourceLat      sql.NullFloat64
		sourceLng      sql.NullFloat64
		recipCoords    sql.NullString
		recipLat       sql.NullFloat64
		recipLng       sql.NullFloat64
		specialProject sql.NullString
		additionalInfo sql.NullString
	)

	err := row.Scan(
		&record.ID, &record.Seq, &record.ProjectTitle, &record.Year,
		&record.Species, &record.SpeciesCategory, &record.NumberOfAnimals,
		&record.SourceArea.Name, &sourceCoords, &sourceLat, &sourceLng, &record.SourceArea.Country,
		&record.RecipientArea.Name, &recipCoords, &recipLat, &recipLng, &record.RecipientArea.Country,
		&transport, &specialProject, &additionalInfo, &record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Transport = models.Transport(transport)
	record.SourceArea.Coordinates = sourceCoords.String
	record.RecipientArea.Coordinates = recipCoords.String
	record.SpecialProject = specialProject.String
	record.AdditionalInfo = additionalInfo.String
	if sourceLat.Valid && sourceLng.Valid {
		record.SourceArea.Lat = &sourceLat.Float64
		record.SourceArea.Lng = &sourceLng.Float64
	}
	if recipLat.Valid && recipLng.Valid {
		record.RecipientArea.Lat = &recipLat.Float64
		record.RecipientArea.Lng = &recipLng.Float64
	}

	return &record, nil
}
