// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mkotze/translocatus/internal/models"
)

// GetSpeciesStats aggregates animal and translocation totals per reporting
// category, honoring the same filter dimensions as the listing endpoint.
// Categories are ordered by total animals descending, then name, so the
// dashboard's headline numbers come back ready to render.
func (db *DB) GetSpeciesStats(ctx context.Context, filter TranslocationFilter) (_ []models.SpeciesStats, err error) {
	start := time.Now()
	defer func() { observeQuery("stats", start, err) }()

	whereClauses, args := buildFilterConditions(filter)
	whereSQL := ""
	if len(whereClauses) > 0 {
		whereSQL = " WHERE " + strings.Join(whereClauses, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT species_category,
		       SUM(number_of_animals) AS total_animals,
		       COUNT(*) AS total_translocations
		FROM translocations%s
		GROUP BY species_category
		ORDER BY total_animals DESC, species_category ASC`, whereSQL)

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query species stats: %w", err)
	}
	defer rows.Close()

	stats := make([]models.SpeciesStats, 0)
	for rows.Next() {
		var s models.SpeciesStats
		if err := rows.Scan(&s.Category, &s.TotalAnimals, &s.TotalTranslocations); err != nil {
			return nil, fmt.Errorf("failed to scan species stats: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate species stats: %w", err)
	}

	return stats, nil
}

// GetFilterValues returns the distinct values present in the dataset for
// each filterable dimension, so the dashboard can populate its dropdowns
// from real data instead of hardcoded lists.
func (db *DB) GetFilterValues(ctx context.Context) (_ *models.FilterValues, err error) {
	start := time.Now()
	defer func() { observeQuery("filter_values", start, err) }()

	values := &models.FilterValues{
		SpeciesCategories: []string{},
		Years:             []int{},
		Transports:        []string{},
		SpecialProjects:   []string{},
	}

	if err := db.queryStringColumn(ctx,
		`SELECT DISTINCT species_category FROM translocations ORDER BY species_category`,
		&values.SpeciesCategories); err != nil {
		return nil, err
	}

	rows, err := db.conn.QueryContext(ctx, `SELECT DISTINCT year FROM translocations ORDER BY year`)
	if err != nil {
		return nil, fmt.Errorf("failed to query filter years: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, fmt.Errorf("failed to scan filter year: %w", err)
		}
		values.Years = append(values.Years, year)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate filter years: %w", err)
	}

	if err := db.queryStringColumn(ctx,
		`SELECT DISTINCT transport FROM translocations ORDER BY transport`,
		&values.Transports); err != nil {
		return nil, err
	}

	if err := db.queryStringColumn(ctx,
		`SELECT DISTINCT special_project FROM translocations
		 WHERE special_project IS NOT NULL AND special_project != ''
		 ORDER BY special_project`,
		&values.SpecialProjects); err != nil {
		return nil, err
	}

	return values, nil
}

// queryStringColumn runs a single-column string query into dest.
func (db *DB) queryStringColumn(ctx context.Context, query string, dest *[]string) error {
	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to query filter values: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return fmt.Errorf("failed to scan filter value: %w", err)
		}
		*dest = append(*dest, value)
	}
	return rows.Err()
}
