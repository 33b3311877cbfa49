// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

package database

import (
	"fmt"
)

// createSequences creates the insertion-order sequence. The seq column gives
// listings a stable default order that matches the source spreadsheet, which
// UUID primary keys cannot provide.
func (db *DB) createSequences() error {
	ctx, cancel := schemaContext()
	defer cancel()

	if _, err := db.conn.ExecContext(ctx, `CREATE SEQUENCE IF NOT EXISTS translocations_seq START 1`); err != nil {
		return fmt.Errorf("failed to create sequence: %w", err)
	}
	return nil
}

// createTables creates the core database tables.
//
// Coordinates are stored twice on purpose: the raw text the uploader typed
// (source_coordinates) for display and round-tripping, and the parsed
// lat/lng pair for map plotting. NULL lat/lng means the text did not parse;
// there is no (0, 0) sentinel.
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	query := `CREATE TABLE IF NOT EXISTS translocations (
		id UUID PRIMARY KEY,
		seq BIGINT NOT NULL DEFAULT nextval('translocations_seq'),
		project_title TEXT NOT NULL,
		year INTEGER NOT NULL,
		species TEXT NOT NULL,
		species_category TEXT NOT NULL,
		number_of_animals INTEGER NOT NULL,

		source_name TEXT NOT NULL,
		source_coordinates TEXT,
		source_lat DOUBLE,
		source_lng DOUBLE,
		source_country TEXT NOT NULL,

		recipient_name TEXT NOT NULL,
		recipient_coordinates TEXT,
		recipient_lat DOUBLE,
		recipient_lng DOUBLE,
		recipient_country TEXT NOT NULL,

		transport TEXT NOT NULL,
		special_project TEXT,
		additional_info TEXT,
		created_at TIMESTAMP NOT NULL
	)`

	if _, err := db.conn.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create translocations table: %w", err)
	}
	return nil
}

// createIndexes creates indexes for the filterable columns.
func (db *DB) createIndexes() error {
	ctx, cancel := schemaContext()
	defer cancel()

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_translocations_year ON translocations(year)`,
		`CREATE INDEX IF NOT EXISTS idx_translocations_category ON translocations(species_category)`,
		`CREATE INDEX IF NOT EXISTS idx_translocations_transport ON translocations(transport)`,
		`CREATE INDEX IF NOT EXISTS idx_translocations_project ON translocations(special_project)`,
		`CREATE INDEX IF NOT EXISTS idx_translocations_seq ON translocations(seq)`,
	}

	for _, query := range indexes {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create index: %s: %w", query, err)
		}
	}
	return nil
}
