// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

package models

// ImportMode selects what happens to existing records during a bulk import.
type ImportMode string

const (
	// ImportModeAppend adds imported records alongside existing ones.
	ImportModeAppend ImportMode = "append"

	// ImportModeReplace clears the store before inserting, so the upload
	// becomes the complete dataset. The clear happens only after the file has
	// been read and its header normalized.
	ImportModeReplace ImportMode = "replace"
)

// RowFailure records one data row the import pipeline rejected.
// Row is the 1-based spreadsheet row number including the header, so it
// matches what the user sees in their spreadsheet application.
type RowFailure struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// RowWarning records a data-quality problem that did not prevent the row from
// being stored, such as an unparseable coordinate string.
type RowWarning struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportOutcome summarizes one bulk import call. It is returned once to the
// caller and never persisted.
//
// TotalRowsProcessed counts every non-empty data row, so
// TotalRowsProcessed == SuccessfulImports + len(Failures) always holds.
// SpeciesSummary counts stored records per category, not animals.
type ImportOutcome struct {
	Filename           string         `json:"filename"`
	Mode               ImportMode     `json:"mode"`
	TotalRowsProcessed int            `json:"total_rows_processed"`
	SuccessfulImports  int            `json:"successful_imports"`
	Failures           []RowFailure   `json:"failures"`
	Warnings           []RowWarning   `json:"warnings,omitempty"`
	SpeciesSummary     map[string]int `json:"species_summary,omitempty"`
	RecordsCleared     int64          `json:"records_cleared,omitempty"`
}
