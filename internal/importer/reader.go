// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// readRows loads every row of the uploaded file into memory, dispatching on
// the filename extension. The first returned row is the header row. Uploads
// are capped well below memory-relevant sizes before this is called, so
// slurping the whole sheet keeps the row-level error reporting simple.
func readRows(r io.Reader, filename string) ([][]string, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".xlsx", ".xls", ".xlsm":
		return readSpreadsheet(r)
	case ".csv":
		return readCSV(r)
	default:
		return nil, fmt.Errorf("unsupported file type %q: expected .xlsx, .xls, or .csv", ext)
	}
}

// readSpreadsheet reads the first sheet of an Excel workbook. Rows come back
// ragged (trailing empty cells are omitted by the format), which the pipeline
// tolerates via bounds-checked cell access.
func readSpreadsheet(r io.Reader) ([][]string, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("spreadsheet contains no sheets")
	}

	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// readCSV reads a comma-separated file. FieldsPerRecord is disabled because
// partner exports routinely have short rows; a stray UTF-8 BOM on the first
// header cell is stripped so column matching still works.
func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}
	return rows, nil
}
