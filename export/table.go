// Package export projects product records into flat rows and serializes
// them as CSV, XLSX workbooks, or JSON. All exports are pure functions over
// an immutable record slice: one synchronous pass, no caching, no partial
// output on error.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SheetName is the single worksheet written by workbook exports.
const SheetName = "Products"

// Table is the format-agnostic row model shared by every codec: an ordered
// header row plus one string row per record.
type Table struct {
	Headers []string
	Rows    [][]string
}

// EncodeCSV serializes the table as UTF-8, comma-delimited, LF-joined text.
// The header row is always first, even with zero data rows. Escaping
// follows RFC 4180: fields containing a comma, quote, or newline are quoted
// with internal quotes doubled, and round-trip through any standard CSV
// reader.
func (t *Table) EncodeCSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(t.Headers); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeWorkbook serializes the table as a single-sheet XLSX workbook.
func (t *Table) EncodeWorkbook() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("failed to name worksheet: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", rowValues(t.Headers)); err != nil {
		return nil, fmt.Errorf("failed to write workbook header: %w", err)
	}
	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to address workbook row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(SheetName, cell, rowValues(row)); err != nil {
			return nil, fmt.Errorf("failed to write workbook row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func rowValues(row []string) *[]any {
	vals := make([]any, len(row))
	for i, v := range row {
		vals[i] = v
	}
	return &vals
}
