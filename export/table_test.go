package export

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestEncodeCSVRoundTrip(t *testing.T) {
	table := &Table{
		Headers: []string{"name", "note"},
		Rows: [][]string{
			{"plain", "nothing special"},
			{"comma, inside", `quoted "value"`},
			{"multi\nline", "trailing space "},
		},
	}

	data, err := table.EncodeCSV()
	if err != nil {
		t.Fatalf("EncodeCSV: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("reading encoded csv: %v", err)
	}
	if !reflect.DeepEqual(records[0], table.Headers) {
		t.Errorf("header row = %v, want %v", records[0], table.Headers)
	}
	if len(records) != len(table.Rows)+1 {
		t.Fatalf("record count = %d, want %d", len(records), len(table.Rows)+1)
	}
	for i, row := range table.Rows {
		if !reflect.DeepEqual(records[i+1], row) {
			t.Errorf("row %d = %v, want %v", i, records[i+1], row)
		}
	}
}

func TestEncodeCSVHeaderOnly(t *testing.T) {
	table := &Table{Headers: []string{"a", "b", "c"}}
	data, err := table.EncodeCSV()
	if err != nil {
		t.Fatalf("EncodeCSV: %v", err)
	}
	if got := strings.TrimRight(string(data), "\n"); got != "a,b,c" {
		t.Errorf("header-only csv = %q", got)
	}
}

func TestEncodeWorkbook(t *testing.T) {
	table := &Table{
		Headers: []string{"id", "title"},
		Rows: [][]string{
			{"1", "First"},
			{"2", "Second, with comma"},
		},
	}

	data, err := table.EncodeWorkbook()
	if err != nil {
		t.Fatalf("EncodeWorkbook: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("opening workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows(%q): %v", SheetName, err)
	}
	if len(rows) != 3 {
		t.Fatalf("sheet row count = %d, want 3", len(rows))
	}
	if !reflect.DeepEqual(rows[0], table.Headers) {
		t.Errorf("header row = %v, want %v", rows[0], table.Headers)
	}
	if rows[2][1] != "Second, with comma" {
		t.Errorf("cell B3 = %q", rows[2][1])
	}
}
