// Package workbooktest builds xlsx fixtures for tests.
package workbooktest

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// Sheet is one fixture sheet; Rows are written from A1 downwards.
type Sheet struct {
	Name string
	Rows [][]interface{}
}

// Write saves sheets into a new workbook under t.TempDir and returns its path.
func Write(t testing.TB, sheets ...Sheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for _, s := range sheets {
		if _, err := f.NewSheet(s.Name); err != nil {
			t.Fatalf("Failed to create sheet %q: %v", s.Name, err)
		}
		for i, row := range s.Rows {
			row := row
			if err := f.SetSheetRow(s.Name, fmt.Sprintf("A%d", i+1), &row); err != nil {
				t.Fatalf("Failed to write row %d of %q: %v", i+1, s.Name, err)
			}
		}
	}
	if !hasSheet(sheets, "Sheet1") {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			t.Fatalf("Failed to drop default sheet: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "budget.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

// Metric builds a sheet with an index column and one row per entity.
func Metric(name, indexColumn string, periods []string, rows map[string][]float64, order ...string) Sheet {
	header := []interface{}{indexColumn}
	for _, p := range periods {
		header = append(header, p)
	}
	s := Sheet{Name: name, Rows: [][]interface{}{header}}
	for _, code := range order {
		row := []interface{}{code}
		for _, v := range rows[code] {
			row = append(row, v)
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}

func hasSheet(sheets []Sheet, name string) bool {
	for _, s := range sheets {
		if s.Name == name {
			return true
		}
	}
	return false
}
