package workbook

import (
	"fmt"
	"path/filepath"

	"github.com/ukaji3/budgetdeck-go/pkg/budgetdeck/models"
	"github.com/xuri/excelize/v2"
)

// Workbook is an open xlsx file.
type Workbook struct {
	f    *excelize.File
	name string
}

// Open opens the workbook at path.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	return &Workbook{f: f, name: filepath.Base(path)}, nil
}

// Name returns the workbook file name without its directory.
func (w *Workbook) Name() string {
	return w.name
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// LoadTable reads one metric sheet. The first non-empty row is the header;
// the header cell equal to indexColumn marks the entity column and every
// other non-empty header cell is a period label.
func (w *Workbook) LoadTable(sheet, indexColumn string) (*models.Table, error) {
	idx, err := w.f.GetSheetIndex(sheet)
	if err != nil {
		return nil, models.NewLoadError(sheet, err)
	}
	if idx < 0 {
		return nil, models.NewLoadError(sheet, models.ErrSheetNotFound)
	}

	rows, err := w.f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, models.NewLoadError(sheet, err)
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil, models.NewLoadError(sheet, models.ErrIndexColumnMissing)
	}

	header := rows[minRow]
	keyCol := -1
	var periodCols []int
	var columns []string
	for col := minCol; col <= maxCol; col++ {
		label := cellAt(header, col)
		switch {
		case label == "":
			continue
		case label == indexColumn && keyCol < 0:
			keyCol = col
		default:
			periodCols = append(periodCols, col)
			columns = append(columns, label)
		}
	}
	if keyCol < 0 {
		return nil, models.NewLoadError(sheet, fmt.Errorf("%w: %q", models.ErrIndexColumnMissing, indexColumn))
	}

	var index []string
	var values [][]float64
	seen := make(map[string]bool)
	for rowIdx := minRow + 1; rowIdx <= maxRow; rowIdx++ {
		row := rows[rowIdx]
		code := cellAt(row, keyCol)
		if code == "" {
			continue
		}
		if seen[code] {
			return nil, models.NewLoadError(sheet, fmt.Errorf("%w: %q", models.ErrDuplicateEntity, code))
		}
		seen[code] = true

		vals := make([]float64, len(periodCols))
		for i, col := range periodCols {
			v, ok := parseNumber(cellAt(row, col))
			if !ok {
				cellName, _ := excelize.CoordinatesToCellName(col+1, rowIdx+1)
				return nil, models.NewLoadError(sheet, fmt.Errorf("%w at %s: %q", models.ErrInvalidCell, cellName, cellAt(row, col)))
			}
			vals[i] = v
		}
		index = append(index, code)
		values = append(values, vals)
	}

	return models.NewTable(sheet, index, columns, values), nil
}

// LoadMetrics opens the workbook at path once and loads every sheet. All
// sheets must share the same entity and period indexes.
func LoadMetrics(path, indexColumn string, sheets ...string) (*models.Metrics, error) {
	w, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer w.Close()

	m := &models.Metrics{
		BookName: w.Name(),
		Tables:   make(map[string]*models.Table, len(sheets)),
	}

	var first *models.Table
	for _, sheet := range sheets {
		if _, ok := m.Tables[sheet]; ok {
			continue
		}
		t, err := w.LoadTable(sheet, indexColumn)
		if err != nil {
			return nil, err
		}
		if first == nil {
			first = t
			m.Index = t.Index
			m.Columns = t.Columns
		} else if !first.SameShape(t) {
			return nil, models.NewLoadError(sheet, fmt.Errorf("%w: compared with %q", models.ErrIndexMismatch, first.Name))
		}
		m.Tables[sheet] = t
	}

	return m, nil
}
