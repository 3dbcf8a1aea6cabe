package slides

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/budgetdeck-go/pkg/budgetdeck/models"
)

// RowLabels names the three rows of a comparison grid.
type RowLabels struct {
	Budget string `mapstructure:"budget"`
	Actual string `mapstructure:"actual"`
	Ratio  string `mapstructure:"ratio"`
}

// Matrix is a labelled block of numbers headed for a grid.
type Matrix struct {
	Columns []string
	Rows    []string
	Values  [][]float64
}

// FrameMatrix lays a comparison frame out as budgeted, actual and ratio rows.
func FrameMatrix(f models.Frame, labels RowLabels) Matrix {
	return Matrix{
		Columns: f.Labels,
		Rows:    []string{labels.Budget, labels.Actual, labels.Ratio},
		Values:  [][]float64{f.Budgeted, f.Actual, f.Ratio},
	}
}

// FormatGrid renders m as cells. The first row and column are headers. Every
// value uses digits decimals except the last row, which is always a whole
// percentage.
func FormatGrid(m Matrix, digits int) [][]Cell {
	header := make([]Cell, 0, len(m.Columns)+1)
	header = append(header, Cell{Header: true})
	for _, c := range m.Columns {
		header = append(header, Cell{Text: c, Header: true})
	}

	out := [][]Cell{header}
	for i, label := range m.Rows {
		row := make([]Cell, 0, len(m.Columns)+1)
		row = append(row, Cell{Text: label, Header: true})
		last := i == len(m.Rows)-1
		for j := range m.Columns {
			var v float64
			if i < len(m.Values) && j < len(m.Values[i]) {
				v = m.Values[i][j]
			}
			if last {
				row = append(row, Cell{Text: FormatPercent(v)})
			} else {
				row = append(row, Cell{Text: FormatNumber(v, digits)})
			}
		}
		out = append(out, row)
	}
	return out
}

// FormatNumber prints v with a fixed number of decimals.
func FormatNumber(v float64, digits int) string {
	if digits < 0 {
		digits = 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', digits, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(int32(digits))
}

// FormatPercent prints a ratio as a whole percentage, e.g. 1.0 -> "100%".
func FormatPercent(ratio float64) string {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return strconv.FormatFloat(ratio, 'f', 0, 64) + "%"
	}
	return decimal.NewFromFloat(ratio).Mul(decimal.NewFromInt(100)).StringFixed(0) + "%"
}
