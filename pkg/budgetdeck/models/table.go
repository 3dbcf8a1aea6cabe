// Package models defines data structures for budget-vs-actual reporting.
package models

// Table is one metric sheet: rows are entity codes, columns are period labels.
type Table struct {
	// Name is the sheet name the table was loaded from.
	Name string `json:"name"`
	// Index holds entity codes in sheet order.
	Index []string `json:"index"`
	// Columns holds period labels in sheet order.
	Columns []string `json:"columns"`
	// Values is row-major: Values[i][j] is entity Index[i] in period Columns[j].
	Values [][]float64 `json:"values"`

	rows map[string]int
	cols map[string]int
}

// NewTable builds a Table and its lookup indexes. values must be len(index) rows
// of len(columns) cells each.
func NewTable(name string, index, columns []string, values [][]float64) *Table {
	t := &Table{
		Name:    name,
		Index:   index,
		Columns: columns,
		Values:  values,
		rows:    make(map[string]int, len(index)),
		cols:    make(map[string]int, len(columns)),
	}
	for i, code := range index {
		t.rows[code] = i
	}
	for j, label := range columns {
		t.cols[label] = j
	}
	return t
}

// Row returns the values of one entity.
func (t *Table) Row(code string) ([]float64, bool) {
	i, ok := t.rows[code]
	if !ok {
		return nil, false
	}
	return t.Values[i], true
}

// ColumnIndex returns the position of a period label.
func (t *Table) ColumnIndex(label string) (int, bool) {
	j, ok := t.cols[label]
	return j, ok
}

// Empty reports whether the table has no rows or no columns.
func (t *Table) Empty() bool {
	return t == nil || len(t.Index) == 0 || len(t.Columns) == 0
}

// SameShape reports whether t and o share row and column indexes, in order.
func (t *Table) SameShape(o *Table) bool {
	return equalLabels(t.Index, o.Index) && equalLabels(t.Columns, o.Columns)
}

func equalLabels(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
