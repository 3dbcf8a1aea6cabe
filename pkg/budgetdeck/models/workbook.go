package models

// Metrics holds every metric table loaded for one reporting run.
type Metrics struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Index is the entity index shared by all tables.
	Index []string `json:"index"`
	// Columns is the period index shared by all tables.
	Columns []string `json:"columns"`
	// Tables maps sheet name to table.
	Tables map[string]*Table `json:"tables"`
}

// Table returns the table loaded from sheet.
func (m *Metrics) Table(sheet string) (*Table, bool) {
	t, ok := m.Tables[sheet]
	return t, ok
}
