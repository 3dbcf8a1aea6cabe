// Package workbook loads metric tables from xlsx workbooks.
package workbook

import (
	"math"
	"strconv"
	"strings"
)

// parseNumber parses a raw cell value. Empty cells count as zero. Text that
// spells NaN or infinity is not a number.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return float64(i), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// cellAt returns the trimmed cell at col, or "" past the end of a ragged row.
func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
