package models

// Frame compares budgeted and actual figures column by column.
// Ratio[i] is Actual[i] / Budgeted[i].
type Frame struct {
	// Labels names each column (periods or entities).
	Labels []string `json:"labels"`
	// Budgeted is the plan row.
	Budgeted []float64 `json:"budgeted"`
	// Actual is the realised row.
	Actual []float64 `json:"actual"`
	// Ratio is the completion ratio row.
	Ratio []float64 `json:"ratio"`
}

// Len returns the number of columns.
func (f Frame) Len() int {
	return len(f.Labels)
}

// WithTotals returns a copy of f with a trailing totals column. The totals
// ratio is recomputed from the summed rows.
func (f Frame) WithTotals(label string) Frame {
	out := Frame{
		Labels:   append(append([]string(nil), f.Labels...), label),
		Budgeted: append([]float64(nil), f.Budgeted...),
		Actual:   append([]float64(nil), f.Actual...),
		Ratio:    append([]float64(nil), f.Ratio...),
	}

	var budgeted, actual float64
	for i := range f.Labels {
		budgeted += f.Budgeted[i]
		actual += f.Actual[i]
	}
	out.Budgeted = append(out.Budgeted, budgeted)
	out.Actual = append(out.Actual, actual)
	out.Ratio = append(out.Ratio, actual/budgeted)
	return out
}
