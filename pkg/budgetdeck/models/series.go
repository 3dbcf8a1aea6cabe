package models

// Series is a labelled vector produced by an aggregation.
type Series struct {
	// Labels are period labels or entity codes, depending on the aggregation.
	Labels []string `json:"labels"`
	// Values has one entry per label.
	Values []float64 `json:"values"`
}

// Len returns the number of points.
func (s Series) Len() int {
	return len(s.Values)
}

// Sum adds up every value.
func (s Series) Sum() float64 {
	var total float64
	for _, v := range s.Values {
		total += v
	}
	return total
}

// SameShape reports whether both series carry the same labels in the same order.
func (s Series) SameShape(o Series) bool {
	return len(s.Values) == len(o.Values) && equalLabels(s.Labels, o.Labels)
}
