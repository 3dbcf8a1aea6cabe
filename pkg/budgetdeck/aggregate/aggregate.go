// Package aggregate reduces metric tables into series and comparison frames.
package aggregate

import (
	"fmt"

	"github.com/ukaji3/budgetdeck-go/pkg/budgetdeck/models"
)

// Total sums every entity, period by period.
func Total(t *models.Table) models.Series {
	values := make([]float64, len(t.Columns))
	for _, row := range t.Values {
		for j, v := range row {
			values[j] += v
		}
	}
	return models.Series{
		Labels: append([]string(nil), t.Columns...),
		Values: values,
	}
}

// WindowTotal sums each entity over the inclusive period range [start, end].
func WindowTotal(t *models.Table, start, end string) (models.Series, error) {
	from, ok := t.ColumnIndex(start)
	if !ok {
		return models.Series{}, models.NewRangeError(t.Name, start, end, fmt.Errorf("%w: %q", models.ErrUnknownPeriod, start))
	}
	to, ok := t.ColumnIndex(end)
	if !ok {
		return models.Series{}, models.NewRangeError(t.Name, start, end, fmt.Errorf("%w: %q", models.ErrUnknownPeriod, end))
	}
	if from > to {
		return models.Series{}, models.NewRangeError(t.Name, start, end, models.ErrInvertedRange)
	}

	values := make([]float64, len(t.Index))
	for i, row := range t.Values {
		for j := from; j <= to; j++ {
			values[i] += row[j]
		}
	}
	return models.Series{
		Labels: append([]string(nil), t.Index...),
		Values: values,
	}, nil
}

// EntitySlice returns one entity's values per period.
func EntitySlice(t *models.Table, code string) (models.Series, error) {
	row, ok := t.Row(code)
	if !ok {
		return models.Series{}, models.NewNotFoundError(t.Name, code)
	}
	return models.Series{
		Labels: append([]string(nil), t.Columns...),
		Values: append([]float64(nil), row...),
	}, nil
}

// CompletionRatio divides actual by budgeted element by element. A zero
// budget is not guarded: the result follows IEEE division (±Inf or NaN).
func CompletionRatio(actual, budgeted models.Series) (models.Series, error) {
	if !actual.SameShape(budgeted) {
		return models.Series{}, fmt.Errorf("%w: %d actual vs %d budgeted", models.ErrShapeMismatch, actual.Len(), budgeted.Len())
	}
	values := make([]float64, actual.Len())
	for i := range values {
		values[i] = actual.Values[i] / budgeted.Values[i]
	}
	return models.Series{
		Labels: append([]string(nil), actual.Labels...),
		Values: values,
	}, nil
}

// NewFrame builds a comparison frame from matching budgeted and actual series.
func NewFrame(budgeted, actual models.Series) (models.Frame, error) {
	ratio, err := CompletionRatio(actual, budgeted)
	if err != nil {
		return models.Frame{}, err
	}
	return models.Frame{
		Labels:   ratio.Labels,
		Budgeted: append([]float64(nil), budgeted.Values...),
		Actual:   append([]float64(nil), actual.Values...),
		Ratio:    ratio.Values,
	}, nil
}
