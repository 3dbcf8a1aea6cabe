package slides

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/budgetdeck-go/pkg/budgetdeck/models"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name   string
		v      float64
		digits int
		want   string
	}{
		{"integer", 30, 0, "30"},
		{"one decimal", 12.34, 1, "12.3"},
		{"half away from zero", 2.5, 0, "3"},
		{"negative half", -2.5, 0, "-3"},
		{"pads decimals", 7, 2, "7.00"},
		{"negative digits clamp", 7.6, -1, "8"},
		{"inf", math.Inf(1), 0, "+Inf"},
		{"nan", math.NaN(), 1, "NaN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.v, tt.digits))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "100%", FormatPercent(1))
	assert.Equal(t, "123%", FormatPercent(1.2345))
	assert.Equal(t, "0%", FormatPercent(0))
	assert.Equal(t, "+Inf%", FormatPercent(math.Inf(1)))
	assert.Equal(t, "NaN%", FormatPercent(math.NaN()))
}

func TestFormatGrid(t *testing.T) {
	frame := models.Frame{
		Labels:   []string{"A", "B"},
		Budgeted: []float64{10, 20.25},
		Actual:   []float64{5, 25},
		Ratio:    []float64{0.5, 1.2345},
	}
	labels := RowLabels{Budget: "Budget", Actual: "Actual", Ratio: "Rate"}

	for _, digits := range []int{0, 1} {
		grid := FormatGrid(FrameMatrix(frame, labels), digits)
		require.Len(t, grid, 4)

		header := grid[0]
		require.Len(t, header, 3)
		assert.True(t, header[0].Header)
		assert.Empty(t, header[0].Text)
		assert.Equal(t, "A", header[1].Text)
		assert.Equal(t, "B", header[2].Text)

		for _, row := range grid[1:] {
			assert.True(t, row[0].Header)
			assert.False(t, row[1].Header)
		}
		assert.Equal(t, "Rate", grid[3][0].Text)
		assert.Equal(t, "50%", grid[3][1].Text)
		assert.Equal(t, "123%", grid[3][2].Text)
	}

	grid := FormatGrid(FrameMatrix(frame, labels), 1)
	assert.Equal(t, "10.0", grid[1][1].Text)
	assert.Equal(t, "20.3", grid[1][2].Text)
	assert.Equal(t, "25.0", grid[2][2].Text)

	grid = FormatGrid(FrameMatrix(frame, labels), 0)
	assert.Equal(t, "20", grid[1][2].Text)
}
