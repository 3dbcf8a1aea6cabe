// Package chart draws comparison and composition bar charts to a PNG file.
package chart

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/ukaji3/budgetdeck-go/pkg/budgetdeck/models"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Size is an image size in inches.
type Size struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// Renderer writes every chart to the same file, replacing the previous one.
type Renderer struct {
	path        string
	budgetLabel string
	actualLabel string
}

// NewRenderer creates a Renderer writing to path. The labels name the two
// series of a grouped chart in its legend.
func NewRenderer(path, budgetLabel, actualLabel string) *Renderer {
	return &Renderer{
		path:        path,
		budgetLabel: budgetLabel,
		actualLabel: actualLabel,
	}
}

// Path returns the image file the renderer writes.
func (r *Renderer) Path() string {
	return r.path
}

// Remove deletes the image file. A missing file is not an error.
func (r *Renderer) Remove() error {
	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Grouped draws budgeted and actual bars side by side for every column of f.
func (r *Renderer) Grouped(f models.Frame, size Size) error {
	const kind = "grouped"
	if f.Len() == 0 {
		return models.NewRenderError(kind, models.ErrEmptyFrame)
	}
	if len(f.Budgeted) != f.Len() || len(f.Actual) != f.Len() {
		return models.NewRenderError(kind, fmt.Errorf("%w: %d labels, %d budgeted, %d actual",
			models.ErrShapeMismatch, f.Len(), len(f.Budgeted), len(f.Actual)))
	}
	if !size.Valid() {
		return models.NewRenderError(kind, fmt.Errorf("invalid size %vx%v", size.Width, size.Height))
	}

	p := plot.New()
	w := barWidth(size, f.Len(), 0.25)

	budget, err := plotter.NewBarChart(plotter.Values(f.Budgeted), w)
	if err != nil {
		return models.NewRenderError(kind, err)
	}
	budget.Color = plotutil.Color(0)
	budget.LineStyle.Width = 0
	budget.Offset = -w / 2

	actual, err := plotter.NewBarChart(plotter.Values(f.Actual), w)
	if err != nil {
		return models.NewRenderError(kind, err)
	}
	actual.Color = plotutil.Color(1)
	actual.LineStyle.Width = 0
	actual.Offset = w / 2

	p.Add(budget, actual)
	p.Legend.Add(r.budgetLabel, budget)
	p.Legend.Add(r.actualLabel, actual)
	p.Legend.Top = true
	p.NominalX(f.Labels...)

	return r.save(kind, p, size)
}

// Stacked draws one bar per period with one segment per entity of t.
func (r *Renderer) Stacked(t *models.Table, size Size) error {
	const kind = "stacked"
	if t.Empty() {
		return models.NewRenderError(kind, models.ErrEmptyFrame)
	}
	if len(t.Values) != len(t.Index) {
		return models.NewRenderError(kind, fmt.Errorf("%w: %d rows for %d entities",
			models.ErrShapeMismatch, len(t.Values), len(t.Index)))
	}
	if !size.Valid() {
		return models.NewRenderError(kind, fmt.Errorf("invalid size %vx%v", size.Width, size.Height))
	}

	p := plot.New()
	w := barWidth(size, len(t.Columns), 0.5)

	var below *plotter.BarChart
	for i, code := range t.Index {
		if len(t.Values[i]) != len(t.Columns) {
			return models.NewRenderError(kind, fmt.Errorf("%w: entity %q", models.ErrShapeMismatch, code))
		}
		bars, err := plotter.NewBarChart(plotter.Values(t.Values[i]), w)
		if err != nil {
			return models.NewRenderError(kind, fmt.Errorf("entity %q: %w", code, err))
		}
		bars.Color = plotutil.Color(i)
		bars.LineStyle.Width = 0
		if below != nil {
			bars.StackOn(below)
		}
		p.Add(bars)
		p.Legend.Add(code, bars)
		below = bars
	}
	p.Legend.Top = true
	p.NominalX(t.Columns...)

	return r.save(kind, p, size)
}

func (r *Renderer) save(kind string, p *plot.Plot, size Size) error {
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return models.NewRenderError(kind, err)
		}
	}
	if err := p.Save(vg.Length(size.Width)*vg.Inch, vg.Length(size.Height)*vg.Inch, r.path); err != nil {
		return models.NewRenderError(kind, err)
	}
	return nil
}

// barWidth gives each of n categories a slot of the plot width; fill is the
// share of one slot taken by a single bar.
func barWidth(size Size, n int, fill float64) vg.Length {
	slot := size.Width * 0.85 / float64(n)
	return vg.Length(math.Max(slot*fill, 0.01)) * vg.Inch
}
