package budgetdeck

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/ukaji3/budgetdeck-go/pkg/budgetdeck/aggregate"
	"github.com/ukaji3/budgetdeck-go/pkg/budgetdeck/chart"
	"github.com/ukaji3/budgetdeck-go/pkg/budgetdeck/models"
	"github.com/ukaji3/budgetdeck-go/pkg/budgetdeck/pptx"
	"github.com/ukaji3/budgetdeck-go/pkg/budgetdeck/slides"
	"github.com/ukaji3/budgetdeck-go/pkg/budgetdeck/workbook"
)

// OutputName returns the report file name for the given day: <prefix>_<YYMMDD>.pptx.
func OutputName(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%s.pptx", prefix, now.Format("060102"))
}

// Report runs the fixed slide script over one workbook.
type Report struct {
	opts     Options
	renderer *chart.Renderer
	metrics  *models.Metrics

	// Now stamps the output file name.
	Now func() time.Time
}

// NewReport creates a report for opts.
func NewReport(opts Options) *Report {
	return &Report{
		opts:     opts,
		renderer: chart.NewRenderer(opts.ImagePath, opts.Labels.Rows.Budget, opts.Labels.Rows.Actual),
		Now:      time.Now,
	}
}

// Run builds the deck, writes it and removes the temporary chart image. It
// returns the path of the written file.
func Run(ctx context.Context, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", fmt.Errorf("invalid options: %w", err)
	}
	r := NewReport(opts)
	defer r.Close(ctx)

	deck, err := r.Build(ctx)
	if err != nil {
		return "", err
	}
	return r.Save(ctx, deck)
}

// Close removes the temporary chart image.
func (r *Report) Close(ctx context.Context) {
	if err := r.renderer.Remove(); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("file", r.renderer.Path()).Msg("Failed to remove chart image")
	}
}

// Build loads the workbook and composes every slide in order: cover, overall
// totals, compositions, the period window, then each entity.
func (r *Report) Build(ctx context.Context) (*slides.Deck, error) {
	log := zerolog.Ctx(ctx)

	if r.opts.FontFile != "" {
		if err := chart.LoadFont(r.opts.FontFile); err != nil {
			return nil, err
		}
	}

	metrics, err := workbook.LoadMetrics(r.opts.Workbook, r.opts.IndexColumn, r.opts.Sheets()...)
	if err != nil {
		return nil, err
	}
	r.metrics = metrics
	log.Info().
		Str("workbook", metrics.BookName).
		Int("entities", len(metrics.Index)).
		Int("periods", len(metrics.Columns)).
		Msg("Loaded workbook")

	deck := slides.NewDeck(r.opts.Layout.EMU(), r.opts.Style)
	deck.AddCover(r.opts.CoverTitle, r.opts.CoverSubtitle)
	log.Info().Str("slide", "cover").Msg("Slide")

	steps := []func(context.Context, *slides.Deck) error{
		r.totals,
		r.compositions,
		r.window,
	}
	for _, step := range steps {
		if err := step(ctx, deck); err != nil {
			return nil, err
		}
	}
	for _, code := range r.opts.Entities {
		if err := r.entity(ctx, deck, code); err != nil {
			return nil, err
		}
	}
	return deck, nil
}

// Save writes deck to the output directory and returns the file path.
func (r *Report) Save(ctx context.Context, deck *slides.Deck) (string, error) {
	path := filepath.Join(r.opts.OutputDir, OutputName(r.opts.Prefix, r.Now()))
	props := pptx.Properties{Title: r.opts.CoverTitle, Creator: r.opts.Creator}
	if err := pptx.Write(path, deck, props); err != nil {
		return "", err
	}
	zerolog.Ctx(ctx).Info().Str("file", path).Int("slides", deck.Len()).Msg("Saved report")
	return path, nil
}

func (r *Report) totals(ctx context.Context, deck *slides.Deck) error {
	for _, m := range r.opts.Metrics {
		budget, actual, err := r.tables(m)
		if err != nil {
			return err
		}
		frame, err := aggregate.NewFrame(aggregate.Total(budget), aggregate.Total(actual))
		if err != nil {
			return err
		}
		title := r.opts.Labels.Overall + "/" + m.TotalTitle
		if err := r.chartTable(ctx, deck, title, frame, r.opts.Charts.Total, m.Digits); err != nil {
			return err
		}
	}
	return nil
}

func (r *Report) compositions(ctx context.Context, deck *slides.Deck) error {
	for _, m := range r.opts.Metrics {
		if m.CompositionTitle == "" {
			continue
		}
		_, actual, err := r.tables(m)
		if err != nil {
			return err
		}
		if err := r.renderer.Stacked(actual, r.opts.Charts.Composition); err != nil {
			return err
		}
		title := r.opts.Labels.Overall + "/" + m.CompositionTitle
		if _, err := deck.AddChart(title, r.renderer.Path()); err != nil {
			return err
		}
		zerolog.Ctx(ctx).Info().Str("slide", title).Msg("Slide")
	}
	return nil
}

func (r *Report) window(ctx context.Context, deck *slides.Deck) error {
	start, end := r.opts.WindowStart, r.opts.WindowEnd
	for _, m := range r.opts.Metrics {
		budget, actual, err := r.tables(m)
		if err != nil {
			return err
		}
		b, err := aggregate.WindowTotal(budget, start, end)
		if err != nil {
			return err
		}
		a, err := aggregate.WindowTotal(actual, start, end)
		if err != nil {
			return err
		}
		frame, err := aggregate.NewFrame(b, a)
		if err != nil {
			return err
		}
		title := fmt.Sprintf("%s-%s/%s", start, end, m.Title)
		if err := r.chartTable(ctx, deck, title, frame, r.opts.Charts.Window, m.Digits); err != nil {
			return err
		}
	}
	return nil
}

// entity emits one slide per metric for code, then its note slide if a
// note file exists. Every frame is computed before the first slide so an
// unknown code adds nothing to the deck.
func (r *Report) entity(ctx context.Context, deck *slides.Deck, code string) error {
	frames := make([]models.Frame, len(r.opts.Metrics))
	for i, m := range r.opts.Metrics {
		budget, actual, err := r.tables(m)
		if err != nil {
			return err
		}
		b, err := aggregate.EntitySlice(budget, code)
		if err != nil {
			return err
		}
		a, err := aggregate.EntitySlice(actual, code)
		if err != nil {
			return err
		}
		if frames[i], err = aggregate.NewFrame(b, a); err != nil {
			return err
		}
	}

	for i, m := range r.opts.Metrics {
		title := code + "/" + m.Title
		if err := r.chartTable(ctx, deck, title, frames[i], r.opts.Charts.Entity, m.Digits); err != nil {
			return err
		}
	}

	title := code + r.opts.Labels.NotesSuffix
	_, ok, err := deck.AddNote(title, r.opts.NotesDir, code, r.renderer.Path())
	if err != nil {
		return err
	}
	if !ok {
		zerolog.Ctx(ctx).Debug().Str("entity", code).Str("dir", r.opts.NotesDir).Msg("No note file")
		return nil
	}
	zerolog.Ctx(ctx).Info().Str("slide", title).Msg("Slide")
	return nil
}

// chartTable draws frame and adds it with a totals column to the deck.
func (r *Report) chartTable(ctx context.Context, deck *slides.Deck, title string, frame models.Frame, size chart.Size, digits int) error {
	log := zerolog.Ctx(ctx)

	if err := r.renderer.Grouped(frame, size); err != nil {
		return err
	}
	table := frame.WithTotals(r.opts.Labels.Total)
	for i, ratio := range table.Ratio {
		if math.IsInf(ratio, 0) || math.IsNaN(ratio) {
			log.Warn().
				Str("slide", title).
				Str("column", table.Labels[i]).
				Float64("budgeted", table.Budgeted[i]).
				Msg("Completion ratio is not finite")
		}
	}
	if _, err := deck.AddChartTable(title, r.renderer.Path(), slides.FrameMatrix(table, r.opts.Labels.Rows), digits); err != nil {
		return err
	}
	log.Info().Str("slide", title).Msg("Slide")
	return nil
}

func (r *Report) tables(m Metric) (budget, actual *models.Table, err error) {
	budget, ok := r.metrics.Table(m.BudgetSheet)
	if !ok {
		return nil, nil, models.NewLoadError(m.BudgetSheet, models.ErrSheetNotFound)
	}
	actual, ok = r.metrics.Table(m.ActualSheet)
	if !ok {
		return nil, nil, models.NewLoadError(m.ActualSheet, models.ErrSheetNotFound)
	}
	return budget, actual, nil
}
