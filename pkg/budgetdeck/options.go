// Package budgetdeck builds the budget-vs-actual slide report.
package budgetdeck

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/viper"
	"github.com/ukaji3/budgetdeck-go/pkg/budgetdeck/chart"
	"github.com/ukaji3/budgetdeck-go/pkg/budgetdeck/slides"
)

// DefaultConfigFile is read from the working directory when present.
const DefaultConfigFile = "budgetdeck.yaml"

// Metric pairs the budget and actual sheets of one metric kind.
type Metric struct {
	// Key identifies the metric in logs.
	Key         string `mapstructure:"key"`
	BudgetSheet string `mapstructure:"budget_sheet"`
	ActualSheet string `mapstructure:"actual_sheet"`
	// Title names the metric on window and entity slides.
	Title string `mapstructure:"title"`
	// TotalTitle names the metric on the overall totals slide.
	TotalTitle string `mapstructure:"total_title"`
	// CompositionTitle, when set, adds a stacked composition slide of the
	// actual sheet.
	CompositionTitle string `mapstructure:"composition_title"`
	// Digits is the decimal precision of the budget and actual rows.
	Digits int `mapstructure:"digits"`
}

// Labels are the fixed words used in titles and grids.
type Labels struct {
	Overall     string           `mapstructure:"overall"`
	Total       string           `mapstructure:"total"`
	// NotesSuffix follows the entity code directly in note slide titles.
	NotesSuffix string           `mapstructure:"notes_suffix"`
	Rows        slides.RowLabels `mapstructure:"rows"`
}

// LayoutInches is the slide geometry in inches.
type LayoutInches struct {
	SlideWidth  float64 `mapstructure:"slide_width"`
	SlideHeight float64 `mapstructure:"slide_height"`
	Margin      float64 `mapstructure:"margin"`
	TitleBand   float64 `mapstructure:"title_band"`
	TableHeight float64 `mapstructure:"table_height"`
}

// EMU converts the geometry to a slide layout.
func (l LayoutInches) EMU() slides.Layout {
	return slides.Layout{
		SlideWidth:  slides.Inches(l.SlideWidth),
		SlideHeight: slides.Inches(l.SlideHeight),
		Margin:      slides.Inches(l.Margin),
		TitleBand:   slides.Inches(l.TitleBand),
		TableHeight: slides.Inches(l.TableHeight),
	}
}

// ChartSizes are the image sizes of each chart kind, in inches.
type ChartSizes struct {
	Total       chart.Size `mapstructure:"total"`
	Composition chart.Size `mapstructure:"composition"`
	Window      chart.Size `mapstructure:"window"`
	Entity      chart.Size `mapstructure:"entity"`
}

// Options configures a report run.
type Options struct {
	Workbook    string   `mapstructure:"workbook"`
	IndexColumn string   `mapstructure:"index_column"`
	Metrics     []Metric `mapstructure:"metrics"`
	// WindowStart and WindowEnd bound the inclusive period window.
	WindowStart string `mapstructure:"window_start"`
	WindowEnd   string `mapstructure:"window_end"`
	// Entities get their own slides, in this order.
	Entities []string `mapstructure:"entities"`

	NotesDir      string `mapstructure:"notes_dir"`
	OutputDir     string `mapstructure:"output_dir"`
	Prefix        string `mapstructure:"prefix"`
	CoverTitle    string `mapstructure:"cover_title"`
	CoverSubtitle string `mapstructure:"cover_subtitle"`
	Creator       string `mapstructure:"creator"`

	Labels Labels       `mapstructure:"labels"`
	Layout LayoutInches `mapstructure:"layout"`
	Style  slides.Style `mapstructure:"style"`
	Charts ChartSizes   `mapstructure:"charts"`
	// FontFile is an optional TTF/OTF face for chart text.
	FontFile string `mapstructure:"font_file"`
	// ImagePath is the temporary chart image, removed after the run.
	ImagePath string `mapstructure:"image_path"`
}

// DefaultOptions returns the built-in report configuration.
func DefaultOptions() Options {
	return Options{
		Workbook:    "./budget.xlsx",
		IndexColumn: "Product",
		Metrics: []Metric{
			{
				Key:         "quantity",
				BudgetSheet: "Budget Quantity",
				ActualSheet: "Sales Quantity",
				Title:       "Sales quantity",
				TotalTitle:  "Total sales quantity",
				Digits:      0,
			},
			{
				Key:              "revenue",
				BudgetSheet:      "Budget Revenue",
				ActualSheet:      "Sales Revenue",
				Title:            "Sales revenue",
				TotalTitle:       "Total sales revenue",
				CompositionTitle: "Revenue composition",
				Digits:           0,
			},
			{
				Key:              "profit",
				BudgetSheet:      "Budget Profit",
				ActualSheet:      "Gross Profit",
				Title:            "Gross profit",
				TotalTitle:       "Total gross profit",
				CompositionTitle: "Gross profit composition",
				Digits:           1,
			},
		},
		WindowStart:   "Jan",
		WindowEnd:     "Feb",
		Entities:      []string{"7022", "7323", "6090", "5314", "5312", "3112"},
		NotesDir:      "./note",
		OutputDir:     ".",
		Prefix:        "product_line_report",
		CoverTitle:    "Product Line Report",
		CoverSubtitle: "Budget vs Actual",
		Creator:       "budgetdeck",
		Labels: Labels{
			Overall:     "Overall",
			Total:       "Total",
			NotesSuffix: " notes",
			Rows: slides.RowLabels{
				Budget: "Budget",
				Actual: "Actual",
				Ratio:  "Completion",
			},
		},
		Layout: LayoutInches{
			SlideWidth:  10,
			SlideHeight: 5.625,
			Margin:      0.5,
			TitleBand:   0.5,
			TableHeight: 1,
		},
		Style: slides.DefaultStyle(),
		Charts: ChartSizes{
			Total:       chart.Size{Width: 10, Height: 5},
			Composition: chart.Size{Width: 10, Height: 7},
			Window:      chart.Size{Width: 10, Height: 4.5},
			Entity:      chart.Size{Width: 10, Height: 5},
		},
		ImagePath: "tmp.png",
	}
}

// Sheets lists every sheet the metrics read, budget before actual.
func (o Options) Sheets() []string {
	sheets := make([]string, 0, 2*len(o.Metrics))
	for _, m := range o.Metrics {
		sheets = append(sheets, m.BudgetSheet, m.ActualSheet)
	}
	return sheets
}

// Validate checks the options a run cannot start without.
func (o Options) Validate() error {
	if o.Workbook == "" {
		return errors.New("workbook path is empty")
	}
	if o.IndexColumn == "" {
		return errors.New("index column is empty")
	}
	if len(o.Metrics) == 0 {
		return errors.New("no metrics configured")
	}
	for i, m := range o.Metrics {
		if m.BudgetSheet == "" || m.ActualSheet == "" {
			return fmt.Errorf("metric %d (%s): budget and actual sheets are required", i, m.Key)
		}
		if m.Digits < 0 {
			return fmt.Errorf("metric %d (%s): negative digits", i, m.Key)
		}
	}
	if o.ImagePath == "" {
		return errors.New("image path is empty")
	}
	for name, s := range map[string]chart.Size{
		"total":       o.Charts.Total,
		"composition": o.Charts.Composition,
		"window":      o.Charts.Window,
		"entity":      o.Charts.Entity,
	} {
		if !s.Valid() {
			return fmt.Errorf("chart size %s: %vx%v", name, s.Width, s.Height)
		}
	}
	return nil
}

// LoadOptions reads a YAML, JSON or TOML file over the defaults. Keys absent
// from the file keep their default value.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return opts, fmt.Errorf("failed to read config file: %w", err)
	}
	// lists in the file replace the defaults instead of merging element-wise
	if v.IsSet("metrics") {
		opts.Metrics = nil
	}
	if v.IsSet("entities") {
		opts.Entities = nil
	}
	if err := v.Unmarshal(&opts); err != nil {
		return opts, fmt.Errorf("failed to parse config: %w", err)
	}
	return opts, opts.Validate()
}

// LoadOptionsIfExists is LoadOptions for an optional file: a missing file
// yields the defaults.
func LoadOptionsIfExists(path string) (Options, bool, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return DefaultOptions(), false, nil
	}
	opts, err := LoadOptions(path)
	return opts, true, err
}
