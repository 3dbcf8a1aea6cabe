// Package slides composes report slides into an in-memory deck.
package slides

// Kind identifies one of the fixed slide layouts.
type Kind string

const (
	// KindCover is the centered title and subtitle slide.
	KindCover Kind = "cover"
	// KindChartTable is a chart image above a summary grid.
	KindChartTable Kind = "chart_table"
	// KindChart is a chart image filling the content area.
	KindChart Kind = "chart"
	// KindNote is free-form note text, optionally beside a chart image.
	KindNote Kind = "note"
)

// Align is horizontal text alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Text is one text box. Newlines in Text start new paragraphs.
type Text struct {
	Box
	Text        string
	Size        int
	Bold        bool
	Align       Align
	LineSpacing float64 // multiple of single spacing; 0 means default
}

// Image is a picture placed on the slide.
type Image struct {
	Box
	Data     []byte
	MimeType string
}

// Cell is one grid cell.
type Cell struct {
	Text   string
	Header bool
}

// Grid is a table of cells laid out evenly inside its box.
type Grid struct {
	Box
	Rows     [][]Cell
	FontSize int
}

// Cols returns the number of columns of the widest row.
func (g *Grid) Cols() int {
	n := 0
	for _, row := range g.Rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// CellBox returns the rectangle of cell (r, c).
func (g *Grid) CellBox(r, c int) Box {
	cols := int64(g.Cols())
	rows := int64(len(g.Rows))
	if cols == 0 || rows == 0 {
		return Box{}
	}
	w := g.W / cols
	h := g.H / rows
	return Box{X: g.X + int64(c)*w, Y: g.Y + int64(r)*h, W: w, H: h}
}

// Slide is one composed slide.
type Slide struct {
	Kind   Kind
	Title  string
	Texts  []Text
	Images []Image
	Grid   *Grid
}

// Style holds the font sizes used by every slide kind, in points.
type Style struct {
	CoverTitle    int `mapstructure:"cover_title"`
	CoverSubtitle int `mapstructure:"cover_subtitle"`
	Title         int `mapstructure:"title"`
	Note          int `mapstructure:"note"`
	Cell          int `mapstructure:"cell"`
}

// DefaultStyle returns the standard report font sizes.
func DefaultStyle() Style {
	return Style{
		CoverTitle:    36,
		CoverSubtitle: 26,
		Title:         26,
		Note:          18,
		Cell:          10,
	}
}
