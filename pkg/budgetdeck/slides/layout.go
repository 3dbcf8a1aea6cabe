package slides

// Layout is the fixed geometry shared by every slide, in EMU.
type Layout struct {
	SlideWidth  int64
	SlideHeight int64
	Margin      int64
	TitleBand   int64
	TableHeight int64
}

// DefaultLayout is a 16:9 slide with half-inch margins.
func DefaultLayout() Layout {
	return Layout{
		SlideWidth:  Inches(10),
		SlideHeight: Inches(5.625),
		Margin:      Inches(0.5),
		TitleBand:   Inches(0.5),
		TableHeight: Inches(1),
	}
}

// Box is a rectangle on the slide, in EMU.
type Box struct {
	X, Y, W, H int64
}

// TitleBox is the band under the top margin that holds the slide title.
func (l Layout) TitleBox() Box {
	return Box{X: l.Margin, Y: l.Margin, W: l.ContentWidth(), H: l.TitleBand}
}

// ContentWidth is the slide width minus both margins.
func (l Layout) ContentWidth() int64 {
	return l.SlideWidth - 2*l.Margin
}

// ContentHeight is the slide height minus both margins and the title band.
func (l Layout) ContentHeight() int64 {
	return l.SlideHeight - 2*l.Margin - l.TitleBand
}

// ContentBox is the area below the title band.
func (l Layout) ContentBox() Box {
	return Box{X: l.Margin, Y: l.Margin + l.TitleBand, W: l.ContentWidth(), H: l.ContentHeight()}
}

// ChartBox is the image area of a chart+table slide.
func (l Layout) ChartBox() Box {
	c := l.ContentBox()
	c.H -= l.TableHeight
	return c
}

// TableBox is the grid area of a chart+table slide, directly below the chart.
func (l Layout) TableBox() Box {
	c := l.ChartBox()
	return Box{X: c.X, Y: c.Y + c.H, W: c.W, H: l.TableHeight}
}

// NoteBox is the text area of a note slide, one margin below the title band.
func (l Layout) NoteBox() Box {
	c := l.ContentBox()
	return Box{X: c.X, Y: c.Y + l.Margin, W: c.W, H: c.H - l.Margin}
}

// CoverBox is the whole slide inside the margins.
func (l Layout) CoverBox() Box {
	return Box{X: l.Margin, Y: l.Margin, W: l.ContentWidth(), H: l.SlideHeight - 2*l.Margin}
}
