package slides

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const pngMimeType = "image/png"

// Deck is the presentation being built. Slides are only ever appended.
type Deck struct {
	Layout Layout
	Style  Style
	Slides []Slide
}

// NewDeck creates an empty deck.
func NewDeck(layout Layout, style Style) *Deck {
	return &Deck{Layout: layout, Style: style}
}

// Len returns the number of slides.
func (d *Deck) Len() int {
	return len(d.Slides)
}

// AddCover appends the centered title and subtitle slide.
func (d *Deck) AddCover(title, subtitle string) *Slide {
	cover := d.Layout.CoverBox()
	mid := cover.Y + cover.H/2
	titleH := Inches(1)
	subH := Inches(0.7)
	gap := int64(20 * EMUPerPoint)

	s := Slide{
		Kind:  KindCover,
		Title: title,
		Texts: []Text{
			{
				Box:   Box{X: cover.X, Y: mid - titleH, W: cover.W, H: titleH},
				Text:  title,
				Size:  d.Style.CoverTitle,
				Bold:  true,
				Align: AlignCenter,
			},
			{
				Box:   Box{X: cover.X, Y: mid + gap, W: cover.W, H: subH},
				Text:  subtitle,
				Size:  d.Style.CoverSubtitle,
				Bold:  true,
				Align: AlignCenter,
			},
		},
	}
	return d.add(s)
}

// AddChartTable appends a slide with the chart at imagePath above a grid
// built from m.
func (d *Deck) AddChartTable(title, imagePath string, m Matrix, digits int) (*Slide, error) {
	img, err := d.image(imagePath, d.Layout.ChartBox())
	if err != nil {
		return nil, err
	}
	s := Slide{
		Kind:   KindChartTable,
		Title:  title,
		Texts:  []Text{d.title(title)},
		Images: []Image{img},
		Grid: &Grid{
			Box:      d.Layout.TableBox(),
			Rows:     FormatGrid(m, digits),
			FontSize: d.Style.Cell,
		},
	}
	return d.add(s), nil
}

// AddChart appends a slide whose chart fills the content area.
func (d *Deck) AddChart(title, imagePath string) (*Slide, error) {
	img, err := d.image(imagePath, d.Layout.ContentBox())
	if err != nil {
		return nil, err
	}
	s := Slide{
		Kind:   KindChart,
		Title:  title,
		Texts:  []Text{d.title(title)},
		Images: []Image{img},
	}
	return d.add(s), nil
}

// AddNote appends a note slide for entity if notesDir holds <entity>.txt.
// A missing file is not an error: nothing is added and ok is false. When
// imagePath is set the chart takes the left part of the content area.
func (d *Deck) AddNote(title, notesDir, entity, imagePath string) (s *Slide, ok bool, err error) {
	text, ok, err := ReadNote(notesDir, entity)
	if err != nil || !ok {
		return nil, false, err
	}

	box := d.Layout.NoteBox()
	slide := Slide{
		Kind:  KindNote,
		Title: title,
		Texts: []Text{d.title(title)},
	}
	if imagePath != "" {
		chartW := box.W * 55 / 100
		img, err := d.image(imagePath, Box{X: box.X, Y: d.Layout.ContentBox().Y, W: chartW, H: d.Layout.ContentHeight()})
		if err != nil {
			return nil, false, err
		}
		slide.Images = []Image{img}
		gap := Inches(0.2)
		box.X += chartW + gap
		box.W -= chartW + gap
	}
	slide.Texts = append(slide.Texts, Text{
		Box:         box,
		Text:        text,
		Size:        d.Style.Note,
		Align:       AlignLeft,
		LineSpacing: 2,
	})
	return d.add(slide), true, nil
}

// ReadNote loads <notesDir>/<entity>.txt. ok is false when the file does not exist.
func ReadNote(notesDir, entity string) (text string, ok bool, err error) {
	path := filepath.Join(notesDir, entity+".txt")
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read note %s: %w", path, err)
	}
	text = strings.TrimPrefix(string(data), "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.TrimRight(text, "\n"), true, nil
}

func (d *Deck) add(s Slide) *Slide {
	d.Slides = append(d.Slides, s)
	return &d.Slides[len(d.Slides)-1]
}

func (d *Deck) title(text string) Text {
	return Text{
		Box:   d.Layout.TitleBox(),
		Text:  text,
		Size:  d.Style.Title,
		Bold:  true,
		Align: AlignLeft,
	}
}

// image reads the chart now: the renderer reuses the same file for the next slide.
func (d *Deck) image(path string, box Box) (Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, fmt.Errorf("read chart image: %w", err)
	}
	return Image{Box: box, Data: data, MimeType: pngMimeType}, nil
}
