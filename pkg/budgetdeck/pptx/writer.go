// Package pptx serializes a composed deck to a PowerPoint 2007 file.
package pptx

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"
	"github.com/ukaji3/budgetdeck-go/pkg/budgetdeck/slides"
)

const (
	textColor   = "FF000000"
	headerFill  = "FFD9D9D9"
	cellFill    = "FFFFFFFF"
	spacerPoint = 6
)

// Properties are the document metadata stored in the package.
type Properties struct {
	Title   string
	Creator string
}

// Encode writes deck as PPTX to w.
func Encode(w io.Writer, deck *slides.Deck, props Properties) error {
	p := ppt.New()
	p.GetDocumentProperties().Title = props.Title
	p.GetDocumentProperties().Creator = props.Creator

	for i := range deck.Slides {
		var slide *ppt.Slide
		if i == 0 {
			slide = p.GetActiveSlide()
		} else {
			slide = p.CreateSlide()
		}
		renderSlide(slide, &deck.Slides[i])
	}

	pw, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return fmt.Errorf("create pptx writer: %w", err)
	}
	if err := pw.(*ppt.PPTXWriter).WriteTo(w); err != nil {
		return fmt.Errorf("encode pptx: %w", err)
	}
	return nil
}

// Write saves deck to path, creating its directory if needed. The file is
// only replaced once encoding succeeded.
func Write(path string, deck *slides.Deck, props Properties) error {
	var buf bytes.Buffer
	if err := Encode(&buf, deck, props); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func renderSlide(slide *ppt.Slide, s *slides.Slide) {
	for _, img := range s.Images {
		shape := slide.CreateDrawingShape()
		shape.SetImageData(img.Data, img.MimeType)
		shape.SetOffsetX(img.X).SetOffsetY(img.Y)
		shape.SetWidth(img.W).SetHeight(img.H)
	}
	for _, t := range s.Texts {
		renderText(slide, t)
	}
	if s.Grid != nil {
		renderGrid(slide, s.Grid)
	}
}

func renderText(slide *ppt.Slide, t slides.Text) {
	shape := slide.CreateRichTextShape()
	shape.SetOffsetX(t.X).SetOffsetY(t.Y)
	shape.SetWidth(t.W).SetHeight(t.H)

	for i, line := range strings.Split(t.Text, "\n") {
		if i > 0 {
			// GoPPT has no line spacing control; blank spacer paragraphs stand in.
			for n := 1; float64(n) < t.LineSpacing; n++ {
				shape.CreateParagraph()
				shape.CreateTextRun(" ").GetFont().SetSize(spacerPoint)
			}
			shape.CreateParagraph()
		}
		tr := shape.CreateTextRun(line)
		tr.GetFont().SetSize(t.Size).SetBold(t.Bold).SetColor(ppt.NewColor(textColor))
		align(shape.GetActiveParagraph(), t.Align)
	}
}

// renderGrid draws the table as one filled text box per cell.
func renderGrid(slide *ppt.Slide, g *slides.Grid) {
	for r, row := range g.Rows {
		for c, cell := range row {
			box := g.CellBox(r, c)
			shape := slide.CreateRichTextShape()
			shape.SetOffsetX(box.X).SetOffsetY(box.Y)
			shape.SetWidth(box.W).SetHeight(box.H)
			fill := cellFill
			if cell.Header {
				fill = headerFill
			}
			shape.SetFill(ppt.NewFill().SetSolid(ppt.NewColor(fill)))

			tr := shape.CreateTextRun(cell.Text)
			tr.GetFont().SetSize(g.FontSize).SetBold(cell.Header).SetColor(ppt.NewColor(textColor))
			align(shape.GetActiveParagraph(), slides.AlignCenter)
		}
	}
}

func align(p *ppt.Paragraph, a slides.Align) {
	if a == slides.AlignCenter {
		p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
	}
}
