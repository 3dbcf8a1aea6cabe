package pptx

import (
	"fmt"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"
)

// SlideText is the visible text of one slide, one entry per text shape.
type SlideText struct {
	Shapes []string
}

// Title returns the first non-empty shape text.
func (s SlideText) Title() string {
	for _, t := range s.Shapes {
		if strings.TrimSpace(t) != "" {
			return t
		}
	}
	return ""
}

// ReadText opens a PPTX file and returns the text of every slide.
func ReadText(path string) ([]SlideText, error) {
	reader := &ppt.PPTXReader{}
	pres, err := reader.Read(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	var out []SlideText
	for _, slide := range pres.GetAllSlides() {
		var st SlideText
		for _, shape := range slide.GetShapes() {
			rts, ok := shape.(*ppt.RichTextShape)
			if !ok {
				continue
			}
			var paras []string
			for _, para := range rts.GetParagraphs() {
				var text string
				for _, elem := range para.GetElements() {
					if run, ok := elem.(*ppt.TextRun); ok {
						text += run.GetText()
					}
				}
				paras = append(paras, text)
			}
			st.Shapes = append(st.Shapes, strings.Join(paras, "\n"))
		}
		out = append(out, st)
	}
	return out, nil
}
