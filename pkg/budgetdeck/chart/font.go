package chart

import (
	"fmt"
	"os"

	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
)

// Typeface is the name under which LoadFont registers a custom face.
const Typeface = "budgetdeck"

// LoadFont registers the TrueType or OpenType font at path and makes it the
// default for every chart drawn afterwards. Labels outside Latin script need
// a face that covers them.
func LoadFont(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read font %s: %w", path, err)
	}
	face, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", path, err)
	}

	fnt := font.Font{Typeface: Typeface}
	font.DefaultCache.Add(font.Collection{{Font: fnt, Face: face}})
	plot.DefaultFont = fnt
	return nil
}
