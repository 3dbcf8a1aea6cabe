package pptx

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/budgetdeck-go/pkg/budgetdeck/models"
	"github.com/ukaji3/budgetdeck-go/pkg/budgetdeck/slides"
)

// 1x1 transparent PNG.
var pixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func sampleDeck(t *testing.T) *slides.Deck {
	t.Helper()
	dir := t.TempDir()
	img := filepath.Join(dir, "tmp.png")
	require.NoError(t, os.WriteFile(img, pixel, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "A.txt"), []byte("first\nsecond"), 0o644))

	d := slides.NewDeck(slides.DefaultLayout(), slides.DefaultStyle())
	d.AddCover("Review", "Finance")
	frame := models.Frame{
		Labels:   []string{"A", "B"},
		Budgeted: []float64{10, 20},
		Actual:   []float64{5, 25},
		Ratio:    []float64{0.5, 1.25},
	}
	_, err := d.AddChartTable("Total/Revenue", img, slides.FrameMatrix(frame, slides.RowLabels{Budget: "Budget", Actual: "Actual", Ratio: "Rate"}), 0)
	require.NoError(t, err)
	_, err = d.AddChart("Total/Mix", img)
	require.NoError(t, err)
	_, ok, err := d.AddNote("A notes", dir, "A", img)
	require.NoError(t, err)
	require.True(t, ok)
	return d
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleDeck(t), Properties{Title: "Review", Creator: "budgetdeck"}))
	// PPTX is a zip package
	assert.Equal(t, []byte("PK"), buf.Bytes()[:2])
}

func TestWriteAndReadBack(t *testing.T) {
	deck := sampleDeck(t)
	path := filepath.Join(t.TempDir(), "out", "report_240131.pptx")

	require.NoError(t, Write(path, deck, Properties{Title: "Review"}))

	got, err := ReadText(path)
	require.NoError(t, err)
	require.Len(t, got, deck.Len())

	assert.Equal(t, "Review", got[0].Title())
	assert.Equal(t, "Total/Revenue", got[1].Title())
	assert.Contains(t, got[1].Shapes, "50%")
	assert.Contains(t, got[1].Shapes, "125%")
	assert.Equal(t, "Total/Mix", got[2].Title())
	assert.Equal(t, "A notes", got[3].Title())
}

func TestReadTextMissingFile(t *testing.T) {
	_, err := ReadText(filepath.Join(t.TempDir(), "none.pptx"))
	assert.Error(t, err)
}

func TestSlideTextTitle(t *testing.T) {
	assert.Equal(t, "x", SlideText{Shapes: []string{"", " ", "x"}}.Title())
	assert.Empty(t, SlideText{}.Title())
}
