package slides

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/budgetdeck-go/pkg/budgetdeck/models"
)

func writeImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tmp.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG\r\n\x1a\nfake"), 0o644))
	return path
}

func TestLayoutGeometry(t *testing.T) {
	l := DefaultLayout()

	assert.Equal(t, Inches(9), l.ContentWidth())
	assert.Equal(t, Inches(4.125), l.ContentHeight())

	chart := l.ChartBox()
	table := l.TableBox()
	assert.Equal(t, chart.Y+chart.H, table.Y)
	assert.Equal(t, l.ContentBox().Y+l.ContentHeight(), table.Y+table.H)
	assert.Equal(t, Inches(1), table.H)

	note := l.NoteBox()
	assert.Equal(t, l.ContentBox().Y+l.Margin, note.Y)
}

func TestAddCover(t *testing.T) {
	d := NewDeck(DefaultLayout(), DefaultStyle())
	s := d.AddCover("FY2024 Review", "Finance")

	assert.Equal(t, 1, d.Len())
	assert.Equal(t, KindCover, s.Kind)
	require.Len(t, s.Texts, 2)
	assert.Empty(t, s.Images)
	assert.Nil(t, s.Grid)

	for _, text := range s.Texts {
		assert.True(t, text.Bold)
		assert.Equal(t, AlignCenter, text.Align)
	}
	assert.Equal(t, "FY2024 Review", s.Texts[0].Text)
	assert.Equal(t, 36, s.Texts[0].Size)
	assert.Equal(t, "Finance", s.Texts[1].Text)
	assert.Equal(t, 26, s.Texts[1].Size)
	// subtitle sits 20pt below the title box
	assert.Equal(t, int64(20*EMUPerPoint), s.Texts[1].Y-(s.Texts[0].Y+s.Texts[0].H))
}

func TestAddChartTable(t *testing.T) {
	img := writeImage(t)
	d := NewDeck(DefaultLayout(), DefaultStyle())
	frame := models.Frame{
		Labels:   []string{"A"},
		Budgeted: []float64{10},
		Actual:   []float64{5},
		Ratio:    []float64{0.5},
	}

	s, err := d.AddChartTable("Total/Revenue", img, FrameMatrix(frame, RowLabels{"B", "A", "R"}), 0)
	require.NoError(t, err)

	assert.Equal(t, KindChartTable, s.Kind)
	require.Len(t, s.Texts, 1)
	assert.Equal(t, "Total/Revenue", s.Texts[0].Text)
	assert.True(t, s.Texts[0].Bold)
	assert.Equal(t, AlignLeft, s.Texts[0].Align)
	require.Len(t, s.Images, 1)
	assert.Equal(t, d.Layout.ChartBox(), s.Images[0].Box)
	assert.Equal(t, "image/png", s.Images[0].MimeType)

	require.NotNil(t, s.Grid)
	assert.Equal(t, d.Layout.TableBox(), s.Grid.Box)
	assert.Equal(t, 2, s.Grid.Cols())
	assert.Equal(t, "50%", s.Grid.Rows[3][1].Text)

	// the image is captured, so overwriting the file later leaves the slide intact
	require.NoError(t, os.WriteFile(img, []byte("other"), 0o644))
	assert.Contains(t, string(d.Slides[0].Images[0].Data), "PNG")
}

func TestAddChartMissingImage(t *testing.T) {
	d := NewDeck(DefaultLayout(), DefaultStyle())
	_, err := d.AddChart("x", filepath.Join(t.TempDir(), "none.png"))
	require.Error(t, err)
	assert.Zero(t, d.Len())
}

func TestAddChart(t *testing.T) {
	d := NewDeck(DefaultLayout(), DefaultStyle())
	s, err := d.AddChart("Total/Mix", writeImage(t))
	require.NoError(t, err)
	assert.Equal(t, KindChart, s.Kind)
	require.Len(t, s.Images, 1)
	assert.Equal(t, d.Layout.ContentBox(), s.Images[0].Box)
	assert.Nil(t, s.Grid)
}

func TestAddNote(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "7022.txt"), []byte("\ufeffline one\r\nline two\n"), 0o644))

	t.Run("missing file adds nothing", func(t *testing.T) {
		d := NewDeck(DefaultLayout(), DefaultStyle())
		s, ok, err := d.AddNote("6090 notes", dir, "6090", "")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, s)
		assert.Zero(t, d.Len())
	})

	t.Run("text only", func(t *testing.T) {
		d := NewDeck(DefaultLayout(), DefaultStyle())
		s, ok, err := d.AddNote("7022 notes", dir, "7022", "")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, KindNote, s.Kind)
		require.Len(t, s.Texts, 2)
		body := s.Texts[1]
		assert.Equal(t, "line one\nline two", body.Text)
		assert.Equal(t, 18, body.Size)
		assert.Equal(t, 2.0, body.LineSpacing)
		assert.Equal(t, d.Layout.NoteBox(), body.Box)
		assert.Empty(t, s.Images)
	})

	t.Run("with chart", func(t *testing.T) {
		d := NewDeck(DefaultLayout(), DefaultStyle())
		s, ok, err := d.AddNote("7022 notes", dir, "7022", writeImage(t))
		require.NoError(t, err)
		require.True(t, ok)
		require.Len(t, s.Images, 1)
		body := s.Texts[1]
		assert.Greater(t, body.X, s.Images[0].X+s.Images[0].W-1)
		assert.Equal(t, d.Layout.NoteBox().X+d.Layout.NoteBox().W, body.X+body.W)
	})
}

func TestGridCellBox(t *testing.T) {
	g := Grid{Box: Box{X: 100, Y: 200, W: 300, H: 40}, Rows: [][]Cell{{{}, {}, {}}, {{}, {}, {}}}}
	assert.Equal(t, Box{X: 300, Y: 220, W: 100, H: 20}, g.CellBox(1, 2))
	assert.Equal(t, Box{}, (&Grid{}).CellBox(0, 0))
}
