package plots

import (
	"bytes"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gotrends/internal"
	"gotrends/internal/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func newTestPlotter(t *testing.T) (*Plotter, *bytes.Buffer) {
	t.Helper()
	logger := internal.NewLogger(internal.LogLevelError)
	logger.SetOutput(io.Discard)
	var out bytes.Buffer
	return NewPlotter(&out, t.TempDir(), 20, logger), &out
}

func loadFrame(t *testing.T, csv string) *dataset.Frame {
	t.Helper()
	frame, err := dataset.ReadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	return frame
}

func assertPNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), len(pngMagic))
	assert.Equal(t, pngMagic, data[:len(pngMagic)])
}

const twoNumericCSV = `name,height,weight
a,1.60,55.1
b,1.72,70.4
c,1.81,80.9
d,1.65,61.0
e,1.90,92.3
f,1.75,72.8
`

const oneNumericCSV = `name,height
a,1.60
b,1.72
c,1.81
`

func TestRelational_GuardWithOneNumericColumn(t *testing.T) {
	p, out := newTestPlotter(t)

	require.NoError(t, p.Relational(loadFrame(t, oneNumericCSV)))

	assert.Equal(t, GuardMessage+"\n", out.String())
	assert.NoFileExists(t, p.Path(RelationalFile))
}

func TestRelational_WritesScatter(t *testing.T) {
	p, out := newTestPlotter(t)

	require.NoError(t, p.Relational(loadFrame(t, twoNumericCSV)))

	assertPNG(t, p.Path(RelationalFile))
	assert.NotContains(t, out.String(), GuardMessage)
	assert.Contains(t, out.String(), RelationalFile)
}

func TestStatistical_GuardWithOneNumericColumn(t *testing.T) {
	p, out := newTestPlotter(t)

	require.NoError(t, p.Statistical(loadFrame(t, oneNumericCSV)))

	assert.Equal(t, GuardMessage+"\n", out.String())
	assert.NoFileExists(t, p.Path(HistogramFile))
	assert.NoFileExists(t, p.Path(HeatmapFile))
}

func TestStatistical_WritesHistogramAndHeatmap(t *testing.T) {
	p, out := newTestPlotter(t)

	require.NoError(t, p.Statistical(loadFrame(t, twoNumericCSV)))

	assertPNG(t, p.Path(HistogramFile))
	assertPNG(t, p.Path(HeatmapFile))
	assert.Equal(t,
		"Histogram saved as 'statistical_plot_histogram.png'.\n"+
			"Correlation heatmap saved as 'statistical_plot_heatmap.png'.\n",
		out.String())
}

func TestStatistical_OverwritesExistingFiles(t *testing.T) {
	p, _ := newTestPlotter(t)
	require.NoError(t, os.WriteFile(p.Path(HeatmapFile), []byte("stale"), 0o644))

	require.NoError(t, p.Statistical(loadFrame(t, twoNumericCSV)))

	assertPNG(t, p.Path(HeatmapFile))
}

func TestCategorical_NoGuard(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"one numeric column", oneNumericCSV},
		{"two numeric columns", twoNumericCSV},
		{"no numeric columns", "name,city\na,York\nb,Hull\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newTestPlotter(t)

			require.NoError(t, p.Categorical(loadFrame(t, tt.csv)))

			assertPNG(t, p.Path(CategoricalFile))
			assert.NotContains(t, out.String(), GuardMessage)
		})
	}
}

func TestSaveFigure_MissingDirectory(t *testing.T) {
	p, _ := newTestPlotter(t)
	p.Dir = filepath.Join(p.Dir, "does", "not", "exist")

	err := p.Relational(loadFrame(t, twoNumericCSV))
	assert.Error(t, err)
}

func TestWriteHTMLReport(t *testing.T) {
	p, out := newTestPlotter(t)
	path := filepath.Join(p.Dir, "report.html")

	require.NoError(t, p.WriteHTMLReport(loadFrame(t, twoNumericCSV), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, "Relationship between height and weight")
	assert.Contains(t, html, "Distribution of height")
	assert.Contains(t, html, "Correlation Heatmap of Numeric Features")
	assert.Contains(t, out.String(), "report.html")
}

func TestBinCounts(t *testing.T) {
	labels, counts, err := binCounts([]float64{0, 1, 2, 3, 4, 10}, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"1.00", "3.00", "5.00", "7.00", "9.00"}, labels)
	assert.Equal(t, []float64{2, 2, 1, 0, 1}, counts)

	labels, counts, err = binCounts(nil, 4)
	require.NoError(t, err)
	assert.Nil(t, labels)
	assert.Nil(t, counts)
}

func TestCategorical_NoNumericColumnsSavesEmptyFigure(t *testing.T) {
	p, out := newTestPlotter(t)
	frame := loadFrame(t, "name,city\na,York\nb,Hull\n")

	assert.NotPanics(t, func() {
		require.NoError(t, p.Categorical(frame))
	})
	assertPNG(t, p.Path(CategoricalFile))
	assert.Contains(t, out.String(), CategoricalFile)
}

const uncleanedCSV = `name,height,weight
a,1.60,55.1
b,,70.4
c,1.81,
d,1.65,61.0
e,1.90,92.3
`

func TestPlots_SkipMissingValues(t *testing.T) {
	frame := loadFrame(t, uncleanedCSV)
	require.True(t, frame.HasMissing())

	tests := []struct {
		name string
		draw func(*Plotter, *dataset.Frame) error
		file string
	}{
		{"relational", (*Plotter).Relational, RelationalFile},
		{"categorical", (*Plotter).Categorical, CategoricalFile},
		{"statistical", (*Plotter).Statistical, HistogramFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPlotter(t)

			require.NoError(t, tt.draw(p, frame))
			assertPNG(t, p.Path(tt.file))
		})
	}
}

func TestBinCounts_IgnoresNaN(t *testing.T) {
	_, counts, err := binCounts([]float64{0, 1, math.NaN(), 2, 3, 4, 10}, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2, 1, 0, 1}, counts)
}

func TestWriteHTMLReport_UncleanedFrame(t *testing.T) {
	p, _ := newTestPlotter(t)
	path := filepath.Join(p.Dir, "report.html")

	require.NoError(t, p.WriteHTMLReport(loadFrame(t, uncleanedCSV), path))
	assert.FileExists(t, path)
}
