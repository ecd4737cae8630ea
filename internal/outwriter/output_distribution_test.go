package outwriter

import (
	"bytes"
	"testing"

	"github.com/scoutbase/scout/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteHistogramTable tests the ASCII distribution output.
func TestWriteHistogramTable(t *testing.T) {
	hist := schema.Histogram{
		Attribute: "pace",
		Bins: []schema.HistogramBin{
			{Low: 0, High: 10, Count: 1},
			{Low: 10, High: 20, Count: 4},
		},
	}

	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(1)
	require.NoError(t, writeHistogramTable(hist, fmtFloat, &buf))

	out := buf.String()
	assert.Contains(t, out, "0.0 - 10.0")
	assert.Contains(t, out, "Distribution of pace across 5 players")

	// The fullest bin renders the full-width bar
	assert.Contains(t, out, "########################################")
}

// TestHistogramSeries tests the ordered series shape and its long-form
// Parquet flattening.
func TestHistogramSeries(t *testing.T) {
	hist := schema.Histogram{
		Attribute: "pace",
		Bins: []schema.HistogramBin{
			{Low: 0, High: 10, Count: 3},
			{Low: 10, High: 20, Count: 1},
		},
	}

	fmtFloat, _ := createFormatters(1)
	series := histogramSeries(hist, fmtFloat)
	assert.Equal(t, "pace", series.Name)
	require.Len(t, series.Points, 2)
	assert.Equal(t, "0.0 - 10.0", series.Points[0].Label)
	assert.Equal(t, 3.0, series.Points[0].Value)

	points := seriesPointsFor(series)
	require.Len(t, points, 2)
	assert.Equal(t, "pace", points[0].SeriesName)
	assert.Equal(t, "0.0 - 10.0", points[0].Label)
	assert.Equal(t, 3.0, points[0].Value)
	assert.Equal(t, "10.0 - 20.0", points[1].Label)
}

// TestWriteHeatmapTable tests the square correlation grid output.
func TestWriteHeatmapTable(t *testing.T) {
	grid := schema.HeatmapGrid{
		Labels: []string{"passing", "vision"},
		Cells:  [][]float64{{1, 0.8}, {0.8, 1}},
	}

	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(2)
	require.NoError(t, writeHeatmapTable(grid, fmtFloat, &buf))

	out := buf.String()
	assert.Contains(t, out, "passing")
	assert.Contains(t, out, "0.80")
	assert.Contains(t, out, "Pearson correlation over players with complete attribute rows")
}

// TestWriteHeatmapParquetUnsupported tests the explicit parquet rejection.
func TestWriteHeatmapParquetUnsupported(t *testing.T) {
	cfg := rankTestConfig()
	cfg.Output = schema.ParquetOut
	err := WriteHeatmapResults(schema.HeatmapGrid{}, cfg)
	assert.Error(t, err)
}
