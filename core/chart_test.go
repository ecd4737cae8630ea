package core

import (
	"testing"

	"github.com/scoutbase/scout/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHistogramFor tests attribute distribution shaping.
func TestHistogramFor(t *testing.T) {
	t.Run("nominal scale attributes bin over the rating scale", func(t *testing.T) {
		hist := HistogramFor("pace", []float64{5, 10, 15})
		require.Len(t, hist.Bins, defaultHistogramBins)
		assert.Equal(t, "pace", hist.Attribute)
		assert.Equal(t, 0.0, hist.Bins[0].Low)
		assert.Equal(t, schema.RatingScaleMax, hist.Bins[len(hist.Bins)-1].High)

		total := 0
		for _, bin := range hist.Bins {
			total += bin.Count
		}
		assert.Equal(t, 3, total)
	})

	t.Run("aggregate scale attributes widen the range", func(t *testing.T) {
		hist := HistogramFor("CA", []float64{120, 150, 195})
		assert.Equal(t, 195.0, hist.Bins[len(hist.Bins)-1].High)
	})
}

// TestCorrelationGrid tests the pairwise Pearson grid.
func TestCorrelationGrid(t *testing.T) {
	t.Run("symmetric with unit diagonal", func(t *testing.T) {
		grid, err := CorrelationGrid(
			[]string{"passing", "vision"},
			[][]float64{{1, 2, 3}, {2, 4, 6}})
		require.NoError(t, err)
		assert.Equal(t, []string{"passing", "vision"}, grid.Labels)
		assert.Equal(t, 1.0, grid.Cells[0][0])
		assert.Equal(t, 1.0, grid.Cells[1][1])
		assert.InDelta(t, 1.0, grid.Cells[0][1], 1e-9)
		assert.Equal(t, grid.Cells[0][1], grid.Cells[1][0])
	})

	t.Run("mismatched columns fail", func(t *testing.T) {
		_, err := CorrelationGrid(
			[]string{"passing", "vision"},
			[][]float64{{1, 2, 3}, {2, 4}})
		assert.Error(t, err)
	})
}
