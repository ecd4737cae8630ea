package core

import (
	"context"

	"github.com/scoutbase/scout/core/algo"
	"github.com/scoutbase/scout/core/metric"
	"github.com/scoutbase/scout/internal/contract"
	"github.com/scoutbase/scout/internal/outwriter"
	"github.com/scoutbase/scout/schema"
)

// defaultHistogramBins is the bin count for attribute distributions.
const defaultHistogramBins = 10

// ExecuteScoutDist prints the binned distribution of one attribute across
// all players.
func ExecuteScoutDist(ctx context.Context, cfg *contract.Config, attribute string) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	canon, ok := schema.CanonicalAttribute(attribute)
	if !ok {
		return &contract.NotFoundError{Kind: "attribute", Key: attribute}
	}

	values, err := store.AttributeValues(ctx, canon)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteHistogram(HistogramFor(canon, values), cfg)
}

// ExecuteScoutCorr prints the pairwise Pearson correlation grid for the
// given attributes. With no attributes given it uses the radar axis set.
func ExecuteScoutCorr(ctx context.Context, cfg *contract.Config, attributes []string) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if len(attributes) == 0 {
		attributes = schema.RadarAxes
	}

	labels := make([]string, 0, len(attributes))
	columns := make([][]float64, 0, len(attributes))
	for _, attr := range attributes {
		canon, ok := schema.CanonicalAttribute(attr)
		if !ok {
			return &contract.NotFoundError{Kind: "attribute", Key: attr}
		}
		values, err := store.AttributeValues(ctx, canon)
		if err != nil {
			return err
		}
		labels = append(labels, canon)
		columns = append(columns, values)
	}

	grid, err := CorrelationGrid(labels, columns)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteHeatmap(grid, cfg)
}

// HistogramFor bins attribute values over the scale the attribute lives on.
// CA/PA style aggregates range over the observed values instead of the
// nominal 1-20 scale.
func HistogramFor(attribute string, values []float64) schema.Histogram {
	low, high := 0.0, schema.RatingScaleMax
	for _, v := range values {
		if v > high {
			high = v
		}
		if v < low {
			low = v
		}
	}
	return schema.Histogram{
		Attribute: attribute,
		Bins:      algo.BinValues(values, low, high, defaultHistogramBins),
	}
}

// CorrelationGrid computes the symmetric Pearson grid for the labeled
// columns. All columns must have the same length.
func CorrelationGrid(labels []string, columns [][]float64) (schema.HeatmapGrid, error) {
	grid := schema.HeatmapGrid{
		Labels: labels,
		Cells:  make([][]float64, len(labels)),
	}
	for i := range labels {
		grid.Cells[i] = make([]float64, len(labels))
		for j := range labels {
			if j < i {
				grid.Cells[i][j] = grid.Cells[j][i]
				continue
			}
			if j == i {
				grid.Cells[i][j] = 1
				continue
			}
			r, err := metric.Correlation(columns[i], columns[j])
			if err != nil {
				return grid, err
			}
			grid.Cells[i][j] = r
		}
	}
	return grid, nil
}
