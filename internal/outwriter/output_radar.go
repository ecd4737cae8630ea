package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/scoutbase/scout/internal/contract"
	"github.com/scoutbase/scout/internal/parquet"
	"github.com/scoutbase/scout/schema"

	"github.com/olekukonko/tablewriter"
)

// WriteRadarResults outputs one or more radar series, dispatching based on the output format configured.
// All series share the fixed axis set, so a single table can hold them side by side.
func WriteRadarResults(series []schema.RadarSeries, cfg *contract.Config) error {
	if len(series) == 0 {
		return fmt.Errorf("no radar series to write")
	}
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, series)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeRadarCSVResults(series, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteSeriesPoints(radarPointsFor(series), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRadarTable(series, cfg, fmtFloat, w)
		}, "Wrote table")
	}
	return nil
}

// writeRadarCSVResults writes the series in long form: one row per axis per series.
func writeRadarCSVResults(series []schema.RadarSeries, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"series", "axis", "value"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, s := range series {
				for i, axis := range s.Axes {
					if err := csvWriter.Write([]string{s.Name, axis, fmtFloat(s.Values[i])}); err != nil {
						return err
					}
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeRadarTable generates and writes the human-readable table, one column per series.
func writeRadarTable(series []schema.RadarSeries, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	nameWidth := GetMaxTableNameWidth(cfg)
	headers := []string{"Axis"}
	for _, s := range series {
		headers = append(headers, contract.TruncateName(s.Name, nameWidth))
	}

	table := tablewriter.NewWriter(writer)
	table.Header(headers)

	var data [][]string
	for i, axis := range series[0].Axes {
		row := []string{axis}
		for _, s := range series {
			row = append(row, fmtFloat(s.Values[i]))
		}
		data = append(data, row)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Radar axes use the nominal 1-%.0f rating scale\n", schema.RatingScaleMax)
	return err
}

// radarPointsFor flattens radar series into the long-form Parquet shape.
func radarPointsFor(series []schema.RadarSeries) []parquet.SeriesPoint {
	var points []parquet.SeriesPoint
	for _, s := range series {
		for i, axis := range s.Axes {
			points = append(points, parquet.SeriesPoint{
				SeriesName: s.Name,
				Label:      axis,
				Value:      s.Values[i],
			})
		}
	}
	return points
}
