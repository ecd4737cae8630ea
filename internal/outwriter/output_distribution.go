package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/scoutbase/scout/internal/contract"
	"github.com/scoutbase/scout/internal/parquet"
	"github.com/scoutbase/scout/schema"

	"github.com/olekukonko/tablewriter"
)

// maxBarWidth caps the ASCII bar length in histogram tables.
const maxBarWidth = 40

// WriteHistogramResults outputs a binned attribute distribution, dispatching based on the output format configured.
func WriteHistogramResults(h schema.Histogram, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, h)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeHistogramCSVResults(h, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteSeriesPoints(seriesPointsFor(histogramSeries(h, fmtFloat)), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistogramTable(h, fmtFloat, w)
		}, "Wrote table")
	}
	return nil
}

// writeHistogramCSVResults handles opening the file and calling the CSV writer.
func writeHistogramCSVResults(h schema.Histogram, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"attribute", "low", "high", "count"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, b := range h.Bins {
				rec := []string{h.Attribute, fmtFloat(b.Low), fmtFloat(b.High), strconv.Itoa(b.Count)}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeHistogramTable generates and writes the human-readable table with ASCII bars.
func writeHistogramTable(h schema.Histogram, fmtFloat func(float64) string, writer io.Writer) error {
	maxCount := 0
	total := 0
	for _, b := range h.Bins {
		if b.Count > maxCount {
			maxCount = b.Count
		}
		total += b.Count
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Range", "Count", "Bar"})

	var data [][]string
	for _, b := range h.Bins {
		bar := ""
		if maxCount > 0 {
			bar = strings.Repeat("#", b.Count*maxBarWidth/maxCount)
		}
		data = append(data, []string{
			fmt.Sprintf("%s - %s", fmtFloat(b.Low), fmtFloat(b.High)),
			strconv.Itoa(b.Count),
			bar,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Distribution of %s across %d players\n", h.Attribute, total)
	return err
}

// histogramSeries shapes bins as an ordered chart series, one point per bin.
func histogramSeries(h schema.Histogram, fmtFloat func(float64) string) schema.Series {
	s := schema.Series{Name: h.Attribute, Points: make([]schema.Point, len(h.Bins))}
	for i, b := range h.Bins {
		s.Points[i] = schema.Point{
			Label: fmt.Sprintf("%s - %s", fmtFloat(b.Low), fmtFloat(b.High)),
			Value: float64(b.Count),
		}
	}
	return s
}

// WriteHeatmapResults outputs an attribute correlation grid, dispatching based on the output format configured.
func WriteHeatmapResults(g schema.HeatmapGrid, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, g)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeHeatmapCSVResults(g, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for heatmaps")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHeatmapTable(g, fmtFloat, w)
		}, "Wrote table")
	}
	return nil
}

// writeHeatmapCSVResults writes the grid in long form: one row per cell.
func writeHeatmapCSVResults(g schema.HeatmapGrid, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"row", "column", "value"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for i, rowLabel := range g.Labels {
				for j, colLabel := range g.Labels {
					rec := []string{rowLabel, colLabel, fmtFloat(g.Cells[i][j])}
					if err := csvWriter.Write(rec); err != nil {
						return err
					}
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeHeatmapTable generates and writes the square grid with shared labels.
func writeHeatmapTable(g schema.HeatmapGrid, fmtFloat func(float64) string, writer io.Writer) error {
	headers := append([]string{""}, g.Labels...)

	table := tablewriter.NewWriter(writer)
	table.Header(headers)

	var data [][]string
	for i, rowLabel := range g.Labels {
		row := []string{rowLabel}
		for j := range g.Labels {
			row = append(row, fmtFloat(g.Cells[i][j]))
		}
		data = append(data, row)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(writer, "Pearson correlation over players with complete attribute rows")
	return err
}
