package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/scoutbase/scout/internal/contract"
	"github.com/scoutbase/scout/schema"

	"github.com/olekukonko/tablewriter"
)

// MetricDefinition documents one derived metric the calculator produces.
type MetricDefinition struct {
	Name    string `json:"name"`
	Formula string `json:"formula"`
	Notes   string `json:"notes"`
}

// MetricDefinitions lists every derived metric, in display order.
func MetricDefinitions() []MetricDefinition {
	return []MetricDefinition{
		{
			Name:    "goals_per90",
			Formula: "goals * 90 / minutes_played",
			Notes:   "undefined when minutes_played is 0",
		},
		{
			Name:    "assists_per90",
			Formula: "assists * 90 / minutes_played",
			Notes:   "undefined when minutes_played is 0",
		},
		{
			Name:    "shots_per90",
			Formula: "shots * 90 / minutes_played",
			Notes:   "undefined when minutes_played is 0",
		},
		{
			Name:    "pass_accuracy",
			Formula: "completed_passes * 100 / passes",
			Notes:   "clamped to [0, 100]; undefined when passes is 0",
		},
		{
			Name:    "category_average",
			Formula: "mean of the ratings in one attribute category",
			Notes:   "missing attributes count as 0",
		},
		{
			Name:    "correlation",
			Formula: "Pearson r over paired attribute values",
			Notes:   "0 when either attribute has no variance",
		},
	}
}

// WriteMetricsDefinitions outputs the metric reference, dispatching based on the output format configured.
func WriteMetricsDefinitions(cfg *contract.Config) error {
	defs := MetricDefinitions()

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, defs)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"name", "formula", "notes"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				for _, d := range defs {
					if err := csvWriter.Write([]string{d.Name, d.Formula, d.Notes}); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for metric definitions")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricsTable(defs, w)
		}, "Wrote table")
	}
	return nil
}

// writeMetricsTable generates and writes the human-readable table.
func writeMetricsTable(defs []MetricDefinition, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Metric", "Formula", "Notes"})

	var data [][]string
	for _, d := range defs {
		data = append(data, []string{d.Name, d.Formula, d.Notes})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(writer, "Derived metrics are computed at read time and never stored")
	return err
}
