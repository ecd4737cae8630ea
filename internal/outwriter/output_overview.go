package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/scoutbase/scout/internal/contract"
	"github.com/scoutbase/scout/schema"

	"github.com/olekukonko/tablewriter"
)

// overviewTableOrder fixes the display order of the required tables.
var overviewTableOrder = []string{"players", "player_attributes", "player_stats"}

// WriteOverviewResults outputs the store overview, dispatching based on the output format configured.
func WriteOverviewResults(ov schema.StoreOverview, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, ov)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeOverviewCSVResults(ov, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for the overview")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeOverviewText(ov, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// orderedTableNames returns the known tables first, then any extras sorted.
func orderedTableNames(counts map[string]int64) []string {
	seen := make(map[string]bool, len(overviewTableOrder))
	var names []string
	for _, name := range overviewTableOrder {
		if _, ok := counts[name]; ok {
			names = append(names, name)
			seen[name] = true
		}
	}
	var extras []string
	for name := range counts {
		if !seen[name] {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	return append(names, extras...)
}

// writeOverviewCSVResults handles opening the file and calling the CSV writer.
func writeOverviewCSVResults(ov schema.StoreOverview, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"section", "name", "value"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, name := range orderedTableNames(ov.TableCounts) {
				rec := []string{"tables", name, strconv.FormatInt(ov.TableCounts[name], 10)}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			for _, pa := range ov.PositionAverages {
				rec := []string{"avg_ca_by_position", pa.Position, fmtFloat(pa.AverageCA)}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeOverviewText generates and writes the human-readable overview.
func writeOverviewText(ov schema.StoreOverview, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	if _, err := fmt.Fprintln(writer, "Store contents"); err != nil {
		return err
	}
	countTable := tablewriter.NewWriter(writer)
	countTable.Header([]string{"Table", "Rows"})
	var countData [][]string
	for _, name := range orderedTableNames(ov.TableCounts) {
		countData = append(countData, []string{name, strconv.FormatInt(ov.TableCounts[name], 10)})
	}
	if err := countTable.Bulk(countData); err != nil {
		return err
	}
	if err := countTable.Render(); err != nil {
		return err
	}

	if len(ov.PositionAverages) > 0 {
		if _, err := fmt.Fprintln(writer, "\nAverage CA by position"); err != nil {
			return err
		}
		posTable := tablewriter.NewWriter(writer)
		posTable.Header([]string{"Position", "Avg CA", "Players"})
		var posData [][]string
		for _, pa := range ov.PositionAverages {
			posData = append(posData, []string{
				pa.Position,
				fmtFloat(pa.AverageCA),
				strconv.Itoa(pa.Players),
			})
		}
		if err := posTable.Bulk(posData); err != nil {
			return err
		}
		if err := posTable.Render(); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(writer, "Overview completed in %v. Store backend: %s\n", duration, cfg.StoreBackend)
	return err
}
