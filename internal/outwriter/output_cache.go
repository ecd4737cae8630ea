package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/scoutbase/scout/internal/contract"
	"github.com/scoutbase/scout/schema"

	"github.com/olekukonko/tablewriter"
)

// WriteCacheStatusResults outputs cache status information, dispatching based on the output format configured.
func WriteCacheStatusResults(status schema.CacheStatus, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, status)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCacheStatusCSVResults(status, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for cache status")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCacheStatusTable(status, w)
		}, "Wrote table")
	}
	return nil
}

// cacheStatusRows renders the status fields as name/value pairs.
func cacheStatusRows(status schema.CacheStatus) [][]string {
	rows := [][]string{
		{"backend", status.Backend},
		{"connected", strconv.FormatBool(status.Connected)},
		{"total_entries", strconv.FormatInt(status.TotalEntries, 10)},
	}
	if !status.LastEntryTime.IsZero() {
		rows = append(rows, []string{"last_entry_time", status.LastEntryTime.Format(contract.DateTimeFormat)})
	}
	if !status.OldestEntryTime.IsZero() {
		rows = append(rows, []string{"oldest_entry_time", status.OldestEntryTime.Format(contract.DateTimeFormat)})
	}
	if status.TableSizeBytes > 0 {
		rows = append(rows, []string{"table_size_bytes", strconv.FormatInt(status.TableSizeBytes, 10)})
	}
	return rows
}

// writeCacheStatusCSVResults handles opening the file and calling the CSV writer.
func writeCacheStatusCSVResults(status schema.CacheStatus, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"name", "value"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, rec := range cacheStatusRows(status) {
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeCacheStatusTable generates and writes the human-readable table.
func writeCacheStatusTable(status schema.CacheStatus, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Field", "Value"})

	if err := table.Bulk(cacheStatusRows(status)); err != nil {
		return err
	}
	return table.Render()
}
