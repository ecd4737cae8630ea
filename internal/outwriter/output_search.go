package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/scoutbase/scout/internal/contract"
	"github.com/scoutbase/scout/internal/parquet"
	"github.com/scoutbase/scout/schema"

	"github.com/olekukonko/tablewriter"
)

// WriteSearchResults outputs a name search result, dispatching based on the output format configured.
func WriteSearchResults(players []schema.Player, query string, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, players)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeSearchCSVResults(players, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WritePlayerRows(playerRowsFor(players), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSearchTable(players, query, cfg, w)
		}, "Wrote table")
	}
	return nil
}

// writeSearchCSVResults handles opening the file and calling the CSV writer.
func writeSearchCSVResults(players []schema.Player, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"player_id", "player_name", "position", "nationality"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, p := range players {
				rec := []string{
					strconv.FormatInt(p.ID, 10),
					p.Name,
					p.Position,
					p.Nationality,
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeSearchTable generates and writes the human-readable table.
func writeSearchTable(players []schema.Player, query string, cfg *contract.Config, writer io.Writer) error {
	if len(players) == 0 {
		_, err := fmt.Fprintf(writer, "No players matched %q\n", query)
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"ID", "Player", "Pos", "Nat"})

	nameWidth := GetMaxTableNameWidth(cfg)
	var data [][]string
	for _, p := range players {
		data = append(data, []string{
			strconv.FormatInt(p.ID, 10),
			contract.TruncateName(p.Name, nameWidth),
			p.Position,
			p.Nationality,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Found %d players matching %q\n", len(players), query)
	return err
}

// playerRowsFor flattens players into the columnar Parquet shape.
func playerRowsFor(players []schema.Player) []parquet.PlayerRow {
	rows := make([]parquet.PlayerRow, len(players))
	for i, p := range players {
		rows[i] = parquet.PlayerRow{
			PlayerID:    p.ID,
			PlayerName:  p.Name,
			Position:    parquet.OptionalString(p.Position),
			Nationality: parquet.OptionalString(p.Nationality),
		}
	}
	return rows
}
