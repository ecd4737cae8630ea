package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/scoutbase/scout/internal/contract"
	"github.com/scoutbase/scout/internal/parquet"
	"github.com/scoutbase/scout/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteRankResults outputs a topN ranking, dispatching based on the output format configured.
func WriteRankResults(ratings []schema.PlayerRating, attribute string, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeRankJSONResults(ratings, attribute, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeRankCSVResults(ratings, attribute, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteRankingRows(rankingRowsFor(ratings, attribute), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankTable(ratings, attribute, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeRankJSONResults handles opening the file and calling the JSON writer.
func writeRankJSONResults(ratings []schema.PlayerRating, attribute string, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForRank(w, ratings, attribute)
	}, "Wrote JSON")
}

// writeRankCSVResults handles opening the file and calling the CSV writer.
func writeRankCSVResults(ratings []schema.PlayerRating, attribute string, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"rank", "player_id", "player_name", "position", "nationality", "attribute", "value", "label"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			return writeCSVResultsForRank(csvWriter, ratings, attribute, fmtFloat)
		})
	}, "Wrote CSV")
}

// writeRankTable generates and writes the human-readable table.
func writeRankTable(ratings []schema.PlayerRating, attribute string, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Player", "Value", "Label"}
	if cfg.Detail {
		headers = append(headers, "Pos", "Nat")
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	nameWidth := GetMaxTableNameWidth(cfg)
	var data [][]string
	for i, r := range ratings {
		row := []string{
			strconv.Itoa(i + 1),                         // Rank
			contract.TruncateName(r.Player.Name, nameWidth), // Player
			fmtFloat(r.Value),                           // Value
			labelFor(cfg, r.Value),                      // Label
		}
		if cfg.Detail {
			row = append(row, r.Player.Position, r.Player.Nationality)
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing top %d players by %s\n", len(ratings), attribute); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Query completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForRank writes the ranking rows in CSV format.
func writeCSVResultsForRank(w *csv.Writer, ratings []schema.PlayerRating, attribute string, fmtFloat func(float64) string) error {
	for i, r := range ratings {
		rec := []string{
			strconv.Itoa(i + 1),                 // Rank
			strconv.FormatInt(r.Player.ID, 10),  // Player ID
			r.Player.Name,                       // Player Name
			r.Player.Position,                   // Position
			r.Player.Nationality,                // Nationality
			attribute,                           // Ranked attribute
			fmtFloat(r.Value),                   // Value
			contract.GetPlainLabel(r.Value),     // Label
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForRank writes the ranking rows in JSON format.
func writeJSONResultsForRank(w io.Writer, ratings []schema.PlayerRating, attribute string) error {
	// 1. Prepare the data structure for JSON with rank and label added
	type JSONPlayerRating struct {
		Rank      int    `json:"rank"`
		Attribute string `json:"attribute"`
		Label     string `json:"label"`
		schema.PlayerRating
	}

	output := make([]JSONPlayerRating, len(ratings))
	for i, r := range ratings {
		output[i] = JSONPlayerRating{
			Rank:         i + 1,
			Attribute:    attribute,
			Label:        contract.GetPlainLabel(r.Value),
			PlayerRating: r,
		}
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}

// rankingRowsFor flattens ratings into the columnar Parquet shape.
func rankingRowsFor(ratings []schema.PlayerRating, attribute string) []parquet.RankingRow {
	rows := make([]parquet.RankingRow, len(ratings))
	for i, r := range ratings {
		rows[i] = parquet.RankingRow{
			Rank:        int32(i + 1),
			PlayerID:    r.Player.ID,
			PlayerName:  r.Player.Name,
			Position:    parquet.OptionalString(r.Player.Position),
			Nationality: parquet.OptionalString(r.Player.Nationality),
			Attribute:   attribute,
			Value:       r.Value,
			Label:       contract.GetPlainLabel(r.Value),
		}
	}
	return rows
}
