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

// WriteRateRankResults outputs a rate-metric leaderboard, dispatching based on the output format configured.
// Rate values live on their own scale per metric, so rows carry no rating label.
func WriteRateRankResults(ratings []schema.PlayerRating, metric string, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeRateJSONResults(ratings, metric, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeRateCSVResults(ratings, metric, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteSeriesPoints(seriesPointsFor(rateSeries(metric, ratings)), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRateTable(ratings, metric, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeRateJSONResults handles opening the file and calling the JSON writer.
func writeRateJSONResults(ratings []schema.PlayerRating, metric string, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForRate(w, ratings, metric)
	}, "Wrote JSON")
}

// writeRateCSVResults handles opening the file and calling the CSV writer.
func writeRateCSVResults(ratings []schema.PlayerRating, metric string, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"rank", "player_id", "player_name", "position", "nationality", "metric", "value"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			return writeCSVResultsForRate(csvWriter, ratings, metric, fmtFloat)
		})
	}, "Wrote CSV")
}

// writeRateTable generates and writes the human-readable table.
func writeRateTable(ratings []schema.PlayerRating, metric string, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	headers := []string{"Rank", "Player", "Value"}
	if cfg.Detail {
		headers = append(headers, "Pos", "Nat")
	}
	table.Header(headers)

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := GetMaxTableNameWidth(cfg)
	var data [][]string
	for i, r := range ratings {
		row := []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(r.Player.Name, nameWidth),
			fmtFloat(r.Value),
		}
		if cfg.Detail {
			row = append(row, r.Player.Position, r.Player.Nationality)
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing top %d players by %s (minimum %d minutes played)\n", len(ratings), metric, cfg.MinMinutes); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Query completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForRate writes the leaderboard rows in CSV format.
func writeCSVResultsForRate(w *csv.Writer, ratings []schema.PlayerRating, metric string, fmtFloat func(float64) string) error {
	for i, r := range ratings {
		rec := []string{
			strconv.Itoa(i + 1),
			strconv.FormatInt(r.Player.ID, 10),
			r.Player.Name,
			r.Player.Position,
			r.Player.Nationality,
			metric,
			fmtFloat(r.Value),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForRate writes the leaderboard rows in JSON format.
func writeJSONResultsForRate(w io.Writer, ratings []schema.PlayerRating, metric string) error {
	type JSONRateRating struct {
		Rank   int    `json:"rank"`
		Metric string `json:"metric"`
		schema.PlayerRating
	}

	output := make([]JSONRateRating, len(ratings))
	for i, r := range ratings {
		output[i] = JSONRateRating{
			Rank:         i + 1,
			Metric:       metric,
			PlayerRating: r,
		}
	}

	return writeJSON(w, output)
}

// rateSeries shapes a leaderboard as an ordered chart series, one point per
// player in rank order.
func rateSeries(metric string, ratings []schema.PlayerRating) schema.Series {
	s := schema.Series{Name: metric, Points: make([]schema.Point, len(ratings))}
	for i, r := range ratings {
		s.Points[i] = schema.Point{Label: r.Player.Name, Value: r.Value}
	}
	return s
}

// seriesPointsFor flattens an ordered series into the long-form Parquet shape.
func seriesPointsFor(s schema.Series) []parquet.SeriesPoint {
	points := make([]parquet.SeriesPoint, len(s.Points))
	for i, p := range s.Points {
		points[i] = parquet.SeriesPoint{
			SeriesName: s.Name,
			Label:      p.Label,
			Value:      p.Value,
		}
	}
	return points
}
