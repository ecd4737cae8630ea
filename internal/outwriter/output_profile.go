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

// WriteProfileResults outputs a full player profile, dispatching based on the output format configured.
func WriteProfileResults(res schema.ProfileResult, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, res)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeProfileCSVResults(res, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for profiles")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeProfileText(res, cfg, fmtFloat, w)
		}, "Wrote table")
	}
	return nil
}

// writeProfileCSVResults writes the profile as long-form section/name/value rows.
func writeProfileCSVResults(res schema.ProfileResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"section", "name", "value"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			rows := [][]string{
				{"player", "player_id", strconv.FormatInt(res.Profile.Player.ID, 10)},
				{"player", "player_name", res.Profile.Player.Name},
				{"player", "position", res.Profile.Player.Position},
				{"player", "nationality", res.Profile.Player.Nationality},
			}
			for _, cat := range schema.CategoryOrder {
				for _, name := range schema.AttributesByCategory[cat] {
					if v, ok := res.Profile.Attributes.Rating(name); ok {
						rows = append(rows, []string{string(cat), name, fmtFloat(v)})
					}
				}
				if avg, ok := res.Averages[cat]; ok {
					rows = append(rows, []string{string(cat), "average", fmtFloat(avg)})
				}
			}
			if res.Profile.HasStats {
				s := res.Profile.Stats
				rows = append(rows,
					[]string{"stats", "minutes_played", strconv.Itoa(s.MinutesPlayed)},
					[]string{"stats", "matches_played", strconv.Itoa(s.MatchesPlayed)},
					[]string{"stats", "goals", strconv.Itoa(s.Goals)},
					[]string{"stats", "assists", strconv.Itoa(s.Assists)},
					[]string{"stats", "shots", strconv.Itoa(s.Shots)},
					[]string{"stats", "passes", strconv.Itoa(s.Passes)},
					[]string{"stats", "completed_passes", strconv.Itoa(s.CompletedPasses)},
					[]string{"stats", "xg", fmtFloat(s.XG)},
					[]string{"derived", "goals_per90", formatRate(res.Derived.GoalsPer90, fmtFloat)},
					[]string{"derived", "assists_per90", formatRate(res.Derived.AssistsPer90, fmtFloat)},
					[]string{"derived", "shots_per90", formatRate(res.Derived.ShotsPer90, fmtFloat)},
					[]string{"derived", "pass_accuracy", formatRate(res.Derived.PassAccuracy, fmtFloat)},
				)
			}
			for _, rec := range rows {
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeProfileText generates and writes the human-readable profile view.
func writeProfileText(res schema.ProfileResult, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	p := res.Profile.Player
	if _, err := fmt.Fprintf(writer, "%s (id %d)\n", p.Name, p.ID); err != nil {
		return err
	}
	if p.Position != "" || p.Nationality != "" {
		if _, err := fmt.Fprintf(writer, "%s | %s\n", p.Position, p.Nationality); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(writer); err != nil {
		return err
	}

	// One table per category, skipping categories with no stored ratings.
	for _, cat := range schema.CategoryOrder {
		var data [][]string
		for _, name := range schema.AttributesByCategory[cat] {
			v, ok := res.Profile.Attributes.Rating(name)
			if !ok {
				continue
			}
			data = append(data, []string{name, fmtFloat(v), labelFor(cfg, v)})
		}
		if len(data) == 0 {
			continue
		}

		if _, err := fmt.Fprintf(writer, "%s\n", cat); err != nil {
			return err
		}
		table := tablewriter.NewWriter(writer)
		table.Header([]string{"Attribute", "Rating", "Label"})
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
		if avg, ok := res.Averages[cat]; ok {
			if _, err := fmt.Fprintf(writer, "Category average: %s\n", fmtFloat(avg)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(writer); err != nil {
			return err
		}
	}

	if !res.Profile.HasStats {
		_, err := fmt.Fprintln(writer, "No match stats recorded for this player")
		return err
	}

	s := res.Profile.Stats
	if _, err := fmt.Fprintln(writer, "Match stats"); err != nil {
		return err
	}
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Stat", "Value"})
	statRows := [][]string{
		{"Minutes", strconv.Itoa(s.MinutesPlayed)},
		{"Matches", strconv.Itoa(s.MatchesPlayed)},
		{"Goals", strconv.Itoa(s.Goals)},
		{"Assists", strconv.Itoa(s.Assists)},
		{"Shots", strconv.Itoa(s.Shots)},
		{"Passes", strconv.Itoa(s.Passes)},
		{"xG", fmtFloat(s.XG)},
		{"Goals/90", formatRate(res.Derived.GoalsPer90, fmtFloat)},
		{"Assists/90", formatRate(res.Derived.AssistsPer90, fmtFloat)},
		{"Shots/90", formatRate(res.Derived.ShotsPer90, fmtFloat)},
		{"Pass accuracy %", formatRate(res.Derived.PassAccuracy, fmtFloat)},
	}
	if err := table.Bulk(statRows); err != nil {
		return err
	}
	return table.Render()
}
