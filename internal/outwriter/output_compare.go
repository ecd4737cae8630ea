package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/scoutbase/scout/internal/contract"
	"github.com/scoutbase/scout/schema"

	"github.com/olekukonko/tablewriter"
)

// compareRow is one attribute line of a side-by-side comparison.
type compareRow struct {
	Name  string
	Left  string
	Right string
	Edge  string
}

// WriteComparisonResults outputs a two-player comparison, dispatching based on the output format configured.
func WriteComparisonResults(res schema.ComparisonResult, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, res)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeComparisonCSVResults(res, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for comparisons")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeComparisonTable(res, cfg, fmtFloat, w)
		}, "Wrote table")
	}
	return nil
}

// comparisonRows builds attribute rows in category order, then derived rows.
// Attributes missing from both players are skipped.
func comparisonRows(res schema.ComparisonResult, fmtFloat func(float64) string) []compareRow {
	var rows []compareRow
	for _, cat := range schema.CategoryOrder {
		for _, name := range schema.AttributesByCategory[cat] {
			lv, lok := res.Left.Attributes.Rating(name)
			rv, rok := res.Right.Attributes.Rating(name)
			if !lok && !rok {
				continue
			}
			rows = append(rows, compareRow{
				Name:  name,
				Left:  fmtFloat(lv),
				Right: fmtFloat(rv),
				Edge:  edgeFor(res.Left.Player.Name, res.Right.Player.Name, lv, rv),
			})
		}
	}

	if res.Left.HasStats || res.Right.HasStats {
		derived := []struct {
			name        string
			left, right schema.Rate
		}{
			{"goals_per90", res.LeftDerived.GoalsPer90, res.RightDerived.GoalsPer90},
			{"assists_per90", res.LeftDerived.AssistsPer90, res.RightDerived.AssistsPer90},
			{"shots_per90", res.LeftDerived.ShotsPer90, res.RightDerived.ShotsPer90},
			{"pass_accuracy", res.LeftDerived.PassAccuracy, res.RightDerived.PassAccuracy},
		}
		for _, d := range derived {
			edge := "even"
			if d.left.Valid && d.right.Valid {
				edge = edgeFor(res.Left.Player.Name, res.Right.Player.Name, d.left.Value, d.right.Value)
			}
			rows = append(rows, compareRow{
				Name:  d.name,
				Left:  formatRate(d.left, fmtFloat),
				Right: formatRate(d.right, fmtFloat),
				Edge:  edge,
			})
		}
	}
	return rows
}

// edgeFor names the player with the higher value, or "even" on a tie.
func edgeFor(leftName, rightName string, lv, rv float64) string {
	switch {
	case lv > rv:
		return leftName
	case rv > lv:
		return rightName
	default:
		return "even"
	}
}

// writeComparisonCSVResults handles opening the file and calling the CSV writer.
func writeComparisonCSVResults(res schema.ComparisonResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"attribute", res.Left.Player.Name, res.Right.Player.Name, "edge"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, row := range comparisonRows(res, fmtFloat) {
				if err := csvWriter.Write([]string{row.Name, row.Left, row.Right, row.Edge}); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeComparisonTable generates and writes the human-readable table.
func writeComparisonTable(res schema.ComparisonResult, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	nameWidth := GetMaxTableNameWidth(cfg)
	leftName := contract.TruncateName(res.Left.Player.Name, nameWidth)
	rightName := contract.TruncateName(res.Right.Player.Name, nameWidth)

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Attribute", leftName, rightName, "Edge"})

	var data [][]string
	for _, row := range comparisonRows(res, fmtFloat) {
		data = append(data, []string{row.Name, row.Left, row.Right, row.Edge})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Compared %s vs %s\n", res.Left.Player.Name, res.Right.Player.Name)
	return err
}
