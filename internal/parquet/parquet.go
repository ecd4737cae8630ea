// Package parquet provides data structures and functions for exporting scout
// query results to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
)

// RankingRow represents one row of a topN result in columnar form.
type RankingRow struct {
	// Rank is the 1-based position within the result set
	Rank int32 `parquet:"rank,snappy"`

	// PlayerID is the stable identifier from the players table
	PlayerID int64 `parquet:"player_id,snappy"`

	// PlayerName is the display name of the player
	PlayerName string `parquet:"player_name,snappy"`

	// Position is the playing position (nullable)
	Position *string `parquet:"position,optional,snappy"`

	// Nationality is the player's nationality (nullable)
	Nationality *string `parquet:"nationality,optional,snappy"`

	// Attribute is the canonical attribute the ranking was computed on
	Attribute string `parquet:"attribute,snappy"`

	// Value is the attribute value used for ordering
	Value float64 `parquet:"value,snappy"`

	// Label is the plain rating band for Value
	Label string `parquet:"label,snappy"`
}

// PlayerRow represents one player identity row for search exports.
type PlayerRow struct {
	// PlayerID is the stable identifier from the players table
	PlayerID int64 `parquet:"player_id,snappy"`

	// PlayerName is the display name of the player
	PlayerName string `parquet:"player_name,snappy"`

	// Position is the playing position (nullable)
	Position *string `parquet:"position,optional,snappy"`

	// Nationality is the player's nationality (nullable)
	Nationality *string `parquet:"nationality,optional,snappy"`
}

// SeriesPoint represents one labeled value of a chart series in long form.
// Radar axes and histogram bins both flatten into this shape.
type SeriesPoint struct {
	// SeriesName identifies the series the point belongs to
	SeriesName string `parquet:"series_name,snappy"`

	// Label is the axis or bin label for this point
	Label string `parquet:"label,snappy"`

	// Value is the point value
	Value float64 `parquet:"value,snappy"`
}

// WriteRankingRows writes a slice of RankingRow structs to a Parquet file.
func WriteRankingRows(data []RankingRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WritePlayerRows writes a slice of PlayerRow structs to a Parquet file.
func WritePlayerRows(data []PlayerRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteSeriesPoints writes a slice of SeriesPoint structs to a Parquet file.
func WriteSeriesPoints(data []SeriesPoint, outputPath string) error {
	return writeParquet(data, outputPath)
}

// writeParquet creates the output file and streams rows through a generic
// writer whose schema is inferred from the struct tags.
func writeParquet[T any](data []T, outputPath string) error {
	if outputPath == "" {
		return fmt.Errorf("parquet output requires an output file path")
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// OptionalString converts a possibly-empty string into a nullable parquet value.
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
