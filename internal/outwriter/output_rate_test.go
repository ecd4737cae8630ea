package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/scoutbase/scout/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rateTestRatings returns a small pre-ranked leaderboard.
func rateTestRatings() []schema.PlayerRating {
	return []schema.PlayerRating{
		{Player: schema.Player{ID: 1, Name: "Lionel Messi", Position: "FWD", Nationality: "Argentina"}, Value: 1.0},
		{Player: schema.Player{ID: 2, Name: "Cristiano Ronaldo", Position: "FWD", Nationality: "Portugal"}, Value: 0.9},
	}
}

// TestWriteRateTable tests the human-readable leaderboard table.
func TestWriteRateTable(t *testing.T) {
	var buf bytes.Buffer
	cfg := rankTestConfig()
	cfg.MinMinutes = 500
	fmtFloat, _ := createFormatters(cfg.Precision)

	err := writeRateTable(rateTestRatings(), "goals_per90", cfg, fmtFloat, 5*time.Millisecond, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Lionel Messi")
	assert.Contains(t, out, "1.0")
	assert.Contains(t, out, "Showing top 2 players by goals_per90 (minimum 500 minutes played)")
	assert.Contains(t, out, "Cache backend: none")

	// Rate values have no 1-20 rating label
	assert.NotContains(t, out, "Label")
}

// TestWriteRateJSON tests the JSON leaderboard payload.
func TestWriteRateJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSONResultsForRate(&buf, rateTestRatings(), "goals_per90"))

	var decoded []struct {
		Rank   int           `json:"rank"`
		Metric string        `json:"metric"`
		Player schema.Player `json:"player"`
		Value  float64       `json:"value"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	assert.Equal(t, 1, decoded[0].Rank)
	assert.Equal(t, "goals_per90", decoded[0].Metric)
	assert.Equal(t, "Lionel Messi", decoded[0].Player.Name)
	assert.Equal(t, 1.0, decoded[0].Value)
	assert.Equal(t, 2, decoded[1].Rank)
}

// TestWriteRateCSV tests the CSV leaderboard rows.
func TestWriteRateCSV(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(1)

	header := []string{"rank", "player_id", "player_name", "position", "nationality", "metric", "value"}
	err := writeCSVWithHeader(&buf, header, func(w *csv.Writer) error {
		return writeCSVResultsForRate(w, rateTestRatings(), "goals_per90", fmtFloat)
	})
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, header, records[0])
	assert.Equal(t, []string{"1", "1", "Lionel Messi", "FWD", "Argentina", "goals_per90", "1.0"}, records[1])
	assert.Equal(t, "2", records[2][0])
}

// TestRateSeries tests the ordered series shape for chart output.
func TestRateSeries(t *testing.T) {
	series := rateSeries("goals_per90", rateTestRatings())
	assert.Equal(t, "goals_per90", series.Name)
	require.Len(t, series.Points, 2)

	// Rank order must survive the series conversion end to end
	assert.Equal(t, "Lionel Messi", series.Points[0].Label)
	assert.Equal(t, 1.0, series.Points[0].Value)
	assert.Equal(t, "Cristiano Ronaldo", series.Points[1].Label)

	points := seriesPointsFor(series)
	require.Len(t, points, 2)
	assert.Equal(t, "goals_per90", points[0].SeriesName)
	assert.Equal(t, "Lionel Messi", points[0].Label)
	assert.Equal(t, "Cristiano Ronaldo", points[1].Label)
}
