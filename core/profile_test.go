package core

import (
	"testing"

	"github.com/scoutbase/scout/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRadarFor tests radar shaping over the fixed axis set.
func TestRadarFor(t *testing.T) {
	profile := schema.Profile{
		Player: schema.Player{ID: 1, Name: "Lionel Messi"},
		Attributes: schema.AttributeProfile{
			PlayerID: 1,
			Ratings:  map[string]float64{"passing": 19, "vision": 18},
		},
	}

	series := RadarFor(profile)
	assert.Equal(t, "Lionel Messi", series.Name)
	assert.Equal(t, schema.RadarAxes, series.Axes)
	require.Len(t, series.Values, len(schema.RadarAxes))

	for i, axis := range series.Axes {
		switch axis {
		case "passing":
			assert.Equal(t, 19.0, series.Values[i])
		case "vision":
			assert.Equal(t, 18.0, series.Values[i])
		default:
			assert.Equal(t, 0.0, series.Values[i])
		}
	}
}

// TestBuildProfileResult tests derived metrics and category averages.
func TestBuildProfileResult(t *testing.T) {
	ratings := make(map[string]float64)
	for _, name := range schema.AttributesByCategory[schema.TechnicalCategory] {
		ratings[name] = 10
	}

	profile := schema.Profile{
		Player:     schema.Player{ID: 1, Name: "Lionel Messi"},
		Attributes: schema.AttributeProfile{PlayerID: 1, Ratings: ratings},
		Stats: schema.StatRecord{
			MinutesPlayed:   900,
			Goals:           9,
			Passes:          100,
			CompletedPasses: 85,
		},
		HasStats: true,
	}

	result := buildProfileResult(profile)

	t.Run("category averages skip overall aggregates", func(t *testing.T) {
		_, hasOverall := result.Averages[schema.OverallCategory]
		assert.False(t, hasOverall)
		assert.Len(t, result.Averages, len(schema.CategoryOrder)-1)
		assert.InDelta(t, 10.0, result.Averages[schema.TechnicalCategory], 1e-9)
		assert.Equal(t, 0.0, result.Averages[schema.PhysicalCategory])
	})

	t.Run("derived rates come from the stat record", func(t *testing.T) {
		require.True(t, result.Derived.GoalsPer90.Valid)
		assert.InDelta(t, 0.9, result.Derived.GoalsPer90.Value, 1e-9)
		require.True(t, result.Derived.PassAccuracy.Valid)
		assert.InDelta(t, 85.0, result.Derived.PassAccuracy.Value, 1e-9)
	})
}
