package core

import (
	"context"
	"testing"

	"github.com/scoutbase/scout/internal/contract"
	"github.com/scoutbase/scout/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// statLine builds one aggregated counter row for leaderboard tests.
func statLine(id int64, name string, minutes, goals, passes, completed int) schema.StatLine {
	return schema.StatLine{
		Player: schema.Player{ID: id, Name: name},
		Stats: schema.StatRecord{
			PlayerID:        id,
			MinutesPlayed:   minutes,
			Goals:           goals,
			Passes:          passes,
			CompletedPasses: completed,
		},
	}
}

// TestRateLeaderboard tests derivation, ranking and filtering of rate
// leaderboards.
func TestRateLeaderboard(t *testing.T) {
	lines := []schema.StatLine{
		statLine(1, "Lionel Messi", 1800, 20, 1000, 850),
		statLine(2, "Cristiano Ronaldo", 1800, 18, 800, 640),
		statLine(3, "Luka Modric", 1700, 2, 1500, 1380),
	}

	t.Run("ranks goals per 90 descending", func(t *testing.T) {
		ranked := rateLeaderboard(lines, "goals_per90", 10)
		require.Len(t, ranked, 3)
		assert.Equal(t, "Lionel Messi", ranked[0].Player.Name)
		assert.InDelta(t, 1.0, ranked[0].Value, 1e-9)
		assert.Equal(t, "Cristiano Ronaldo", ranked[1].Player.Name)
		assert.InDelta(t, 0.9, ranked[1].Value, 1e-9)
		assert.Equal(t, "Luka Modric", ranked[2].Player.Name)
	})

	t.Run("ranks pass accuracy descending", func(t *testing.T) {
		ranked := rateLeaderboard(lines, "pass_accuracy", 10)
		require.Len(t, ranked, 3)
		assert.Equal(t, "Luka Modric", ranked[0].Player.Name)
		assert.InDelta(t, 92.0, ranked[0].Value, 1e-9)
	})

	t.Run("truncates to the limit", func(t *testing.T) {
		ranked := rateLeaderboard(lines, "goals_per90", 2)
		require.Len(t, ranked, 2)
		assert.Equal(t, "Lionel Messi", ranked[0].Player.Name)
	})

	t.Run("drops players with undefined rates", func(t *testing.T) {
		withZero := append(lines, statLine(4, "Never Played", 0, 0, 0, 0))
		ranked := rateLeaderboard(withZero, "goals_per90", 10)
		assert.Len(t, ranked, 3)
		for _, r := range ranked {
			assert.NotEqual(t, "Never Played", r.Player.Name)
		}
	})

	t.Run("unknown metric yields an empty leaderboard", func(t *testing.T) {
		assert.Empty(t, rateLeaderboard(lines, "charisma_per90", 10))
	})
}

// TestGetTopRateResults tests metric validation before any store access.
func TestGetTopRateResults(t *testing.T) {
	t.Run("unknown metric fails without touching the store", func(t *testing.T) {
		_, _, err := GetTopRateResults(context.Background(), &contract.Config{}, nil, "charisma_per90")
		require.Error(t, err)
		assert.True(t, contract.IsNotFound(err))
		assert.Contains(t, err.Error(), "charisma_per90")
	})

	t.Run("rate metric names route through the shared top entry point", func(t *testing.T) {
		_, _, err := GetTopResults(context.Background(), &contract.Config{}, nil, "GOALS_PER90")
		// The name resolves as a rate metric, so the failure comes from the
		// unconfigured store rather than attribute lookup.
		require.Error(t, err)
		assert.False(t, contract.IsNotFound(err))
	})
}
