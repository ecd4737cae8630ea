package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCanonicalAttribute tests attribute name resolution.
func TestCanonicalAttribute(t *testing.T) {
	t.Run("lowercase name resolves", func(t *testing.T) {
		canon, ok := CanonicalAttribute("passing")
		assert.True(t, ok)
		assert.Equal(t, "passing", canon)
	})

	t.Run("case and whitespace are ignored", func(t *testing.T) {
		canon, ok := CanonicalAttribute("  ca ")
		assert.True(t, ok)
		assert.Equal(t, "CA", canon)

		canon, ok = CanonicalAttribute("Ca_Gk")
		assert.True(t, ok)
		assert.Equal(t, "CA_GK", canon)
	})

	t.Run("unknown attribute fails", func(t *testing.T) {
		_, ok := CanonicalAttribute("charisma")
		assert.False(t, ok)
	})
}

// TestCanonicalRateMetric tests rate metric name resolution.
func TestCanonicalRateMetric(t *testing.T) {
	t.Run("lowercase name resolves", func(t *testing.T) {
		canon, ok := CanonicalRateMetric("goals_per90")
		assert.True(t, ok)
		assert.Equal(t, "goals_per90", canon)
	})

	t.Run("case and whitespace are ignored", func(t *testing.T) {
		canon, ok := CanonicalRateMetric("  PASS_ACCURACY ")
		assert.True(t, ok)
		assert.Equal(t, "pass_accuracy", canon)
	})

	t.Run("unknown metric fails", func(t *testing.T) {
		_, ok := CanonicalRateMetric("charisma_per90")
		assert.False(t, ok)
	})

	t.Run("metric names never collide with attributes", func(t *testing.T) {
		for _, name := range RateMetrics {
			_, ok := CanonicalAttribute(name)
			assert.False(t, ok, "rate metric %s must not shadow an attribute", name)
		}
	})
}

// TestAllAttributes tests the attribute registry contents.
func TestAllAttributes(t *testing.T) {
	names := AllAttributes()
	assert.Contains(t, names, "passing")
	assert.Contains(t, names, "goalkeeping")
	assert.Contains(t, names, "CA")

	seen := make(map[string]bool)
	for _, n := range names {
		assert.False(t, seen[n], "duplicate attribute %s", n)
		seen[n] = true
	}
}

// TestRadarAxes tests that every radar axis is a known attribute.
func TestRadarAxes(t *testing.T) {
	assert.Len(t, RadarAxes, 10)
	for _, axis := range RadarAxes {
		canon, ok := CanonicalAttribute(axis)
		assert.True(t, ok, "axis %s must be a known attribute", axis)
		assert.Equal(t, axis, canon)
	}
}

// TestAttributeProfile tests rating lookups.
func TestAttributeProfile(t *testing.T) {
	profile := AttributeProfile{
		PlayerID: 7,
		Ratings:  map[string]float64{"pace": 14},
	}

	t.Run("present attribute", func(t *testing.T) {
		v, ok := profile.Rating("pace")
		assert.True(t, ok)
		assert.Equal(t, 14.0, v)
		assert.Equal(t, 14.0, profile.RatingOrZero("pace"))
	})

	t.Run("missing attribute", func(t *testing.T) {
		_, ok := profile.Rating("vision")
		assert.False(t, ok)
		assert.Equal(t, 0.0, profile.RatingOrZero("vision"))
	})
}
