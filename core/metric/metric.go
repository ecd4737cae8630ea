// Package metric computes derived performance metrics from raw stored
// counters. Every function is deterministic and side-effect free, and none
// of them ever emits Inf or NaN: an undefined rate is reported through
// schema.Rate.Valid instead.
package metric

import (
	"github.com/scoutbase/scout/internal/contract"
	"github.com/scoutbase/scout/schema"
)

// MinutesPerMatch is the normalization window for counting stats.
const MinutesPerMatch = 90.0

// Per90 converts a raw counter into a per-90-minutes rate.
// The rate is undefined when minutes is zero or negative.
func Per90(count float64, minutes int) schema.Rate {
	if minutes <= 0 {
		return schema.Rate{}
	}
	return schema.Rate{
		Value: count * MinutesPerMatch / float64(minutes),
		Valid: true,
	}
}

// PassAccuracy returns completed/attempted as a percentage, clamped to
// [0,100]. The rate is undefined when no passes were attempted.
func PassAccuracy(completed, attempted int) schema.Rate {
	if attempted <= 0 {
		return schema.Rate{}
	}
	pct := float64(completed) / float64(attempted) * 100
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return schema.Rate{Value: pct, Valid: true}
}

// Derive bundles all derived metrics for one stat record.
func Derive(stats schema.StatRecord) schema.DerivedStats {
	return schema.DerivedStats{
		GoalsPer90:   Per90(float64(stats.Goals), stats.MinutesPlayed),
		AssistsPer90: Per90(float64(stats.Assists), stats.MinutesPlayed),
		ShotsPer90:   Per90(float64(stats.Shots), stats.MinutesPlayed),
		PassAccuracy: PassAccuracy(stats.CompletedPasses, stats.Passes),
	}
}

// RateFor selects the named rate metric from a derived bundle. ok is false
// when the name is not a canonical rate metric.
func RateFor(derived schema.DerivedStats, name string) (schema.Rate, bool) {
	switch name {
	case "goals_per90":
		return derived.GoalsPer90, true
	case "assists_per90":
		return derived.AssistsPer90, true
	case "shots_per90":
		return derived.ShotsPer90, true
	case "pass_accuracy":
		return derived.PassAccuracy, true
	default:
		return schema.Rate{}, false
	}
}

// AverageByCategory returns the mean of the named attributes from attrs.
// Attributes missing from attrs contribute the zero placeholder rather than
// failing, matching the chart shaping contract. An empty name list is a
// ValueError.
func AverageByCategory(attrs map[string]float64, names []string) (float64, error) {
	if len(names) == 0 {
		return 0, &contract.ValueError{Op: "average by category", Detail: "empty attribute list"}
	}
	var sum float64
	for _, name := range names {
		sum += attrs[name]
	}
	return sum / float64(len(names)), nil
}
