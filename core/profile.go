package core

import (
	"context"

	"github.com/scoutbase/scout/core/metric"
	"github.com/scoutbase/scout/internal/contract"
	"github.com/scoutbase/scout/internal/outwriter"
	"github.com/scoutbase/scout/schema"
)

// GetProfileResult resolves one player by id or exact name and builds the
// full profile with derived values. Shared by the CLI and the MCP server.
func GetProfileResult(ctx context.Context, cfg *contract.Config, ref string) (schema.ProfileResult, error) {
	store, err := openStore(cfg)
	if err != nil {
		return schema.ProfileResult{}, err
	}
	defer func() { _ = store.Close() }()

	profile, err := resolveProfile(ctx, store, ref)
	if err != nil {
		return schema.ProfileResult{}, err
	}
	return buildProfileResult(profile), nil
}

// GetCompareResult resolves both players and builds the side-by-side result.
func GetCompareResult(ctx context.Context, cfg *contract.Config, refA, refB string) (schema.ComparisonResult, error) {
	var result schema.ComparisonResult

	store, err := openStore(cfg)
	if err != nil {
		return result, err
	}
	defer func() { _ = store.Close() }()

	playerA, err := store.ResolvePlayer(ctx, refA)
	if err != nil {
		return result, err
	}
	playerB, err := store.ResolvePlayer(ctx, refB)
	if err != nil {
		return result, err
	}

	pair, err := store.Compare(ctx, playerA.ID, playerB.ID)
	if err != nil {
		return result, err
	}
	result = schema.ComparisonResult{
		Left:         pair[0],
		Right:        pair[1],
		LeftDerived:  metric.Derive(pair[0].Stats),
		RightDerived: metric.Derive(pair[1].Stats),
	}
	return result, nil
}

// ExecuteScoutProfile prints the full profile for one player, resolved by
// id or exact name.
func ExecuteScoutProfile(ctx context.Context, cfg *contract.Config, ref string) error {
	result, err := GetProfileResult(ctx, cfg, ref)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteProfile(result, cfg)
}

// ExecuteScoutCompare prints a side-by-side comparison of two players.
func ExecuteScoutCompare(ctx context.Context, cfg *contract.Config, refA, refB string) error {
	result, err := GetCompareResult(ctx, cfg, refA, refB)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteComparison(result, cfg)
}

// ExecuteScoutRadar prints radar chart series for one or more players over
// the fixed axis set.
func ExecuteScoutRadar(ctx context.Context, cfg *contract.Config, refs []string) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	series := make([]schema.RadarSeries, 0, len(refs))
	for _, ref := range refs {
		profile, err := resolveProfile(ctx, store, ref)
		if err != nil {
			return err
		}
		series = append(series, RadarFor(profile))
	}
	return outwriter.NewOutWriter().WriteRadar(series, cfg)
}

// resolveProfile resolves a name-or-id reference and fetches its profile.
func resolveProfile(ctx context.Context, store contract.PlayerStore, ref string) (schema.Profile, error) {
	player, err := store.ResolvePlayer(ctx, ref)
	if err != nil {
		return schema.Profile{}, err
	}
	return store.GetProfile(ctx, player.ID)
}

// buildProfileResult augments a stored profile with derived metrics and
// per-category averages.
func buildProfileResult(profile schema.Profile) schema.ProfileResult {
	averages := make(map[schema.AttributeCategory]float64, len(schema.CategoryOrder))
	for _, cat := range schema.CategoryOrder {
		if cat == schema.OverallCategory {
			continue // CA/PA are aggregates, not skill ratings
		}
		avg, err := metric.AverageByCategory(profile.Attributes.Ratings, schema.AttributesByCategory[cat])
		if err != nil {
			continue
		}
		averages[cat] = avg
	}
	return schema.ProfileResult{
		Profile:  profile,
		Derived:  metric.Derive(profile.Stats),
		Averages: averages,
	}
}

// RadarFor shapes one profile into the fixed radar axis set. Axis order is
// stable across invocations; missing attributes read as the zero placeholder.
func RadarFor(profile schema.Profile) schema.RadarSeries {
	axes := make([]string, len(schema.RadarAxes))
	values := make([]float64, len(schema.RadarAxes))
	copy(axes, schema.RadarAxes)
	for i, axis := range schema.RadarAxes {
		values[i] = profile.Attributes.RatingOrZero(axis)
	}
	return schema.RadarSeries{
		Name:   profile.Player.Name,
		Axes:   axes,
		Values: values,
	}
}
