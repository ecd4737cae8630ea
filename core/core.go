// Package core has core logic for queries, metric derivation and chart shaping.
package core

import (
	"context"
	"time"

	"github.com/scoutbase/scout/core/algo"
	"github.com/scoutbase/scout/core/metric"
	"github.com/scoutbase/scout/internal/contract"
	"github.com/scoutbase/scout/internal/outwriter"
	"github.com/scoutbase/scout/internal/playerdb"
	"github.com/scoutbase/scout/schema"
)

// ExecutorFunc defines the function signature for executing different query modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error

// openStore connects to the configured stats store.
func openStore(cfg *contract.Config) (*playerdb.Store, error) {
	return playerdb.Open(cfg.StoreBackend, cfg.StoreConnect)
}

// GetTopResults runs the memoized topN query and ranks the outcome.
// This is the data entry point shared by the CLI and the MCP server.
// Rate metric names (see schema.RateMetrics) route to the rate leaderboard.
func GetTopResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager, attribute string) ([]schema.PlayerRating, string, error) {
	if _, ok := schema.CanonicalRateMetric(attribute); ok {
		return GetTopRateResults(ctx, cfg, mgr, attribute)
	}

	canon, ok := schema.CanonicalAttribute(attribute)
	if !ok {
		return nil, "", &contract.NotFoundError{Kind: "attribute", Key: attribute}
	}

	store, err := openStore(cfg)
	if err != nil {
		return nil, canon, err
	}
	defer func() { _ = store.Close() }()

	ratings, err := cachedTopN(ctx, cfg, store, mgr, canon)
	if err != nil {
		return nil, canon, err
	}
	return algo.RankRatings(ratings, cfg.ResultLimit), canon, nil
}

// GetTopRateResults ranks players by a derived rate metric. Counters are
// aggregated per player, only players past the configured minutes-played
// threshold are eligible, and the rate is derived at read time.
func GetTopRateResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager, metricName string) ([]schema.PlayerRating, string, error) {
	canon, ok := schema.CanonicalRateMetric(metricName)
	if !ok {
		return nil, "", &contract.NotFoundError{Kind: "metric", Key: metricName}
	}

	store, err := openStore(cfg)
	if err != nil {
		return nil, canon, err
	}
	defer func() { _ = store.Close() }()

	lines, err := cachedStatLeaders(ctx, cfg, store, mgr)
	if err != nil {
		return nil, canon, err
	}
	return rateLeaderboard(lines, canon, cfg.ResultLimit), canon, nil
}

// rateLeaderboard derives the named rate for every stat line and ranks the
// outcome. Players whose rate is undefined are dropped rather than ranked
// at zero.
func rateLeaderboard(lines []schema.StatLine, canon string, limit int) []schema.PlayerRating {
	var ratings []schema.PlayerRating
	for _, line := range lines {
		rate, ok := metric.RateFor(metric.Derive(line.Stats), canon)
		if !ok || !rate.Valid {
			continue
		}
		ratings = append(ratings, schema.PlayerRating{Player: line.Player, Value: rate.Value})
	}
	return algo.RankRatings(ratings, limit)
}

// GetSearchResults runs the memoized name search.
func GetSearchResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager, query string) ([]schema.Player, error) {
	store, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	defer func() { _ = store.Close() }()

	return cachedSearch(ctx, cfg, store, mgr, query)
}

// GetOverviewResults runs the memoized store overview.
func GetOverviewResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (schema.StoreOverview, error) {
	store, err := openStore(cfg)
	if err != nil {
		return schema.StoreOverview{}, err
	}
	defer func() { _ = store.Close() }()

	return cachedOverview(ctx, cfg, store, mgr)
}

// ExecuteScoutTop ranks players by one attribute or rate metric and prints
// the results. It serves as the main entry point for the 'top' command.
func ExecuteScoutTop(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()
	if _, ok := schema.CanonicalRateMetric(cfg.Attribute); ok {
		ranked, canon, err := GetTopRateResults(ctx, cfg, mgr, cfg.Attribute)
		if err != nil {
			return err
		}
		return outwriter.NewOutWriter().WriteRateRankings(ranked, canon, cfg, time.Since(start))
	}

	ranked, canon, err := GetTopResults(ctx, cfg, mgr, cfg.Attribute)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteRankings(ranked, canon, cfg, time.Since(start))
}

// ExecuteScoutSearch finds players by partial name and prints the results.
func ExecuteScoutSearch(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager, query string) error {
	players, err := GetSearchResults(ctx, cfg, mgr, query)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteSearch(players, query, cfg)
}

// ExecuteScoutOverview summarizes the stats store contents.
func ExecuteScoutOverview(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()
	overview, err := GetOverviewResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteOverview(overview, cfg, duration)
}

// ExecuteScoutMetrics prints the derived metric reference. It needs no store.
func ExecuteScoutMetrics(cfg *contract.Config) error {
	return outwriter.NewOutWriter().WriteMetrics(cfg)
}
