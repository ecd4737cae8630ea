// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/scoutbase/scout/internal/contract"
	"github.com/scoutbase/scout/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteRankings prints topN ranking results using the configured output format.
func (ow *OutWriter) WriteRankings(ratings []schema.PlayerRating, attribute string, cfg *contract.Config, duration time.Duration) error {
	return WriteRankResults(ratings, attribute, cfg, duration)
}

// WriteRateRankings prints rate-metric leaderboard results using the configured output format.
func (ow *OutWriter) WriteRateRankings(ratings []schema.PlayerRating, metric string, cfg *contract.Config, duration time.Duration) error {
	return WriteRateRankResults(ratings, metric, cfg, duration)
}

// WriteSearch prints name search results using the configured output format.
func (ow *OutWriter) WriteSearch(players []schema.Player, query string, cfg *contract.Config) error {
	return WriteSearchResults(players, query, cfg)
}

// WriteProfile prints a full player profile using the configured output format.
func (ow *OutWriter) WriteProfile(result schema.ProfileResult, cfg *contract.Config) error {
	return WriteProfileResults(result, cfg)
}

// WriteComparison prints a two-player comparison using the configured output format.
func (ow *OutWriter) WriteComparison(result schema.ComparisonResult, cfg *contract.Config) error {
	return WriteComparisonResults(result, cfg)
}

// WriteRadar prints radar chart series using the configured output format.
func (ow *OutWriter) WriteRadar(series []schema.RadarSeries, cfg *contract.Config) error {
	return WriteRadarResults(series, cfg)
}

// WriteOverview prints the store overview using the configured output format.
func (ow *OutWriter) WriteOverview(overview schema.StoreOverview, cfg *contract.Config, duration time.Duration) error {
	return WriteOverviewResults(overview, cfg, duration)
}

// WriteHistogram prints an attribute distribution using the configured output format.
func (ow *OutWriter) WriteHistogram(histogram schema.Histogram, cfg *contract.Config) error {
	return WriteHistogramResults(histogram, cfg)
}

// WriteHeatmap prints an attribute correlation grid using the configured output format.
func (ow *OutWriter) WriteHeatmap(grid schema.HeatmapGrid, cfg *contract.Config) error {
	return WriteHeatmapResults(grid, cfg)
}

// WriteMetrics prints metric definitions using the configured output format.
func (ow *OutWriter) WriteMetrics(cfg *contract.Config) error {
	return WriteMetricsDefinitions(cfg)
}

// WriteCacheStatus prints cache status using the configured output format.
func (ow *OutWriter) WriteCacheStatus(status schema.CacheStatus, cfg *contract.Config) error {
	return WriteCacheStatusResults(status, cfg)
}
