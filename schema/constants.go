package schema

import "strings"

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the stats store
	// and the cache store.
	DatabaseBackend string

	// AttributeCategory groups related attributes for category averages
	// and profile printing.
	AttributeCategory string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All database backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none" // cache only
)

// All attribute categories supported.
const (
	TechnicalCategory   AttributeCategory = "technical"
	PhysicalCategory    AttributeCategory = "physical"
	MentalCategory      AttributeCategory = "mental"
	DefensiveCategory   AttributeCategory = "defensive"
	GoalkeepingCategory AttributeCategory = "goalkeeping"
	OverallCategory     AttributeCategory = "overall"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidStoreBackends lists the backends the stats store accepts.
var ValidStoreBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
}

// ValidCacheBackends lists the backends the cache store accepts.
var ValidCacheBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// AttributesByCategory maps each category to its canonical attribute names,
// in display order. The names double as the column names in the
// player_attributes table; nothing else may be interpolated into SQL.
var AttributesByCategory = map[AttributeCategory][]string{
	TechnicalCategory:   {"passing", "shooting", "dribbling", "first_touch", "crossing", "finishing", "long_shots"},
	PhysicalCategory:    {"pace", "acceleration", "stamina", "strength", "jumping_reach"},
	MentalCategory:      {"positioning", "vision", "composure", "concentration", "decisions", "leadership"},
	DefensiveCategory:   {"tackling", "marking", "heading"},
	GoalkeepingCategory: {"goalkeeping", "reflexes", "handling", "kicking"},
	OverallCategory:     {"CA", "PA", "CA_GK", "CA_DEF", "CA_MID", "CA_FWD"},
}

// CategoryOrder fixes the display order of categories in profile output.
var CategoryOrder = []AttributeCategory{
	TechnicalCategory,
	PhysicalCategory,
	MentalCategory,
	DefensiveCategory,
	GoalkeepingCategory,
	OverallCategory,
}

// RadarAxes is the fixed, ordered axis set for radar chart shaping.
// The order is part of the output contract and must not change between
// invocations.
var RadarAxes = []string{
	"passing", "shooting", "dribbling", "pace", "stamina",
	"positioning", "tackling", "goalkeeping", "vision", "composure",
}

// RatingScaleMax is the nominal upper bound of a skill rating.
// CA/PA values are not bounded by it.
const RatingScaleMax = 20.0

// RateMetrics lists the derived rate metrics available for leaderboards.
// Rates are computed from aggregated raw counters at read time; rankings
// over them only consider players past the minutes-played threshold.
var RateMetrics = []string{
	"goals_per90", "assists_per90", "shots_per90", "pass_accuracy",
}

// rateMetricIndex maps the lowercase form of every rate metric name to its
// canonical spelling.
var rateMetricIndex = buildRateMetricIndex()

func buildRateMetricIndex() map[string]string {
	idx := make(map[string]string)
	for _, name := range RateMetrics {
		idx[strings.ToLower(name)] = name
	}
	return idx
}

// CanonicalRateMetric resolves a user-supplied rate metric name to its
// canonical spelling. ok is false when the metric is unknown.
func CanonicalRateMetric(name string) (string, bool) {
	canon, ok := rateMetricIndex[strings.ToLower(strings.TrimSpace(name))]
	return canon, ok
}

// AllAttributes returns every canonical attribute name in category order.
func AllAttributes() []string {
	var names []string
	for _, cat := range CategoryOrder {
		names = append(names, AttributesByCategory[cat]...)
	}
	return names
}

// attributeIndex maps the lowercase form of every attribute name to its
// canonical spelling, so lookups accept "ca" and "CA" alike.
var attributeIndex = buildAttributeIndex()

func buildAttributeIndex() map[string]string {
	idx := make(map[string]string)
	for _, name := range AllAttributes() {
		idx[strings.ToLower(name)] = name
	}
	return idx
}

// CanonicalAttribute resolves a user-supplied attribute name to its canonical
// column name. ok is false when the attribute is unknown.
func CanonicalAttribute(name string) (string, bool) {
	canon, ok := attributeIndex[strings.ToLower(strings.TrimSpace(name))]
	return canon, ok
}
