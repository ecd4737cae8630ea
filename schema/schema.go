// Package schema has configs, models and shared constants for all parts of scout.
package schema

// Player is the identity row for a single player as stored in the players table.
type Player struct {
	ID          int64  `json:"player_id"`
	Name        string `json:"player_name"`
	Position    string `json:"position,omitempty"`
	Nationality string `json:"nationality,omitempty"`
}

// AttributeProfile holds the named skill ratings for one player. Ratings are
// keyed by canonical attribute name (see AttributeColumns) and are nominally
// in [1,20], though CA/PA and the position-specific CAs may exceed that range.
type AttributeProfile struct {
	PlayerID int64              `json:"player_id"`
	Ratings  map[string]float64 `json:"ratings"`
}

// Rating returns the rating for the given canonical attribute name.
// Missing attributes report ok=false and a zero value.
func (ap AttributeProfile) Rating(name string) (float64, bool) {
	v, ok := ap.Ratings[name]
	return v, ok
}

// RatingOrZero returns the rating for name, substituting the zero placeholder
// when the attribute is absent. Used by the chart shaping layer, which must
// not fail on a missing axis.
func (ap AttributeProfile) RatingOrZero(name string) float64 {
	return ap.Ratings[name]
}

// StatRecord holds aggregated raw counters for one player over all stored
// competition windows. Derived rates are never stored; they are computed by
// core/metric at read time.
type StatRecord struct {
	PlayerID        int64   `json:"player_id"`
	MinutesPlayed   int     `json:"minutes_played"`
	MatchesPlayed   int     `json:"matches_played"`
	Goals           int     `json:"goals"`
	Assists         int     `json:"assists"`
	Passes          int     `json:"passes"`
	CompletedPasses int     `json:"completed_passes"`
	Shots           int     `json:"shots"`
	XG              float64 `json:"xg"`
}

// Profile bundles everything the store knows about one player.
// HasStats is false when no player_stats row exists; the zero-value
// StatRecord is then a placeholder, not real data.
type Profile struct {
	Player     Player           `json:"player"`
	Attributes AttributeProfile `json:"attributes"`
	Stats      StatRecord       `json:"stats"`
	HasStats   bool             `json:"has_stats"`
}

// PlayerRating is one row of a topN result: a player paired with the value
// of the ranked attribute. Order within a result slice is significant and
// must be preserved by all downstream writers.
type PlayerRating struct {
	Player Player  `json:"player"`
	Value  float64 `json:"value"`
}

// StatLine pairs a player with their aggregated raw counters, as returned
// by the stat leader query. Rates are derived from it at read time.
type StatLine struct {
	Player Player     `json:"player"`
	Stats  StatRecord `json:"stats"`
}

// ProfileResult is a Profile augmented with the read-time derived values
// that the writers print alongside it.
type ProfileResult struct {
	Profile  Profile                       `json:"profile"`
	Derived  DerivedStats                  `json:"derived"`
	Averages map[AttributeCategory]float64 `json:"category_averages"`
}

// ComparisonResult pairs two full profiles with their derived metrics for
// side-by-side output. Left and Right preserve the order the caller gave.
type ComparisonResult struct {
	Left         Profile      `json:"left"`
	Right        Profile      `json:"right"`
	LeftDerived  DerivedStats `json:"left_derived"`
	RightDerived DerivedStats `json:"right_derived"`
}

// Rate is a derived per-90 or percentage value. Valid is false when the rate
// is undefined (zero denominator); Value is then zero by policy, never
// Inf or NaN.
type Rate struct {
	Value float64 `json:"value"`
	Valid bool    `json:"valid"`
}

// DerivedStats bundles the derived metrics for one StatRecord.
type DerivedStats struct {
	GoalsPer90   Rate `json:"goals_per90"`
	AssistsPer90 Rate `json:"assists_per90"`
	ShotsPer90   Rate `json:"shots_per90"`
	PassAccuracy Rate `json:"pass_accuracy"`
}
