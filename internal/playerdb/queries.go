package playerdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/scoutbase/scout/internal/contract"
	"github.com/scoutbase/scout/schema"
)

// TopN returns up to n players ordered descending by the named attribute.
// Ties keep ascending player id, matching the stored original order, so the
// result is stable under repeated calls with unchanged data.
func (s *Store) TopN(ctx context.Context, attribute string, n int) ([]schema.PlayerRating, error) {
	col, ok := schema.CanonicalAttribute(attribute)
	if !ok {
		return nil, &contract.NotFoundError{Kind: "attribute", Key: attribute}
	}
	if n < 1 {
		n = 1
	}
	if n > contract.MaxResultLimit {
		n = contract.MaxResultLimit
	}

	query := fmt.Sprintf(`
		SELECT p.player_id, p.player_name, p.position, p.nationality, pa.%s
		FROM player_attributes pa
		JOIN players p ON pa.player_id = p.player_id
		ORDER BY pa.%s DESC, pa.player_id ASC
		LIMIT %s`, s.quoteIdent(col), s.quoteIdent(col), s.placeholder(1))

	rows, err := s.db.QueryContext(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("top %d by %s: %w", n, col, err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.PlayerRating
	for rows.Next() {
		var r schema.PlayerRating
		var position, nationality sql.NullString
		var value sql.NullFloat64
		if err := rows.Scan(&r.Player.ID, &r.Player.Name, &position, &nationality, &value); err != nil {
			return nil, fmt.Errorf("top %d by %s: %w", n, col, err)
		}
		r.Player.Position = position.String
		r.Player.Nationality = nationality.String
		r.Value = value.Float64
		results = append(results, r)
	}
	return results, rows.Err()
}

// SearchByName returns players whose name contains substring,
// case-insensitive, ordered by CA descending. No match is an empty slice,
// not an error.
func (s *Store) SearchByName(ctx context.Context, substring string) ([]schema.Player, error) {
	query := fmt.Sprintf(`
		SELECT p.player_id, p.player_name, p.position, p.nationality
		FROM players p
		LEFT JOIN player_attributes pa ON pa.player_id = p.player_id
		WHERE LOWER(p.player_name) LIKE %s
		ORDER BY COALESCE(pa.%s, 0) DESC, p.player_id ASC`,
		s.placeholder(1), s.quoteIdent("CA"))

	pattern := "%" + strings.ToLower(substring) + "%"
	rows, err := s.db.QueryContext(ctx, query, pattern)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", substring, err)
	}
	defer func() { _ = rows.Close() }()

	players := []schema.Player{}
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("search %q: %w", substring, err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// GetProfile returns the full profile for one player id. A missing stats row
// is reported through Profile.HasStats rather than an error; a missing player
// is a NotFoundError.
func (s *Store) GetProfile(ctx context.Context, playerID int64) (schema.Profile, error) {
	var profile schema.Profile

	player, err := s.getPlayer(ctx, playerID)
	if err != nil {
		return profile, err
	}
	profile.Player = player

	profile.Attributes, err = s.getAttributes(ctx, playerID)
	if err != nil {
		return profile, err
	}

	profile.Stats, profile.HasStats, err = s.getStats(ctx, playerID)
	if err != nil {
		return profile, err
	}
	return profile, nil
}

// Compare returns both full profiles in argument order. Compare(a,b) and
// Compare(b,a) return the same profiles swapped.
func (s *Store) Compare(ctx context.Context, playerIDA, playerIDB int64) ([2]schema.Profile, error) {
	var pair [2]schema.Profile
	a, err := s.GetProfile(ctx, playerIDA)
	if err != nil {
		return pair, err
	}
	b, err := s.GetProfile(ctx, playerIDB)
	if err != nil {
		return pair, err
	}
	pair[0], pair[1] = a, b
	return pair, nil
}

// ResolvePlayer resolves an exact numeric id or a unique case-insensitive
// name match to a player row.
func (s *Store) ResolvePlayer(ctx context.Context, nameOrID string) (schema.Player, error) {
	trimmed := strings.TrimSpace(nameOrID)
	if id, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return s.getPlayer(ctx, id)
	}

	query := fmt.Sprintf(`
		SELECT player_id, player_name, position, nationality
		FROM players
		WHERE LOWER(player_name) = %s
		ORDER BY player_id ASC`, s.placeholder(1))

	rows, err := s.db.QueryContext(ctx, query, strings.ToLower(trimmed))
	if err != nil {
		return schema.Player{}, fmt.Errorf("resolve %q: %w", trimmed, err)
	}
	defer func() { _ = rows.Close() }()

	var matches []schema.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return schema.Player{}, fmt.Errorf("resolve %q: %w", trimmed, err)
		}
		matches = append(matches, p)
	}
	if err := rows.Err(); err != nil {
		return schema.Player{}, err
	}

	switch len(matches) {
	case 0:
		return schema.Player{}, &contract.NotFoundError{Kind: "player", Key: trimmed}
	case 1:
		return matches[0], nil
	default:
		return schema.Player{}, fmt.Errorf("player name %q is ambiguous (%d matches); use a player id", trimmed, len(matches))
	}
}

// StatLeaders aggregates raw counters per player across all stored
// competition windows, keeping only players with at least minMinutes minutes
// played. Results are in stored player order; the caller derives and ranks
// rate metrics.
func (s *Store) StatLeaders(ctx context.Context, minMinutes int) ([]schema.StatLine, error) {
	if minMinutes < 0 {
		minMinutes = 0
	}

	query := fmt.Sprintf(`
		SELECT p.player_id, p.player_name, p.position, p.nationality,
			COALESCE(SUM(ps.minutes_played), 0), COALESCE(SUM(ps.matches_played), 0),
			COALESCE(SUM(ps.goals), 0), COALESCE(SUM(ps.assists), 0),
			COALESCE(SUM(ps.passes), 0), COALESCE(SUM(ps.completed_passes), 0),
			COALESCE(SUM(ps.shots), 0), COALESCE(SUM(ps.xg), 0)
		FROM player_stats ps
		JOIN players p ON ps.player_id = p.player_id
		GROUP BY p.player_id, p.player_name, p.position, p.nationality
		HAVING SUM(ps.minutes_played) >= %s
		ORDER BY p.player_id ASC`, s.placeholder(1))

	rows, err := s.db.QueryContext(ctx, query, minMinutes)
	if err != nil {
		return nil, fmt.Errorf("stat leaders (min %d minutes): %w", minMinutes, err)
	}
	defer func() { _ = rows.Close() }()

	var lines []schema.StatLine
	for rows.Next() {
		var line schema.StatLine
		var position, nationality sql.NullString
		if err := rows.Scan(&line.Player.ID, &line.Player.Name, &position, &nationality,
			&line.Stats.MinutesPlayed, &line.Stats.MatchesPlayed,
			&line.Stats.Goals, &line.Stats.Assists,
			&line.Stats.Passes, &line.Stats.CompletedPasses,
			&line.Stats.Shots, &line.Stats.XG); err != nil {
			return nil, fmt.Errorf("stat leaders (min %d minutes): %w", minMinutes, err)
		}
		line.Player.Position = position.String
		line.Player.Nationality = nationality.String
		line.Stats.PlayerID = line.Player.ID
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

// AttributeValues returns the named attribute for every player in stored
// order, for distribution and correlation shaping.
func (s *Store) AttributeValues(ctx context.Context, attribute string) ([]float64, error) {
	col, ok := schema.CanonicalAttribute(attribute)
	if !ok {
		return nil, &contract.NotFoundError{Kind: "attribute", Key: attribute}
	}

	query := fmt.Sprintf(`SELECT COALESCE(%s, 0) FROM player_attributes ORDER BY player_id ASC`, s.quoteIdent(col))
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("values of %s: %w", col, err)
	}
	defer func() { _ = rows.Close() }()

	var values []float64
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("values of %s: %w", col, err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// Overview summarizes row counts per required table and average CA grouped
// by position.
func (s *Store) Overview(ctx context.Context) (schema.StoreOverview, error) {
	overview := schema.StoreOverview{TableCounts: make(map[string]int64)}

	for _, table := range requiredTables {
		var count int64
		row := s.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", s.quoteIdent(table)))
		if err := row.Scan(&count); err != nil {
			return overview, fmt.Errorf("count %s: %w", table, err)
		}
		overview.TableCounts[table] = count
	}

	query := fmt.Sprintf(`
		SELECT COALESCE(p.position, 'Unknown'), AVG(pa.%s), COUNT(*)
		FROM player_attributes pa
		JOIN players p ON pa.player_id = p.player_id
		GROUP BY COALESCE(p.position, 'Unknown')
		ORDER BY AVG(pa.%s) DESC`, s.quoteIdent("CA"), s.quoteIdent("CA"))

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return overview, fmt.Errorf("position averages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var pa schema.PositionAverage
		var avg sql.NullFloat64
		if err := rows.Scan(&pa.Position, &avg, &pa.Players); err != nil {
			return overview, fmt.Errorf("position averages: %w", err)
		}
		pa.AverageCA = avg.Float64
		overview.PositionAverages = append(overview.PositionAverages, pa)
	}
	return overview, rows.Err()
}

// getPlayer fetches one players row, translating sql.ErrNoRows into the
// domain NotFoundError.
func (s *Store) getPlayer(ctx context.Context, playerID int64) (schema.Player, error) {
	query := fmt.Sprintf(`
		SELECT player_id, player_name, position, nationality
		FROM players WHERE player_id = %s`, s.placeholder(1))

	var p schema.Player
	var position, nationality sql.NullString
	row := s.db.QueryRowContext(ctx, query, playerID)
	if err := row.Scan(&p.ID, &p.Name, &position, &nationality); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return p, &contract.NotFoundError{Kind: "player", Key: strconv.FormatInt(playerID, 10)}
		}
		return p, fmt.Errorf("get player %d: %w", playerID, err)
	}
	p.Position = position.String
	p.Nationality = nationality.String
	return p, nil
}

// getAttributes fetches the attribute profile for one player. A player
// without an attributes row yields an empty rating map; downstream shaping
// substitutes the zero placeholder per axis.
func (s *Store) getAttributes(ctx context.Context, playerID int64) (schema.AttributeProfile, error) {
	profile := schema.AttributeProfile{
		PlayerID: playerID,
		Ratings:  make(map[string]float64),
	}

	names := schema.AllAttributes()
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = s.quoteIdent(name)
	}
	query := fmt.Sprintf(`SELECT %s FROM player_attributes WHERE player_id = %s`,
		strings.Join(quoted, ", "), s.placeholder(1))

	values := make([]sql.NullFloat64, len(names))
	dests := make([]any, len(names))
	for i := range values {
		dests[i] = &values[i]
	}

	row := s.db.QueryRowContext(ctx, query, playerID)
	if err := row.Scan(dests...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return profile, nil
		}
		return profile, fmt.Errorf("get attributes for %d: %w", playerID, err)
	}

	for i, name := range names {
		if values[i].Valid {
			profile.Ratings[name] = values[i].Float64
		}
	}
	return profile, nil
}

// getStats aggregates raw counters across all stored competition windows
// into a single record. hasStats is false when no rows exist.
func (s *Store) getStats(ctx context.Context, playerID int64) (schema.StatRecord, bool, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*),
			COALESCE(SUM(minutes_played), 0), COALESCE(SUM(matches_played), 0),
			COALESCE(SUM(goals), 0), COALESCE(SUM(assists), 0),
			COALESCE(SUM(passes), 0), COALESCE(SUM(completed_passes), 0),
			COALESCE(SUM(shots), 0), COALESCE(SUM(xg), 0)
		FROM player_stats WHERE player_id = %s`, s.placeholder(1))

	stats := schema.StatRecord{PlayerID: playerID}
	var rowCount int
	row := s.db.QueryRowContext(ctx, query, playerID)
	if err := row.Scan(&rowCount,
		&stats.MinutesPlayed, &stats.MatchesPlayed,
		&stats.Goals, &stats.Assists,
		&stats.Passes, &stats.CompletedPasses,
		&stats.Shots, &stats.XG); err != nil {
		return stats, false, fmt.Errorf("get stats for %d: %w", playerID, err)
	}
	return stats, rowCount > 0, nil
}

// scanPlayer scans one players row with nullable position/nationality.
func scanPlayer(rows *sql.Rows) (schema.Player, error) {
	var p schema.Player
	var position, nationality sql.NullString
	if err := rows.Scan(&p.ID, &p.Name, &position, &nationality); err != nil {
		return p, err
	}
	p.Position = position.String
	p.Nationality = nationality.String
	return p, nil
}
