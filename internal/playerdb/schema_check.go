package playerdb

import (
	"fmt"

	"github.com/scoutbase/scout/internal/contract"
	"github.com/scoutbase/scout/schema"
)

// requiredColumns lists, per table, every column this package reads.
// Missing entries surface as SchemaError at open time instead of failing
// mid-query with an opaque driver error.
var requiredColumns = map[string][]string{
	"players": {
		"player_id", "player_name", "position", "nationality",
	},
	"player_attributes": append([]string{"player_id"}, schema.AllAttributes()...),
	"player_stats": {
		"player_id", "minutes_played", "matches_played",
		"goals", "assists", "passes", "completed_passes", "shots", "xg",
	},
}

// requiredTables fixes the check order for deterministic error messages.
var requiredTables = []string{"players", "player_attributes", "player_stats"}

// verifySchema checks that every required table and column exists in the
// connected database.
func (s *Store) verifySchema() error {
	for _, table := range requiredTables {
		columns, err := s.tableColumns(table)
		if err != nil {
			return fmt.Errorf("failed to inspect table %s: %w", table, err)
		}
		if len(columns) == 0 {
			return &contract.SchemaError{Object: table, Detail: "table does not exist"}
		}
		for _, col := range requiredColumns[table] {
			if _, ok := columns[col]; !ok {
				return &contract.SchemaError{Object: table + "." + col}
			}
		}
	}
	return nil
}

// tableColumns returns the set of column names for a table, empty when the
// table does not exist. Introspection is backend-specific: SQLite exposes
// PRAGMA table_info, MySQL and PostgreSQL expose information_schema.
func (s *Store) tableColumns(table string) (map[string]struct{}, error) {
	columns := make(map[string]struct{})

	switch s.backend {
	case schema.SQLiteBackend:
		rows, err := s.db.Query(fmt.Sprintf("PRAGMA table_info(%s)", s.quoteIdent(table)))
		if err != nil {
			return nil, err
		}
		defer func() { _ = rows.Close() }()
		for rows.Next() {
			var cid int
			var name, colType string
			var notNull, pk int
			var dflt any
			if err := rows.Scan(&cid, &name, &colType, &notNull, &dflt, &pk); err != nil {
				return nil, err
			}
			columns[name] = struct{}{}
		}
		return columns, rows.Err()

	case schema.MySQLBackend:
		rows, err := s.db.Query(
			"SELECT column_name FROM information_schema.columns WHERE table_schema = DATABASE() AND table_name = ?", table)
		if err != nil {
			return nil, err
		}
		defer func() { _ = rows.Close() }()
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				return nil, err
			}
			columns[name] = struct{}{}
		}
		return columns, rows.Err()

	case schema.PostgreSQLBackend:
		rows, err := s.db.Query(
			"SELECT column_name FROM information_schema.columns WHERE table_schema = current_schema() AND table_name = $1", table)
		if err != nil {
			return nil, err
		}
		defer func() { _ = rows.Close() }()
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				return nil, err
			}
			columns[name] = struct{}{}
		}
		return columns, rows.Err()

	default:
		return nil, fmt.Errorf("unsupported backend for schema inspection: %s", s.backend)
	}
}
