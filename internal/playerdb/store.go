// Package playerdb implements the read-only query layer over the external
// football-statistics store. The store schema is owned by the database
// builder; this package only issues SELECTs and verifies at open time that
// the tables and columns it depends on exist.
package playerdb

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver

	"github.com/scoutbase/scout/internal/contract"
	"github.com/scoutbase/scout/schema"
)

// Store handles read queries against the stats database using various
// database backends.
type Store struct {
	db      *sql.DB
	backend schema.DatabaseBackend
}

var _ contract.PlayerStore = &Store{} // Compile-time check

// Open connects to the stats database for the given backend, verifies the
// connection, and checks that the expected schema is present.
func Open(backend schema.DatabaseBackend, connStr string) (*Store, error) {
	var db *sql.DB
	var err error

	switch backend {
	case schema.SQLiteBackend:
		db, err = sql.Open("sqlite", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite stats database at %q: %w", connStr, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		db, err = sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL stats database: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=secret dbname=scout
		db, err = sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL stats database: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	default:
		return nil, fmt.Errorf("unsupported stats backend: %s. Must be sqlite, mysql, or postgresql", backend)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s stats database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	store := &Store{db: db, backend: backend}
	if err := store.verifySchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// NewFromDB wraps an existing connection without schema verification.
// Exposed for unit testing against seeded databases.
func NewFromDB(db *sql.DB, backend schema.DatabaseBackend) *Store {
	return &Store{db: db, backend: backend}
}

// Close closes the underlying DB connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// placeholder returns the parameter placeholder for the backend at the given
// 1-based position.
func (s *Store) placeholder(n int) string {
	if s.backend == schema.PostgreSQLBackend {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// quoteIdent quotes a column identifier for the backend. Only registry
// attribute names and fixed column names ever pass through here.
func (s *Store) quoteIdent(name string) string {
	if s.backend == schema.MySQLBackend {
		return "`" + name + "`"
	}
	return `"` + name + `"`
}
