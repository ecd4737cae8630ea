//go:build basic || database

package integration

import (
	"database/sql"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/scoutbase/scout/schema"

	_ "modernc.org/sqlite"
)

var (
	// sharedScoutPath holds the path to a shared scout binary built once for all tests.
	sharedScoutPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getScoutBinary returns the path to the scout binary, building it once if needed.
func getScoutBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "scout-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		scoutPath := filepath.Join(tempDir, "scout")
		buildCmd := exec.Command("go", "build", "-o", scoutPath, "./cmd/scout")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build scout: %v", err))
		}

		sharedScoutPath = scoutPath
	})

	return sharedScoutPath
}

// createStatsDB creates and seeds a SQLite stats store for CLI runs.
func createStatsDB(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stats.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open stats db: %v", err)
	}
	defer func() { _ = db.Close() }()
	db.SetMaxOpenConns(1)

	mustExec := func(query string, args ...any) {
		if _, err := db.Exec(query, args...); err != nil {
			t.Fatalf("failed to seed stats db: %v", err)
		}
	}

	mustExec(`CREATE TABLE players (
		player_id INTEGER PRIMARY KEY,
		player_name TEXT NOT NULL,
		position TEXT,
		nationality TEXT
	)`)

	cols := []string{"player_id INTEGER PRIMARY KEY"}
	for _, name := range schema.AllAttributes() {
		cols = append(cols, fmt.Sprintf("%q REAL", name))
	}
	mustExec(fmt.Sprintf("CREATE TABLE player_attributes (%s)", strings.Join(cols, ", ")))

	mustExec(`CREATE TABLE player_stats (
		player_id INTEGER,
		minutes_played INTEGER,
		matches_played INTEGER,
		goals INTEGER,
		assists INTEGER,
		passes INTEGER,
		completed_passes INTEGER,
		shots INTEGER,
		xg REAL
	)`)

	mustExec(`INSERT INTO players VALUES
		(1, 'Lionel Messi', 'FWD', 'Argentina'),
		(2, 'Cristiano Ronaldo', 'FWD', 'Portugal'),
		(3, 'Luka Modric', 'MID', 'Croatia')`)
	mustExec(`INSERT INTO player_attributes (player_id, "passing", "pace", "CA") VALUES
		(1, 19, 16, 195),
		(2, 17, 17, 190),
		(3, 19, 12, 180)`)
	mustExec(`INSERT INTO player_stats VALUES
		(1, 1800, 20, 20, 10, 1000, 850, 60, 17.0),
		(2, 1800, 20, 18, 4, 800, 640, 70, 15.0),
		(3, 1700, 19, 2, 9, 1500, 1380, 15, 1.8)`)

	return path
}
