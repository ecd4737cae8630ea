package iocache

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/scoutbase/scout/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteStore opens a fresh SQLite cache store in a temp directory,
// applying migrations on open.
func newSQLiteStore(t *testing.T) *CacheStoreImpl {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache.db")
	store, err := NewCacheStore(schema.SQLiteBackend, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*CacheStoreImpl)
}

// TestCacheStoreRoundtrip tests Set/Get against a real SQLite file.
func TestCacheStoreRoundtrip(t *testing.T) {
	store := newSQLiteStore(t)
	now := time.Now().Unix()

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.Set("k1", []byte(`{"a":1}`), 1, now))
		value, version, ts, err := store.Get("k1")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"a":1}`), value)
		assert.Equal(t, 1, version)
		assert.Equal(t, now, ts)
	})

	t.Run("set replaces an existing key", func(t *testing.T) {
		require.NoError(t, store.Set("k1", []byte(`{"a":2}`), 2, now+10))
		value, version, ts, err := store.Get("k1")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"a":2}`), value)
		assert.Equal(t, 2, version)
		assert.Equal(t, now+10, ts)
	})

	t.Run("missing key reports no rows", func(t *testing.T) {
		_, _, _, err := store.Get("absent")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

// TestCacheStoreStatus tests status reporting for the SQLite backend.
func TestCacheStoreStatus(t *testing.T) {
	store := newSQLiteStore(t)

	t.Run("empty store", func(t *testing.T) {
		status, err := store.GetStatus()
		require.NoError(t, err)
		assert.Equal(t, "sqlite", status.Backend)
		assert.True(t, status.Connected)
		assert.Equal(t, int64(0), status.TotalEntries)
	})

	t.Run("populated store reports time bounds", func(t *testing.T) {
		require.NoError(t, store.Set("old", []byte("x"), 1, 100))
		require.NoError(t, store.Set("new", []byte("y"), 1, 200))

		status, err := store.GetStatus()
		require.NoError(t, err)
		assert.Equal(t, int64(2), status.TotalEntries)
		assert.Equal(t, time.Unix(100, 0), status.OldestEntryTime)
		assert.Equal(t, time.Unix(200, 0), status.LastEntryTime)
		assert.Greater(t, status.TableSizeBytes, int64(0))
	})
}

// TestNoneBackend tests that the disabled cache is a transparent no-op.
func TestNoneBackend(t *testing.T) {
	store, err := NewCacheStore(schema.NoneBackend, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	assert.NoError(t, store.Set("k", []byte("v"), 1, time.Now().Unix()))

	_, _, _, err = store.Get("k")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "none", status.Backend)
	assert.False(t, status.Connected)
}

// TestMigrateCache tests migrating up and rolling back.
func TestMigrateCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")

	t.Run("up creates the result table", func(t *testing.T) {
		require.NoError(t, MigrateCache(schema.SQLiteBackend, path, latestVersion))

		db, err := sql.Open("sqlite", path)
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		var count int64
		row := db.QueryRow("SELECT COUNT(*) FROM " + resultTable)
		require.NoError(t, row.Scan(&count))
		assert.Equal(t, int64(0), count)
	})

	t.Run("up is idempotent", func(t *testing.T) {
		assert.NoError(t, MigrateCache(schema.SQLiteBackend, path, latestVersion))
	})

	t.Run("down drops the result table", func(t *testing.T) {
		require.NoError(t, MigrateCache(schema.SQLiteBackend, path, 0))

		db, err := sql.Open("sqlite", path)
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		var count int64
		row := db.QueryRow("SELECT COUNT(*) FROM " + resultTable)
		assert.Error(t, row.Scan(&count))
	})

	t.Run("none backend is rejected", func(t *testing.T) {
		assert.Error(t, MigrateCache(schema.NoneBackend, "", latestVersion))
	})
}
