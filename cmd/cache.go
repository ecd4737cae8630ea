package cmd

import (
	"fmt"

	"github.com/scoutbase/scout/internal/contract"
	"github.com/scoutbase/scout/internal/iocache"
	"github.com/scoutbase/scout/internal/outwriter"
	"github.com/scoutbase/scout/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cacheSetup loads minimal configuration needed for cache operations.
// This is used by commands that need cache access without full shared setup.
func cacheSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get cache-related config values
	backend := schema.DatabaseBackend(viper.GetString("cache-backend"))
	connStr := viper.GetString("cache-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.CacheBackend = backend
	cfg.CacheDBConnect = connStr

	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheSetup()
}

// cacheCmd focused on cache management.
//
// Note: Cache subcommands use minimal initialization (cacheSetup) instead of
// the full sharedSetup used by query commands. This avoids stats store
// validation for simple cache operations.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the memoized query result cache",
	Long: `Manage the cache that memoizes query results between runs.

Scout stores each query result keyed by the operation and its arguments,
so repeated queries skip the database until the entry goes stale.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show cache statistics and connection info
  clear   - Remove all cached results
  migrate - Apply cache schema migrations

Examples:
  # Check cache status
  scout cache status

  # Clear cache after loading a new stats database
  scout cache clear`,
}

// cacheClearCmd clears the cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all memoized query results",
	Long: `Delete all memoized query results from the configured backend.

Use this when:
- The stats database was replaced or reloaded
- Cache may be stale or corrupted
- Measuring query performance without cache

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the cache table

Examples:
  # Clear SQLite cache (default)
  scout cache clear

  # Clear MySQL cache (set connection string via env variable)
  SCOUT_CACHE_BACKEND=mysql SCOUT_CACHE_DB_CONNECT="..." scout cache clear`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearCache(cfg.CacheBackend, contract.GetCacheDBFilePath(), cfg.CacheDBConnect); err != nil {
			contract.LogFatal("Failed to clear cache", err)
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheStatusCmd shows cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display cache statistics and connection details",
	Long: `Show detailed information about the query result cache.

Displays:
- Backend type and connection status
- Total number of memoized entries
- Last and oldest cache entry timestamps
- Cache table size

Examples:
  # Check cache status
  scout cache status`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := cacheSetup(); err != nil {
			return err
		}
		return iocache.InitCaching(cfg.CacheBackend, cfg.CacheDBConnect)
	},
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetResultStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		if err := outwriter.NewOutWriter().WriteCacheStatus(status, cfg); err != nil {
			contract.LogFatal("Failed to write cache status", err)
		}
	},
}

// cacheMigrateCmd applies cache schema migrations.
var cacheMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply cache schema migrations",
	Long: `Migrate the cache schema to a target version.

By default the schema moves to the latest version. Pass --target-version 0
to roll back all migrations, or a positive number to land on a specific
version.

Examples:
  # Migrate to the latest schema
  scout cache migrate

  # Roll everything back
  scout cache migrate --target-version 0`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateCache(cfg.CacheBackend, cfg.CacheDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to migrate cache schema", err)
		}
		fmt.Printf("Cache schema migrated (target version %d).\n", targetVersion)
	},
}
