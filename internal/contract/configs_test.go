package contract

import (
	"testing"
	"time"

	"github.com/scoutbase/scout/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a raw input that passes all validation.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		StoreBackend: "sqlite",
		StoreConnect: "stats.db",
		Limit:        DefaultResultLimit,
		MinMinutes:   DefaultMinMinutes,
		Precision:    DefaultPrecision,
		Output:       "text",
		CacheBackend: "none",
		Color:        "yes",
	}
}

// TestProcessAndValidate tests config parsing and validation.
func TestProcessAndValidate(t *testing.T) {
	t.Run("valid input populates config", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, validInput()))
		assert.Equal(t, schema.SQLiteBackend, cfg.StoreBackend)
		assert.Equal(t, "stats.db", cfg.StoreConnect)
		assert.Equal(t, DefaultResultLimit, cfg.ResultLimit)
		assert.Equal(t, schema.TextOut, cfg.Output)
		assert.Equal(t, DefaultCacheTTL, cfg.CacheTTL)
		assert.True(t, cfg.UseColors)
	})

	t.Run("limit out of range", func(t *testing.T) {
		input := validInput()
		input.Limit = 0
		assert.Error(t, ProcessAndValidate(&Config{}, input))

		input.Limit = MaxResultLimit + 1
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("negative min minutes", func(t *testing.T) {
		input := validInput()
		input.MinMinutes = -1
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("invalid output mode", func(t *testing.T) {
		input := validInput()
		input.Output = "xml"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("output mode is case insensitive", func(t *testing.T) {
		cfg := &Config{}
		input := validInput()
		input.Output = "JSON"
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, schema.JSONOut, cfg.Output)
	})

	t.Run("sqlite store requires a path", func(t *testing.T) {
		input := validInput()
		input.StoreConnect = ""
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("none is not a valid store backend", func(t *testing.T) {
		input := validInput()
		input.StoreBackend = "none"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("cache must not share the stats database", func(t *testing.T) {
		input := validInput()
		input.CacheBackend = "sqlite"
		input.CacheDBConnect = "stats.db"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("custom cache ttl", func(t *testing.T) {
		cfg := &Config{}
		input := validInput()
		input.CacheTTL = "30m"
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, 30*time.Minute, cfg.CacheTTL)
	})

	t.Run("invalid cache ttl", func(t *testing.T) {
		input := validInput()
		input.CacheTTL = "soon"
		assert.Error(t, ProcessAndValidate(&Config{}, input))

		input.CacheTTL = "-5m"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})
}

// TestValidateDatabaseConnectionString tests connection string formats.
func TestValidateDatabaseConnectionString(t *testing.T) {
	t.Run("sqlite accepts anything", func(t *testing.T) {
		assert.NoError(t, ValidateDatabaseConnectionString(schema.SQLiteBackend, ""))
	})

	t.Run("mysql format", func(t *testing.T) {
		assert.NoError(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@tcp(localhost:3306)/scout"))
		assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, ""))
		assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@localhost/scout"))
	})

	t.Run("postgresql format", func(t *testing.T) {
		assert.NoError(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "host=localhost port=5432 user=postgres dbname=scout"))
		assert.Error(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, ""))
		assert.Error(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "host=localhost"))
	})
}

// TestClone tests config deep copy.
func TestClone(t *testing.T) {
	cfg := &Config{ResultLimit: 25, Attribute: "pace"}
	clone := cfg.Clone()
	clone.ResultLimit = 5
	assert.Equal(t, 25, cfg.ResultLimit)
	assert.Equal(t, "pace", clone.Attribute)
}
