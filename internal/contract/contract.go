// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/scoutbase/scout/schema"
)

// PlayerStore defines the read-only query operations against the stats store.
// This allows the core executors to be tested without a real database.
// All operations are pure reads with no observable side effects.
type PlayerStore interface {
	// --- Ranking / Search ---

	// TopN returns up to n players ordered descending by the named attribute,
	// ties broken by ascending player id. It fails with NotFoundError when
	// the attribute is unknown.
	TopN(ctx context.Context, attribute string, n int) ([]schema.PlayerRating, error)

	// SearchByName returns players whose name contains substring,
	// case-insensitive, ordered by CA descending. No match yields an empty
	// slice and a nil error.
	SearchByName(ctx context.Context, substring string) ([]schema.Player, error)

	// --- Detail Fetch ---

	// GetProfile returns the full profile for one player id. It fails with
	// NotFoundError when the id is unknown; a missing stats row is not an
	// error (Profile.HasStats is false).
	GetProfile(ctx context.Context, playerID int64) (schema.Profile, error)

	// Compare returns the two full profiles in argument order. It fails with
	// NotFoundError naming whichever id is unknown.
	Compare(ctx context.Context, playerIDA, playerIDB int64) ([2]schema.Profile, error)

	// ResolvePlayer resolves an exact id or a unique case-insensitive name
	// match to a player row.
	ResolvePlayer(ctx context.Context, nameOrID string) (schema.Player, error)

	// --- Aggregates ---

	// StatLeaders returns aggregated raw counters for every player with at
	// least minMinutes minutes played, in stored player order. Rate metrics
	// are derived from the counters by the caller.
	StatLeaders(ctx context.Context, minMinutes int) ([]schema.StatLine, error)

	// AttributeValues returns the named attribute for every player, in
	// stored order, for distribution and correlation shaping.
	AttributeValues(ctx context.Context, attribute string) ([]float64, error)

	// Overview summarizes row counts and per-position averages.
	Overview(ctx context.Context) (schema.StoreOverview, error)

	// Close closes the underlying connection.
	Close() error
}

// CacheManager defines the interface for managing cache stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetResultStore() CacheStore
}

// CacheStore defines the interface for memoized query result storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}
