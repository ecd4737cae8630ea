package core

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/scoutbase/scout/internal/contract"
	"github.com/scoutbase/scout/schema"
)

// currentCacheVersion defines the version of the cached result encoding.
const currentCacheVersion = 1

// resultStore returns the memoization store, or nil when caching is off.
func resultStore(mgr contract.CacheManager) contract.CacheStore {
	if mgr == nil {
		return nil
	}
	return mgr.GetResultStore()
}

// cachedTopN memoizes the raw topN query keyed by attribute and limit.
func cachedTopN(ctx context.Context, cfg *contract.Config, store contract.PlayerStore, mgr contract.CacheManager, attribute string) ([]schema.PlayerRating, error) {
	args := struct {
		Attribute string `json:"attribute"`
		Limit     int    `json:"limit"`
	}{attribute, cfg.ResultLimit}

	return cachedQuery(cfg, mgr, "top_n", args, func() ([]schema.PlayerRating, error) {
		return store.TopN(ctx, attribute, cfg.ResultLimit)
	})
}

// cachedSearch memoizes name searches keyed by the lowered query string.
func cachedSearch(ctx context.Context, cfg *contract.Config, store contract.PlayerStore, mgr contract.CacheManager, query string) ([]schema.Player, error) {
	args := struct {
		Query string `json:"query"`
	}{strings.ToLower(query)}

	return cachedQuery(cfg, mgr, "search_by_name", args, func() ([]schema.Player, error) {
		return store.SearchByName(ctx, query)
	})
}

// cachedStatLeaders memoizes the aggregated stat counters keyed by the
// minutes-played threshold.
func cachedStatLeaders(ctx context.Context, cfg *contract.Config, store contract.PlayerStore, mgr contract.CacheManager) ([]schema.StatLine, error) {
	args := struct {
		MinMinutes int `json:"min_minutes"`
	}{cfg.MinMinutes}

	return cachedQuery(cfg, mgr, "stat_leaders", args, func() ([]schema.StatLine, error) {
		return store.StatLeaders(ctx, cfg.MinMinutes)
	})
}

// cachedOverview memoizes the store overview. The key has no arguments, so
// TTL expiry is the only way a refreshed store shows up early.
func cachedOverview(ctx context.Context, cfg *contract.Config, store contract.PlayerStore, mgr contract.CacheManager) (schema.StoreOverview, error) {
	return cachedQuery(cfg, mgr, "overview", struct{}{}, func() (schema.StoreOverview, error) {
		return store.Overview(ctx)
	})
}

// cachedQuery runs one memoized query: check for a fresh cached result,
// otherwise compute and store. Cache failures never fail the query.
func cachedQuery[T any](cfg *contract.Config, mgr contract.CacheManager, op string, args any, compute func() (T, error)) (T, error) {
	store := resultStore(mgr)
	if store == nil {
		return compute()
	}

	key := generateCacheKey(op, args)

	// Check for cache hit
	if hit := checkCacheHit[T](store, key, cfg.CacheTTL); hit != nil {
		return *hit, nil
	}

	// Cache miss: compute and store
	result, err := compute()
	if err != nil {
		return result, err
	}
	if data, err := json.Marshal(result); err == nil {
		_ = store.Set(key, data, currentCacheVersion, time.Now().Unix())
	}
	return result, nil
}

// checkCacheHit attempts to retrieve and validate a cached result.
func checkCacheHit[T any](store contract.CacheStore, key string, ttl time.Duration) *T {
	data, version, ts, err := store.Get(key)
	if err != nil {
		return nil // Cache miss
	}

	// Validate version and staleness
	if version == currentCacheVersion {
		entryTimestamp := time.Unix(ts, 0)
		if time.Since(entryTimestamp) <= ttl {
			var result T
			if err := json.Unmarshal(data, &result); err == nil {
				return &result // Cache hit
			}
		}
	}

	return nil // Cache miss (stale or version mismatch)
}

// generateCacheKey creates a unique key from the operation name and its
// canonical JSON-encoded arguments.
func generateCacheKey(op string, args any) string {
	payload, err := json.Marshal(args)
	if err != nil {
		payload = []byte(fmt.Sprintf("%v", args))
	}
	key := fmt.Sprintf("%s:%s", op, payload)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(key)))
}
