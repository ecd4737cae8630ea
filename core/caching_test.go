package core

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/scoutbase/scout/internal/contract"
	"github.com/scoutbase/scout/internal/iocache"
	"github.com/scoutbase/scout/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubPlayerStore counts queries so tests can tell a cache hit from a
// recompute.
type stubPlayerStore struct {
	topNCalls        int
	statLeadersCalls int
	ratings          []schema.PlayerRating
	lines            []schema.StatLine
	minMinutesSeen   int
}

func (s *stubPlayerStore) TopN(ctx context.Context, attribute string, n int) ([]schema.PlayerRating, error) {
	s.topNCalls++
	return s.ratings, nil
}

func (s *stubPlayerStore) SearchByName(ctx context.Context, substring string) ([]schema.Player, error) {
	return nil, nil
}

func (s *stubPlayerStore) GetProfile(ctx context.Context, playerID int64) (schema.Profile, error) {
	return schema.Profile{}, nil
}

func (s *stubPlayerStore) Compare(ctx context.Context, a, b int64) ([2]schema.Profile, error) {
	return [2]schema.Profile{}, nil
}

func (s *stubPlayerStore) ResolvePlayer(ctx context.Context, nameOrID string) (schema.Player, error) {
	return schema.Player{}, nil
}

func (s *stubPlayerStore) StatLeaders(ctx context.Context, minMinutes int) ([]schema.StatLine, error) {
	s.statLeadersCalls++
	s.minMinutesSeen = minMinutes
	return s.lines, nil
}

func (s *stubPlayerStore) AttributeValues(ctx context.Context, attribute string) ([]float64, error) {
	return nil, nil
}

func (s *stubPlayerStore) Overview(ctx context.Context) (schema.StoreOverview, error) {
	return schema.StoreOverview{}, nil
}

func (s *stubPlayerStore) Close() error { return nil }

var _ contract.PlayerStore = &stubPlayerStore{} // Compile-time check

// cachingTestConfig returns a config with a one hour TTL.
func cachingTestConfig() *contract.Config {
	return &contract.Config{ResultLimit: 5, CacheTTL: time.Hour}
}

// TestCachedTopNWithoutManager tests that a nil cache manager computes
// directly every time.
func TestCachedTopNWithoutManager(t *testing.T) {
	store := &stubPlayerStore{ratings: []schema.PlayerRating{{Value: 19}}}
	cfg := cachingTestConfig()

	for i := 0; i < 2; i++ {
		ratings, err := cachedTopN(context.Background(), cfg, store, nil, "pace")
		require.NoError(t, err)
		assert.Len(t, ratings, 1)
	}
	assert.Equal(t, 2, store.topNCalls)
}

// TestCachedTopNHit tests that a fresh cached entry skips the query.
func TestCachedTopNHit(t *testing.T) {
	cached := []schema.PlayerRating{{Player: schema.Player{ID: 7, Name: "Cached"}, Value: 18}}
	data, err := json.Marshal(cached)
	require.NoError(t, err)

	cacheStore := &iocache.MockCacheStore{}
	cacheStore.On("Get", mock.Anything).Return(data, currentCacheVersion, time.Now().Unix(), nil)
	mgr := &iocache.MockCacheManager{}
	mgr.On("GetResultStore").Return(cacheStore)

	store := &stubPlayerStore{}
	ratings, err := cachedTopN(context.Background(), cachingTestConfig(), store, mgr, "pace")
	require.NoError(t, err)
	assert.Equal(t, "Cached", ratings[0].Player.Name)
	assert.Equal(t, 0, store.topNCalls)
	cacheStore.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestCachedTopNStale tests that an expired entry is recomputed and
// rewritten.
func TestCachedTopNStale(t *testing.T) {
	stale := time.Now().Add(-2 * time.Hour).Unix()
	data, err := json.Marshal([]schema.PlayerRating{{Value: 1}})
	require.NoError(t, err)

	cacheStore := &iocache.MockCacheStore{}
	cacheStore.On("Get", mock.Anything).Return(data, currentCacheVersion, stale, nil)
	cacheStore.On("Set", mock.Anything, mock.Anything, currentCacheVersion, mock.Anything).Return(nil)
	mgr := &iocache.MockCacheManager{}
	mgr.On("GetResultStore").Return(cacheStore)

	store := &stubPlayerStore{ratings: []schema.PlayerRating{{Value: 19}}}
	ratings, err := cachedTopN(context.Background(), cachingTestConfig(), store, mgr, "pace")
	require.NoError(t, err)
	assert.Equal(t, 19.0, ratings[0].Value)
	assert.Equal(t, 1, store.topNCalls)
	cacheStore.AssertExpectations(t)
}

// TestCachedTopNVersionMismatch tests that an entry written by a different
// encoding version is recomputed.
func TestCachedTopNVersionMismatch(t *testing.T) {
	data, err := json.Marshal([]schema.PlayerRating{{Value: 1}})
	require.NoError(t, err)

	cacheStore := &iocache.MockCacheStore{}
	cacheStore.On("Get", mock.Anything).Return(data, currentCacheVersion+1, time.Now().Unix(), nil)
	cacheStore.On("Set", mock.Anything, mock.Anything, currentCacheVersion, mock.Anything).Return(nil)
	mgr := &iocache.MockCacheManager{}
	mgr.On("GetResultStore").Return(cacheStore)

	store := &stubPlayerStore{ratings: []schema.PlayerRating{{Value: 19}}}
	ratings, err := cachedTopN(context.Background(), cachingTestConfig(), store, mgr, "pace")
	require.NoError(t, err)
	assert.Equal(t, 19.0, ratings[0].Value)
	assert.Equal(t, 1, store.topNCalls)
}

// TestCachedTopNMissPopulates tests that a cache miss stores the computed
// result.
func TestCachedTopNMissPopulates(t *testing.T) {
	cacheStore := &iocache.MockCacheStore{}
	cacheStore.On("Get", mock.Anything).Return([]byte(nil), 0, int64(0), sql.ErrNoRows)
	cacheStore.On("Set", mock.Anything, mock.Anything, currentCacheVersion, mock.Anything).Return(nil)
	mgr := &iocache.MockCacheManager{}
	mgr.On("GetResultStore").Return(cacheStore)

	store := &stubPlayerStore{ratings: []schema.PlayerRating{{Value: 19}}}
	_, err := cachedTopN(context.Background(), cachingTestConfig(), store, mgr, "pace")
	require.NoError(t, err)
	assert.Equal(t, 1, store.topNCalls)
	cacheStore.AssertExpectations(t)
}

// TestCachedStatLeaders tests that the configured minutes threshold reaches
// the store and distinguishes cache keys.
func TestCachedStatLeaders(t *testing.T) {
	store := &stubPlayerStore{lines: []schema.StatLine{{Player: schema.Player{ID: 1, Name: "Only"}}}}
	cfg := cachingTestConfig()
	cfg.MinMinutes = 750

	lines, err := cachedStatLeaders(context.Background(), cfg, store, nil)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.Equal(t, 750, store.minMinutesSeen)
	assert.Equal(t, 1, store.statLeadersCalls)

	type args struct {
		MinMinutes int `json:"min_minutes"`
	}
	assert.NotEqual(t,
		generateCacheKey("stat_leaders", args{500}),
		generateCacheKey("stat_leaders", args{750}))
}

// TestGenerateCacheKey tests key determinism and distinctness.
func TestGenerateCacheKey(t *testing.T) {
	type args struct {
		Attribute string `json:"attribute"`
		Limit     int    `json:"limit"`
	}

	t.Run("same inputs yield the same key", func(t *testing.T) {
		a := generateCacheKey("top_n", args{"pace", 10})
		b := generateCacheKey("top_n", args{"pace", 10})
		assert.Equal(t, a, b)
		assert.Len(t, a, 64)
	})

	t.Run("different arguments yield different keys", func(t *testing.T) {
		a := generateCacheKey("top_n", args{"pace", 10})
		b := generateCacheKey("top_n", args{"pace", 20})
		assert.NotEqual(t, a, b)
	})

	t.Run("different operations yield different keys", func(t *testing.T) {
		a := generateCacheKey("top_n", args{"pace", 10})
		b := generateCacheKey("search_by_name", args{"pace", 10})
		assert.NotEqual(t, a, b)
	})
}
