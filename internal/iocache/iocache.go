// Package iocache memoizes query layer results keyed by operation name and
// arguments, with TTL invalidation. Cached results must be indistinguishable
// from a fresh query given identical inputs within the TTL.
package iocache

import (
	"sync"

	"github.com/scoutbase/scout/internal/contract"
)

// CacheStoreManager manages the CacheStore instance.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	result       contract.CacheStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetResultStore returns the result CacheStore.
func (mgr *CacheStoreManager) GetResultStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.result
}
