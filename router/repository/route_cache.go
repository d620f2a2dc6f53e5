package routerrepo

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/domain/mvc"
)

// DefaultRouteCacheSize is used when the configured size is not positive.
const DefaultRouteCacheSize = 1000

type routeCache struct {
	// cache is safe for concurrent use.
	cache *lru.Cache[string, domain.CachedRoutes]
}

var _ mvc.RouteCacheRepository = &routeCache{}

// NewRouteCache creates a route cache holding at most size entries.
// The least recently used entry is evicted when the cache is full.
func NewRouteCache(size int) (mvc.RouteCacheRepository, error) {
	if size <= 0 {
		size = DefaultRouteCacheSize
	}

	cache, err := lru.New[string, domain.CachedRoutes](size)
	if err != nil {
		return nil, err
	}

	return &routeCache{
		cache: cache,
	}, nil
}

// Get implements mvc.RouteCacheRepository.
// Expiry is checked by the caller against the current block.
func (r *routeCache) Get(chainID domain.ChainID, tokenIn, tokenOut domain.Asset, tradeType domain.TradeType, protocols domain.ProtocolSet) (domain.CachedRoutes, bool) {
	return r.cache.Get(domain.FormatRouteCacheKey(chainID, tokenIn, tokenOut, tradeType, protocols))
}

// Put implements mvc.RouteCacheRepository.
// It replaces any entry with the same key.
func (r *routeCache) Put(cachedRoutes domain.CachedRoutes) {
	r.cache.Add(cachedRoutes.Key(), cachedRoutes)
}

// Len implements mvc.RouteCacheRepository.
func (r *routeCache) Len() int {
	return r.cache.Len()
}
