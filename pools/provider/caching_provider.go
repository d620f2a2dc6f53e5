package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/domain/cache"
)

type cachingPoolsProvider struct {
	provider domain.PoolsProvider
	cache    *cache.Cache
	expiry   time.Duration
}

var _ domain.PoolsProvider = &cachingPoolsProvider{}

// NewCachingPoolsProvider caches the results of provider for expiry.
// Results for a fixed block number never change and are cached under their own key.
func NewCachingPoolsProvider(provider domain.PoolsProvider, poolsCache *cache.Cache, expiry time.Duration) domain.PoolsProvider {
	return &cachingPoolsProvider{
		provider: provider,
		cache:    poolsCache,
		expiry:   expiry,
	}
}

// GetPools implements domain.PoolsProvider.
func (p *cachingPoolsProvider) GetPools(ctx context.Context, chainID domain.ChainID, blockNumber *uint64) ([]domain.RawPool, error) {
	key := formatPoolsCacheKey(chainID, blockNumber)

	if cached, ok := p.cache.Get(key); ok {
		if pools, ok := cached.([]domain.RawPool); ok {
			domain.SORPoolsCacheHitsCounter.Inc()
			return pools, nil
		}
	}

	domain.SORPoolsCacheMissesCounter.Inc()

	pools, err := p.provider.GetPools(ctx, chainID, blockNumber)
	if err != nil {
		return nil, err
	}

	p.cache.Set(key, pools, p.expiry)

	return pools, nil
}

// Name implements domain.PoolsProvider.
func (p *cachingPoolsProvider) Name() string {
	return "caching-" + p.provider.Name()
}

func formatPoolsCacheKey(chainID domain.ChainID, blockNumber *uint64) string {
	if blockNumber == nil {
		return fmt.Sprintf("pools-%d", chainID)
	}
	return fmt.Sprintf("pools-%d-%d", chainID, *blockNumber)
}
