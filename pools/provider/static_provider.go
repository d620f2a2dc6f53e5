package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/riverdex/sor/domain"
)

type staticPoolsProvider struct {
	pools map[domain.ChainID][]domain.RawPool
}

var _ domain.PoolsProvider = &staticPoolsProvider{}

// NewStaticPoolsProvider returns a provider serving fixed pools per chain.
// The block number is ignored.
func NewStaticPoolsProvider(pools map[domain.ChainID][]domain.RawPool) domain.PoolsProvider {
	return &staticPoolsProvider{
		pools: pools,
	}
}

// NewStaticPoolsProviderFromFile reads the pools from a JSON file of the form
// {"<chainId>": {"pools": [...]}}.
func NewStaticPoolsProviderFromFile(path string) (domain.PoolsProvider, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var byChain map[domain.ChainID]domain.RawPoolsResponse
	if err := json.Unmarshal(bz, &byChain); err != nil {
		return nil, fmt.Errorf("failed to parse static pools file (%s): %w", path, err)
	}

	pools := make(map[domain.ChainID][]domain.RawPool, len(byChain))
	for chainID, response := range byChain {
		pools[chainID] = response.GetPools()
	}

	return NewStaticPoolsProvider(pools), nil
}

// GetPools implements domain.PoolsProvider.
func (p *staticPoolsProvider) GetPools(ctx context.Context, chainID domain.ChainID, blockNumber *uint64) ([]domain.RawPool, error) {
	pools, ok := p.pools[chainID]
	if !ok {
		return nil, domain.UnsupportedChainError{ChainID: chainID}
	}
	return pools, nil
}

// Name implements domain.PoolsProvider.
func (p *staticPoolsProvider) Name() string {
	return "static"
}
