package chaininforepo

import (
	"sync"

	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/domain/mvc"
)

var _ mvc.ChainInfoRepository = &chainInfoRepo{}

type chainInfoRepo struct {
	latestHeights map[domain.ChainID]uint64
	mu            sync.RWMutex
}

// New creates a new repository for chain information
func New() mvc.ChainInfoRepository {
	return &chainInfoRepo{
		latestHeights: make(map[domain.ChainID]uint64),
	}
}

// StoreLatestHeight stores the latest height of the chain.
// Heights never move backwards.
func (r *chainInfoRepo) StoreLatestHeight(chainID domain.ChainID, height uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if height < r.latestHeights[chainID] {
		return
	}

	r.latestHeights[chainID] = height
}

// GetLatestHeight retrieves the latest height of the chain.
func (r *chainInfoRepo) GetLatestHeight(chainID domain.ChainID) (uint64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	height, ok := r.latestHeights[chainID]
	return height, ok
}
