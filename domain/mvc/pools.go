package mvc

import (
	"context"

	"github.com/riverdex/sor/domain"
)

// PoolsUsecase represent the pool's usecases
type PoolsUsecase interface {
	// GetPools returns the sanitized and filtered pool snapshot of the chain.
	// If blockNumber is nil, the latest snapshot is returned.
	GetPools(ctx context.Context, chainID domain.ChainID, blockNumber *uint64) (domain.PoolsSnapshot, error)
}
