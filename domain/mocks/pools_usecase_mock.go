package mocks

import (
	"context"

	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/domain/mvc"
)

var _ mvc.PoolsUsecase = &PoolsUsecaseMock{}

// PoolsUsecaseMock returns Snapshot unless GetPoolsFunc is set.
type PoolsUsecaseMock struct {
	GetPoolsFunc func(ctx context.Context, chainID domain.ChainID, blockNumber *uint64) (domain.PoolsSnapshot, error)

	Snapshot domain.PoolsSnapshot
}

// GetPools implements mvc.PoolsUsecase.
func (pm *PoolsUsecaseMock) GetPools(ctx context.Context, chainID domain.ChainID, blockNumber *uint64) (domain.PoolsSnapshot, error) {
	if pm.GetPoolsFunc != nil {
		return pm.GetPoolsFunc(ctx, chainID, blockNumber)
	}

	snapshot := pm.Snapshot
	snapshot.ChainID = chainID
	return snapshot, nil
}
