package mocks

import (
	"context"

	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/domain/mvc"
)

var _ mvc.ChainInfoUsecase = &ChainInfoUsecaseMock{}

// ChainInfoUsecaseMock is a mock implementation of the ChainInfoUsecase interface
type ChainInfoUsecaseMock struct {
	GetLatestHeightFunc func(ctx context.Context, chainID domain.ChainID) (uint64, error)
}

func (m *ChainInfoUsecaseMock) GetLatestHeight(ctx context.Context, chainID domain.ChainID) (uint64, error) {
	if m.GetLatestHeightFunc != nil {
		return m.GetLatestHeightFunc(ctx, chainID)
	}
	return 0, nil
}

// NewChainInfoUsecaseAtHeight returns a mock that always reports the given height.
func NewChainInfoUsecaseAtHeight(height uint64) *ChainInfoUsecaseMock {
	return &ChainInfoUsecaseMock{
		GetLatestHeightFunc: func(ctx context.Context, chainID domain.ChainID) (uint64, error) {
			return height, nil
		},
	}
}
