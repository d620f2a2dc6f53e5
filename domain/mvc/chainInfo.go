package mvc

import (
	"context"

	"github.com/riverdex/sor/domain"
)

// ChainInfoRepository represents the contract for a repository handling chain information
type ChainInfoRepository interface {
	// StoreLatestHeight stores the latest height of the chain.
	StoreLatestHeight(chainID domain.ChainID, height uint64)

	// GetLatestHeight retrieves the latest height of the chain.
	GetLatestHeight(chainID domain.ChainID) (uint64, bool)
}

type ChainInfoUsecase interface {
	// GetLatestHeight returns the latest known height of the chain.
	// Errors if the height has not been updated for too long.
	GetLatestHeight(ctx context.Context, chainID domain.ChainID) (uint64, error)
}
