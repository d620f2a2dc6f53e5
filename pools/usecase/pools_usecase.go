package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/domain/mvc"
	"github.com/riverdex/sor/log"
)

const (
	filterReasonThreshold = "threshold"
	filterReasonInvalid   = "invalid"
	filterReasonDuplicate = "duplicate"
)

type poolsUseCase struct {
	provider         domain.PoolsProvider
	chainInfoUsecase mvc.ChainInfoUsecase

	// nil disables the filter.
	minTrackedReserveNative *decimal.Decimal

	logger log.Logger
}

var _ mvc.PoolsUsecase = &poolsUseCase{}

// NewPoolsUsecase will create a new pools use case object
// chainInfoUsecase resolves the block of latest snapshots and may be nil.
func NewPoolsUsecase(poolsConfig *domain.PoolsConfig, provider domain.PoolsProvider, chainInfoUsecase mvc.ChainInfoUsecase, logger log.Logger) (mvc.PoolsUsecase, error) {
	if provider == nil {
		return nil, fmt.Errorf("pools provider must be set")
	}

	usecase := &poolsUseCase{
		provider:         provider,
		chainInfoUsecase: chainInfoUsecase,
		logger:           logger,
	}

	if poolsConfig != nil && poolsConfig.MinTrackedReserveNative != "" {
		threshold, err := decimal.NewFromString(poolsConfig.MinTrackedReserveNative)
		if err != nil {
			return nil, fmt.Errorf("invalid min tracked reserve (%s): %w", poolsConfig.MinTrackedReserveNative, err)
		}
		usecase.minTrackedReserveNative = &threshold
	}

	return usecase, nil
}

// GetPools implements mvc.PoolsUsecase.
// Pools that do not pass the tracked reserve threshold or cannot be converted are dropped.
func (p *poolsUseCase) GetPools(ctx context.Context, chainID domain.ChainID, blockNumber *uint64) (domain.PoolsSnapshot, error) {
	rawPools, err := p.provider.GetPools(ctx, chainID, blockNumber)
	if err != nil {
		return domain.PoolsSnapshot{}, err
	}

	snapshotBlock := p.resolveBlockNumber(ctx, chainID, blockNumber)
	chainIDStr := chainID.String()

	seen := make(map[string]struct{}, len(rawPools))
	pools := make([]domain.Pool, 0, len(rawPools))
	for _, rawPool := range rawPools {
		if !p.passesThreshold(rawPool) {
			domain.SORPoolsFilteredCounter.WithLabelValues(chainIDStr, filterReasonThreshold).Inc()
			continue
		}

		pool, err := ConvertRawPool(rawPool, snapshotBlock)
		if err != nil {
			domain.SORPoolsFilteredCounter.WithLabelValues(chainIDStr, filterReasonInvalid).Inc()
			p.logger.Warn("skipping invalid pool", zap.Stringer("chain_id", chainID), zap.Error(err))
			continue
		}

		if _, ok := seen[pool.Address]; ok {
			domain.SORPoolsFilteredCounter.WithLabelValues(chainIDStr, filterReasonDuplicate).Inc()
			continue
		}
		seen[pool.Address] = struct{}{}

		pools = append(pools, pool)
	}

	domain.SORPoolsSnapshotSizeGauge.WithLabelValues(chainIDStr).Set(float64(len(pools)))

	p.logger.Debug("got pools", zap.Stringer("chain_id", chainID), zap.Int("raw", len(rawPools)), zap.Int("filtered", len(pools)), zap.Uint64("block_number", snapshotBlock))

	return domain.PoolsSnapshot{
		ChainID:     chainID,
		BlockNumber: snapshotBlock,
		Pools:       pools,
	}, nil
}

// passesThreshold returns true if the pool has strictly more tracked native reserve
// than the configured minimum. The filter only applies to pools reporting a tracked
// reserve, others are ranked by their liquidity proxy alone.
func (p *poolsUseCase) passesThreshold(rawPool domain.RawPool) bool {
	if p.minTrackedReserveNative == nil {
		return true
	}

	if rawPool.TrackedReserveETH == "" {
		return true
	}

	tracked, err := decimal.NewFromString(rawPool.TrackedReserveETH)
	if err != nil {
		return false
	}

	return tracked.GreaterThan(*p.minTrackedReserveNative)
}

func (p *poolsUseCase) resolveBlockNumber(ctx context.Context, chainID domain.ChainID, blockNumber *uint64) uint64 {
	if blockNumber != nil {
		return *blockNumber
	}

	if p.chainInfoUsecase == nil {
		return 0
	}

	height, err := p.chainInfoUsecase.GetLatestHeight(ctx, chainID)
	if err != nil {
		p.logger.Warn("failed to get latest height for pools snapshot", zap.Stringer("chain_id", chainID), zap.Error(err))
		return 0
	}

	return height
}
