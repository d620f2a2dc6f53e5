package provider

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/log"
)

type fallbackPoolsProvider struct {
	providers []domain.PoolsProvider
	logger    log.Logger
}

var _ domain.PoolsProvider = &fallbackPoolsProvider{}

// NewFallbackPoolsProvider returns a provider that tries each provider in order
// and returns the result of the first one that succeeds.
func NewFallbackPoolsProvider(providers []domain.PoolsProvider, logger log.Logger) domain.PoolsProvider {
	return &fallbackPoolsProvider{
		providers: providers,
		logger:    logger,
	}
}

// GetPools implements domain.PoolsProvider.
// Returns ProvidersExhaustedError if every provider fails.
func (p *fallbackPoolsProvider) GetPools(ctx context.Context, chainID domain.ChainID, blockNumber *uint64) ([]domain.RawPool, error) {
	lastErr := errors.New("no pool providers configured")

	for i, provider := range p.providers {
		pools, err := provider.GetPools(ctx, chainID, blockNumber)
		if err == nil {
			if i > 0 {
				p.logger.Info("fell back to pool provider", zap.String("provider", provider.Name()), zap.Int("index", i))
			}
			return pools, nil
		}

		domain.SORPoolsProviderErrorsCounter.WithLabelValues(provider.Name(), chainID.String()).Inc()
		p.logger.Error("failed to get pools from provider", zap.String("provider", provider.Name()), zap.Stringer("chain_id", chainID), zap.Error(err))
		lastErr = err

		if ctx.Err() != nil {
			break
		}
	}

	return nil, domain.ProvidersExhaustedError{Dependency: "pools", LastErr: lastErr}
}

// Name implements domain.PoolsProvider.
func (p *fallbackPoolsProvider) Name() string {
	return "fallback"
}
