package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/osmosis-labs/osmosis/osmomath"
	"go.uber.org/zap"

	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/log"
	"github.com/riverdex/sor/sorutil/datafetchers"
)

var errGasPriceURLNotSet = errors.New("gas price url is not set")

// GasPriceSource fetches the gas price of chains with a gas market.
// Prices are refreshed in the background when a refetch interval is configured.
// Chains with a fixed gas price never hit the network.
type GasPriceSource struct {
	urlTemplate string
	headers     map[string]string
	getter      httpGetter

	// nil when background refresh is disabled
	fetcher *datafetchers.KeyedIntervalFetcher[domain.ChainID, osmomath.Int]

	logger log.Logger
}

var _ domain.GasPriceSource = &GasPriceSource{}

// NewGasPriceSource returns a gas price source for the given chains.
// Call Close to stop the background refresh.
func NewGasPriceSource(config domain.PricingConfig, chains []domain.ChainConfig, client *http.Client, logger log.Logger) *GasPriceSource {
	source := &GasPriceSource{
		urlTemplate: config.GasPriceURL,
		getter:      newHTTPGetter(client, config.RequestsPerSecond, config.Retry),
		logger:      logger,
	}

	if config.GasPriceAuthHeader != "" {
		source.headers = map[string]string{authHeaderName: config.GasPriceAuthHeader}
	}

	marketChains := make([]domain.ChainID, 0, len(chains))
	for _, chain := range chains {
		if !chain.HasFixedGasPrice() {
			marketChains = append(marketChains, chain.ChainID)
		}
	}

	if config.GasPriceRefetchIntervalMs > 0 && config.GasPriceURL != "" && len(marketChains) > 0 {
		interval := time.Duration(config.GasPriceRefetchIntervalMs) * time.Millisecond
		source.fetcher = datafetchers.NewKeyedFetcher(source.fetchAll(marketChains), interval, 2*interval)
	}

	return source
}

// GetGasPrice implements domain.GasPriceSource.
// Any failure degrades to a zero gas price.
func (g *GasPriceSource) GetGasPrice(ctx context.Context, chain domain.ChainConfig) osmomath.Int {
	if chain.HasFixedGasPrice() {
		return osmomath.NewIntFromBigInt(new(big.Int).SetUint64(chain.Gas.FixedGasPrice))
	}

	if g.fetcher != nil {
		gasPrice, err := g.fetcher.Lookup(chain.ChainID)
		if err == nil {
			return gasPrice
		}
		g.logger.Debug("background gas price unavailable, fetching", zap.Stringer("chain_id", chain.ChainID), zap.Error(err))
	}

	gasPrice, err := g.fetchGasPrice(ctx, chain.ChainID)
	if err != nil {
		domain.SORGasPriceFallbackCounter.WithLabelValues(chain.ChainID.String()).Inc()
		g.logger.Warn("failed to get gas price, falling back to zero", zap.Stringer("chain_id", chain.ChainID), zap.Error(err))
		return osmomath.ZeroInt()
	}

	return gasPrice
}

// WaitUntilFirstResult blocks until the first background refresh succeeds.
// Returns immediately when background refresh is disabled.
func (g *GasPriceSource) WaitUntilFirstResult() {
	if g.fetcher != nil {
		g.fetcher.WaitUntilFirstResult()
	}
}

// Close stops the background refresh.
func (g *GasPriceSource) Close() {
	if g.fetcher != nil {
		g.fetcher.Close()
	}
}

func (g *GasPriceSource) fetchAll(chainIDs []domain.ChainID) func() (map[domain.ChainID]osmomath.Int, error) {
	return func() (map[domain.ChainID]osmomath.Int, error) {
		ctx := context.Background()

		gasPrices := make(map[domain.ChainID]osmomath.Int, len(chainIDs))
		var lastErr error
		for _, chainID := range chainIDs {
			gasPrice, err := g.fetchGasPrice(ctx, chainID)
			if err != nil {
				g.logger.Debug("failed to refresh gas price", zap.Stringer("chain_id", chainID), zap.Error(err))
				lastErr = err
				continue
			}
			gasPrices[chainID] = gasPrice
		}

		if len(gasPrices) == 0 {
			return nil, lastErr
		}

		return gasPrices, nil
	}
}

func (g *GasPriceSource) fetchGasPrice(ctx context.Context, chainID domain.ChainID) (osmomath.Int, error) {
	if g.urlTemplate == "" {
		return osmomath.Int{}, errGasPriceURLNotSet
	}

	url := formatURL(g.urlTemplate, map[string]string{chainIDPlaceholder: chainID.String()})

	response, err := getJSON[gasPriceResponse](ctx, g.getter, url, g.headers)
	if err != nil {
		return osmomath.Int{}, err
	}

	gasPrice, err := parseInteger(response.Data.String())
	if err != nil {
		return osmomath.Int{}, fmt.Errorf("invalid gas price (%s) for chain (%d): %w", response.Data, chainID, err)
	}

	if gasPrice.IsNegative() {
		return osmomath.Int{}, fmt.Errorf("negative gas price (%s) for chain (%d)", gasPrice, chainID)
	}

	return gasPrice, nil
}
