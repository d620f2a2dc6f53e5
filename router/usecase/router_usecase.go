package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/domain/mvc"
	"github.com/riverdex/sor/log"
	"github.com/riverdex/sor/router/usecase/route"
)

var _ mvc.RouterUsecase = &routerUseCaseImpl{}

type routerUseCaseImpl struct {
	config           domain.RouterConfig
	chains           *domain.ChainRegistry
	poolsUsecase     mvc.PoolsUsecase
	chainInfoUsecase mvc.ChainInfoUsecase
	gasPriceSource   domain.GasPriceSource
	gasModelFactory  domain.GasModelFactory

	// routeCache is nil when route caching is disabled.
	routeCache mvc.RouteCacheRepository

	// computeGroup collapses concurrent computations of the same request.
	computeGroup singleflight.Group

	logger log.Logger
}

const (
	routeCacheLabel = "route"
	tracerName      = "sor/router"
)

var (
	cacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sor_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type", "chain_id"},
	)
	cacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sor_cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type", "chain_id"},
	)
	noRouteCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sor_no_route_total",
			Help: "Total number of quote requests without a viable route",
		},
		[]string{"chain_id"},
	)
)

func init() {
	prometheus.MustRegister(cacheHits)
	prometheus.MustRegister(cacheMisses)
	prometheus.MustRegister(noRouteCounter)
}

// NewRouterUsecase will create a new router use case object.
// A nil routeCache or chainInfoUsecase disables route caching.
func NewRouterUsecase(
	config domain.RouterConfig,
	chains *domain.ChainRegistry,
	poolsUsecase mvc.PoolsUsecase,
	chainInfoUsecase mvc.ChainInfoUsecase,
	gasPriceSource domain.GasPriceSource,
	gasModelFactory domain.GasModelFactory,
	routeCache mvc.RouteCacheRepository,
	logger log.Logger,
) (mvc.RouterUsecase, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if chains == nil {
		return nil, errors.New("chain registry is required")
	}

	return &routerUseCaseImpl{
		config:           config,
		chains:           chains,
		poolsUsecase:     poolsUsecase,
		chainInfoUsecase: chainInfoUsecase,
		gasPriceSource:   gasPriceSource,
		gasModelFactory:  gasModelFactory,
		routeCache:       routeCache,
		logger:           logger,
	}, nil
}

// quoteContext is everything resolved once per request.
type quoteContext struct {
	req      domain.QuoteRequest
	chain    domain.ChainConfig
	config   domain.RouterConfig
	snapshot domain.PoolsSnapshot
	gasModel domain.GasModel
}

// GetOptimalQuote returns the best, possibly split, route for the request.
//
// Cached routes that have not expired at the current block are re-quoted against the
// latest pool snapshot. A cache miss, an expired entry or a cached route that can no
// longer be quoted triggers the full computation: candidate selection, route
// enumeration, quoting, gas adjustment and split search. The result is then cached.
//
// Returns a swap route with an empty route and no error when no route exists.
func (r *routerUseCaseImpl) GetOptimalQuote(ctx context.Context, req domain.QuoteRequest) (domain.SwapRoute, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "routerUseCaseImpl.GetOptimalQuote", trace.WithAttributes(
		attribute.String("chain_id", req.ChainID.String()),
		attribute.String("token_in", req.TokenIn.Address),
		attribute.String("token_out", req.TokenOut.Address),
		attribute.String("trade_type", req.TradeType.String()),
	))
	defer span.End()

	req, chain, err := r.validateRequest(req)
	if err != nil {
		return domain.SwapRoute{}, err
	}

	snapshot, err := r.poolsUsecase.GetPools(ctx, req.ChainID, nil)
	if err != nil {
		return domain.SwapRoute{}, err
	}

	gasPrice := r.gasPriceSource.GetGasPrice(ctx, chain)

	qc := quoteContext{
		req:      req,
		chain:    chain,
		config:   r.config.WithOverrides(req.MaxSwapsPerPath, req.MaxSplits),
		snapshot: snapshot,
		gasModel: r.gasModelFactory.BuildGasModel(ctx, chain, gasPrice, req.QuoteToken()),
	}

	// Cached routes are keyed by pair only, so requests with overrides skip the cache.
	var (
		currentBlock    uint64
		hasCurrentBlock bool
	)
	if !req.HasOverrides() {
		currentBlock, hasCurrentBlock = r.getCurrentBlock(ctx, req.ChainID)
	}

	if hasCurrentBlock {
		best, ok := r.getCachedBestSwapRoute(ctx, qc, currentBlock)
		if ok {
			return newSwapRoute(req, best, snapshot.BlockNumber), nil
		}
	}

	computeKey := fmt.Sprintf("%s/%s/%d/%d", formatQuoteRouteCacheKey(req), req.Amount, qc.config.MaxSwapsPerPath, qc.config.MaxSplits)
	result, err, _ := r.computeGroup.Do(computeKey, func() (interface{}, error) {
		// the result is shared by every caller waiting on the key
		return r.computeBestSwapRoute(context.WithoutCancel(ctx), qc)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNoRoute) {
			noRouteCounter.WithLabelValues(req.ChainID.String()).Inc()
			r.logger.Info("no route found",
				zap.Stringer("chain_id", req.ChainID),
				zap.String("token_in", req.TokenIn.Address),
				zap.String("token_out", req.TokenOut.Address))
			return newNoRouteSwapRoute(req, snapshot.BlockNumber), nil
		}
		return domain.SwapRoute{}, err
	}

	// nolint: forcetypeassert
	best := result.(BestSwapRoute)

	if hasCurrentBlock {
		r.storeCachedRoutes(req, best, currentBlock, qc.config.RouteCacheBlocksToLive)
	}

	return newSwapRoute(req, best, snapshot.BlockNumber), nil
}

// GetCandidatePools implements mvc.RouterUsecase.
func (r *routerUseCaseImpl) GetCandidatePools(ctx context.Context, chainID domain.ChainID, tokenIn, tokenOut domain.Asset) (domain.CandidatePoolSelection, error) {
	chain, err := r.chains.Get(chainID)
	if err != nil {
		return domain.CandidatePoolSelection{}, err
	}

	snapshot, err := r.poolsUsecase.GetPools(ctx, chainID, nil)
	if err != nil {
		return domain.CandidatePoolSelection{}, err
	}

	return GetCandidatePools(domain.ProtocolV2, snapshot.Pools, tokenIn, tokenOut, chain.BaseAssets, r.config), nil
}

// GetConfig implements mvc.RouterUsecase.
func (r *routerUseCaseImpl) GetConfig() domain.RouterConfig {
	return r.config
}

// validateRequest checks the request against the configuration and normalizes it.
func (r *routerUseCaseImpl) validateRequest(req domain.QuoteRequest) (domain.QuoteRequest, domain.ChainConfig, error) {
	chain, err := r.chains.Get(req.ChainID)
	if err != nil {
		return domain.QuoteRequest{}, domain.ChainConfig{}, err
	}

	if !req.TradeType.IsValid() {
		return domain.QuoteRequest{}, domain.ChainConfig{}, domain.InvalidTradeTypeError{TradeType: req.TradeType.String()}
	}

	for _, asset := range []domain.Asset{req.TokenIn, req.TokenOut} {
		if err := domain.ValidateAddress(asset.Address); err != nil {
			return domain.QuoteRequest{}, domain.ChainConfig{}, err
		}
	}

	if err := domain.ValidateInputAssets(req.TokenIn, req.TokenOut); err != nil {
		return domain.QuoteRequest{}, domain.ChainConfig{}, err
	}

	if req.Amount.IsNil() || !req.Amount.IsPositive() {
		return domain.QuoteRequest{}, domain.ChainConfig{}, fmt.Errorf("%w: amount must be positive", domain.ErrBadParamInput)
	}

	if req.Amount.BigInt().BitLen() > domain.MaxAmountBitLen {
		return domain.QuoteRequest{}, domain.ChainConfig{}, fmt.Errorf("%w: amount exceeds %d bits", domain.ErrBadParamInput, domain.MaxAmountBitLen)
	}

	req.Protocols = domain.NewProtocolSet(req.Protocols...)
	for _, protocol := range req.Protocols {
		if !protocol.IsSupported() {
			return domain.QuoteRequest{}, domain.ChainConfig{}, domain.UnsupportedProtocolError{Protocol: protocol}
		}
	}

	req.TokenIn.Address = domain.NormalizeAddress(req.TokenIn.Address)
	req.TokenOut.Address = domain.NormalizeAddress(req.TokenOut.Address)

	return req, chain, nil
}

// getCurrentBlock returns the current block of the chain for route caching.
// Returns false if caching is disabled or the block is unknown.
func (r *routerUseCaseImpl) getCurrentBlock(ctx context.Context, chainID domain.ChainID) (uint64, bool) {
	if r.routeCache == nil || r.chainInfoUsecase == nil {
		return 0, false
	}

	currentBlock, err := r.chainInfoUsecase.GetLatestHeight(ctx, chainID)
	if err != nil {
		r.logger.Warn("failed to get current block, skipping route cache", zap.Stringer("chain_id", chainID), zap.Error(err))
		return 0, false
	}

	return currentBlock, true
}

// computeBestSwapRoute runs the full routing pipeline.
// Returns domain.ErrNoRoute if the pair cannot be routed.
func (r *routerUseCaseImpl) computeBestSwapRoute(ctx context.Context, qc quoteContext) (BestSwapRoute, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "routerUseCaseImpl.computeBestSwapRoute")
	defer span.End()

	req := qc.req

	var routes []domain.Route
	for _, protocol := range req.Protocols {
		selection := GetCandidatePools(protocol, qc.snapshot.Pools, req.TokenIn, req.TokenOut, qc.chain.BaseAssets, qc.config)
		protocolRoutes := ComputeAllRoutes(protocol, selection.Pools, req.TokenIn, req.TokenOut, qc.config.MaxSwapsPerPath, qc.config.MaxRoutes)

		r.logger.Debug("computed candidate routes",
			zap.String("protocol", string(protocol)),
			zap.Int("candidate_pools", len(selection.Pools)),
			zap.Int("routes", len(protocolRoutes)))

		routes = append(routes, protocolRoutes...)
	}

	span.SetAttributes(attribute.Int("routes", len(routes)))

	if len(routes) == 0 {
		return BestSwapRoute{}, domain.ErrNoRoute
	}

	fractions, err := GetAmountDistribution(req.Amount, qc.config.DistributionPercent)
	if err != nil {
		return BestSwapRoute{}, err
	}

	routesWithQuotes, err := QuoteRoutes(ctx, routes, fractions, req.TradeType, qc.config.QuoteWorkers)
	if err != nil {
		return BestSwapRoute{}, err
	}

	routeQuotes := make([]route.RouteWithValidQuote, 0, len(routes)*len(fractions))
	for _, routeWithQuotes := range routesWithQuotes {
		gasCost := qc.gasModel.EstimateGasCost(routeWithQuotes.Route)

		for _, quote := range routeWithQuotes.Quotes {
			if quote.Quote == nil {
				continue
			}
			routeQuotes = append(routeQuotes, route.NewRouteWithValidQuote(routeWithQuotes.Route, quote.Fraction, *quote.Quote, gasCost, req.TradeType))
		}
	}

	best, err := GetBestSwapRoute(routeQuotes, req.TradeType, SplitOptimizerConfig{
		MinSplits:      qc.config.MinSplits,
		MaxSplits:      qc.config.MaxSplits,
		TopKPerPercent: qc.config.TopKPerPercent,
	})
	if err != nil {
		return BestSwapRoute{}, err
	}

	return reconcileResidual(ctx, best, req.Amount, req.TradeType)
}

// getCachedBestSwapRoute re-quotes the cached splits of the request on the current snapshot.
// Returns false on a miss, an expired entry or if any cached split can no longer be quoted.
func (r *routerUseCaseImpl) getCachedBestSwapRoute(ctx context.Context, qc quoteContext, currentBlock uint64) (BestSwapRoute, bool) {
	req := qc.req
	chainLabel := req.ChainID.String()

	cachedRoutes, ok := r.routeCache.Get(req.ChainID, req.TokenIn, req.TokenOut, req.TradeType, req.Protocols)
	if !ok || !cachedRoutes.NotExpired(currentBlock) {
		cacheMisses.WithLabelValues(routeCacheLabel, chainLabel).Inc()
		return BestSwapRoute{}, false
	}

	best, err := requoteCachedRoutes(ctx, cachedRoutes, qc)
	if err != nil {
		r.logger.Debug("cached routes could not be re-quoted", zap.String("key", cachedRoutes.Key()), zap.Error(err))
		cacheMisses.WithLabelValues(routeCacheLabel, chainLabel).Inc()
		return BestSwapRoute{}, false
	}

	cacheHits.WithLabelValues(routeCacheLabel, chainLabel).Inc()
	return best, true
}

// storeCachedRoutes replaces the cached routes of the request with the chosen splits.
func (r *routerUseCaseImpl) storeCachedRoutes(req domain.QuoteRequest, best BestSwapRoute, currentBlock uint64, blocksToLive uint64) {
	routes := make([]domain.CachedRoute, len(best.Routes))
	for i, split := range best.Routes {
		routes[i] = domain.CachedRoute{
			Route:   split.Route,
			Percent: split.Percent,
		}
	}

	r.routeCache.Put(domain.CachedRoutes{
		Routes:       routes,
		ChainID:      req.ChainID,
		TokenIn:      req.TokenIn,
		TokenOut:     req.TokenOut,
		Protocols:    req.Protocols,
		TradeType:    req.TradeType,
		BlockNumber:  currentBlock,
		BlocksToLive: blocksToLive,
	})
}

// requoteCachedRoutes quotes the cached (route, percent) pairs with the pools of the
// current snapshot.
func requoteCachedRoutes(ctx context.Context, cachedRoutes domain.CachedRoutes, qc quoteContext) (BestSwapRoute, error) {
	poolsByAddress := make(map[string]domain.Pool, len(qc.snapshot.Pools))
	for _, pool := range qc.snapshot.Pools {
		poolsByAddress[pool.Address] = pool
	}

	percents := make([]int, len(cachedRoutes.Routes))
	for i, cachedRoute := range cachedRoutes.Routes {
		percents[i] = cachedRoute.Percent
	}
	amounts := ReconcileSplitAmounts(qc.req.Amount, percents)

	splits := make([]route.RouteWithValidQuote, 0, len(cachedRoutes.Routes))
	for i, cachedRoute := range cachedRoutes.Routes {
		currentPools := make([]domain.Pool, len(cachedRoute.Route.Pools))
		for j, cachedPool := range cachedRoute.Route.Pools {
			pool, ok := poolsByAddress[cachedPool.Address]
			if !ok {
				return BestSwapRoute{}, domain.PoolNotFoundError{PoolAddress: cachedPool.Address}
			}
			currentPools[j] = pool
		}

		currentRoute, err := domain.NewRoute(cachedRoute.Route.Protocol, cachedRoute.Route.TokenPath, currentPools)
		if err != nil {
			return BestSwapRoute{}, err
		}

		split, err := quoteSplit(ctx, currentRoute, domain.AmountFraction{Percent: cachedRoute.Percent, Amount: amounts[i]}, qc.gasModel.EstimateGasCost(currentRoute), qc.req.TradeType)
		if err != nil {
			return BestSwapRoute{}, err
		}
		splits = append(splits, split)
	}

	return newBestSwapRoute(splits), nil
}

// reconcileResidual makes the split amounts add up to the requested amount.
// The split receiving the rounding residual is re-quoted for its final amount.
func reconcileResidual(ctx context.Context, best BestSwapRoute, total osmomath.Int, tradeType domain.TradeType) (BestSwapRoute, error) {
	percents := make([]int, len(best.Routes))
	for i, split := range best.Routes {
		percents[i] = split.Percent
	}

	amounts := ReconcileSplitAmounts(total, percents)

	splits := make([]route.RouteWithValidQuote, len(best.Routes))
	for i, split := range best.Routes {
		if split.Amount.Equal(amounts[i]) {
			splits[i] = split
			continue
		}

		reconciled, err := quoteSplit(ctx, split.Route, domain.AmountFraction{Percent: split.Percent, Amount: amounts[i]}, split.GasCost, tradeType)
		if err != nil {
			if domain.IsQuoteDegradingError(err) {
				return BestSwapRoute{}, domain.ErrNoRoute
			}
			return BestSwapRoute{}, err
		}
		splits[i] = reconciled
	}

	return newBestSwapRoute(splits), nil
}

func quoteSplit(ctx context.Context, r domain.Route, fraction domain.AmountFraction, gasCost domain.GasCost, tradeType domain.TradeType) (route.RouteWithValidQuote, error) {
	routeImpl, err := route.NewRouteImpl(r)
	if err != nil {
		return route.RouteWithValidQuote{}, err
	}

	quote, err := routeImpl.Quote(ctx, tradeType, fraction.Amount)
	if err != nil {
		return route.RouteWithValidQuote{}, err
	}

	return route.NewRouteWithValidQuote(r, fraction, quote, gasCost, tradeType), nil
}

func formatQuoteRouteCacheKey(req domain.QuoteRequest) string {
	return domain.FormatRouteCacheKey(req.ChainID, req.TokenIn, req.TokenOut, req.TradeType, req.Protocols)
}
