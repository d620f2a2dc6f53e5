package mvc

import (
	"context"

	"github.com/riverdex/sor/domain"
)

// RouterUsecase represent the router's usecases
type RouterUsecase interface {
	// GetOptimalQuote returns the best, possibly split, route for the request.
	// A request without a viable route returns a SwapRoute with an empty route and no error.
	GetOptimalQuote(ctx context.Context, req domain.QuoteRequest) (domain.SwapRoute, error)
	// GetCandidatePools returns the candidate pool selection for the given pair.
	GetCandidatePools(ctx context.Context, chainID domain.ChainID, tokenIn, tokenOut domain.Asset) (domain.CandidatePoolSelection, error)
	// GetConfig returns the config for the router
	GetConfig() domain.RouterConfig
}

// RouteCacheRepository stores the chosen routes of recent quotes.
type RouteCacheRepository interface {
	// Get returns the cached routes for the given key parameters.
	// Expiry is not checked, callers decide with CachedRoutes.NotExpired.
	Get(chainID domain.ChainID, tokenIn, tokenOut domain.Asset, tradeType domain.TradeType, protocols domain.ProtocolSet) (domain.CachedRoutes, bool)
	// Put replaces the cached routes under their key.
	Put(cachedRoutes domain.CachedRoutes)
	// Len returns the number of cached entries.
	Len() int
}
