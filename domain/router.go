package domain

import (
	"context"
	"fmt"

	"github.com/osmosis-labs/osmosis/osmomath"
)

// RoutablePool is a pool oriented in the direction of a trade.
type RoutablePool interface {
	GetPool() Pool

	GetTokenIn() Asset
	GetTokenOut() Asset

	// CalculateTokenOutByTokenIn returns the amount out for the given amount in.
	// Returns InsufficientReservesError or InsufficientInputAmountError when the
	// pool cannot fill the trade.
	CalculateTokenOutByTokenIn(ctx context.Context, amountIn osmomath.Int) (osmomath.Int, error)
	// CalculateTokenInByTokenOut returns the amount in required for the given amount out.
	CalculateTokenInByTokenOut(ctx context.Context, amountOut osmomath.Int) (osmomath.Int, error)

	String() string
}

// GasCost is the estimated execution cost of a route.
type GasCost struct {
	GasUnits            uint64       `json:"gasUnits"`
	GasCostInNative     osmomath.Int `json:"gasCostInNative"`
	GasCostInQuoteToken osmomath.Int `json:"gasCostInQuoteToken"`
	// GasCostInUSD is in human units of the reference currency.
	GasCostInUSD osmomath.Dec `json:"gasCostInUSD"`
}

// ZeroGasCost returns a gas cost with every component set to zero.
func ZeroGasCost() GasCost {
	return GasCost{
		GasCostInNative:     osmomath.ZeroInt(),
		GasCostInQuoteToken: osmomath.ZeroInt(),
		GasCostInUSD:        osmomath.ZeroDec(),
	}
}

// GasModel estimates the gas cost of routes for a single request.
type GasModel interface {
	EstimateGasCost(route Route) GasCost
}

// GasModelFactory builds a gas model for a quote token at a given gas price.
// It never fails: missing prices degrade the affected component to zero.
type GasModelFactory interface {
	BuildGasModel(ctx context.Context, chain ChainConfig, gasPrice osmomath.Int, quoteToken Asset) GasModel
}

type RouterConfig struct {
	// Candidate pool selection.
	TopN                  int `mapstructure:"top_n"`
	TopNTokenInOut        int `mapstructure:"top_n_token_in_out"`
	TopNSecondHop         int `mapstructure:"top_n_second_hop"`
	TopNWithEachBaseToken int `mapstructure:"top_n_with_each_base_token"`
	TopNWithBaseToken     int `mapstructure:"top_n_with_base_token"`

	// Route enumeration.
	MaxSwapsPerPath int `mapstructure:"max_swaps_per_path"`
	// Zero returns every simple path.
	MaxRoutes int `mapstructure:"max_routes"`

	// Splits.
	MinSplits           int `mapstructure:"min_splits"`
	MaxSplits           int `mapstructure:"max_splits"`
	DistributionPercent int `mapstructure:"distribution_percent"`
	TopKPerPercent      int `mapstructure:"top_k_per_percent"`

	// Number of goroutines quoting routes concurrently.
	QuoteWorkers int `mapstructure:"quote_workers"`

	RouteCacheEnabled      bool   `mapstructure:"route_cache_enabled"`
	RouteCacheBlocksToLive uint64 `mapstructure:"route_cache_blocks_to_live"`
	RouteCacheSize         int    `mapstructure:"route_cache_size"`
}

// Validate checks the router tunables for consistency.
func (c RouterConfig) Validate() error {
	if c.DistributionPercent <= 0 || 100%c.DistributionPercent != 0 {
		return fmt.Errorf("distribution percent (%d) must be a positive divisor of 100", c.DistributionPercent)
	}

	if c.MinSplits < 1 {
		return fmt.Errorf("min splits (%d) must be at least 1", c.MinSplits)
	}

	if c.MaxSplits < c.MinSplits {
		return fmt.Errorf("max splits (%d) must be greater than or equal to min splits (%d)", c.MaxSplits, c.MinSplits)
	}

	if c.MinSplits*c.DistributionPercent > 100 {
		return fmt.Errorf("min splits (%d) cannot each receive %d percent", c.MinSplits, c.DistributionPercent)
	}

	if c.MaxSwapsPerPath < 1 {
		return fmt.Errorf("max swaps per path (%d) must be at least 1", c.MaxSwapsPerPath)
	}

	if c.TopKPerPercent < 1 {
		return fmt.Errorf("top k per percent (%d) must be at least 1", c.TopKPerPercent)
	}

	return nil
}

// WithOverrides returns a copy of the config with the per-request overrides applied.
// Zero values keep the configured defaults.
func (c RouterConfig) WithOverrides(maxSwapsPerPath, maxSplits int) RouterConfig {
	if maxSwapsPerPath > 0 {
		c.MaxSwapsPerPath = maxSwapsPerPath
	}

	if maxSplits > 0 {
		c.MaxSplits = maxSplits
		if c.MinSplits > maxSplits {
			c.MinSplits = maxSplits
		}
	}

	return c
}
