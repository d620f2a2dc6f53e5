package domain

import (
	"context"
)

// RawPoolToken is a pool asset as returned by a pool data provider.
type RawPoolToken struct {
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// RawPool is a pool as returned by a pool data provider.
type RawPool struct {
	PairAddress string       `json:"pairAddress"`
	Token0      RawPoolToken `json:"token0"`
	Token1      RawPoolToken `json:"token1"`
	// Reserves are integers in the smallest unit. Values with a fractional
	// part are read as human units of the token.
	Reserve0 string `json:"reserve0"`
	Reserve1 string `json:"reserve1"`
	// Fee is in basis points. Nil uses DefaultFeeBps.
	Fee *uint32 `json:"fee,omitempty"`
	// LiquidityProxyValue ranks pools against each other.
	LiquidityProxyValue string `json:"liquidityProxyValue,omitempty"`
	// Reserve is the legacy name of LiquidityProxyValue.
	Reserve string `json:"reserve,omitempty"`
	// TrackedReserveETH is the pool liquidity in native units.
	TrackedReserveETH string `json:"trackedReserveETH,omitempty"`
	ReserveUSD        string `json:"reserveUSD,omitempty"`
}

// RawPoolsResponse is the payload of a pool data provider, {"pools": [...]}.
// Older providers name the list "pairs".
type RawPoolsResponse struct {
	Pools []RawPool `json:"pools"`
	Pairs []RawPool `json:"pairs,omitempty"`
}

// GetPools returns the pools of the response, falling back to the legacy list.
func (r RawPoolsResponse) GetPools() []RawPool {
	if r.Pools != nil {
		return r.Pools
	}
	return r.Pairs
}

// PoolsProvider fetches the raw pools of a chain.
// Implementations must be idempotent for a fixed block number.
type PoolsProvider interface {
	// GetPools returns the raw pools at the given block, or the latest pools if nil.
	GetPools(ctx context.Context, chainID ChainID, blockNumber *uint64) ([]RawPool, error)
	// Name identifies the provider in logs and errors.
	Name() string
}
