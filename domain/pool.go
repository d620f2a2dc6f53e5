package domain

import (
	"github.com/osmosis-labs/osmosis/osmomath"
)

const (
	// FeeDenominator is the denominator of pool fees expressed in basis points.
	FeeDenominator = 10_000
	// DefaultFeeBps is the fee applied when the data provider omits it (0.3%).
	DefaultFeeBps = 30
)

// Pool is an immutable snapshot of a constant-product pool.
type Pool struct {
	Address string `json:"address"`
	Token0  Asset  `json:"token0"`
	Token1  Asset  `json:"token1"`
	// FeeBps is the swap fee in basis points.
	FeeBps   uint32       `json:"fee"`
	Reserve0 osmomath.Int `json:"reserve0"`
	Reserve1 osmomath.Int `json:"reserve1"`
	// LiquidityProxy ranks pools against each other during candidate selection.
	LiquidityProxy osmomath.Dec `json:"reserve"`
	BlockNumber    uint64       `json:"blockNumber"`
}

// Involves returns true if the asset is one of the two pool assets.
func (p Pool) Involves(asset Asset) bool {
	return p.Token0.Equal(asset) || p.Token1.Equal(asset)
}

// Connects returns true if the pool trades a against b.
func (p Pool) Connects(a, b Asset) bool {
	return (p.Token0.Equal(a) && p.Token1.Equal(b)) || (p.Token0.Equal(b) && p.Token1.Equal(a))
}

// OtherAsset returns the counterpart of the given asset in the pool.
func (p Pool) OtherAsset(asset Asset) (Asset, bool) {
	switch {
	case p.Token0.Equal(asset):
		return p.Token1, true
	case p.Token1.Equal(asset):
		return p.Token0, true
	default:
		return Asset{}, false
	}
}

// GetReserves returns the reserves ordered as (tokenIn, tokenOut).
func (p Pool) GetReserves(tokenIn Asset) (reserveIn osmomath.Int, reserveOut osmomath.Int, err error) {
	switch {
	case p.Token0.Equal(tokenIn):
		return p.reserve0(), p.reserve1(), nil
	case p.Token1.Equal(tokenIn):
		return p.reserve1(), p.reserve0(), nil
	default:
		return osmomath.Int{}, osmomath.Int{}, AssetNotInPoolError{PoolAddress: p.Address, Asset: tokenIn.Address}
	}
}

// IsEmpty returns true if any reserve is zero. Empty pools reject all trades.
func (p Pool) IsEmpty() bool {
	return !p.reserve0().IsPositive() || !p.reserve1().IsPositive()
}

// GetLiquidityProxy returns the liquidity proxy, zero when unset.
func (p Pool) GetLiquidityProxy() osmomath.Dec {
	if p.LiquidityProxy.IsNil() {
		return osmomath.ZeroDec()
	}
	return p.LiquidityProxy
}

func (p Pool) reserve0() osmomath.Int {
	if p.Reserve0.IsNil() {
		return osmomath.ZeroInt()
	}
	return p.Reserve0
}

func (p Pool) reserve1() osmomath.Int {
	if p.Reserve1.IsNil() {
		return osmomath.ZeroInt()
	}
	return p.Reserve1
}

// PoolsSnapshot is the full set of pools of a chain at a given block.
type PoolsSnapshot struct {
	ChainID     ChainID `json:"chainId"`
	BlockNumber uint64  `json:"blockNumber"`
	Pools       []Pool  `json:"pools"`
}
