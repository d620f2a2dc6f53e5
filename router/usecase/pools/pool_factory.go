package pools

import (
	"github.com/riverdex/sor/domain"
)

// NewRoutablePool creates a routable pool that swaps tokenIn for the other pool asset.
// Returns an error if tokenIn is not traded by the pool, if the fee is out of range
// or if the protocol is not supported.
func NewRoutablePool(protocol domain.Protocol, pool domain.Pool, tokenIn domain.Asset) (domain.RoutablePool, error) {
	if !protocol.IsSupported() {
		return nil, domain.UnsupportedProtocolError{Protocol: protocol}
	}

	tokenOut, ok := pool.OtherAsset(tokenIn)
	if !ok {
		return nil, domain.AssetNotInPoolError{PoolAddress: pool.Address, Asset: tokenIn.Address}
	}

	if pool.FeeBps >= domain.FeeDenominator {
		return nil, domain.InvalidPoolFeeError{PoolAddress: pool.Address, FeeBps: pool.FeeBps}
	}

	return &routableConstantProductPoolImpl{
		Pool:     pool,
		TokenIn:  tokenIn,
		TokenOut: tokenOut,
	}, nil
}
