package usecase

import (
	"strings"

	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/shopspring/decimal"

	"github.com/riverdex/sor/domain"
)

const (
	maxTokenDecimals = 77
	maxReserveBitLen = 256
	// legacy decimals carry at most 18 fractional digits
	maxLiquidityProxyPrecision = 18
)

// ConvertRawPool converts a provider pool into a pool at the given block.
// Addresses are lower-cased and base58 Tron addresses are converted to hex.
// Reserves with a fractional part are read as human units and scaled by the token decimals.
func ConvertRawPool(rawPool domain.RawPool, blockNumber uint64) (domain.Pool, error) {
	address, err := domain.TronAddressToHex(rawPool.PairAddress)
	if err != nil {
		return domain.Pool{}, err
	}

	if err := domain.ValidateAddress(address); err != nil {
		return domain.Pool{}, err
	}

	token0, err := convertRawToken(address, rawPool.Token0)
	if err != nil {
		return domain.Pool{}, err
	}

	token1, err := convertRawToken(address, rawPool.Token1)
	if err != nil {
		return domain.Pool{}, err
	}

	if token0.Equal(token1) {
		return domain.Pool{}, domain.InvalidRawPoolError{PoolAddress: address, Reason: "both tokens are the same"}
	}

	feeBps := uint32(domain.DefaultFeeBps)
	if rawPool.Fee != nil {
		feeBps = *rawPool.Fee
	}
	if feeBps >= domain.FeeDenominator {
		return domain.Pool{}, domain.InvalidPoolFeeError{PoolAddress: address, FeeBps: feeBps}
	}

	reserve0, err := parseReserve(address, rawPool.Reserve0, token0.Decimals)
	if err != nil {
		return domain.Pool{}, err
	}

	reserve1, err := parseReserve(address, rawPool.Reserve1, token1.Decimals)
	if err != nil {
		return domain.Pool{}, err
	}

	liquidityProxy, err := parseLiquidityProxy(address, rawPool)
	if err != nil {
		return domain.Pool{}, err
	}

	return domain.Pool{
		Address:        address,
		Token0:         token0,
		Token1:         token1,
		FeeBps:         feeBps,
		Reserve0:       reserve0,
		Reserve1:       reserve1,
		LiquidityProxy: liquidityProxy,
		BlockNumber:    blockNumber,
	}, nil
}

func convertRawToken(poolAddress string, rawToken domain.RawPoolToken) (domain.Asset, error) {
	address, err := domain.TronAddressToHex(rawToken.Address)
	if err != nil {
		return domain.Asset{}, err
	}

	if err := domain.ValidateAddress(address); err != nil {
		return domain.Asset{}, err
	}

	if rawToken.Decimals < 0 || rawToken.Decimals > maxTokenDecimals {
		return domain.Asset{}, domain.InvalidRawPoolError{PoolAddress: poolAddress, Reason: "token decimals out of range"}
	}

	return domain.NewAsset(address, rawToken.Decimals, rawToken.Symbol), nil
}

func parseReserve(poolAddress, value string, decimals int) (osmomath.Int, error) {
	reserve, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return osmomath.Int{}, domain.InvalidRawPoolError{PoolAddress: poolAddress, Reason: "reserve (" + value + ") is not a number"}
	}

	if reserve.IsNegative() {
		return osmomath.Int{}, domain.InvalidRawPoolError{PoolAddress: poolAddress, Reason: "reserve (" + value + ") is negative"}
	}

	if reserve.Exponent() < 0 {
		reserve = reserve.Shift(int32(decimals)).Truncate(0)
	}

	bigReserve := reserve.BigInt()
	if bigReserve.BitLen() > maxReserveBitLen {
		return osmomath.Int{}, domain.InvalidRawPoolError{PoolAddress: poolAddress, Reason: "reserve (" + value + ") exceeds 256 bits"}
	}

	return osmomath.NewIntFromBigInt(bigReserve), nil
}

// parseLiquidityProxy picks the explicit proxy value (or its legacy name), then the
// tracked native reserve, then the USD reserve. A pool without any of them ranks last.
func parseLiquidityProxy(poolAddress string, rawPool domain.RawPool) (osmomath.Dec, error) {
	for _, value := range []string{rawPool.LiquidityProxyValue, rawPool.Reserve, rawPool.TrackedReserveETH, rawPool.ReserveUSD} {
		if value == "" {
			continue
		}

		proxy, err := decimal.NewFromString(value)
		if err != nil || proxy.IsNegative() {
			return osmomath.Dec{}, domain.InvalidRawPoolError{PoolAddress: poolAddress, Reason: "liquidity proxy (" + value + ") is not a non-negative number"}
		}

		return osmomath.NewDecFromStr(proxy.Truncate(maxLiquidityProxyPrecision).String())
	}

	return osmomath.ZeroDec(), nil
}
