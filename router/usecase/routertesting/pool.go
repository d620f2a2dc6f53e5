package routertesting

import (
	"fmt"
	"math/big"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/riverdex/sor/domain"
)

// NewPool returns a pool with the default fee whose liquidity proxy is the
// given human value.
func NewPool(address string, token0, token1 domain.Asset, reserve0, reserve1 osmomath.Int, liquidity int64) domain.Pool {
	return NewPoolWithFee(address, token0, token1, reserve0, reserve1, liquidity, domain.DefaultFeeBps)
}

// NewPoolWithFee is NewPool with a custom fee in basis points.
func NewPoolWithFee(address string, token0, token1 domain.Asset, reserve0, reserve1 osmomath.Int, liquidity int64, feeBps uint32) domain.Pool {
	return domain.Pool{
		Address:        domain.NormalizeAddress(address),
		Token0:         token0,
		Token1:         token1,
		FeeBps:         feeBps,
		Reserve0:       reserve0,
		Reserve1:       reserve1,
		LiquidityProxy: osmomath.NewDec(liquidity),
	}
}

// PoolAddress returns a deterministic pool address for tests.
func PoolAddress(i int) string {
	return fmt.Sprintf("0x%040x", i)
}

// HumanAmount converts whole units of the asset into its smallest unit.
func HumanAmount(units int64, asset domain.Asset) osmomath.Int {
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(asset.Decimals)), nil)
	return osmomath.NewIntFromBigInt(new(big.Int).Mul(big.NewInt(units), scale))
}

// Pool WETH / USDC -> 1000 WETH, 2_000_000 USDC.
func PoolWETHUSDC() domain.Pool {
	return NewPool(PoolAddress(1), WETH, USDC, HumanAmount(1_000, WETH), HumanAmount(2_000_000, USDC), 4_000_000)
}

// Pool USDC / DAI -> 1_000_000 USDC, 1_000_000 DAI.
func PoolUSDCDAI() domain.Pool {
	return NewPool(PoolAddress(2), USDC, DAI, HumanAmount(1_000_000, USDC), HumanAmount(1_000_000, DAI), 2_000_000)
}

// Pool WETH / DAI -> 500 WETH, 1_000_000 DAI.
func PoolWETHDAI() domain.Pool {
	return NewPool(PoolAddress(3), WETH, DAI, HumanAmount(500, WETH), HumanAmount(1_000_000, DAI), 2_000_000)
}

// Pool WETH / USDT -> 800 WETH, 1_600_000 USDT.
func PoolWETHUSDT() domain.Pool {
	return NewPool(PoolAddress(4), WETH, USDT, HumanAmount(800, WETH), HumanAmount(1_600_000, USDT), 3_200_000)
}

// Pool USDT / DAI -> 500_000 USDT, 500_000 DAI.
func PoolUSDTDAI() domain.Pool {
	return NewPool(PoolAddress(5), USDT, DAI, HumanAmount(500_000, USDT), HumanAmount(500_000, DAI), 1_000_000)
}

// Pool UNI / WETH -> 100_000 UNI, 250 WETH.
func PoolUNIWETH() domain.Pool {
	return NewPool(PoolAddress(6), UNI, WETH, HumanAmount(100_000, UNI), HumanAmount(250, WETH), 1_000_000)
}

// DefaultMainnetPools returns a small connected mainnet market.
func DefaultMainnetPools() []domain.Pool {
	return []domain.Pool{
		PoolWETHUSDC(),
		PoolUSDCDAI(),
		PoolWETHDAI(),
		PoolWETHUSDT(),
		PoolUSDTDAI(),
		PoolUNIWETH(),
	}
}
