package pools

import (
	"context"
	"fmt"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/riverdex/sor/domain"
)

var _ domain.RoutablePool = &routableConstantProductPoolImpl{}

var feeDenominator = osmomath.NewInt(domain.FeeDenominator)

// maxIntBitLen is the bit length limit of osmomath.Int.
const maxIntBitLen = 256

// routableConstantProductPoolImpl quotes a constant-product (x*y=k) pool
// in the direction TokenIn -> TokenOut.
type routableConstantProductPoolImpl struct {
	Pool     domain.Pool  "json:\"pool\""
	TokenIn  domain.Asset "json:\"token_in\""
	TokenOut domain.Asset "json:\"token_out\""
}

// GetPool implements domain.RoutablePool.
func (r *routableConstantProductPoolImpl) GetPool() domain.Pool {
	return r.Pool
}

// GetTokenIn implements domain.RoutablePool.
func (r *routableConstantProductPoolImpl) GetTokenIn() domain.Asset {
	return r.TokenIn
}

// GetTokenOut implements domain.RoutablePool.
func (r *routableConstantProductPoolImpl) GetTokenOut() domain.Asset {
	return r.TokenOut
}

// CalculateTokenOutByTokenIn implements domain.RoutablePool.
//
// out = in * (D - fee) * reserveOut / (reserveIn * D + in * (D - fee))
// where D is the fee denominator.
func (r *routableConstantProductPoolImpl) CalculateTokenOutByTokenIn(ctx context.Context, amountIn osmomath.Int) (osmomath.Int, error) {
	reserveIn, reserveOut, err := r.Pool.GetReserves(r.TokenIn)
	if err != nil {
		return osmomath.Int{}, err
	}

	if reserveIn.IsZero() || reserveOut.IsZero() {
		return osmomath.Int{}, domain.InsufficientReservesError{PoolAddress: r.Pool.Address}
	}

	if amountIn.IsNil() || !amountIn.IsPositive() {
		return osmomath.Int{}, domain.InsufficientInputAmountError{PoolAddress: r.Pool.Address, Amount: amountString(amountIn)}
	}

	amountInWithFee, err := r.mul(amountIn, r.feeComplement())
	if err != nil {
		return osmomath.Int{}, err
	}
	numerator, err := r.mul(amountInWithFee, reserveOut)
	if err != nil {
		return osmomath.Int{}, err
	}
	scaledReserveIn, err := r.mul(reserveIn, feeDenominator)
	if err != nil {
		return osmomath.Int{}, err
	}
	// both terms are below 2^255, their sum fits
	denominator := scaledReserveIn.Add(amountInWithFee)

	amountOut := numerator.Quo(denominator)
	if !amountOut.IsPositive() {
		return osmomath.Int{}, domain.InsufficientInputAmountError{PoolAddress: r.Pool.Address, Amount: amountIn.String()}
	}

	return amountOut, nil
}

// CalculateTokenInByTokenOut implements domain.RoutablePool.
//
// in = reserveIn * out * D / ((reserveOut - out) * (D - fee)) + 1
func (r *routableConstantProductPoolImpl) CalculateTokenInByTokenOut(ctx context.Context, amountOut osmomath.Int) (osmomath.Int, error) {
	reserveIn, reserveOut, err := r.Pool.GetReserves(r.TokenIn)
	if err != nil {
		return osmomath.Int{}, err
	}

	if reserveIn.IsZero() || reserveOut.IsZero() {
		return osmomath.Int{}, domain.InsufficientReservesError{PoolAddress: r.Pool.Address}
	}

	if amountOut.IsNil() || !amountOut.IsPositive() {
		return osmomath.Int{}, domain.InsufficientInputAmountError{PoolAddress: r.Pool.Address, Amount: amountString(amountOut)}
	}

	// The pool can never be drained of its out reserve.
	if amountOut.GTE(reserveOut) {
		return osmomath.Int{}, domain.InsufficientReservesError{PoolAddress: r.Pool.Address}
	}

	numerator, err := r.mul(reserveIn, amountOut)
	if err != nil {
		return osmomath.Int{}, err
	}
	if numerator, err = r.mul(numerator, feeDenominator); err != nil {
		return osmomath.Int{}, err
	}
	denominator, err := r.mul(reserveOut.Sub(amountOut), r.feeComplement())
	if err != nil {
		return osmomath.Int{}, err
	}

	return numerator.Quo(denominator).Add(osmomath.OneInt()), nil
}

// String implements domain.RoutablePool.
func (r *routableConstantProductPoolImpl) String() string {
	return fmt.Sprintf("pool (%s), fee (%d bps), %s -> %s", r.Pool.Address, r.Pool.FeeBps, r.TokenIn, r.TokenOut)
}

func (r *routableConstantProductPoolImpl) feeComplement() osmomath.Int {
	return feeDenominator.Sub(osmomath.NewInt(int64(r.Pool.FeeBps)))
}

// mul multiplies a and b, returning AmountOverflowError when the product may not
// fit below 2^255.
func (r *routableConstantProductPoolImpl) mul(a, b osmomath.Int) (osmomath.Int, error) {
	if a.BigInt().BitLen()+b.BigInt().BitLen() >= maxIntBitLen {
		return osmomath.Int{}, domain.AmountOverflowError{PoolAddress: r.Pool.Address}
	}
	return a.Mul(b), nil
}

func amountString(amount osmomath.Int) string {
	if amount.IsNil() {
		return "nil"
	}
	return amount.String()
}
