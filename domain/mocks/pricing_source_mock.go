package mocks

import (
	"context"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/riverdex/sor/domain"
)

var (
	_ domain.PricingSource  = &PricingSourceMock{}
	_ domain.GasPriceSource = &GasPriceSourceMock{}
)

// PricingSourceMock serves prices from maps keyed by normalized token address.
// A missing price returns domain.PriceNotFoundError.
type PricingSourceMock struct {
	GetTokenPriceInNativeFunc func(ctx context.Context, chain domain.ChainConfig, token domain.Asset) (osmomath.Dec, error)
	GetNativePriceInUSDFunc   func(ctx context.Context, chain domain.ChainConfig) (osmomath.Dec, error)

	TokenPricesInNative map[string]osmomath.Dec
	NativePriceInUSD    osmomath.Dec
}

// GetTokenPriceInNative implements domain.PricingSource.
func (m *PricingSourceMock) GetTokenPriceInNative(ctx context.Context, chain domain.ChainConfig, token domain.Asset) (osmomath.Dec, error) {
	if m.GetTokenPriceInNativeFunc != nil {
		return m.GetTokenPriceInNativeFunc(ctx, chain, token)
	}

	price, ok := m.TokenPricesInNative[domain.NormalizeAddress(token.Address)]
	if !ok {
		return osmomath.Dec{}, domain.PriceNotFoundError{ChainID: chain.ChainID, Base: token.Address, Quote: chain.NativeSymbol}
	}
	return price, nil
}

// GetNativePriceInUSD implements domain.PricingSource.
func (m *PricingSourceMock) GetNativePriceInUSD(ctx context.Context, chain domain.ChainConfig) (osmomath.Dec, error) {
	if m.GetNativePriceInUSDFunc != nil {
		return m.GetNativePriceInUSDFunc(ctx, chain)
	}

	if m.NativePriceInUSD.IsNil() {
		return osmomath.Dec{}, domain.PriceNotFoundError{ChainID: chain.ChainID, Base: chain.NativeSymbol, Quote: "USD"}
	}
	return m.NativePriceInUSD, nil
}

// GasPriceSourceMock returns GasPrice, zero when unset.
type GasPriceSourceMock struct {
	GasPrice osmomath.Int
}

// GetGasPrice implements domain.GasPriceSource.
func (m *GasPriceSourceMock) GetGasPrice(ctx context.Context, chain domain.ChainConfig) osmomath.Int {
	if m.GasPrice.IsNil() {
		return osmomath.ZeroInt()
	}
	return m.GasPrice
}
