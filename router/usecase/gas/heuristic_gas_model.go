package gas

import (
	"context"
	"math/big"

	"github.com/osmosis-labs/osmosis/osmomath"
	"go.uber.org/zap"

	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/log"
)

type heuristicGasModelFactory struct {
	pricingSource domain.PricingSource
	logger        log.Logger
}

var _ domain.GasModelFactory = &heuristicGasModelFactory{}

// NewHeuristicGasModelFactory returns a gas model factory that estimates gas from the
// number of hops of a route and converts it with the given pricing source.
func NewHeuristicGasModelFactory(pricingSource domain.PricingSource, logger log.Logger) *heuristicGasModelFactory {
	return &heuristicGasModelFactory{
		pricingSource: pricingSource,
		logger:        logger,
	}
}

// heuristicGasModel holds the prices resolved for a single request.
// A nil price means the conversion is unavailable and the component is zero.
type heuristicGasModel struct {
	chain      domain.ChainConfig
	gasPrice   osmomath.Int
	quoteToken domain.Asset

	// quoteIsNative is true if the quote token is the wrapped native currency.
	quoteIsNative      bool
	tokenPriceInNative *osmomath.Dec
	nativePriceInUSD   *osmomath.Dec
}

var _ domain.GasModel = &heuristicGasModel{}

// BuildGasModel implements domain.GasModelFactory.
// Missing prices are logged and degrade the affected cost to zero.
func (f *heuristicGasModelFactory) BuildGasModel(ctx context.Context, chain domain.ChainConfig, gasPrice osmomath.Int, quoteToken domain.Asset) domain.GasModel {
	if chain.HasFixedGasPrice() {
		gasPrice = uint64ToInt(chain.Gas.FixedGasPrice)
	} else if gasPrice.IsNil() {
		gasPrice = osmomath.ZeroInt()
	}

	model := &heuristicGasModel{
		chain:         chain,
		gasPrice:      gasPrice,
		quoteToken:    quoteToken,
		quoteIsNative: chain.IsWrappedNative(quoteToken),
	}

	if !model.quoteIsNative {
		price, err := f.pricingSource.GetTokenPriceInNative(ctx, chain, quoteToken)
		if err != nil || price.IsNil() || !price.IsPositive() {
			f.logger.Warn("unable to price quote token in native currency, gas cost in quote token is zero",
				zap.Stringer("chain_id", chain.ChainID),
				zap.String("token", quoteToken.Address),
				zap.Error(err))
		} else {
			model.tokenPriceInNative = &price
		}
	}

	price, err := f.pricingSource.GetNativePriceInUSD(ctx, chain)
	if err != nil || price.IsNil() || price.IsNegative() {
		f.logger.Warn("unable to price native currency in USD, gas cost in USD is zero",
			zap.Stringer("chain_id", chain.ChainID),
			zap.Error(err))
	} else {
		model.nativePriceInUSD = &price
	}

	return model
}

// EstimateGasCost implements domain.GasModel.
//
// units = base swap cost + cost per extra hop * (hops - 1)
func (m *heuristicGasModel) EstimateGasCost(route domain.Route) domain.GasCost {
	hops := uint64(route.HopCount())
	if hops == 0 {
		return domain.ZeroGasCost()
	}

	gasUnits := m.chain.Gas.BaseSwapCost + m.chain.Gas.CostPerExtraHop*(hops-1)
	gasCostInNative := uint64ToInt(gasUnits).Mul(m.gasPrice)

	return domain.GasCost{
		GasUnits:            gasUnits,
		GasCostInNative:     gasCostInNative,
		GasCostInQuoteToken: m.toQuoteToken(gasCostInNative),
		GasCostInUSD:        m.toUSD(gasCostInNative),
	}
}

// toQuoteToken converts the native cost into the smallest unit of the quote token.
func (m *heuristicGasModel) toQuoteToken(gasCostInNative osmomath.Int) osmomath.Int {
	if m.quoteIsNative {
		return gasCostInNative
	}

	if m.tokenPriceInNative == nil {
		return osmomath.ZeroInt()
	}

	// native * 10^quoteDecimals / (price * 10^nativeDecimals)
	numerator := osmomath.NewDecFromInt(gasCostInNative).MulInt(pow10(m.quoteToken.Decimals))
	denominator := m.tokenPriceInNative.MulInt(pow10(m.chain.WrappedNative.Decimals))

	return numerator.Quo(denominator).TruncateInt()
}

// toUSD converts the native cost into human USD.
func (m *heuristicGasModel) toUSD(gasCostInNative osmomath.Int) osmomath.Dec {
	if m.nativePriceInUSD == nil {
		return osmomath.ZeroDec()
	}

	return osmomath.NewDecFromInt(gasCostInNative).QuoInt(pow10(m.chain.WrappedNative.Decimals)).Mul(*m.nativePriceInUSD)
}

func uint64ToInt(value uint64) osmomath.Int {
	return osmomath.NewIntFromBigInt(new(big.Int).SetUint64(value))
}

func pow10(exponent int) osmomath.Int {
	return osmomath.NewIntFromBigInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exponent)), nil))
}
