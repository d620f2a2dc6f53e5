package usecase

import (
	"strconv"

	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/shopspring/decimal"

	"github.com/riverdex/sor/domain"
)

// usdDisplayDecimals is the precision of USD amounts in responses.
const usdDisplayDecimals = 6

// newSwapRoute formats the best swap route for clients.
// Quote amounts are in human units of the quote token, split amounts and quotes
// are in smallest units.
func newSwapRoute(req domain.QuoteRequest, best BestSwapRoute, blockNumber uint64) domain.SwapRoute {
	quoteToken := req.QuoteToken()

	legs := make([]domain.SwapRouteLeg, 0, len(best.Routes))
	inputAmount := osmomath.ZeroInt()
	for _, split := range best.Routes {
		inputAmount = inputAmount.Add(split.Amount)

		legs = append(legs, domain.SwapRouteLeg{
			Protocol:      split.Route.Protocol,
			Description:   split.Route.String(),
			AmountParsed:  split.Amount.String(),
			QuoteParsed:   split.RawQuote.String(),
			TokenPath:     split.Route.TokenPath,
			Percent:       split.Percent,
			PoolAddresses: split.Route.PoolAddresses(),
		})
	}

	return domain.SwapRoute{
		Quote:               FormatHumanAmount(best.Quote, quoteToken.Decimals),
		QuoteGasAdjusted:    FormatHumanAmount(best.QuoteGasAdjusted, quoteToken.Decimals),
		EstimatedGasUsed:    strconv.FormatUint(best.GasCost.GasUnits, 10),
		EstimatedGasUsedUSD: FormatHumanDec(best.GasCost.GasCostInUSD, usdDisplayDecimals),
		TradeType:           req.TradeType,
		InputAmount:         inputAmount.String(),
		BlockNumber:         blockNumber,
		Route:               legs,
	}
}

// newNoRouteSwapRoute is the well formed response of a request without a viable route.
func newNoRouteSwapRoute(req domain.QuoteRequest, blockNumber uint64) domain.SwapRoute {
	return domain.SwapRoute{
		TradeType:   req.TradeType,
		InputAmount: req.Amount.String(),
		BlockNumber: blockNumber,
		Route:       []domain.SwapRouteLeg{},
	}
}

// FormatHumanAmount renders an amount in smallest units with the given number of decimals.
func FormatHumanAmount(amount osmomath.Int, decimals int) string {
	if amount.IsNil() {
		amount = osmomath.ZeroInt()
	}
	return decimal.NewFromBigInt(amount.BigInt(), int32(-decimals)).StringFixed(int32(decimals))
}

// FormatHumanDec renders a decimal rounded to the given number of decimals.
func FormatHumanDec(value osmomath.Dec, decimals int) string {
	if value.IsNil() {
		return decimal.Zero.StringFixed(int32(decimals))
	}

	parsed, err := decimal.NewFromString(value.String())
	if err != nil {
		return value.String()
	}
	return parsed.StringFixed(int32(decimals))
}
