package route

import (
	"fmt"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/riverdex/sor/domain"
)

// RouteWithValidQuote is a route quoted for a fraction of the trade amount,
// together with its gas cost and the gas adjusted quote.
// It is a value object and is never mutated after construction.
type RouteWithValidQuote struct {
	Route     domain.Route     `json:"route"`
	Percent   int              `json:"percent"`
	Amount    osmomath.Int     `json:"amount"`
	TradeType domain.TradeType `json:"tradeType"`

	RawQuote            osmomath.Int   `json:"quote"`
	GasCost             domain.GasCost `json:"gasCost"`
	QuoteAdjustedForGas osmomath.Int   `json:"quoteGasAdjusted"`
}

// NewRouteWithValidQuote adjusts the raw quote for gas.
//
// Exact-in: adjusted = raw - gas, floored at zero (the trader receives less).
// Exact-out: adjusted = raw + gas (the trader pays more).
func NewRouteWithValidQuote(route domain.Route, fraction domain.AmountFraction, rawQuote osmomath.Int, gasCost domain.GasCost, tradeType domain.TradeType) RouteWithValidQuote {
	gasInQuote := gasCost.GasCostInQuoteToken
	if gasInQuote.IsNil() {
		gasInQuote = osmomath.ZeroInt()
	}

	var adjusted osmomath.Int
	if tradeType == domain.TradeTypeExactOut {
		adjusted = rawQuote.Add(gasInQuote)
	} else {
		adjusted = rawQuote.Sub(gasInQuote)
		if adjusted.IsNegative() {
			adjusted = osmomath.ZeroInt()
		}
	}

	return RouteWithValidQuote{
		Route:               route,
		Percent:             fraction.Percent,
		Amount:              fraction.Amount,
		TradeType:           tradeType,
		RawQuote:            rawQuote,
		GasCost:             gasCost,
		QuoteAdjustedForGas: adjusted,
	}
}

// IsBetterThan returns true if r has a strictly better gas adjusted quote than other.
// Exact-in prefers the larger output, exact-out the smaller input.
func (r RouteWithValidQuote) IsBetterThan(other RouteWithValidQuote) bool {
	return IsBetterQuote(r.TradeType, r.QuoteAdjustedForGas, other.QuoteAdjustedForGas)
}

// Key identifies the route of the quote.
func (r RouteWithValidQuote) Key() string {
	return r.Route.Key()
}

// String implements fmt.Stringer.
func (r RouteWithValidQuote) String() string {
	return fmt.Sprintf("%d%% [%s] quote (%s) adjusted (%s)", r.Percent, r.Route, r.RawQuote, r.QuoteAdjustedForGas)
}

// IsBetterQuote compares two aggregate quotes for the trade type.
func IsBetterQuote(tradeType domain.TradeType, candidate, current osmomath.Int) bool {
	if tradeType == domain.TradeTypeExactOut {
		return candidate.LT(current)
	}
	return candidate.GT(current)
}
