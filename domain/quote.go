package domain

import (
	"github.com/osmosis-labs/osmosis/osmomath"
)

// QuoteRequest is a request for the best route of a trade.
type QuoteRequest struct {
	ChainID   ChainID
	TokenIn   Asset
	TokenOut  Asset
	TradeType TradeType
	// Amount is the input amount for exact-in trades and the output amount
	// for exact-out trades, in the smallest unit.
	Amount    osmomath.Int
	Protocols ProtocolSet

	// Zero values use the configured defaults.
	MaxSwapsPerPath int
	MaxSplits       int
}

// AmountToken returns the asset in which Amount is denominated.
func (r QuoteRequest) AmountToken() Asset {
	if r.TradeType == TradeTypeExactOut {
		return r.TokenOut
	}
	return r.TokenIn
}

// HasOverrides returns true if the request overrides the configured hop or split limits.
func (r QuoteRequest) HasOverrides() bool {
	return r.MaxSwapsPerPath > 0 || r.MaxSplits > 0
}

// QuoteToken returns the asset in which quotes are denominated.
func (r QuoteRequest) QuoteToken() Asset {
	if r.TradeType == TradeTypeExactOut {
		return r.TokenIn
	}
	return r.TokenOut
}

// AmountQuote is the quote of a route for one amount fraction.
// Quote is nil when the route could not fill the fraction.
type AmountQuote struct {
	Fraction AmountFraction
	Quote    *osmomath.Int
}

// RouteWithAmountQuotes holds the quotes of a route, one per amount fraction,
// in the order of the fractions.
type RouteWithAmountQuotes struct {
	Route  Route
	Quotes []AmountQuote
}

// SwapRoute is the result returned to clients.
// Route is empty when no route is found.
type SwapRoute struct {
	Quote               string         `json:"quote,omitempty"`
	QuoteGasAdjusted    string         `json:"quoteGasAdjusted,omitempty"`
	EstimatedGasUsed    string         `json:"estimatedGasUsed,omitempty"`
	EstimatedGasUsedUSD string         `json:"estimatedGasUsedUSD,omitempty"`
	TradeType           TradeType      `json:"tradeType"`
	InputAmount         string         `json:"inputAmount"`
	BlockNumber         uint64         `json:"blockNumber,omitempty"`
	Route               []SwapRouteLeg `json:"route"`
}

// SwapRouteLeg is one split of a swap route.
type SwapRouteLeg struct {
	Protocol      Protocol `json:"protocol"`
	Description   string   `json:"routeDescription"`
	AmountParsed  string   `json:"amountParsed"`
	QuoteParsed   string   `json:"quoteParsed"`
	TokenPath     []Asset  `json:"tokenPath"`
	Percent       int      `json:"percent"`
	PoolAddresses []string `json:"poolAddresses"`
}

// HasRoute returns true if the swap route contains at least one split.
func (s SwapRoute) HasRoute() bool {
	return len(s.Route) > 0
}
