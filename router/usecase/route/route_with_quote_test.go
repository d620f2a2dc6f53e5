package route_test

import (
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/router/usecase/route"
)

func gasCostInQuote(amount int64) domain.GasCost {
	gasCost := domain.ZeroGasCost()
	gasCost.GasUnits = 135_000
	gasCost.GasCostInQuoteToken = osmomath.NewInt(amount)
	return gasCost
}

func (s *RouteTestSuite) TestNewRouteWithValidQuote() {
	fraction := domain.AmountFraction{Percent: 50, Amount: osmomath.NewInt(500)}

	tests := []struct {
		name             string
		tradeType        domain.TradeType
		rawQuote         osmomath.Int
		gasCost          domain.GasCost
		expectedAdjusted osmomath.Int
	}{
		{
			name:             "exact in subtracts gas",
			tradeType:        domain.TradeTypeExactIn,
			rawQuote:         osmomath.NewInt(1_000),
			gasCost:          gasCostInQuote(300),
			expectedAdjusted: osmomath.NewInt(700),
		},
		{
			name:             "exact in is floored at zero",
			tradeType:        domain.TradeTypeExactIn,
			rawQuote:         osmomath.NewInt(1_000),
			gasCost:          gasCostInQuote(1_500),
			expectedAdjusted: osmomath.ZeroInt(),
		},
		{
			name:             "exact out adds gas",
			tradeType:        domain.TradeTypeExactOut,
			rawQuote:         osmomath.NewInt(1_000),
			gasCost:          gasCostInQuote(300),
			expectedAdjusted: osmomath.NewInt(1_300),
		},
		{
			name:             "unset gas cost",
			tradeType:        domain.TradeTypeExactIn,
			rawQuote:         osmomath.NewInt(1_000),
			gasCost:          domain.GasCost{},
			expectedAdjusted: osmomath.NewInt(1_000),
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			routeWithQuote := route.NewRouteWithValidQuote(twoHopRoute, fraction, tc.rawQuote, tc.gasCost, tc.tradeType)

			s.Require().Equal(tc.expectedAdjusted.String(), routeWithQuote.QuoteAdjustedForGas.String())
			s.Require().Equal(tc.rawQuote.String(), routeWithQuote.RawQuote.String())
			s.Require().Equal(50, routeWithQuote.Percent)
			s.Require().Equal("500", routeWithQuote.Amount.String())
			s.Require().Equal(twoHopRoute.Key(), routeWithQuote.Key())
		})
	}
}

func (s *RouteTestSuite) TestIsBetterThan() {
	fraction := domain.AmountFraction{Percent: 100, Amount: osmomath.NewInt(1_000)}

	low := osmomath.NewInt(900)
	high := osmomath.NewInt(1_100)

	// Exact in prefers more output.
	lowIn := route.NewRouteWithValidQuote(twoHopRoute, fraction, low, domain.ZeroGasCost(), domain.TradeTypeExactIn)
	highIn := route.NewRouteWithValidQuote(twoHopRoute, fraction, high, domain.ZeroGasCost(), domain.TradeTypeExactIn)
	s.Require().True(highIn.IsBetterThan(lowIn))
	s.Require().False(lowIn.IsBetterThan(highIn))
	s.Require().False(lowIn.IsBetterThan(lowIn))

	// Exact out prefers less input.
	lowOut := route.NewRouteWithValidQuote(twoHopRoute, fraction, low, domain.ZeroGasCost(), domain.TradeTypeExactOut)
	highOut := route.NewRouteWithValidQuote(twoHopRoute, fraction, high, domain.ZeroGasCost(), domain.TradeTypeExactOut)
	s.Require().True(lowOut.IsBetterThan(highOut))
	s.Require().False(highOut.IsBetterThan(lowOut))
}
