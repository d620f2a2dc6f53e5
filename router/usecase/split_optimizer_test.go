package usecase_test

import (
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/riverdex/sor/domain"
	routerusecase "github.com/riverdex/sor/router/usecase"
	"github.com/riverdex/sor/router/usecase/route"
	"github.com/riverdex/sor/router/usecase/routertesting"
)

var (
	splitPoolWETHUSDC1 = routertesting.NewPool(routertesting.PoolAddress(11), WETH, USDC, one, one, 1)
	splitPoolWETHUSDC2 = routertesting.NewPool(routertesting.PoolAddress(12), WETH, USDC, one, one, 1)
	splitPoolWETHDAI   = routertesting.NewPool(routertesting.PoolAddress(13), WETH, DAI, one, one, 1)
	splitPoolDAIUSDC1  = routertesting.NewPool(routertesting.PoolAddress(14), DAI, USDC, one, one, 1)
	splitPoolDAIUSDC2  = routertesting.NewPool(routertesting.PoolAddress(15), DAI, USDC, one, one, 1)

	// Direct routes.
	routeR1 = domain.Route{Protocol: domain.ProtocolV2, TokenPath: []domain.Asset{WETH, USDC}, Pools: []domain.Pool{splitPoolWETHUSDC1}}
	routeR2 = domain.Route{Protocol: domain.ProtocolV2, TokenPath: []domain.Asset{WETH, USDC}, Pools: []domain.Pool{splitPoolWETHUSDC2}}
	// Routes through DAI that share the WETH / DAI pool.
	routeR3 = domain.Route{Protocol: domain.ProtocolV2, TokenPath: []domain.Asset{WETH, DAI, USDC}, Pools: []domain.Pool{splitPoolWETHDAI, splitPoolDAIUSDC1}}
	routeR4 = domain.Route{Protocol: domain.ProtocolV2, TokenPath: []domain.Asset{WETH, DAI, USDC}, Pools: []domain.Pool{splitPoolWETHDAI, splitPoolDAIUSDC2}}
)

func newRouteQuote(r domain.Route, percent int, rawQuote int64, gasInQuote int64, tradeType domain.TradeType) route.RouteWithValidQuote {
	gasCost := domain.ZeroGasCost()
	gasCost.GasUnits = 100_000
	gasCost.GasCostInQuoteToken = osmomath.NewInt(gasInQuote)

	fraction := domain.AmountFraction{Percent: percent, Amount: osmomath.NewInt(int64(percent) * 10)}
	return route.NewRouteWithValidQuote(r, fraction, osmomath.NewInt(rawQuote), gasCost, tradeType)
}

// defaultSplitQuotes are exact-in quotes at 50 percent granularity.
// The best pair R3 + R4 is infeasible because both use the WETH / DAI pool.
func defaultSplitQuotes() []route.RouteWithValidQuote {
	return []route.RouteWithValidQuote{
		newRouteQuote(routeR1, 50, 60, 0, domain.TradeTypeExactIn),
		newRouteQuote(routeR1, 100, 100, 0, domain.TradeTypeExactIn),
		newRouteQuote(routeR2, 50, 55, 0, domain.TradeTypeExactIn),
		newRouteQuote(routeR2, 100, 90, 0, domain.TradeTypeExactIn),
		newRouteQuote(routeR3, 50, 70, 0, domain.TradeTypeExactIn),
		newRouteQuote(routeR3, 100, 95, 0, domain.TradeTypeExactIn),
		newRouteQuote(routeR4, 50, 68, 0, domain.TradeTypeExactIn),
		newRouteQuote(routeR4, 100, 96, 0, domain.TradeTypeExactIn),
	}
}

func (s *RouterTestSuite) TestGetBestSwapRoute() {
	defaultConfig := routerusecase.SplitOptimizerConfig{MinSplits: 1, MaxSplits: 3, TopKPerPercent: 3}

	tests := []struct {
		name        string
		routeQuotes []route.RouteWithValidQuote
		tradeType   domain.TradeType
		config      routerusecase.SplitOptimizerConfig

		expectedRoutes   []string
		expectedPercents []int
		expectedQuote    int64
		expectedAdjusted int64
		expectErr        error
	}{
		{
			name:             "best split without a shared pool",
			routeQuotes:      defaultSplitQuotes(),
			tradeType:        domain.TradeTypeExactIn,
			config:           defaultConfig,
			expectedRoutes:   []string{routeR1.Key(), routeR3.Key()},
			expectedPercents: []int{50, 50},
			expectedQuote:    130,
			expectedAdjusted: 130,
		},
		{
			name:             "single split allowed",
			routeQuotes:      defaultSplitQuotes(),
			tradeType:        domain.TradeTypeExactIn,
			config:           routerusecase.SplitOptimizerConfig{MinSplits: 1, MaxSplits: 1, TopKPerPercent: 3},
			expectedRoutes:   []string{routeR1.Key()},
			expectedPercents: []int{100},
			expectedQuote:    100,
			expectedAdjusted: 100,
		},
		{
			name:             "top one per percent",
			routeQuotes:      defaultSplitQuotes(),
			tradeType:        domain.TradeTypeExactIn,
			config:           routerusecase.SplitOptimizerConfig{MinSplits: 1, MaxSplits: 3, TopKPerPercent: 1},
			expectedRoutes:   []string{routeR1.Key()},
			expectedPercents: []int{100},
			expectedQuote:    100,
			expectedAdjusted: 100,
		},
		{
			name:             "min splits forces a split",
			routeQuotes:      defaultSplitQuotes(),
			tradeType:        domain.TradeTypeExactIn,
			config:           routerusecase.SplitOptimizerConfig{MinSplits: 2, MaxSplits: 2, TopKPerPercent: 3},
			expectedRoutes:   []string{routeR1.Key(), routeR3.Key()},
			expectedPercents: []int{50, 50},
			expectedQuote:    130,
			expectedAdjusted: 130,
		},
		{
			name: "gas makes the split worse",
			routeQuotes: []route.RouteWithValidQuote{
				newRouteQuote(routeR1, 50, 60, 20, domain.TradeTypeExactIn),
				newRouteQuote(routeR1, 100, 100, 0, domain.TradeTypeExactIn),
				newRouteQuote(routeR3, 50, 70, 20, domain.TradeTypeExactIn),
			},
			tradeType:        domain.TradeTypeExactIn,
			config:           defaultConfig,
			expectedRoutes:   []string{routeR1.Key()},
			expectedPercents: []int{100},
			expectedQuote:    100,
			expectedAdjusted: 100,
		},
		{
			name: "tie prefers fewer splits",
			routeQuotes: []route.RouteWithValidQuote{
				newRouteQuote(routeR1, 50, 60, 0, domain.TradeTypeExactIn),
				newRouteQuote(routeR2, 50, 60, 0, domain.TradeTypeExactIn),
				newRouteQuote(routeR3, 100, 120, 0, domain.TradeTypeExactIn),
			},
			tradeType:        domain.TradeTypeExactIn,
			config:           defaultConfig,
			expectedRoutes:   []string{routeR3.Key()},
			expectedPercents: []int{100},
			expectedQuote:    120,
			expectedAdjusted: 120,
		},
		{
			name: "tie prefers the smallest route key",
			routeQuotes: []route.RouteWithValidQuote{
				newRouteQuote(routeR2, 100, 100, 0, domain.TradeTypeExactIn),
				newRouteQuote(routeR1, 100, 100, 0, domain.TradeTypeExactIn),
			},
			tradeType:        domain.TradeTypeExactIn,
			config:           defaultConfig,
			expectedRoutes:   []string{routeR1.Key()},
			expectedPercents: []int{100},
			expectedQuote:    100,
			expectedAdjusted: 100,
		},
		{
			name: "exact out minimizes the input",
			routeQuotes: []route.RouteWithValidQuote{
				newRouteQuote(routeR1, 100, 100, 5, domain.TradeTypeExactOut),
				newRouteQuote(routeR2, 100, 90, 5, domain.TradeTypeExactOut),
				newRouteQuote(routeR1, 50, 48, 5, domain.TradeTypeExactOut),
				newRouteQuote(routeR2, 50, 45, 5, domain.TradeTypeExactOut),
			},
			tradeType:        domain.TradeTypeExactOut,
			config:           defaultConfig,
			expectedRoutes:   []string{routeR2.Key()},
			expectedPercents: []int{100},
			expectedQuote:    90,
			expectedAdjusted: 95,
		},
		{
			name: "percents cannot reach 100",
			routeQuotes: []route.RouteWithValidQuote{
				newRouteQuote(routeR1, 50, 60, 0, domain.TradeTypeExactIn),
				newRouteQuote(routeR3, 25, 30, 0, domain.TradeTypeExactIn),
			},
			tradeType: domain.TradeTypeExactIn,
			config:    defaultConfig,
			expectErr: domain.ErrNoRoute,
		},
		{
			name:        "no quotes",
			routeQuotes: nil,
			tradeType:   domain.TradeTypeExactIn,
			config:      defaultConfig,
			expectErr:   domain.ErrNoRoute,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			best, err := routerusecase.GetBestSwapRoute(tc.routeQuotes, tc.tradeType, tc.config)
			if tc.expectErr != nil {
				s.Require().ErrorIs(err, tc.expectErr)
				return
			}

			s.Require().NoError(err)

			actualRoutes := make([]string, len(best.Routes))
			actualPercents := make([]int, len(best.Routes))
			for i, split := range best.Routes {
				actualRoutes[i] = split.Key()
				actualPercents[i] = split.Percent
			}

			s.Require().Equal(tc.expectedRoutes, actualRoutes)
			s.Require().Equal(tc.expectedPercents, actualPercents)
			s.Require().Equal(osmomath.NewInt(tc.expectedQuote).String(), best.Quote.String())
			s.Require().Equal(osmomath.NewInt(tc.expectedAdjusted).String(), best.QuoteGasAdjusted.String())
		})
	}
}

// The input order of the quotes does not change the result.
func (s *RouterTestSuite) TestGetBestSwapRoute_OrderIndependent() {
	config := routerusecase.SplitOptimizerConfig{MinSplits: 1, MaxSplits: 3, TopKPerPercent: 3}

	quotes := defaultSplitQuotes()
	expected, err := routerusecase.GetBestSwapRoute(quotes, domain.TradeTypeExactIn, config)
	s.Require().NoError(err)

	reversed := make([]route.RouteWithValidQuote, len(quotes))
	for i, quote := range quotes {
		reversed[len(quotes)-1-i] = quote
	}

	actual, err := routerusecase.GetBestSwapRoute(reversed, domain.TradeTypeExactIn, config)
	s.Require().NoError(err)
	s.Require().Equal(expected, actual)
}

func (s *RouterTestSuite) TestGetBestSwapRoute_AggregatesGas() {
	quotes := []route.RouteWithValidQuote{
		newRouteQuote(routeR1, 50, 600, 10, domain.TradeTypeExactIn),
		newRouteQuote(routeR3, 50, 700, 15, domain.TradeTypeExactIn),
	}

	best, err := routerusecase.GetBestSwapRoute(quotes, domain.TradeTypeExactIn, routerusecase.SplitOptimizerConfig{MinSplits: 1, MaxSplits: 2, TopKPerPercent: 3})
	s.Require().NoError(err)

	s.Require().Equal(uint64(200_000), best.GasCost.GasUnits)
	s.Require().Equal("25", best.GasCost.GasCostInQuoteToken.String())
	s.Require().Equal("1300", best.Quote.String())
	s.Require().Equal("1275", best.QuoteGasAdjusted.String())
}

func (s *RouterTestSuite) TestPruneByPercent() {
	pruned := routerusecase.PruneByPercent(defaultSplitQuotes(), domain.TradeTypeExactIn, 2)

	actual := make([]string, len(pruned))
	for i, quote := range pruned {
		actual[i] = quote.Key() + "@" + quote.RawQuote.String()
	}

	s.Require().Equal([]string{
		routeR1.Key() + "@100",
		routeR4.Key() + "@96",
		routeR3.Key() + "@70",
		routeR4.Key() + "@68",
	}, actual)
}
