package usecase_test

import (
	"context"
	"encoding/json"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/riverdex/sor/domain"
	routerusecase "github.com/riverdex/sor/router/usecase"
	"github.com/riverdex/sor/router/usecase/route"
	"github.com/riverdex/sor/router/usecase/routertesting"
)

func (s *RouterTestSuite) TestFormatHumanAmount() {
	tests := []struct {
		name     string
		amount   osmomath.Int
		decimals int
		expected string
	}{
		{name: "six decimals", amount: osmomath.NewInt(1_234_567), decimals: 6, expected: "1.234567"},
		{name: "below one", amount: osmomath.NewInt(5), decimals: 6, expected: "0.000005"},
		{name: "zero", amount: osmomath.ZeroInt(), decimals: 6, expected: "0.000000"},
		{name: "no decimals", amount: osmomath.NewInt(5), decimals: 0, expected: "5"},
		{name: "eighteen decimals", amount: routertesting.HumanAmount(3, WETH), decimals: 18, expected: "3.000000000000000000"},
		{name: "nil", amount: osmomath.Int{}, decimals: 2, expected: "0.00"},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.Require().Equal(tc.expected, routerusecase.FormatHumanAmount(tc.amount, tc.decimals))
		})
	}
}

func (s *RouterTestSuite) TestFormatHumanDec() {
	s.Require().Equal("5.400000", routerusecase.FormatHumanDec(osmomath.MustNewDecFromStr("5.4"), 6))
	s.Require().Equal("0.000001", routerusecase.FormatHumanDec(osmomath.MustNewDecFromStr("0.0000005"), 6))
	s.Require().Equal("0.000000", routerusecase.FormatHumanDec(osmomath.Dec{}, 6))
}

func (s *RouterTestSuite) TestNewSwapRoute() {
	gasCost := domain.GasCost{
		GasUnits:            100_000,
		GasCostInNative:     osmomath.NewInt(1_000),
		GasCostInQuoteToken: osmomath.NewInt(100_000),
		GasCostInUSD:        osmomath.MustNewDecFromStr("0.1"),
	}

	best := routerusecase.NewBestSwapRoute([]route.RouteWithValidQuote{
		route.NewRouteWithValidQuote(routeR3, domain.AmountFraction{Percent: 50, Amount: osmomath.NewInt(500)}, osmomath.NewInt(2_000_000), gasCost, domain.TradeTypeExactIn),
		route.NewRouteWithValidQuote(routeR1, domain.AmountFraction{Percent: 50, Amount: osmomath.NewInt(500)}, osmomath.NewInt(1_500_000), gasCost, domain.TradeTypeExactIn),
	})

	req := domain.QuoteRequest{
		ChainID:   routertesting.MainnetChainID,
		TokenIn:   WETH,
		TokenOut:  USDC,
		TradeType: domain.TradeTypeExactIn,
		Amount:    osmomath.NewInt(1_000),
	}

	swapRoute := routerusecase.NewSwapRoute(req, best, 42)

	s.Require().Equal("3.500000", swapRoute.Quote)
	s.Require().Equal("3.300000", swapRoute.QuoteGasAdjusted)
	s.Require().Equal("200000", swapRoute.EstimatedGasUsed)
	s.Require().Equal("0.200000", swapRoute.EstimatedGasUsedUSD)
	s.Require().Equal("1000", swapRoute.InputAmount)
	s.Require().Equal(uint64(42), swapRoute.BlockNumber)
	s.Require().Equal(domain.TradeTypeExactIn, swapRoute.TradeType)

	s.Require().Len(swapRoute.Route, 2)

	// Sorted by percent then route key.
	first := swapRoute.Route[0]
	s.Require().Equal(domain.ProtocolV2, first.Protocol)
	s.Require().Equal("500", first.AmountParsed)
	s.Require().Equal("1500000", first.QuoteParsed)
	s.Require().Equal(50, first.Percent)
	s.Require().Equal([]domain.Asset{WETH, USDC}, first.TokenPath)
	s.Require().Equal([]string{routertesting.PoolAddress(11)}, first.PoolAddresses)
	s.Require().Equal(routeR1.String(), first.Description)

	second := swapRoute.Route[1]
	s.Require().Equal("2000000", second.QuoteParsed)
	s.Require().Equal([]domain.Asset{WETH, DAI, USDC}, second.TokenPath)
	s.Require().Equal([]string{routertesting.PoolAddress(13), routertesting.PoolAddress(14)}, second.PoolAddresses)
}

// Exact-out quotes are denominated in the input token.
func (s *RouterTestSuite) TestNewSwapRoute_ExactOut() {
	best := routerusecase.NewBestSwapRoute([]route.RouteWithValidQuote{
		route.NewRouteWithValidQuote(routeR1, domain.AmountFraction{Percent: 100, Amount: osmomath.NewInt(1_000_000)}, routertesting.HumanAmount(2, WETH), domain.ZeroGasCost(), domain.TradeTypeExactOut),
	})

	req := domain.QuoteRequest{
		ChainID:   routertesting.MainnetChainID,
		TokenIn:   WETH,
		TokenOut:  USDC,
		TradeType: domain.TradeTypeExactOut,
		Amount:    osmomath.NewInt(1_000_000),
	}

	swapRoute := routerusecase.NewSwapRoute(req, best, 1)

	s.Require().Equal("2.000000000000000000", swapRoute.Quote)
	s.Require().Equal("2.000000000000000000", swapRoute.QuoteGasAdjusted)
	s.Require().Equal("1000000", swapRoute.InputAmount)
	s.Require().Equal("0.000000", swapRoute.EstimatedGasUsedUSD)
}

func (s *RouterTestSuite) TestNewNoRouteSwapRoute() {
	req := domain.QuoteRequest{
		ChainID:   routertesting.MainnetChainID,
		TokenIn:   LINK,
		TokenOut:  USDC,
		TradeType: domain.TradeTypeExactIn,
		Amount:    osmomath.NewInt(77),
	}

	swapRoute := routerusecase.NewNoRouteSwapRoute(req, 9)
	s.Require().False(swapRoute.HasRoute())
	s.Require().Equal("77", swapRoute.InputAmount)

	bz, err := json.Marshal(swapRoute)
	s.Require().NoError(err)
	s.Require().JSONEq(`{"tradeType":"EXACT_IN","inputAmount":"77","blockNumber":9,"route":[]}`, string(bz))
}

// The rounding residual is given to the largest split, which is re-quoted for its final amount.
func (s *RouterTestSuite) TestReconcileResidual() {
	var (
		total    = routertesting.HumanAmount(1, WETH).Add(osmomath.OneInt())
		directR  = domain.Route{Protocol: domain.ProtocolV2, TokenPath: []domain.Asset{WETH, USDC}, Pools: []domain.Pool{routertesting.PoolWETHUSDC()}}
		throughR = domain.Route{Protocol: domain.ProtocolV2, TokenPath: []domain.Asset{WETH, DAI, USDC}, Pools: []domain.Pool{routertesting.PoolWETHDAI(), routertesting.PoolUSDCDAI()}}
	)

	fractions, err := routerusecase.GetAmountDistribution(total, 50)
	s.Require().NoError(err)
	half := fractions[0]

	splits := make([]route.RouteWithValidQuote, 0, 2)
	for _, r := range []domain.Route{directR, throughR} {
		routeImpl, err := route.NewRouteImpl(r)
		s.Require().NoError(err)

		quote, err := routeImpl.Quote(context.TODO(), domain.TradeTypeExactIn, half.Amount)
		s.Require().NoError(err)

		splits = append(splits, route.NewRouteWithValidQuote(r, half, quote, domain.ZeroGasCost(), domain.TradeTypeExactIn))
	}

	best := routerusecase.NewBestSwapRoute(splits)

	reconciled, err := routerusecase.ReconcileResidual(context.TODO(), best, total, domain.TradeTypeExactIn)
	s.Require().NoError(err)
	s.Require().Len(reconciled.Routes, 2)

	sum := osmomath.ZeroInt()
	for _, split := range reconciled.Routes {
		sum = sum.Add(split.Amount)
	}
	s.Require().Equal(total.String(), sum.String())

	// The first split of equal percents takes the residual.
	first := reconciled.Routes[0]
	s.Require().Equal(half.Amount.Add(osmomath.OneInt()).String(), first.Amount.String())

	routeImpl, err := route.NewRouteImpl(first.Route)
	s.Require().NoError(err)
	expectedQuote, err := routeImpl.Quote(context.TODO(), domain.TradeTypeExactIn, first.Amount)
	s.Require().NoError(err)
	s.Require().Equal(expectedQuote.String(), first.RawQuote.String())

	// The other split is unchanged.
	s.Require().Equal(best.Routes[1], reconciled.Routes[1])
}
