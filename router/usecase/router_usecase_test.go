package usecase_test

import (
	"context"
	"errors"
	"math/big"
	"sync"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/domain/mocks"
	routerusecase "github.com/riverdex/sor/router/usecase"
	"github.com/riverdex/sor/router/usecase/routertesting"
)

const defaultBlockNumber = uint64(19_000_000)

func defaultMainnetState() routertesting.MockState {
	return routertesting.MockState{
		Chain:       routertesting.MainnetChainConfig,
		Pools:       routertesting.DefaultMainnetPools(),
		BlockNumber: defaultBlockNumber,
	}
}

func newQuoteRequest(tokenIn, tokenOut domain.Asset, tradeType domain.TradeType, amount osmomath.Int) domain.QuoteRequest {
	return domain.QuoteRequest{
		ChainID:   routertesting.MainnetChainID,
		TokenIn:   tokenIn,
		TokenOut:  tokenOut,
		TradeType: tradeType,
		Amount:    amount,
	}
}

// validateSwapRoute checks the invariants every non empty response holds.
func (s *RouterTestSuite) validateSwapRoute(req domain.QuoteRequest, swapRoute domain.SwapRoute, maxSplits int) {
	s.T().Helper()

	s.Require().True(swapRoute.HasRoute())
	s.Require().LessOrEqual(len(swapRoute.Route), maxSplits)
	s.Require().Equal(req.Amount.String(), swapRoute.InputAmount)

	percentSum := 0
	amountSum := osmomath.ZeroInt()
	usedPools := map[string]struct{}{}
	for _, leg := range swapRoute.Route {
		percentSum += leg.Percent

		amount, ok := osmomath.NewIntFromString(leg.AmountParsed)
		s.Require().True(ok)
		amountSum = amountSum.Add(amount)

		s.Require().True(leg.TokenPath[0].Equal(req.TokenIn))
		s.Require().True(leg.TokenPath[len(leg.TokenPath)-1].Equal(req.TokenOut))
		s.Require().Len(leg.PoolAddresses, len(leg.TokenPath)-1)

		for _, address := range leg.PoolAddresses {
			_, ok := usedPools[address]
			s.Require().False(ok, "pool (%s) is used by more than one split", address)
			usedPools[address] = struct{}{}
		}
	}

	s.Require().Equal(100, percentSum)
	s.Require().Equal(req.Amount.String(), amountSum.String())
}

func (s *RouterTestSuite) TestGetOptimalQuote_ExactIn() {
	mockUsecase := s.SetupRouterUsecase(defaultMainnetState(), routertesting.WithRouteCacheDisabled())

	req := newQuoteRequest(WETH, DAI, domain.TradeTypeExactIn, routertesting.HumanAmount(10, WETH))

	swapRoute, err := mockUsecase.Router.GetOptimalQuote(context.TODO(), req)
	s.Require().NoError(err)

	s.validateSwapRoute(req, swapRoute, defaultRouterConfig.MaxSplits)
	s.Require().Equal(defaultBlockNumber, swapRoute.BlockNumber)
	s.Require().Equal(domain.TradeTypeExactIn, swapRoute.TradeType)

	// Without gas the adjusted quote equals the raw quote.
	s.Require().Equal(swapRoute.Quote, swapRoute.QuoteGasAdjusted)

	// The split result is at least as good as the direct pool alone.
	direct := s.quoteSingleRoute(mockUsecase, req, routertesting.WithRouterConfig(withMaxSplits(1)))
	s.Require().True(humanGTE(swapRoute.Quote, direct.Quote), "split (%s) direct (%s)", swapRoute.Quote, direct.Quote)
}

func (s *RouterTestSuite) TestGetOptimalQuote_ExactOut() {
	mockUsecase := s.SetupRouterUsecase(defaultMainnetState(), routertesting.WithRouteCacheDisabled())

	req := newQuoteRequest(WETH, DAI, domain.TradeTypeExactOut, routertesting.HumanAmount(10_000, DAI))

	swapRoute, err := mockUsecase.Router.GetOptimalQuote(context.TODO(), req)
	s.Require().NoError(err)

	s.validateSwapRoute(req, swapRoute, defaultRouterConfig.MaxSplits)
	s.Require().Equal(domain.TradeTypeExactOut, swapRoute.TradeType)

	// Around 5 WETH at 2000 DAI per WETH.
	s.Require().True(humanGTE(swapRoute.Quote, "5"))
	s.Require().True(humanGTE("6", swapRoute.Quote))
}

// A and C are only connected through B.
func (s *RouterTestSuite) TestGetOptimalQuote_IndirectOnly() {
	state := defaultMainnetState()
	state.Pools = []domain.Pool{routertesting.PoolWETHUSDC(), routertesting.PoolUSDCDAI()}

	mockUsecase := s.SetupRouterUsecase(state, routertesting.WithRouteCacheDisabled())

	req := newQuoteRequest(WETH, DAI, domain.TradeTypeExactIn, routertesting.HumanAmount(1, WETH))

	swapRoute, err := mockUsecase.Router.GetOptimalQuote(context.TODO(), req)
	s.Require().NoError(err)

	s.validateSwapRoute(req, swapRoute, 1)
	s.Require().Equal([]domain.Asset{WETH, USDC, DAI}, swapRoute.Route[0].TokenPath)
	s.Require().Equal([]string{p1, p2}, swapRoute.Route[0].PoolAddresses)
	s.Require().Equal(100, swapRoute.Route[0].Percent)

	// One hop is not enough.
	req.MaxSwapsPerPath = 1
	swapRoute, err = mockUsecase.Router.GetOptimalQuote(context.TODO(), req)
	s.Require().NoError(err)
	s.Require().False(swapRoute.HasRoute())
}

func (s *RouterTestSuite) TestGetOptimalQuote_NoRoute() {
	mockUsecase := s.SetupRouterUsecase(defaultMainnetState())

	req := newQuoteRequest(LINK, DAI, domain.TradeTypeExactIn, routertesting.HumanAmount(1, LINK))

	swapRoute, err := mockUsecase.Router.GetOptimalQuote(context.TODO(), req)
	s.Require().NoError(err)

	s.Require().False(swapRoute.HasRoute())
	s.Require().NotNil(swapRoute.Route)
	s.Require().Equal(req.Amount.String(), swapRoute.InputAmount)
	s.Require().Empty(swapRoute.Quote)

	// Nothing is cached for a pair without routes.
	s.Require().Zero(mockUsecase.RouteCache.Len())
}

// Amounts beyond every reserve cannot be routed but are not an error.
func (s *RouterTestSuite) TestGetOptimalQuote_ExactOutBeyondReserves() {
	mockUsecase := s.SetupRouterUsecase(defaultMainnetState(), routertesting.WithRouteCacheDisabled())

	req := newQuoteRequest(WETH, DAI, domain.TradeTypeExactOut, routertesting.HumanAmount(5_000_000, DAI))

	swapRoute, err := mockUsecase.Router.GetOptimalQuote(context.TODO(), req)
	s.Require().NoError(err)
	s.Require().False(swapRoute.HasRoute())
}

func (s *RouterTestSuite) TestGetOptimalQuote_MaxSplitsOverride() {
	mockUsecase := s.SetupRouterUsecase(defaultMainnetState(), routertesting.WithRouteCacheDisabled())

	req := newQuoteRequest(WETH, DAI, domain.TradeTypeExactIn, routertesting.HumanAmount(100, WETH))
	req.MaxSplits = 1

	swapRoute, err := mockUsecase.Router.GetOptimalQuote(context.TODO(), req)
	s.Require().NoError(err)

	s.validateSwapRoute(req, swapRoute, 1)
	s.Require().Len(swapRoute.Route, 1)
}

func (s *RouterTestSuite) TestGetOptimalQuote_GasAdjusted() {
	state := defaultMainnetState()
	state.GasPrice = osmomath.NewInt(20_000_000_000)
	state.NativePriceInUSD = osmomath.NewDec(2_000)
	state.TokenPricesInNative = map[string]osmomath.Dec{
		DAI.Address: osmomath.MustNewDecFromStr("0.0005"),
	}

	mockUsecase := s.SetupRouterUsecase(state, routertesting.WithRouteCacheDisabled())

	req := newQuoteRequest(WETH, DAI, domain.TradeTypeExactIn, routertesting.HumanAmount(1, WETH))

	swapRoute, err := mockUsecase.Router.GetOptimalQuote(context.TODO(), req)
	s.Require().NoError(err)

	s.validateSwapRoute(req, swapRoute, defaultRouterConfig.MaxSplits)

	// Gas works against the trader.
	s.Require().True(humanGTE(swapRoute.Quote, swapRoute.QuoteGasAdjusted))
	s.Require().NotEqual(swapRoute.Quote, swapRoute.QuoteGasAdjusted)
	s.Require().NotEqual("0.000000", swapRoute.EstimatedGasUsedUSD)
	s.Require().NotEqual("0", swapRoute.EstimatedGasUsed)
}

// Two 1000/1000 pools A-B and B-C, 100 A to C with a single split.
func (s *RouterTestSuite) TestGetOptimalQuote_TwoHopSlippage() {
	var (
		tokenA = domain.NewAsset("0x00000000000000000000000000000000000000a1", 0, "A")
		tokenB = domain.NewAsset("0x00000000000000000000000000000000000000b2", 0, "B")
		tokenC = domain.NewAsset("0x00000000000000000000000000000000000000c3", 0, "C")

		poolAB = routertesting.NewPool(routertesting.PoolAddress(50), tokenA, tokenB, osmomath.NewInt(1_000), osmomath.NewInt(1_000), 1_000)
		poolBC = routertesting.NewPool(routertesting.PoolAddress(51), tokenB, tokenC, osmomath.NewInt(1_000), osmomath.NewInt(1_000), 1_000)
	)

	mockUsecase := s.SetupRouterUsecase(routertesting.MockState{
		Chain:       routertesting.MainnetChainConfig,
		Pools:       []domain.Pool{poolAB, poolBC},
		BlockNumber: defaultBlockNumber,
		GasPrice:    osmomath.OneInt(),
		TokenPricesInNative: map[string]osmomath.Dec{
			// 185000 gas units at 1 wei cost 18 units of C
			tokenC.Address: osmomath.MustNewDecFromStr("0.00000000000001"),
		},
		NativePriceInUSD: osmomath.NewDec(2_000),
	}, routertesting.WithRouteCacheDisabled())

	req := newQuoteRequest(tokenA, tokenC, domain.TradeTypeExactIn, osmomath.NewInt(100))
	req.MaxSplits = 1

	swapRoute, err := mockUsecase.Router.GetOptimalQuote(context.TODO(), req)
	s.Require().NoError(err)

	s.validateSwapRoute(req, swapRoute, 1)
	s.Require().Len(swapRoute.Route, 1)
	s.Require().Equal([]string{poolAB.Address, poolBC.Address}, swapRoute.Route[0].PoolAddresses)
	s.Require().True(swapRoute.Route[0].TokenPath[1].Equal(tokenB))

	// 100 -> 90 -> 82
	s.Require().Equal("82", swapRoute.Quote)
	s.Require().False(humanGTE(swapRoute.Quote, "100"))

	s.Require().Equal("64", swapRoute.QuoteGasAdjusted)
	s.Require().False(humanGTE(swapRoute.QuoteGasAdjusted, swapRoute.Quote))
	s.Require().Equal("185000", swapRoute.EstimatedGasUsed)
}

// The shared computation does not observe the cancellation of the caller that started it.
func (s *RouterTestSuite) TestGetOptimalQuote_CancelledCaller() {
	mockUsecase := s.SetupRouterUsecase(defaultMainnetState(), routertesting.WithRouteCacheDisabled())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := newQuoteRequest(WETH, DAI, domain.TradeTypeExactIn, routertesting.HumanAmount(1, WETH))

	swapRoute, err := mockUsecase.Router.GetOptimalQuote(ctx, req)
	s.Require().NoError(err)
	s.validateSwapRoute(req, swapRoute, defaultRouterConfig.MaxSplits)
}

func (s *RouterTestSuite) TestGetOptimalQuote_FixedGasChain() {
	tronPool := routertesting.NewPool(routertesting.PoolAddress(30), routertesting.WTRX, routertesting.USDTTron, routertesting.HumanAmount(1_000_000, routertesting.WTRX), routertesting.HumanAmount(100_000, routertesting.USDTTron), 200_000)

	mockUsecase := s.SetupRouterUsecase(routertesting.MockState{
		Chain:       routertesting.TronChainConfig,
		Pools:       []domain.Pool{tronPool},
		BlockNumber: 60_000_000,
	}, routertesting.WithRouteCacheDisabled())

	req := domain.QuoteRequest{
		ChainID:   routertesting.TronChainID,
		TokenIn:   routertesting.USDTTron,
		TokenOut:  routertesting.WTRX,
		TradeType: domain.TradeTypeExactIn,
		Amount:    routertesting.HumanAmount(10, routertesting.USDTTron),
	}

	swapRoute, err := mockUsecase.Router.GetOptimalQuote(context.TODO(), req)
	s.Require().NoError(err)

	s.validateSwapRoute(req, swapRoute, defaultRouterConfig.MaxSplits)
	s.Require().Equal("65000", swapRoute.EstimatedGasUsed)
	// 65000 sun at a fixed price of 1 in WTRX with 6 decimals.
	s.Require().NotEqual(swapRoute.Quote, swapRoute.QuoteGasAdjusted)
}

func (s *RouterTestSuite) TestGetOptimalQuote_InvalidRequest() {
	mockUsecase := s.SetupRouterUsecase(defaultMainnetState())

	tests := []struct {
		name        string
		modify      func(req *domain.QuoteRequest)
		expectedErr error
	}{
		{
			name:        "unsupported chain",
			modify:      func(req *domain.QuoteRequest) { req.ChainID = 56 },
			expectedErr: domain.UnsupportedChainError{ChainID: 56},
		},
		{
			name:        "same token",
			modify:      func(req *domain.QuoteRequest) { req.TokenOut = req.TokenIn },
			expectedErr: domain.SameAssetError{AssetA: WETH.Address, AssetB: WETH.Address},
		},
		{
			name:        "zero amount",
			modify:      func(req *domain.QuoteRequest) { req.Amount = osmomath.ZeroInt() },
			expectedErr: domain.ErrBadParamInput,
		},
		{
			name:        "nil amount",
			modify:      func(req *domain.QuoteRequest) { req.Amount = osmomath.Int{} },
			expectedErr: domain.ErrBadParamInput,
		},
		{
			name: "amount above the bit length limit",
			modify: func(req *domain.QuoteRequest) {
				req.Amount = osmomath.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), domain.MaxAmountBitLen))
			},
			expectedErr: domain.ErrBadParamInput,
		},
		{
			name:        "invalid address",
			modify:      func(req *domain.QuoteRequest) { req.TokenIn.Address = "0x1234" },
			expectedErr: domain.InvalidAssetAddressError{Address: "0x1234"},
		},
		{
			name:        "invalid trade type",
			modify:      func(req *domain.QuoteRequest) { req.TradeType = 7 },
			expectedErr: domain.InvalidTradeTypeError{TradeType: domain.TradeType(7).String()},
		},
		{
			name:        "unsupported protocol",
			modify:      func(req *domain.QuoteRequest) { req.Protocols = domain.ProtocolSet{"V3"} },
			expectedErr: domain.UnsupportedProtocolError{Protocol: "V3"},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			req := newQuoteRequest(WETH, DAI, domain.TradeTypeExactIn, routertesting.HumanAmount(1, WETH))
			tc.modify(&req)

			_, err := mockUsecase.Router.GetOptimalQuote(context.TODO(), req)
			s.Require().Error(err)
			if errors.Is(tc.expectedErr, domain.ErrBadParamInput) {
				s.Require().ErrorIs(err, domain.ErrBadParamInput)
				return
			}
			s.Require().Equal(tc.expectedErr, err)
		})
	}
}

func (s *RouterTestSuite) TestGetOptimalQuote_PoolsUnavailable() {
	mockUsecase := s.SetupRouterUsecase(defaultMainnetState())

	upstreamErr := domain.ProvidersExhaustedError{Dependency: "pools", LastErr: errors.New("timeout")}
	mockUsecase.Pools.GetPoolsFunc = func(ctx context.Context, chainID domain.ChainID, blockNumber *uint64) (domain.PoolsSnapshot, error) {
		return domain.PoolsSnapshot{}, upstreamErr
	}

	_, err := mockUsecase.Router.GetOptimalQuote(context.TODO(), newQuoteRequest(WETH, DAI, domain.TradeTypeExactIn, routertesting.HumanAmount(1, WETH)))
	s.Require().ErrorIs(err, upstreamErr)
}

func (s *RouterTestSuite) TestGetOptimalQuote_RouteCache() {
	mockUsecase := s.SetupRouterUsecase(defaultMainnetState())

	req := newQuoteRequest(WETH, DAI, domain.TradeTypeExactIn, routertesting.HumanAmount(10, WETH))

	first, err := mockUsecase.Router.GetOptimalQuote(context.TODO(), req)
	s.Require().NoError(err)
	s.Require().Equal(1, mockUsecase.RouteCache.Len())

	cachedRoutes, ok := mockUsecase.RouteCache.Get(routertesting.MainnetChainID, WETH, DAI, domain.TradeTypeExactIn, domain.NewProtocolSet())
	s.Require().True(ok)
	s.Require().Equal(defaultBlockNumber, cachedRoutes.BlockNumber)
	s.Require().Equal(defaultRouterConfig.RouteCacheBlocksToLive, cachedRoutes.BlocksToLive)
	s.Require().Len(cachedRoutes.Routes, len(first.Route))

	// Doubling every reserve keeps the cached routes but changes their quote.
	state := defaultMainnetState()
	for i, pool := range state.Pools {
		pool.Reserve0 = pool.Reserve0.MulRaw(2)
		pool.Reserve1 = pool.Reserve1.MulRaw(2)
		state.Pools[i] = pool
	}
	mockUsecase.Pools.Snapshot.Pools = state.Pools

	second, err := mockUsecase.Router.GetOptimalQuote(context.TODO(), req)
	s.Require().NoError(err)
	s.validateSwapRoute(req, second, defaultRouterConfig.MaxSplits)

	s.Require().Len(second.Route, len(first.Route))
	for i := range first.Route {
		s.Require().Equal(first.Route[i].PoolAddresses, second.Route[i].PoolAddresses)
		s.Require().Equal(first.Route[i].Percent, second.Route[i].Percent)
	}
	s.Require().True(humanGTE(second.Quote, first.Quote))
	s.Require().NotEqual(first.Quote, second.Quote)

	// The entry is still the one stored at the first block.
	cachedRoutes, ok = mockUsecase.RouteCache.Get(routertesting.MainnetChainID, WETH, DAI, domain.TradeTypeExactIn, domain.NewProtocolSet())
	s.Require().True(ok)
	s.Require().Equal(defaultBlockNumber, cachedRoutes.BlockNumber)
}

func (s *RouterTestSuite) TestGetOptimalQuote_RouteCacheExpiry() {
	currentBlock := defaultBlockNumber
	chainInfo := &mocks.ChainInfoUsecaseMock{
		GetLatestHeightFunc: func(ctx context.Context, chainID domain.ChainID) (uint64, error) {
			return currentBlock, nil
		},
	}

	mockUsecase := s.SetupRouterUsecase(defaultMainnetState(), routertesting.WithChainInfo(chainInfo))

	req := newQuoteRequest(WETH, DAI, domain.TradeTypeExactIn, routertesting.HumanAmount(1, WETH))

	tests := []struct {
		name          string
		currentBlock  uint64
		expectedBlock uint64
	}{
		{name: "stored", currentBlock: defaultBlockNumber, expectedBlock: defaultBlockNumber},
		{name: "within blocks to live", currentBlock: defaultBlockNumber + 5, expectedBlock: defaultBlockNumber},
		{name: "expired entry is recomputed", currentBlock: defaultBlockNumber + 6, expectedBlock: defaultBlockNumber + 6},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			currentBlock = tc.currentBlock

			_, err := mockUsecase.Router.GetOptimalQuote(context.TODO(), req)
			s.Require().NoError(err)

			cachedRoutes, ok := mockUsecase.RouteCache.Get(routertesting.MainnetChainID, WETH, DAI, domain.TradeTypeExactIn, domain.NewProtocolSet())
			s.Require().True(ok)
			s.Require().Equal(tc.expectedBlock, cachedRoutes.BlockNumber)
		})
	}
}

// A cached pool that disappeared from the snapshot forces a recomputation.
func (s *RouterTestSuite) TestGetOptimalQuote_RouteCacheStalePool() {
	state := defaultMainnetState()
	state.Pools = []domain.Pool{routertesting.PoolWETHDAI()}

	mockUsecase := s.SetupRouterUsecase(state)

	req := newQuoteRequest(WETH, DAI, domain.TradeTypeExactIn, routertesting.HumanAmount(1, WETH))

	first, err := mockUsecase.Router.GetOptimalQuote(context.TODO(), req)
	s.Require().NoError(err)
	s.Require().Equal([]string{p3}, first.Route[0].PoolAddresses)

	mockUsecase.Pools.Snapshot.Pools = []domain.Pool{routertesting.PoolWETHUSDC(), routertesting.PoolUSDCDAI()}

	second, err := mockUsecase.Router.GetOptimalQuote(context.TODO(), req)
	s.Require().NoError(err)
	s.Require().Len(second.Route, 1)
	s.Require().Equal([]string{p1, p2}, second.Route[0].PoolAddresses)
}

func (s *RouterTestSuite) TestGetOptimalQuote_ChainInfoUnavailable() {
	chainInfo := &mocks.ChainInfoUsecaseMock{
		GetLatestHeightFunc: func(ctx context.Context, chainID domain.ChainID) (uint64, error) {
			return 0, domain.StaleHeightError{ChainID: chainID}
		},
	}

	mockUsecase := s.SetupRouterUsecase(defaultMainnetState(), routertesting.WithChainInfo(chainInfo))

	req := newQuoteRequest(WETH, DAI, domain.TradeTypeExactIn, routertesting.HumanAmount(1, WETH))

	swapRoute, err := mockUsecase.Router.GetOptimalQuote(context.TODO(), req)
	s.Require().NoError(err)
	s.Require().True(swapRoute.HasRoute())

	// The cache is skipped entirely.
	s.Require().Zero(mockUsecase.RouteCache.Len())
}

func (s *RouterTestSuite) TestGetOptimalQuote_Concurrent() {
	mockUsecase := s.SetupRouterUsecase(defaultMainnetState(), routertesting.WithRouteCacheDisabled())

	req := newQuoteRequest(WETH, DAI, domain.TradeTypeExactIn, routertesting.HumanAmount(10, WETH))

	expected, err := mockUsecase.Router.GetOptimalQuote(context.TODO(), req)
	s.Require().NoError(err)

	const numRequests = 16
	results := make([]domain.SwapRoute, numRequests)
	errs := make([]error, numRequests)

	var wg sync.WaitGroup
	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = mockUsecase.Router.GetOptimalQuote(context.TODO(), req)
		}(i)
	}
	wg.Wait()

	for i := 0; i < numRequests; i++ {
		s.Require().NoError(errs[i])
		s.Require().Equal(expected, results[i])
	}
}

func (s *RouterTestSuite) TestGetCandidatePools_Usecase() {
	mockUsecase := s.SetupRouterUsecase(defaultMainnetState())

	selection, err := mockUsecase.Router.GetCandidatePools(context.TODO(), routertesting.MainnetChainID, WETH, DAI)
	s.Require().NoError(err)
	s.Require().Equal([]string{p1, p4, p3, p2, p5, p6}, poolAddresses(selection.Pools))

	_, err = mockUsecase.Router.GetCandidatePools(context.TODO(), 56, WETH, DAI)
	s.Require().Error(err)
}

func (s *RouterTestSuite) TestNewRouterUsecase_InvalidConfig() {
	config := defaultRouterConfig
	config.DistributionPercent = 30

	chains, err := domain.NewChainRegistry([]domain.ChainConfig{routertesting.MainnetChainConfig})
	s.Require().NoError(err)

	_, err = routerusecase.NewRouterUsecase(config, chains, &mocks.PoolsUsecaseMock{}, &mocks.ChainInfoUsecaseMock{}, &mocks.GasPriceSourceMock{}, nil, nil, nil)
	s.Require().Error(err)
}

func (s *RouterTestSuite) quoteSingleRoute(mockUsecase routertesting.MockUsecase, req domain.QuoteRequest, opts ...routertesting.TestOption) domain.SwapRoute {
	singleRouteUsecase := s.SetupRouterUsecase(routertesting.MockState{
		Chain:       routertesting.MainnetChainConfig,
		Pools:       mockUsecase.Pools.Snapshot.Pools,
		BlockNumber: mockUsecase.Pools.Snapshot.BlockNumber,
	}, opts...)

	swapRoute, err := singleRouteUsecase.Router.GetOptimalQuote(context.TODO(), req)
	s.Require().NoError(err)
	s.Require().Len(swapRoute.Route, 1)
	return swapRoute
}

func withMaxSplits(maxSplits int) domain.RouterConfig {
	config := defaultRouterConfig
	config.MaxSplits = maxSplits
	config.RouteCacheEnabled = false
	return config
}

// humanGTE compares two human amounts.
func humanGTE(a, b string) bool {
	return osmomath.MustNewDecFromStr(a).GTE(osmomath.MustNewDecFromStr(b))
}
