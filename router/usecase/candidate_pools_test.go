package usecase_test

import (
	"github.com/riverdex/sor/domain"
	routerusecase "github.com/riverdex/sor/router/usecase"
	"github.com/riverdex/sor/router/usecase/routertesting"
)

var (
	p1 = routertesting.PoolAddress(1) // WETH / USDC 4M
	p2 = routertesting.PoolAddress(2) // USDC / DAI 2M
	p3 = routertesting.PoolAddress(3) // WETH / DAI 2M
	p4 = routertesting.PoolAddress(4) // WETH / USDT 3.2M
	p5 = routertesting.PoolAddress(5) // USDT / DAI 1M
	p6 = routertesting.PoolAddress(6) // UNI / WETH 1M
)

func (s *RouterTestSuite) TestGetCandidatePools() {
	tests := []struct {
		name       string
		pools      []domain.Pool
		tokenIn    domain.Asset
		tokenOut   domain.Asset
		baseAssets []domain.Asset
		config     domain.RouterConfig

		expectedBuckets map[string][]string
		expectedPools   []string
	}{
		{
			name:       "mainnet WETH to DAI",
			pools:      routertesting.DefaultMainnetPools(),
			tokenIn:    WETH,
			tokenOut:   DAI,
			baseAssets: routertesting.MainnetChainConfig.BaseAssets,
			config:     defaultRouterConfig,

			expectedBuckets: map[string][]string{
				domain.TopByDirectSwapPoolBucket:   {p3},
				domain.TopByBaseWithTokenInBucket:  {p1, p4, p3},
				domain.TopByBaseWithTokenOutBucket: {p3, p2, p5},
				// Every other pool is already selected.
				domain.TopByTVLBucket:                        {p6},
				domain.TopByTVLUsingTokenInBucket:            {},
				domain.TopByTVLUsingTokenOutBucket:           {},
				domain.TopByTVLUsingTokenInSecondHopsBucket:  {},
				domain.TopByTVLUsingTokenOutSecondHopsBucket: {},
			},
			expectedPools: []string{p1, p4, p3, p2, p5, p6},
		},
		{
			name:       "no base assets",
			pools:      routertesting.DefaultMainnetPools(),
			tokenIn:    WETH,
			tokenOut:   DAI,
			baseAssets: nil,
			config:     defaultRouterConfig,

			expectedBuckets: map[string][]string{
				domain.TopByDirectSwapPoolBucket:   {p3},
				domain.TopByBaseWithTokenInBucket:  {},
				domain.TopByBaseWithTokenOutBucket: {},
				// Top 2 by liquidity excluding the direct pool.
				domain.TopByTVLBucket: {p1, p4},
				// WETH pools left: p6.
				domain.TopByTVLUsingTokenInBucket: {p6},
				// DAI pools left: p2 and p5.
				domain.TopByTVLUsingTokenOutBucket: {p2, p5},
				// UNI has no other pool.
				domain.TopByTVLUsingTokenInSecondHopsBucket: {},
				// USDC and USDT pools are already selected.
				domain.TopByTVLUsingTokenOutSecondHopsBucket: {},
			},
			expectedPools: []string{p3, p1, p4, p6, p2, p5},
		},
		{
			name:       "token without pools",
			pools:      routertesting.DefaultMainnetPools(),
			tokenIn:    LINK,
			tokenOut:   DAI,
			baseAssets: routertesting.MainnetChainConfig.BaseAssets,
			config:     defaultRouterConfig,

			expectedBuckets: map[string][]string{
				domain.TopByDirectSwapPoolBucket:   {},
				domain.TopByBaseWithTokenInBucket:  {},
				domain.TopByBaseWithTokenOutBucket: {p3, p2, p5},
				domain.TopByTVLBucket:              {p1, p4},
				domain.TopByTVLUsingTokenInBucket:  {},
				domain.TopByTVLUsingTokenOutBucket: {},
				domain.TopByTVLUsingTokenInSecondHopsBucket:  {},
				domain.TopByTVLUsingTokenOutSecondHopsBucket: {},
			},
			expectedPools: []string{p3, p2, p5, p1, p4},
		},
		{
			name:       "empty snapshot",
			pools:      nil,
			tokenIn:    WETH,
			tokenOut:   DAI,
			baseAssets: routertesting.MainnetChainConfig.BaseAssets,
			config:     defaultRouterConfig,

			expectedBuckets: map[string][]string{
				domain.TopByDirectSwapPoolBucket:             {},
				domain.TopByBaseWithTokenInBucket:            {},
				domain.TopByBaseWithTokenOutBucket:           {},
				domain.TopByTVLBucket:                        {},
				domain.TopByTVLUsingTokenInBucket:            {},
				domain.TopByTVLUsingTokenOutBucket:           {},
				domain.TopByTVLUsingTokenInSecondHopsBucket:  {},
				domain.TopByTVLUsingTokenOutSecondHopsBucket: {},
			},
			expectedPools: []string{},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			selection := routerusecase.GetCandidatePools(domain.ProtocolV2, tc.pools, tc.tokenIn, tc.tokenOut, tc.baseAssets, tc.config)

			s.Require().Equal(domain.ProtocolV2, selection.Protocol)
			s.Require().Len(selection.Buckets, len(tc.expectedBuckets))

			for name, expected := range tc.expectedBuckets {
				s.Require().Equal(expected, poolAddresses(selection.GetBucket(name)), name)
			}

			s.Require().Equal(tc.expectedPools, poolAddresses(selection.Pools))
		})
	}
}

// Candidate pools of the same liquidity keep the snapshot order.
func (s *RouterTestSuite) TestGetCandidatePools_StableOrder() {
	pools := []domain.Pool{
		routertesting.NewPool(routertesting.PoolAddress(20), WETH, UNI, one, one, 10),
		routertesting.NewPool(routertesting.PoolAddress(21), WETH, LINK, one, one, 10),
		routertesting.NewPool(routertesting.PoolAddress(22), WETH, USDT, one, one, 10),
	}

	config := defaultRouterConfig
	config.TopNTokenInOut = 3

	for i := 0; i < 10; i++ {
		selection := routerusecase.GetCandidatePools(domain.ProtocolV2, pools, WETH, DAI, nil, config)
		s.Require().Equal([]string{routertesting.PoolAddress(20), routertesting.PoolAddress(21), routertesting.PoolAddress(22)}, poolAddresses(selection.Pools))
	}
}
