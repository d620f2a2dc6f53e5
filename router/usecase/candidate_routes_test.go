package usecase_test

import (
	"fmt"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/riverdex/sor/domain"
	routerusecase "github.com/riverdex/sor/router/usecase"
	"github.com/riverdex/sor/router/usecase/routertesting"
)

func (s *RouterTestSuite) TestComputeAllRoutes() {
	tests := []struct {
		name      string
		pools     []domain.Pool
		tokenIn   domain.Asset
		tokenOut  domain.Asset
		maxHops   int
		maxRoutes int

		expectedRoutes [][]string
	}{
		{
			name:      "WETH to DAI up to three hops",
			pools:     routertesting.DefaultMainnetPools(),
			tokenIn:   WETH,
			tokenOut:  DAI,
			maxHops:   3,
			maxRoutes: 0,
			expectedRoutes: [][]string{
				{p1, p2},
				{p3},
				{p4, p5},
			},
		},
		{
			name:      "direct only",
			pools:     routertesting.DefaultMainnetPools(),
			tokenIn:   WETH,
			tokenOut:  DAI,
			maxHops:   1,
			maxRoutes: 0,
			expectedRoutes: [][]string{
				{p3},
			},
		},
		{
			name:      "capped by max routes",
			pools:     routertesting.DefaultMainnetPools(),
			tokenIn:   WETH,
			tokenOut:  DAI,
			maxHops:   3,
			maxRoutes: 2,
			expectedRoutes: [][]string{
				{p1, p2},
				{p3},
			},
		},
		{
			name:      "three hops from UNI",
			pools:     routertesting.DefaultMainnetPools(),
			tokenIn:   UNI,
			tokenOut:  DAI,
			maxHops:   3,
			maxRoutes: 0,
			expectedRoutes: [][]string{
				{p6, p1, p2},
				{p6, p3},
				{p6, p4, p5},
			},
		},
		{
			name:      "three hops from UNI limited to two",
			pools:     routertesting.DefaultMainnetPools(),
			tokenIn:   UNI,
			tokenOut:  DAI,
			maxHops:   2,
			maxRoutes: 0,
			expectedRoutes: [][]string{
				{p6, p3},
			},
		},
		{
			name:           "unreachable token",
			pools:          routertesting.DefaultMainnetPools(),
			tokenIn:        LINK,
			tokenOut:       DAI,
			maxHops:        3,
			expectedRoutes: [][]string{},
		},
		{
			name:           "same token",
			pools:          routertesting.DefaultMainnetPools(),
			tokenIn:        DAI,
			tokenOut:       DAI,
			maxHops:        3,
			expectedRoutes: [][]string{},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			routes := routerusecase.ComputeAllRoutes(domain.ProtocolV2, tc.pools, tc.tokenIn, tc.tokenOut, tc.maxHops, tc.maxRoutes)

			s.Require().Len(routes, len(tc.expectedRoutes))
			for i, expected := range tc.expectedRoutes {
				s.validateRoutePools(routes[i], expected...)

				// Every returned route is a valid simple path.
				s.Require().NoError(routes[i].Validate())
				s.Require().True(routes[i].Input().Equal(tc.tokenIn))
				s.Require().True(routes[i].Output().Equal(tc.tokenOut))
			}
		})
	}
}

// The traversal order only depends on the candidate order.
func (s *RouterTestSuite) TestComputeAllRoutes_Deterministic() {
	pools := routertesting.DefaultMainnetPools()

	expected := routerusecase.ComputeAllRoutes(domain.ProtocolV2, pools, UNI, USDT, 4, 0)
	s.Require().NotEmpty(expected)

	for i := 0; i < 10; i++ {
		actual := routerusecase.ComputeAllRoutes(domain.ProtocolV2, pools, UNI, USDT, 4, 0)
		s.Require().Equal(expected, actual)
	}
}

// With the default config every simple path is enumerated, including the ones found last.
func (s *RouterTestSuite) TestComputeAllRoutes_DefaultConfigIsUncapped() {
	const intermediates = 150

	pools := make([]domain.Pool, 0, 2*intermediates)
	for i := 0; i < intermediates; i++ {
		middle := domain.NewAsset(fmt.Sprintf("0x%040x", 0xa000+i), 18, fmt.Sprintf("M%d", i))
		pools = append(pools,
			routertesting.NewPool(routertesting.PoolAddress(1_000+2*i), WETH, middle, osmomath.NewInt(1_000), osmomath.NewInt(1_000), 1),
			routertesting.NewPool(routertesting.PoolAddress(1_001+2*i), middle, DAI, osmomath.NewInt(1_000), osmomath.NewInt(1_000), 1),
		)
	}

	routes := routerusecase.ComputeAllRoutes(domain.ProtocolV2, pools, WETH, DAI, defaultRouterConfig.MaxSwapsPerPath, defaultRouterConfig.MaxRoutes)
	s.Require().Len(routes, intermediates)

	last := routes[len(routes)-1]
	s.validateRoutePools(last, routertesting.PoolAddress(1_000+2*(intermediates-1)), routertesting.PoolAddress(1_001+2*(intermediates-1)))
}
