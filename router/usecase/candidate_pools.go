package usecase

import (
	"sort"

	"github.com/samber/lo"

	"github.com/riverdex/sor/domain"
)

// poolExclusionSet is the running set of pool addresses already selected
// by earlier buckets.
type poolExclusionSet map[string]struct{}

func (s poolExclusionSet) add(pools []domain.Pool) {
	for _, pool := range pools {
		s[pool.Address] = struct{}{}
	}
}

func (s poolExclusionSet) has(pool domain.Pool) bool {
	_, ok := s[pool.Address]
	return ok
}

// GetCandidatePools selects the subset of the pool snapshot that route enumeration
// is allowed to use.
//
// Buckets are computed in a fixed order. Each bucket adds its pools to a running
// exclusion set that the liquidity based buckets consult so that they surface
// pools not already picked. The returned selection keeps the buckets for
// observability and their union, deduplicated by pool address, as the candidate set.
//
// An empty base asset table yields empty base buckets. No connecting pool yields
// an empty candidate set, never an error.
func GetCandidatePools(protocol domain.Protocol, pools []domain.Pool, tokenIn, tokenOut domain.Asset, baseAssets []domain.Asset, config domain.RouterConfig) domain.CandidatePoolSelection {
	sortedPools := sortPoolsByLiquidity(pools)
	selected := poolExclusionSet{}

	topByDirectSwapPool := lo.Filter(pools, func(pool domain.Pool, _ int) bool {
		return pool.Connects(tokenIn, tokenOut)
	})
	selected.add(topByDirectSwapPool)

	topByBaseWithTokenIn := topPoolsWithBaseAssets(sortedPools, tokenIn, baseAssets, config.TopNWithEachBaseToken, config.TopNWithBaseToken)
	selected.add(topByBaseWithTokenIn)

	topByBaseWithTokenOut := topPoolsWithBaseAssets(sortedPools, tokenOut, baseAssets, config.TopNWithEachBaseToken, config.TopNWithBaseToken)
	selected.add(topByBaseWithTokenOut)

	topByTVL := takeTop(sortedPools, config.TopN, func(pool domain.Pool) bool {
		return !selected.has(pool)
	})
	selected.add(topByTVL)

	topByTVLUsingTokenIn := takeTop(sortedPools, config.TopNTokenInOut, func(pool domain.Pool) bool {
		return !selected.has(pool) && pool.Involves(tokenIn)
	})
	selected.add(topByTVLUsingTokenIn)

	topByTVLUsingTokenOut := takeTop(sortedPools, config.TopNTokenInOut, func(pool domain.Pool) bool {
		return !selected.has(pool) && pool.Involves(tokenOut)
	})
	selected.add(topByTVLUsingTokenOut)

	topByTVLUsingTokenInSecondHops := topSecondHopPools(sortedPools, topByTVLUsingTokenIn, tokenIn, selected, config.TopNSecondHop)
	selected.add(topByTVLUsingTokenInSecondHops)

	topByTVLUsingTokenOutSecondHops := topSecondHopPools(sortedPools, topByTVLUsingTokenOut, tokenOut, selected, config.TopNSecondHop)
	selected.add(topByTVLUsingTokenOutSecondHops)

	buckets := []domain.CandidatePoolBucket{
		{Name: domain.TopByBaseWithTokenInBucket, Pools: topByBaseWithTokenIn},
		{Name: domain.TopByBaseWithTokenOutBucket, Pools: topByBaseWithTokenOut},
		{Name: domain.TopByDirectSwapPoolBucket, Pools: topByDirectSwapPool},
		{Name: domain.TopByTVLBucket, Pools: topByTVL},
		{Name: domain.TopByTVLUsingTokenInBucket, Pools: topByTVLUsingTokenIn},
		{Name: domain.TopByTVLUsingTokenOutBucket, Pools: topByTVLUsingTokenOut},
		{Name: domain.TopByTVLUsingTokenInSecondHopsBucket, Pools: topByTVLUsingTokenInSecondHops},
		{Name: domain.TopByTVLUsingTokenOutSecondHopsBucket, Pools: topByTVLUsingTokenOutSecondHops},
	}

	candidates := lo.UniqBy(lo.FlatMap(buckets, func(bucket domain.CandidatePoolBucket, _ int) []domain.Pool {
		return bucket.Pools
	}), func(pool domain.Pool) string {
		return pool.Address
	})

	return domain.CandidatePoolSelection{
		Protocol: protocol,
		Buckets:  buckets,
		Pools:    candidates,
	}
}

// sortPoolsByLiquidity returns a copy of the pools sorted by descending liquidity proxy.
// Ties keep the snapshot order.
func sortPoolsByLiquidity(pools []domain.Pool) []domain.Pool {
	sorted := make([]domain.Pool, len(pools))
	copy(sorted, pools)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].GetLiquidityProxy().GT(sorted[j].GetLiquidityProxy())
	})

	return sorted
}

// takeTop returns the first n pools of the sorted list that satisfy the predicate.
func takeTop(sortedPools []domain.Pool, n int, predicate func(pool domain.Pool) bool) []domain.Pool {
	result := make([]domain.Pool, 0, n)
	if n <= 0 {
		return result
	}

	for _, pool := range sortedPools {
		if !predicate(pool) {
			continue
		}

		result = append(result, pool)
		if len(result) == n {
			break
		}
	}

	return result
}

// topPoolsWithBaseAssets takes the top topNWithEach pools connecting every base asset
// to the token, then the overall top topNOverall of the combined list.
func topPoolsWithBaseAssets(sortedPools []domain.Pool, token domain.Asset, baseAssets []domain.Asset, topNWithEach, topNOverall int) []domain.Pool {
	perBase := lo.FlatMap(baseAssets, func(base domain.Asset, _ int) []domain.Pool {
		return takeTop(sortedPools, topNWithEach, func(pool domain.Pool) bool {
			return pool.Connects(base, token)
		})
	})

	// Repeated base assets would list the same pool twice.
	perBase = lo.UniqBy(perBase, func(pool domain.Pool) string {
		return pool.Address
	})

	return takeTop(sortPoolsByLiquidity(perBase), topNOverall, func(domain.Pool) bool { return true })
}

// topSecondHopPools returns, for every asset reachable from token through the first hop
// pools, the top topNSecondHop unselected pools touching that asset.
func topSecondHopPools(sortedPools, firstHopPools []domain.Pool, token domain.Asset, selected poolExclusionSet, topNSecondHop int) []domain.Pool {
	secondHopAssets := lo.FilterMap(firstHopPools, func(pool domain.Pool, _ int) (domain.Asset, bool) {
		return pool.OtherAsset(token)
	})

	secondHops := lo.FlatMap(secondHopAssets, func(asset domain.Asset, _ int) []domain.Pool {
		return takeTop(sortedPools, topNSecondHop, func(pool domain.Pool) bool {
			return !selected.has(pool) && pool.Involves(asset)
		})
	})

	return lo.UniqBy(secondHops, func(pool domain.Pool) string {
		return pool.Address
	})
}
