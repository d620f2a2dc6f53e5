package usecase

import (
	"github.com/riverdex/sor/domain"
)

// candidateRouteFinder enumerates simple paths over an immutable index of
// the candidate pools.
type candidateRouteFinder struct {
	protocol domain.Protocol
	tokenOut domain.Asset
	maxHops  int

	// maxRoutes caps the number of returned routes. Zero means no cap.
	maxRoutes int

	// poolsByAsset lists candidate pools per normalized asset address
	// in candidate order.
	poolsByAsset map[string][]domain.Pool

	routes []domain.Route
}

// ComputeAllRoutes returns every simple path from tokenIn to tokenOut over the
// candidate pools with at most maxHops pools, up to maxRoutes paths.
//
// The traversal is depth first and visits pools in candidate order, so the same
// input always yields the same routes in the same order. An asset is never
// visited twice on a path.
func ComputeAllRoutes(protocol domain.Protocol, pools []domain.Pool, tokenIn, tokenOut domain.Asset, maxHops, maxRoutes int) []domain.Route {
	if maxHops < 1 || tokenIn.Equal(tokenOut) {
		return nil
	}

	finder := &candidateRouteFinder{
		protocol:     protocol,
		tokenOut:     tokenOut,
		maxHops:      maxHops,
		maxRoutes:    maxRoutes,
		poolsByAsset: make(map[string][]domain.Pool),
	}

	for _, pool := range pools {
		token0 := domain.NormalizeAddress(pool.Token0.Address)
		token1 := domain.NormalizeAddress(pool.Token1.Address)
		finder.poolsByAsset[token0] = append(finder.poolsByAsset[token0], pool)
		finder.poolsByAsset[token1] = append(finder.poolsByAsset[token1], pool)
	}

	visited := map[string]struct{}{
		domain.NormalizeAddress(tokenIn.Address): {},
	}

	finder.search(tokenIn, []domain.Asset{tokenIn}, nil, visited)

	return finder.routes
}

func (f *candidateRouteFinder) search(current domain.Asset, tokenPath []domain.Asset, poolPath []domain.Pool, visited map[string]struct{}) {
	for _, pool := range f.poolsByAsset[domain.NormalizeAddress(current.Address)] {
		if f.isFull() {
			return
		}

		next, ok := pool.OtherAsset(current)
		if !ok {
			continue
		}

		nextAddress := domain.NormalizeAddress(next.Address)
		if _, ok := visited[nextAddress]; ok {
			continue
		}

		nextTokenPath := append(append(make([]domain.Asset, 0, len(tokenPath)+1), tokenPath...), next)
		nextPoolPath := append(append(make([]domain.Pool, 0, len(poolPath)+1), poolPath...), pool)

		if next.Equal(f.tokenOut) {
			f.routes = append(f.routes, domain.Route{
				Protocol:  f.protocol,
				TokenPath: nextTokenPath,
				Pools:     nextPoolPath,
			})
			continue
		}

		if len(nextPoolPath) == f.maxHops {
			continue
		}

		visited[nextAddress] = struct{}{}
		f.search(next, nextTokenPath, nextPoolPath, visited)
		delete(visited, nextAddress)
	}
}

func (f *candidateRouteFinder) isFull() bool {
	return f.maxRoutes > 0 && len(f.routes) >= f.maxRoutes
}
