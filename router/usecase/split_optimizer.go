package usecase

import (
	"sort"
	"strings"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/router/usecase/route"
)

// BestSwapRoute is the chosen set of splits and their aggregates.
type BestSwapRoute struct {
	// Routes are sorted by descending percent.
	Routes           []route.RouteWithValidQuote
	Quote            osmomath.Int
	QuoteGasAdjusted osmomath.Int
	GasCost          domain.GasCost
}

// SplitOptimizerConfig bounds the split search.
type SplitOptimizerConfig struct {
	MinSplits int
	MaxSplits int
	// TopKPerPercent is the number of best routes kept for every percent.
	TopKPerPercent int
}

// splitSearch holds the pruned candidates and the running best of a search.
type splitSearch struct {
	tradeType domain.TradeType
	config    SplitOptimizerConfig

	// candidates are ordered by descending percent then by rank within the percent.
	candidates []route.RouteWithValidQuote

	best        []route.RouteWithValidQuote
	bestQuote   osmomath.Int
	bestRouteID string
}

// GetBestSwapRoute searches the combination of route quotes that fills exactly 100 percent
// of the trade with the best aggregate gas adjusted quote.
//
// Only the best TopKPerPercent routes of every percent take part in the search.
// A combination has between MinSplits and MaxSplits distinct routes and no two of its
// routes share a pool. Exact-in maximizes and exact-out minimizes the aggregate.
// Ties prefer fewer splits, then the lexicographically smallest route keys.
//
// Returns domain.ErrNoRoute if no combination is feasible.
func GetBestSwapRoute(routeQuotes []route.RouteWithValidQuote, tradeType domain.TradeType, config SplitOptimizerConfig) (BestSwapRoute, error) {
	search := &splitSearch{
		tradeType:  tradeType,
		config:     config,
		candidates: pruneByPercent(routeQuotes, tradeType, config.TopKPerPercent),
	}

	search.combine(0, 100, nil, map[string]struct{}{})

	if len(search.best) == 0 {
		return BestSwapRoute{}, domain.ErrNoRoute
	}

	return newBestSwapRoute(search.best), nil
}

// pruneByPercent keeps the top k quotes of every percent and orders the result
// by descending percent, then best quote first.
func pruneByPercent(routeQuotes []route.RouteWithValidQuote, tradeType domain.TradeType, k int) []route.RouteWithValidQuote {
	byPercent := make(map[int][]route.RouteWithValidQuote)
	for _, routeQuote := range routeQuotes {
		if routeQuote.Percent <= 0 || routeQuote.Percent > 100 {
			continue
		}
		byPercent[routeQuote.Percent] = append(byPercent[routeQuote.Percent], routeQuote)
	}

	percents := make([]int, 0, len(byPercent))
	for percent := range byPercent {
		percents = append(percents, percent)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(percents)))

	candidates := make([]route.RouteWithValidQuote, 0, len(percents)*k)
	for _, percent := range percents {
		quotes := byPercent[percent]
		sort.SliceStable(quotes, func(i, j int) bool {
			if !quotes[i].QuoteAdjustedForGas.Equal(quotes[j].QuoteAdjustedForGas) {
				return route.IsBetterQuote(tradeType, quotes[i].QuoteAdjustedForGas, quotes[j].QuoteAdjustedForGas)
			}
			return quotes[i].Key() < quotes[j].Key()
		})

		if k > 0 && len(quotes) > k {
			quotes = quotes[:k]
		}
		candidates = append(candidates, quotes...)
	}

	return candidates
}

// combine extends the current selection with candidates after index start.
// Picking candidates in index order enumerates every set exactly once.
func (s *splitSearch) combine(start, remainingPercent int, chosen []route.RouteWithValidQuote, usedPools map[string]struct{}) {
	if remainingPercent == 0 {
		if len(chosen) >= s.config.MinSplits {
			s.consider(chosen)
		}
		return
	}

	if len(chosen) >= s.config.MaxSplits {
		return
	}

	for i := start; i < len(s.candidates); i++ {
		candidate := s.candidates[i]
		if candidate.Percent > remainingPercent {
			continue
		}

		if sharesPool(candidate.Route, usedPools) {
			continue
		}

		for _, address := range candidate.Route.PoolAddresses() {
			usedPools[address] = struct{}{}
		}

		s.combine(i+1, remainingPercent-candidate.Percent, append(chosen, candidate), usedPools)

		for _, address := range candidate.Route.PoolAddresses() {
			delete(usedPools, address)
		}
	}
}

// consider replaces the running best if the selection is better.
func (s *splitSearch) consider(chosen []route.RouteWithValidQuote) {
	quote := osmomath.ZeroInt()
	for _, split := range chosen {
		quote = quote.Add(split.QuoteAdjustedForGas)
	}
	routeID := selectionID(chosen)

	if len(s.best) > 0 {
		switch {
		case route.IsBetterQuote(s.tradeType, quote, s.bestQuote):
		case !quote.Equal(s.bestQuote):
			return
		case len(chosen) < len(s.best):
		case len(chosen) > len(s.best):
			return
		case routeID >= s.bestRouteID:
			return
		}
	}

	s.best = append(make([]route.RouteWithValidQuote, 0, len(chosen)), chosen...)
	s.bestQuote = quote
	s.bestRouteID = routeID
}

// selectionID is the order independent identity of a selection used for tie breaks.
func selectionID(chosen []route.RouteWithValidQuote) string {
	keys := make([]string, len(chosen))
	for i, split := range chosen {
		keys[i] = split.Key()
	}
	sort.Strings(keys)
	return strings.Join(keys, "|")
}

// sharesPool returns true if the route uses any of the pools.
// Sharing a pool also covers choosing the same route twice.
func sharesPool(r domain.Route, usedPools map[string]struct{}) bool {
	for _, pool := range r.Pools {
		if _, ok := usedPools[pool.Address]; ok {
			return true
		}
	}
	return false
}

func newBestSwapRoute(chosen []route.RouteWithValidQuote) BestSwapRoute {
	routes := append(make([]route.RouteWithValidQuote, 0, len(chosen)), chosen...)
	sort.SliceStable(routes, func(i, j int) bool {
		if routes[i].Percent != routes[j].Percent {
			return routes[i].Percent > routes[j].Percent
		}
		return routes[i].Key() < routes[j].Key()
	})

	result := BestSwapRoute{
		Routes:           routes,
		Quote:            osmomath.ZeroInt(),
		QuoteGasAdjusted: osmomath.ZeroInt(),
		GasCost:          domain.ZeroGasCost(),
	}

	for _, split := range routes {
		result.Quote = result.Quote.Add(split.RawQuote)
		result.QuoteGasAdjusted = result.QuoteGasAdjusted.Add(split.QuoteAdjustedForGas)
		result.GasCost = addGasCost(result.GasCost, split.GasCost)
	}

	return result
}

func addGasCost(a, b domain.GasCost) domain.GasCost {
	return domain.GasCost{
		GasUnits:            a.GasUnits + b.GasUnits,
		GasCostInNative:     addInt(a.GasCostInNative, b.GasCostInNative),
		GasCostInQuoteToken: addInt(a.GasCostInQuoteToken, b.GasCostInQuoteToken),
		GasCostInUSD:        addDec(a.GasCostInUSD, b.GasCostInUSD),
	}
}

func addInt(a, b osmomath.Int) osmomath.Int {
	if a.IsNil() {
		a = osmomath.ZeroInt()
	}
	if b.IsNil() {
		return a
	}
	return a.Add(b)
}

func addDec(a, b osmomath.Dec) osmomath.Dec {
	if a.IsNil() {
		a = osmomath.ZeroDec()
	}
	if b.IsNil() {
		return a
	}
	return a.Add(b)
}
