package route

import (
	"context"
	"fmt"
	"strings"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/router/usecase/pools"
)

// RouteImpl is a route whose pools are oriented in the direction of the swap
// so that it can be quoted.
type RouteImpl struct {
	Route domain.Route          "json:\"route\""
	Pools []domain.RoutablePool "json:\"pools\""
}

// NewRouteImpl orients every pool of the route from its input to its output.
func NewRouteImpl(route domain.Route) (*RouteImpl, error) {
	if err := route.Validate(); err != nil {
		return nil, err
	}

	routablePools := make([]domain.RoutablePool, 0, len(route.Pools))
	for i, pool := range route.Pools {
		routablePool, err := pools.NewRoutablePool(route.Protocol, pool, route.TokenPath[i])
		if err != nil {
			return nil, err
		}
		routablePools = append(routablePools, routablePool)
	}

	return &RouteImpl{
		Route: route,
		Pools: routablePools,
	}, nil
}

// CalculateTokenOutByTokenIn walks the route forward and returns the amount
// of the last asset received for amountIn of the first asset.
func (r *RouteImpl) CalculateTokenOutByTokenIn(ctx context.Context, amountIn osmomath.Int) (amountOut osmomath.Int, err error) {
	defer func() {
		if r := recover(); r != nil {
			amountOut = osmomath.Int{}
			err = fmt.Errorf("error when calculating out by in in route: %v", r)
		}
	}()

	amountOut = amountIn
	for _, pool := range r.Pools {
		amountOut, err = pool.CalculateTokenOutByTokenIn(ctx, amountOut)
		if err != nil {
			return osmomath.Int{}, err
		}
	}

	return amountOut, nil
}

// CalculateTokenInByTokenOut walks the route backward and returns the amount
// of the first asset required to receive amountOut of the last asset.
func (r *RouteImpl) CalculateTokenInByTokenOut(ctx context.Context, amountOut osmomath.Int) (amountIn osmomath.Int, err error) {
	defer func() {
		if r := recover(); r != nil {
			amountIn = osmomath.Int{}
			err = fmt.Errorf("error when calculating in by out in route: %v", r)
		}
	}()

	amountIn = amountOut
	for i := len(r.Pools) - 1; i >= 0; i-- {
		amountIn, err = r.Pools[i].CalculateTokenInByTokenOut(ctx, amountIn)
		if err != nil {
			return osmomath.Int{}, err
		}
	}

	return amountIn, nil
}

// Quote returns the raw quote of the route for the amount of the given trade type.
// For exact-in trades the quote is the output amount, for exact-out trades it is the input amount.
func (r *RouteImpl) Quote(ctx context.Context, tradeType domain.TradeType, amount osmomath.Int) (osmomath.Int, error) {
	if tradeType == domain.TradeTypeExactOut {
		return r.CalculateTokenInByTokenOut(ctx, amount)
	}
	return r.CalculateTokenOutByTokenIn(ctx, amount)
}

// String implements fmt.Stringer.
func (r *RouteImpl) String() string {
	var strBuilder strings.Builder
	for _, pool := range r.Pools {
		strBuilder.WriteString(fmt.Sprintf("{{%s}}", pool.String()))
	}

	return strBuilder.String()
}
