package usecase

import (
	"context"
	"errors"

	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/domain/workerpool"
	"github.com/riverdex/sor/router/usecase/route"
)

const (
	insufficientReservesReason = "insufficient_reserves"
	insufficientInputReason    = "insufficient_input_amount"
	amountOverflowReason       = "amount_overflow"
)

var (
	quoteFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sor_quote_failures_total",
			Help: "Number of (route, amount fraction) pairs that could not be quoted",
		},
		[]string{"reason"},
	)
)

func init() {
	prometheus.MustRegister(quoteFailures)
}

// QuoteRoutes quotes every route for every amount fraction on at most maxWorkers goroutines.
//
// The result holds one entry per route in route order, each with one quote per fraction
// in fraction order. A pair that fails with insufficient reserves, insufficient input
// amount or an amount overflowing the pool arithmetic gets a nil quote and does not
// affect other pairs. Any other error, including a cancelled context, aborts and is returned.
func QuoteRoutes(ctx context.Context, routes []domain.Route, fractions []domain.AmountFraction, tradeType domain.TradeType, maxWorkers int) ([]domain.RouteWithAmountQuotes, error) {
	routeImpls := make([]*route.RouteImpl, len(routes))
	for i, r := range routes {
		routeImpl, err := route.NewRouteImpl(r)
		if err != nil {
			return nil, err
		}
		routeImpls[i] = routeImpl
	}

	tasks := make([]func() (*osmomath.Int, error), 0, len(routes)*len(fractions))
	for _, routeImpl := range routeImpls {
		for _, fraction := range fractions {
			tasks = append(tasks, quoteTask(ctx, routeImpl, tradeType, fraction.Amount))
		}
	}

	results := workerpool.Process(maxWorkers, tasks)

	routesWithQuotes := make([]domain.RouteWithAmountQuotes, len(routes))
	for i, r := range routes {
		quotes := make([]domain.AmountQuote, len(fractions))
		for j, fraction := range fractions {
			result := results[i*len(fractions)+j]
			if result.Err != nil {
				return nil, result.Err
			}

			quotes[j] = domain.AmountQuote{
				Fraction: fraction,
				Quote:    result.Result,
			}
		}

		routesWithQuotes[i] = domain.RouteWithAmountQuotes{
			Route:  r,
			Quotes: quotes,
		}
	}

	return routesWithQuotes, nil
}

// quoteTask returns a task quoting the route for the amount.
// Degrading errors are converted into a nil quote.
func quoteTask(ctx context.Context, routeImpl *route.RouteImpl, tradeType domain.TradeType, amount osmomath.Int) func() (*osmomath.Int, error) {
	return func() (*osmomath.Int, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		quote, err := routeImpl.Quote(ctx, tradeType, amount)
		if err != nil {
			if domain.IsQuoteDegradingError(err) {
				quoteFailures.WithLabelValues(quoteFailureReason(err)).Inc()
				return nil, nil
			}
			return nil, err
		}

		return &quote, nil
	}
}

func quoteFailureReason(err error) string {
	var (
		reservesErr domain.InsufficientReservesError
		overflowErr domain.AmountOverflowError
	)
	switch {
	case errors.As(err, &reservesErr):
		return insufficientReservesReason
	case errors.As(err, &overflowErr):
		return amountOverflowReason
	default:
		return insufficientInputReason
	}
}
