package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/log"
)

// unmatchedRoute labels requests that did not match a registered route.
const unmatchedRoute = "unmatched"

// tracedQueryParams are the query parameters copied onto request spans.
var tracedQueryParams = []string{"chainId", "tokenIn", "tokenOut", "verbose"}

var (
	// sor_http_requests_total
	//
	// counter of served requests
	//
	// Has the following labels:
	// * method - the HTTP method
	// * route - the registered route template, or "unmatched"
	// * status - the response status code
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sor_http_requests_total",
			Help: "Total number of HTTP requests by route template and status.",
		},
		[]string{"method", "route", "status"},
	)

	// sor_http_request_duration_seconds
	//
	// histogram of request latencies, quote computation included
	requestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sor_http_request_duration_seconds",
			Help:    "Histogram of HTTP request latencies by route template.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)

	// sor_http_panics_total
	//
	// counter of handler panics turned into 500 responses
	panicsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sor_http_panics_total",
			Help: "Total number of recovered handler panics by route template.",
		},
		[]string{"route"},
	)
)

func init() {
	prometheus.MustRegister(requestsTotal, requestLatency, panicsTotal)
}

// Middleware holds the echo middlewares of the router server.
type Middleware struct {
	corsConfig domain.CORSConfig
	logger     log.Logger
}

// New returns the router server middlewares. A nil CORS config allows nothing.
func New(corsConfig *domain.CORSConfig, logger log.Logger) *Middleware {
	m := &Middleware{logger: logger}
	if corsConfig != nil {
		m.corsConfig = *corsConfig
	}
	return m
}

// CORS sets the configured CORS headers and answers preflight requests directly.
func (m *Middleware) CORS(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Response().Header()
		header.Set(echo.HeaderAccessControlAllowOrigin, m.corsConfig.AllowedOrigin)
		header.Set(echo.HeaderAccessControlAllowHeaders, m.corsConfig.AllowedHeaders)
		header.Set(echo.HeaderAccessControlAllowMethods, m.corsConfig.AllowedMethods)

		if c.Request().Method == http.MethodOptions {
			return c.NoContent(http.StatusNoContent)
		}

		return next(c)
	}
}

// Recover turns a handler panic into a 500 response and logs it with the request path.
func (m *Middleware) Recover(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				panicsTotal.WithLabelValues(routeLabel(c)).Inc()
				m.logger.Error("recovered handler panic", zap.String("path", c.Request().URL.Path), zap.Any("panic", r))
				err = echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("internal error: %v", r))
			}
		}()

		return next(c)
	}
}

// Instrument records the request count and latency per route template.
// The request path is stored in the request context under domain.RequestPathCtxKey.
func (m *Middleware) Instrument(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		requestPath, err := domain.ParseURLPath(c)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		ctx := context.WithValue(c.Request().Context(), domain.RequestPathCtxKey, requestPath)
		c.SetRequest(c.Request().WithContext(ctx))

		err = next(c)

		method := c.Request().Method
		route := routeLabel(c)
		requestsTotal.WithLabelValues(method, route, strconv.Itoa(responseStatus(c, err))).Inc()
		requestLatency.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

		return err
	}
}

// Trace starts a server span per request, continuing the caller's trace when
// propagation headers are present.
func (m *Middleware) Trace(tracerName string) echo.MiddlewareFunc {
	tracer := otel.Tracer(tracerName)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			request := c.Request()
			parentCtx := otel.GetTextMapPropagator().Extract(request.Context(), propagation.HeaderCarrier(request.Header))

			ctx, span := tracer.Start(parentCtx, request.Method+" "+routeLabel(c), trace.WithSpanKind(trace.SpanKindServer))
			defer span.End()

			span.SetAttributes(attribute.String("http.method", request.Method))
			for _, name := range tracedQueryParams {
				if value := c.QueryParam(name); value != "" {
					span.SetAttributes(attribute.String("query."+name, value))
				}
			}

			c.SetRequest(request.WithContext(ctx))

			err := next(c)

			status := responseStatus(c, err)
			span.SetAttributes(attribute.Int("http.status_code", status))
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}

			return err
		}
	}
}

func routeLabel(c echo.Context) string {
	if route := c.Path(); route != "" {
		return route
	}
	return unmatchedRoute
}

// responseStatus is the status the client receives. Handler errors are written
// by echo after the middleware chain returns.
func responseStatus(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}
	if httpErr, ok := err.(*echo.HTTPError); ok {
		return httpErr.Code
	}
	return http.StatusInternalServerError
}
