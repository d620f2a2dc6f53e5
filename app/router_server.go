package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/riverdex/sor/chaininfo/client"
	chaininforepo "github.com/riverdex/sor/chaininfo/repository"
	chaininfousecase "github.com/riverdex/sor/chaininfo/usecase"
	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/domain/cache"
	"github.com/riverdex/sor/domain/mvc"
	"github.com/riverdex/sor/log"
	"github.com/riverdex/sor/middleware"
	poolsHttpDelivery "github.com/riverdex/sor/pools/delivery/http"
	poolsprovider "github.com/riverdex/sor/pools/provider"
	poolsUseCase "github.com/riverdex/sor/pools/usecase"
	pricingusecase "github.com/riverdex/sor/pricing/usecase"
	routerHttpDelivery "github.com/riverdex/sor/router/delivery/http"
	routerrepo "github.com/riverdex/sor/router/repository"
	routerUseCase "github.com/riverdex/sor/router/usecase"
	"github.com/riverdex/sor/router/usecase/gas"
	systemhttpdelivery "github.com/riverdex/sor/system/delivery/http"

	_ "github.com/riverdex/sor/docs"
)

// RouterServer serves quotes over HTTP.
// It owns the background refreshers of chain heights and gas prices.
type RouterServer interface {
	GetRouterUsecase() mvc.RouterUsecase
	GetPoolsUsecase() mvc.PoolsUsecase
	GetLogger() log.Logger
	Shutdown(context.Context) error
	Start(context.Context) error
}

type closer interface {
	Close()
}

type routerServer struct {
	routerUsecase mvc.RouterUsecase
	poolsUsecase  mvc.PoolsUsecase
	e             *echo.Echo
	address       string
	closers       []closer
	logger        log.Logger
}

const (
	tracerName = "sor"

	defaultHeightRefetchInterval = 3 * time.Second
)

var errNoChains = errors.New("at least one chain must be configured")

// GetRouterUsecase implements RouterServer.
func (s *routerServer) GetRouterUsecase() mvc.RouterUsecase {
	return s.routerUsecase
}

// GetPoolsUsecase implements RouterServer.
func (s *routerServer) GetPoolsUsecase() mvc.PoolsUsecase {
	return s.poolsUsecase
}

// GetLogger implements RouterServer.
func (s *routerServer) GetLogger() log.Logger {
	return s.logger
}

// Shutdown implements RouterServer.
func (s *routerServer) Shutdown(ctx context.Context) error {
	for _, c := range s.closers {
		c.Close()
	}

	return s.e.Shutdown(ctx)
}

// Start implements RouterServer.
func (s *routerServer) Start(context.Context) error {
	s.logger.Info("Starting router server", zap.String("address", s.address))
	return s.e.Start(s.address)
}

// NewRouterServer wires the router server from config.
func NewRouterServer(config domain.Config, logger log.Logger) (RouterServer, error) {
	chains, err := domain.NewChainRegistry(config.Chains)
	if err != nil {
		return nil, err
	}

	chainIDs := chains.ChainIDs()
	if len(chainIDs) == 0 {
		return nil, errNoChains
	}

	// Requests without a chain are served for the lowest configured chain ID.
	defaultChainID := chainIDs[0]

	// Setup echo server
	e := echo.New()
	middleware := middleware.New(config.CORS, logger)
	e.Use(middleware.CORS)
	e.Use(middleware.Instrument)
	e.Use(middleware.Trace(tracerName))
	// innermost: recovered panics are counted and traced as 500
	e.Use(middleware.Recover)

	timeout := time.Duration(config.ServerTimeoutDurationSecs) * time.Second
	httpClient := &http.Client{Timeout: timeout}

	server := &routerServer{
		e:       e,
		address: config.ServerAddress,
		logger:  logger,
	}

	// Chain heights drive the route cache expiry and the healthcheck.
	var chainInfoUseCase mvc.ChainInfoUsecase
	if config.ChainInfo != nil && config.ChainInfo.BlockNumberURL != "" {
		chainClient, err := client.NewClient(config.ChainInfo.BlockNumberURL, httpClient, config.ChainInfo.Retry)
		if err != nil {
			return nil, err
		}

		chainInfoRepository := chaininforepo.New()
		refetchInterval := time.Duration(config.ChainInfo.RefetchIntervalMs) * time.Millisecond
		if refetchInterval <= 0 {
			refetchInterval = defaultHeightRefetchInterval
		}

		heightFetcher := chaininfousecase.NewHeightFetcher(chainClient, chainInfoRepository, chainIDs, refetchInterval, logger)
		server.closers = append(server.closers, heightFetcher)

		chainInfoUseCase = chaininfousecase.NewChainInfoUsecase(chainInfoRepository, config.ChainInfo.MaxAllowedHeightUpdateTimeDeltaSecs)
	} else {
		logger.Info("block number url is not set, route cache is disabled")
	}

	// Initialize pools provider, usecase and HTTP handler
	poolsProvider, err := poolsprovider.NewPoolsProviderFromConfig(config.Pools, httpClient, logger)
	if err != nil {
		return nil, err
	}

	poolsUsecase, err := poolsUseCase.NewPoolsUsecase(config.Pools, poolsProvider, chainInfoUseCase, logger)
	if err != nil {
		return nil, err
	}

	// Initialize pricing
	gasPriceSource := pricingusecase.NewGasPriceSource(*config.Pricing, config.Chains, httpClient, logger)
	server.closers = append(server.closers, gasPriceSource)

	pricingSource := pricingusecase.NewNativePriceSource(*config.Pricing, httpClient, cache.New(), logger)

	// Initialize router repository, usecase
	var routeCache mvc.RouteCacheRepository
	if config.Router.RouteCacheEnabled {
		routeCache, err = routerrepo.NewRouteCache(config.Router.RouteCacheSize)
		if err != nil {
			return nil, err
		}
	}

	routerUsecase, err := routerUseCase.NewRouterUsecase(
		*config.Router,
		chains,
		poolsUsecase,
		chainInfoUseCase,
		gasPriceSource,
		gas.NewHeuristicGasModelFactory(pricingSource, logger),
		routeCache,
		logger,
	)
	if err != nil {
		return nil, err
	}

	// HTTP handlers
	poolsHttpDelivery.NewPoolsHandler(e, poolsUsecase, defaultChainID)
	systemhttpdelivery.NewSystemHandler(e, config, logger, chainInfoUseCase)
	routerHttpDelivery.NewRouterHandler(e, routerUsecase, defaultChainID, logger)

	server.routerUsecase = routerUsecase
	server.poolsUsecase = poolsUsecase

	return server, nil
}
