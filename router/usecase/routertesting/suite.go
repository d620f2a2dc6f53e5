package routertesting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/stretchr/testify/suite"

	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/domain/mocks"
	"github.com/riverdex/sor/domain/mvc"
	"github.com/riverdex/sor/log"
	routerrepo "github.com/riverdex/sor/router/repository"
	routerusecase "github.com/riverdex/sor/router/usecase"
	"github.com/riverdex/sor/router/usecase/gas"
)

type RouterTestHelper struct {
	suite.Suite
}

// MockState is the market state a router under test is built on.
type MockState struct {
	Chain       domain.ChainConfig
	Pools       []domain.Pool
	BlockNumber uint64

	GasPrice            osmomath.Int
	TokenPricesInNative map[string]osmomath.Dec
	NativePriceInUSD    osmomath.Dec
}

// MockUsecase holds the router under test and its collaborators.
type MockUsecase struct {
	Router     mvc.RouterUsecase
	Pools      *mocks.PoolsUsecaseMock
	ChainInfo  *mocks.ChainInfoUsecaseMock
	RouteCache mvc.RouteCacheRepository
}

const (
	MainnetChainID = domain.ChainID(1)
	TronChainID    = domain.ChainID(728126428)

	relativePathTestData = "/router/usecase/routertesting/testdata/"
)

var (
	// Mainnet assets.
	WETH = domain.NewAsset("0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2", 18, "WETH")
	USDC = domain.NewAsset("0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48", 6, "USDC")
	USDT = domain.NewAsset("0xdac17f958d2ee523a2206206994597c13d831ec7", 6, "USDT")
	DAI  = domain.NewAsset("0x6b175474e89094c44da98b954eedeac495271d0f", 18, "DAI")
	WBTC = domain.NewAsset("0x2260fac5e5542a773aa44fbcfedf7c193bc2c599", 8, "WBTC")
	UNI  = domain.NewAsset("0x1f9840a85d5af5bf1d1762f925bdaddc4201f984", 18, "UNI")
	LINK = domain.NewAsset("0x514910771af9ca656af840dff83e8264ecf986ca", 18, "LINK")

	// Tron assets.
	WTRX     = domain.NewAsset("41891cdb91d149f23b1a45d9c5ca78a88d0cb44c18", 6, "WTRX")
	USDTTron = domain.NewAsset("41a614f803b6fd780986a42c78ec9c7f77e6ded13c", 6, "USDT")

	DefaultRouterConfig = domain.RouterConfig{
		TopN:                  2,
		TopNTokenInOut:        2,
		TopNSecondHop:         1,
		TopNWithEachBaseToken: 2,
		TopNWithBaseToken:     6,
		MaxSwapsPerPath:       3,
		MaxRoutes:             0,
		MinSplits:             1,
		MaxSplits:             3,
		DistributionPercent:   5,
		TopKPerPercent:        3,
		QuoteWorkers:          4,

		RouteCacheEnabled:      true,
		RouteCacheBlocksToLive: 5,
		RouteCacheSize:         100,
	}

	MainnetChainConfig = domain.ChainConfig{
		ChainID:       MainnetChainID,
		Name:          "ethereum",
		NativeSymbol:  "ETH",
		WrappedNative: WETH,
		BaseAssets:    []domain.Asset{WETH, USDC, USDT, DAI, WBTC},
		USDAssets:     []domain.Asset{USDC, USDT, DAI},
		Gas: domain.GasCostConfig{
			BaseSwapCost:    135_000,
			CostPerExtraHop: 50_000,
		},
	}

	TronChainConfig = domain.ChainConfig{
		ChainID:       TronChainID,
		Name:          "tron",
		NativeSymbol:  "TRX",
		WrappedNative: WTRX,
		BaseAssets:    []domain.Asset{WTRX, USDTTron},
		USDAssets:     []domain.Asset{USDTTron},
		Gas: domain.GasCostConfig{
			BaseSwapCost:    65_000,
			CostPerExtraHop: 30_000,
			FixedGasPrice:   1,
		},
	}

	DefaultRetryConfig = domain.RetryConfig{
		MaxAttempts:  2,
		MinBackoffMs: 1,
		MaxBackoffMs: 5,
		TimeoutMs:    1000,
	}

	// The files below are set in init()
	projectRoot            = ""
	absolutePathToTestData = ""
)

func init() {
	var err error
	projectRoot, err = findProjectRoot()
	if err != nil {
		panic(err)
	}

	absolutePathToTestData = projectRoot + relativePathTestData
}

// findProjectRoot starts from the current dir and goes up until it finds go.mod,
// returning the absolute directory containing it.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parentDir := filepath.Dir(dir)
		if parentDir == dir {
			return "", fmt.Errorf("go.mod not found")
		}
		dir = parentDir
	}
}

// TestDataPath returns the absolute path of a file in the shared test data directory.
func TestDataPath(fileName string) string {
	return absolutePathToTestData + fileName
}

// SetupRouterUsecase wires a router on top of mocked collaborators serving the given state.
func (s *RouterTestHelper) SetupRouterUsecase(state MockState, opts ...TestOption) MockUsecase {
	options := TestOptions{
		RouterConfig: DefaultRouterConfig,
	}
	for _, opt := range opts {
		opt(&options)
	}

	chain := state.Chain
	if chain.ChainID == 0 {
		chain = MainnetChainConfig
	}

	chains, err := domain.NewChainRegistry([]domain.ChainConfig{chain})
	s.Require().NoError(err)

	poolsUsecase := &mocks.PoolsUsecaseMock{
		Snapshot: domain.PoolsSnapshot{
			ChainID:     chain.ChainID,
			BlockNumber: state.BlockNumber,
			Pools:       state.Pools,
		},
	}

	chainInfoUsecase := options.ChainInfo
	if chainInfoUsecase == nil {
		chainInfoUsecase = mocks.NewChainInfoUsecaseAtHeight(state.BlockNumber)
	}

	pricingSource := &mocks.PricingSourceMock{
		TokenPricesInNative: state.TokenPricesInNative,
		NativePriceInUSD:    state.NativePriceInUSD,
	}

	var routeCache mvc.RouteCacheRepository
	if options.RouterConfig.RouteCacheEnabled {
		routeCache, err = routerrepo.NewRouteCache(options.RouterConfig.RouteCacheSize)
		s.Require().NoError(err)
	}

	router, err := routerusecase.NewRouterUsecase(
		options.RouterConfig,
		chains,
		poolsUsecase,
		chainInfoUsecase,
		&mocks.GasPriceSourceMock{GasPrice: state.GasPrice},
		gas.NewHeuristicGasModelFactory(pricingSource, &log.NoOpLogger{}),
		routeCache,
		&log.NoOpLogger{},
	)
	s.Require().NoError(err)

	return MockUsecase{
		Router:     router,
		Pools:      poolsUsecase,
		ChainInfo:  chainInfoUsecase,
		RouteCache: routeCache,
	}
}

// MustReadFile reads a file and fails the test if there is an error.
func (s *RouterTestHelper) MustReadFile(path string) string {
	b, err := os.ReadFile(path)
	s.Require().NoError(err)
	return string(b)
}
