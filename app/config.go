package main

import (
	"github.com/riverdex/sor/domain"
)

var (
	ethereumWETH = domain.NewAsset("0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2", 18, "WETH")
	ethereumUSDC = domain.NewAsset("0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48", 6, "USDC")
	ethereumUSDT = domain.NewAsset("0xdac17f958d2ee523a2206206994597c13d831ec7", 6, "USDT")
	ethereumDAI  = domain.NewAsset("0x6b175474e89094c44da98b954eedeac495271d0f", 18, "DAI")
	ethereumWBTC = domain.NewAsset("0x2260fac5e5542a773aa44fbcfedf7c193bc2c599", 8, "WBTC")

	tronWTRX = domain.NewAsset("41891cdb91d149f23b1a45d9c5ca78a88d0cb44c18", 6, "WTRX")
	tronUSDT = domain.NewAsset("41a614f803b6fd780986a42c78ec9c7f77e6ded13c", 6, "USDT")
)

// DefaultConfig defines the default config for the router server.
// Values read from the config file override it.
var DefaultConfig = domain.Config{
	ServerAddress:             ":9092",
	ServerTimeoutDurationSecs: 2,

	LoggerFilename:     "sor.log",
	LoggerIsProduction: true,
	LoggerLevel:        "info",

	Chains: []domain.ChainConfig{
		{
			ChainID:       1,
			Name:          "ethereum",
			NativeSymbol:  "ETH",
			WrappedNative: ethereumWETH,
			BaseAssets:    []domain.Asset{ethereumWETH, ethereumUSDC, ethereumUSDT, ethereumDAI, ethereumWBTC},
			USDAssets:     []domain.Asset{ethereumUSDC, ethereumUSDT, ethereumDAI},
			Gas: domain.GasCostConfig{
				BaseSwapCost:    135_000,
				CostPerExtraHop: 50_000,
			},
		},
		{
			ChainID:       728126428,
			Name:          "tron",
			NativeSymbol:  "TRX",
			WrappedNative: tronWTRX,
			BaseAssets:    []domain.Asset{tronWTRX, tronUSDT},
			USDAssets:     []domain.Asset{tronUSDT},
			Gas: domain.GasCostConfig{
				BaseSwapCost:    65_000,
				CostPerExtraHop: 30_000,
				FixedGasPrice:   1,
			},
		},
	},

	Router: &domain.RouterConfig{
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
		QuoteWorkers:          8,

		RouteCacheEnabled:      true,
		RouteCacheBlocksToLive: 1,
		RouteCacheSize:         1000,
	},

	Pools: &domain.PoolsConfig{
		CacheExpiryMs:           15_000, // 15 seconds.
		MinTrackedReserveNative: "0.0025",
		Retry: domain.RetryConfig{
			MaxAttempts:  3,
			MinBackoffMs: 50,
			MaxBackoffMs: 500,
			TimeoutMs:    5_000,
		},
	},

	Pricing: &domain.PricingConfig{
		CacheExpiryMs:             60_000, // 1 minute.
		GasPriceRefetchIntervalMs: 15_000,
		Retry: domain.RetryConfig{
			MaxAttempts:  2,
			MinBackoffMs: 100,
			MaxBackoffMs: 100,
			TimeoutMs:    1_000,
		},
	},

	ChainInfo: &domain.ChainInfoConfig{
		RefetchIntervalMs:                   3_000,
		MaxAllowedHeightUpdateTimeDeltaSecs: 60,
		Retry: domain.RetryConfig{
			MaxAttempts:  2,
			MinBackoffMs: 100,
			MaxBackoffMs: 100,
			TimeoutMs:    1_000,
		},
	},

	CORS: &domain.CORSConfig{
		AllowedHeaders: "Origin, Accept, Content-Type, X-Requested-With, X-Server-Time, Accept-Encoding, sentry-trace, baggage",
		AllowedMethods: "HEAD, GET, POST, OPTIONS",
		AllowedOrigin:  "*",
	},

	OTEL: &domain.OTELConfig{
		Environment: "development",
		CustomSampleRate: domain.CustomSampleRate{
			Quote: 0.5,
			Other: 0.1,
		},
	},
}

// applyDefaults fills the sections missing from config with DefaultConfig.
func applyDefaults(config *domain.Config) {
	if config.ServerAddress == "" {
		config.ServerAddress = DefaultConfig.ServerAddress
	}
	if config.ServerTimeoutDurationSecs == 0 {
		config.ServerTimeoutDurationSecs = DefaultConfig.ServerTimeoutDurationSecs
	}
	if config.LoggerLevel == "" {
		config.LoggerLevel = DefaultConfig.LoggerLevel
	}
	if len(config.Chains) == 0 {
		config.Chains = DefaultConfig.Chains
	}
	if config.Router == nil {
		config.Router = DefaultConfig.Router
	}
	if config.Pools == nil {
		config.Pools = DefaultConfig.Pools
	}
	if config.Pricing == nil {
		config.Pricing = DefaultConfig.Pricing
	}
	if config.ChainInfo == nil {
		config.ChainInfo = DefaultConfig.ChainInfo
	}
	if config.CORS == nil {
		config.CORS = DefaultConfig.CORS
	}
	if config.OTEL == nil {
		config.OTEL = DefaultConfig.OTEL
	}
}
